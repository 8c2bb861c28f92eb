package memory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cashbook-backend/internal/domain"
	"cashbook-backend/internal/repository"
)

func seed(t *testing.T, s *Store) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, s.UserRepository.Upsert(ctx, &domain.User{ID: "owner", Email: "owner@example.com"}))
	require.NoError(t, s.UserRepository.Upsert(ctx, &domain.User{ID: "clerk", Email: "clerk@example.com"}))
	require.NoError(t, s.BusinessRepository.Create(ctx, &domain.Business{ID: "biz-1", UserID: "owner", JoinCode: "111111", CreatedAt: 1}))
	require.NoError(t, s.MemberRepository.Add(ctx, &domain.Member{BusinessID: "biz-1", UserID: "clerk", Role: domain.MemberRoleMember, JoinedAt: 5}))
	require.NoError(t, s.BookRepository.Create(ctx, &domain.Book{ID: "book-1", BusinessID: "biz-1"}))
	require.NoError(t, s.TransactionRepository.Create(ctx, &domain.Transaction{
		ID: "tx-1", BookID: "book-1", Amount: decimal.NewFromInt(5), Direction: domain.DirectionIn, Date: "2024-01-01", Time: "09:00",
	}))
}

func TestStore_ListForUser(t *testing.T) {
	s := NewStore()
	seed(t, s)
	ctx := context.Background()

	owned, err := s.BusinessRepository.ListForUser(ctx, "owner")
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, domain.AccessOwned, owned[0].Kind)
	assert.Empty(t, owned[0].OwnerEmail)

	shared, err := s.BusinessRepository.ListForUser(ctx, "clerk")
	require.NoError(t, err)
	require.Len(t, shared, 1)
	assert.Equal(t, domain.AccessShared, shared[0].Kind)
	assert.Equal(t, "owner@example.com", shared[0].OwnerEmail)

	none, err := s.BusinessRepository.ListForUser(ctx, "stranger")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestStore_JoinCode(t *testing.T) {
	s := NewStore()
	seed(t, s)
	ctx := context.Background()

	require.NoError(t, s.BusinessRepository.Create(ctx, &domain.Business{ID: "biz-2", UserID: "owner", JoinCode: "222222"}))

	t.Run("Collision rejected", func(t *testing.T) {
		err := s.BusinessRepository.UpdateJoinCode(ctx, "biz-2", "111111", 10)
		assert.ErrorIs(t, err, repository.ErrJoinCodeTaken)
	})

	t.Run("Rotation overwrites", func(t *testing.T) {
		require.NoError(t, s.BusinessRepository.UpdateJoinCode(ctx, "biz-1", "333333", 10))

		_, err := s.BusinessRepository.GetByJoinCode(ctx, "111111")
		assert.ErrorIs(t, err, repository.ErrNotFound)

		b, err := s.BusinessRepository.GetByJoinCode(ctx, "333333")
		require.NoError(t, err)
		assert.Equal(t, "biz-1", b.ID)
		assert.Equal(t, int64(10), b.JoinCodeRotatedAt)
	})

	t.Run("Rotated before", func(t *testing.T) {
		stale, err := s.BusinessRepository.ListJoinCodesRotatedBefore(ctx, 5)
		require.NoError(t, err)
		require.Len(t, stale, 1)
		assert.Equal(t, "biz-2", stale[0].ID)
	})
}

func TestStore_Cascade(t *testing.T) {
	s := NewStore()
	seed(t, s)
	ctx := context.Background()

	t.Run("Deleting a book removes its transactions", func(t *testing.T) {
		require.NoError(t, s.BookRepository.Delete(ctx, "book-1"))
		_, err := s.TransactionRepository.GetByID(ctx, "tx-1")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("Deleting a business removes books and members", func(t *testing.T) {
		require.NoError(t, s.BookRepository.Create(ctx, &domain.Book{ID: "book-2", BusinessID: "biz-1"}))
		require.NoError(t, s.BusinessRepository.Delete(ctx, "biz-1"))

		_, err := s.BookRepository.GetByID(ctx, "book-2")
		assert.ErrorIs(t, err, repository.ErrNotFound)
		members, err := s.MemberRepository.ListByBusiness(ctx, "biz-1")
		require.NoError(t, err)
		assert.Empty(t, members)
	})
}

func TestStore_TransactionUpdateKeepsImmutableFields(t *testing.T) {
	s := NewStore()
	seed(t, s)
	ctx := context.Background()

	before, err := s.TransactionRepository.GetByID(ctx, "tx-1")
	require.NoError(t, err)

	edit := *before
	edit.BookID = "elsewhere"
	edit.CreatedAt = 999
	edit.Note = "edited"
	require.NoError(t, s.TransactionRepository.Update(ctx, &edit))

	after, err := s.TransactionRepository.GetByID(ctx, "tx-1")
	require.NoError(t, err)
	assert.Equal(t, "book-1", after.BookID)
	assert.Equal(t, before.CreatedAt, after.CreatedAt)
	assert.Equal(t, "edited", after.Note)
}

func TestStore_MembersCarryUserDetails(t *testing.T) {
	s := NewStore()
	seed(t, s)

	members, err := s.MemberRepository.ListByBusiness(context.Background(), "biz-1")
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "owner", members[0].UserID)
	assert.Equal(t, domain.MemberRoleOwner, members[0].Role)
	assert.Equal(t, int64(1), members[0].JoinedAt)
	assert.Equal(t, "owner@example.com", members[0].Email)
	assert.Equal(t, "clerk@example.com", members[1].Email)
}

func TestStore_CreateBusinessRegistersOwner(t *testing.T) {
	s := NewStore()
	seed(t, s)

	err := s.MemberRepository.Add(context.Background(), &domain.Member{BusinessID: "biz-1", UserID: "owner", Role: domain.MemberRoleMember})
	assert.ErrorIs(t, err, repository.ErrDuplicateEntry)
}
