package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cashbook-backend/internal/domain"
)

func TestAccess(t *testing.T) {
	business := domain.Business{ID: "biz-1", UserID: "owner"}
	members := []domain.Member{
		{BusinessID: "biz-1", UserID: "owner", Email: "owner@example.com", Role: domain.MemberRoleOwner},
		{BusinessID: "biz-1", UserID: "clerk", Email: "clerk@example.com", Role: domain.MemberRoleMember},
	}
	owner := domain.Session{UserID: "owner", Email: "owner@example.com"}
	clerk := domain.Session{UserID: "clerk", Email: "clerk@example.com"}
	stranger := domain.Session{UserID: "stranger"}

	t.Run("RequireOwner", func(t *testing.T) {
		assert.NoError(t, RequireOwner(owner, business))
		assert.ErrorIs(t, RequireOwner(clerk, business), ErrNotOwner)
		assert.ErrorIs(t, RequireOwner(domain.Session{}, domain.Business{}), ErrNotOwner)
	})

	t.Run("RequireMember", func(t *testing.T) {
		assert.NoError(t, RequireMember(owner, business, nil))
		assert.NoError(t, RequireMember(clerk, business, members))
		assert.ErrorIs(t, RequireMember(stranger, business, members), ErrNotMember)
		assert.ErrorIs(t, RequireMember(domain.Session{}, business, members), ErrNotMember)
	})

	t.Run("Classify", func(t *testing.T) {
		assert.Equal(t, domain.AccessOwned, Classify(owner, business, members).Kind)

		shared := Classify(clerk, business, members)
		assert.Equal(t, domain.AccessShared, shared.Kind)
		assert.Equal(t, "owner@example.com", shared.OwnerEmail)
	})

	t.Run("ResolveMembership", func(t *testing.T) {
		m := ResolveMembership(owner, domain.BusinessAccess{Business: business, Kind: domain.AccessOwned}, members)
		assert.True(t, m.IsOwner)
		assert.Equal(t, "owner@example.com", m.OwnerEmail)
		assert.Len(t, m.Members, 2)

		m = ResolveMembership(clerk, domain.BusinessAccess{Business: business, Kind: domain.AccessShared, OwnerEmail: "boss@example.com"}, nil)
		assert.False(t, m.IsOwner)
		assert.Equal(t, "boss@example.com", m.OwnerEmail)
	})

	t.Run("Ownership decided by id, not record kind", func(t *testing.T) {
		m := ResolveMembership(clerk, domain.BusinessAccess{Business: business, Kind: domain.AccessOwned}, members)
		assert.False(t, m.IsOwner)
		assert.Equal(t, "owner@example.com", m.OwnerEmail)
	})
}
