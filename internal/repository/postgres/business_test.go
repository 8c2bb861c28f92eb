package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cashbook-backend/internal/domain"
	"cashbook-backend/internal/repository"
)

var businessRowColumns = []string{"id", "user_id", "name", "currency", "join_code", "join_code_rotated_at", "created_at"}

func TestBusinessRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewBusinessRepository(db)
	ctx := context.Background()
	b := &domain.Business{ID: "biz-1", UserID: "me", Name: "Mine", Currency: "INR", JoinCode: "123456", JoinCodeRotatedAt: 7, CreatedAt: 7}

	t.Run("Writes business and owner membership together", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO businesses").
			WithArgs("biz-1", "me", "Mine", "INR", "123456", int64(7), int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO business_members").
			WithArgs("biz-1", "me", domain.MemberRoleOwner, int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.Create(ctx, b))
	})

	t.Run("Owner membership failure rolls back the business", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO businesses").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO business_members").WillReturnError(assert.AnError)
		mock.ExpectRollback()

		assert.ErrorIs(t, repo.Create(ctx, b), assert.AnError)
	})

	t.Run("Join code collision", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO businesses").
			WillReturnError(&pq.Error{Code: "23505", Constraint: "businesses_join_code_key"})
		mock.ExpectRollback()

		assert.ErrorIs(t, repo.Create(ctx, b), repository.ErrJoinCodeTaken)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBusinessRepository_ListForUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewBusinessRepository(db)

	rows := sqlmock.NewRows(append(businessRowColumns, "owner_email")).
		AddRow("biz-1", "me", "Mine", "INR", "111111", int64(1), int64(10), "me@example.com").
		AddRow("biz-2", "boss", "Theirs", "USD", "222222", int64(1), int64(5), "boss@example.com")
	mock.ExpectQuery("SELECT (.+) FROM businesses b JOIN business_members m").
		WithArgs("me").
		WillReturnRows(rows)

	out, err := repo.ListForUser(context.Background(), "me")
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, domain.AccessOwned, out[0].Kind)
	assert.Empty(t, out[0].OwnerEmail)
	assert.Equal(t, "Mine", out[0].Business.Name)

	assert.Equal(t, domain.AccessShared, out[1].Kind)
	assert.Equal(t, "boss@example.com", out[1].OwnerEmail)
	assert.Equal(t, "USD", out[1].Business.Currency)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBusinessRepository_UpdateJoinCode(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewBusinessRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE businesses SET join_code = \\$1").
			WithArgs("654321", int64(99), "biz-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		assert.NoError(t, repo.UpdateJoinCode(ctx, "biz-1", "654321", 99))
	})

	t.Run("Collision", func(t *testing.T) {
		mock.ExpectExec("UPDATE businesses SET join_code = \\$1").
			WillReturnError(&pq.Error{Code: "23505", Constraint: "businesses_join_code_key"})
		assert.ErrorIs(t, repo.UpdateJoinCode(ctx, "biz-1", "111111", 100), repository.ErrJoinCodeTaken)
	})

	t.Run("Unknown business", func(t *testing.T) {
		mock.ExpectExec("UPDATE businesses SET join_code = \\$1").
			WillReturnResult(sqlmock.NewResult(0, 0))
		assert.ErrorIs(t, repo.UpdateJoinCode(ctx, "nope", "123123", 100), repository.ErrNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBusinessRepository_GetByJoinCode(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewBusinessRepository(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM businesses WHERE join_code = \\$1").
		WithArgs("123456").
		WillReturnRows(sqlmock.NewRows(businessRowColumns).AddRow("biz-1", "me", "Mine", "INR", "123456", int64(1), int64(1)))
	b, err := repo.GetByJoinCode(ctx, "123456")
	require.NoError(t, err)
	assert.Equal(t, "biz-1", b.ID)

	mock.ExpectQuery("SELECT (.+) FROM businesses WHERE join_code = \\$1").
		WithArgs("000000").
		WillReturnRows(sqlmock.NewRows(businessRowColumns))
	_, err = repo.GetByJoinCode(ctx, "000000")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBusinessRepository_JoinCodeExists(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("123456").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := NewBusinessRepository(db).JoinCodeExists(context.Background(), "123456")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestMigrate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS users").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, Migrate(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}
