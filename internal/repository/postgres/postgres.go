package postgres

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"cashbook-backend/internal/logger"
	"cashbook-backend/internal/repository"
)

//go:embed schema.sql
var Schema string

const uniqueViolation = "23505"

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.BusinessRepository
	repository.MemberRepository
	repository.BookRepository
	repository.TransactionRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		UserRepository:        NewUserRepository(db),
		BusinessRepository:    NewBusinessRepository(db),
		MemberRepository:      NewMemberRepository(db),
		BookRepository:        NewBookRepository(db),
		TransactionRepository: NewTransactionRepository(db),
	}
}

// Migrate applies the embedded schema. Every statement is idempotent.
func Migrate(ctx context.Context, db *sql.DB) error {
	logger.DatabaseCall("migrate", "schema.sql")
	_, err := db.ExecContext(ctx, Schema)
	logger.DatabaseResult("migrate", 0, err)
	if err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

func mapError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return repository.ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		if pqErr.Constraint == "businesses_join_code_key" {
			return repository.ErrJoinCodeTaken
		}
		return fmt.Errorf("%w: %s", repository.ErrDuplicateEntry, pqErr.Constraint)
	}
	return err
}

// expectAffected turns a zero-row UPDATE or DELETE into ErrNotFound.
func expectAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
