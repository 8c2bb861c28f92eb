package postgres

import (
	"context"
	"database/sql"
	"time"

	"cashbook-backend/internal/domain"
	"cashbook-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// Upsert inserts the user or refreshes name and email; created_at and phone are kept.
func (r *userRepository) Upsert(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (id, name, email, phone, created_at)
	          VALUES ($1, $2, $3, $4, $5)
	          ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, email = EXCLUDED.email
	          RETURNING created_at`
	if u.CreatedAt == 0 {
		u.CreatedAt = time.Now().UnixMilli()
	}
	err := r.db.QueryRowContext(ctx, query, u.ID, u.Name, u.Email, u.Phone, u.CreatedAt).Scan(&u.CreatedAt)
	return mapError(err)
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, name, email, phone, created_at FROM users WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.CreatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return u, nil
}
