package postgres

import (
	"context"
	"database/sql"

	"cashbook-backend/internal/domain"
	"cashbook-backend/internal/logger"
	"cashbook-backend/internal/repository"
)

type bookRepository struct {
	db *sql.DB
}

func NewBookRepository(db *sql.DB) repository.BookRepository {
	return &bookRepository{db: db}
}

func (r *bookRepository) Create(ctx context.Context, b *domain.Book) error {
	query := `INSERT INTO books (id, business_id, name, created_at) VALUES ($1, $2, $3, $4)`
	_, err := r.db.ExecContext(ctx, query, b.ID, b.BusinessID, b.Name, b.CreatedAt)
	return mapError(err)
}

func (r *bookRepository) GetByID(ctx context.Context, id string) (*domain.Book, error) {
	b := &domain.Book{}
	query := `SELECT id, business_id, name, created_at FROM books WHERE id = $1`
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&b.ID, &b.BusinessID, &b.Name, &b.CreatedAt); err != nil {
		return nil, mapError(err)
	}
	return b, nil
}

func (r *bookRepository) Update(ctx context.Context, b *domain.Book) error {
	res, err := r.db.ExecContext(ctx, `UPDATE books SET name = $1 WHERE id = $2`, b.Name, b.ID)
	if err != nil {
		return err
	}
	return expectAffected(res)
}

// Delete removes the book; its transactions go with it through ON DELETE CASCADE.
func (r *bookRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM books WHERE id = $1`
	logger.DatabaseCall("delete", query, "bookID", id)
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		logger.DatabaseResult("delete", 0, err)
		return err
	}
	n, _ := res.RowsAffected()
	logger.DatabaseResult("delete", n, nil)
	return expectAffected(res)
}

func (r *bookRepository) ListByBusiness(ctx context.Context, businessID string) ([]domain.Book, error) {
	query := `SELECT id, business_id, name, created_at FROM books WHERE business_id = $1`
	rows, err := r.db.QueryContext(ctx, query, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []domain.Book
	for rows.Next() {
		var b domain.Book
		if err := rows.Scan(&b.ID, &b.BusinessID, &b.Name, &b.CreatedAt); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}
