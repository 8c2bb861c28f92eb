package postgres

import (
	"context"
	"database/sql"

	"cashbook-backend/internal/domain"
	"cashbook-backend/internal/logger"
	"cashbook-backend/internal/repository"
)

const transactionColumns = `id, book_id, amount, direction, entry_date, entry_time, note, party_name, category, attachment_url, created_at`

type transactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

func scanTransaction(row rowScanner, tx *domain.Transaction) error {
	return row.Scan(&tx.ID, &tx.BookID, &tx.Amount, &tx.Direction, &tx.Date, &tx.Time, &tx.Note,
		&tx.PartyName, &tx.Category, &tx.AttachmentURL, &tx.CreatedAt)
}

func (r *transactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	logger.EnterMethod("transactionRepository.Create", "bookID", tx.BookID, "direction", tx.Direction)

	query := `INSERT INTO transactions (` + transactionColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.ExecContext(ctx, query,
		tx.ID, tx.BookID, tx.Amount, tx.Direction, tx.Date, tx.Time, tx.Note,
		tx.PartyName, tx.Category, tx.AttachmentURL, tx.CreatedAt,
	)
	if err != nil {
		logger.ExitMethodWithError("transactionRepository.Create", err, "bookID", tx.BookID)
		return mapError(err)
	}

	logger.ExitMethod("transactionRepository.Create", "transactionID", tx.ID)
	return nil
}

func (r *transactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	tx := &domain.Transaction{}
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`
	if err := scanTransaction(r.db.QueryRowContext(ctx, query, id), tx); err != nil {
		return nil, mapError(err)
	}
	return tx, nil
}

// Update replaces every mutable field. id, book_id and created_at are never written.
func (r *transactionRepository) Update(ctx context.Context, tx *domain.Transaction) error {
	query := `UPDATE transactions SET
	              amount = $1, direction = $2, entry_date = $3, entry_time = $4, note = $5,
	              party_name = $6, category = $7, attachment_url = $8
	          WHERE id = $9`
	res, err := r.db.ExecContext(ctx, query,
		tx.Amount, tx.Direction, tx.Date, tx.Time, tx.Note,
		tx.PartyName, tx.Category, tx.AttachmentURL, tx.ID,
	)
	if err != nil {
		return err
	}
	return expectAffected(res)
}

func (r *transactionRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return expectAffected(res)
}

func (r *transactionRepository) ListByBook(ctx context.Context, bookID string) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE book_id = $1`
	logger.DatabaseCall("select", query, "bookID", bookID)

	rows, err := r.db.QueryContext(ctx, query, bookID)
	if err != nil {
		logger.DatabaseResult("select", 0, err)
		return nil, err
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		var tx domain.Transaction
		if err := scanTransaction(rows, &tx); err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	logger.DatabaseResult("select", int64(len(txs)), nil)
	return txs, nil
}
