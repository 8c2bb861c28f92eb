package memory

import (
	"context"

	"cashbook-backend/internal/domain"
	"cashbook-backend/internal/repository"
)

type transactionRepository struct{ s *state }

func (r *transactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.books[tx.BookID]; !ok {
		return repository.ErrNotFound
	}
	if _, ok := r.s.transactions[tx.ID]; ok {
		return repository.ErrDuplicateEntry
	}
	r.s.transactions[tx.ID] = *tx
	return nil
}

func (r *transactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	tx, ok := r.s.transactions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &tx, nil
}

func (r *transactionRepository) Update(ctx context.Context, tx *domain.Transaction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.transactions[tx.ID]
	if !ok {
		return repository.ErrNotFound
	}
	updated := *tx
	updated.BookID = current.BookID
	updated.CreatedAt = current.CreatedAt
	r.s.transactions[tx.ID] = updated
	return nil
}

func (r *transactionRepository) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.transactions[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.transactions, id)
	return nil
}

// ListByBook returns the set in map order.
func (r *transactionRepository) ListByBook(ctx context.Context, bookID string) ([]domain.Transaction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var txs []domain.Transaction
	for _, tx := range r.s.transactions {
		if tx.BookID == bookID {
			txs = append(txs, tx)
		}
	}
	return txs, nil
}
