package memory

import (
	"context"

	"cashbook-backend/internal/domain"
	"cashbook-backend/internal/repository"
)

type bookRepository struct{ s *state }

func (r *bookRepository) Create(ctx context.Context, b *domain.Book) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.businesses[b.BusinessID]; !ok {
		return repository.ErrNotFound
	}
	if _, ok := r.s.books[b.ID]; ok {
		return repository.ErrDuplicateEntry
	}
	r.s.books[b.ID] = *b
	return nil
}

func (r *bookRepository) GetByID(ctx context.Context, id string) (*domain.Book, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	b, ok := r.s.books[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &b, nil
}

func (r *bookRepository) Update(ctx context.Context, b *domain.Book) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.books[b.ID]
	if !ok {
		return repository.ErrNotFound
	}
	current.Name = b.Name
	r.s.books[b.ID] = current
	return nil
}

func (r *bookRepository) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.books[id]; !ok {
		return repository.ErrNotFound
	}
	r.s.deleteBookLocked(id)
	return nil
}

// ListByBusiness returns books in map order; callers must not rely on it.
func (r *bookRepository) ListByBusiness(ctx context.Context, businessID string) ([]domain.Book, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var books []domain.Book
	for _, b := range r.s.books {
		if b.BusinessID == businessID {
			books = append(books, b)
		}
	}
	return books, nil
}
