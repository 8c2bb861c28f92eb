package memory

import (
	"context"
	"time"

	"cashbook-backend/internal/domain"
	"cashbook-backend/internal/repository"
)

type userRepository struct{ s *state }

func (r *userRepository) Upsert(ctx context.Context, u *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if existing, ok := r.s.users[u.ID]; ok {
		u.CreatedAt = existing.CreatedAt
		u.Phone = existing.Phone
	} else if u.CreatedAt == 0 {
		u.CreatedAt = time.Now().UnixMilli()
	}
	r.s.users[u.ID] = *u
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}
