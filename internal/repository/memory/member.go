package memory

import (
	"cmp"
	"context"
	"slices"

	"cashbook-backend/internal/domain"
	"cashbook-backend/internal/repository"
)

type memberRepository struct{ s *state }

func (r *memberRepository) Add(ctx context.Context, m *domain.Member) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.businesses[m.BusinessID]; !ok {
		return repository.ErrNotFound
	}
	byUser, ok := r.s.members[m.BusinessID]
	if !ok {
		byUser = make(map[string]domain.Member)
		r.s.members[m.BusinessID] = byUser
	}
	if _, ok := byUser[m.UserID]; ok {
		return repository.ErrDuplicateEntry
	}
	byUser[m.UserID] = *m
	return nil
}

func (r *memberRepository) Get(ctx context.Context, businessID, userID string) (*domain.Member, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	m, ok := r.s.members[businessID][userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	r.fillUserLocked(&m)
	return &m, nil
}

func (r *memberRepository) Remove(ctx context.Context, businessID, userID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.members[businessID][userID]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.members[businessID], userID)
	return nil
}

func (r *memberRepository) ListByBusiness(ctx context.Context, businessID string) ([]domain.Member, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	members := make([]domain.Member, 0, len(r.s.members[businessID]))
	for _, m := range r.s.members[businessID] {
		r.fillUserLocked(&m)
		members = append(members, m)
	}
	slices.SortFunc(members, func(a, b domain.Member) int {
		if c := cmp.Compare(a.JoinedAt, b.JoinedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.UserID, b.UserID)
	})
	return members, nil
}

func (r *memberRepository) fillUserLocked(m *domain.Member) {
	if u, ok := r.s.users[m.UserID]; ok {
		m.Name = u.Name
		m.Email = u.Email
	}
}
