package memory

import (
	"cmp"
	"context"
	"slices"

	"cashbook-backend/internal/domain"
	"cashbook-backend/internal/repository"
)

type businessRepository struct{ s *state }

func (r *businessRepository) Create(ctx context.Context, b *domain.Business) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.businesses[b.ID]; ok {
		return repository.ErrDuplicateEntry
	}
	if r.codeTakenLocked(b.JoinCode, b.ID) {
		return repository.ErrJoinCodeTaken
	}
	r.s.businesses[b.ID] = *b
	r.s.members[b.ID] = map[string]domain.Member{
		b.UserID: {BusinessID: b.ID, UserID: b.UserID, Role: domain.MemberRoleOwner, JoinedAt: b.CreatedAt},
	}
	return nil
}

func (r *businessRepository) GetByID(ctx context.Context, id string) (*domain.Business, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	b, ok := r.s.businesses[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &b, nil
}

func (r *businessRepository) Update(ctx context.Context, b *domain.Business) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.businesses[b.ID]
	if !ok {
		return repository.ErrNotFound
	}
	current.Name = b.Name
	current.Currency = b.Currency
	r.s.businesses[b.ID] = current
	return nil
}

func (r *businessRepository) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.businesses[id]; !ok {
		return repository.ErrNotFound
	}
	for bookID, book := range r.s.books {
		if book.BusinessID == id {
			r.s.deleteBookLocked(bookID)
		}
	}
	delete(r.s.members, id)
	delete(r.s.businesses, id)
	return nil
}

func (r *businessRepository) ListForUser(ctx context.Context, userID string) ([]domain.BusinessAccess, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []domain.BusinessAccess
	for id, b := range r.s.businesses {
		if b.UserID == userID {
			out = append(out, domain.BusinessAccess{Business: b, Kind: domain.AccessOwned})
			continue
		}
		if _, ok := r.s.members[id][userID]; ok {
			out = append(out, domain.BusinessAccess{
				Business:   b,
				Kind:       domain.AccessShared,
				OwnerEmail: r.s.users[b.UserID].Email,
			})
		}
	}
	slices.SortFunc(out, func(a, b domain.BusinessAccess) int {
		if c := cmp.Compare(b.Business.CreatedAt, a.Business.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.Business.ID, b.Business.ID)
	})
	return out, nil
}

func (r *businessRepository) GetByJoinCode(ctx context.Context, code string) (*domain.Business, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, b := range r.s.businesses {
		if b.JoinCode == code {
			return &b, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *businessRepository) JoinCodeExists(ctx context.Context, code string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.codeTakenLocked(code, ""), nil
}

func (r *businessRepository) UpdateJoinCode(ctx context.Context, businessID, code string, rotatedAt int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b, ok := r.s.businesses[businessID]
	if !ok {
		return repository.ErrNotFound
	}
	if r.codeTakenLocked(code, businessID) {
		return repository.ErrJoinCodeTaken
	}
	b.JoinCode = code
	b.JoinCodeRotatedAt = rotatedAt
	r.s.businesses[businessID] = b
	return nil
}

func (r *businessRepository) ListJoinCodesRotatedBefore(ctx context.Context, before int64) ([]domain.Business, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []domain.Business
	for _, b := range r.s.businesses {
		if b.JoinCodeRotatedAt < before {
			out = append(out, b)
		}
	}
	slices.SortFunc(out, func(a, b domain.Business) int {
		return cmp.Compare(a.JoinCodeRotatedAt, b.JoinCodeRotatedAt)
	})
	return out, nil
}

func (r *businessRepository) codeTakenLocked(code, exceptID string) bool {
	for id, b := range r.s.businesses {
		if id != exceptID && b.JoinCode == code {
			return true
		}
	}
	return false
}
