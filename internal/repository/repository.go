package repository

import (
	"context"
	"errors"

	"cashbook-backend/internal/domain"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrJoinCodeTaken  = errors.New("join code already in use")
	ErrDuplicateEntry = errors.New("record already exists")
)

type UserRepository interface {
	Upsert(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type BusinessRepository interface {
	// Create stores the business together with its owner's OWNER membership; either both are written or neither.
	Create(ctx context.Context, business *domain.Business) error
	GetByID(ctx context.Context, id string) (*domain.Business, error)
	Update(ctx context.Context, business *domain.Business) error
	Delete(ctx context.Context, id string) error
	// ListForUser returns every business the user owns or has joined, tagged with how they reach it.
	ListForUser(ctx context.Context, userID string) ([]domain.BusinessAccess, error)

	// Join code
	GetByJoinCode(ctx context.Context, code string) (*domain.Business, error)
	JoinCodeExists(ctx context.Context, code string) (bool, error)
	// UpdateJoinCode overwrites the single current code; the previous one stops working immediately.
	UpdateJoinCode(ctx context.Context, businessID, code string, rotatedAt int64) error
	ListJoinCodesRotatedBefore(ctx context.Context, before int64) ([]domain.Business, error)
}

type MemberRepository interface {
	Add(ctx context.Context, member *domain.Member) error
	Get(ctx context.Context, businessID, userID string) (*domain.Member, error)
	Remove(ctx context.Context, businessID, userID string) error
	ListByBusiness(ctx context.Context, businessID string) ([]domain.Member, error)
}

type BookRepository interface {
	Create(ctx context.Context, book *domain.Book) error
	GetByID(ctx context.Context, id string) (*domain.Book, error)
	Update(ctx context.Context, book *domain.Book) error
	Delete(ctx context.Context, id string) error
	ListByBusiness(ctx context.Context, businessID string) ([]domain.Book, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, tx *domain.Transaction) error
	GetByID(ctx context.Context, id string) (*domain.Transaction, error)
	Update(ctx context.Context, tx *domain.Transaction) error
	Delete(ctx context.Context, id string) error
	// ListByBook returns the book's full transaction set in no particular order.
	ListByBook(ctx context.Context, bookID string) ([]domain.Transaction, error)
}
