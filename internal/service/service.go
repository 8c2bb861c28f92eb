package service

import (
	"context"
	"time"

	"cashbook-backend/internal/domain"

	"github.com/shopspring/decimal"
)

type BusinessService interface {
	ListBusinesses(ctx context.Context, session domain.Session) ([]domain.BusinessSummary, error)
	GetBusiness(ctx context.Context, session domain.Session, businessID string) (*domain.BusinessSummary, error)
	CreateBusiness(ctx context.Context, session domain.Session, input BusinessInput) (*domain.Business, error)
	UpdateBusiness(ctx context.Context, session domain.Session, businessID string, input BusinessUpdate) (*domain.Business, error)
	DeleteBusiness(ctx context.Context, session domain.Session, businessID string) error
	RotateJoinCode(ctx context.Context, session domain.Session, businessID string) (*domain.Business, error)
	JoinBusiness(ctx context.Context, session domain.Session, code string) (*domain.BusinessSummary, error)
	ListMembers(ctx context.Context, session domain.Session, businessID string) ([]domain.Member, error)
	RemoveMember(ctx context.Context, session domain.Session, businessID, userID string) error
	// RotateExpiredJoinCodes replaces every join code older than maxAge and reports how many were rotated.
	RotateExpiredJoinCodes(ctx context.Context, maxAge time.Duration) (int, error)
}

type BookService interface {
	CreateBook(ctx context.Context, session domain.Session, businessID, name string) (*domain.Book, error)
	GetBook(ctx context.Context, session domain.Session, bookID string) (*domain.BookLedger, error)
	RenameBook(ctx context.Context, session domain.Session, bookID, name string) (*domain.Book, error)
	DeleteBook(ctx context.Context, session domain.Session, bookID string) error
	AddTransaction(ctx context.Context, session domain.Session, bookID string, input TransactionInput) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, session domain.Session, transactionID string, input TransactionInput) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, session domain.Session, transactionID string) error
}

type BusinessInput struct {
	Name     string
	Currency string
}

// BusinessUpdate carries the fields to change; nil leaves a field as is.
type BusinessUpdate struct {
	Name     *string
	Currency *string
}

type TransactionInput struct {
	Amount        decimal.Decimal
	Direction     domain.Direction
	Date          string
	Time          string
	Note          string
	PartyName     *string
	Category      *string
	AttachmentURL *string
}
