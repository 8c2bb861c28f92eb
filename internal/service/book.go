package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cashbook-backend/internal/domain"
	"cashbook-backend/internal/events"
	"cashbook-backend/internal/ledger"
	"cashbook-backend/internal/logger"
	"cashbook-backend/internal/repository"

	"github.com/google/uuid"
)

type bookService struct {
	memberGate
	bookRepo  repository.BookRepository
	txRepo    repository.TransactionRepository
	publisher events.Publisher
	now       func() time.Time
}

func NewBookService(
	businessRepo repository.BusinessRepository,
	memberRepo repository.MemberRepository,
	bookRepo repository.BookRepository,
	txRepo repository.TransactionRepository,
	publisher events.Publisher,
) BookService {
	return &bookService{
		memberGate: memberGate{businessRepo: businessRepo, memberRepo: memberRepo},
		bookRepo:   bookRepo,
		txRepo:     txRepo,
		publisher:  publisher,
		now:        time.Now,
	}
}

func (s *bookService) CreateBook(ctx context.Context, session domain.Session, businessID, name string) (*domain.Book, error) {
	if _, _, err := s.authorize(ctx, session, businessID); err != nil {
		return nil, err
	}
	name, err := validateBookName(name)
	if err != nil {
		return nil, err
	}

	book := &domain.Book{
		ID:         uuid.NewString(),
		BusinessID: businessID,
		Name:       name,
		CreatedAt:  s.now().UnixMilli(),
	}
	if err := s.bookRepo.Create(ctx, book); err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}
	return book, nil
}

func (s *bookService) GetBook(ctx context.Context, session domain.Session, bookID string) (*domain.BookLedger, error) {
	book, _, err := s.loadBook(ctx, session, bookID, false)
	if err != nil {
		return nil, err
	}
	txs, err := s.txRepo.ListByBook(ctx, book.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	bookLedger, err := ledger.BuildBookLedger(*book, txs)
	if err != nil {
		return nil, err
	}
	return &bookLedger, nil
}

func (s *bookService) RenameBook(ctx context.Context, session domain.Session, bookID, name string) (*domain.Book, error) {
	book, _, err := s.loadBook(ctx, session, bookID, true)
	if err != nil {
		return nil, err
	}
	if book.Name, err = validateBookName(name); err != nil {
		return nil, err
	}
	if err := s.bookRepo.Update(ctx, book); err != nil {
		return nil, fmt.Errorf("failed to rename book: %w", err)
	}
	return book, nil
}

func (s *bookService) DeleteBook(ctx context.Context, session domain.Session, bookID string) error {
	if _, _, err := s.loadBook(ctx, session, bookID, true); err != nil {
		return err
	}
	if err := s.bookRepo.Delete(ctx, bookID); err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	logger.WithUser(session.UserID).InfoContext(ctx, "Book deleted", "book_id", bookID)
	return nil
}

func (s *bookService) AddTransaction(ctx context.Context, session domain.Session, bookID string, input TransactionInput) (*domain.Transaction, error) {
	book, _, err := s.loadBook(ctx, session, bookID, false)
	if err != nil {
		return nil, err
	}

	tx := &domain.Transaction{
		ID:        uuid.NewString(),
		BookID:    book.ID,
		CreatedAt: s.now().UnixMilli(),
	}
	applyInput(tx, input)
	if err := validateTransaction(*tx); err != nil {
		return nil, err
	}

	if err := s.txRepo.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}
	s.publishTransaction(ctx, domain.EventTransactionRecorded, book, tx, session)
	return tx, nil
}

// UpdateTransaction replaces every mutable field. ID, BookID and CreatedAt never change.
func (s *bookService) UpdateTransaction(ctx context.Context, session domain.Session, transactionID string, input TransactionInput) (*domain.Transaction, error) {
	tx, book, err := s.loadTransaction(ctx, session, transactionID)
	if err != nil {
		return nil, err
	}

	applyInput(tx, input)
	if err := validateTransaction(*tx); err != nil {
		return nil, err
	}
	if err := s.txRepo.Update(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}
	s.publishTransaction(ctx, domain.EventTransactionRecorded, book, tx, session)
	return tx, nil
}

func (s *bookService) DeleteTransaction(ctx context.Context, session domain.Session, transactionID string) error {
	tx, book, err := s.loadTransaction(ctx, session, transactionID)
	if err != nil {
		return err
	}
	if err := s.txRepo.Delete(ctx, tx.ID); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	s.publishTransaction(ctx, domain.EventTransactionDeleted, book, tx, session)
	return nil
}

// loadBook fetches a book and checks the session's access to its business.
func (s *bookService) loadBook(ctx context.Context, session domain.Session, bookID string, ownerOnly bool) (*domain.Book, *domain.Business, error) {
	if session.IsZero() {
		return nil, nil, ErrUnauthorized
	}
	book, err := s.bookRepo.GetByID(ctx, bookID)
	if err != nil {
		return nil, nil, err
	}
	authorize := s.authorize
	if ownerOnly {
		authorize = s.authorizeOwner
	}
	business, _, err := authorize(ctx, session, book.BusinessID)
	if err != nil {
		return nil, nil, err
	}
	return book, business, nil
}

func (s *bookService) loadTransaction(ctx context.Context, session domain.Session, transactionID string) (*domain.Transaction, *domain.Book, error) {
	if session.IsZero() {
		return nil, nil, ErrUnauthorized
	}
	tx, err := s.txRepo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, nil, err
	}
	book, _, err := s.loadBook(ctx, session, tx.BookID, false)
	if err != nil {
		return nil, nil, err
	}
	return tx, book, nil
}

func (s *bookService) publishTransaction(ctx context.Context, eventType domain.EventType, book *domain.Book, tx *domain.Transaction, session domain.Session) {
	event := domain.Event{
		Type:       eventType,
		BusinessID: book.BusinessID,
		BookID:     book.ID,
		ActorID:    session.UserID,
		Attributes: map[string]string{
			"transaction_id": tx.ID,
			"direction":      string(tx.Direction),
			"amount":         tx.Amount.String(),
		},
		OccurredAt: s.now().UnixMilli(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		logger.WarnContext(ctx, "Failed to publish event", "type", event.Type, "book_id", book.ID, "error", err)
	}
}

func applyInput(tx *domain.Transaction, input TransactionInput) {
	tx.Amount = input.Amount
	tx.Direction = domain.Direction(strings.ToUpper(string(input.Direction)))
	tx.Date = strings.TrimSpace(input.Date)
	tx.Time = strings.TrimSpace(input.Time)
	tx.Note = strings.TrimSpace(input.Note)
	tx.PartyName = trimOptional(input.PartyName)
	tx.Category = trimOptional(input.Category)
	tx.AttachmentURL = trimOptional(input.AttachmentURL)
}

// validateTransaction applies the ledger's shape rules plus the write-side rule that an entry moves money.
func validateTransaction(tx domain.Transaction) error {
	if err := ledger.Validate(tx); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if !tx.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than zero", ErrValidation)
	}
	return nil
}

func validateBookName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: book name is required", ErrValidation)
	}
	return name, nil
}

func trimOptional(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	if t == "" {
		return nil
	}
	return &t
}
