package service

import (
	"context"
	"fmt"

	"cashbook-backend/internal/domain"
	"cashbook-backend/internal/ledger"
	"cashbook-backend/internal/repository"
)

// memberGate loads a business with its members and checks the session may see it.
type memberGate struct {
	businessRepo repository.BusinessRepository
	memberRepo   repository.MemberRepository
}

func (g memberGate) authorize(ctx context.Context, session domain.Session, businessID string) (*domain.Business, []domain.Member, error) {
	if session.IsZero() {
		return nil, nil, ErrUnauthorized
	}
	business, err := g.businessRepo.GetByID(ctx, businessID)
	if err != nil {
		return nil, nil, err
	}
	members, err := g.memberRepo.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list members: %w", err)
	}
	if err := ledger.RequireMember(session, *business, members); err != nil {
		return nil, nil, err
	}
	return business, members, nil
}

// authorizeOwner is authorize followed by the owner check.
func (g memberGate) authorizeOwner(ctx context.Context, session domain.Session, businessID string) (*domain.Business, []domain.Member, error) {
	business, members, err := g.authorize(ctx, session, businessID)
	if err != nil {
		return nil, nil, err
	}
	if err := ledger.RequireOwner(session, *business); err != nil {
		return nil, nil, err
	}
	return business, members, nil
}

func summarizeBooks(ctx context.Context, bookRepo repository.BookRepository, txRepo repository.TransactionRepository, businessID string) ([]domain.BookSummary, error) {
	books, err := bookRepo.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	summaries := make([]domain.BookSummary, 0, len(books))
	for _, book := range books {
		txs, err := txRepo.ListByBook(ctx, book.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list transactions of book %s: %w", book.ID, err)
		}
		summary, err := ledger.AggregateBook(book, txs)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}
