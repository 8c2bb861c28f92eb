package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"cashbook-backend/internal/domain"
	"cashbook-backend/internal/events"
	"cashbook-backend/internal/joincode"
	"cashbook-backend/internal/ledger"
	"cashbook-backend/internal/logger"
	"cashbook-backend/internal/notify"
	"cashbook-backend/internal/repository"

	"github.com/google/uuid"
)

const (
	DefaultCurrency = "INR"

	// a concurrent writer can claim a code between the existence check and the write
	maxCodeWriteAttempts = 3
)

var currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)

type businessService struct {
	memberGate
	bookRepo  repository.BookRepository
	txRepo    repository.TransactionRepository
	userRepo  repository.UserRepository
	codes     *joincode.Generator
	publisher events.Publisher
	notifier  notify.Notifier
	now       func() time.Time
}

func NewBusinessService(
	businessRepo repository.BusinessRepository,
	memberRepo repository.MemberRepository,
	bookRepo repository.BookRepository,
	txRepo repository.TransactionRepository,
	userRepo repository.UserRepository,
	codes *joincode.Generator,
	publisher events.Publisher,
	notifier notify.Notifier,
) BusinessService {
	return &businessService{
		memberGate: memberGate{businessRepo: businessRepo, memberRepo: memberRepo},
		bookRepo:   bookRepo,
		txRepo:     txRepo,
		userRepo:   userRepo,
		codes:      codes,
		publisher:  publisher,
		notifier:   notifier,
		now:        time.Now,
	}
}

func (s *businessService) ListBusinesses(ctx context.Context, session domain.Session) ([]domain.BusinessSummary, error) {
	if session.IsZero() {
		return nil, ErrUnauthorized
	}
	accesses, err := s.businessRepo.ListForUser(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list businesses: %w", err)
	}

	summaries := make([]domain.BusinessSummary, 0, len(accesses))
	for _, access := range accesses {
		members, err := s.memberRepo.ListByBusiness(ctx, access.Business.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list members: %w", err)
		}
		summary, err := s.summarize(ctx, session, access, members)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *businessService) GetBusiness(ctx context.Context, session domain.Session, businessID string) (*domain.BusinessSummary, error) {
	business, members, err := s.authorize(ctx, session, businessID)
	if err != nil {
		return nil, err
	}
	summary, err := s.summarize(ctx, session, ledger.Classify(session, *business, members), members)
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func (s *businessService) summarize(ctx context.Context, session domain.Session, access domain.BusinessAccess, members []domain.Member) (domain.BusinessSummary, error) {
	books, err := summarizeBooks(ctx, s.bookRepo, s.txRepo, access.Business.ID)
	if err != nil {
		return domain.BusinessSummary{}, err
	}
	membership := ledger.ResolveMembership(session, access, members)
	return ledger.AggregateBusiness(access.Business, books, membership), nil
}

func (s *businessService) CreateBusiness(ctx context.Context, session domain.Session, input BusinessInput) (*domain.Business, error) {
	if session.IsZero() {
		return nil, ErrUnauthorized
	}
	name, currency, err := validateBusiness(input.Name, input.Currency)
	if err != nil {
		return nil, err
	}
	if err := s.ensureUser(ctx, session); err != nil {
		return nil, err
	}

	now := s.now().UnixMilli()
	business := &domain.Business{
		ID:                uuid.NewString(),
		UserID:            session.UserID,
		Name:              name,
		Currency:          currency,
		JoinCodeRotatedAt: now,
		CreatedAt:         now,
	}
	for attempt := 1; ; attempt++ {
		business.JoinCode, err = s.codes.Next(ctx)
		if err != nil {
			return nil, err
		}
		err = s.businessRepo.Create(ctx, business)
		if !errors.Is(err, repository.ErrJoinCodeTaken) || attempt == maxCodeWriteAttempts {
			break
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create business: %w", err)
	}

	logger.WithUser(session.UserID).InfoContext(ctx, "Business created", "business_id", business.ID)
	return business, nil
}

func (s *businessService) UpdateBusiness(ctx context.Context, session domain.Session, businessID string, input BusinessUpdate) (*domain.Business, error) {
	business, _, err := s.authorizeOwner(ctx, session, businessID)
	if err != nil {
		return nil, err
	}

	name, currency := business.Name, business.Currency
	if input.Name != nil {
		name = *input.Name
	}
	if input.Currency != nil {
		currency = *input.Currency
	}
	if business.Name, business.Currency, err = validateBusiness(name, currency); err != nil {
		return nil, err
	}

	if err := s.businessRepo.Update(ctx, business); err != nil {
		return nil, fmt.Errorf("failed to update business: %w", err)
	}
	return business, nil
}

func (s *businessService) DeleteBusiness(ctx context.Context, session domain.Session, businessID string) error {
	if _, _, err := s.authorizeOwner(ctx, session, businessID); err != nil {
		return err
	}
	if err := s.businessRepo.Delete(ctx, businessID); err != nil {
		return fmt.Errorf("failed to delete business: %w", err)
	}
	logger.WithUser(session.UserID).InfoContext(ctx, "Business deleted", "business_id", businessID)
	return nil
}

func (s *businessService) RotateJoinCode(ctx context.Context, session domain.Session, businessID string) (*domain.Business, error) {
	business, _, err := s.authorizeOwner(ctx, session, businessID)
	if err != nil {
		return nil, err
	}
	if err := s.rotate(ctx, business, session.UserID); err != nil {
		return nil, err
	}
	return business, nil
}

// rotate overwrites the business's join code in place; the previous code stops working at once.
func (s *businessService) rotate(ctx context.Context, business *domain.Business, actorID string) error {
	rotatedAt := s.now().UnixMilli()
	var (
		code string
		err  error
	)
	for attempt := 1; ; attempt++ {
		code, err = s.codes.Next(ctx)
		if err != nil {
			return err
		}
		err = s.businessRepo.UpdateJoinCode(ctx, business.ID, code, rotatedAt)
		if !errors.Is(err, repository.ErrJoinCodeTaken) || attempt == maxCodeWriteAttempts {
			break
		}
	}
	if err != nil {
		return fmt.Errorf("failed to rotate join code: %w", err)
	}

	business.JoinCode = code
	business.JoinCodeRotatedAt = rotatedAt
	s.publish(ctx, domain.Event{
		Type:       domain.EventJoinCodeRotated,
		BusinessID: business.ID,
		ActorID:    actorID,
		OccurredAt: rotatedAt,
	})
	return nil
}

func (s *businessService) JoinBusiness(ctx context.Context, session domain.Session, code string) (*domain.BusinessSummary, error) {
	if session.IsZero() {
		return nil, ErrUnauthorized
	}
	code = strings.TrimSpace(code)
	if !joincode.Valid(code) {
		return nil, ErrInvalidCode
	}

	business, err := s.businessRepo.GetByJoinCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCode
		}
		return nil, fmt.Errorf("failed to look up join code: %w", err)
	}
	if ledger.IsOwner(session, *business) {
		return nil, ErrAlreadyMember
	}
	if err := s.ensureUser(ctx, session); err != nil {
		return nil, err
	}

	member := &domain.Member{
		BusinessID: business.ID,
		UserID:     session.UserID,
		Role:       domain.MemberRoleMember,
		JoinedAt:   s.now().UnixMilli(),
	}
	if err := s.memberRepo.Add(ctx, member); err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			return nil, ErrAlreadyMember
		}
		return nil, fmt.Errorf("failed to add member: %w", err)
	}
	logger.WithUser(session.UserID).InfoContext(ctx, "Member joined business", "business_id", business.ID)

	s.publish(ctx, domain.Event{
		Type:       domain.EventMemberJoined,
		BusinessID: business.ID,
		ActorID:    session.UserID,
		OccurredAt: member.JoinedAt,
	})
	if owner, err := s.userRepo.GetByID(ctx, business.UserID); err != nil {
		logger.WarnContext(ctx, "Failed to load business owner for notification", "business_id", business.ID, "error", err)
	} else if err := s.notifier.MemberJoined(ctx, recipient(owner), business.Name, displayName(session)); err != nil {
		logger.WarnContext(ctx, "Failed to notify owner of new member", "business_id", business.ID, "error", err)
	}

	return s.GetBusiness(ctx, session, business.ID)
}

func (s *businessService) ListMembers(ctx context.Context, session domain.Session, businessID string) ([]domain.Member, error) {
	_, members, err := s.authorize(ctx, session, businessID)
	if err != nil {
		return nil, err
	}
	return members, nil
}

// RemoveMember lets the owner remove anyone but themselves, and lets a member leave.
func (s *businessService) RemoveMember(ctx context.Context, session domain.Session, businessID, userID string) error {
	business, _, err := s.authorize(ctx, session, businessID)
	if err != nil {
		return err
	}
	if userID == business.UserID {
		return fmt.Errorf("%w: the owner cannot leave the business", ErrValidation)
	}
	if userID != session.UserID {
		if err := ledger.RequireOwner(session, *business); err != nil {
			return err
		}
	}
	if err := s.memberRepo.Remove(ctx, businessID, userID); err != nil {
		return err
	}
	logger.WithUser(session.UserID).InfoContext(ctx, "Member removed", "business_id", businessID, "member_id", userID)
	return nil
}

func (s *businessService) RotateExpiredJoinCodes(ctx context.Context, maxAge time.Duration) (int, error) {
	logger.EnterMethod("businessService.RotateExpiredJoinCodes", "maxAge", maxAge)

	before := s.now().Add(-maxAge).UnixMilli()
	expired, err := s.businessRepo.ListJoinCodesRotatedBefore(ctx, before)
	if err != nil {
		logger.ExitMethodWithError("businessService.RotateExpiredJoinCodes", err)
		return 0, fmt.Errorf("failed to list expired join codes: %w", err)
	}

	rotated := 0
	var errs []error
	for i := range expired {
		business := &expired[i]
		if err := s.rotate(ctx, business, ""); err != nil {
			logger.ErrorContext(ctx, "Failed to rotate expired join code", "business_id", business.ID, "error", err)
			errs = append(errs, err)
			continue
		}
		rotated++

		owner, err := s.userRepo.GetByID(ctx, business.UserID)
		if err != nil {
			logger.WarnContext(ctx, "Failed to load business owner for notification", "business_id", business.ID, "error", err)
			continue
		}
		if err := s.notifier.JoinCodeRotated(ctx, recipient(owner), business.Name, business.JoinCode); err != nil {
			logger.WarnContext(ctx, "Failed to notify owner of rotated join code", "business_id", business.ID, "error", err)
		}
	}

	logger.ExitMethod("businessService.RotateExpiredJoinCodes", "rotated", rotated, "failed", len(errs))
	return rotated, errors.Join(errs...)
}

func (s *businessService) ensureUser(ctx context.Context, session domain.Session) error {
	user := &domain.User{
		ID:        session.UserID,
		Name:      displayName(session),
		Email:     session.Email,
		CreatedAt: s.now().UnixMilli(),
	}
	if err := s.userRepo.Upsert(ctx, user); err != nil {
		return fmt.Errorf("failed to record user: %w", err)
	}
	return nil
}

func (s *businessService) publish(ctx context.Context, event domain.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		logger.WarnContext(ctx, "Failed to publish event", "type", event.Type, "business_id", event.BusinessID, "error", err)
	}
}

func validateBusiness(name, currency string) (string, string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "", fmt.Errorf("%w: business name is required", ErrValidation)
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = DefaultCurrency
	}
	if !currencyPattern.MatchString(currency) {
		return "", "", fmt.Errorf("%w: currency must be a 3-letter ISO code", ErrValidation)
	}
	return name, currency, nil
}

func displayName(session domain.Session) string {
	if session.Name != "" {
		return session.Name
	}
	return session.Email
}

func recipient(u *domain.User) notify.Recipient {
	return notify.Recipient{Name: u.Name, Email: u.Email}
}
