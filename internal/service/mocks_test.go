package service

import (
	"context"
	"testing"
	"time"

	"cashbook-backend/internal/domain"
	"cashbook-backend/internal/joincode"
	"cashbook-backend/internal/notify"
	"cashbook-backend/internal/repository/memory"

	"github.com/stretchr/testify/mock"
)

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, event domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockPublisher) Close() error {
	return m.Called().Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) MemberJoined(ctx context.Context, owner notify.Recipient, businessName, memberName string) error {
	args := m.Called(ctx, owner, businessName, memberName)
	return args.Error(0)
}

func (m *MockNotifier) JoinCodeRotated(ctx context.Context, owner notify.Recipient, businessName, code string) error {
	args := m.Called(ctx, owner, businessName, code)
	return args.Error(0)
}

var (
	owner    = domain.Session{UserID: "user-owner", Email: "owner@example.com", Name: "Owner"}
	member   = domain.Session{UserID: "user-member", Email: "member@example.com", Name: "Member"}
	stranger = domain.Session{UserID: "user-stranger", Email: "stranger@example.com", Name: "Stranger"}
)

type fixture struct {
	store      *memory.Store
	businesses *businessService
	books      *bookService
	publisher  *MockPublisher
	notifier   *MockNotifier
	clock      time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	pub := new(MockPublisher)
	pub.On("Publish", mock.Anything, mock.Anything).Return(nil).Maybe()
	notifier := new(MockNotifier)

	f := &fixture{
		store:     store,
		publisher: pub,
		notifier:  notifier,
		clock:     time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
	}
	codes := joincode.NewGenerator(store.BusinessRepository.JoinCodeExists, 10)
	f.businesses = NewBusinessService(
		store.BusinessRepository, store.MemberRepository, store.BookRepository,
		store.TransactionRepository, store.UserRepository, codes, pub, notifier,
	).(*businessService)
	f.books = NewBookService(
		store.BusinessRepository, store.MemberRepository, store.BookRepository,
		store.TransactionRepository, pub,
	).(*bookService)
	f.businesses.now = f.now
	f.books.now = f.now
	return f
}

// now advances the clock by one millisecond per call so creation times are distinct.
func (f *fixture) now() time.Time {
	f.clock = f.clock.Add(time.Millisecond)
	return f.clock
}
