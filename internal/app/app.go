package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"cashbook-backend/internal/config"
	"cashbook-backend/internal/events"
	"cashbook-backend/internal/events/kafka"
	"cashbook-backend/internal/joincode"
	"cashbook-backend/internal/logger"
	"cashbook-backend/internal/notify"
	"cashbook-backend/internal/repository"
	"cashbook-backend/internal/repository/memory"
	"cashbook-backend/internal/repository/postgres"
	"cashbook-backend/internal/service"

	_ "github.com/lib/pq"
)

// Repositories is the storage backend selected by storage.type.
type Repositories struct {
	Users        repository.UserRepository
	Businesses   repository.BusinessRepository
	Members      repository.MemberRepository
	Books        repository.BookRepository
	Transactions repository.TransactionRepository
}

// App holds the wired services shared by the server and the cron runner.
type App struct {
	Repositories *Repositories
	Business     service.BusinessService
	Book         service.BookService

	closers []func() error
}

// New opens storage and builds every service from cfg.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{}

	repos, err := a.openRepositories(ctx, cfg)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Repositories = repos

	publisher := newPublisher(cfg)
	a.closers = append(a.closers, publisher.Close)
	notifier := newNotifier(cfg)

	codes := joincode.NewGenerator(repos.Businesses.JoinCodeExists, cfg.JoinCode.MaxAttempts)
	a.Business = service.NewBusinessService(
		repos.Businesses,
		repos.Members,
		repos.Books,
		repos.Transactions,
		repos.Users,
		codes,
		publisher,
		notifier,
	)
	a.Book = service.NewBookService(
		repos.Businesses,
		repos.Members,
		repos.Books,
		repos.Transactions,
		publisher,
	)
	return a, nil
}

// Close releases storage and broker connections in reverse order of opening.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			logger.Warn("Failed to close resource", "error", err)
		}
	}
	a.closers = nil
}

func (a *App) openRepositories(ctx context.Context, cfg *config.Config) (*Repositories, error) {
	if cfg.Storage.Type == config.StorageTypeMemory {
		logger.Warn("Using in-memory storage, data is lost on restart")
		store := memory.NewStore()
		return &Repositories{
			Users:        store.UserRepository,
			Businesses:   store.BusinessRepository,
			Members:      store.MemberRepository,
			Books:        store.BookRepository,
			Transactions: store.TransactionRepository,
		}, nil
	}

	db, err := OpenDatabase(ctx, cfg)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, db.Close)

	store := postgres.NewStore(db)
	return &Repositories{
		Users:        store.UserRepository,
		Businesses:   store.BusinessRepository,
		Members:      store.MemberRepository,
		Books:        store.BookRepository,
		Transactions: store.TransactionRepository,
	}, nil
}

// OpenDatabase connects to PostgreSQL and verifies the connection.
func OpenDatabase(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database)
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	logger.Info("Database connection established")
	return db, nil
}

func newPublisher(cfg *config.Config) events.Publisher {
	if !cfg.Kafka.Enabled {
		logger.Info("Kafka disabled, domain events are logged only")
		return events.NewLogPublisher()
	}
	logger.Info("Publishing domain events to Kafka", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	return kafka.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
}

func newNotifier(cfg *config.Config) notify.Notifier {
	if !cfg.SendGrid.Enabled {
		logger.Info("SendGrid disabled, notifications are logged only")
		return notify.NewLogNotifier()
	}
	return notify.NewSendGridNotifier(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
}
