package app

import (
	"context"
	"testing"

	"cashbook-backend/internal/config"
	"cashbook-backend/internal/domain"
	"cashbook-backend/internal/events"
	"cashbook-backend/internal/events/kafka"
	"cashbook-backend/internal/notify"
	"cashbook-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryConfig() *config.Config {
	return &config.Config{
		Storage:  config.StorageConfig{Type: config.StorageTypeMemory},
		JoinCode: config.JoinCodeConfig{MaxAttempts: 10},
	}
}

func TestNew_MemoryStorage(t *testing.T) {
	a, err := New(context.Background(), memoryConfig())
	require.NoError(t, err)
	defer a.Close()

	session := domain.Session{UserID: "user-1", Email: "a@example.com"}
	b, err := a.Business.CreateBusiness(context.Background(), session, service.BusinessInput{Name: "Shop"})
	require.NoError(t, err)

	book, err := a.Book.CreateBook(context.Background(), session, b.ID, "Cash")
	require.NoError(t, err)
	assert.Equal(t, b.ID, book.BusinessID)
}

func TestNewPublisher(t *testing.T) {
	cfg := memoryConfig()
	assert.IsType(t, &events.LogPublisher{}, newPublisher(cfg))

	cfg.Kafka = config.KafkaConfig{Enabled: true, Brokers: []string{"localhost:9092"}, Topic: "cashbook.events"}
	p := newPublisher(cfg)
	assert.IsType(t, &kafka.Publisher{}, p)
	assert.NoError(t, p.Close())
}

func TestNewNotifier(t *testing.T) {
	cfg := memoryConfig()
	assert.IsType(t, &notify.LogNotifier{}, newNotifier(cfg))

	cfg.SendGrid = config.SendGridConfig{Enabled: true, APIKey: "SG.test", FromEmail: "noreply@example.com"}
	assert.IsType(t, &notify.SendGridNotifier{}, newNotifier(cfg))
}
