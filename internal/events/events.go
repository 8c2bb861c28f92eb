package events

import (
	"context"

	"cashbook-backend/internal/domain"
	"cashbook-backend/internal/logger"
)

// Publisher delivers domain events to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, event domain.Event) error
	Close() error
}

// LogPublisher writes events to the application log. Used when Kafka is disabled.
type LogPublisher struct{}

func NewLogPublisher() *LogPublisher {
	return &LogPublisher{}
}

func (p *LogPublisher) Publish(ctx context.Context, event domain.Event) error {
	logger.InfoContext(ctx, "Domain event",
		"type", event.Type,
		"business_id", event.BusinessID,
		"book_id", event.BookID,
		"actor_id", event.ActorID,
	)
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}
