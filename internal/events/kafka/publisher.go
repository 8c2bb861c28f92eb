package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"cashbook-backend/internal/domain"
	"cashbook-backend/internal/logger"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher sends domain events to a single topic, keyed by business id so that
// events of one business land on one partition in order.
type Publisher struct {
	writer messageWriter
	topic  string
}

func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
		},
		topic: topic,
	}
}

func (p *Publisher) Publish(ctx context.Context, event domain.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}

	logger.ExternalServiceCall("kafka", "WriteMessages", "topic", p.topic, "type", event.Type)
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.BusinessID),
		Value: data,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
		},
	})
	logger.ExternalServiceResult("kafka", "WriteMessages", err, "topic", p.topic, "type", event.Type)
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", event.Type, err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
