package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/veggiemart/shop-api/internal/models"
)

// TypeOrderCreated is the event type emitted after an order is stored
const TypeOrderCreated = "order.created"

// Publisher publishes domain events about orders.
type Publisher interface {
	PublishOrderCreated(ctx context.Context, order *models.Order) error
	Close() error
}

// OrderEvent is the JSON payload written to the topic
type OrderEvent struct {
	EventID    string        `json:"event_id"`
	Type       string        `json:"type"`
	OccurredAt time.Time     `json:"occurred_at"`
	Order      *models.Order `json:"order"`
}

// messageWriter is the subset of *kafka.Writer used by KafkaPublisher
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes order events to a Kafka topic, keyed by order ID.
type KafkaPublisher struct {
	writer  messageWriter
	nowFunc func() time.Time
}

// NewKafkaPublisher creates a publisher writing to topic on the given brokers
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		WriteTimeout:           5 * time.Second,
	}
	return &KafkaPublisher{
		writer:  w,
		nowFunc: time.Now,
	}
}

// PublishOrderCreated sends an order.created event and waits for the ack
func (p *KafkaPublisher) PublishOrderCreated(ctx context.Context, order *models.Order) error {
	msg, err := newOrderCreatedMessage(order, p.nowFunc().UTC())
	if err != nil {
		return err
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka: write order event: %w", err)
	}
	return nil
}

// Close flushes pending writes and closes the writer
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

func newOrderCreatedMessage(order *models.Order, now time.Time) (kafka.Message, error) {
	event := OrderEvent{
		EventID:    uuid.NewString(),
		Type:       TypeOrderCreated,
		OccurredAt: now,
		Order:      order,
	}

	data, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("kafka: marshal order event: %w", err)
	}

	return kafka.Message{
		Key:   []byte(order.ID.Hex()),
		Value: data,
		Time:  now,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(TypeOrderCreated)},
		},
	}, nil
}

// NopPublisher discards events. Used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) PublishOrderCreated(ctx context.Context, order *models.Order) error {
	return nil
}

func (NopPublisher) Close() error { return nil }
