package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	log "github.com/sirupsen/logrus"

	"github.com/tm-acme-shop/acme-shop-pos-service/internal/config"
	"github.com/tm-acme-shop/acme-shop-pos-service/internal/models"
)

// Ensure KafkaPublisher implements CheckoutEventPublisher
var _ CheckoutEventPublisher = (*KafkaPublisher)(nil)

// EventType represents the type of cart event.
type EventType string

const (
	EventTypeCheckoutSubmitted EventType = "checkout.submitted"
	EventTypeCartCleared       EventType = "cart.cleared"
)

// CartEvent represents a cart-related event.
type CartEvent struct {
	ID        string          `json:"id"`
	Type      EventType       `json:"type"`
	OwnerID   string          `json:"owner_id"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// CheckoutEventPublisher publishes cart lifecycle events. Publication is
// best-effort: failures are logged by callers, never surfaced to shoppers.
type CheckoutEventPublisher interface {
	PublishCheckoutSubmitted(ctx context.Context, ownerID string, order *models.CreateOrderRequest, preview models.OrderSummary) error
	PublishCartCleared(ctx context.Context, ownerID string) error
	Close() error
}

// KafkaPublisher publishes cart events to Kafka.
type KafkaPublisher struct {
	writer *kafka.Writer
	topic  string
	logger *log.Entry
}

// NewKafkaPublisher creates a new Kafka-based event publisher.
func NewKafkaPublisher(cfg config.KafkaConfig) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.CheckoutTopic,
		Balancer:     &kafka.LeastBytes{},
		WriteTimeout: 10 * time.Second,
		RequiredAcks: kafka.RequireOne,
	}

	return &KafkaPublisher{
		writer: writer,
		topic:  cfg.CheckoutTopic,
		logger: log.WithField("component", "event-publisher"),
	}
}

// PublishCheckoutSubmitted publishes a checkout submission with the payload
// that went to the platform and the locally previewed summary.
func (p *KafkaPublisher) PublishCheckoutSubmitted(ctx context.Context, ownerID string, order *models.CreateOrderRequest, preview models.OrderSummary) error {
	payload := struct {
		Order   *models.CreateOrderRequest `json:"order"`
		Preview models.OrderSummary        `json:"preview"`
	}{
		Order:   order,
		Preview: preview,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return p.publish(ctx, &CartEvent{
		ID:        uuid.New().String(),
		Type:      EventTypeCheckoutSubmitted,
		OwnerID:   ownerID,
		Data:      data,
		Timestamp: time.Now(),
	})
}

// PublishCartCleared publishes an explicit cart clear.
func (p *KafkaPublisher) PublishCartCleared(ctx context.Context, ownerID string) error {
	return p.publish(ctx, &CartEvent{
		ID:        uuid.New().String(),
		Type:      EventTypeCartCleared,
		OwnerID:   ownerID,
		Timestamp: time.Now(),
	})
}

func (p *KafkaPublisher) publish(ctx context.Context, event *CartEvent) error {
	eventData, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.OwnerID),
		Value: eventData,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
			{Key: "event_id", Value: []byte(event.ID)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.WithFields(log.Fields{
			"event_id":   event.ID,
			"event_type": event.Type,
			"owner_id":   event.OwnerID,
			"error":      err.Error(),
		}).Error("Failed to publish event")
		return err
	}

	p.logger.WithFields(log.Fields{
		"event_id":   event.ID,
		"event_type": event.Type,
		"owner_id":   event.OwnerID,
	}).Info("Event published")

	return nil
}

// Close closes the Kafka writer.
func (p *KafkaPublisher) Close() error {
	p.logger.Info("Closing Kafka publisher")
	return p.writer.Close()
}

// MockEventPublisher is a mock implementation for testing.
type MockEventPublisher struct {
	Events []*CartEvent
}

func NewMockEventPublisher() *MockEventPublisher {
	return &MockEventPublisher{
		Events: make([]*CartEvent, 0),
	}
}

func (m *MockEventPublisher) PublishCheckoutSubmitted(ctx context.Context, ownerID string, order *models.CreateOrderRequest, preview models.OrderSummary) error {
	m.Events = append(m.Events, &CartEvent{
		Type:    EventTypeCheckoutSubmitted,
		OwnerID: ownerID,
	})
	return nil
}

func (m *MockEventPublisher) PublishCartCleared(ctx context.Context, ownerID string) error {
	m.Events = append(m.Events, &CartEvent{
		Type:    EventTypeCartCleared,
		OwnerID: ownerID,
	})
	return nil
}

func (m *MockEventPublisher) Close() error { return nil }
