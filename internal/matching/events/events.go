// Package events publishes matching audit events to Kafka.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"matchmaker/internal/matching/models"
	"matchmaker/internal/platform/kafka/producer"
	id "matchmaker/pkg/domain"
)

// TopicIdealTypeChanged receives one record per ideal type write, keyed by profile.
const TopicIdealTypeChanged = "matchmaker.ideal-type-changed"

const eventTypeIdealTypeChanged = "ideal_type_changed"

// IdealTypeChanged records that a member's preferences were replaced. It
// carries the deal-breaker kinds only, not the preference values.
type IdealTypeChanged struct {
	ProfileID    id.ProfileID           `json:"profile_id"`
	DealBreakers []models.ConditionKind `json:"deal_breakers"`
	RequestID    string                 `json:"request_id,omitempty"`
	OccurredAt   time.Time              `json:"occurred_at"`
}

// Producer is the part of producer.Producer the publisher needs.
type Producer interface {
	Produce(ctx context.Context, msg *producer.Message) error
}

// Publisher writes events synchronously through a Producer.
type Publisher struct {
	producer Producer
}

// NewPublisher wraps p. Pass producer.NewNoopProducer when Kafka is not configured.
func NewPublisher(p Producer) *Publisher {
	if p == nil {
		panic("events: producer is required")
	}
	return &Publisher{producer: p}
}

// PublishIdealTypeChanged encodes e as JSON and produces it.
func (p *Publisher) PublishIdealTypeChanged(ctx context.Context, e IdealTypeChanged) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode ideal type event: %w", err)
	}
	headers := map[string]string{"event_type": eventTypeIdealTypeChanged}
	if e.RequestID != "" {
		headers["request_id"] = e.RequestID
	}
	msg := &producer.Message{
		Topic:   TopicIdealTypeChanged,
		Key:     []byte(e.ProfileID.String()),
		Value:   payload,
		Headers: headers,
	}
	if err := p.producer.Produce(ctx, msg); err != nil {
		return fmt.Errorf("publish ideal type event: %w", err)
	}
	return nil
}
