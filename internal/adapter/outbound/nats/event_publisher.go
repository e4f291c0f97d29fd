package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/azkarapp/azkar-backend/internal/domain/event"
	"github.com/azkarapp/azkar-backend/internal/port/outbound/messaging"
)

const (
	defaultSubjectPrefix = "azkar"
	envelopeSource       = "azkar-backend"

	headerEventType = "Azkar-Event-Type"
	headerEventID   = "Azkar-Event-Id"
)

// eventPublisher implements messaging.EventPublisher over a NATS connection.
// Each event goes out on <prefix>.<topic> with type and id headers, so
// consumers can route without decoding the envelope.
type eventPublisher struct {
	conn          *nats.Conn
	subjectPrefix string
}

// NewEventPublisher creates a new EventPublisher.
func NewEventPublisher(conn *nats.Conn, subjectPrefix string) messaging.EventPublisher {
	if subjectPrefix == "" {
		subjectPrefix = defaultSubjectPrefix
	}
	return &eventPublisher{
		conn:          conn,
		subjectPrefix: subjectPrefix,
	}
}

func (p *eventPublisher) Publish(ctx context.Context, evt event.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(newEventEnvelope(evt))
	if err != nil {
		return fmt.Errorf("failed to marshal event %s: %w", evt.EventType(), err)
	}

	msg := &nats.Msg{
		Subject: p.subjectFor(evt),
		Data:    data,
		Header: nats.Header{
			headerEventType: []string{evt.EventType()},
			headerEventID:   []string{evt.EventID().String()},
		},
	}

	if err := p.conn.PublishMsg(msg); err != nil {
		return fmt.Errorf("failed to publish event %s: %w", evt.EventType(), err)
	}
	return nil
}

func (p *eventPublisher) PublishAll(ctx context.Context, events []event.Event) error {
	for _, evt := range events {
		if err := p.Publish(ctx, evt); err != nil {
			return err
		}
	}
	return nil
}

func (p *eventPublisher) subjectFor(evt event.Event) string {
	return p.subjectPrefix + "." + messaging.TopicForEvent(evt)
}

// eventEnvelope is the wire form of a domain event.
type eventEnvelope struct {
	ID            string      `json:"id"`
	Type          string      `json:"type"`
	Source        string      `json:"source"`
	AggregateID   string      `json:"aggregate_id"`
	AggregateType string      `json:"aggregate_type"`
	OccurredAt    time.Time   `json:"occurred_at"`
	Payload       event.Event `json:"payload"`
}

func newEventEnvelope(evt event.Event) eventEnvelope {
	return eventEnvelope{
		ID:            evt.EventID().String(),
		Type:          evt.EventType(),
		Source:        envelopeSource,
		AggregateID:   evt.AggregateID().String(),
		AggregateType: evt.AggregateType(),
		OccurredAt:    evt.OccurredAt().Time(),
		Payload:       evt,
	}
}
