package messaging

import (
	"context"

	"github.com/azkarapp/azkar-backend/internal/domain/event"
)

// EventPublisher defines the interface for publishing domain events.
type EventPublisher interface {
	// Publish publishes a single event.
	Publish(ctx context.Context, evt event.Event) error

	// PublishAll publishes multiple events.
	PublishAll(ctx context.Context, events []event.Event) error
}

// Topic names for domain events.
const (
	TopicUserEvents      = "users"
	TopicAuthEvents      = "auth"
	TopicGroupEvents     = "groups"
	TopicChallengeEvents = "challenges"
)

// TopicForEvent returns the appropriate topic for an event type.
func TopicForEvent(evt event.Event) string {
	switch evt.AggregateType() {
	case event.AggregateTypeUser:
		// Auth events go to a separate topic
		if evt.EventType() == event.EventTypeAuthenticationSucceeded ||
			evt.EventType() == event.EventTypeAuthenticationFailed {
			return TopicAuthEvents
		}
		return TopicUserEvents
	case event.AggregateTypeGroup:
		return TopicGroupEvents
	case event.AggregateTypeChallenge:
		return TopicChallengeEvents
	default:
		return TopicUserEvents
	}
}
