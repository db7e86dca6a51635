package ports

import (
	"foodorder/internal/core/domain/events"
)

// EventPublisher hands domain events to the asynchronous notification
// pipeline. Publish is fire-and-forget: it never blocks on handler work,
// returns nothing to observe, and a publishing failure must never fail
// the state change that produced the event.
type EventPublisher interface {
	Publish(event events.DomainEvent)
}
