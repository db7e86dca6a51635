// Package notifier implements the live-push subsystem: a concurrency-safe
// registry of open connections keyed by audience, a dispatcher that
// broadcasts serialized payloads to every live connection for a key, and
// the wire payload shapes pushed to clients.
//
// Delivery is best-effort over live connections. "Recipient offline" is
// the common case and is reported as an ordinary result
// (DispatchResult.Attempted == 0), never as an error; the durable
// notification record is the fallback of record.
package notifier

import (
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
)

// audienceKind separates the customer and restaurant key spaces so a
// customer and a restaurant sharing an identifier never collide in the
// registry.
type audienceKind string

const (
	audienceCustomer   audienceKind = "customer"
	audienceRestaurant audienceKind = "restaurant"
)

// AudienceKey identifies a notification target: a customer or a
// restaurant dashboard. It is an immutable value used as the registry
// map key.
type AudienceKey struct {
	kind audienceKind
	id   kernel.UUID
}

// CustomerKey builds the audience key for a customer's live sessions.
func CustomerKey(id kernel.UUID) AudienceKey {
	return AudienceKey{kind: audienceCustomer, id: id}
}

// RestaurantKey builds the audience key for a restaurant dashboard's
// live sessions.
func RestaurantKey(id kernel.UUID) AudienceKey {
	return AudienceKey{kind: audienceRestaurant, id: id}
}

// Validate checks that the key carries a constructed identifier.
func (k AudienceKey) Validate() error {
	return k.id.Validate()
}

// ID returns the identifier part of the key.
func (k AudienceKey) ID() kernel.UUID {
	return k.id
}

// String returns the key in "kind:uuid" form, used for logging.
func (k AudienceKey) String() string {
	return fmt.Sprintf("%s:%s", k.kind, k.id)
}
