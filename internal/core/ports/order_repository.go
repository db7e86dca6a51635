// Package ports defines the contracts between the application core and
// infrastructure adapters: repositories, the unit of work, the user
// directory, and event publishing. These interfaces enable dependency
// inversion and testability.
package ports

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// and for concurrency-safe status updates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, guarded by
	// the status the caller observed before mutating. The write applies
	// only when the stored status still equals expectedStatus; otherwise
	// an *order.InvalidTransitionError is returned and nothing changes.
	// This makes concurrent transitions from the same starting status
	// resolve to exactly one winner.
	Update(ctx context.Context, aggregate *order.Order, expectedStatus order.Status) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order aggregate and locks its row for the
	// duration of the surrounding transaction, serializing concurrent
	// transition attempts on the same order.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllReadyBefore retrieves orders in Ready status whose estimated
	// pickup time is before the given instant. Used by the pickup
	// reminder job.
	GetAllReadyBefore(ctx context.Context, t time.Time) ([]*order.Order, error)
}
