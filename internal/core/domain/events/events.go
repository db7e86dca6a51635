// Package events defines the domain events emitted by the order lifecycle
// and the contract they share. Events are published after the state change
// that produced them has been durably committed; handlers therefore never
// retry or influence the originating transaction.
package events

import (
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// Event names, used as the discriminant in logs and wire payloads.
const (
	NameOrderCreated       = "order.created"
	NameOrderStatusChanged = "order.status_changed"
)

// DomainEvent is implemented by every event carried on the bus.
type DomainEvent interface {
	// Name returns the event's stable string discriminant.
	Name() string
}

// OrderCreated signals that a new order was committed in Pending status.
type OrderCreated struct {
	OrderID      kernel.UUID
	OrderNumber  string
	CustomerID   kernel.UUID
	RestaurantID kernel.UUID
}

// Name implements DomainEvent.
func (OrderCreated) Name() string { return NameOrderCreated }

// OrderStatusChanged signals that an order's status transition was
// committed. Previous and New carry the validated (from, to) pair.
type OrderStatusChanged struct {
	OrderID      kernel.UUID
	OrderNumber  string
	Previous     order.Status
	New          order.Status
	CustomerID   kernel.UUID
	RestaurantID kernel.UUID
}

// Name implements DomainEvent.
func (OrderStatusChanged) Name() string { return NameOrderStatusChanged }
