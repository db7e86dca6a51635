// Package eventhandlers contains the application-layer subscribers that
// turn committed domain events into notifications. Handlers run on the
// event bus's worker goroutines, after the originating transaction has
// committed; their errors are logged by the bus and never reach the
// caller that triggered the event.
package eventhandlers

import (
	"context"
	"log/slog"
	"strings"

	"foodorder/internal/core/domain/events"
	"foodorder/internal/core/ports"
	"foodorder/internal/notifier"
)

// fallbackCustomerName is used when the user directory cannot resolve a
// customer. A failed lookup degrades the display name, never the push.
const fallbackCustomerName = "Customer"

// OrderCreatedHandler notifies a restaurant's live dashboard sessions
// when a new order is placed. The customer gets no notification on
// creation: they performed the action themselves.
type OrderCreatedHandler struct {
	orders     ports.OrderRepository
	users      ports.UserDirectory
	dispatcher *notifier.Dispatcher
	logger     *slog.Logger
}

// NewOrderCreatedHandler creates a handler for OrderCreated events.
// Requires a read-path order repository, the user directory for display
// names, and the dispatcher for the restaurant audience.
func NewOrderCreatedHandler(
	orders ports.OrderRepository,
	users ports.UserDirectory,
	dispatcher *notifier.Dispatcher,
	logger *slog.Logger,
) *OrderCreatedHandler {
	return &OrderCreatedHandler{
		orders:     orders,
		users:      users,
		dispatcher: dispatcher,
		logger:     logger.With("component", "order_created_handler"),
	}
}

// Handle processes an OrderCreated event. Events of any other type are
// ignored. The order is re-read to pick up the committed total; the
// customer name lookup degrades to a placeholder on any directory error.
func (h *OrderCreatedHandler) Handle(ctx context.Context, event events.DomainEvent) error {
	created, ok := event.(events.OrderCreated)
	if !ok {
		return nil
	}

	o, err := h.orders.Get(ctx, created.OrderID)
	if err != nil {
		return err
	}

	payload, err := notifier.NewNewOrderPayload(
		created.OrderID.String(),
		created.OrderNumber,
		h.customerName(ctx, created),
		int64(o.Total().Amount()),
	)
	if err != nil {
		return err
	}

	result := h.dispatcher.Dispatch(notifier.RestaurantKey(created.RestaurantID), payload)
	h.logger.Debug("new order pushed to restaurant",
		"order", created.OrderNumber, "delivered", result.Delivered)

	return nil
}

func (h *OrderCreatedHandler) customerName(ctx context.Context, created events.OrderCreated) string {
	profile, err := h.users.FindByID(ctx, created.CustomerID)
	if err != nil {
		h.logger.Debug("customer lookup failed, using placeholder",
			"customer_id", created.CustomerID.String(), "error", err)
		return fallbackCustomerName
	}

	name := strings.TrimSpace(profile.FirstName + " " + profile.LastName)
	if name == "" {
		return fallbackCustomerName
	}
	return name
}
