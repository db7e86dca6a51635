package commands

import (
	"context"

	"foodorder/internal/core/domain/events"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order placement.
// Creates new orders in Pending status and publishes OrderCreated once the
// order is durably committed.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, publisher)
//	cmd, _ := NewCreateOrderCommand(orderID, customerID, restaurantID, items, "")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	// Order is committed; the restaurant dashboard is notified asynchronously
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence and an
// EventPublisher for post-commit event publishing.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the order placement command.
// Creates the order in Pending status inside a transaction; only after a
// successful commit is OrderCreated published. Publishing is
// fire-and-forget: the caller's result reflects the committed order only.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.RestaurantID(),
		cmd.Items(),
		cmd.SpecialInstructions(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(events.OrderCreated{
		OrderID:      newOrder.ID(),
		OrderNumber:  newOrder.OrderNumber(),
		CustomerID:   newOrder.CustomerID(),
		RestaurantID: newOrder.RestaurantID(),
	})

	return nil
}
