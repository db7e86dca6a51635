package commands

import (
	"context"

	"foodorder/internal/core/domain/events"
	"foodorder/internal/core/ports"
)

// CancelOrderCommandHandler cancels an order when its current status
// allows it, failing with *order.CannotCancelError otherwise so callers
// can present a clearer message than a generic invalid transition.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the cancellation command under the same concurrency
// discipline as any other transition: row lock plus status-guarded write.
// OrderStatusChanged is published only after a successful commit.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	repo := uow.OrderRepository()
	o, err := repo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	previous := o.Status()
	if err = o.Cancel(); err != nil {
		return err
	}

	if err = repo.Update(ctx, o, previous); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(events.OrderStatusChanged{
		OrderID:      o.ID(),
		OrderNumber:  o.OrderNumber(),
		Previous:     previous,
		New:          o.Status(),
		CustomerID:   o.CustomerID(),
		RestaurantID: o.RestaurantID(),
	})

	return nil
}
