package commands

import (
	"context"

	"foodorder/internal/core/domain/events"
	"foodorder/internal/core/ports"
)

// ChangeOrderStatusCommandHandler applies a validated status transition to
// an order and publishes OrderStatusChanged once the transition is
// durably committed.
//
// The check-and-apply is atomic with respect to concurrent transition
// attempts on the same order: the row is locked for the transaction and
// the write is guarded by the previously observed status, so of N
// concurrent attempts from the same starting status exactly one commits
// and the rest fail with *order.InvalidTransitionError.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewChangeOrderStatusCommandHandler creates a handler for status transitions.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory, publisher ports.EventPublisher,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the transition command.
// Domain errors (*order.InvalidTransitionError) propagate synchronously
// to the caller; the asynchronous notification path can never fail the
// transition, because it only starts after Commit succeeds.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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
	if err = o.TransitionTo(cmd.Target()); err != nil {
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
