package eventhandlers

import (
	"context"
	"log/slog"

	"foodorder/internal/core/domain/events"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/notification"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"
	"foodorder/internal/notifier"
)

// OrderStatusChangedHandler fans a committed status transition out to the
// notification pipeline: it persists a durable inbox record for the
// customer, pushes the same content to the customer's live sessions, and
// pushes a lighter transition summary to the restaurant dashboard.
//
// The inbox record is written first, inside its own transaction, so an
// offline customer still finds the notification on their next inbox
// read even if every push fails.
type OrderStatusChangedHandler struct {
	uowFactory ports.UnitOfWorkFactory
	composer   services.NotificationComposer
	dispatcher *notifier.Dispatcher
	logger     *slog.Logger
}

// NewOrderStatusChangedHandler creates a handler for OrderStatusChanged events.
func NewOrderStatusChangedHandler(
	uowFactory ports.UnitOfWorkFactory,
	composer services.NotificationComposer,
	dispatcher *notifier.Dispatcher,
	logger *slog.Logger,
) *OrderStatusChangedHandler {
	return &OrderStatusChangedHandler{
		uowFactory: uowFactory,
		composer:   composer,
		dispatcher: dispatcher,
		logger:     logger.With("component", "order_status_changed_handler"),
	}
}

// Handle processes an OrderStatusChanged event. Events of any other type
// are ignored. A status with no notification copy is logged at info and
// produces nothing; that is a product decision, not a failure.
func (h *OrderStatusChangedHandler) Handle(ctx context.Context, event events.DomainEvent) error {
	changed, ok := event.(events.OrderStatusChanged)
	if !ok {
		return nil
	}

	copy, ok := h.composer.Compose(changed.OrderNumber, changed.New)
	if !ok {
		h.logger.Info("no notification for status",
			"order", changed.OrderNumber, "status", changed.New.String())
		return nil
	}

	if err := h.persistNotification(ctx, changed, copy); err != nil {
		return err
	}

	customerPayload, err := notifier.NewNotificationPayload(
		string(copy.Kind), copy.Title, copy.Body, changed.OrderID.String())
	if err != nil {
		return err
	}
	customerResult := h.dispatcher.Dispatch(notifier.CustomerKey(changed.CustomerID), customerPayload)

	restaurantPayload, err := notifier.NewStatusChangedPayload(
		changed.OrderID.String(), changed.OrderNumber,
		changed.Previous.String(), changed.New.String())
	if err != nil {
		return err
	}
	restaurantResult := h.dispatcher.Dispatch(notifier.RestaurantKey(changed.RestaurantID), restaurantPayload)

	h.logger.Debug("status change fanned out",
		"order", changed.OrderNumber,
		"status", changed.New.String(),
		"customer_delivered", customerResult.Delivered,
		"restaurant_delivered", restaurantResult.Delivered)

	return nil
}

// persistNotification writes the durable inbox record in its own
// transaction before any push is attempted.
func (h *OrderStatusChangedHandler) persistNotification(
	ctx context.Context,
	changed events.OrderStatusChanged,
	copy services.NotificationCopy,
) error {
	record, err := notification.NewNotification(
		kernel.NewUUID(), changed.CustomerID, copy.Kind, copy.Title, copy.Body)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.NotificationRepository().Add(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
