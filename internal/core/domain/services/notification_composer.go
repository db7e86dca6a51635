package services

import (
	"fmt"

	"foodorder/internal/core/domain/model/notification"
	"foodorder/internal/core/domain/model/order"
)

// NotificationCopy is the user-facing content composed for a status change.
type NotificationCopy struct {
	Kind  notification.Kind
	Title string
	Body  string
}

// NotificationComposer is a domain service that turns an order status
// change into user-facing notification copy.
//
// Key responsibilities:
//   - Mapping each notification-worthy status to a notification kind
//   - Producing the title and body shown to the customer
//
// Business rules:
//   - Not every status produces a notification: picking up an order is
//     an action the customer performed themselves, so PickedUp is silent
//   - An order re-entering Pending mid-lifecycle is a reactivation of a
//     cancelled order; order placement itself never raises a status change
//
// Example usage:
//
//	composer := services.NewNotificationComposer()
//
//	copy, ok := composer.Compose("ORD-1a2b3c4d", order.Ready)
//	if !ok {
//	    // Status is not notification-worthy
//	    return
//	}
//	// copy.Title == "Order ready for pickup"
type NotificationComposer struct{}

// NewNotificationComposer creates a new NotificationComposer instance.
func NewNotificationComposer() NotificationComposer {
	return NotificationComposer{}
}

type messageTemplate struct {
	kind  notification.Kind
	title string
	body  string
}

// statusMessages returns the fixed mapping from a notification-worthy
// status to its template. Statuses absent from the map are silent.
func statusMessages() map[order.Status]messageTemplate {
	//nolint:exhaustive // PickedUp and Unknown intentionally produce no notification
	return map[order.Status]messageTemplate{
		order.Confirmed: {
			kind:  notification.KindOrderConfirmed,
			title: "Order confirmed",
			body:  "Your order %s has been confirmed and is being prepared.",
		},
		order.Ready: {
			kind:  notification.KindOrderReady,
			title: "Order ready for pickup",
			body:  "Your order %s is ready for pickup.",
		},
		order.Cancelled: {
			kind:  notification.KindOrderCancelled,
			title: "Order cancelled",
			body:  "Your order %s has been cancelled.",
		},
		order.Pending: {
			kind:  notification.KindOrderReactivated,
			title: "Order reactivated",
			body:  "Your order %s has been reactivated and is awaiting confirmation.",
		},
	}
}

// Compose produces notification copy for an order entering newStatus.
//
// Parameters:
//   - orderNumber: The human-readable order number interpolated into the body
//   - newStatus: The status the order just entered
//
// Returns:
//   - NotificationCopy: The composed kind, title and body
//   - bool: false when the status produces no notification
func (c NotificationComposer) Compose(orderNumber string, newStatus order.Status) (NotificationCopy, bool) {
	template, ok := statusMessages()[newStatus]
	if !ok {
		return NotificationCopy{}, false
	}

	return NotificationCopy{
		Kind:  template.kind,
		Title: template.title,
		Body:  fmt.Sprintf(template.body, orderNumber),
	}, true
}
