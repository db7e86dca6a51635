package notification

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

var (
	// ErrNotificationIsNotConstructed is returned when a Notification was not
	// created through the NewNotification factory method.
	ErrNotificationIsNotConstructed = errors.New(
		"Notification must be created via NewNotification constructor")
)

// Kind categorizes a notification for client-side grouping and filtering.
type Kind string

// Notification kinds produced by the order lifecycle.
const (
	KindOrderConfirmed   Kind = "order_confirmed"
	KindOrderReady       Kind = "order_ready"
	KindOrderCancelled   Kind = "order_cancelled"
	KindOrderReactivated Kind = "order_reactivated"
	KindPickupReminder   Kind = "pickup_reminder"
)

// Validate checks that the kind is one of the known categories.
func (k Kind) Validate() error {
	switch k {
	case KindOrderConfirmed, KindOrderReady, KindOrderCancelled, KindOrderReactivated, KindPickupReminder:
		return nil
	default:
		return errs.NewValueIsInvalidError("kind")
	}
}

// Notification is the durable record of a message addressed to a user.
// It is the fallback of record when the recipient has no live connection:
// clients fetch unread notifications on their next inbox read.
//
// Notifications are owned by their recipient, created by event handlers,
// and never mutated except to toggle the read flag.
type Notification struct {
	// id is the unique identifier for the notification
	id kernel.UUID

	// recipientID identifies the user the notification is addressed to
	recipientID kernel.UUID

	// kind categorizes the notification
	kind Kind

	// title is the short human-readable headline
	title string

	// body is the human-readable message text
	body string

	// createdAt is the creation time
	createdAt time.Time

	// read reports whether the recipient has seen the notification
	read bool

	// isConstructed ensures the notification was created via a constructor
	isConstructed bool
}

// NewNotification creates an unread Notification with validation.
// Title and body must be non-empty: a notification with nothing to show
// is a composition bug, not a deliverable.
func NewNotification(
	id kernel.UUID,
	recipientID kernel.UUID,
	kind Kind,
	title string,
	body string,
) (*Notification, error) {
	if err := errors.Join(
		id.Validate(),
		recipientID.Validate(),
		kind.Validate(),
	); err != nil {
		return nil, err
	}
	if title == "" {
		return nil, errs.NewValueIsRequiredError("title")
	}
	if body == "" {
		return nil, errs.NewValueIsRequiredError("body")
	}

	return &Notification{
		id:            id,
		recipientID:   recipientID,
		kind:          kind,
		title:         title,
		body:          body,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// RestoreNotification reconstructs a Notification from persistence.
func RestoreNotification(
	id kernel.UUID,
	recipientID kernel.UUID,
	kind Kind,
	title string,
	body string,
	createdAt time.Time,
	read bool,
) (*Notification, error) {
	n, err := NewNotification(id, recipientID, kind, title, body)
	if err != nil {
		return nil, err
	}

	n.createdAt = createdAt
	n.read = read
	return n, nil
}

// Validate ensures the Notification was properly constructed.
func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

// ID returns the notification's unique identifier.
func (n *Notification) ID() kernel.UUID {
	return n.id
}

// RecipientID returns the addressed user's identifier.
func (n *Notification) RecipientID() kernel.UUID {
	return n.recipientID
}

// Kind returns the notification category.
func (n *Notification) Kind() Kind {
	return n.kind
}

// Title returns the short headline.
func (n *Notification) Title() string {
	return n.title
}

// Body returns the message text.
func (n *Notification) Body() string {
	return n.body
}

// CreatedAt returns the creation time.
func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

// IsRead reports whether the recipient has seen the notification.
func (n *Notification) IsRead() bool {
	return n.read
}

// MarkRead flags the notification as seen. The only permitted mutation.
func (n *Notification) MarkRead() {
	n.read = true
}
