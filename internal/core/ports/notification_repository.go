package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for notification
// records, the durable fallback when a recipient has no live connection.
type NotificationRepository interface {
	// Add persists a new notification record.
	Add(ctx context.Context, aggregate *notification.Notification) error

	// GetByRecipient retrieves a recipient's notifications, newest first.
	// With unreadOnly set, read notifications are excluded.
	GetByRecipient(ctx context.Context, recipientID kernel.UUID, unreadOnly bool) ([]*notification.Notification, error)

	// MarkRead flags a notification as seen by its recipient.
	MarkRead(ctx context.Context, id kernel.UUID) error
}
