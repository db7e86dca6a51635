// Package notificationrepo provides data transfer objects and mapping functions
// for notification persistence. Notifications are the durable inbox records
// backing the live push channel.
package notificationrepo

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO represents the database structure for persisting
// notification records. Indexed by recipient for inbox reads.
type NotificationDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	RecipientID uuid.UUID `gorm:"type:uuid;index:idx_notifications_recipient_read"`
	Kind        string    `gorm:"size:32"`
	Title       string
	Body        string
	IsRead      bool `gorm:"index:idx_notifications_recipient_read"`
	CreatedAt   time.Time
}

// TableName specifies the database table name for notification entities.
func (NotificationDTO) TableName() string {
	return "notifications"
}

// fromDomain converts a notification domain aggregate to its database representation.
func fromDomain(aggregate *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:          aggregate.ID().Bytes(),
		RecipientID: aggregate.RecipientID().Bytes(),
		Kind:        string(aggregate.Kind()),
		Title:       aggregate.Title(),
		Body:        aggregate.Body(),
		IsRead:      aggregate.IsRead(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a notification domain aggregate.
func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	recipientID, err := kernel.UUIDFromBytes(dto.RecipientID[:])
	if err != nil {
		return nil, err
	}

	return notification.RestoreNotification(
		id,
		recipientID,
		notification.Kind(dto.Kind),
		dto.Title,
		dto.Body,
		dto.CreatedAt,
		dto.IsRead,
	)
}
