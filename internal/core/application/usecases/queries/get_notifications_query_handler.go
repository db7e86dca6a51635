package queries

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/notification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetNotificationsQueryHandler retrieves inbox entries from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetNotificationsQueryHandler(db)
//	query, _ := NewGetNotificationsQuery(userID, false)
//
//	notifications, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get notifications: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Found %d notifications\n", len(notifications))
type GetNotificationsQueryHandler struct {
	db *gorm.DB
}

// NewGetNotificationsQueryHandler creates a handler for inbox queries.
// Requires a GORM database connection for query execution.
func NewGetNotificationsQueryHandler(db *gorm.DB) GetNotificationsQueryHandler {
	return GetNotificationsQueryHandler{db: db}
}

// Handle executes the query to retrieve a user's notifications.
// Returns inbox entries newest first; with UnreadOnly set, entries
// already marked read are filtered out in the database.
func (h GetNotificationsQueryHandler) Handle(
	ctx context.Context,
	query GetNotificationsQuery,
) ([]GetNotificationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	notifications := make([]GetNotificationsQueryResponse, 0)

	sql := `
		SELECT
			id,
			kind,
			title,
			body,
			is_read,
			created_at
		FROM notifications
		WHERE recipient_id = ?
	`
	if query.UnreadOnly() {
		sql += ` AND is_read = FALSE`
	}
	sql += ` ORDER BY created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sql, query.RecipientID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetNotificationsQueryResponse
		var id uuid.UUID
		var kind string

		err = rows.Scan(
			&id,
			&kind,
			&entry.Title,
			&entry.Body,
			&entry.IsRead,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		entryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.ID = entryID
		entry.Kind = notification.Kind(kind)
		notifications = append(notifications, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}
