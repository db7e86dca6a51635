package queries

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/notification"
	"foodorder/internal/pkg/guard"
)

var (
	ErrGetNotificationsQueryIsNotConstructed = errors.New(
		"GetNotificationsQuery must be created via NewGetNotificationsQuery constructor",
	)
)

// GetNotificationsQuery retrieves a user's notification inbox.
// The inbox is the durable fallback for users who were offline when an
// event fired, so it returns notifications newest first and can be
// narrowed to unread entries only.
//
// Example:
//
//	query, err := NewGetNotificationsQuery(userID, true)
//	if err != nil {
//	    return fmt.Errorf("invalid inbox request: %w", err)
//	}
//
//	notifications, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//
//	fmt.Printf("%d unread notifications\n", len(notifications))
type GetNotificationsQuery struct { //nolint:recvcheck //using for validation
	recipientID kernel.UUID
	unreadOnly  bool

	guard guard.ConstructorGuard
}

// NewGetNotificationsQuery creates a query for a user's notifications.
// When unreadOnly is true, notifications already marked read are excluded.
func NewGetNotificationsQuery(recipientID kernel.UUID, unreadOnly bool) (GetNotificationsQuery, error) {
	query := GetNotificationsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setRecipientID(recipientID); err != nil {
		return GetNotificationsQuery{}, err
	}
	query.unreadOnly = unreadOnly

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetNotificationsQueryIsNotConstructed if validation fails.
func (q GetNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetNotificationsQueryIsNotConstructed)
}

// RecipientID returns the identifier of the inbox owner.
func (q GetNotificationsQuery) RecipientID() kernel.UUID {
	return q.recipientID
}

// UnreadOnly reports whether read notifications are excluded.
func (q GetNotificationsQuery) UnreadOnly() bool {
	return q.unreadOnly
}

func (q *GetNotificationsQuery) setRecipientID(recipientID kernel.UUID) error {
	if err := recipientID.Validate(); err != nil {
		return err
	}

	q.recipientID = recipientID
	return nil
}

// GetNotificationsQueryResponse represents a single inbox entry.
// Contains everything a client needs to render the notification without
// further lookups.
type GetNotificationsQueryResponse struct {
	ID        kernel.UUID
	Kind      notification.Kind
	Title     string
	Body      string
	IsRead    bool
	CreatedAt time.Time
}
