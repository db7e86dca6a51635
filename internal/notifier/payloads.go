package notifier

import (
	"encoding/json"
	"time"
)

// Wire message type discriminants. Every payload pushed over a live
// connection is self-describing JSON with a "type" field and an epoch
// milliseconds "timestamp". The "connected" and "heartbeat" types are
// reserved for the transport boundary.
const (
	TypeConnected          = "connected"
	TypeHeartbeat          = "heartbeat"
	TypeNewOrder           = "new_order"
	TypeNotification       = "notification"
	TypeOrderStatusChanged = "order_status_changed"
	TypePickupReminder     = "pickup_reminder"
)

// nowMillis returns the current time as epoch milliseconds.
func nowMillis() int64 {
	return time.Now().UnixMilli()
}

// ConnectedPayload is pushed once to a freshly registered connection.
type ConnectedPayload struct {
	Type      string `json:"type"`
	Audience  string `json:"audience"`
	Timestamp int64  `json:"timestamp"`
}

// NewConnectedPayload serializes the one-time connection acknowledgement.
func NewConnectedPayload(key AudienceKey) ([]byte, error) {
	return json.Marshal(ConnectedPayload{
		Type:      TypeConnected,
		Audience:  key.String(),
		Timestamp: nowMillis(),
	})
}

// HeartbeatPayload is the bidirectional keep-alive message. The server
// echoes inbound heartbeats with its own current time.
type HeartbeatPayload struct {
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"`
}

// NewHeartbeatPayload serializes a heartbeat carrying the server's
// current time.
func NewHeartbeatPayload() ([]byte, error) {
	return json.Marshal(HeartbeatPayload{
		Type:      TypeHeartbeat,
		Timestamp: nowMillis(),
	})
}

// NewOrderPayload notifies a restaurant dashboard of a freshly placed order.
type NewOrderPayload struct {
	Type         string `json:"type"`
	OrderID      string `json:"order_id"`
	OrderNumber  string `json:"order_number"`
	CustomerName string `json:"customer_name"`
	TotalCents   int64  `json:"total_cents"`
	Timestamp    int64  `json:"timestamp"`
}

// NewNewOrderPayload serializes the "new order" push for the restaurant
// audience.
func NewNewOrderPayload(orderID, orderNumber, customerName string, totalCents int64) ([]byte, error) {
	return json.Marshal(NewOrderPayload{
		Type:         TypeNewOrder,
		OrderID:      orderID,
		OrderNumber:  orderNumber,
		CustomerName: customerName,
		TotalCents:   totalCents,
		Timestamp:    nowMillis(),
	})
}

// NotificationPayload carries user-facing notification copy to a
// customer's live sessions, mirroring the persisted notification record.
type NotificationPayload struct {
	Type      string `json:"type"`
	Kind      string `json:"kind"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	OrderID   string `json:"order_id"`
	Timestamp int64  `json:"timestamp"`
}

// NewNotificationPayload serializes a user-facing notification push.
func NewNotificationPayload(kind, title, body, orderID string) ([]byte, error) {
	return json.Marshal(NotificationPayload{
		Type:      TypeNotification,
		Kind:      kind,
		Title:     title,
		Body:      body,
		OrderID:   orderID,
		Timestamp: nowMillis(),
	})
}

// StatusChangedPayload is the lighter push for restaurant dashboards:
// they care about the transition itself, not user-facing copy.
type StatusChangedPayload struct {
	Type           string `json:"type"`
	OrderID        string `json:"order_id"`
	OrderNumber    string `json:"order_number"`
	PreviousStatus string `json:"previous_status"`
	NewStatus      string `json:"new_status"`
	Timestamp      int64  `json:"timestamp"`
}

// NewStatusChangedPayload serializes the status-transition push for the
// restaurant audience.
func NewStatusChangedPayload(orderID, orderNumber, previousStatus, newStatus string) ([]byte, error) {
	return json.Marshal(StatusChangedPayload{
		Type:           TypeOrderStatusChanged,
		OrderID:        orderID,
		OrderNumber:    orderNumber,
		PreviousStatus: previousStatus,
		NewStatus:      newStatus,
		Timestamp:      nowMillis(),
	})
}

// PickupReminderPayload nudges a customer whose Ready order has been
// waiting past its estimated pickup time. Live-channel only.
type PickupReminderPayload struct {
	Type        string `json:"type"`
	OrderID     string `json:"order_id"`
	OrderNumber string `json:"order_number"`
	ReadySince  int64  `json:"ready_since"`
	Timestamp   int64  `json:"timestamp"`
}

// NewPickupReminderPayload serializes the pickup reminder push.
func NewPickupReminderPayload(orderID, orderNumber string, readySince time.Time) ([]byte, error) {
	return json.Marshal(PickupReminderPayload{
		Type:        TypePickupReminder,
		OrderID:     orderID,
		OrderNumber: orderNumber,
		ReadySince:  readySince.UnixMilli(),
		Timestamp:   nowMillis(),
	})
}
