package http

// Error is the uniform error response body.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrderItem is one line item in an order placement request.
type NewOrderItem struct {
	MenuItemID     string `json:"menu_item_id"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Quantity       int    `json:"quantity"`
	Note           string `json:"note"`
}

// NewOrder is the order placement request body.
type NewOrder struct {
	CustomerID          string         `json:"customer_id"`
	RestaurantID        string         `json:"restaurant_id"`
	Items               []NewOrderItem `json:"items"`
	SpecialInstructions string         `json:"special_instructions"`
}

// OrderCreated is the order placement response body.
type OrderCreated struct {
	ID string `json:"id"`
}

// StatusChange is the status transition request body.
type StatusChange struct {
	Status string `json:"status"`
}

// Notification is one inbox entry in the notifications response.
type Notification struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
}

// ActiveOrder is one in-flight order in the restaurant dashboard response.
type ActiveOrder struct {
	ID          string `json:"id"`
	OrderNumber string `json:"order_number"`
	CustomerID  string `json:"customer_id"`
	Status      string `json:"status"`
	TotalCents  int64  `json:"total_cents"`
	CreatedAt   string `json:"created_at"`
}

// Health is the health check response body.
type Health struct {
	Status string `json:"status"`
}
