package queries

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler retrieves in-flight orders from the database.
// Filters out finished orders to provide active kitchen workload visibility.
//
// Example:
//
//	handler := NewGetActiveOrdersQueryHandler(db)
//	query, _ := NewGetActiveOrdersQuery(restaurantID)
//
//	activeOrders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get active orders: %v", err)
//	    return err
//	}
//
//	if len(activeOrders) > 0 {
//	    fmt.Printf("%d orders in flight\n", len(activeOrders))
//	}
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for dashboard queries.
// Requires a GORM database connection for query execution.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve a restaurant's active orders.
// Returns orders in Pending, Confirmed or Ready status, oldest first so
// the kitchen works the queue in placement order.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			customer_id,
			status,
			total_cents,
			created_at
		FROM orders
		WHERE restaurant_id = ?
		  AND status NOT IN (?, ?)
		ORDER BY created_at
	`, query.RestaurantID().Bytes(), order.PickedUp, order.Cancelled).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetActiveOrdersQueryResponse
		var id, customerID uuid.UUID
		var status int
		var totalCents int64

		err = rows.Scan(
			&id,
			&orderResp.OrderNumber,
			&customerID,
			&status,
			&totalCents,
			&orderResp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID

		custID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.CustomerID = custID

		orderResp.Status = order.Status(status)
		if err = orderResp.Status.Validate(); err != nil {
			return nil, err
		}

		total, moneyErr := kernel.NewMoney(kernel.Cents(totalCents))
		if moneyErr != nil {
			return nil, moneyErr
		}
		orderResp.TotalAmount = total
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
