package queries

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/guard"
)

var (
	ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
		"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
	)
)

// GetActiveOrdersQuery retrieves a restaurant's in-flight orders.
// Returns orders that still need attention from the kitchen, excluding
// picked-up and cancelled ones, for the restaurant dashboard.
//
// Example:
//
//	query, err := NewGetActiveOrdersQuery(restaurantID)
//	if err != nil {
//	    return fmt.Errorf("invalid dashboard request: %w", err)
//	}
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//
//	fmt.Printf("%d orders in flight\n", len(orders))
type GetActiveOrdersQuery struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query for a restaurant's active orders.
func NewGetActiveOrdersQuery(restaurantID kernel.UUID) (GetActiveOrdersQuery, error) {
	query := GetActiveOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setRestaurantID(restaurantID); err != nil {
		return GetActiveOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetActiveOrdersQueryIsNotConstructed if validation fails.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// RestaurantID returns the identifier of the restaurant.
func (q GetActiveOrdersQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

func (q *GetActiveOrdersQuery) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	q.restaurantID = restaurantID
	return nil
}

// GetActiveOrdersQueryResponse represents an in-flight order on the
// restaurant dashboard.
type GetActiveOrdersQueryResponse struct {
	ID          kernel.UUID
	OrderNumber string
	CustomerID  kernel.UUID
	Status      order.Status
	TotalAmount kernel.Money
	CreatedAt   time.Time
}
