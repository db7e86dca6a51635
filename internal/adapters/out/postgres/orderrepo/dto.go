// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by restaurant and status.
type OrderDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber         string    `gorm:"size:16;uniqueIndex"`
	CustomerID          uuid.UUID `gorm:"type:uuid;index"`
	RestaurantID        uuid.UUID `gorm:"type:uuid;index:idx_orders_restaurant_status"`
	Status              int       `gorm:"index:idx_orders_restaurant_status"`
	TotalCents          int64
	SpecialInstructions string
	EstimatedPickupAt   *time.Time
	ActualPickupAt      *time.Time
	CreatedAt           time.Time
	Items               []ItemDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one order line item in its own child table.
// A menu item appears at most once per order, so (order, menu item)
// forms the primary key.
type ItemDTO struct {
	OrderID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	MenuItemID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string
	UnitPriceCents int64
	Quantity       int
	Note           string
}

// TableName specifies the database table name for order line items.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including the line items child rows.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := aggregate.Items()
	itemDTOs := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, ItemDTO{
			OrderID:        aggregate.ID().Bytes(),
			MenuItemID:     item.MenuItemID().Bytes(),
			Name:           item.Name(),
			UnitPriceCents: int64(item.UnitPrice().Amount()),
			Quantity:       item.Quantity(),
			Note:           item.Note(),
		})
	}

	return OrderDTO{
		ID:                  aggregate.ID().Bytes(),
		OrderNumber:         aggregate.OrderNumber(),
		CustomerID:          aggregate.CustomerID().Bytes(),
		RestaurantID:        aggregate.RestaurantID().Bytes(),
		Status:              int(aggregate.Status()),
		TotalCents:          int64(aggregate.Total().Amount()),
		SpecialInstructions: aggregate.SpecialInstructions(),
		EstimatedPickupAt:   aggregate.EstimatedPickupAt(),
		ActualPickupAt:      aggregate.ActualPickupAt(),
		CreatedAt:           aggregate.CreatedAt(),
		Items:               itemDTOs,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including items and timestamps using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		dto.OrderNumber,
		customerID,
		restaurantID,
		order.Status(dto.Status),
		items,
		dto.SpecialInstructions,
		dto.EstimatedPickupAt,
		dto.ActualPickupAt,
		dto.CreatedAt,
	)
}

// itemToDomain converts one line item row back to its domain value object.
func itemToDomain(dto ItemDTO) (order.Item, error) {
	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return order.Item{}, err
	}

	unitPrice, err := kernel.NewMoney(kernel.Cents(dto.UnitPriceCents))
	if err != nil {
		return order.Item{}, err
	}

	return order.NewItem(menuItemID, dto.Name, unitPrice, dto.Quantity, dto.Note)
}
