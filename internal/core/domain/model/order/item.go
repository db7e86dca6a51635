package order

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

var (
	// ErrItemIsNotConstructed indicates that the Item was not properly
	// initialized through the NewItem constructor function.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
)

// Item represents one ordered line item within an Order aggregate.
// It snapshots the menu item's name and unit price at ordering time so
// later menu edits never change what the customer agreed to pay.
//
// Key business rules:
//   - Must be constructed through NewItem
//   - Quantity must be strictly positive
//   - Name snapshot must not be empty
//   - Subtotal is unit price times quantity
type Item struct {
	// menuItemID references the menu item this line was ordered from
	menuItemID kernel.UUID

	// name is the menu item name snapshot taken at ordering time
	name string

	// unitPrice is the price snapshot per unit at ordering time
	unitPrice kernel.Money

	// quantity is the number of units ordered
	quantity int

	// note is an optional per-item instruction (e.g. "no onions")
	note string

	// guard ensures the entity was properly initialized
	guard kernel.ConstructorGuard
}

// NewItem creates a line item with validated name, price and quantity.
//
// Example:
//
//	price, _ := kernel.NewMoney(1250)
//	item, err := order.NewItem(menuItemID, "Margherita", price, 2, "extra basil")
//	if err != nil {
//	    return err
//	}
func NewItem(menuItemID kernel.UUID, name string, unitPrice kernel.Money, quantity int, note string) (Item, error) {
	if err := menuItemID.Validate(); err != nil {
		return Item{}, err
	}
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("name")
	}
	if err := unitPrice.Validate(); err != nil {
		return Item{}, err
	}
	if quantity < 1 || quantity > maxItemQuantity {
		return Item{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxItemQuantity)
	}

	return Item{
		menuItemID: menuItemID,
		name:       name,
		unitPrice:  unitPrice,
		quantity:   quantity,
		note:       note,
		guard:      kernel.NewConstructorGuard(),
	}, nil
}

// maxItemQuantity bounds a single line item; larger orders should be
// split into multiple lines.
const maxItemQuantity = 100

// Validate ensures the Item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// MenuItemID returns the referenced menu item's identifier.
func (i Item) MenuItemID() kernel.UUID {
	return i.menuItemID
}

// Name returns the menu item name snapshot.
func (i Item) Name() string {
	return i.name
}

// UnitPrice returns the per-unit price snapshot.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Quantity returns the number of units ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// Note returns the optional per-item instruction.
func (i Item) Note() string {
	return i.note
}

// Subtotal returns the line total: unit price times quantity.
func (i Item) Subtotal() (kernel.Money, error) {
	if err := i.Validate(); err != nil {
		return kernel.Money{}, err
	}
	return i.unitPrice.MultiplyBy(i.quantity)
}
