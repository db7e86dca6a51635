package order

import (
	"errors"
	"fmt"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoItems is returned when constructing an order without line items.
	ErrOrderHasNoItems = errors.New("order must contain at least one item")

	// ErrTotalIsNotPositive is returned when an order's total amount is zero.
	// Free orders do not exist in this workflow.
	ErrTotalIsNotPositive = errors.New("order total must be strictly positive")
)

// PickupGracePeriod is the default interval added to the current time to
// derive the estimated pickup timestamp when an order enters Ready
// without an estimate already set.
const PickupGracePeriod = 20 * time.Minute

// Order represents a customer's food order. It is the aggregate root that
// manages the order lifecycle from placement through preparation to pickup
// or cancellation.
//
// Order follows these invariants:
//   - Must have valid identifiers for itself, its customer and its restaurant
//   - Must contain at least one line item
//   - Total always equals the sum of line-item subtotals and is strictly positive
//   - Status transitions follow the allowed-transition table
//   - Can only be created through the NewOrder constructor
//
// Orders are never deleted; a terminated order remains queryable in its
// final status.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// orderNumber is the short human-facing reference shown to staff and customers
	orderNumber string

	// customerID identifies the ordering customer
	customerID kernel.UUID

	// restaurantID identifies the restaurant fulfilling the order
	restaurantID kernel.UUID

	// status represents the current state in the order lifecycle
	status Status

	// items are the ordered lines; never empty
	items []Item

	// total is the sum of item subtotals, maintained on every item mutation
	total kernel.Money

	// specialInstructions is an optional free-form note for the kitchen
	specialInstructions string

	// estimatedPickupAt is set when the order enters Ready (nil until then
	// unless supplied earlier)
	estimatedPickupAt *time.Time

	// actualPickupAt is stamped when the order enters PickedUp
	actualPickupAt *time.Time

	// createdAt is the placement time
	createdAt time.Time

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a new Order in Pending status with validation. This is
// the only way to create a valid Order, ensuring all business invariants
// are maintained: valid identifiers, at least one item, and a strictly
// positive total derived from the items.
//
// Example:
//
//	items := []order.Item{item1, item2}
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, restaurantID, items, "ring the bell")
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	items []Item,
	specialInstructions string,
) (*Order, error) {
	o := &Order{
		status:              Pending,
		specialInstructions: specialInstructions,
		createdAt:           time.Now().UTC(),
		isConstructed:       true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.orderNumber = deriveOrderNumber(id)
	return o, nil
}

// RestoreOrder reconstructs an Order from persistence without applying
// creation-time defaults. The stored status and timestamps are taken as
// is; the total invariant is still recomputed and enforced.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	status Status,
	items []Item,
	specialInstructions string,
	estimatedPickupAt *time.Time,
	actualPickupAt *time.Time,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		orderNumber:         orderNumber,
		specialInstructions: specialInstructions,
		estimatedPickupAt:   estimatedPickupAt,
		actualPickupAt:      actualPickupAt,
		createdAt:           createdAt,
		isConstructed:       true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setItems(items),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	o.status = status
	return o, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the short human-facing order reference.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// RestaurantID returns the fulfilling restaurant's identifier.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Items returns a copy of the ordered line items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Total returns the order total, always equal to the sum of item subtotals.
func (o *Order) Total() kernel.Money {
	return o.total
}

// SpecialInstructions returns the optional kitchen note.
func (o *Order) SpecialInstructions() string {
	return o.specialInstructions
}

// EstimatedPickupAt returns the estimated pickup time.
// Returns nil while no estimate has been derived or supplied.
func (o *Order) EstimatedPickupAt() *time.Time {
	return o.estimatedPickupAt
}

// ActualPickupAt returns the pickup timestamp.
// Returns nil until the order reaches PickedUp.
func (o *Order) ActualPickupAt() *time.Time {
	return o.actualPickupAt
}

// CreatedAt returns the placement time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// IsFinal reports whether the order is in a terminal status.
func (o *Order) IsFinal() bool {
	return IsFinal(o.status)
}

// TransitionTo moves the order to the target status after checking the
// allowed-transition table. On failure the order is left untouched and a
// *InvalidTransitionError identifying the (from, to) pair is returned.
//
// Destination side effects:
//   - entering Ready sets estimatedPickupAt if unset, defaulting to now
//     plus PickupGracePeriod
//   - entering PickedUp stamps actualPickupAt with the current time
func (o *Order) TransitionTo(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.applyTransitionSideEffects(newStatus)
	return nil
}

// Cancel transitions the order to Cancelled only when its current status
// allows cancellation, otherwise fails with *CannotCancelError, left
// distinct from a generic invalid transition. The order is untouched on
// failure.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// AddItem appends a line item and restores the total invariant.
func (o *Order) AddItem(item Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	items := append(o.Items(), item)
	return o.setItems(items)
}

// RemoveItem removes the line item referencing the given menu item and
// restores the total invariant. Removing the last item fails: an order
// must always contain at least one item.
func (o *Order) RemoveItem(menuItemID kernel.UUID) error {
	items := make([]Item, 0, len(o.items))
	found := false
	for _, item := range o.items {
		if item.MenuItemID().IsEqual(menuItemID) {
			found = true
			continue
		}
		items = append(items, item)
	}

	if !found {
		return errs.NewObjectNotFoundError("menuItemID", menuItemID.String())
	}

	return o.setItems(items)
}

func (o *Order) applyTransitionSideEffects(newStatus Status) {
	switch newStatus { //nolint:exhaustive // only Ready and PickedUp carry side effects
	case Ready:
		if o.estimatedPickupAt == nil {
			estimate := time.Now().UTC().Add(PickupGracePeriod)
			o.estimatedPickupAt = &estimate
		}
	case PickedUp:
		pickedUpAt := time.Now().UTC()
		o.actualPickupAt = &pickedUpAt
	}
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomerID validates and sets the ordering customer's identifier.
func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

// setRestaurantID validates and sets the fulfilling restaurant's identifier.
func (o *Order) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	o.restaurantID = restaurantID
	return nil
}

// setItems validates the items, recomputes the total and enforces the
// total invariant. Used during construction and on every item mutation.
func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}

	total := kernel.ZeroMoney()
	for _, item := range items {
		subtotal, err := item.Subtotal()
		if err != nil {
			return err
		}

		total, err = total.Add(subtotal)
		if err != nil {
			return err
		}
	}

	if !total.IsPositive() {
		return ErrTotalIsNotPositive
	}

	o.items = items
	o.total = total
	return nil
}

// deriveOrderNumber builds the short human-facing reference from the
// order id, e.g. "ORD-1A2B3C4D".
func deriveOrderNumber(id kernel.UUID) string {
	s := id.String()
	return fmt.Sprintf("ORD-%s", s[:8])
}
