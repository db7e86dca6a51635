package kernel

import (
	"fmt"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// Cents represents a monetary amount in integer cents.
// Storing money as integer cents avoids floating point rounding issues
// in totals and subtotals.
type Cents int64

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly initialized Money.
// Money must be created using NewMoney or ZeroMoney to ensure validity.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney or ZeroMoney constructors")

// Money is an immutable value object representing a non-negative monetary amount.
// The zero value of Money is invalid and will fail validation - use constructors
// to create instances.
//
// Example:
//
//	price, err := kernel.NewMoney(1250)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("price: %s", price) // Output: price: 12.50
type Money struct { //nolint:recvcheck //using for validation
	amount Cents
	guard  guard.ConstructorGuard
}

// NewMoney creates a Money value from an amount in cents.
// Negative amounts are rejected; order totals and item prices are never negative.
//
// Example:
//
//	unitPrice, err := NewMoney(999)
//	if err != nil {
//	    log.Fatal("invalid amount:", err)
//	}
func NewMoney(amount Cents) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d is negative", amount))
	}

	return Money{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// ZeroMoney creates a valid Money value of zero cents.
// Useful as the starting point for summing item subtotals.
func ZeroMoney() Money {
	return Money{
		amount: 0,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate checks if the Money was properly constructed using a constructor.
// Returns ErrMoneyIsNotConstructed for zero-value instances.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the monetary amount in cents.
func (m Money) Amount() Cents {
	return m.amount
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.amount > 0
}

// Add returns the sum of two Money values.
// Both values must be properly constructed for the operation to succeed.
func (m Money) Add(other Money) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if err := other.Validate(); err != nil {
		return Money{}, err
	}

	return NewMoney(m.amount + other.amount)
}

// MultiplyBy returns the Money value scaled by a non-negative integer factor.
// Used to compute line-item subtotals (unit price times quantity).
func (m Money) MultiplyBy(factor int) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if factor < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("factor",
			fmt.Errorf("%d is negative", factor))
	}

	return NewMoney(m.amount * Cents(factor))
}

// IsEqual compares two Money values for equality.
// Both values must be properly constructed for the comparison to succeed.
func (m Money) IsEqual(other Money) (bool, error) {
	if err := m.Validate(); err != nil {
		return false, err
	}
	if err := other.Validate(); err != nil {
		return false, err
	}

	return m.amount == other.amount, nil
}

// String returns the amount formatted as a decimal with two fraction digits.
// This method implements the fmt.Stringer interface.
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.amount/100, m.amount%100)
}
