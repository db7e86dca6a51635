package order

import (
	"errors"
	"fmt"
)

// Sentinel errors for the two status-machine failure modes. Callers
// classify with errors.Is; the structured types below carry the details.
var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrCannotCancel      = errors.New("order cannot be cancelled in its current status")
)

// InvalidTransitionError identifies an attempted status change not
// present in the allowed-transition table. It is always surfaced to the
// caller of the transition and never retried automatically.
type InvalidTransitionError struct {
	From Status
	To   Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for the
// illegal (from, to) pair.
func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition.Error(), e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// CannotCancelError identifies a cancellation attempt from a status whose
// allowed-transition set excludes Cancelled. Kept distinct from
// InvalidTransitionError so callers can present a clearer message.
type CannotCancelError struct {
	From Status
}

// NewCannotCancelError creates a CannotCancelError for the current status.
func NewCannotCancelError(from Status) *CannotCancelError {
	return &CannotCancelError{From: from}
}

func (e *CannotCancelError) Error() string {
	return fmt.Sprintf("%s: %s", ErrCannotCancel.Error(), e.From)
}

func (e *CannotCancelError) Unwrap() error {
	return ErrCannotCancel
}
