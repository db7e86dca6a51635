package order

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with a statically defined transition table
// to ensure orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Ready ──> PickedUp
//	   │            │
//	   └────────────┴──> Cancelled ──> Pending
//	                            (administrative reactivation)
//
// Status is a value object; legality of a transition is decided by the
// allowedTransitions table consulted through pure functions, never by
// per-status methods.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first placed.
	// Orders in this status are waiting for the restaurant to confirm.
	Pending

	// Confirmed indicates the restaurant has accepted the order and
	// preparation is underway.
	Confirmed

	// Ready indicates the order is prepared and waiting for pickup.
	Ready

	// PickedUp indicates the customer has collected the order.
	// This is a final state with no further transitions allowed.
	PickedUp

	// Cancelled indicates the order was cancelled before completion.
	Cancelled
)

// reactivationTarget is the single status reachable from Cancelled.
// The reference workflow allows an administrative "reactivation" of a
// cancelled order back to Pending. No other status permits re-entry from
// Cancelled; flagged for product confirmation.
const reactivationTarget = Pending

// allowedTransitions returns the transition table: each valid status maps
// to the fixed set of statuses it may transition to. An empty set marks a
// final status.
func allowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:   {Confirmed, Cancelled},
		Confirmed: {Ready, Cancelled},
		Ready:     {PickedUp},
		PickedUp:  {},
		Cancelled: {reactivationTarget},
	}
}

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Confirmed: "Confirmed",
		Ready:     "Ready",
		PickedUp:  "PickedUp",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Confirmed: "Confirmed",
		Ready:     "Ready",
		PickedUp:  "PickedUp",
		Cancelled: "Cancelled",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Confirmed, Ready, PickedUp, Cancelled.
// Unknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Returns "Unknown" for invalid status values. Implements fmt.Stringer
// and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a status name as produced by String.
// Returns an error for names that do not correspond to a valid status.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// CanTransition reports whether the transition table permits moving from
// one status to another. It is a pure query with no side effects; a pair
// outside the table is never accepted.
func CanTransition(from, to Status) bool {
	for _, target := range allowedTransitions()[from] {
		if target == to {
			return true
		}
	}
	return false
}

// IsFinal reports whether a status has no outgoing transitions.
func IsFinal(s Status) bool {
	return s.Validate() == nil && len(allowedTransitions()[s]) == 0
}

// CanBeCancelled reports whether Cancelled is in the status's allowed
// transition set.
func CanBeCancelled(s Status) bool {
	return CanTransition(s, Cancelled)
}

// ValidateTransitions verifies the transition table once at startup:
// every valid status must appear as a key, and every target must itself
// be a valid status. A broken table is a programming error surfaced
// before the service accepts traffic.
func ValidateTransitions() error {
	table := allowedTransitions()

	for status := range getValidStatusStrings() {
		if _, ok := table[status]; !ok {
			return errs.NewValueIsInvalidErrorWithCause("transition table",
				fmt.Errorf("status %s has no entry", status))
		}
	}

	for from, targets := range table {
		if err := from.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("transition table", err)
		}
		for _, to := range targets {
			if err := to.Validate(); err != nil {
				return errs.NewValueIsInvalidErrorWithCause("transition table",
					fmt.Errorf("%s -> %d: %w", from, to, err))
			}
		}
	}

	return nil
}

// TransitionTo validates a status change against the transition table.
//
// Returns:
//   - (to, nil) when the transition is legal
//   - (0, *InvalidTransitionError) identifying the illegal (from, to) pair otherwise
//
// This function is used by Order.TransitionTo to enforce state transitions.
func (s Status) TransitionTo(to Status) (Status, error) {
	if err := to.Validate(); err != nil {
		return 0, err
	}
	if !CanTransition(s, to) {
		return 0, NewInvalidTransitionError(s, to)
	}

	return to, nil
}

// Cancel transitions the status to Cancelled.
//
// Returns:
//   - (Cancelled, nil) when the current status allows cancellation
//   - (0, *CannotCancelError) otherwise, distinct from a generic invalid
//     transition so callers can present a clearer message
func (s Status) Cancel() (Status, error) {
	if !CanBeCancelled(s) {
		return 0, NewCannotCancelError(s)
	}

	return Cancelled, nil
}
