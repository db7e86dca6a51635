// Package order provides domain entities and business logic for order
// lifecycle management in the food-ordering system. It implements the
// Order aggregate root with line items and a validated status machine.
//
// The package includes:
//   - Order: The aggregate root managing identity, items, totals and lifecycle
//   - Item: A line item snapshotting name and unit price at ordering time
//   - Status: A state machine backed by a static allowed-transition table
//
// Key business rules:
//   - Orders must have valid identifiers, at least one item and a strictly positive total
//   - Status follows the workflow: Pending -> Confirmed -> Ready -> PickedUp
//   - Pending and Confirmed orders may be cancelled; Ready and PickedUp may not
//   - A cancelled order may be administratively reactivated back to Pending
//   - Entering Ready derives an estimated pickup time; entering PickedUp stamps the actual one
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
