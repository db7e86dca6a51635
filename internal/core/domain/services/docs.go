// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the food ordering system. It implements
// business logic that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - NotificationComposer: A domain service mapping order status changes to
//     user-facing notification content
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
