// Package order provides domain entities and business logic for order management
// in the food-delivery system. It implements the Order aggregate root with
// lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, lines, and lifecycle
//   - OrderLine: An immutable line item with a name and price snapshot
//   - Status: A state machine that enforces valid order status transitions
//   - Domain events raised on every successful state transition
//
// Key business rules:
//   - Orders must have a valid identifier, customer, delivery location, and at least one line
//   - Order status follows a forward-only workflow: Submitted -> Accepted -> Sent -> Delivered
//   - A courier is assigned exactly once, when the order is accepted
//   - Order lines are immutable after placement; prices are snapshots taken at order time
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
