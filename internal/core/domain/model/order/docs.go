// Package order provides domain entities and business logic for order lifecycle
// management in the storefront. It implements the Order aggregate root with
// state transitions and the immutable audit trail of those transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, line items, and lifecycle
//   - Item: One product-quantity-comment line within an order
//   - Status: A state machine that enforces valid order status transitions
//   - StatusChange: An append-only audit record of a single transition
//
// Key business rules:
//   - Orders must have a valid unique identifier and at least one line item
//   - Order status follows the workflow: created -> confirmed -> preparing -> shipped -> delivered,
//     with cancellation possible until the order ships
//   - Delivered and cancelled are terminal; the only move left is re-posting the same status
//   - Every transition yields a StatusChange record; records are never edited or removed
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
