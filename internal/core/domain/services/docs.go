// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the storefront. It implements logic that
// doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - OrderHydrator: A domain service that resolves order line items against
//     the catalog for display, tolerating products that no longer exist
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
