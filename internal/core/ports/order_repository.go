// Package ports defines repository and outbound interfaces for the order
// lifecycle core. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate with its line items.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the current state of an existing order aggregate.
	// Within a unit-of-work transaction this is the only writer of the
	// order's status column.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, including
	// its line items. Returns errs.ObjectNotFoundError when no such order
	// exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order like Get but locks its row for the
	// remainder of the surrounding transaction. Status transitions load
	// through this method so concurrent transitions on the same order
	// serialize at the load and every ledger entry's previous state matches
	// the order's committed state at that moment.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllInCreatedStatusOlderThan retrieves orders still in Created status
	// whose creation time is before the cutoff. Used by the stale-order
	// cancellation job.
	GetAllInCreatedStatusOlderThan(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
