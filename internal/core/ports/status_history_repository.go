package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// StatusHistoryRepository defines the persistence contract for the append-only
// status transition ledger.
//
// The ledger is the audit trail of order lifecycle changes: entries are
// inserted exactly once and never updated or deleted. No interface method
// for mutation or removal exists, and none may be added.
type StatusHistoryRepository interface {
	// Append inserts one transition record. The record must be valid;
	// the store assigns its timestamp on insert.
	Append(ctx context.Context, change order.StatusChange) error

	// ListByOrder returns all transition records for an order in creation
	// order, oldest first. Returns an empty slice for an order with no
	// recorded transitions; existence of the order itself is not checked.
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]order.StatusChange, error)
}
