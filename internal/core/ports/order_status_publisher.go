package ports

import (
	"context"

	"storefront/internal/core/domain/model/order"
)

// OrderStatusPublisher notifies downstream consumers (notification dispatch,
// analytics) that an order's status changed. Publishing happens after the
// transition has committed; a publish failure never fails the transition,
// it is logged and dropped.
type OrderStatusPublisher interface {
	// PublishStatusChanged emits one event for a committed transition.
	PublishStatusChanged(ctx context.Context, change order.StatusChange) error
}
