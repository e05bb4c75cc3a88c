package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrGetOrderWithHistoryQueryIsNotConstructed = errors.New(
		"GetOrderWithHistoryQuery must be created via NewGetOrderWithHistoryQuery constructor",
	)
)

// GetOrderWithHistoryQuery retrieves one order together with its full
// status transition history.
type GetOrderWithHistoryQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderWithHistoryQuery creates a query for the given order.
func NewGetOrderWithHistoryQuery(orderID kernel.UUID) (GetOrderWithHistoryQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderWithHistoryQuery{}, err
	}

	return GetOrderWithHistoryQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the identifier of the order to load.
func (q GetOrderWithHistoryQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderWithHistoryQueryIsNotConstructed if validation fails.
func (q GetOrderWithHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderWithHistoryQueryIsNotConstructed)
}

// StatusChangeResponse is one ledger entry prepared for display.
type StatusChangeResponse struct {
	ID         kernel.UUID
	Previous   string
	Next       string
	Comment    string
	OccurredAt time.Time
}

// GetOrderWithHistoryQueryResponse is an order with its transition history
// in creation order, oldest entry first. Display layers may reverse for a
// most-recent-first presentation.
type GetOrderWithHistoryQueryResponse struct {
	ID      kernel.UUID
	Status  string
	History []StatusChangeResponse
}
