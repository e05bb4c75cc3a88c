// Package queries contains read-only operations over the storage layer.
// Query handlers read orders and their history through raw SQL and resolve
// catalog data through the product repository, assembling display-ready
// responses for the HTTP layer.
package queries

import (
	"errors"

	"github.com/shopspring/decimal"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrGetOrderForUpdateQueryIsNotConstructed = errors.New(
		"GetOrderForUpdateQuery must be created via NewGetOrderForUpdateQuery constructor",
	)
)

// GetOrderForUpdateQuery retrieves one order prepared for the edit form:
// existing line items resolved against the live catalog, plus the full
// catalog as a selectable list for adding new items.
type GetOrderForUpdateQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderForUpdateQuery creates a query for the given order.
func NewGetOrderForUpdateQuery(orderID kernel.UUID) (GetOrderForUpdateQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderForUpdateQuery{}, err
	}

	return GetOrderForUpdateQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the identifier of the order to load.
func (q GetOrderForUpdateQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderForUpdateQueryIsNotConstructed if validation fails.
func (q GetOrderForUpdateQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderForUpdateQueryIsNotConstructed)
}

// OrderItemResponse is one order line resolved for display.
// Known is false when the referenced product has vanished from the catalog;
// the line then carries the placeholder name and a zero price.
type OrderItemResponse struct {
	ProductID string
	Name      string
	Price     decimal.Decimal
	Quantity  int
	Comment   string
	Known     bool
}

// CatalogProductResponse is one selectable catalog product for the edit form.
type CatalogProductResponse struct {
	ID    kernel.UUID
	Name  string
	Price decimal.Decimal
}

// GetOrderForUpdateQueryResponse is the edit-ready view of an order.
type GetOrderForUpdateQueryResponse struct {
	ID      kernel.UUID
	Status  string
	Items   []OrderItemResponse
	Total   decimal.Decimal
	Catalog []CatalogProductResponse
}
