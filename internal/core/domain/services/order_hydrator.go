package services

import (
	"github.com/shopspring/decimal"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"
)

// HydratedItem is one order line resolved for display: the item's own data
// plus the referenced product's current name and price.
//
// When the referenced product no longer exists in the catalog, Name falls
// back to product.UnknownProductName and Price to zero, and Known is false.
type HydratedItem struct {
	ProductID string
	Name      string
	Price     decimal.Decimal
	Quantity  int
	Comment   string
	Known     bool
}

// OrderHydrator is a domain service that resolves order line items against
// the live catalog for display and edit forms.
//
// Business rules:
//   - Item display data (name, price) always comes from the current catalog,
//     never from a snapshot stored on the item
//   - A vanished product is an expected condition, not a fault: the line is
//     rendered with a placeholder name and zero price
//   - Line order is preserved
type OrderHydrator struct{}

// NewOrderHydrator creates a new OrderHydrator instance.
func NewOrderHydrator() OrderHydrator {
	return OrderHydrator{}
}

// Hydrate resolves every line item of the order against the given catalog
// products and returns the display-ready lines in item order.
//
// Parameters:
//   - o: the order whose items are being resolved (must be valid)
//   - catalog: the catalog products to resolve against, typically the result
//     of a bulk lookup for the order's product ids
//
// Returns a validation error if the order or any catalog product was not
// properly constructed. A product id missing from the catalog is not an
// error; the line is hydrated with the unknown-product fallback.
func (h OrderHydrator) Hydrate(o *order.Order, catalog []*product.Product) ([]HydratedItem, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	byID := make(map[string]*product.Product, len(catalog))
	for _, p := range catalog {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		byID[p.ID().String()] = p
	}

	items := o.Items()
	hydrated := make([]HydratedItem, 0, len(items))
	for _, item := range items {
		line := HydratedItem{
			ProductID: item.ProductID().String(),
			Name:      product.UnknownProductName,
			Price:     decimal.Zero,
			Quantity:  item.Quantity(),
			Comment:   item.Comment(),
		}

		if p, ok := byID[item.ProductID().String()]; ok {
			line.Name = p.Name()
			line.Price = p.Price()
			line.Known = true
		}

		hydrated = append(hydrated, line)
	}

	return hydrated, nil
}

// Total returns the sum of price*quantity over the hydrated lines.
// Unknown products contribute zero.
func (h OrderHydrator) Total(items []HydratedItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}
