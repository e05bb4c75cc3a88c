// Package product provides the catalog product entity referenced by order
// line items. The catalog itself is maintained by the storefront's CRUD
// dashboard; from the order lifecycle core's perspective products are
// read-only reference data used to hydrate line items for display.
package product

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// UnknownProductName is the display fallback for line items whose referenced
// product no longer exists in the catalog. The catalog is not guaranteed to
// retain every historical product.
const UnknownProductName = "Producto desconocido"

// Domain errors for product operations.
var (
	// ErrNameIsRequired is returned when attempting to create a product without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrProductIsNotConstructed is returned when using an improperly initialized Product.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
)

// Product represents one catalog entry: the display name and current price
// for a sellable item.
//
// Business rules:
//   - Product must have a valid UUID and a non-empty name
//   - Price must not be negative; zero is allowed (promotional items)
//   - Price is the current catalog price, not a historical snapshot
type Product struct {
	// id uniquely identifies the product
	id kernel.UUID
	// name is the display name shown on order forms
	name string
	// price is the current catalog price
	price decimal.Decimal
	// guard ensures the product was properly constructed
	guard guard.ConstructorGuard
}

// NewProduct creates a validated catalog product.
//
// Parameters:
//   - id: unique identifier (must be valid UUID)
//   - name: display name (must be non-empty)
//   - price: current price (must not be negative)
//
// Returns a validation error if any parameter is invalid.
func NewProduct(id kernel.UUID, name string, price decimal.Decimal) (*Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	if name == "" {
		return nil, ErrNameIsRequired
	}

	if price.IsNegative() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("%s is negative", price.String()),
		)
	}

	return &Product{
		id:    id,
		name:  name,
		price: price,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Product was created via NewProduct.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the product's current catalog price.
func (p *Product) Price() decimal.Decimal {
	return p.price
}
