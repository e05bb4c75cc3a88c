package order

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one product-quantity-comment line within an Order.
//
// An item references a catalog product by id; display name and price are
// resolved against the live catalog at read time, never duplicated into
// the item at write time.
//
// Item is a value object: it has no identity of its own and is owned
// exclusively by its Order.
type Item struct {
	// productID references the catalog product this line is for
	productID kernel.UUID

	// quantity is the number of units ordered (must be at least 1)
	quantity int

	// comment is optional free text attached by the customer
	comment string

	guard kernel.ConstructorGuard
}

// NewItem creates a validated order line.
//
// Parameters:
//   - productID: identifier of the referenced catalog product (must be valid)
//   - quantity: number of units (must be >= 1)
//   - comment: optional free text, may be empty
//
// Returns a validation error if the product id is invalid or the quantity
// is below 1.
func NewItem(productID kernel.UUID, quantity int, comment string) (Item, error) {
	if err := productID.Validate(); err != nil {
		return Item{}, err
	}

	if quantity < 1 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not at least 1", quantity),
		)
	}

	return Item{
		productID: productID,
		quantity:  quantity,
		comment:   comment,
		guard:     kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Item was created via NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ProductID returns the id of the referenced catalog product.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the ordered unit count.
func (i Item) Quantity() int {
	return i.quantity
}

// Comment returns the customer's free-text note. Empty when none was given.
func (i Item) Comment() string {
	return i.comment
}
