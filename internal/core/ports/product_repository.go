package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
)

// ProductRepository defines the read contract against the catalog.
// The catalog is owned by the storefront's CRUD dashboard; the order
// lifecycle core only ever reads it to hydrate line items and edit forms.
type ProductRepository interface {
	// GetByIDs retrieves the catalog products for the given ids.
	// Ids that no longer exist in the catalog are silently omitted from
	// the result; callers hydrate missing products with a placeholder.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error)

	// GetAll retrieves the full catalog, ordered by name, for selection
	// lists on order edit forms.
	GetAll(ctx context.Context) ([]*product.Product, error)
}
