package queries

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// GetOrderForUpdateQueryHandler assembles the edit view of an order.
// Order and line item reads are raw SQL; catalog reads go through the
// product repository port.
//
// An unknown order id is a recoverable condition (stale links are expected),
// reported as errs.ObjectNotFoundError rather than a fault. Items whose
// product vanished from the catalog hydrate with the placeholder name and a
// zero price.
type GetOrderForUpdateQueryHandler struct {
	db       *gorm.DB
	products ports.ProductRepository
	hydrator services.OrderHydrator
}

// NewGetOrderForUpdateQueryHandler creates a handler for edit-form queries.
// Requires a GORM database connection and a catalog repository.
func NewGetOrderForUpdateQueryHandler(db *gorm.DB, products ports.ProductRepository) GetOrderForUpdateQueryHandler {
	return GetOrderForUpdateQueryHandler{
		db:       db,
		products: products,
		hydrator: services.NewOrderHydrator(),
	}
}

// Handle loads the order with its line items, resolves them against the
// live catalog, and returns the hydrated lines together with the full
// catalog for the selection list.
func (h GetOrderForUpdateQueryHandler) Handle(
	ctx context.Context,
	query GetOrderForUpdateQuery,
) (GetOrderForUpdateQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderForUpdateQueryResponse{}, err
	}

	aggregate, err := h.loadOrder(ctx, query.OrderID())
	if err != nil {
		return GetOrderForUpdateQueryResponse{}, err
	}

	productIDs := make([]kernel.UUID, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		productIDs = append(productIDs, item.ProductID())
	}

	referenced, err := h.products.GetByIDs(ctx, productIDs)
	if err != nil {
		return GetOrderForUpdateQueryResponse{}, err
	}

	hydrated, err := h.hydrator.Hydrate(aggregate, referenced)
	if err != nil {
		return GetOrderForUpdateQueryResponse{}, err
	}

	catalog, err := h.products.GetAll(ctx)
	if err != nil {
		return GetOrderForUpdateQueryResponse{}, err
	}

	items := make([]OrderItemResponse, 0, len(hydrated))
	for _, line := range hydrated {
		items = append(items, OrderItemResponse{
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     line.Price,
			Quantity:  line.Quantity,
			Comment:   line.Comment,
			Known:     line.Known,
		})
	}

	catalogResp := make([]CatalogProductResponse, 0, len(catalog))
	for _, p := range catalog {
		catalogResp = append(catalogResp, CatalogProductResponse{
			ID:    p.ID(),
			Name:  p.Name(),
			Price: p.Price(),
		})
	}

	return GetOrderForUpdateQueryResponse{
		ID:      aggregate.ID(),
		Status:  aggregate.Status().String(),
		Items:   items,
		Total:   h.hydrator.Total(hydrated),
		Catalog: catalogResp,
	}, nil
}

func (h GetOrderForUpdateQueryHandler) loadOrder(ctx context.Context, orderID kernel.UUID) (*order.Order, error) {
	var status int
	var id uuid.UUID

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status
		FROM orders
		WHERE id = ?
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if rowsErr := rows.Err(); rowsErr != nil {
			return nil, rowsErr
		}
		return nil, errs.NewObjectNotFoundError("order", orderID)
	}
	if err = rows.Scan(&id, &status); err != nil {
		return nil, err
	}

	items, err := h.loadItems(ctx, orderID)
	if err != nil {
		return nil, err
	}

	restoredID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(restoredID, order.Status(status), items)
}

func (h GetOrderForUpdateQueryHandler) loadItems(ctx context.Context, orderID kernel.UUID) ([]order.Item, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			quantity,
			comment
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]order.Item, 0)
	for rows.Next() {
		var productID uuid.UUID
		var quantity int
		var comment sql.NullString

		if err = rows.Scan(&productID, &quantity, &comment); err != nil {
			return nil, err
		}

		itemProductID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, idErr
		}

		item, itemErr := order.NewItem(itemProductID, quantity, comment.String)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
