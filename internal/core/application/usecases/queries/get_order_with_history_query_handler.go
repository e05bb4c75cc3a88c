package queries

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
)

// GetOrderWithHistoryQueryHandler retrieves an order together with its
// status transition ledger, oldest entry first.
type GetOrderWithHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderWithHistoryQueryHandler creates a handler for history queries.
// Requires a GORM database connection for query execution.
func NewGetOrderWithHistoryQueryHandler(db *gorm.DB) GetOrderWithHistoryQueryHandler {
	return GetOrderWithHistoryQueryHandler{db: db}
}

// Handle loads the order and its full transition history.
// Returns errs.ObjectNotFoundError when the order does not exist; an order
// with no recorded transitions yields an empty history, not an error.
func (h GetOrderWithHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderWithHistoryQuery,
) (GetOrderWithHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderWithHistoryQueryResponse{}, err
	}

	resp, err := h.loadOrder(ctx, query.OrderID())
	if err != nil {
		return GetOrderWithHistoryQueryResponse{}, err
	}

	history, err := h.loadHistory(ctx, query.OrderID())
	if err != nil {
		return GetOrderWithHistoryQueryResponse{}, err
	}
	resp.History = history

	return resp, nil
}

func (h GetOrderWithHistoryQueryHandler) loadOrder(
	ctx context.Context,
	orderID kernel.UUID,
) (GetOrderWithHistoryQueryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status
		FROM orders
		WHERE id = ?
	`, orderID.String()).Rows()
	if err != nil {
		return GetOrderWithHistoryQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if rowsErr := rows.Err(); rowsErr != nil {
			return GetOrderWithHistoryQueryResponse{}, rowsErr
		}
		return GetOrderWithHistoryQueryResponse{}, errs.NewObjectNotFoundError("order", orderID)
	}

	var id uuid.UUID
	var status int
	if err = rows.Scan(&id, &status); err != nil {
		return GetOrderWithHistoryQueryResponse{}, err
	}

	restoredID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderWithHistoryQueryResponse{}, err
	}

	return GetOrderWithHistoryQueryResponse{
		ID:     restoredID,
		Status: order.Status(status).String(),
	}, nil
}

func (h GetOrderWithHistoryQueryHandler) loadHistory(
	ctx context.Context,
	orderID kernel.UUID,
) ([]StatusChangeResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			previous_status,
			next_status,
			comment,
			created_at
		FROM order_status_history
		WHERE order_id = ?
		ORDER BY created_at ASC, id ASC
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]StatusChangeResponse, 0)
	for rows.Next() {
		var id uuid.UUID
		var previous, next int
		var comment sql.NullString
		var createdAt time.Time

		if err = rows.Scan(&id, &previous, &next, &comment, &createdAt); err != nil {
			return nil, err
		}

		entryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		history = append(history, StatusChangeResponse{
			ID:         entryID,
			Previous:   order.Status(previous).String(),
			Next:       order.Status(next).String(),
			Comment:    comment.String,
			OccurredAt: createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
