package historyrepo

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GormStatusHistoryRepository implements StatusHistoryRepository using GORM.
//
// Only Create and Find are ever issued against the table; the ledger's
// append-only contract is part of this type's interface, not just a
// convention of its callers.
type GormStatusHistoryRepository struct {
	db *gorm.DB
}

// NewGormStatusHistoryRepository creates a new GORM status history repository.
func NewGormStatusHistoryRepository(db *gorm.DB) *GormStatusHistoryRepository {
	return &GormStatusHistoryRepository{db: db}
}

// Append inserts one transition record. The database assigns created_at.
func (r *GormStatusHistoryRepository) Append(ctx context.Context, change order.StatusChange) error {
	if err := change.Validate(); err != nil {
		return err
	}

	dto := fromDomain(change)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// ListByOrder returns the full transition ledger for an order in creation
// order, oldest first. The surrogate id breaks ties between rows created
// within the same timestamp granularity.
func (r *GormStatusHistoryRepository) ListByOrder(
	ctx context.Context,
	orderID kernel.UUID,
) ([]order.StatusChange, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []StatusChangeDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("created_at ASC, id ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	changes := make([]order.StatusChange, 0, len(dtos))
	for _, dto := range dtos {
		change, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		changes = append(changes, change)
	}

	return changes, nil
}
