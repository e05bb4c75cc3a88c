// Package historyrepo persists the append-only ledger of order status
// transitions. Records are inserted exactly once; the package deliberately
// exposes no update or delete operation.
package historyrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// StatusChangeDTO represents one row of the order_status_history table.
// CreatedAt is assigned by the database on insert and is the authoritative
// timestamp of the transition.
type StatusChangeDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID `gorm:"type:uuid;index"`
	PreviousStatus int
	NextStatus     int
	Comment        *string
	CreatedAt      time.Time `gorm:"autoCreateTime;index"`
}

// TableName specifies the database table name for ledger rows.
func (StatusChangeDTO) TableName() string {
	return "order_status_history"
}

// fromDomain converts a transition record to its database representation.
func fromDomain(change order.StatusChange) StatusChangeDTO {
	var comment *string
	if c := change.Comment(); c != "" {
		comment = &c
	}

	return StatusChangeDTO{
		ID:             change.ID().Bytes(),
		OrderID:        change.OrderID().Bytes(),
		PreviousStatus: int(change.Previous()),
		NextStatus:     int(change.Next()),
		Comment:        comment,
	}
}

// toDomain converts a database row to a transition record.
func toDomain(dto StatusChangeDTO) (order.StatusChange, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.StatusChange{}, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return order.StatusChange{}, err
	}

	comment := ""
	if dto.Comment != nil {
		comment = *dto.Comment
	}

	return order.RestoreStatusChange(
		id,
		orderID,
		order.Status(dto.PreviousStatus),
		order.Status(dto.NextStatus),
		comment,
		dto.CreatedAt,
	)
}
