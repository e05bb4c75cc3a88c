package order

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
)

// ErrStatusChangeIsNotConstructed is returned when a StatusChange instance was
// not created through NewStatusChange or RestoreStatusChange.
var ErrStatusChangeIsNotConstructed = errors.New(
	"StatusChange must be created via NewStatusChange or RestoreStatusChange constructor",
)

// StatusChange is one immutable audit record of a single status transition.
//
// Records are append-only: once created they are never updated or deleted.
// The ledger of all StatusChange records for an order, read in creation
// order, reproduces the order's full lifecycle; the newest record's Next
// always equals the order's current status.
//
// OccurredAt is zero for records that have not yet been persisted; the
// database assigns the authoritative timestamp on insert, which keeps the
// per-order sequence monotonically non-decreasing under transaction
// serialization.
type StatusChange struct {
	id       kernel.UUID
	orderID  kernel.UUID
	previous Status
	next     Status
	comment  string

	occurredAt time.Time

	guard kernel.ConstructorGuard
}

// NewStatusChange creates the audit record for a transition that is about to
// be committed. The timestamp is left zero and assigned by the store.
//
// Both previous and next must be valid enum members. previous == next is
// allowed: re-posting a status is recorded, not deduplicated.
func NewStatusChange(id, orderID kernel.UUID, previous, next Status, comment string) (StatusChange, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		previous.Validate(),
		next.Validate(),
	); err != nil {
		return StatusChange{}, err
	}

	return StatusChange{
		id:       id,
		orderID:  orderID,
		previous: previous,
		next:     next,
		comment:  comment,
		guard:    kernel.NewConstructorGuard(),
	}, nil
}

// RestoreStatusChange reconstructs a persisted audit record, including the
// timestamp the store assigned. Used exclusively by repository implementations.
func RestoreStatusChange(
	id, orderID kernel.UUID,
	previous, next Status,
	comment string,
	occurredAt time.Time,
) (StatusChange, error) {
	change, err := NewStatusChange(id, orderID, previous, next, comment)
	if err != nil {
		return StatusChange{}, err
	}

	change.occurredAt = occurredAt
	return change, nil
}

// Validate ensures the record was created via a factory method.
func (c StatusChange) Validate() error {
	return c.guard.Validate(ErrStatusChangeIsNotConstructed)
}

// ID returns the record's unique identifier.
func (c StatusChange) ID() kernel.UUID {
	return c.id
}

// OrderID returns the identifier of the owning order.
func (c StatusChange) OrderID() kernel.UUID {
	return c.orderID
}

// Previous returns the order's status immediately before the transition.
func (c StatusChange) Previous() Status {
	return c.previous
}

// Next returns the order's status immediately after the transition.
func (c StatusChange) Next() Status {
	return c.next
}

// Comment returns the free-text note attached to the transition.
// Empty when none was given.
func (c StatusChange) Comment() string {
	return c.comment
}

// OccurredAt returns the store-assigned creation time of the record.
// Zero for records not yet persisted.
func (c StatusChange) OccurredAt() time.Time {
	return c.occurredAt
}
