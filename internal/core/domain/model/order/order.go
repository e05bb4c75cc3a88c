package order

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order represents a customer purchase in the storefront. It is the aggregate
// root that manages the order lifecycle from checkout through fulfillment.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Must contain at least one line item
//   - Status transitions follow the fulfillment workflow defined on Status
//   - The current status always equals the newest entry of the order's
//     status history ledger (enforced by the transition use case, which is
//     the only writer of both)
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// status represents the current state in the order lifecycle
	status Status

	// items are the product lines of the order, in the order they were added
	items []Item

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order in the Created status. This is the entry point
// for the checkout flow and the only way to produce a fresh order.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - items: line items, at least one, each created via NewItem
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
func NewOrder(id kernel.UUID, items []Item) (*Order, error) {
	order := &Order{
		status:        Created,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence with its stored status.
// Unlike NewOrder it accepts any valid status, but still enforces all other
// invariants. Used exclusively by repository implementations.
func RestoreOrder(id kernel.UUID, status Status, items []Item) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setStatus(status),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a factory method.
// This prevents bypassing validation by directly instantiating the struct.
//
// This method should be called when reconstructing orders from persistence
// to ensure data integrity.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
// Orders are considered equal if they have the same ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Items returns the order's line items in insertion order.
// The returned slice is a copy; mutating it does not affect the order.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// ChangeStatus transitions the order to newStatus and returns the immutable
// record of the transition for the audit ledger.
//
// This method enforces the following business rules:
//   - newStatus must be a member of the status enum
//   - the move must be legal per the fulfillment workflow
//   - re-posting the current status is allowed and still produces a record
//     with previous == next
//
// Parameters:
//   - newStatus: the requested lifecycle state
//   - comment: optional free-text note stored on the history record
//
// Returns:
//   - StatusChange: the record to append to the status history ledger
//   - error: validation error if the transition is not allowed
//
// The caller is responsible for persisting the order and the returned record
// within a single transactional scope, so that the order's current status
// never diverges from the newest ledger entry.
func (o *Order) ChangeStatus(newStatus Status, comment string) (StatusChange, error) {
	previous := o.status

	next, err := o.status.TransitionTo(newStatus)
	if err != nil {
		return StatusChange{}, err
	}

	change, err := NewStatusChange(kernel.NewUUID(), o.id, previous, next, comment)
	if err != nil {
		return StatusChange{}, err
	}

	o.status = next
	return change, nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setStatus validates and sets the order's lifecycle status.
// This is a private method used only during restoration.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setItems validates and sets the order's line items.
// An order must contain at least one item, and every item must have been
// created via NewItem. This is a private method used only during construction.
func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}
