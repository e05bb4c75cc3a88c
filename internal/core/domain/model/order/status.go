package order

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions so orders
// follow the fulfillment workflow and terminal states stay terminal.
//
// State transitions:
//
//	Created ──> Confirmed ──> Preparing ──> Shipped ──> Delivered
//	   │            │             │
//	   └────────────┴─────────────┴──> Cancelled
//
// Every state additionally allows a transition to itself. Re-posting the
// current status is a valid operation that still produces a history entry.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when an order comes out of checkout.
	Created

	// Confirmed indicates the order has been verified (e.g. payment checked)
	// and accepted for fulfillment.
	Confirmed

	// Preparing indicates the order is being picked and packed.
	Preparing

	// Shipped indicates the order has left for delivery.
	Shipped

	// Delivered indicates the order reached the customer.
	// This is a final state with no further transitions allowed.
	Delivered

	// Cancelled indicates the order was abandoned before shipping.
	// This is a final state with no further transitions allowed.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Created:   "created",
		Confirmed: "confirmed",
		Preparing: "preparing",
		Shipped:   "shipped",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:   "created",
		Confirmed: "confirmed",
		Preparing: "preparing",
		Shipped:   "shipped",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// getAllowedTransitions returns the adjacency table of legal status moves.
// Self-transitions are handled separately in CanTransitionTo and are not listed.
func getAllowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		Created:   {Confirmed, Cancelled},
		Confirmed: {Preparing, Cancelled},
		Preparing: {Shipped, Cancelled},
		Shipped:   {Delivered},
		Delivered: {},
		Cancelled: {},
	}
}

// StatusFromString parses a status from its wire representation.
//
// Returns an error if the string does not name a member of the enum.
// Arbitrary strings are never coerced into a Status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is a member of the enum.
//
// Valid statuses are: Created, Confirmed, Preparing, Shipped, Delivered, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire/display name of the status.
//
// Returns "unknown" for invalid status values.
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status has no outgoing transitions
// other than re-posting itself.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether moving from the current status to next
// is allowed by the fulfillment workflow.
//
// A status can always transition to itself; re-posting the current status
// is valid even in terminal states, so an audit entry can still be recorded.
func (s Status) CanTransitionTo(next Status) bool {
	if s == next {
		return s.Validate() == nil
	}
	for _, allowed := range getAllowedTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo moves the status to next.
//
// Returns:
//   - (next, nil) on a legal transition
//   - (0, error) if next is not a member of the enum or the move is not
//     allowed from the current status
//
// This method is used by Order.ChangeStatus to enforce the workflow.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}

	if !s.CanTransitionTo(next) {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("transition from %s to %s is not allowed", s.String(), next.String()),
		)
	}

	return next, nil
}
