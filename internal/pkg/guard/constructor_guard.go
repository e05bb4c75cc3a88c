// Package guard provides a defensive programming pattern that ensures commands,
// queries, and other objects are only created through their designated constructor
// functions. A zero-value guard fails validation, which makes accidental direct
// struct initialization detectable.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the object was not
// constructed properly and no specific error was provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its constructor.
// Embed it in a struct and set it with NewConstructorGuard inside the constructor.
//
// Example:
//
//	type ChangeOrderStatusCommand struct {
//	    orderID kernel.UUID
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewChangeOrderStatusCommand(orderID kernel.UUID) (ChangeOrderStatusCommand, error) {
//	    return ChangeOrderStatusCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks its owner as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the owner was created through its constructor.
// For a zero-value guard it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
