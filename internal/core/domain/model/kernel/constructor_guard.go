package kernel

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when
// the caller passes a nil validation error, so a bypassed constructor still
// fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value object as having passed through its
// constructor. The zero value fails Validate, so struct literals that bypass
// the constructor are caught before any operation runs on them.
//
// Embed the guard unexported and set it with NewConstructorGuard inside the
// constructor; Validate then returns the object's own not-constructed error
// for zero values.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking the object as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed object and validationError (or
// ErrDefaultConstructorGuard when it is nil) for a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
