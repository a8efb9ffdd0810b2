// Package guard provides ConstructorGuard, a marker that distinguishes values built through
// their constructor from zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the object is a zero value and no
// specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in commands, queries and value objects that must only be
// created through their New* constructor. The zero value fails validation.
//
// Example:
//
//	type AddCartItemCommand struct {
//	    userID int64
//	    guard  guard.ConstructorGuard
//	}
//
//	func (c AddCartItemCommand) Validate() error {
//	    return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that marks its owner as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for constructed owners. For zero values it returns validationError,
// or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
