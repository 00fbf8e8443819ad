// Package guard provides the constructor-guard pattern used by domain
// value objects, commands and queries to detect zero-value instances
// that bypassed their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded
// object is a zero value and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed.
// The zero value is "not constructed"; only NewConstructorGuard
// produces a guard that passes validation. Embed one as a private
// field and check it in the object's Validate method.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard in the constructed state.
// Call it only from the owning object's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the owning object was built through its
// constructor. For zero-value objects it returns notConstructedErr,
// or ErrDefaultConstructorGuard when notConstructedErr is nil.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.isConstructed {
		return nil
	}

	if notConstructedErr == nil {
		return ErrDefaultConstructorGuard
	}

	return notConstructedErr
}
