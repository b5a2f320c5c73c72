// Package guard provides a defensive-programming helper that ensures value
// objects, entities, and commands are only created through their designated
// constructor functions. Embedding a ConstructorGuard in a struct makes a
// zero-value instance detectable, so validation can reject objects that
// bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a zero-value guard
// is validated with a nil error, so validation always fails with a meaningful
// message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as properly constructed. The zero value is
// "not constructed"; NewConstructorGuard produces the constructed state.
//
// Example:
//
//	type Party struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewParty(name string) (Party, error) {
//	    if name == "" {
//	        return Party{}, errs.NewValueIsRequiredError("name")
//	    }
//	    return Party{name: name, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (p Party) Validate() error {
//	    return p.guard.Validate(ErrPartyIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state. Call it only
// from the owning type's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guard was created via NewConstructorGuard.
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
