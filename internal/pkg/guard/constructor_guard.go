// Package guard provides a defensive construction pattern for commands, queries,
// and value objects. Embedding a ConstructorGuard in a struct makes zero-value
// instances detectable, so code paths can insist on objects built through their
// designated constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is
// supplied for an object that was not built through its constructor.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. The zero value is
// invalid; only NewConstructorGuard produces a guard that passes validation.
//
// Typical usage:
//
//	type AddItemCommand struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewAddItemCommand(name string) (AddItemCommand, error) {
//	    if name == "" {
//	        return AddItemCommand{}, errors.New("name is required")
//	    }
//	    return AddItemCommand{name: name, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c AddItemCommand) Validate() error {
//	    return c.guard.Validate(ErrAddItemCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking its holder as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a properly constructed guard. For a zero-value guard
// it returns validationError, or ErrDefaultConstructorGuard when validationError
// is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
