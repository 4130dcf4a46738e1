// Package guard provides ConstructorGuard, a marker embedded in value types
// that must only be obtained from their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes constructor-built values from zero values.
// Commands and queries embed it and call Validate before they are handled,
// so a literal such as CreateOrderCommand{} is rejected instead of reaching
// the store with unchecked fields.
//
// Example:
//
//	type ListItemsQuery struct {
//	    guard guard.ConstructorGuard
//	}
//
//	func NewListItemsQuery() ListItemsQuery {
//	    return ListItemsQuery{guard: guard.NewConstructorGuard()}
//	}
//
//	func (q ListItemsQuery) Validate() error {
//	    return q.guard.Validate(ErrListItemsQueryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard and validationError otherwise.
// A nil validationError falls back to ErrDefaultConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
