package adt

import (
	"errors"
	"fmt"
	"reflect"
)

// Errors returned by declarations and constructors. Concrete errors wrap one of these.
var (
	ErrDeclaration = errors.New("invalid ADT declaration")
	ErrVariant     = errors.New("unknown variant")
	ErrArity       = errors.New("wrong number of field values")
	ErrField       = errors.New("invalid field")
)

// TypeError is raised (as a panic) whenever an operation requiring a function
// is given something else. It is never recovered by this module.
type TypeError struct {
	Method string // e.g., "Either.Right#map"
	Value  any    // the offending argument
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s expects a function, but was given %v.", e.Method, e.Value)
}

// AssertFunction panics with a *TypeError if f is not a non-nil function.
// It is enforced regardless of the current Mode.
func AssertFunction(method string, f any) {
	v := reflect.ValueOf(f)
	if !v.IsValid() || v.Kind() != reflect.Func || v.IsNil() {
		panic(&TypeError{Method: method, Value: f})
	}
}
