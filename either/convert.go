package either

import (
	"fmt"

	"github.com/npillmayer/algebra/adt"
)

// FromInstance reconstructs an Either from a structural member of the Either
// type, e.g. an *adt.Instance created from a separate declaration of Either.
// A value failing the membership test is diagnosed (in development mode), but
// conversion is attempted anyway.
func FromInstance[L, R any](v any) (Either[L, R], error) {
	eitherType.Check("Either.FromInstance", v)
	if e, ok := v.(Either[L, R]); ok {
		return e, nil
	}
	m, ok := v.(adt.Member)
	if !ok {
		return nil, fmt.Errorf("%w: %v is not an ADT member", adt.ErrVariant, v)
	}
	in, ok := v.(adt.Instancer)
	if !ok {
		return nil, fmt.Errorf("%w: cannot access fields of %v", adt.ErrField, v)
	}
	value, ok := in.Instance().Get("value")
	if !ok {
		return nil, fmt.Errorf("%w: %s has no field \"value\"", adt.ErrField, m.Tag())
	}
	tracer().Debugf("converting %s instance with value %v", m.Tag(), value)
	switch m.Tag() {
	case "Left":
		l, err := valueAs[L](value)
		if err != nil {
			return nil, err
		}
		return Left[L, R](l), nil
	case "Right":
		r, err := valueAs[R](value)
		if err != nil {
			return nil, err
		}
		return Right[L](r), nil
	}
	return nil, fmt.Errorf("%w: Either has no variant %q", adt.ErrVariant, m.Tag())
}

// valueAs asserts value to be of type T. A nil value yields the zero value of T.
func valueAs[T any](value any) (T, error) {
	var zero T
	if value == nil {
		return zero, nil
	}
	t, ok := value.(T)
	if !ok {
		return zero, fmt.Errorf("%w: value %v is of type %T, expected %T", adt.ErrField, value, value, zero)
	}
	return t, nil
}
