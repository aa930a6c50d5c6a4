package result

import (
	"github.com/npillmayer/algebra/either"
	"github.com/npillmayer/algebra/maybe"
)

/*
{-| A `Result` is the result of a computation that may fail. This is a great
way to manage errors in Elm.

# Type and Constructors
@docs Result

# Mapping
@docs map, map2, map3, map4, map5

# Chaining
@docs andThen

# Handling Errors
@docs withDefault, toMaybe, fromMaybe, mapError
-}
*/

// Result is the result of a computation that may fail. It is an
// Either[error, T], with Ok being the Right and Err being the Left variant.
type Result[T any] interface {
	Match() Matcher[T]
	IsOk() bool
	WithDefault(T) T
	Either() either.Either[error, T]
	String() string
	MarshalJSON() ([]byte, error)
}

type result[T any] struct {
	e either.Either[error, T]
}

// Ok creates a successful result.
func Ok[T any](x T) Result[T] {
	return result[T]{e: either.Right[error](x)}
}

// Err creates a failed result. A nil err denotes success, i.e. Err(nil) is
// Ok with the zero value of T.
func Err[T any](err error) Result[T] {
	if err == nil {
		var zero T
		return Ok(zero)
	}
	return result[T]{e: either.Left[error, T](err)}
}

// FromEither wraps an Either as a Result.
func FromEither[T any](e either.Either[error, T]) Result[T] {
	return result[T]{e: e}
}

// Try is a convenience function for the common Go (value, error) idiom.
func Try[T any](x T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(x)
}

func (r result[T]) Match() Matcher[T] {
	return &matcher[T]{r: r}
}

func (r result[T]) IsOk() bool {
	return r.e.IsRight()
}

func (r result[T]) WithDefault(def T) T {
	return r.e.WithDefault(def)
}

func (r result[T]) Either() either.Either[error, T] {
	return r.e
}

func (r result[T]) String() string {
	return r.e.String()
}

// MarshalJSON renders a result like the Either it wraps. Errors are
// serialized by their message, a nil error as null.
func (r result[T]) MarshalJSON() ([]byte, error) {
	if err, isErr := r.e.LeftValue(); isErr {
		if err == nil {
			return either.Left[any, T](nil).MarshalJSON()
		}
		return either.Left[string, T](err.Error()).MarshalJSON()
	}
	return r.e.MarshalJSON()
}

// --- Mapping and chaining --------------------------------------------------

// Map applies f to an Ok value.
func Map[T, S any](f func(T) S, r Result[T]) Result[S] {
	return FromEither(either.Map(f, r.Either()))
}

// MapError applies f to an Err value.
func MapError[T any](f func(error) error, r Result[T]) Result[T] {
	return FromEither(either.Swap(either.Map(f, either.Swap(r.Either()))))
}

// AndThen chains a computation which may fail to r.
func AndThen[T, S any](f func(T) Result[S], r Result[T]) Result[S] {
	return FromEither(either.Chain(func(x T) either.Either[error, S] {
		return f(x).Either()
	}, r.Either()))
}

// ToMaybe drops the error of a result.
func ToMaybe[T any](r Result[T]) maybe.Maybe[T] {
	if x, ok := r.Either().RightValue(); ok {
		return maybe.Just(x)
	}
	return maybe.Nothing[T]()
}

// FromMaybe converts a Maybe to a Result, using err for Nothing.
func FromMaybe[T any](err error, m maybe.Maybe[T]) Result[T] {
	var x T
	switch mm := m.Match(); mm {
	case mm.Just(&x):
		return Ok(x)
	case mm.Nothing():
	}
	return Err[T](err)
}

// --- Matching --------------------------------------------------------------

type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r result[T]
}

func (rm *matcher[T]) Ok(v *T) Matcher[T] {
	if x, ok := rm.r.e.RightValue(); ok {
		*v = x
		return rm
	}
	return nil
}

func (rm *matcher[T]) Err(err *error) Matcher[T] {
	if e, isErr := rm.r.e.LeftValue(); isErr {
		*err = e
		return rm
	}
	return nil
}
