package either

import (
	"fmt"

	"github.com/npillmayer/algebra/adt"
)

// Namespace qualifies Either in textual and JSON representations.
const Namespace = "algebra"

var eitherType = adt.MustData(Namespace, "Either",
	adt.V("Left", "value"),
	adt.V("Right", "value"))

var (
	leftCtor  = eitherType.Constructors()[0]
	rightCtor = eitherType.Constructors()[1]
)

// Type returns the ADT type of Either, e.g. for structural membership tests.
func Type() *adt.Type {
	return eitherType
}

// Either is a value of either type L (Left) or type R (Right).
// The set of implementations is closed: every Either is either a Left or a
// Right, and never both.
type Either[L, R any] interface {
	adt.Member
	adt.Instancer
	IsLeft() bool
	IsRight() bool
	Is(variant string) bool
	Equals(Either[L, R]) bool
	Map(func(R) R) Either[L, R]
	Chain(func(R) Either[L, R]) Either[L, R]
	Match() Matcher[L, R]
	WithDefault(R) R
	LeftValue() (L, bool)
	RightValue() (R, bool)
	String() string
	MarshalJSON() ([]byte, error)
	isEither()
}

// Left creates a Left value.
func Left[L, R any](value L) Either[L, R] {
	return left[L, R]{value: value}
}

// Right creates a Right value.
func Right[L, R any](value R) Either[L, R] {
	return right[L, R]{value: value}
}

// Of lifts a value into Either. It always produces a Right.
func Of[L, R any](value R) Either[L, R] {
	return Right[L](value)
}

// --- Left ------------------------------------------------------------------

type left[L, R any] struct {
	value L
}

func (e left[L, R]) isEither() {}

func (e left[L, R]) Tag() string          { return "Left" }
func (e left[L, R]) ADTSignature() string { return eitherType.Signature() }
func (e left[L, R]) IsLeft() bool         { return true }
func (e left[L, R]) IsRight() bool        { return false }
func (e left[L, R]) Is(variant string) bool {
	return variant == "Left"
}

func (e left[L, R]) Instance() *adt.Instance {
	return leftCtor.MustNew(e.value)
}

func (e left[L, R]) Equals(other Either[L, R]) bool {
	o, ok := other.(left[L, R])
	return ok && adt.Equal(e.value, o.value)
}

func (e left[L, R]) Map(f func(R) R) Either[L, R] {
	adt.AssertFunction("Either.Left#map", f)
	return e
}

func (e left[L, R]) Chain(f func(R) Either[L, R]) Either[L, R] {
	adt.AssertFunction("Either.Left#chain", f)
	return e
}

func (e left[L, R]) WithDefault(def R) R {
	return def
}

func (e left[L, R]) LeftValue() (L, bool) {
	return e.value, true
}

func (e left[L, R]) RightValue() (R, bool) {
	var zero R
	return zero, false
}

func (e left[L, R]) String() string {
	return fmt.Sprintf("(%s) Either.Left(%v)", Namespace, e.value)
}

func (e left[L, R]) MarshalJSON() ([]byte, error) {
	return e.Instance().MarshalJSON()
}

// --- Right -----------------------------------------------------------------

type right[L, R any] struct {
	value R
}

func (e right[L, R]) isEither() {}

func (e right[L, R]) Tag() string          { return "Right" }
func (e right[L, R]) ADTSignature() string { return eitherType.Signature() }
func (e right[L, R]) IsLeft() bool         { return false }
func (e right[L, R]) IsRight() bool        { return true }
func (e right[L, R]) Is(variant string) bool {
	return variant == "Right"
}

func (e right[L, R]) Instance() *adt.Instance {
	return rightCtor.MustNew(e.value)
}

func (e right[L, R]) Equals(other Either[L, R]) bool {
	o, ok := other.(right[L, R])
	return ok && adt.Equal(e.value, o.value)
}

func (e right[L, R]) Map(f func(R) R) Either[L, R] {
	adt.AssertFunction("Either.Right#map", f)
	return Right[L](f(e.value))
}

func (e right[L, R]) Chain(f func(R) Either[L, R]) Either[L, R] {
	adt.AssertFunction("Either.Right#chain", f)
	return f(e.value)
}

func (e right[L, R]) WithDefault(R) R {
	return e.value
}

func (e right[L, R]) LeftValue() (L, bool) {
	var zero L
	return zero, false
}

func (e right[L, R]) RightValue() (R, bool) {
	return e.value, true
}

func (e right[L, R]) String() string {
	return fmt.Sprintf("(%s) Either.Right(%v)", Namespace, e.value)
}

func (e right[L, R]) MarshalJSON() ([]byte, error) {
	return e.Instance().MarshalJSON()
}
