package maybe

import (
	"fmt"

	"github.com/npillmayer/algebra/adt"
)

/*
module Maybe exposing (Maybe(Just,Nothing), andThen, map, withDefault, oneOf)

{-| This library fills a bunch of important niches in Elm. A `Maybe` can help
you with optional arguments, error handling, and records with optional fields.

# Definition
@docs Maybe

# Common Helpers
@docs map, withDefault, oneOf

# Chaining Maybes
@docs andThen

-}
*/

var maybeType = adt.MustData("algebra", "Maybe",
	adt.V("Just", "value"),
	adt.V("Nothing"))

// Type returns the ADT type of Maybe.
func Type() *adt.Type {
	return maybeType
}

// Maybe is an optional value.
type Maybe[T any] interface {
	adt.Member
	adt.Instancer
	Match() Matcher[T]
	IsJust() bool
	IsNothing() bool
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
	Chain(func(T) Maybe[T]) Maybe[T]
	Equals(Maybe[T]) bool
	String() string
	MarshalJSON() ([]byte, error)
}

type maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps x.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing is the absent value.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

// Of lifts x into Maybe, i.e. Just(x).
func Of[T any](x T) Maybe[T] {
	return Just(x)
}

func (m maybe[T]) Match() Matcher[T] {
	return &matcher[T]{m: m}
}

func (m maybe[T]) Tag() string {
	if m.tag {
		return "Just"
	}
	return "Nothing"
}

func (m maybe[T]) ADTSignature() string {
	return maybeType.Signature()
}

func (m maybe[T]) Instance() *adt.Instance {
	if m.tag {
		return maybeType.Constructors()[0].MustNew(m.value)
	}
	return maybeType.Constructors()[1].MustNew()
}

func (m maybe[T]) IsJust() bool {
	return m.tag
}

func (m maybe[T]) IsNothing() bool {
	return !m.tag
}

func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	adt.AssertFunction("Maybe."+m.Tag()+"#map", f)
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

func (m maybe[T]) Chain(f func(T) Maybe[T]) Maybe[T] {
	adt.AssertFunction("Maybe."+m.Tag()+"#chain", f)
	if m.tag {
		return f(m.value)
	}
	return m
}

func (m maybe[T]) Equals(other Maybe[T]) bool {
	o, ok := other.(maybe[T])
	if !ok || o.tag != m.tag {
		return false
	}
	return !m.tag || adt.Equal(m.value, o.value)
}

func (m maybe[T]) String() string {
	if m.tag {
		return fmt.Sprintf("(algebra) Maybe.Just(%v)", m.value)
	}
	return "(algebra) Maybe.Nothing()"
}

func (m maybe[T]) MarshalJSON() ([]byte, error) {
	return m.Instance().MarshalJSON()
}

// AndThen chains f to x, possibly changing the type of the value.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	adt.AssertFunction("Maybe#andThen", f)
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return f(v)
	case m.Nothing():
	}
	return Nothing[S]()
}

// Map applies f to the value of a Just, possibly changing its type.
func Map[T, S any](f func(T) S, x Maybe[T]) Maybe[S] {
	adt.AssertFunction("Maybe#map", f)
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return Just(f(v))
	case m.Nothing():
	}
	return Nothing[S]()
}

// Ap applies the function in mf to the value in x, if both are present.
func Ap[T, S any](mf Maybe[func(T) S], x Maybe[T]) Maybe[S] {
	var f func(T) S
	switch m := mf.Match(); m {
	case m.Just(&f):
		adt.AssertFunction("Maybe.Just#ap", f)
		return Map(f, x)
	case m.Nothing():
	}
	return Nothing[S]()
}

// OneOf returns the first Just of a list of Maybes, or Nothing.
func OneOf[T any](ms ...Maybe[T]) Maybe[T] {
	for i, m := range ms {
		if m != nil && m.IsJust() {
			tracer().Debugf("OneOf: alternative #%d is %v", i, m)
			return m
		}
	}
	tracer().Debugf("OneOf: none of %d alternatives present", len(ms))
	return Nothing[T]()
}

// --- Matching --------------------------------------------------------------

type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm *matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm *matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
