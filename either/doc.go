/*
Package either implements the Either union: a value which is either a Left
or a Right, each carrying a single field 'value'.

Haskell:

    data Either a b = Left a | Right b

Either is declared with package adt and adds equality, mapping, application
and sequencing on top of it. Right is the “successful” variant: Map, Chain and
Ap operate on Right values and pass Left values through unchanged.

    r := either.Right[string](41)
    r = r.Map(func(n int) int { return n + 1 })  // => Right(42)
    l := either.Left[string, int]("error")
    l = l.Map(func(n int) int { return n + 1 })  // => Left("error")

Operations requiring a function panic with an *adt.TypeError if given a nil
function. The check is performed before looking at the variant, i.e. a Left
will panic as well.

Values of Either are immutable and safe for concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package either

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'algebra.either'.
func tracer() tracing.Trace {
	return tracing.Select("algebra.either")
}
