/*
Package adt is a factory for algebraic data types: tagged unions of named
variants, each with an ordered list of fields.

A declaration produces an ADT type, a constructor per variant and instances
which remember the variant that produced them:

    shape := adt.MustData("geo", "Shape",
        adt.V("Circle", "radius"),
        adt.V("Rect", "width", "height"))
    c, _ := shape.New("Circle", 2.0)
    c.Is("Circle")   // => true
    c.String()       // => (geo) Shape.Circle(2)

Instances are immutable value objects and may be shared between goroutines
without coordination.

Membership of a value in an ADT type is tested structurally: a value belongs
to a type if it reports the same type signature, i.e. it stems from an
identical declaration. Two separately declared copies of the same type accept
each other's instances. In development mode, operations receiving a value of
a foreign type emit a diagnostic through the tracer, but proceed anyway; in
production mode these checks are skipped. The mode is selected at build time
(build tag 'adt_production') and may be overridden at startup with SetMode.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package adt

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'algebra.adt'.
func tracer() tracing.Trace {
	return tracing.Select("algebra.adt")
}
