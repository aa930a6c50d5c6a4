/*
Package maybe implements optional values: a Maybe is either Just a value or
Nothing. Maybe is declared with package adt as

    Maybe = Just value | Nothing

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'algebra.maybe'.
func tracer() tracing.Trace {
	return tracing.Select("algebra.maybe")
}
