/*
Command adt inspects ADT declarations and constructs instances from the
command line.

    adt describe "Shape = Circle radius | Rect width height"
    adt new "Either = Left value | Right value" Right '{"n": 5}' --tree

Field values are given as JSON; arguments which are not valid JSON are taken
as strings.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"os"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'algebra.cmd'.
func tracer() tracing.Trace {
	return tracing.Select("algebra.cmd")
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
