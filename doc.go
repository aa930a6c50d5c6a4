/*
Package algebra holds a small set of algebraic data type building blocks.

The root package contains function combinators and helpers shared by the
sub-packages. Package adt is a factory for tagged-union types with named
variants and fields; packages either, maybe and result build concrete unions
on top of it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package algebra
