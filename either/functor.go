package either

import (
	"fmt"

	"github.com/npillmayer/algebra/adt"
)

// Map applies f to the value of a Right, possibly changing its type.
// A Left is passed through.
func Map[L, R, S any](f func(R) S, e Either[L, R]) Either[L, S] {
	switch x := e.(type) {
	case left[L, R]:
		adt.AssertFunction("Either.Left#map", f)
		return Left[L, S](x.value)
	case right[L, R]:
		adt.AssertFunction("Either.Right#map", f)
		return Right[L](f(x.value))
	}
	panic(nilEither("map"))
}

// Chain applies f to the value of a Right and returns f's result as is.
// This sequences computations which may fail: a Right may turn into a Left.
// A Left is passed through.
func Chain[L, R, S any](f func(R) Either[L, S], e Either[L, R]) Either[L, S] {
	switch x := e.(type) {
	case left[L, R]:
		adt.AssertFunction("Either.Left#chain", f)
		return Left[L, S](x.value)
	case right[L, R]:
		adt.AssertFunction("Either.Right#chain", f)
		return f(x.value)
	}
	panic(nilEither("chain"))
}

// Ap applies the function held by a Right ef to e, by mapping it over e.
// If ef is a Left, it is returned (with its value unchanged); otherwise the
// result is Map(f, e), i.e. a Left e is propagated.
//
//     Ap(Right(inc), Right(41))  // => Right(42)
//     Ap(Right(inc), Left("e"))  // => Left("e")
//     Ap(Left("e"), Right(1))    // => Left("e")
//
func Ap[L, A, B any](ef Either[L, func(A) B], e Either[L, A]) Either[L, B] {
	switch x := ef.(type) {
	case left[L, func(A) B]:
		return Left[L, B](x.value)
	case right[L, func(A) B]:
		adt.AssertFunction("Either.Right#ap", x.value)
		return Map(x.value, e)
	}
	panic(nilEither("ap"))
}

// Fold eliminates an Either by applying onLeft or onRight, respectively.
func Fold[L, R, O any](onLeft func(L) O, onRight func(R) O, e Either[L, R]) O {
	adt.AssertFunction("Either#fold", onLeft)
	adt.AssertFunction("Either#fold", onRight)
	switch x := e.(type) {
	case left[L, R]:
		return onLeft(x.value)
	case right[L, R]:
		return onRight(x.value)
	}
	panic(nilEither("fold"))
}

// Swap turns a Left into a Right and vice versa.
func Swap[L, R any](e Either[L, R]) Either[R, L] {
	switch x := e.(type) {
	case left[L, R]:
		return Right[R](x.value)
	case right[L, R]:
		return Left[R, L](x.value)
	}
	panic(nilEither("swap"))
}

func nilEither(op string) string {
	return fmt.Sprintf("either: %s called on a nil Either", op)
}
