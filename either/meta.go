package either

import "github.com/npillmayer/algebra/adt"

func init() {
	annotate := func(op, sig, typ, doc string) {
		adt.Annotate(op, adt.Meta{
			Signature:  sig,
			Type:       typ,
			Category:   "Either",
			Stability:  "experimental",
			Complexity: "O(1)",
			Doc:        doc,
		})
	}
	annotate("Either.Left#equals", "Equals(other)", "(Either l r).(Either l r) -> Bool",
		"True if other is a Left with an equal value.")
	annotate("Either.Right#equals", "Equals(other)", "(Either l r).(Either l r) -> Bool",
		"True if other is a Right with an equal value.")
	annotate("Either.Left#map", "Map(f)", "(Either l r).(r -> s) -> Either l s",
		"Returns the Left unchanged.")
	annotate("Either.Right#map", "Map(f)", "(Either l r).(r -> s) -> Either l s",
		"Transforms the value of a Right with f.")
	annotate("Either.Left#ap", "Ap(ef, e)", "(Either l (a -> b), Either l a) -> Either l b",
		"Returns the Left unchanged.")
	annotate("Either.Right#ap", "Ap(ef, e)", "(Either l (a -> b), Either l a) -> Either l b",
		"Maps the function held by the Right over e.")
	annotate("Either.Left#chain", "Chain(f)", "(Either l r).(r -> Either l s) -> Either l s",
		"Returns the Left unchanged.")
	annotate("Either.Right#chain", "Chain(f)", "(Either l r).(r -> Either l s) -> Either l s",
		"Applies f to the value of a Right, without re-wrapping.")
	annotate("Either.of", "Of(value)", "r -> Either l r",
		"Lifts a value into a Right.")
}
