package algebra

// Identity returns its argument unchanged.
func Identity[T any](x T) T {
	return x
}

// Compose returns h = f . g
func Compose[A, B, C any](g func(a A) B, f func(b B) C) func(A) C {
	return func(a A) C {
		b := g(a)
		return f(b)
	}
}
