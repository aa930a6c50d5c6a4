package algebra

import "sort"

// --- Pair ------------------------------------------------------------------

// Pair is a tuple of two values.
type Pair[A, B any] struct {
	Left  A
	Right B
}

// P creates a pair (x, y).
func P[A, B any](x A, y B) Pair[A, B] {
	return Pair[A, B]{x, y}
}

// Decompose returns the components of p.
func (p Pair[A, B]) Decompose() (A, B) {
	return p.Left, p.Right
}

// --- Pairs of a map --------------------------------------------------------

// ToPairs returns (key, value) pairs for all entries of m.
//
//     pairs := ToPairs(map[string]int{ "x": 10, "y": 20 })
//     // => [(x, 10), (y, 20)]  or  [(y, 20), (x, 10)]
//
// Map iteration order is undefined in Go, therefore clients should treat the
// result as an unordered collection. Use SortedPairs if a stable order is needed.
func ToPairs[K comparable, V any](m map[K]V) []Pair[K, V] {
	pairs := make([]Pair[K, V], 0, len(m))
	for k, v := range m {
		pairs = append(pairs, P(k, v))
	}
	return pairs
}

// SortedPairs is like ToPairs, but orders the pairs by key with the help of less.
func SortedPairs[K comparable, V any](m map[K]V, less func(K, K) bool) []Pair[K, V] {
	pairs := ToPairs(m)
	sort.Slice(pairs, func(i, j int) bool {
		return less(pairs[i].Left, pairs[j].Left)
	})
	return pairs
}
