package algebra_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/algebra"
)

func TestComposition(t *testing.T) {
	g := func(n int) float32 {
		return float32(n) + 0.5
	}
	f := func(x float32) string {
		return fmt.Sprintf("%.3f", x)
	}
	// h := Compose[int, float32, string](f, g) // works, but type-inference helps
	h := algebra.Compose(g, f)
	h7 := h(7)
	if h7 != "7.500" {
		t.Logf("composition h(7) = %q", h(7))
		t.Error("expected h(7) to return string 7.500")
	}
}

func TestIdentity(t *testing.T) {
	if algebra.Identity("x") != "x" {
		t.Error("expected Identity(x) to be x")
	}
	h := algebra.Compose(algebra.Identity[string], strings.ToUpper)
	if h("abc") != "ABC" {
		t.Errorf("expected id . upper to be upper, is %q", h("abc"))
	}
}

func TestToPairs(t *testing.T) {
	m := map[string]int{"x": 10, "y": 20}
	pairs := algebra.ToPairs(m)
	if len(pairs) != 2 {
		t.Fatalf("expected 2 pairs, have %d", len(pairs))
	}
	for _, p := range pairs {
		k, v := p.Decompose()
		if m[k] != v {
			t.Errorf("expected pair (%s, %d), have (%s, %d)", k, m[k], k, v)
		}
	}
	if len(algebra.ToPairs(map[string]int{})) != 0 {
		t.Error("expected empty map to yield no pairs")
	}
}

func TestSortedPairs(t *testing.T) {
	m := map[string]int{"b": 2, "c": 3, "a": 1}
	pairs := algebra.SortedPairs(m, func(a, b string) bool { return a < b })
	var keys []string
	for _, p := range pairs {
		keys = append(keys, p.Left)
	}
	if strings.Join(keys, ",") != "a,b,c" {
		t.Errorf("expected keys in order a,b,c; have %v", keys)
	}
}
