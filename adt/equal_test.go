package adt

import "testing"

func TestEqual(t *testing.T) {
	s := []int{1, 2}
	m := map[string]int{"a": 1}
	type pt struct{ x, y int }
	type bag struct{ items []int }
	cases := []struct {
		a, b  any
		equal bool
	}{
		{nil, nil, true},
		{1, nil, false},
		{nil, 1, false},
		{1, 1, true},
		{1, 2, false},
		{1, int64(1), false},
		{"a", "a", true},
		{pt{1, 2}, pt{1, 2}, true},
		{s, s, true},
		{s, []int{1, 2}, false},
		{s, s[:1], false},
		{m, m, true},
		{m, map[string]int{"a": 1}, false},
		{bag{s}, bag{s}, true},
		{bag{s}, bag{[]int{1, 2}}, false},
		{[1]bag{{s}}, [1]bag{{s}}, true},
		{[]any{s}, []any{s}, false},
		{pt{1, 2}, pt{1, 3}, false},
	}
	for i, c := range cases {
		if Equal(c.a, c.b) != c.equal {
			t.Errorf("case %d: expected Equal(%v, %v) to be %v", i, c.a, c.b, c.equal)
		}
	}
}

func TestAssertFunction(t *testing.T) {
	defer func() {
		r := recover()
		te, ok := r.(*TypeError)
		if !ok {
			t.Fatalf("expected a *TypeError, got %#v", r)
		}
		if te.Error() != "X#map expects a function, but was given 42." {
			t.Errorf("unexpected message %q", te.Error())
		}
	}()
	AssertFunction("X#map", func(int) int { return 0 })
	AssertFunction("X#map", 42)
}

func TestAssertNilFunction(t *testing.T) {
	var f func(int) int
	defer func() {
		if _, ok := recover().(*TypeError); !ok {
			t.Error("expected nil function to raise a *TypeError")
		}
	}()
	AssertFunction("X#chain", f)
}

func TestInstanceEqualsIsReflexive(t *testing.T) {
	box := MustData("test", "Box", V("Box", "value"))
	type bag struct{ items []int }
	x := box.Constructors()[0].MustNew(bag{[]int{1}})
	if !x.Equals(x) {
		t.Error("expected instance holding a struct with a slice to equal itself")
	}
	y := box.Constructors()[0].MustNew(bag{[]int{1}})
	if x.Equals(y) {
		t.Error("expected instances holding different slices to differ")
	}
}
