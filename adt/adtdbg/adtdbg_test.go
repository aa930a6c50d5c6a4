package adtdbg

import (
	"strings"
	"testing"

	"github.com/npillmayer/algebra/adt"
)

func TestDeclarationTree(t *testing.T) {
	shape := adt.MustData("geo", "Shape", adt.V("Circle", "radius"), adt.V("Empty"))
	out := Declaration(shape)
	t.Logf("\n%s", out)
	for _, s := range []string{"(geo) Shape", "Circle", "radius", "Empty"} {
		if !strings.Contains(out, s) {
			t.Errorf("expected tree to contain %q, doesn't", s)
		}
	}
}

func TestInstanceTree(t *testing.T) {
	list := adt.MustData("test", "List", adt.V("Nil"), adt.V("Cons", "head", "tail"))
	empty := list.Constructors()[0].MustNew()
	l := list.Constructors()[1].MustNew("a", empty)
	out := Instance(l)
	t.Logf("\n%s", out)
	for _, s := range []string{"test:List.Cons", "[head]", `"a"`, "test:List.Nil"} {
		if !strings.Contains(out, s) {
			t.Errorf("expected tree to contain %q, doesn't", s)
		}
	}
	if Instance(7) != "7\n" {
		t.Errorf("expected non-instance to print as plain value, is %q", Instance(7))
	}
}
