package adt

// Member is implemented by values taking part in an ADT. The signature
// identifies the declaration a value originates from.
type Member interface {
	Tag() string
	ADTSignature() string
}

// Instancer is implemented by members which are able to present themselves
// as a generic *Instance. Statically typed unions built on top of this
// package (e.g., Either) implement it.
type Instancer interface {
	Instance() *Instance
}

// HasInstance reports whether v behaves as a member of t. The test is
// structural: v has to implement Member and report t's signature, but need
// not originate from the very same *Type. Values from separately declared
// copies of an identical declaration are therefore accepted.
func (t *Type) HasInstance(v any) bool {
	m, ok := v.(Member)
	if !ok || m == nil {
		return false
	}
	return m.ADTSignature() == t.signature
}

// Check tests v for membership in t on behalf of method. In development mode
// a failed test is reported through the tracer and Check returns false. The
// caller is expected to continue anyway. In production mode the test is
// skipped and Check returns true.
func (t *Type) Check(method string, v any) bool {
	if isProduction() {
		return true
	}
	if t.HasInstance(v) {
		return true
	}
	tracer().Errorf(mismatchDiagnostic, method, v, t.name, t.name, t.name)
	return false
}

func asInstance(v any) *Instance {
	if i, ok := v.(Instancer); ok {
		return i.Instance()
	}
	return nil
}

const mismatchDiagnostic = `
%s expects a value of the same type, but was given %v.

This could mean that you've provided the wrong value to the method, in
which case this is a bug in your program, and you should try to track
down why the wrong value is getting here.

But this could also mean that the %s type has been declared more than
once in your program. This is not necessarily a bug; it may happen if

 1) a package declaring the type has been vendored or replaced, and
    more than one copy of it is linked into the binary;

 2) the type has been re-declared, e.g. by parsing a declaration at
    runtime, and values from both declarations are interacting;

 3) different versions of a module declaring %s are interacting.

Membership is tested structurally, not by identity, so cases (1) and (2)
are fine as long as the declarations are identical. In case (3) the
behaviour of your program using %s is undefined, and you should try
looking into why the version conflict is happening.
`
