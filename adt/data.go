package adt

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/npillmayer/algebra"
)

// Variant describes one alternative of an ADT: a name and an ordered list
// of field names.
type Variant struct {
	Name   string
	Fields []string
}

// V is a shortcut to create a variant descriptor.
func V(name string, fields ...string) Variant {
	return Variant{Name: name, Fields: fields}
}

func (v Variant) String() string {
	return v.Name + "(" + strings.Join(v.Fields, ",") + ")"
}

// Type is the union of all variants declared together. A type is immutable
// after construction.
type Type struct {
	namespace string
	name      string
	variants  []Variant
	index     map[string]int
	signature string
}

// Data declares a new ADT. namespace qualifies the type name in representations,
// e.g. "algebra" for "algebra:Either.Left". At least one variant has to be given;
// variant names must be unique within the type, field names must be unique
// within a variant. A variant may have no fields.
func Data(namespace, name string, variants ...Variant) (*Type, error) {
	if !isIdentifier(name) {
		return nil, fmt.Errorf("%w: type name %q is not an identifier", ErrDeclaration, name)
	}
	if len(variants) == 0 {
		return nil, fmt.Errorf("%w: type %s has no variants", ErrDeclaration, name)
	}
	t := &Type{
		namespace: namespace,
		name:      name,
		variants:  make([]Variant, len(variants)),
		index:     make(map[string]int, len(variants)),
	}
	for i, v := range variants {
		if !isIdentifier(v.Name) {
			return nil, fmt.Errorf("%w: variant name %q of %s is not an identifier",
				ErrDeclaration, v.Name, name)
		}
		if _, dup := t.index[v.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate variant %s.%s", ErrDeclaration, name, v.Name)
		}
		seen := make(map[string]bool, len(v.Fields))
		for _, f := range v.Fields {
			if !isIdentifier(f) {
				return nil, fmt.Errorf("%w: field name %q of %s.%s is not an identifier",
					ErrDeclaration, f, name, v.Name)
			}
			if seen[f] {
				return nil, fmt.Errorf("%w: duplicate field %s.%s.%s", ErrDeclaration, name, v.Name, f)
			}
			seen[f] = true
		}
		t.variants[i] = Variant{Name: v.Name, Fields: append([]string(nil), v.Fields...)}
		t.index[v.Name] = i
	}
	t.signature = signature(t)
	tracer().Debugf("declared ADT %s", t.signature)
	return t, nil
}

// MustData is like Data, but panics on an invalid declaration. It is intended
// for package level declarations.
func MustData(namespace, name string, variants ...Variant) *Type {
	t, err := Data(namespace, name, variants...)
	if err != nil {
		panic(err)
	}
	return t
}

// Declare declares an ADT from a mapping of variant names to field names.
// As maps are unordered, variants are ordered by name.
func Declare(namespace, name string, descriptors map[string][]string) (*Type, error) {
	pairs := algebra.SortedPairs(descriptors, func(a, b string) bool { return a < b })
	variants := make([]Variant, len(pairs))
	for i, p := range pairs {
		vname, fields := p.Decompose()
		variants[i] = V(vname, fields...)
	}
	return Data(namespace, name, variants...)
}

func signature(t *Type) string {
	var b strings.Builder
	b.WriteString(t.namespace)
	b.WriteByte(':')
	b.WriteString(t.name)
	b.WriteByte('{')
	for i, v := range t.variants {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(v.String())
	}
	b.WriteByte('}')
	return b.String()
}

// --- Accessors -------------------------------------------------------------

// Name returns the display name of the type.
func (t *Type) Name() string {
	return t.name
}

// Namespace returns the namespace the type has been declared in.
func (t *Type) Namespace() string {
	return t.namespace
}

// Signature is the structural identity of the type. Identical declarations
// yield identical signatures.
func (t *Type) Signature() string {
	return t.signature
}

// Variants returns copies of the variant descriptors, in declaration order.
func (t *Type) Variants() []Variant {
	vs := make([]Variant, len(t.variants))
	for i, v := range t.variants {
		vs[i] = Variant{Name: v.Name, Fields: append([]string(nil), v.Fields...)}
	}
	return vs
}

// Variant returns the descriptor of variant name.
func (t *Type) Variant(name string) (Variant, bool) {
	i, ok := t.index[name]
	if !ok {
		return Variant{}, false
	}
	v := t.variants[i]
	return Variant{Name: v.Name, Fields: append([]string(nil), v.Fields...)}, true
}

// String returns "(namespace) Name".
func (t *Type) String() string {
	return fmt.Sprintf("(%s) %s", t.namespace, t.name)
}

// Declaration renders the type in the syntax accepted by Parse.
func (t *Type) Declaration() string {
	alts := make([]string, len(t.variants))
	for i, v := range t.variants {
		alts[i] = strings.Join(append([]string{v.Name}, v.Fields...), " ")
	}
	return t.name + " = " + strings.Join(alts, " | ")
}

// --- Constructors ----------------------------------------------------------

// Constructor returns the constructor for variant name.
func (t *Type) Constructor(name string) (Constructor, error) {
	i, ok := t.index[name]
	if !ok {
		return Constructor{}, fmt.Errorf("%w: %s has no variant %q", ErrVariant, t.name, name)
	}
	return Constructor{typ: t, tag: i}, nil
}

// Constructors returns a constructor for every variant, in declaration order.
func (t *Type) Constructors() []Constructor {
	cs := make([]Constructor, len(t.variants))
	for i := range t.variants {
		cs[i] = Constructor{typ: t, tag: i}
	}
	return cs
}

// New constructs an instance of variant name from positional field values.
func (t *Type) New(name string, values ...any) (*Instance, error) {
	c, err := t.Constructor(name)
	if err != nil {
		return nil, err
	}
	return c.New(values...)
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return false
	}
	return true
}
