package adt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Constructor allocates instances of a single variant.
type Constructor struct {
	typ *Type
	tag int
}

// Type returns the ADT type c belongs to.
func (c Constructor) Type() *Type {
	return c.typ
}

// Name returns the name of the variant c constructs.
func (c Constructor) Name() string {
	if c.typ == nil {
		return ""
	}
	return c.typ.variants[c.tag].Name
}

// Fields returns the field names of the variant, in order.
func (c Constructor) Fields() []string {
	if c.typ == nil {
		return nil
	}
	return append([]string(nil), c.typ.variants[c.tag].Fields...)
}

// New creates an instance from positional field values. The number of values
// has to match the number of fields. Values are stored as given, without
// coercion or validation of their types.
func (c Constructor) New(values ...any) (*Instance, error) {
	if c.typ == nil {
		return nil, fmt.Errorf("%w: uninitialized constructor", ErrVariant)
	}
	fields := c.typ.variants[c.tag].Fields
	if len(values) != len(fields) {
		return nil, fmt.Errorf("%w: %s.%s expects %d, was given %d", ErrArity,
			c.typ.name, c.Name(), len(fields), len(values))
	}
	return &Instance{typ: c.typ, tag: c.tag, values: append([]any(nil), values...)}, nil
}

// MustNew is like New, but panics on an arity mismatch.
func (c Constructor) MustNew(values ...any) *Instance {
	inst, err := c.New(values...)
	if err != nil {
		panic(err)
	}
	return inst
}

// FromMap creates an instance from named field values. Every field has to be
// present, and no other keys are allowed.
func (c Constructor) FromMap(fields map[string]any) (*Instance, error) {
	if c.typ == nil {
		return nil, fmt.Errorf("%w: uninitialized constructor", ErrVariant)
	}
	v := c.typ.variants[c.tag]
	values := make([]any, len(v.Fields))
	for i, f := range v.Fields {
		x, ok := fields[f]
		if !ok {
			return nil, fmt.Errorf("%w: %s.%s is missing field %q", ErrField, c.typ.name, v.Name, f)
		}
		values[i] = x
	}
	if len(fields) != len(v.Fields) {
		for k := range fields {
			if indexOf(v.Fields, k) < 0 {
				return nil, fmt.Errorf("%w: %s.%s has no field %q", ErrField, c.typ.name, v.Name, k)
			}
		}
	}
	return &Instance{typ: c.typ, tag: c.tag, values: values}, nil
}

// --- Instances -------------------------------------------------------------

// Instance is a value of exactly one variant of an ADT type. Instances are
// immutable: neither the tag nor the field values change after construction.
type Instance struct {
	typ    *Type
	tag    int
	values []any
}

var _ Member = &Instance{}

// Type returns the ADT type of the instance.
func (inst *Instance) Type() *Type {
	return inst.typ
}

// Tag returns the name of the variant which produced the instance.
// It is empty for a nil instance.
func (inst *Instance) Tag() string {
	if inst == nil || inst.typ == nil {
		return ""
	}
	return inst.typ.variants[inst.tag].Name
}

// ADTSignature is part of interface Member. It is empty for a nil instance,
// which therefore is a member of no type.
func (inst *Instance) ADTSignature() string {
	if inst == nil || inst.typ == nil {
		return ""
	}
	return inst.typ.signature
}

// Instance is part of interface Instancer and returns the receiver.
func (inst *Instance) Instance() *Instance {
	return inst
}

// Is reports whether the instance has been produced by variant name.
// It is false for names not declared by the instance's type.
func (inst *Instance) Is(variant string) bool {
	return inst.Tag() == variant
}

// Get returns the value of field name.
func (inst *Instance) Get(field string) (any, bool) {
	i := indexOf(inst.typ.variants[inst.tag].Fields, field)
	if i < 0 {
		return nil, false
	}
	return inst.values[i], true
}

// Values returns a copy of the field values, in field order.
func (inst *Instance) Values() []any {
	return append([]any(nil), inst.values...)
}

// Field is a (name, value) pair of an instance.
type Field struct {
	Name  string
	Value any
}

// Fields returns the named field values, in field order.
func (inst *Instance) Fields() []Field {
	names := inst.typ.variants[inst.tag].Fields
	fs := make([]Field, len(names))
	for i, n := range names {
		fs[i] = Field{Name: n, Value: inst.values[i]}
	}
	return fs
}

// Method returns a qualified method name for diagnostics, e.g. "Either.Left#equals".
func (inst *Instance) Method(op string) string {
	return inst.typ.name + "." + inst.Tag() + "#" + op
}

// Equals reports whether other is an instance of the same variant with equal
// field values. Field values are compared with Equal, i.e. one level deep:
// slices, maps and functions, also inside structs and arrays, are equal only
// if they share the same underlying reference.
// If other is not a member of the receiver's type, a diagnostic is emitted
// (development mode only) and the comparison proceeds with whatever shape
// other has.
func (inst *Instance) Equals(other any) bool {
	inst.typ.Check(inst.Method("equals"), other)
	m, ok := other.(Member)
	if !ok || m.Tag() != inst.Tag() {
		return false
	}
	o := asInstance(other)
	if o == nil || o.typ == nil || len(o.values) != len(inst.values) {
		return false
	}
	for i, v := range inst.values {
		if !Equal(v, o.values[i]) {
			return false
		}
	}
	return true
}

// TypeTag returns the "#type" tag of the JSON representation, e.g. "algebra:Either.Left".
func (inst *Instance) TypeTag() string {
	return inst.typ.namespace + ":" + inst.typ.name + "." + inst.Tag()
}

// String returns a representation like "(algebra) Either.Left(5)".
func (inst *Instance) String() string {
	if inst == nil || inst.typ == nil {
		return "<nil>"
	}
	vals := make([]string, len(inst.values))
	for i, v := range inst.values {
		vals[i] = fmt.Sprintf("%v", v)
	}
	return fmt.Sprintf("(%s) %s.%s(%s)", inst.typ.namespace, inst.typ.name, inst.Tag(),
		strings.Join(vals, ", "))
}

// MarshalJSON renders the instance as a record
//
//     { "#type": "<namespace>:<Type>.<Variant>", "<field>": <value>, … }
//
// with fields in declaration order. Field values are serialized with
// encoding/json, recursively.
func (inst *Instance) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"#type":`)
	tag, _ := json.Marshal(inst.TypeTag())
	buf.Write(tag)
	for _, f := range inst.Fields() {
		key, _ := json.Marshal(f.Name)
		val, err := json.Marshal(f.Value)
		if err != nil {
			return nil, fmt.Errorf("cannot serialize field %s of %s: %w", f.Name, inst.TypeTag(), err)
		}
		buf.WriteByte(',')
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}
