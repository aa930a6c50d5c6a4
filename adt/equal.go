package adt

import "reflect"

// Equal is the shallow equality used for field values. Comparable values are
// compared with ==. Slices, maps and functions are equal only if they share
// the same underlying reference; structs and arrays containing them are
// compared element-wise by the same rule, so Equal is reflexive. Values of
// different dynamic types are never equal. Nested instances are compared by
// reference as well; clients wanting deep comparison should call Equals on
// the field values themselves.
func Equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return equalValues(reflect.ValueOf(a), reflect.ValueOf(b))
}

func equalValues(va, vb reflect.Value) bool {
	if va.Type() != vb.Type() {
		return false
	}
	if va.Comparable() && vb.Comparable() {
		return va.Equal(vb)
	}
	switch va.Kind() {
	case reflect.Slice:
		return va.Len() == vb.Len() && va.Pointer() == vb.Pointer()
	case reflect.Map, reflect.Func:
		return va.Pointer() == vb.Pointer()
	case reflect.Interface:
		if va.IsNil() || vb.IsNil() {
			return va.IsNil() && vb.IsNil()
		}
		return equalValues(va.Elem(), vb.Elem())
	case reflect.Struct:
		for i := 0; i < va.NumField(); i++ {
			if !equalValues(va.Field(i), vb.Field(i)) {
				return false
			}
		}
		return true
	case reflect.Array:
		for i := 0; i < va.Len(); i++ {
			if !equalValues(va.Index(i), vb.Index(i)) {
				return false
			}
		}
		return true
	}
	return false
}
