// Package valueorder defines a total order over reflect values.
//
// Map keys and set members have no iteration order in Go, so anything that
// prints them deterministically has to sort them first. Compare follows the
// same rules fmt uses when printing maps: numbers by value, strings
// lexically, false before true, pointers and channels by address, structs
// and arrays field by field, interfaces by dynamic type then value.
package valueorder

import (
	"cmp"
	"reflect"
	"sort"
)

// Compare returns -1, 0 or +1 ordering a before, equal to, or after b.
// Values of different types are ordered by type name.
func Compare(a, b reflect.Value) int {
	if !a.IsValid() || !b.IsValid() {
		return cmp.Compare(validity(a), validity(b))
	}
	if a.Type() != b.Type() {
		return cmp.Compare(a.Type().String(), b.Type().String())
	}

	switch a.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(a.Int(), b.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(a.Uint(), b.Uint())
	case reflect.String:
		return cmp.Compare(a.String(), b.String())
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(a.Float(), b.Float())
	case reflect.Complex64, reflect.Complex128:
		ac, bc := a.Complex(), b.Complex()
		if c := cmp.Compare(real(ac), real(bc)); c != 0 {
			return c
		}
		return cmp.Compare(imag(ac), imag(bc))
	case reflect.Bool:
		switch {
		case a.Bool() == b.Bool():
			return 0
		case a.Bool():
			return 1
		default:
			return -1
		}
	case reflect.Pointer, reflect.UnsafePointer, reflect.Chan, reflect.Func, reflect.Map, reflect.Slice:
		return cmp.Compare(a.Pointer(), b.Pointer())
	case reflect.Struct:
		for i := 0; i < a.NumField(); i++ {
			if c := Compare(a.Field(i), b.Field(i)); c != 0 {
				return c
			}
		}
		return 0
	case reflect.Array:
		for i := 0; i < a.Len(); i++ {
			if c := Compare(a.Index(i), b.Index(i)); c != 0 {
				return c
			}
		}
		return 0
	case reflect.Interface:
		if c := nilFirst(a, b); c != 0 || a.IsNil() {
			return c
		}
		return Compare(a.Elem(), b.Elem())
	default:
		return 0
	}
}

// Sort orders values in place by Compare. The sort is stable.
func Sort(values []reflect.Value) {
	sort.SliceStable(values, func(i, j int) bool {
		return Compare(values[i], values[j]) < 0
	})
}

// Less reports whether a sorts before b. It accepts arbitrary values and is
// meant for callers that hold interfaces rather than reflect values.
func Less(a, b any) bool {
	return Compare(reflect.ValueOf(a), reflect.ValueOf(b)) < 0
}

func validity(v reflect.Value) int {
	if v.IsValid() {
		return 1
	}
	return 0
}

func nilFirst(a, b reflect.Value) int {
	switch {
	case a.IsNil() && b.IsNil():
		return 0
	case a.IsNil():
		return -1
	case b.IsNil():
		return 1
	}
	return 0
}
