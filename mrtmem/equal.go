package mrtmem

import (
	"cmp"
	"reflect"
	"strings"

	"mercurylang.org/mrt/spec"
)

// Equal returns true if a and b hold the same payload.
// Words are equal when their tags, arities and fields are equal.
// Floats are equal when Compare says so, so NaN equals NaN.
// Foreign payloads are compared with reflect.DeepEqual.
func Equal(a, b Slot) bool {
	ka, kb := SlotKindOf(a), SlotKindOf(b)
	if ka != kb {
		return false
	}
	if ka == spec.SK_Absent {
		return true
	}
	switch a := a.(type) {
	case *Word:
		b := b.(*Word)
		if a == b {
			return true
		}
		if a.tag != b.tag || len(a.fields) != len(b.fields) {
			return false
		}
		for i := range a.fields {
			if !Equal(a.fields[i], b.fields[i]) {
				return false
			}
		}
		return true
	case Float:
		// NaN equals NaN, agreeing with Compare
		return cmp.Compare(a, b.(Float)) == 0
	case *Foreign:
		return reflect.DeepEqual(a.X, b.(*Foreign).X)
	default:
		return a == b
	}
}

// Compare orders slots: first by kind, then words by tag, arity and fields
// left to right, scalars by value.
// Comparing two unequal foreign payloads is a fault.
func Compare(a, b Slot) int {
	ka, kb := SlotKindOf(a), SlotKindOf(b)
	if c := cmp.Compare(ka, kb); c != 0 {
		return c
	}
	if ka == spec.SK_Absent {
		return 0
	}
	switch a := a.(type) {
	case *Word:
		b := b.(*Word)
		if a == b {
			return 0
		}
		if c := cmp.Compare(a.tag, b.tag); c != 0 {
			return c
		}
		if c := cmp.Compare(len(a.fields), len(b.fields)); c != 0 {
			return c
		}
		for i := range a.fields {
			if c := Compare(a.fields[i], b.fields[i]); c != 0 {
				return c
			}
		}
		return 0
	case Int:
		return cmp.Compare(a, b.(Int))
	case Char:
		return cmp.Compare(a, b.(Char))
	case Float:
		return cmp.Compare(a, b.(Float))
	case String:
		return strings.Compare(string(a), string(b.(String)))
	case *Foreign:
		if Equal(a, b) {
			return 0
		}
		panic(ErrNotComparable{Left: a, Right: b})
	default:
		panic(a)
	}
}
