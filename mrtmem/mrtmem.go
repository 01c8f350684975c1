// package mrtmem implements tagged words: the uniform heap encoding of
// enumerations, discriminated union terms and cons-lists.
//
// A Word carries an integer tag and a fixed number of field slots.
// Field indices are 1-based; index 0 is the tag and is never reachable
// through GetField or SetField. A Word does not know its own type; the
// spec.TypeCtorRep of the owning type decides how tag and fields are read.
//
// Words are not synchronized. Generated code fills in the fields of a word
// before sharing it and never writes to it afterwards.
package mrtmem

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"mercurylang.org/mrt/spec"
)

// Slot is the contents of a field.
// It is one of *Word, Int, Char, Float, String, or *Foreign.
// The nil Slot is the absent marker.
type Slot interface {
	isSlot()
}

// Int is a host integer payload.
type Int int64

// IntOf converts any Go integer to an Int slot.
func IntOf[T constraints.Integer](x T) Int {
	return Int(x)
}

// Char is a Unicode code point payload.
type Char rune

// Float is a host floating point payload.
type Float float64

// String is a host string payload.
type String string

// Foreign is an opaque host value.
// Foreign values can be stored in words but cannot be encoded.
type Foreign struct {
	X any
}

func NewForeign(x any) *Foreign {
	return &Foreign{X: x}
}

func (*Word) isSlot()    {}
func (Int) isSlot()      {}
func (Char) isSlot()     {}
func (Float) isSlot()    {}
func (String) isSlot()   {}
func (*Foreign) isSlot() {}

// IsAbsent returns true if s is the absent marker.
func IsAbsent(s Slot) bool {
	if s == nil {
		return true
	}
	if w, ok := s.(*Word); ok && w == nil {
		return true
	}
	return false
}

// SlotKindOf classifies s.
func SlotKindOf(s Slot) spec.SlotKind {
	if IsAbsent(s) {
		return spec.SK_Absent
	}
	switch s.(type) {
	case *Word:
		return spec.SK_Word
	case Int:
		return spec.SK_Int
	case Char:
		return spec.SK_Char
	case Float:
		return spec.SK_Float
	case String:
		return spec.SK_String
	case *Foreign:
		return spec.SK_Foreign
	default:
		panic(fmt.Sprintf("mrtmem: unknown slot type %T", s))
	}
}
