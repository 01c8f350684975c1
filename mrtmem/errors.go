package mrtmem

import (
	"fmt"

	"mercurylang.org/mrt/spec"
)

// The errors in this file are raised with panic.
// They mark a contract violation by the caller and are never returned.

// ErrFieldIndex is raised when a field index is outside 1..arity.
type ErrFieldIndex struct {
	Op    string
	Index int
	Arity int
}

func (e ErrFieldIndex) Error() string {
	return fmt.Sprintf("%s: field index %d out of range for word of arity %d", e.Op, e.Index, e.Arity)
}

func (ErrFieldIndex) IsFault() {}

// ErrPrecondition is raised when a constructor argument is out of range.
type ErrPrecondition struct {
	Op  string
	Msg string
	Arg any
}

func (e ErrPrecondition) Error() string {
	return fmt.Sprintf("%s: %s, have %v", e.Op, e.Msg, e.Arg)
}

func (ErrPrecondition) IsFault() {}

// ErrNotCons is raised when Head or Tail is called on the empty list.
type ErrNotCons struct {
	Op string
}

func (e ErrNotCons) Error() string {
	return fmt.Sprintf("%s: called on the empty list", e.Op)
}

func (ErrNotCons) IsFault() {}

// ErrNotWord is raised when a field that must hold a word holds something else.
type ErrNotWord struct {
	Index int
	Have  spec.SlotKind
}

func (e ErrNotWord) Error() string {
	return fmt.Sprintf("field %d holds %v, not a word", e.Index, e.Have)
}

func (ErrNotWord) IsFault() {}

// ErrNotComparable is raised when generic ordering meets a foreign payload.
type ErrNotComparable struct {
	Left, Right Slot
}

func (e ErrNotComparable) Error() string {
	return fmt.Sprintf("cannot compare %v with %v", Pretty(e.Left), Pretty(e.Right))
}

func (ErrNotComparable) IsFault() {}

// ErrNotEncodable is returned when a word holds a payload with no encoding.
type ErrNotEncodable struct {
	Kind spec.SlotKind
}

func (e ErrNotEncodable) Error() string {
	return fmt.Sprintf("cannot encode slot of kind %v", e.Kind)
}
