package mrtmem

import "iter"

const (
	// NilTag is the tag of the empty list.
	NilTag = 0
	// ConsTag is the tag of a non-empty list cell.
	ConsTag = 1
)

// Nil returns the empty list.
func Nil() *Word {
	return MakeEnum(NilTag)
}

// Cons returns a new list cell.
func Cons(head Slot, tail *Word) *Word {
	return NewWord(ConsTag, head, tail)
}

// NewList builds a list holding xs in order.
func NewList(xs ...Slot) *Word {
	ret := Nil()
	for i := len(xs) - 1; i >= 0; i-- {
		ret = Cons(xs[i], ret)
	}
	return ret
}

// IsCons returns true iff w is a list cell rather than the empty list.
func IsCons(w *Word) bool {
	return w.Tag() != NilTag
}

// Head returns the first element of a non-empty list.
func Head(w *Word) Slot {
	if !IsCons(w) {
		panic(ErrNotCons{Op: "Head"})
	}
	return w.GetField(1)
}

// Tail returns the rest of a non-empty list.
func Tail(w *Word) *Word {
	if !IsCons(w) {
		panic(ErrNotCons{Op: "Tail"})
	}
	return w.Field(2)
}

// ListAll yields the elements of the list starting at w.
// The list must be acyclic; ListAll does not detect cycles.
func ListAll(w *Word) iter.Seq[Slot] {
	return func(yield func(Slot) bool) {
		for ; IsCons(w); w = Tail(w) {
			if !yield(Head(w)) {
				return
			}
		}
	}
}

// ListLen returns the number of cells before the empty list.
func ListLen(w *Word) (n int) {
	for ; IsCons(w); w = Tail(w) {
		n++
	}
	return n
}

// ListToSlice returns the elements of a list in order.
func ListToSlice(w *Word) []Slot {
	ret := make([]Slot, 0, ListLen(w))
	for x := range ListAll(w) {
		ret = append(ret, x)
	}
	return ret
}
