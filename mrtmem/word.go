package mrtmem

import (
	"iter"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Word is a tagged value: a tag and a fixed number of field slots.
type Word struct {
	tag    int
	fields []Slot
}

// enums interns zero-arity words. They have no fields, so sharing them
// cannot be observed through SetField.
var enums = func() *lru.Cache[int, *Word] {
	c, err := lru.New[int, *Word](enumCacheSize)
	if err != nil {
		panic(err)
	}
	return c
}()

const enumCacheSize = 1 << 10

// MakeEnum returns the zero-arity word for an enumeration constant.
// Equal ordinals always produce words with equal tags.
//
// Results are interned in a process-wide LRU cache, the only mutable
// package state in mrtmem. Callers may see the same *Word for repeated
// calls, or a fresh one after eviction; neither has fields to mutate.
func MakeEnum(ordinal int) *Word {
	if ordinal < 0 {
		panic(ErrPrecondition{Op: "MakeEnum", Msg: "ordinal must be >= 0", Arg: ordinal})
	}
	if w, ok := enums.Get(ordinal); ok {
		return w
	}
	w := &Word{tag: ordinal}
	enums.Add(ordinal, w)
	return w
}

// MakeWord returns a word with the given tag and arity.
// All of its fields are absent until they are set.
func MakeWord(tag, arity int) *Word {
	if arity < 0 {
		panic(ErrPrecondition{Op: "MakeWord", Msg: "arity must be >= 0", Arg: arity})
	}
	return &Word{tag: tag, fields: make([]Slot, arity)}
}

// NewWord returns a word whose arity is len(fields), holding fields in order.
func NewWord(tag int, fields ...Slot) *Word {
	w := MakeWord(tag, len(fields))
	copy(w.fields, fields)
	return w
}

func (w *Word) Tag() int {
	return w.tag
}

func (w *Word) Arity() int {
	return len(w.fields)
}

// SetField overwrites field i, 1 <= i <= Arity().
// Any other index is a fault.
func (w *Word) SetField(i int, x Slot) {
	w.checkIndex("SetField", i)
	w.fields[i-1] = x
}

// GetField returns field i, 1 <= i <= Arity().
// Any other index is a fault.
func (w *Word) GetField(i int) Slot {
	w.checkIndex("GetField", i)
	return w.fields[i-1]
}

// Field returns field i as a word.
// It faults if the field holds anything other than a word.
func (w *Word) Field(i int) *Word {
	x := w.GetField(i)
	sub, ok := x.(*Word)
	if !ok || sub == nil {
		panic(ErrNotWord{Index: i, Have: SlotKindOf(x)})
	}
	return sub
}

func (w *Word) checkIndex(op string, i int) {
	if i < 1 || i > len(w.fields) {
		panic(ErrFieldIndex{Op: op, Index: i, Arity: len(w.fields)})
	}
}

// Components yields the fields in order, starting with field 1.
func (w *Word) Components() iter.Seq[Slot] {
	return func(yield func(Slot) bool) {
		for _, x := range w.fields {
			if !yield(x) {
				return
			}
		}
	}
}

func (w *Word) String() string {
	return Pretty(w)
}
