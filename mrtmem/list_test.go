package mrtmem

import (
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestIsCons(t *testing.T) {
	t.Parallel()
	require.False(t, IsCons(Nil()))
	require.False(t, IsCons(MakeEnum(0)))
	require.True(t, IsCons(Cons(Int(1), Nil())))
	// any tag other than the empty list's is a cell
	require.True(t, IsCons(MakeWord(5, 2)))
}

func TestHeadTail(t *testing.T) {
	t.Parallel()
	x, y := Int(1), String("y")
	l := Cons(x, Cons(y, Nil()))
	require.Equal(t, x, Head(l))
	require.Equal(t, y, Head(Tail(l)))
	require.False(t, IsCons(Tail(Tail(l))))

	require.PanicsWithValue(t, ErrNotCons{Op: "Head"}, func() { Head(Nil()) })
	require.PanicsWithValue(t, ErrNotCons{Op: "Tail"}, func() { Tail(Nil()) })
}

func TestHeadAbsent(t *testing.T) {
	t.Parallel()
	l := MakeWord(ConsTag, 2)
	l.SetField(2, Nil())
	require.True(t, IsAbsent(Head(l)))
	require.Equal(t, 0, ListLen(Tail(l)))
}

func TestListHelpers(t *testing.T) {
	t.Parallel()
	l := NewList(Int(1), Int(2), Int(3))
	require.Equal(t, 3, ListLen(l))
	require.Equal(t, []Slot{Int(1), Int(2), Int(3)}, ListToSlice(l))
	var got []Slot
	for x := range ListAll(l) {
		got = append(got, x)
		if len(got) == 2 {
			break
		}
	}
	require.Equal(t, []Slot{Int(1), Int(2)}, got)
	require.Equal(t, 0, ListLen(NewList()))
	require.Empty(t, ListToSlice(Nil()))
	require.Equal(t, "[1, 2, 3]", PrettyList(l))
	require.Equal(t, "[]", PrettyList(Nil()))
}

func TestListProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)
	properties.Property("a list of n cells ends after n tails", prop.ForAll(
		func(xs []int64) bool {
			l := NewList(toSlots(xs)...)
			for range xs {
				if !IsCons(l) {
					return false
				}
				l = Tail(l)
			}
			return !IsCons(l)
		},
		gen.SliceOf(gen.Int64()),
	))
	properties.Property("heads come back in order", prop.ForAll(
		func(xs []int64) bool {
			return slices.Equal(toSlots(xs), ListToSlice(NewList(toSlots(xs)...)))
		},
		gen.SliceOf(gen.Int64()),
	))
	properties.TestingRun(t)
}

func toSlots(xs []int64) []Slot {
	ret := make([]Slot, len(xs))
	for i := range xs {
		ret[i] = Int(xs[i])
	}
	return ret
}
