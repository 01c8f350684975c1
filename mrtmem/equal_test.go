package mrtmem

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"mercurylang.org/mrt/spec"
)

func TestEqual(t *testing.T) {
	t.Parallel()
	type testCase struct {
		A, B  Slot
		Equal bool
	}
	var nilWord *Word
	tcs := []testCase{
		{nil, nil, true},
		{nil, nilWord, true},
		{Int(1), Int(1), true},
		{Int(1), Int(2), false},
		{Int(1), Char(1), false},
		{String("a"), String("a"), true},
		{MakeEnum(2), MakeEnum(2), true},
		{MakeEnum(2), MakeWord(2, 1), false},
		{NewList(Int(1), Int(2)), NewList(Int(1), Int(2)), true},
		{NewList(Int(1), Int(2)), NewList(Int(1)), false},
		{NewWord(1, nil), NewWord(1, Int(0)), false},
		{NewForeign([]int{1}), NewForeign([]int{1}), true},
		{NewForeign(1), NewForeign(2), false},
		{Float(math.NaN()), Float(math.NaN()), true},
		{NewWord(0, Float(math.NaN())), NewWord(0, Float(math.NaN())), true},
		{Float(math.NaN()), Float(0), false},
	}
	for i, tc := range tcs {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			require.Equal(t, tc.Equal, Equal(tc.A, tc.B))
			require.Equal(t, tc.Equal, Equal(tc.B, tc.A))
			if SlotKindOf(tc.A) != spec.SK_Foreign {
				require.Equal(t, tc.Equal, Compare(tc.A, tc.B) == 0)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	t.Parallel()
	// each slot is strictly less than the next
	ordered := []Slot{
		nil,
		MakeEnum(0),
		MakeEnum(1),
		NewWord(1, Int(1)),
		NewWord(1, Int(2)),
		NewWord(1, Int(2), nil),
		NewWord(2),
		Int(-5),
		Int(3),
		Char('a'),
		Float(math.NaN()),
		Float(-1.5),
		String("a"),
		String("b"),
	}
	for i := range ordered {
		require.Equal(t, 0, Compare(ordered[i], ordered[i]))
		for j := i + 1; j < len(ordered); j++ {
			require.Equal(t, -1, Compare(ordered[i], ordered[j]), "%d vs %d", i, j)
			require.Equal(t, 1, Compare(ordered[j], ordered[i]), "%d vs %d", j, i)
		}
	}
}

func TestCompareForeign(t *testing.T) {
	t.Parallel()
	a, b := NewForeign("x"), NewForeign("y")
	require.Equal(t, 0, Compare(a, NewForeign("x")))
	require.PanicsWithValue(t, ErrNotComparable{Left: a, Right: b}, func() {
		Compare(a, b)
	})
}

func TestPretty(t *testing.T) {
	t.Parallel()
	tcs := []struct {
		S Slot
		P string
	}{
		{nil, "_"},
		{MakeEnum(3), "3"},
		{NewWord(2, Int(1), nil, String("a"), Char('c'), Float(1.5)), `2(1, _, "a", 'c', 1.5)`},
		{NewList(Int(1)), "1(1, 0)"},
		{NewForeign("f"), "foreign(f)"},
	}
	for i, tc := range tcs {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			require.Equal(t, tc.P, Pretty(tc.S))
		})
	}
	require.Equal(t, "1(2, 0)", NewList(Int(2)).String())
}
