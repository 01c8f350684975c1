package mrtmem

import (
	"fmt"
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"mercurylang.org/mrt/internal/cadata"
	"mercurylang.org/mrt/spec"
)

func TestMarshalGolden(t *testing.T) {
	t.Parallel()
	tcs := []struct {
		W    *Word
		Data []byte
	}{
		{MakeEnum(3), []byte{0x06, 0x00}},
		{MakeWord(-1, 0), []byte{0x01, 0x00}},
		{NewWord(7, Int(5)), []byte{0x0e, 0x01, 0x02, 0x0a}},
		{NewWord(0, String("hi")), []byte{0x00, 0x01, 0x05, 0x02, 'h', 'i'}},
		{NewWord(0, nil, Char('A')), []byte{0x00, 0x02, 0x18, 0x41}},
	}
	for i, tc := range tcs {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			data, err := MarshalAppend(nil, tc.W)
			require.NoError(t, err)
			require.Equal(t, tc.Data, data)

			actual, err := Unmarshal(data, nil)
			require.NoError(t, err)
			require.True(t, Equal(tc.W, actual), "%v != %v", tc.W, actual)
		})
	}
}

func TestUnmarshalEnumInterned(t *testing.T) {
	t.Parallel()
	w, err := Unmarshal([]byte{0x06, 0x00}, nil)
	require.NoError(t, err)
	require.Same(t, MakeEnum(3), w)
}

func TestUnmarshalErrors(t *testing.T) {
	t.Parallel()
	tcs := map[string][]byte{
		"empty":        nil,
		"no arity":     {0x0e},
		"short":        {0x0e, 0x01, 0x02},
		"padding":      {0x0e, 0x01, 0x82, 0x0a},
		"invalid kind": {0x00, 0x01, 0x07},
		"trailing":     {0x06, 0x00, 0x00},
		"trailing2":    {0x0e, 0x01, 0x02, 0x0a, 0x00},
		"string len":   {0x00, 0x01, 0x05, 0x09, 'h'},
		"bad char":     {0x00, 0x01, 0x03, 0x80, 0x80, 0x80, 0x01},
		"missing id":   {0x00, 0x01, 0x01, 0x01},
	}
	for name, data := range tcs {
		t.Run(name, func(t *testing.T) {
			_, err := Unmarshal(data, func(cadata.ID) (*Word, error) {
				return nil, fmt.Errorf("should not be called")
			})
			require.Error(t, err)
		})
	}
}

func TestMarshalForeign(t *testing.T) {
	t.Parallel()
	_, err := MarshalAppend(nil, NewWord(0, NewForeign(1)))
	require.ErrorAs(t, err, &ErrNotEncodable{})
	require.Equal(t, ErrNotEncodable{Kind: spec.SK_Foreign}, err)

	// foreign payloads nested in children are also rejected
	_, err = MarshalAppend(nil, NewList(Int(1), NewForeign(2)))
	require.ErrorAs(t, err, &ErrNotEncodable{})
}

func TestMarshalInvalidChar(t *testing.T) {
	t.Parallel()
	for _, c := range []Char{-1, 0x110000, math.MaxInt32} {
		_, err := MarshalAppend(nil, NewWord(0, c))
		require.Error(t, err, "%d", c)
		_, err = MarshalAppend(nil, NewList(Int(1), c))
		require.Error(t, err, "%d", c)
	}
	_, err := MarshalAppend(nil, NewWord(0, Char(0x10FFFF)))
	require.NoError(t, err)
}

func TestUnmarshalChildWithoutLoad(t *testing.T) {
	t.Parallel()
	data, err := MarshalAppend(nil, NewWord(3, NewWord(4, Int(1))))
	require.NoError(t, err)
	require.NotPanics(t, func() {
		_, err = Unmarshal(data, nil)
	})
	require.Error(t, err)
}

func TestMarshalChildren(t *testing.T) {
	t.Parallel()
	child := NewWord(4, String("c"))
	childID, err := ContentID(child)
	require.NoError(t, err)
	data, err := MarshalAppend(nil, NewWord(3, child))
	require.NoError(t, err)

	var loaded []cadata.ID
	w, err := Unmarshal(data, func(id cadata.ID) (*Word, error) {
		loaded = append(loaded, id)
		return child, nil
	})
	require.NoError(t, err)
	require.Equal(t, []cadata.ID{childID}, loaded)
	require.Same(t, child, w.Field(1))
}

func TestMarshalProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)
	properties.Property("scalar words round trip", prop.ForAll(
		func(tag int, i int64, c rune, f float64, s string) bool {
			w := NewWord(tag, Int(i), Char(c), Float(f), String(s), nil)
			data, err := MarshalAppend(nil, w)
			if err != nil {
				return false
			}
			actual, err := Unmarshal(data, nil)
			return err == nil && Equal(w, actual)
		},
		gen.Int(), gen.Int64(), gen.Rune(), gen.Float64Range(-1e12, 1e12), gen.AnyString(),
	))
	properties.TestingRun(t)
}
