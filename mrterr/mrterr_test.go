package mrterr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"mercurylang.org/mrt/mrtmem"
)

func TestSorry(t *testing.T) {
	t.Parallel()
	err := Recover(func() { Sorry("foreign_proc in this grade") })
	require.Error(t, err)
	require.Equal(t, "Sorry, unimplemented: foreign_proc in this grade", err.Error())
	require.True(t, IsUnimplemented(err))
	require.False(t, IsFatal(err))

	var se SystemError
	require.ErrorAs(t, err, &se)
	require.NotEmpty(t, se.Stack)
}

func TestFatal(t *testing.T) {
	t.Parallel()
	err := Recover(func() { Fatalf("bad tag %d", 7) })
	require.Equal(t, "Fatal error: bad tag 7", err.Error())
	require.True(t, IsFatal(err))
	require.False(t, IsUnimplemented(err))
	require.True(t, IsFatal(fmt.Errorf("wrapped: %w", err)))
}

func TestRecoverFault(t *testing.T) {
	t.Parallel()
	err := Recover(func() { mrtmem.MakeWord(0, 1).GetField(2) })
	require.True(t, IsFault(err))
	require.Equal(t, mrtmem.ErrFieldIndex{Op: "GetField", Index: 2, Arity: 1}, err)

	err = Recover(func() { mrtmem.Head(mrtmem.Nil()) })
	require.True(t, IsFault(err))
	require.False(t, IsFatal(err))
}

func TestRecoverNothing(t *testing.T) {
	t.Parallel()
	ran := false
	require.NoError(t, Recover(func() { ran = true }))
	require.True(t, ran)
}

func TestRecoverRepanics(t *testing.T) {
	t.Parallel()
	require.PanicsWithValue(t, "boom", func() {
		Recover(func() { panic("boom") })
	})
	require.PanicsWithValue(t, Commit{}, func() {
		Recover(DoCommit)
	})
	other := errors.New("other")
	require.PanicsWithError(t, "other", func() {
		Recover(func() { panic(other) })
	})
}

func TestCatchCommit(t *testing.T) {
	t.Parallel()
	require.True(t, CatchCommit(DoCommit))
	require.False(t, CatchCommit(func() {}))

	// commits are caught by the nearest enclosing CatchCommit
	inner := false
	outer := CatchCommit(func() {
		inner = CatchCommit(DoCommit)
	})
	require.True(t, inner)
	require.False(t, outer)

	require.Panics(t, func() {
		CatchCommit(func() { Fatal("x") })
	})
}
