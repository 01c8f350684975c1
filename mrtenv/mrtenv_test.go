package mrtenv

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"mercurylang.org/mrt/internal/testutil"
	"mercurylang.org/mrt/mrterr"
)

func TestNew(t *testing.T) {
	t.Parallel()
	e := New([]string{"/usr/local/bin/hello", "a", "b"})
	require.Equal(t, "hello", e.Progname)
	require.Equal(t, []string{"a", "b"}, e.Args)
	require.Equal(t, 0, e.ExitStatus)

	e = New(nil)
	require.Equal(t, "", e.Progname)
	require.Empty(t, e.Args)
}

func TestFinaliserOrder(t *testing.T) {
	t.Parallel()
	ctx := testutil.Context(t)
	e := New([]string{"prog"})

	var order []int
	for i := 0; i < 5; i++ {
		e.RegisterFinaliser(func(context.Context) error {
			order = append(order, i)
			return nil
		})
	}
	require.Equal(t, 5, e.NumFinalisers())
	require.NoError(t, e.RunFinalisers(ctx))
	require.Equal(t, []int{0, 1, 2, 3, 4}, order)

	// the list is cleared, so finalisers run once
	require.Equal(t, 0, e.NumFinalisers())
	require.NoError(t, e.RunFinalisers(ctx))
	require.Len(t, order, 5)
}

func TestFinaliserErrors(t *testing.T) {
	t.Parallel()
	ctx := testutil.Context(t)
	e := New([]string{"prog"})

	errA := errors.New("a")
	ran := false
	e.RegisterFinaliser(func(context.Context) error { return errA })
	e.RegisterFinaliser(func(context.Context) error {
		mrterr.Fatal("closing stream")
		return nil
	})
	e.RegisterFinaliser(func(context.Context) error {
		ran = true
		return nil
	})

	err := e.RunFinalisers(ctx)
	require.Error(t, err)
	require.True(t, ran)
	require.ErrorIs(t, err, errA)
	require.True(t, mrterr.IsFatal(err))
}

func TestFinaliserConcurrentRegister(t *testing.T) {
	t.Parallel()
	ctx := testutil.Context(t)
	e := New([]string{"prog"})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e.RegisterFinaliser(func(context.Context) error { return nil })
		}()
	}
	wg.Wait()
	require.Equal(t, 10, e.NumFinalisers())
	require.NoError(t, e.RunFinalisers(ctx))
}
