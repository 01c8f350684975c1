// package testutil has helpers shared by tests across the module.
package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"

	"mercurylang.org/mrt"
	"mercurylang.org/mrt/internal/stores"
)

// Context returns a context carrying a development logger, cancelled when
// the test ends.
func Context(t testing.TB) context.Context {
	ctx := context.Background()
	ctx, cf := context.WithCancel(ctx)
	t.Cleanup(cf)
	l, err := zap.NewDevelopment()
	require.NoError(t, err)
	ctx = logctx.NewContext(ctx, l)
	return ctx
}

// NewStore returns an in-memory store using the module's hash function.
func NewStore(t testing.TB) *stores.Mem {
	return stores.NewMem(mrt.Hash, mrt.MaxWordBytes)
}
