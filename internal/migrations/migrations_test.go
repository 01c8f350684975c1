package migrations

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"mercurylang.org/mrt/internal/dbutil"
)

func TestMigrate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := dbutil.NewTestDB(t)
	s := InitialState().
		ApplyStmt(`CREATE TABLE a (x INTEGER)`).
		ApplyStmt(`CREATE TABLE b (y INTEGER)`)
	require.NoError(t, Migrate(ctx, db, s))
	// idempotent
	require.NoError(t, Migrate(ctx, db, s))

	var v int
	require.NoError(t, db.Get(&v, `PRAGMA user_version`))
	require.Equal(t, 2, v)

	require.Error(t, Migrate(ctx, db, InitialState()))
}
