// package migrations applies a linear history of schema statements to a
// sqlite database, recording progress in PRAGMA user_version.
package migrations

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"
)

// State is an immutable list of statements. Each statement is one version.
type State struct {
	stmts []string
}

func InitialState() *State {
	return &State{}
}

// ApplyStmt returns a new State with stmt appended.
func (s *State) ApplyStmt(stmt string) *State {
	stmts := append(append([]string{}, s.stmts...), stmt)
	return &State{stmts: stmts}
}

// Version is the number of statements in the State.
func (s *State) Version() int {
	return len(s.stmts)
}

// Migrate brings db up to the version of desired.
func Migrate(ctx context.Context, db *sqlx.DB, desired *State) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	var current int
	if err := tx.GetContext(ctx, &current, `PRAGMA user_version`); err != nil {
		return err
	}
	if current > desired.Version() {
		return fmt.Errorf("migrations: database is at version %d, newer than %d", current, desired.Version())
	}
	for i := current; i < desired.Version(); i++ {
		if _, err := tx.ExecContext(ctx, desired.stmts[i]); err != nil {
			return fmt.Errorf("migrations: applying version %d: %w", i+1, err)
		}
	}
	// PRAGMA does not take bind parameters
	if _, err := tx.ExecContext(ctx, fmt.Sprintf(`PRAGMA user_version = %d`, desired.Version())); err != nil {
		return err
	}
	if current < desired.Version() {
		logctx.Info(ctx, "migrated database", zap.Int("from", current), zap.Int("to", desired.Version()))
	}
	return tx.Commit()
}
