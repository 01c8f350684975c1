// package mrtcmd implements the mrt command line tool.
package mrtcmd

import (
	"context"
	"os"

	"github.com/jmoiron/sqlx"
	"go.brendoncarroll.net/star"

	"mercurylang.org/mrt/internal/dbutil"
	"mercurylang.org/mrt/internal/sqlstores"
)

func Root() star.Command {
	return root
}

var root = star.NewDir(star.Metadata{
	Short: "inspect the runtime's representation tables and stored terms",
}, map[star.Symbol]star.Command{
	"kinds":   kindsCmd,
	"sectags": sectagsCmd,
	"check":   checkCmd,

	"snapshot": snapshotCmd,
})

var DBParam = star.Param[*sqlx.DB]{
	Name:    "db",
	Default: star.Ptr(":memory:"),
	Parse: func(x string) (*sqlx.DB, error) {
		db, err := dbutil.Open(x)
		if err != nil {
			return nil, err
		}
		if err := sqlstores.Setup(context.Background(), db); err != nil {
			db.Close()
			return nil, err
		}
		return db, nil
	},
}

var fileParam = star.Param[*os.File]{
	Name: "f",
	Parse: func(x string) (*os.File, error) {
		return os.Open(x)
	},
}
