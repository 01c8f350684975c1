package mrtcmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	"go.brendoncarroll.net/star"
	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"

	"mercurylang.org/mrt"
	"mercurylang.org/mrt/internal/cadata"
	"mercurylang.org/mrt/internal/dbutil"
	"mercurylang.org/mrt/internal/sqlstores"
	"mercurylang.org/mrt/mrtmem"
)

var snapshotCmd = star.NewDir(star.Metadata{
	Short: "store terms in a snapshot database",
}, map[star.Symbol]star.Command{
	"put-list": snapPutListCmd,
	"show":     snapShowCmd,
	"list":     snapListCmd,
	"drop":     snapDropCmd,
	"blobs":    snapBlobsCmd,
})

var snapNameParam = star.Param[string]{
	Name:  "name",
	Parse: star.ParseString,
}

var intsParam = star.Param[[]mrtmem.Slot]{
	Name:  "ints",
	Parse: parseInts,
}

// parseInts parses a comma separated list of integers.
func parseInts(x string) ([]mrtmem.Slot, error) {
	var ret []mrtmem.Slot
	for _, part := range strings.Split(x, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing list element %q: %w", part, err)
		}
		ret = append(ret, mrtmem.Int(n))
	}
	return ret, nil
}

var snapPutListCmd = star.Command{
	Metadata: star.Metadata{
		Short: "store a list of integers as a new snapshot",
	},
	Flags: []star.IParam{DBParam},
	Pos:   []star.IParam{snapNameParam, intsParam},
	F: func(c star.Context) error {
		db := DBParam.Load(c)
		defer db.Close()
		list := mrtmem.NewList(intsParam.Load(c)...)
		id, err := PutSnapshot(c, db, snapNameParam.Load(c), list)
		if err != nil {
			return err
		}
		c.Printf("%v\n", id)
		return nil
	},
}

var snapShowCmd = star.Command{
	Metadata: star.Metadata{
		Short: "print the root term of a snapshot",
	},
	Flags: []star.IParam{DBParam},
	Pos:   []star.IParam{snapNameParam},
	F: func(c star.Context) error {
		db := DBParam.Load(c)
		defer db.Close()
		w, err := GetSnapshot(c, db, snapNameParam.Load(c))
		if err != nil {
			return err
		}
		c.Printf("%s\n", mrtmem.Pretty(w))
		return nil
	},
}

var snapListCmd = star.Command{
	Metadata: star.Metadata{
		Short: "list the snapshots in a database",
	},
	Flags: []star.IParam{DBParam},
	F: func(c star.Context) error {
		db := DBParam.Load(c)
		defer db.Close()
		snaps, err := dbutil.DoTx1(c, db, sqlstores.ListSnapshots)
		if err != nil {
			return err
		}
		c.Printf("ID\tNAME\tROOT\n")
		for _, s := range snaps {
			root := "-"
			if s.Root != nil {
				root = s.Root.String()
			}
			c.Printf("%d\t%s\t%s\n", s.ID, s.Name, root)
		}
		return nil
	},
}

var snapDropCmd = star.Command{
	Metadata: star.Metadata{
		Short: "remove a snapshot and any words only it references",
	},
	Flags: []star.IParam{DBParam},
	Pos:   []star.IParam{snapNameParam},
	F: func(c star.Context) error {
		db := DBParam.Load(c)
		defer db.Close()
		return dbutil.DoTx(c, db, func(tx *sqlx.Tx) error {
			snap, err := sqlstores.GetSnapshot(tx, snapNameParam.Load(c))
			if err != nil {
				return err
			}
			return sqlstores.DropSnapshot(tx, snap.ID)
		})
	},
}

var snapBlobsCmd = star.Command{
	Metadata: star.Metadata{
		Short: "list the IDs of the encoded words in a snapshot",
	},
	Flags: []star.IParam{DBParam},
	Pos:   []star.IParam{snapNameParam},
	F: func(c star.Context) error {
		db := DBParam.Load(c)
		defer db.Close()
		ids, err := ListBlobs(c, db, snapNameParam.Load(c))
		if err != nil {
			return err
		}
		for _, id := range ids {
			c.Printf("%v\n", id)
		}
		return nil
	},
}

// PutSnapshot creates a snapshot called name holding w and everything it references.
// If w cannot be stored, the snapshot is removed again and name is free for reuse.
func PutSnapshot(ctx context.Context, db *sqlx.DB, name string, w *mrtmem.Word) (mrt.CID, error) {
	sid, err := dbutil.DoTx1(ctx, db, func(tx *sqlx.Tx) (sqlstores.SnapshotID, error) {
		return sqlstores.CreateSnapshot(tx, name)
	})
	if err != nil {
		return mrt.CID{}, err
	}
	id, err := fillSnapshot(ctx, db, sid, w)
	if err != nil {
		if err2 := dbutil.DoTx(ctx, db, func(tx *sqlx.Tx) error {
			return sqlstores.DropSnapshot(tx, sid)
		}); err2 != nil {
			return mrt.CID{}, errors.Join(err, err2)
		}
		return mrt.CID{}, err
	}
	logctx.Info(ctx, "stored snapshot", zap.String("name", name), zap.Stringer("root", id))
	return id, nil
}

func fillSnapshot(ctx context.Context, db *sqlx.DB, sid sqlstores.SnapshotID, w *mrtmem.Word) (mrt.CID, error) {
	s := sqlstores.NewStore(db, mrt.Hash, mrt.MaxWordBytes, sid)
	id, err := mrtmem.Post(ctx, s, w)
	if err != nil {
		return mrt.CID{}, err
	}
	if err := dbutil.DoTx(ctx, db, func(tx *sqlx.Tx) error {
		return sqlstores.SetRoot(tx, sid, id)
	}); err != nil {
		return mrt.CID{}, err
	}
	return id, nil
}

// GetSnapshot loads the root word of the snapshot called name.
func GetSnapshot(ctx context.Context, db *sqlx.DB, name string) (*mrtmem.Word, error) {
	snap, err := dbutil.DoTx1(ctx, db, func(tx *sqlx.Tx) (*sqlstores.Snapshot, error) {
		return sqlstores.GetSnapshot(tx, name)
	})
	if err != nil {
		return nil, err
	}
	if snap.Root == nil {
		return nil, fmt.Errorf("snapshot %q has no root", name)
	}
	s := sqlstores.NewStore(db, mrt.Hash, mrt.MaxWordBytes, snap.ID)
	return mrtmem.Load(ctx, s, *snap.Root)
}

// ListBlobs returns the IDs of every word stored in the snapshot called name, in ID order.
func ListBlobs(ctx context.Context, db *sqlx.DB, name string) (ret []cadata.ID, _ error) {
	snap, err := dbutil.DoTx1(ctx, db, func(tx *sqlx.Tx) (*sqlstores.Snapshot, error) {
		return sqlstores.GetSnapshot(tx, name)
	})
	if err != nil {
		return nil, err
	}
	s := sqlstores.NewStore(db, mrt.Hash, mrt.MaxWordBytes, snap.ID)
	if err := cadata.ForEach(ctx, s, cadata.Span{}, func(id cadata.ID) error {
		ret = append(ret, id)
		return nil
	}); err != nil {
		return nil, err
	}
	return ret, nil
}
