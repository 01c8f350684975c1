// package sqlstores keeps encoded words in sqlite.
//
// Blobs are shared between snapshots. A snapshot is a named set of blobs
// with an optional root: the ID of the word the snapshot was taken of.
package sqlstores

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"

	"github.com/jmoiron/sqlx"

	"mercurylang.org/mrt/internal/cadata"
	"mercurylang.org/mrt/internal/dbutil"
	"mercurylang.org/mrt/internal/migrations"
)

type SnapshotID = uint64

func Migration(x *migrations.State) *migrations.State {
	return x.
		ApplyStmt(`CREATE TABLE blobs (
		id BLOB NOT NULL,
		data BLOB NOT NULL,

		PRIMARY KEY(id)
	) WITHOUT ROWID, STRICT;`).
		ApplyStmt(`CREATE TABLE snapshots (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		root BLOB
	);`).
		ApplyStmt(`CREATE TABLE snapshot_blobs (
		snapshot_id INTEGER,
		blob_id BLOB,
		FOREIGN KEY(snapshot_id) REFERENCES snapshots(id),
		FOREIGN KEY(blob_id) REFERENCES blobs(id),
		PRIMARY KEY(snapshot_id, blob_id)
	) WITHOUT ROWID, STRICT;`)
}

// Setup brings db up to the current schema.
func Setup(ctx context.Context, db *sqlx.DB) error {
	return migrations.Migrate(ctx, db, Migration(migrations.InitialState()))
}

// Snapshot is a row in the snapshots table.
type Snapshot struct {
	ID   SnapshotID `db:"id"`
	Name string     `db:"name"`
	Root *cadata.ID `db:"root"`
}

// CreateSnapshot allocates a new snapshot ID which will not be reused
func CreateSnapshot(tx *sqlx.Tx, name string) (ret SnapshotID, err error) {
	err = tx.Get(&ret, `INSERT INTO snapshots (name) VALUES (?) RETURNING id`, name)
	return ret, err
}

// SetRoot records root as the word the snapshot was taken of.
// The root must already be in the snapshot.
func SetRoot(tx *sqlx.Tx, sid SnapshotID, root cadata.ID) error {
	s := txStore{tx: tx, intID: sid}
	n, err := s.countIn(&root)
	if err != nil {
		return err
	}
	if n == 0 {
		return cadata.ErrNotFound{Key: &root}
	}
	_, err = tx.Exec(`UPDATE snapshots SET root = ? WHERE id = ?`, root[:], sid)
	return err
}

// GetSnapshot looks a snapshot up by name.
func GetSnapshot(tx *sqlx.Tx, name string) (*Snapshot, error) {
	var ret Snapshot
	if err := tx.Get(&ret, `SELECT id, name, root FROM snapshots WHERE name = ?`, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("no snapshot named %q", name)
		}
		return nil, err
	}
	return &ret, nil
}

// ListSnapshots returns every snapshot ordered by ID.
func ListSnapshots(tx *sqlx.Tx) (ret []Snapshot, err error) {
	err = tx.Select(&ret, `SELECT id, name, root FROM snapshots ORDER BY id`)
	return ret, err
}

// DropSnapshot deletes a snapshot and any blobs not included in another snapshot.
func DropSnapshot(tx *sqlx.Tx, sid SnapshotID) error {
	if _, err := tx.Exec(`DELETE FROM snapshot_blobs WHERE snapshot_id = ?`, sid); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM snapshots WHERE id = ?`, sid); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM blobs WHERE id NOT IN (
		SELECT blob_id FROM snapshot_blobs
	)`); err != nil {
		return err
	}
	return nil
}

// CountBlobs counts the number of blobs in a snapshot
func CountBlobs(tx *sqlx.Tx, sid SnapshotID) (int64, error) {
	var ret int64
	err := tx.Get(&ret, `SELECT count(*) FROM snapshot_blobs WHERE snapshot_id = ?`, sid)
	return ret, err
}

type txStore struct {
	tx      *sqlx.Tx
	intID   SnapshotID
	hf      cadata.HashFunc
	maxSize int
}

func (s *txStore) Post(ctx context.Context, salt *cadata.ID, data []byte) (cadata.ID, error) {
	if len(data) > s.maxSize {
		return cadata.ID{}, cadata.ErrTooLarge
	}
	id := s.hf(salt, data)
	if _, err := s.tx.Exec(`INSERT INTO blobs (id, data)
		VALUES (?, ?) ON CONFLICT DO NOTHING`, id[:], data); err != nil {
		return cadata.ID{}, err
	}
	if err := s.add(id); err != nil {
		return cadata.ID{}, err
	}
	return id, nil
}

func (s *txStore) Get(ctx context.Context, id *cadata.ID, salt *cadata.ID, buf []byte) (int, error) {
	var data []byte
	if err := s.tx.Get(&data, `SELECT blobs.data FROM snapshot_blobs JOIN blobs ON blob_id = blobs.id
		WHERE snapshot_id = ? AND blob_id = ?
	`, s.intID, id[:]); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = cadata.ErrNotFound{Key: id}
		}
		return 0, err
	}
	if len(data) > len(buf) {
		return 0, io.ErrShortBuffer
	}
	return copy(buf, data), nil
}

func (s *txStore) add(id cadata.ID) error {
	_, err := s.tx.Exec(`INSERT INTO snapshot_blobs (snapshot_id, blob_id)
		VALUES (?, ?) ON CONFLICT DO NOTHING`, s.intID, id[:])
	return err
}

func (s *txStore) Delete(ctx context.Context, id *cadata.ID) error {
	if _, err := s.tx.Exec(`DELETE FROM snapshot_blobs WHERE snapshot_id = ? AND blob_id = ?`, s.intID, id[:]); err != nil {
		return err
	}
	var others int
	if err := s.tx.Get(&others, `SELECT count(*) FROM snapshot_blobs WHERE blob_id = ?`, id[:]); err != nil {
		return err
	}
	if others == 0 {
		if _, err := s.tx.Exec(`DELETE FROM blobs WHERE id = ?`, id[:]); err != nil {
			return err
		}
	}
	return nil
}

func (s *txStore) Exists(ctx context.Context, id *cadata.ID) (bool, error) {
	n, err := s.countIn(id)
	return n > 0, err
}

func (s *txStore) List(ctx context.Context, span cadata.Span, ids []cadata.ID) (int, error) {
	begin := cadata.BeginFromSpan(span)
	rows, err := s.tx.Query(`SELECT blob_id FROM snapshot_blobs
		WHERE snapshot_id = ? AND blob_id >= ?
		ORDER BY blob_id
		LIMIT ?
	`, s.intID, begin[:], len(ids))
	if err != nil {
		return 0, err
	}
	defer rows.Close()
	var n int
	for rows.Next() && n < len(ids) {
		var buf []byte
		if err := rows.Scan(&buf); err != nil {
			return 0, err
		}
		ids[n] = cadata.IDFromBytes(buf)
		n++
	}
	if err := rows.Err(); err != nil {
		return 0, err
	}
	return n, nil
}

func (s *txStore) countIn(id *cadata.ID) (count int, err error) {
	err = s.tx.Get(&count, `SELECT count(*) FROM snapshot_blobs WHERE snapshot_id = ? AND blob_id = ?`, s.intID, id[:])
	return count, err
}

var _ cadata.Store = &Store{}

// Store is the cadata.Store for one snapshot.
// Each call runs in its own transaction.
type Store struct {
	db      *sqlx.DB
	hf      cadata.HashFunc
	maxSize int
	intID   SnapshotID
}

func NewStore(db *sqlx.DB, hf cadata.HashFunc, maxSize int, intID SnapshotID) *Store {
	return &Store{db: db, hf: hf, maxSize: maxSize, intID: intID}
}

func (s *Store) Post(ctx context.Context, salt *cadata.ID, data []byte) (cadata.ID, error) {
	return dbutil.DoTx1(ctx, s.db, func(tx *sqlx.Tx) (cadata.ID, error) {
		s2 := s.txStore(tx)
		return s2.Post(ctx, salt, data)
	})
}

func (s *Store) Get(ctx context.Context, id *cadata.ID, salt *cadata.ID, buf []byte) (int, error) {
	return dbutil.DoTx1(ctx, s.db, func(tx *sqlx.Tx) (int, error) {
		s2 := s.txStore(tx)
		return s2.Get(ctx, id, salt, buf)
	})
}

func (s *Store) Exists(ctx context.Context, id *cadata.ID) (bool, error) {
	return dbutil.DoTx1(ctx, s.db, func(tx *sqlx.Tx) (bool, error) {
		s2 := s.txStore(tx)
		return s2.Exists(ctx, id)
	})
}

func (s *Store) Delete(ctx context.Context, id *cadata.ID) error {
	return dbutil.DoTx(ctx, s.db, func(tx *sqlx.Tx) error {
		s2 := s.txStore(tx)
		return s2.Delete(ctx, id)
	})
}

func (s *Store) List(ctx context.Context, span cadata.Span, ids []cadata.ID) (int, error) {
	return dbutil.DoTx1(ctx, s.db, func(tx *sqlx.Tx) (int, error) {
		s2 := s.txStore(tx)
		return s2.List(ctx, span, ids)
	})
}

func (s *Store) MaxSize() int {
	return s.maxSize
}

func (s *Store) txStore(tx *sqlx.Tx) *txStore {
	return &txStore{tx: tx, hf: s.hf, maxSize: s.maxSize, intID: s.intID}
}
