// package stores contains cadata.Store implementations which are not backed by a database.
package stores

import (
	"context"
	"io"

	"go.brendoncarroll.net/state"
	"go.brendoncarroll.net/state/kv"

	"mercurylang.org/mrt/internal/cadata"
)

var _ cadata.Store = &Mem{}

type memEntry struct {
	salt  *cadata.ID
	value []byte
}

// Mem is an in-memory content addressed store.
// It is safe for concurrent use.
type Mem struct {
	hf      cadata.HashFunc
	maxSize int
	kv      *kv.MemStore[cadata.ID, memEntry]
}

func NewMem(hf cadata.HashFunc, maxSize int) *Mem {
	return &Mem{
		kv: kv.NewMemStore[cadata.ID, memEntry](func(a, b cadata.ID) int {
			return a.Compare(b)
		}),
		hf:      hf,
		maxSize: maxSize,
	}
}

func (s *Mem) Post(ctx context.Context, salt *cadata.ID, data []byte) (cadata.ID, error) {
	if len(data) > s.maxSize {
		return cadata.ID{}, cadata.ErrTooLarge
	}
	id := s.hf(salt, data)
	if err := s.kv.Put(ctx, id, memEntry{
		salt:  cloneSalt(salt),
		value: append([]byte{}, data...),
	}); err != nil {
		return cadata.ID{}, err
	}
	return id, nil
}

func (s *Mem) Get(ctx context.Context, id *cadata.ID, salt *cadata.ID, buf []byte) (int, error) {
	ent, err := kv.Get(ctx, s.kv, *id)
	if err != nil {
		if state.IsErrNotFound[cadata.ID](err) {
			return 0, cadata.ErrNotFound{Key: id}
		}
		return 0, err
	}
	if len(ent.value) > len(buf) {
		return 0, io.ErrShortBuffer
	}
	return copy(buf, ent.value), nil
}

func (s *Mem) Exists(ctx context.Context, id *cadata.ID) (bool, error) {
	return s.kv.Exists(ctx, *id)
}

func (s *Mem) Delete(ctx context.Context, id *cadata.ID) error {
	return s.kv.Delete(ctx, *id)
}

func (s *Mem) List(ctx context.Context, span cadata.Span, ids []cadata.ID) (int, error) {
	return s.kv.List(ctx, span, ids)
}

func (s *Mem) MaxSize() int {
	return s.maxSize
}

func (s *Mem) Len() int {
	return s.kv.Len()
}

func cloneSalt(salt *cadata.ID) *cadata.ID {
	if salt == nil {
		return nil
	}
	ret := *salt
	return &ret
}
