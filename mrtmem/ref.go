package mrtmem

import (
	"context"
	"fmt"
	"sync"

	"mercurylang.org/mrt"
	"mercurylang.org/mrt/internal/cadata"
	"mercurylang.org/mrt/internal/stores"
)

// Post encodes w and every word reachable from it, posting each node to s.
// Children are posted before their parents, so a parent is never stored
// with a dangling reference. Nodes already in s are not posted again.
// The graph reachable from w must be acyclic.
func Post(ctx context.Context, s cadata.PostExister, w *Word) (cadata.ID, error) {
	p := poster{ctx: ctx, s: s, ids: make(map[*Word]cadata.ID)}
	return p.post(w)
}

type poster struct {
	ctx context.Context
	s   cadata.PostExister
	ids map[*Word]cadata.ID
}

func (p *poster) post(w *Word) (cadata.ID, error) {
	if id, ok := p.ids[w]; ok {
		return id, nil
	}
	data, err := encodeWord(nil, w, p.post)
	if err != nil {
		return cadata.ID{}, err
	}
	if len(data) > mrt.MaxWordBytes {
		return cadata.ID{}, cadata.ErrTooLarge
	}
	id := mrt.Hash(nil, data)
	if exists, err := p.s.Exists(p.ctx, &id); err != nil {
		return cadata.ID{}, err
	} else if !exists {
		id2, err := p.s.Post(p.ctx, nil, data)
		if err != nil {
			return cadata.ID{}, err
		}
		if id2 != id {
			return cadata.ID{}, cadata.ErrBadData{Have: id2, Want: id}
		}
	}
	p.ids[w] = id
	return id, nil
}

// Load retrieves the word stored under id, and everything it references.
// Children stored under the same ID are shared in the result.
func Load(ctx context.Context, s cadata.Getter, id cadata.ID) (*Word, error) {
	l := loader{ctx: ctx, s: s, words: make(map[cadata.ID]*Word)}
	return l.load(id)
}

type loader struct {
	ctx   context.Context
	s     cadata.Getter
	words map[cadata.ID]*Word
}

func (l *loader) load(id cadata.ID) (*Word, error) {
	if w, ok := l.words[id]; ok {
		return w, nil
	}
	data, err := l.get(id)
	if err != nil {
		return nil, err
	}
	if err := cadata.Check(mrt.Hash, &id, nil, data); err != nil {
		return nil, err
	}
	w, err := Unmarshal(data, l.load)
	if err != nil {
		return nil, fmt.Errorf("loading %v: %w", id, err)
	}
	l.words[id] = w
	return w, nil
}

// get copies the node out of the pooled buffer, so that the buffer is
// released before any children are loaded.
func (l *loader) get(id cadata.ID) ([]byte, error) {
	buf := acquireBuffer()
	defer releaseBuffer(buf)
	n, err := l.s.Get(l.ctx, &id, nil, buf[:])
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), buf[:n]...), nil
}

// ContentID returns the ID that Post would store w under.
func ContentID(w *Word) (cadata.ID, error) {
	return Post(context.Background(), stores.NewTotal(mrt.Hash, mrt.MaxWordBytes), w)
}

var bufPool = sync.Pool{
	New: func() any {
		return new([mrt.MaxWordBytes]byte)
	},
}

func acquireBuffer() *[mrt.MaxWordBytes]byte {
	return bufPool.Get().(*[mrt.MaxWordBytes]byte)
}

func releaseBuffer(x *[mrt.MaxWordBytes]byte) {
	bufPool.Put(x)
}
