// package mrt is the support layer generated code links against to represent
// algebraic data type values as plain heap objects.
//
// The value encoding lives in mrtmem, the representation numbering in spec.
package mrt

import (
	"lukechampine.com/blake3"

	"mercurylang.org/mrt/internal/cadata"
	"mercurylang.org/mrt/spec"
)

const (
	// IDSize is the size of a content ID in bytes.
	IDSize = spec.IDSize

	// MaxWordBytes is the largest encoded size of a single word node.
	MaxWordBytes = spec.MaxWordBytes
)

// CID is a Content ID
type CID = cadata.ID

// Hash calculates the hash of x.
// If tag == nil, then the hash is unkeyed.
// If tag != nil, then the hash will be keyed with the tag.
func Hash(tag *cadata.ID, x []byte) (ret cadata.ID) {
	var key []byte
	if tag != nil {
		key = tag[:]
	}
	h := blake3.New(32, key)
	h.Write(x)
	h.Sum(ret[:0])
	return ret
}
