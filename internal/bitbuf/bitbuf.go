// package bitbuf provides a little-endian bit addressed view over a byte slice.
package bitbuf

import (
	"fmt"
)

type Bit = uint8

const WordBits = 8

type Buf struct {
	// l is the length of the buffer in bits
	l int
	d []byte
}

// New allocates a zeroed buffer of l bits.
func New(l int) Buf {
	return Buf{
		l: l,
		d: make([]byte, divCeil(l, WordBits)),
	}
}

// FromBytes returns a buffer over d. Writes to the buffer modify d.
func FromBytes(d []byte) Buf {
	return Buf{d: d, l: len(d) * WordBits}
}

func (b Buf) Len() int {
	return b.l
}

func (b Buf) Bytes() []byte {
	return b.d
}

func (b Buf) Put(i int, x Bit) {
	b.check(i)
	putBit(b.d, i, x)
}

func (b Buf) Get(i int) Bit {
	b.check(i)
	return getBit(b.d, i)
}

// PutN writes the low n bits of x starting at bit i, least significant first.
func (b Buf) PutN(i, n int, x uint64) {
	for j := 0; j < n; j++ {
		b.Put(i+j, Bit(x))
		x >>= 1
	}
}

// GetN reads n bits starting at bit i, least significant first.
func (b Buf) GetN(i, n int) (ret uint64) {
	for j := n - 1; j >= 0; j-- {
		ret = ret<<1 | uint64(b.Get(i+j))
	}
	return ret
}

// CheckZero returns an error if any bit in [beg, end) is set.
func (b Buf) CheckZero(beg, end int) error {
	for i := beg; i < end; i++ {
		if b.Get(i) != 0 {
			return fmt.Errorf("bitbuf: bit %d is set, must be zero", i)
		}
	}
	return nil
}

func (b Buf) check(i int) {
	if i < 0 || i >= b.l {
		panic(fmt.Sprintf("bitbuf: index %d out of range for len=%d", i, b.l))
	}
}

func putBit(d []byte, i int, x Bit) {
	x &= 1 // ensure only the low bit is set.
	byteIndex := i / WordBits
	bitPos := i % WordBits

	d[byteIndex] = (d[byteIndex] &^ (1 << bitPos)) | (x << bitPos)
}

func getBit(d []byte, i int) Bit {
	byteIndex := i / WordBits
	bitPos := i % WordBits
	return Bit(d[byteIndex]>>bitPos) & 1
}

func divCeil(a, b int) int {
	ret := a / b
	if a%b > 0 {
		ret++
	}
	return ret
}
