package mrtmem

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"unicode/utf8"

	"mercurylang.org/mrt/internal/bitbuf"
	"mercurylang.org/mrt/internal/cadata"
	"mercurylang.org/mrt/spec"
)

// LoadFunc resolves the content ID of a child word during decoding.
type LoadFunc = func(cadata.ID) (*Word, error)

// IDFunc returns the content ID used to reference a child word.
type IDFunc = func(*Word) (cadata.ID, error)

// MarshalAppend encodes the node w and appends it to out.
// Child words are referenced by their content IDs.
func MarshalAppend(out []byte, w *Word) ([]byte, error) {
	return encodeWord(out, w, ContentID)
}

// encodeWord writes
//
//	varint tag | uvarint arity | slot kind bitmap | payloads
//
// The bitmap holds spec.SlotKindBits per field, padded with zeros to a byte.
func encodeWord(out []byte, w *Word, idOf IDFunc) ([]byte, error) {
	arity := len(w.fields)
	if arity > spec.MaxArity {
		return nil, fmt.Errorf("encoding word: arity %d exceeds maximum %d", arity, spec.MaxArity)
	}
	out = binary.AppendVarint(out, int64(w.tag))
	out = binary.AppendUvarint(out, uint64(arity))

	kinds := bitbuf.New(arity * spec.SlotKindBits)
	for i, x := range w.fields {
		k := SlotKindOf(x)
		if k == spec.SK_Foreign {
			return nil, ErrNotEncodable{Kind: k}
		}
		if c, ok := x.(Char); ok && !validChar(c) {
			return nil, fmt.Errorf("encoding word: field %d: invalid code point %d", i+1, c)
		}
		kinds.PutN(i*spec.SlotKindBits, spec.SlotKindBits, uint64(k))
	}
	out = append(out, kinds.Bytes()...)

	for _, x := range w.fields {
		if IsAbsent(x) {
			continue
		}
		switch x := x.(type) {
		case *Word:
			id, err := idOf(x)
			if err != nil {
				return nil, err
			}
			out = append(out, id[:]...)
		case Int:
			out = binary.AppendVarint(out, int64(x))
		case Char:
			out = binary.AppendUvarint(out, uint64(uint32(x)))
		case Float:
			out = binary.LittleEndian.AppendUint64(out, math.Float64bits(float64(x)))
		case String:
			out = binary.AppendUvarint(out, uint64(len(x)))
			out = append(out, string(x)...)
		}
	}
	return out, nil
}

// Unmarshal decodes a single encoded node, calling load for each child.
// load may be nil if the node has no word fields.
func Unmarshal(data []byte, load LoadFunc) (*Word, error) {
	r := reader{data: data}
	tag := r.varint()
	arity := r.uvarint()
	if r.err != nil {
		return nil, r.err
	}
	if arity > spec.MaxArity {
		return nil, fmt.Errorf("decoding word: arity %d exceeds maximum %d", arity, spec.MaxArity)
	}
	if tag < math.MinInt || tag > math.MaxInt {
		return nil, fmt.Errorf("decoding word: tag %d overflows int", tag)
	}
	n := int(arity)
	kindData := r.bytes(spec.SlotKindBytes(n))
	if r.err != nil {
		return nil, r.err
	}
	kinds := bitbuf.FromBytes(kindData)
	if err := kinds.CheckZero(n*spec.SlotKindBits, kinds.Len()); err != nil {
		return nil, fmt.Errorf("decoding word: slot kind padding: %w", err)
	}

	if n == 0 && tag >= 0 {
		if r.len() > 0 {
			return nil, errTrailing(r.len())
		}
		return MakeEnum(int(tag)), nil
	}
	w := MakeWord(int(tag), n)
	for i := 0; i < n; i++ {
		k := spec.SlotKind(kinds.GetN(i*spec.SlotKindBits, spec.SlotKindBits))
		var x Slot
		switch k {
		case spec.SK_Absent:
		case spec.SK_Word:
			idData := r.bytes(cadata.IDSize)
			if r.err != nil {
				return nil, r.err
			}
			if load == nil {
				return nil, fmt.Errorf("decoding word: field %d: references a child, but no LoadFunc was given", i+1)
			}
			child, err := load(cadata.IDFromBytes(idData))
			if err != nil {
				return nil, err
			}
			x = child
		case spec.SK_Int:
			x = Int(r.varint())
		case spec.SK_Char:
			c := r.uvarint()
			if c > uint64(utf8.MaxRune) {
				return nil, fmt.Errorf("decoding word: field %d: invalid code point %d", i+1, c)
			}
			x = Char(rune(c))
		case spec.SK_Float:
			x = Float(math.Float64frombits(binary.LittleEndian.Uint64(r.bytes(8))))
		case spec.SK_String:
			l := r.uvarint()
			if l > uint64(r.len()) {
				return nil, fmt.Errorf("decoding word: field %d: string length %d exceeds data", i+1, l)
			}
			x = String(r.bytes(int(l)))
		default:
			return nil, fmt.Errorf("decoding word: field %d: invalid slot kind %v", i+1, k)
		}
		if r.err != nil {
			return nil, fmt.Errorf("decoding word: field %d: %w", i+1, r.err)
		}
		w.fields[i] = x
	}
	if r.len() > 0 {
		return nil, errTrailing(r.len())
	}
	return w, nil
}

var errShort = errors.New("data too short")

// validChar is true for the code points a Char field can be encoded with.
func validChar(c Char) bool {
	return c >= 0 && c <= utf8.MaxRune
}

func errTrailing(n int) error {
	return fmt.Errorf("decoding word: %d trailing bytes", n)
}

// reader consumes data from the front and records the first error.
// Reads after an error return zero values.
type reader struct {
	data []byte
	err  error
}

func (r *reader) len() int {
	return len(r.data)
}

func (r *reader) varint() int64 {
	if r.err != nil {
		return 0
	}
	x, n := binary.Varint(r.data)
	if n <= 0 {
		r.err = fmt.Errorf("decoding word: bad varint")
		return 0
	}
	r.data = r.data[n:]
	return x
}

func (r *reader) uvarint() uint64 {
	if r.err != nil {
		return 0
	}
	x, n := binary.Uvarint(r.data)
	if n <= 0 {
		r.err = fmt.Errorf("decoding word: bad uvarint")
		return 0
	}
	r.data = r.data[n:]
	return x
}

// bytes returns the next n bytes, or a zeroed slice of length n on error.
func (r *reader) bytes(n int) []byte {
	if r.err == nil && len(r.data) < n {
		r.err = errShort
	}
	if r.err != nil {
		return make([]byte, n)
	}
	ret := r.data[:n]
	r.data = r.data[n:]
	return ret
}
