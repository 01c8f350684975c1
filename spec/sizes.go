package spec

const (
	// IDSize is the size in bytes of the content ID of an encoded word.
	IDSize = 32

	// SlotKindBits is the number of bits used to encode a SlotKind.
	SlotKindBits = 3

	// MaxArity is the largest number of fields a word may be encoded with.
	MaxArity = 1<<24 - 1

	// MaxWordBytes is the largest encoded size of a single word node.
	MaxWordBytes = 1 << 21
)

// SlotKind discriminates the payloads a field slot can hold.
//
//go:generate go run golang.org/x/tools/cmd/stringer -type=SlotKind
type SlotKind uint8

const (
	SK_Absent = SlotKind(iota)
	SK_Word
	SK_Int
	SK_Char
	SK_Float
	SK_String
	SK_Foreign

	NumSlotKinds = int(iota)
)

// SlotKindBytes returns the number of bytes needed for the slot kind
// bitmap of a word with arity fields.
func SlotKindBytes(arity int) int {
	return divCeil(arity*SlotKindBits, 8)
}

func divCeil(a, b int) int {
	ret := a / b
	if a%b > 0 {
		ret++
	}
	return ret
}
