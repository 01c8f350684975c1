// package spec contains the numbering contracts shared by every component
// of the runtime: type representation kinds, secondary tag locations,
// slot discriminators and the sizes used by the value encoding.
package spec

// TypeCtorRep says how the values of a type constructor are laid out.
// The numeric values are shared with the compiler and the standard library;
// they must never be renumbered, only appended to.
//
//go:generate go run golang.org/x/tools/cmd/stringer -type=TypeCtorRep
type TypeCtorRep uint8

const (
	TR_Enum = TypeCtorRep(iota)
	TR_EnumUserEq
	TR_DU
	TR_DUUserEq
	TR_NoTag
	TR_NoTagUserEq
	TR_Equiv
	TR_Func
	TR_Int
	TR_Char
	TR_Float
	TR_String
	TR_Pred
	TR_Subgoal
	TR_Void
	TR_CPointer
	TR_TypeInfo
	TR_TypeClassInfo
	TR_Array
	TR_SuccIp
	TR_Hp
	TR_CurFr
	TR_MaxFr
	TR_RedoFr
	TR_RedoIp
	TR_TrailPtr
	TR_Ticket
	TR_NoTagGround
	TR_NoTagGroundUserEq
	TR_EquivGround
	TR_Tuple
	TR_ReservedAddr
	TR_ReservedAddrUserEq
	TR_TypeCtorInfo
	TR_BaseTypeClassInfo
	TR_TypeDesc
	TR_TypeCtorDesc
	TR_Foreign
	TR_Reference
	TR_StableCPointer
	TR_Unknown

	// NumTypeCtorReps is the number of defined representations.
	// Codes >= NumTypeCtorReps are invalid.
	NumTypeCtorReps = int(iota)
)

// Valid returns true iff r is one of the defined representations.
func (r TypeCtorRep) Valid() bool {
	return int(r) < NumTypeCtorReps
}

// SecTagLocation says where the secondary tag of a discriminated union
// constructor is stored.
//
//go:generate go run golang.org/x/tools/cmd/stringer -type=SecTagLocation
type SecTagLocation uint8

const (
	SecTag_None = SecTagLocation(iota)
	SecTag_Local
	SecTag_Remote

	NumSecTagLocations = int(iota)
)

func (l SecTagLocation) Valid() bool {
	return int(l) < NumSecTagLocations
}

// MercuryName returns the name used for l by the rest of the runtime.
func (l SecTagLocation) MercuryName() string {
	switch l {
	case SecTag_None:
		return "MR_SECTAG_NONE"
	case SecTag_Local:
		return "MR_SECTAG_LOCAL"
	case SecTag_Remote:
		return "MR_SECTAG_REMOTE"
	default:
		return l.String()
	}
}
