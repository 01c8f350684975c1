package spec

import "strings"

// Category groups TypeCtorReps by how generic operations treat them.
type Category uint8

const (
	// Structural representations are built out of tagged words.
	Structural Category = iota + 1
	// Primitive representations are host scalars or closures.
	Primitive
	// Meta representations hold reflection data about other types.
	Meta
	// Control representations are pieces of the execution model's own state.
	Control
)

func (c Category) String() string {
	switch c {
	case Structural:
		return "structural"
	case Primitive:
		return "primitive"
	case Meta:
		return "meta"
	case Control:
		return "control"
	default:
		return "unknown"
	}
}

// Info is information about a TypeCtorRep
type Info struct {
	// Suffix is the part of the runtime name after MR_TYPECTOR_REP_
	Suffix   string   `json:"suffix"`
	Category Category `json:"category"`
	// UserEq is set for representations whose type defines its own equality.
	UserEq bool `json:"userEq"`
}

func (r TypeCtorRep) Info() Info {
	if !r.Valid() {
		return Info{}
	}
	return infos[r]
}

// MercuryName returns the name used for r by the compiler and the standard
// library, e.g. MR_TYPECTOR_REP_ENUM_USEREQ.
func (r TypeCtorRep) MercuryName() string {
	if !r.Valid() {
		return r.String()
	}
	return mercuryPrefix + infos[r].Suffix
}

func (r TypeCtorRep) Category() Category {
	return r.Info().Category
}

func (r TypeCtorRep) HasUserEq() bool {
	return r.Info().UserEq
}

// IsStructural returns true if values of this representation are tagged words.
func (r TypeCtorRep) IsStructural() bool {
	return r.Category() == Structural
}

const mercuryPrefix = "MR_TYPECTOR_REP_"

var infos = func() (ret [NumTypeCtorReps]Info) {
	m := map[TypeCtorRep]Info{
		TR_Enum:               {"ENUM", Structural, false},
		TR_EnumUserEq:         {"ENUM_USEREQ", Structural, true},
		TR_DU:                 {"DU", Structural, false},
		TR_DUUserEq:           {"DU_USEREQ", Structural, true},
		TR_NoTag:              {"NOTAG", Structural, false},
		TR_NoTagUserEq:        {"NOTAG_USEREQ", Structural, true},
		TR_Equiv:              {"EQUIV", Structural, false},
		TR_Func:               {"FUNC", Primitive, false},
		TR_Int:                {"INT", Primitive, false},
		TR_Char:               {"CHAR", Primitive, false},
		TR_Float:              {"FLOAT", Primitive, false},
		TR_String:             {"STRING", Primitive, false},
		TR_Pred:               {"PRED", Primitive, false},
		TR_Subgoal:            {"SUBGOAL", Primitive, false},
		TR_Void:               {"VOID", Primitive, false},
		TR_CPointer:           {"C_POINTER", Control, false},
		TR_TypeInfo:           {"TYPEINFO", Meta, false},
		TR_TypeClassInfo:      {"TYPECLASSINFO", Meta, false},
		TR_Array:              {"ARRAY", Control, false},
		TR_SuccIp:             {"SUCCIP", Control, false},
		TR_Hp:                 {"HP", Control, false},
		TR_CurFr:              {"CURFR", Control, false},
		TR_MaxFr:              {"MAXFR", Control, false},
		TR_RedoFr:             {"REDOFR", Control, false},
		TR_RedoIp:             {"REDOIP", Control, false},
		TR_TrailPtr:           {"TRAIL_PTR", Control, false},
		TR_Ticket:             {"TICKET", Control, false},
		TR_NoTagGround:        {"NOTAG_GROUND", Structural, false},
		TR_NoTagGroundUserEq:  {"NOTAG_GROUND_USEREQ", Structural, true},
		TR_EquivGround:        {"EQUIV_GROUND", Structural, false},
		TR_Tuple:              {"TUPLE", Structural, false},
		TR_ReservedAddr:       {"RESERVED_ADDR", Structural, false},
		TR_ReservedAddrUserEq: {"RESERVED_ADDR_USEREQ", Structural, true},
		TR_TypeCtorInfo:       {"TYPECTORINFO", Meta, false},
		TR_BaseTypeClassInfo:  {"BASETYPECLASSINFO", Meta, false},
		TR_TypeDesc:           {"TYPEDESC", Meta, false},
		TR_TypeCtorDesc:       {"TYPECTORDESC", Meta, false},
		TR_Foreign:            {"FOREIGN", Control, false},
		TR_Reference:          {"REFERENCE", Control, false},
		TR_StableCPointer:     {"STABLE_C_POINTER", Control, false},
		TR_Unknown:            {"UNKNOWN", Control, false},
	}
	for k, v := range m {
		ret[k] = v
	}
	return ret
}()

// ParseTypeCtorRep accepts either the Go name (TR_DUUserEq, or DUUserEq)
// or the runtime name (MR_TYPECTOR_REP_DU_USEREQ).
func ParseTypeCtorRep(x string) (TypeCtorRep, bool) {
	for _, r := range AllTypeCtorReps() {
		switch x {
		case r.String(), r.String()[3:], r.MercuryName():
			return r, true
		}
	}
	if strings.HasPrefix(x, mercuryPrefix) {
		return 0, false
	}
	for _, r := range AllTypeCtorReps() {
		if strings.EqualFold(x, infos[r].Suffix) {
			return r, true
		}
	}
	return 0, false
}
