package spec

// AllTypeCtorReps returns every defined TypeCtorRep in numeric order.
func AllTypeCtorReps() (ret []TypeCtorRep) {
	for i := 0; i < NumTypeCtorReps; i++ {
		ret = append(ret, TypeCtorRep(i))
	}
	return ret
}

// AllSecTagLocations returns every defined SecTagLocation in numeric order.
func AllSecTagLocations() (ret []SecTagLocation) {
	for i := 0; i < NumSecTagLocations; i++ {
		ret = append(ret, SecTagLocation(i))
	}
	return ret
}

// UserEqVariant returns the representation used for the same layout when the
// type defines its own equality.
func UserEqVariant(r TypeCtorRep) (TypeCtorRep, bool) {
	switch r {
	case TR_Enum:
		return TR_EnumUserEq, true
	case TR_DU:
		return TR_DUUserEq, true
	case TR_NoTag:
		return TR_NoTagUserEq, true
	case TR_NoTagGround:
		return TR_NoTagGroundUserEq, true
	case TR_ReservedAddr:
		return TR_ReservedAddrUserEq, true
	default:
		return r, false
	}
}
