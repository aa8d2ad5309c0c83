package compare

// Classify reduces a resolved static type to its set of semantic kinds. Union
// members are classified independently and deduplicated; a non-union type
// yields a singleton. Classification is total: every input maps to at least
// one kind, and the result for a given type never varies between calls.
func Classify(t StaticType) KindSet {
	var set KindSet
	addKinds(&set, t)
	return set
}

func addKinds(set *KindSet, t StaticType) {
	if t.IsUnion() {
		for _, m := range t.Members {
			addKinds(set, m)
		}
		return
	}
	set.Add(classifyMember(t))
}

// classifyMember applies the classification rules in priority order; the first
// matching rule wins.
//
// KindEnum is reserved in the kind space and referenced by the equality policy,
// but no rule here produces it: enum-backed types arrive with their underlying
// representation and classify as number or object instead.
func classifyMember(t StaticType) Kind {
	switch {
	case t.Flags&FlagString != 0:
		return KindString
	case t.Flags&FlagNumber != 0:
		return KindNumber
	case t.Flags&FlagBoolean != 0:
		return KindBoolean
	case t.Flags&(FlagNull|FlagUndefined|FlagVoid) != 0:
		return KindNullOrUndefined
	case t.Flags&FlagAny != 0:
		return KindAny
	default:
		return KindObject
	}
}
