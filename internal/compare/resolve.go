package compare

// Resolve selects the single kind that governs a comparison between two
// operand kind-sets. The second return is false when the operands share no
// kind and no fallback applies; such a comparison is not meaningful at all.
//
// Every branch is checked in both left/right directions, so resolution is
// symmetric: Resolve(l, r) always equals Resolve(r, l).
func Resolve(left, right KindSet) (Kind, bool) {
	overlap := intersect(left, right)
	if !overlap.Empty() {
		return overlap.Max(), true
	}

	// An unconstrained side is comparable to anything; the concrete side's
	// strictest kind governs the policy check.
	if left.Contains(KindAny) {
		return right.Max(), true
	}
	if right.Contains(KindAny) {
		return left.Max(), true
	}

	// A nullable value against a reference type counts as an object
	// comparison, subject to the object-equality toggle.
	if left.Contains(KindNullOrUndefined) && right.Contains(KindObject) {
		return KindObject, true
	}
	if right.Contains(KindNullOrUndefined) && left.Contains(KindObject) {
		return KindObject, true
	}

	return KindAny, false
}

func intersect(a, b KindSet) KindSet {
	var out KindSet
	for _, k := range a.Kinds() {
		if b.Contains(k) {
			out.Add(k)
		}
	}
	return out
}
