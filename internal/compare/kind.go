package compare

import "strings"

// Kind is the semantic class a resolved static type falls into for comparison
// purposes. The set is closed: every type classifies to exactly one of these.
type Kind int

const (
	KindAny Kind = iota
	KindNumber
	KindEnum
	KindString
	KindBoolean
	KindNullOrUndefined
	KindObject
)

// kindRanks orders kinds for "strictest wins" tie-breaking when several kinds
// are simultaneously eligible. The table is kept separate from the constant
// declaration order above so that reordering the constants can never silently
// change resolution outcomes. Rank carries no permissiveness meaning.
var kindRanks = map[Kind]int{
	KindAny:             0,
	KindNumber:          1,
	KindEnum:            2,
	KindString:          3,
	KindBoolean:         4,
	KindNullOrUndefined: 5,
	KindObject:          6,
}

// Rank returns the tie-breaking rank of k.
func (k Kind) Rank() int {
	return kindRanks[k]
}

func (k Kind) String() string {
	switch k {
	case KindAny:
		return "any"
	case KindNumber:
		return "number"
	case KindEnum:
		return "enum"
	case KindString:
		return "string"
	case KindBoolean:
		return "boolean"
	case KindNullOrUndefined:
		return "null or undefined"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// KindSet is a deduplicated set of kinds. Insertion order is preserved so that
// joined diagnostic output stays stable across runs.
type KindSet struct {
	kinds []Kind
}

// NewKindSet builds a set from the given kinds, dropping duplicates.
func NewKindSet(kinds ...Kind) KindSet {
	var s KindSet
	for _, k := range kinds {
		s.Add(k)
	}
	return s
}

// Add inserts k unless it is already present.
func (s *KindSet) Add(k Kind) {
	if s.Contains(k) {
		return
	}
	s.kinds = append(s.kinds, k)
}

// Contains reports whether k is a member of the set.
func (s KindSet) Contains(k Kind) bool {
	for _, member := range s.kinds {
		if member == k {
			return true
		}
	}
	return false
}

// Empty reports whether the set has no members.
func (s KindSet) Empty() bool {
	return len(s.kinds) == 0
}

// Len returns the number of members.
func (s KindSet) Len() int {
	return len(s.kinds)
}

// Kinds returns the members in insertion order.
func (s KindSet) Kinds() []Kind {
	out := make([]Kind, len(s.kinds))
	copy(out, s.kinds)
	return out
}

// Max returns the member with the highest rank. The empty set yields KindAny.
func (s KindSet) Max() Kind {
	if s.Empty() {
		return KindAny
	}
	max := s.kinds[0]
	for _, k := range s.kinds[1:] {
		if k.Rank() > max.Rank() {
			max = k
		}
	}
	return max
}

// String joins the member names with " | " in insertion order, matching the
// way union types are rendered in diagnostics.
func (s KindSet) String() string {
	names := make([]string, len(s.kinds))
	for i, k := range s.kinds {
		names[i] = k.String()
	}
	return strings.Join(names, " | ")
}
