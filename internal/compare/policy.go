package compare

// OperatorClass groups comparison operators by the policy that applies to
// them: equality tolerates more kinds than ordering.
type OperatorClass int

const (
	ClassEquality OperatorClass = iota
	ClassOrdering
)

func (c OperatorClass) String() string {
	if c == ClassOrdering {
		return "ordering"
	}
	return "equality"
}

// ClassifyOperator reports the class of a comparison operator symbol. The
// second return is false for symbols that are not comparisons; those are
// never evaluated.
func ClassifyOperator(op string) (OperatorClass, bool) {
	switch op {
	case "==", "!=", "===", "!==":
		return ClassEquality, true
	case "<", ">", "<=", ">=":
		return ClassOrdering, true
	}
	return 0, false
}

// Config holds the rule toggles. Both default to false: object-class equality
// and string ordering are rejected unless explicitly allowed. The value is
// fixed for the lifetime of a lint run and threaded in explicitly.
type Config struct {
	AllowObjectEqualComparison bool `yaml:"allow-object-equal-comparison"`
	AllowStringOrderComparison bool `yaml:"allow-string-order-comparison"`
}

// Allowed reports whether operands governed by kind may be compared with
// operators of the given class under cfg.
func Allowed(kind Kind, class OperatorClass, cfg Config) bool {
	switch class {
	case ClassEquality:
		switch kind {
		case KindAny, KindNumber, KindEnum, KindString, KindBoolean:
			return true
		case KindNullOrUndefined, KindObject:
			return cfg.AllowObjectEqualComparison
		}
	case ClassOrdering:
		switch kind {
		case KindAny, KindNumber:
			return true
		case KindString:
			return cfg.AllowStringOrderComparison
		}
	}
	return false
}
