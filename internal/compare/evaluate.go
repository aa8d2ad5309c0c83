package compare

import "fmt"

// DiagnosticKind identifies the two findings the evaluator can produce.
type DiagnosticKind int

const (
	// NonComparableTypes: the operand kind-sets share no kind and no
	// fallback applies.
	NonComparableTypes DiagnosticKind = iota

	// InvalidTypeForOperator: the operands are comparable, but the operator
	// class rejects the governing kind under the active configuration.
	InvalidTypeForOperator
)

// ComparisonExpression is one comparison handed over by the host: the operator
// symbol and the resolved static type of each operand. It carries no identity;
// source placement stays with the host.
type ComparisonExpression struct {
	Operator string
	Left     StaticType
	Right    StaticType
}

// Diagnostic is the single finding Evaluate can produce for one expression.
type Diagnostic struct {
	Kind DiagnosticKind

	// populated for NonComparableTypes: the " | "-joined kind names of each
	// operand, deduplicated and in classification order.
	TypesLeft  string
	TypesRight string

	// populated for InvalidTypeForOperator
	Comparator string
	Type       string
}

// Message renders the diagnostic as a human-readable failure string.
func (d *Diagnostic) Message() string {
	if d.Kind == NonComparableTypes {
		return fmt.Sprintf("cannot compare type '%s' to type '%s'", d.TypesLeft, d.TypesRight)
	}
	return fmt.Sprintf("cannot use '%s' comparator for type '%s'", d.Comparator, d.Type)
}

// Evaluate classifies both operands, resolves the governing kind and applies
// the operator policy. It returns nil when the comparison is allowed and at
// most one diagnostic otherwise. When resolution fails the operator policy is
// not consulted. Operators that are not comparisons yield nil.
func Evaluate(expr ComparisonExpression, cfg Config) *Diagnostic {
	class, ok := ClassifyOperator(expr.Operator)
	if !ok {
		return nil
	}

	left := Classify(expr.Left)
	right := Classify(expr.Right)

	governing, comparable := Resolve(left, right)
	if !comparable {
		return &Diagnostic{
			Kind:       NonComparableTypes,
			TypesLeft:  left.String(),
			TypesRight: right.String(),
		}
	}

	if !Allowed(governing, class, cfg) {
		return &Diagnostic{
			Kind:       InvalidTypeForOperator,
			Comparator: expr.Operator,
			Type:       governing.String(),
		}
	}

	return nil
}
