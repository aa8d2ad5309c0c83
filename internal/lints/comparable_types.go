package lints

import (
	"fmt"
	"go/ast"
	"go/importer"
	"go/token"
	"go/types"

	"github.com/gnoverse/cmplint/internal/compare"
	tt "github.com/gnoverse/cmplint/internal/types"
)

// comparisonSymbols maps Go comparison tokens to the operator symbols the
// evaluator classifies. Every other token is not a comparison and is skipped.
var comparisonSymbols = map[token.Token]string{
	token.EQL: "==",
	token.NEQ: "!=",
	token.LSS: "<",
	token.GTR: ">",
	token.LEQ: "<=",
	token.GEQ: ">=",
}

// DetectComparableTypes flags comparison expressions whose operands do not
// share a meaningfully comparable kind, based on each operand's resolved
// static type rather than its syntax.
func DetectComparableTypes(filename string, node *ast.File, fset *token.FileSet, cfg compare.Config, severity tt.Severity) ([]tt.Issue, error) {
	info := &types.Info{
		Types: make(map[ast.Expr]types.TypeAndValue),
		Uses:  make(map[*ast.Ident]types.Object),
		Defs:  make(map[*ast.Ident]types.Object),
	}

	conf := types.Config{
		Importer: importer.Default(),
		Error:    func(error) {},
	}
	// The check error is discarded on purpose: partial type information is
	// still enough to classify most operands, and a hard failure here would
	// abort the whole lint run over an unrelated problem in the file.
	conf.Check("", fset, []*ast.File{node}, info)

	var issues []tt.Issue
	ast.Inspect(node, func(n ast.Node) bool {
		expr, ok := n.(*ast.BinaryExpr)
		if !ok {
			return true
		}
		op, ok := comparisonSymbols[expr.Op]
		if !ok {
			return true
		}

		diag := compare.Evaluate(compare.ComparisonExpression{
			Operator: op,
			Left:     operandType(info, expr.X),
			Right:    operandType(info, expr.Y),
		}, cfg)
		if diag == nil {
			return true
		}

		issue := tt.Issue{
			Rule:     "comparable-types",
			Filename: filename,
			Message:  diag.Message(),
			Start:    fset.Position(expr.Pos()),
			End:      fset.Position(expr.End()),
			Severity: severity,
		}
		if diag.Kind == compare.NonComparableTypes {
			issue.Note = fmt.Sprintf("left operand is '%s', right operand is '%s'", diag.TypesLeft, diag.TypesRight)
		}
		issues = append(issues, issue)
		return true
	})

	return issues, nil
}

// operandType maps a sub-expression's resolved type onto the tagged variant
// the comparison core consumes. Expressions the checker produced no type for
// are treated as unconstrained.
func operandType(info *types.Info, expr ast.Expr) compare.StaticType {
	t := info.TypeOf(expr)
	if t == nil {
		return compare.AnyType()
	}
	return StaticTypeOf(t)
}

// StaticTypeOf translates a go/types type into the comparison core's static
// type model. Named types classify by their underlying representation, so
// enum-style named constants land on their numeric or object backing.
func StaticTypeOf(t types.Type) compare.StaticType {
	switch u := t.(type) {
	case *types.Basic:
		info := u.Info()
		switch {
		case info&types.IsString != 0:
			return compare.StringType()
		case info&types.IsNumeric != 0:
			return compare.NumberType()
		case info&types.IsBoolean != 0:
			return compare.BooleanType()
		case u.Kind() == types.UntypedNil:
			return compare.NullType()
		case u.Kind() == types.Invalid:
			return compare.AnyType()
		default:
			return compare.ObjectType()
		}
	case *types.Union:
		members := make([]compare.StaticType, 0, u.Len())
		for i := 0; i < u.Len(); i++ {
			members = append(members, StaticTypeOf(u.Term(i).Type()))
		}
		return compare.UnionOf(members...)
	case *types.Interface:
		if u.Empty() {
			return compare.AnyType()
		}
		return compare.ObjectType()
	case *types.Named:
		return StaticTypeOf(u.Underlying())
	case *types.Alias:
		return StaticTypeOf(types.Unalias(u))
	case *types.TypeParam:
		// generic type parameters are not resolved; treat as unconstrained
		return compare.AnyType()
	default:
		return compare.ObjectType()
	}
}
