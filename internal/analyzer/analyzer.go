// Package analyzer exposes the comparable-types check as a
// golang.org/x/tools/go/analysis pass, so it can run inside multichecker
// style drivers that already carry resolved type information.
package analyzer

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"

	"github.com/gnoverse/cmplint/internal/compare"
	"github.com/gnoverse/cmplint/internal/lints"
	tt "github.com/gnoverse/cmplint/internal/types"
)

// Analyzer reports comparisons whose operands are not meaningfully comparable.
// It uses the default configuration; drivers that need the allow toggles should
// go through the lint engine instead.
var Analyzer = &analysis.Analyzer{
	Name: "comparabletypes",
	Doc:  "flags comparison expressions whose operands are not meaningfully comparable",
	Run:  run,
}

func run(pass *analysis.Pass) (interface{}, error) {
	cfg := compare.Config{}
	for _, file := range pass.Files {
		ast.Inspect(file, func(n ast.Node) bool {
			expr, ok := n.(*ast.BinaryExpr)
			if !ok {
				return true
			}
			op, ok := comparisonSymbol(expr.Op)
			if !ok {
				return true
			}

			diag := compare.Evaluate(compare.ComparisonExpression{
				Operator: op,
				Left:     passOperandType(pass, expr.X),
				Right:    passOperandType(pass, expr.Y),
			}, cfg)
			if diag == nil {
				return true
			}

			pass.Report(analysis.Diagnostic{
				Pos:      expr.Pos(),
				End:      expr.End(),
				Category: "comparable-types",
				Message:  diag.Message(),
			})
			return true
		})
	}
	return nil, nil
}

func comparisonSymbol(tok token.Token) (string, bool) {
	switch tok {
	case token.EQL:
		return "==", true
	case token.NEQ:
		return "!=", true
	case token.LSS:
		return "<", true
	case token.GTR:
		return ">", true
	case token.LEQ:
		return "<=", true
	case token.GEQ:
		return ">=", true
	}
	return "", false
}

func passOperandType(pass *analysis.Pass, expr ast.Expr) compare.StaticType {
	if pass.TypesInfo == nil {
		return compare.AnyType()
	}
	t := pass.TypesInfo.TypeOf(expr)
	if t == nil {
		return compare.AnyType()
	}
	return lints.StaticTypeOf(t)
}

// RunAnalyzer type-checks a source string and runs the analyzer over it,
// converting every diagnostic into an Issue. It exists for tests and embedders
// that do not run a full analysis driver.
func RunAnalyzer(code string, a *analysis.Analyzer) ([]tt.Issue, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "src.go", code, parser.ParseComments)
	if err != nil {
		return nil, err
	}

	info := &types.Info{
		Types: make(map[ast.Expr]types.TypeAndValue),
		Uses:  make(map[*ast.Ident]types.Object),
		Defs:  make(map[*ast.Ident]types.Object),
	}
	conf := types.Config{
		Importer: importer.Default(),
		Error:    func(error) {},
	}
	pkg, _ := conf.Check("src", fset, []*ast.File{file}, info)

	var issues []tt.Issue
	pass := &analysis.Pass{
		Analyzer:  a,
		Fset:      fset,
		Files:     []*ast.File{file},
		Pkg:       pkg,
		TypesInfo: info,
		ResultOf:  make(map[*analysis.Analyzer]interface{}),
		Report: func(d analysis.Diagnostic) {
			// The category carries the canonical rule name, matching what
			// the engine path emits; the analyzer name is only a fallback.
			rule := d.Category
			if rule == "" {
				rule = a.Name
			}
			issues = append(issues, tt.Issue{
				Rule:     rule,
				Category: d.Category,
				Message:  d.Message,
				Start:    fset.Position(d.Pos),
				End:      fset.Position(d.End),
			})
		},
	}

	if _, err := a.Run(pass); err != nil {
		return nil, err
	}
	return issues, nil
}
