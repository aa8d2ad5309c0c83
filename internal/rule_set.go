package internal

import (
	"go/ast"
	"go/token"

	"github.com/gnoverse/cmplint/internal/compare"
	"github.com/gnoverse/cmplint/internal/lints"
	tt "github.com/gnoverse/cmplint/internal/types"
)

/*
* Implement each lint rule as a separate struct
 */

// LintRule defines the interface for all lint rules.
type LintRule interface {
	// Check runs the lint rule on the given file and returns a slice of Issues.
	Check(filename string, node *ast.File, fset *token.FileSet) ([]tt.Issue, error)

	// Name returns the name of the lint rule.
	Name() string

	Severity() tt.Severity
	SetSeverity(tt.Severity)
}

// ComparableTypesRule flags comparisons whose operands do not share a
// comparable kind under the configured policy.
type ComparableTypesRule struct {
	severity tt.Severity
	cfg      compare.Config
}

func NewComparableTypesRule() LintRule {
	return &ComparableTypesRule{severity: tt.SeverityError}
}

func (r *ComparableTypesRule) Check(filename string, node *ast.File, fset *token.FileSet) ([]tt.Issue, error) {
	return lints.DetectComparableTypes(filename, node, fset, r.cfg, r.severity)
}

func (r *ComparableTypesRule) Name() string { return "comparable-types" }

func (r *ComparableTypesRule) Severity() tt.Severity     { return r.severity }
func (r *ComparableTypesRule) SetSeverity(s tt.Severity) { r.severity = s }

// SetConfig installs the allow toggles for this run.
func (r *ComparableTypesRule) SetConfig(cfg compare.Config) { r.cfg = cfg }

// ClassNameRule checks that type declarations and anonymous-struct variables
// use PascalCase identifiers.
type ClassNameRule struct {
	severity tt.Severity
}

func NewClassNameRule() LintRule {
	return &ClassNameRule{severity: tt.SeverityWarning}
}

func (r *ClassNameRule) Check(filename string, node *ast.File, fset *token.FileSet) ([]tt.Issue, error) {
	return lints.DetectIdentifierCasing(filename, node, fset, r.severity)
}

func (r *ClassNameRule) Name() string { return "class-name" }

func (r *ClassNameRule) Severity() tt.Severity     { return r.severity }
func (r *ClassNameRule) SetSeverity(s tt.Severity) { r.severity = s }
