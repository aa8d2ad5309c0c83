package lints

import (
	"fmt"
	"go/ast"
	"go/token"
	"regexp"

	tt "github.com/gnoverse/cmplint/internal/types"
)

// pascalCaseRegex is the fixed pattern every checked declaration name must
// match.
var pascalCaseRegex = regexp.MustCompile(`^[A-Z][0-9A-Za-z]*$`)

// Friendly names for checked declaration kinds. DeclAbstractClass has no
// producer in the Go host but stays part of the set for embedders that feed
// declarations directly.
const (
	DeclClass         = "Class"
	DeclAbstractClass = "Abstract class"
	DeclInterface     = "Interface"
)

// IsPascalCase reports whether name satisfies the casing rule.
func IsPascalCase(name string) bool {
	return pascalCaseRegex.MatchString(name)
}

// DetectIdentifierCasing checks that named struct and interface type
// declarations, and variables bound to anonymous struct literals, use
// PascalCase identifiers. Declarations without a bound identifier are never
// checked.
func DetectIdentifierCasing(filename string, node *ast.File, fset *token.FileSet, severity tt.Severity) ([]tt.Issue, error) {
	var issues []tt.Issue

	report := func(friendlyName, name string, pos, end token.Pos) {
		issues = append(issues, tt.Issue{
			Rule:     "class-name",
			Filename: filename,
			Message:  fmt.Sprintf("%s name '%s' must be in PascalCase", friendlyName, name),
			Start:    fset.Position(pos),
			End:      fset.Position(end),
			Severity: severity,
		})
	}

	check := func(friendlyName string, ident *ast.Ident) {
		if ident == nil || ident.Name == "_" {
			return
		}
		if !IsPascalCase(ident.Name) {
			report(friendlyName, ident.Name, ident.Pos(), ident.End())
		}
	}

	ast.Inspect(node, func(n ast.Node) bool {
		switch decl := n.(type) {
		case *ast.TypeSpec:
			switch decl.Type.(type) {
			case *ast.StructType:
				check(DeclClass, decl.Name)
			case *ast.InterfaceType:
				check(DeclInterface, decl.Name)
			}
		case *ast.GenDecl:
			if decl.Tok != token.VAR && decl.Tok != token.CONST {
				return true
			}
			kind := declTokenName(decl.Tok)
			for _, spec := range decl.Specs {
				vs, ok := spec.(*ast.ValueSpec)
				if !ok {
					continue
				}
				for i, name := range vs.Names {
					if i < len(vs.Values) && isAnonymousStructLit(vs.Values[i]) {
						check(kind, name)
					}
				}
			}
		case *ast.AssignStmt:
			if decl.Tok != token.DEFINE {
				return true
			}
			for i, lhs := range decl.Lhs {
				ident, ok := lhs.(*ast.Ident)
				if !ok {
					continue
				}
				if i < len(decl.Rhs) && isAnonymousStructLit(decl.Rhs[i]) {
					check(declTokenName(token.VAR), ident)
				}
			}
		}
		return true
	})

	return issues, nil
}

func declTokenName(tok token.Token) string {
	if tok == token.CONST {
		return "Const"
	}
	return "Var"
}

// isAnonymousStructLit reports whether expr instantiates an anonymous struct
// type, the nearest Go analog of an anonymous class expression.
func isAnonymousStructLit(expr ast.Expr) bool {
	lit, ok := expr.(*ast.CompositeLit)
	if !ok {
		return false
	}
	_, ok = lit.Type.(*ast.StructType)
	return ok
}
