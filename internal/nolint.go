package internal

import (
	"go/ast"
	"go/token"
	"strings"
)

const nolintPrefix = "//nolint"

// nolintScope represents a range in the code where nolint applies.
type nolintScope struct {
	start token.Position
	end   token.Position
	rules map[string]struct{} // empty => applies to all lint rules
}

// nolintManager maps filenames to the nolint scopes declared in them.
type nolintManager struct {
	scopes map[string][]nolintScope
}

// ParseNolintComments collects the nolint scopes of an AST file. A comment
// before the package clause suppresses the whole file; a comment directly
// above a declaration suppresses that declaration; anything else suppresses
// the statement on its own or the following line.
func ParseNolintComments(f *ast.File, fset *token.FileSet) *nolintManager {
	mgr := &nolintManager{
		scopes: make(map[string][]nolintScope, len(f.Comments)),
	}
	stmtByLine := indexStatementsByLine(f, fset)
	packageLine := fset.Position(f.Package).Line

	for _, cg := range f.Comments {
		for _, comment := range cg.List {
			if !strings.HasPrefix(comment.Text, nolintPrefix) {
				continue
			}
			scope := scopeForComment(comment, f, fset, stmtByLine, packageLine)
			filename := scope.start.Filename
			mgr.scopes[filename] = append(mgr.scopes[filename], scope)
		}
	}
	return mgr
}

func scopeForComment(
	comment *ast.Comment,
	f *ast.File,
	fset *token.FileSet,
	stmtByLine map[int]ast.Stmt,
	packageLine int,
) nolintScope {
	scope := nolintScope{
		rules: parseNolintRules(strings.TrimPrefix(comment.Text, nolintPrefix)),
	}
	pos := fset.Position(comment.Slash)

	if pos.Line < packageLine {
		scope.start = fset.Position(f.Pos())
		scope.end = fset.Position(f.End())
		return scope
	}

	if decl := declarationAfterLine(f, fset, pos.Line); decl != nil {
		declPos := fset.Position(decl.Pos())
		if declPos.Line == pos.Line+1 {
			scope.start = declPos
			scope.end = fset.Position(decl.End())
			return scope
		}
	}

	if stmt, ok := stmtByLine[pos.Line]; ok {
		scope.start = fset.Position(stmt.Pos())
		scope.end = fset.Position(stmt.End())
		return scope
	}
	if stmt, ok := stmtByLine[pos.Line+1]; ok {
		scope.start = fset.Position(stmt.Pos())
		scope.end = fset.Position(stmt.End())
		return scope
	}

	scope.start = pos
	scope.end = pos
	return scope
}

// parseNolintRules extracts the optional rule list after the colon, e.g.
// "//nolint:comparable-types,class-name". No colon means all rules.
func parseNolintRules(text string) map[string]struct{} {
	rules := make(map[string]struct{})
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, ":") {
		return rules
	}
	for _, rule := range strings.Split(text[1:], ",") {
		rule = strings.TrimSpace(rule)
		if rule != "" {
			rules[rule] = struct{}{}
		}
	}
	return rules
}

// indexStatementsByLine maps each line to the first statement starting on it.
func indexStatementsByLine(f *ast.File, fset *token.FileSet) map[int]ast.Stmt {
	stmtByLine := make(map[int]ast.Stmt)
	ast.Inspect(f, func(n ast.Node) bool {
		if n == nil {
			return false
		}
		if stmt, ok := n.(ast.Stmt); ok {
			line := fset.Position(stmt.Pos()).Line
			if _, exists := stmtByLine[line]; !exists {
				stmtByLine[line] = stmt
			}
		}
		return true
	})
	return stmtByLine
}

// declarationAfterLine finds the first top-level declaration at or after line.
func declarationAfterLine(f *ast.File, fset *token.FileSet, line int) ast.Decl {
	for _, decl := range f.Decls {
		if fset.Position(decl.Pos()).Line >= line {
			return decl
		}
	}
	return nil
}

// IsNolint checks if a given position and rule are nolinted.
func (m *nolintManager) IsNolint(pos token.Position, ruleName string) bool {
	scopes, ok := m.scopes[pos.Filename]
	if !ok {
		return false
	}
	for _, scope := range scopes {
		if pos.Line < scope.start.Line || pos.Line > scope.end.Line {
			continue
		}
		if len(scope.rules) == 0 {
			return true
		}
		if _, ok := scope.rules[ruleName]; ok {
			return true
		}
	}
	return false
}
