package lints

import (
	"go/ast"
	"go/parser"
	"go/token"
)

// ParseFile parses a Go source file. When content is non-nil it is used as the
// source and filename only labels positions.
func ParseFile(filename string, content []byte) (*ast.File, *token.FileSet, error) {
	fset := token.NewFileSet()
	var src interface{}
	if content != nil {
		src = content
	}
	node, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, nil, err
	}
	return node, fset, nil
}
