package formatter

import (
	"go/token"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/gnoverse/cmplint/internal"
	tt "github.com/gnoverse/cmplint/internal/types"
)

func init() {
	color.NoColor = true
}

func TestGenerateFormattedIssueComparator(t *testing.T) {
	snippet := &internal.SourceCode{Lines: []string{
		"package main",
		"",
		"func cmp(a, b string) bool {",
		"\treturn a < b",
		"}",
	}}

	issue := tt.Issue{
		Rule:     "comparable-types",
		Filename: "main.go",
		Message:  "cannot use '<' comparator for type 'string'",
		Start:    token.Position{Line: 4, Column: 9},
		End:      token.Position{Line: 4, Column: 14},
		Severity: tt.SeverityError,
	}

	expected := "error: comparable-types\n" +
		" --> main.go:4:9\n" +
		"  |\n" +
		"4 | return a < b\n" +
		"  |        ~~~~~~\n" +
		"  = cannot use '<' comparator for type 'string'\n" +
		"\n"

	assert.Equal(t, expected, GenerateFormattedIssue([]tt.Issue{issue}, snippet))
}

func TestGenerateFormattedIssueOperandNote(t *testing.T) {
	snippet := &internal.SourceCode{Lines: []string{
		"package main",
		"",
		"func mixed(a int, b string) bool {",
		"\treturn a == b",
		"}",
	}}

	issue := tt.Issue{
		Rule:     "comparable-types",
		Filename: "main.go",
		Message:  "cannot compare type 'number' to type 'string'",
		Note:     "left operand is 'number', right operand is 'string'",
		Start:    token.Position{Line: 4, Column: 9},
		End:      token.Position{Line: 4, Column: 15},
		Severity: tt.SeverityError,
	}

	expected := "error: comparable-types\n" +
		" --> main.go:4:9\n" +
		"  |\n" +
		"4 | return a == b\n" +
		"  |        ~~~~~~~\n" +
		"  = cannot compare type 'number' to type 'string'\n" +
		"  | left operand is 'number', right operand is 'string'\n" +
		"\n"

	assert.Equal(t, expected, GenerateFormattedIssue([]tt.Issue{issue}, snippet))
}

func TestGenerateFormattedIssueClassName(t *testing.T) {
	snippet := &internal.SourceCode{Lines: []string{
		"package main",
		"",
		"type badName struct{ X int }",
	}}

	issue := tt.Issue{
		Rule:     "class-name",
		Filename: "main.go",
		Message:  "Class name 'badName' must be in PascalCase",
		Start:    token.Position{Line: 3, Column: 6},
		End:      token.Position{Line: 3, Column: 13},
		Severity: tt.SeverityWarning,
	}

	expected := "warning: class-name\n" +
		" --> main.go:3:6\n" +
		"  |\n" +
		"3 | type badName struct{ X int }\n" +
		"  |      ~~~~~~~~\n" +
		"  = Class name 'badName' must be in PascalCase\n" +
		"\n"

	assert.Equal(t, expected, GenerateFormattedIssue([]tt.Issue{issue}, snippet))
}

func TestGenerateFormattedIssueMultiple(t *testing.T) {
	snippet := &internal.SourceCode{Lines: []string{
		"package main",
		"",
		"var a = 1 < 2",
	}}

	issues := []tt.Issue{
		{
			Rule:     "comparable-types",
			Filename: "main.go",
			Message:  "first",
			Start:    token.Position{Line: 3, Column: 9},
			End:      token.Position{Line: 3, Column: 14},
			Severity: tt.SeverityError,
		},
		{
			Rule:     "class-name",
			Filename: "main.go",
			Message:  "second",
			Start:    token.Position{Line: 3, Column: 5},
			End:      token.Position{Line: 3, Column: 6},
			Severity: tt.SeverityWarning,
		},
	}

	out := GenerateFormattedIssue(issues, snippet)
	assert.Contains(t, out, "error: comparable-types")
	assert.Contains(t, out, "warning: class-name")
	assert.Contains(t, out, "first")
	assert.Contains(t, out, "second")
}

func TestCalculateVisualColumn(t *testing.T) {
	tests := []struct {
		line     string
		column   int
		expected int
	}{
		{"hello", 1, 0},
		{"hello", 3, 2},
		{"\thello", 2, 8},
		{"\thello", 3, 9},
		{"a\tb", 3, 8},
		{"", 1, 0},
		{"hello", -1, 0},
	}

	for _, tc := range tests {
		got := calculateVisualColumn(tc.line, tc.column)
		assert.Equal(t, tc.expected, got, "line %q column %d", tc.line, tc.column)
	}
}

func TestFindCommonIndent(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		expected string
	}{
		{"no indent", []string{"a", "b"}, ""},
		{"tab indent", []string{"\ta", "\tb"}, "\t"},
		{"mixed depth", []string{"\t\ta", "\tb"}, "\t"},
		{"empty lines ignored", []string{"", "\ta", ""}, "\t"},
		{"no lines", nil, ""},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, findCommonIndent(tc.lines), tc.name)
	}
}
