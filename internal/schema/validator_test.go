package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func validateYAML(t *testing.T, source string) []Error {
	t.Helper()

	v, err := NewValidator()
	require.NoError(t, err)

	var doc any
	require.NoError(t, yaml.Unmarshal([]byte(source), &doc))
	return v.ValidateDocument(doc)
}

func TestValidateDocument(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		valid  bool
	}{
		{
			name: "full configuration",
			source: `
name: myproject
rules:
  comparable-types:
    severity: error
    allow-object-equal-comparison: true
    allow-string-order-comparison: false
  class-name:
    severity: warning
`,
			valid: true,
		},
		{
			name:   "empty document",
			source: ``,
			valid:  true,
		},
		{
			name: "rule with no settings",
			source: `
rules:
  comparable-types:
`,
			valid: true,
		},
		{
			name: "unknown top-level key",
			source: `
extends: base
`,
			valid: false,
		},
		{
			name: "unknown rule",
			source: `
rules:
  no-such-rule:
    severity: error
`,
			valid: false,
		},
		{
			name: "unknown rule setting",
			source: `
rules:
  comparable-types:
    allow-everything: true
`,
			valid: false,
		},
		{
			name: "toggle on rule that has none",
			source: `
rules:
  class-name:
    allow-object-equal-comparison: true
`,
			valid: false,
		},
		{
			name: "invalid severity",
			source: `
rules:
  class-name:
    severity: fatal
`,
			valid: false,
		},
		{
			name: "severity must be a string",
			source: `
rules:
  comparable-types:
    severity: 2
`,
			valid: false,
		},
		{
			name: "toggle must be boolean",
			source: `
rules:
  comparable-types:
    allow-string-order-comparison: "yes"
`,
			valid: false,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			errs := validateYAML(t, tc.source)
			if tc.valid {
				assert.Empty(t, errs)
			} else {
				assert.NotEmpty(t, errs)
			}
		})
	}
}

func TestValidateDocumentReportsPath(t *testing.T) {
	t.Parallel()

	errs := validateYAML(t, "rules:\n  unknown-rule: {}\n")
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].String(), "rules")
}
