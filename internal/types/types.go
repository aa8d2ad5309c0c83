package types

import (
	"fmt"
	"go/token"
	"strings"

	"gopkg.in/yaml.v3"
)

// Issue represents a lint issue found in the code base.
type Issue struct {
	Rule       string
	Category   string
	Filename   string
	Message    string
	Suggestion string
	Note       string
	Start      token.Position
	End        token.Position
	Severity   Severity
}

// Severity is the reporting level of a rule. The zero value is SeverityError
// so that rules report at full strength unless configured down.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
	SeverityOff
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "WARNING"
	case SeverityInfo:
		return "INFO"
	case SeverityOff:
		return "OFF"
	default:
		return "ERROR"
	}
}

// MarshalYAML writes the severity in its lowercase config-file form.
func (s Severity) MarshalYAML() (interface{}, error) {
	return strings.ToLower(s.String()), nil
}

// UnmarshalYAML reads a severity from its config-file form.
func (s *Severity) UnmarshalYAML(value *yaml.Node) error {
	switch strings.ToLower(value.Value) {
	case "error":
		*s = SeverityError
	case "warning", "warn":
		*s = SeverityWarning
	case "info":
		*s = SeverityInfo
	case "off":
		*s = SeverityOff
	default:
		return fmt.Errorf("unknown severity %q", value.Value)
	}
	return nil
}

// ConfigRule is the per-rule section of the configuration file. The two allow
// toggles are only meaningful for the comparable-types rule; the config schema
// rejects them elsewhere.
type ConfigRule struct {
	Severity                   Severity `yaml:"severity"`
	AllowObjectEqualComparison bool     `yaml:"allow-object-equal-comparison,omitempty"`
	AllowStringOrderComparison bool     `yaml:"allow-string-order-comparison,omitempty"`
}
