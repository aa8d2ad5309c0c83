// Package schema validates linter configuration documents before any rule
// settings are applied. Unknown rules and unknown rule settings are rejected
// here rather than silently ignored.
package schema

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schemas/config.json
var schemaFS embed.FS

// Error represents a single configuration validation error.
type Error struct {
	Path    string
	Message string
}

func (e Error) String() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return e.Message
}

// Validator validates configuration documents against the embedded schema.
type Validator struct {
	schema *jsonschema.Schema
}

// NewValidator compiles the embedded configuration schema.
func NewValidator() (*Validator, error) {
	data, err := schemaFS.ReadFile("schemas/config.json")
	if err != nil {
		return nil, fmt.Errorf("read embedded schema: %w", err)
	}

	var schemaDoc any
	if err := json.Unmarshal(data, &schemaDoc); err != nil {
		return nil, fmt.Errorf("parse embedded schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("config.json", schemaDoc); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}

	schema, err := c.Compile("config.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}

	return &Validator{schema: schema}, nil
}

// ValidateDocument validates an already-decoded configuration document. The
// document is round-tripped through JSON so YAML-decoded values carry the
// types the schema library expects.
func (v *Validator) ValidateDocument(doc any) []Error {
	if doc == nil {
		return nil
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return []Error{{Message: fmt.Sprintf("configuration is not representable as JSON: %v", err)}}
	}
	var normalized any
	if err := json.Unmarshal(data, &normalized); err != nil {
		return []Error{{Message: fmt.Sprintf("failed to normalize configuration: %v", err)}}
	}

	err = v.schema.Validate(normalized)
	if err == nil {
		return nil
	}

	validationErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return []Error{{Message: err.Error()}}
	}
	return collectErrors(validationErr)
}

// collectErrors recursively collects all leaf validation errors.
func collectErrors(ve *jsonschema.ValidationError) []Error {
	var errors []Error

	instancePath := "/" + strings.Join(ve.InstanceLocation, "/")
	if len(ve.InstanceLocation) == 0 {
		instancePath = ""
	}

	if len(ve.Causes) == 0 {
		if msg := ve.Error(); msg != "" {
			errors = append(errors, Error{Path: instancePath, Message: msg})
		}
		return errors
	}
	for _, cause := range ve.Causes {
		errors = append(errors, collectErrors(cause)...)
	}
	return errors
}
