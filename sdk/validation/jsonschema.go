package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// FieldError describes the first schema violation found in a document.
type FieldError struct {
	Path    string
	Message string
}

func (e *FieldError) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// SchemaValidator validates raw JSON documents against a compiled schema.
type SchemaValidator struct {
	schema *jsonschema.Schema
}

// NewSchemaValidator compiles the schema source registered under name.
func NewSchemaValidator(name string, source []byte) (*SchemaValidator, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	if err := compiler.AddResource(name, bytes.NewReader(source)); err != nil {
		return nil, fmt.Errorf("add schema resource %s: %w", name, err)
	}

	schema, err := compiler.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", name, err)
	}

	return &SchemaValidator{schema: schema}, nil
}

// MustSchemaValidator is NewSchemaValidator for package level schemas that
// are embedded at build time.
func MustSchemaValidator(name string, source []byte) *SchemaValidator {
	v, err := NewSchemaValidator(name, source)
	if err != nil {
		panic(err)
	}
	return v
}

// Validate checks data against the schema. Malformed JSON and schema
// violations both come back as *FieldError.
func (v *SchemaValidator) Validate(data []byte) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return &FieldError{Message: fmt.Sprintf("malformed json: %s", err)}
	}

	if err := v.schema.Validate(doc); err != nil {
		return toFieldError(err)
	}

	return nil
}

func toFieldError(err error) error {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return &FieldError{Message: err.Error()}
	}

	leaf := firstLeaf(ve)
	return &FieldError{
		Path:    pointerToPath(leaf.InstanceLocation),
		Message: leaf.Message,
	}
}

// firstLeaf walks down the first cause chain to the most specific violation.
func firstLeaf(ve *jsonschema.ValidationError) *jsonschema.ValidationError {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return ve
}

// pointerToPath turns a JSON pointer such as "/title" into "title".
func pointerToPath(pointer string) string {
	return strings.ReplaceAll(strings.TrimPrefix(pointer, "/"), "/", ".")
}
