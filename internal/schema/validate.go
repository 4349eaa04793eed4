package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ValidationError reports that an input or assembled output violates
// its schema. It is a caller-facing error, surfaced verbatim and
// never retried.
type ValidationError struct {
	// Stage is "input" or "result".
	Stage string

	// Err is the underlying schema violation or encoding failure.
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s validation failed: %v", e.Stage, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Compiled schemas. The schema constants are part of the program, so
// a compile failure is an implementation bug and panics at init.
var (
	inputSchema  = mustCompile("classification-input.schema.json", InputSchema)
	resultSchema = mustCompile("classification-result.schema.json", ResultSchema)
)

func mustCompile(name, raw string) *jsonschema.Schema {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("schema %s: parsing: %v", name, err))
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, doc); err != nil {
		panic(fmt.Sprintf("schema %s: adding resource: %v", name, err))
	}
	compiled, err := compiler.Compile(name)
	if err != nil {
		panic(fmt.Sprintf("schema %s: compiling: %v", name, err))
	}
	return compiled
}

// ValidateInput checks a value against the input schema. The value
// is marshaled to JSON first, so any struct with matching tags (or a
// raw map) may be passed.
func ValidateInput(v any) error {
	return validate("input", inputSchema, v)
}

// ValidateResult checks a value against the result schema.
func ValidateResult(v any) error {
	return validate("result", resultSchema, v)
}

func validate(stage string, sch *jsonschema.Schema, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return &ValidationError{Stage: stage, Err: fmt.Errorf("encoding: %w", err)}
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return &ValidationError{Stage: stage, Err: fmt.Errorf("decoding: %w", err)}
	}
	if err := sch.Validate(inst); err != nil {
		return &ValidationError{Stage: stage, Err: err}
	}
	return nil
}
