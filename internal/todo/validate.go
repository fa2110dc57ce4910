package todo

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed tasks.schema.json
var schemaJSON string

const schemaURL = "tasks.schema.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// ValidationError represents a validation error with context.
type ValidationError struct {
	Path string // path to the error location, e.g. "[2].createdAt"
	Err  error  // Underlying error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidationResult contains validation results.
type ValidationResult struct {
	Valid      bool
	Errors     []error
	Warnings   []string
	UsedSchema bool // true if JSON Schema validation was performed
}

// Schema returns the embedded JSON Schema for the persisted task list.
func Schema() string {
	return schemaJSON
}

// Validate checks a persisted task blob. It uses the embedded JSON Schema and
// falls back to minimal structural checks when the schema is unavailable.
func Validate(data []byte) *ValidationResult {
	result := &ValidationResult{
		Valid:    true,
		Errors:   make([]error, 0),
		Warnings: make([]string, 0),
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, &ValidationError{
			Err: fmt.Errorf("parse tasks: %w", err),
		})
		return result
	}

	schema, err := loadSchema()
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("JSON Schema validation not available, using minimal checks: %v", err))
		validateMinimal(data, result)
		return result
	}

	result.UsedSchema = true
	if err := schema.Validate(doc); err != nil {
		result.Valid = false
		appendSchemaErrors(result, err)
		return result
	}

	warnClockSkew(data, result)
	return result
}

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.AssertFormat = true
		if err := compiler.AddResource(schemaURL, strings.NewReader(schemaJSON)); err != nil {
			schemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}

// validateMinimal performs minimal validation without JSON Schema.
func validateMinimal(data []byte, result *ValidationResult) {
	var l List
	if err := json.Unmarshal(data, &l); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, &ValidationError{
			Err: fmt.Errorf("parse tasks: %w", err),
		})
		return
	}
	if l == nil {
		result.Valid = false
		result.Errors = append(result.Errors, &ValidationError{
			Err: fmt.Errorf("expected an array of tasks"),
		})
		return
	}

	for i := range l {
		if err := validateTaskMinimal(&l[i], fmt.Sprintf("[%d]", i)); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err)
		}
	}
	warnClockSkew(data, result)
}

// warnClockSkew records tasks whose editedAt precedes createdAt. A wall
// clock stepping back between the two stamps produces such tasks.
func warnClockSkew(data []byte, result *ValidationResult) {
	var l List
	if err := json.Unmarshal(data, &l); err != nil {
		return
	}
	for i := range l {
		if l[i].EditedAt != nil && l[i].EditedAt.Before(l[i].CreatedAt) {
			result.Warnings = append(result.Warnings, fmt.Sprintf("[%d].editedAt: before createdAt", i))
		}
	}
}

// validateTaskMinimal performs minimal task validation.
func validateTaskMinimal(task *Task, path string) *ValidationError {
	if strings.TrimSpace(task.Text) == "" {
		return &ValidationError{
			Path: path + ".text",
			Err:  fmt.Errorf("missing required field"),
		}
	}

	if task.CreatedAt.IsZero() {
		return &ValidationError{
			Path: path + ".createdAt",
			Err:  fmt.Errorf("missing required field"),
		}
	}

	return nil
}

func appendSchemaErrors(result *ValidationResult, err error) {
	if err == nil {
		return
	}

	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		result.Errors = append(result.Errors, err)
		return
	}

	collectSchemaErrors(result, ve)
}

func collectSchemaErrors(result *ValidationResult, err *jsonschema.ValidationError) {
	if err == nil {
		return
	}

	if len(err.Causes) == 0 {
		result.Errors = append(result.Errors, &ValidationError{
			Path: instancePath(err.InstanceLocation),
			Err:  fmt.Errorf("%s", err.Message),
		})
		return
	}

	for _, cause := range err.Causes {
		collectSchemaErrors(result, cause)
	}
}

// instancePath renders a schema instance location ("/2/createdAt") in the
// form ValidationError uses ("[2].createdAt").
func instancePath(ptr string) string {
	ptr = strings.TrimPrefix(strings.TrimPrefix(ptr, "#"), "/")
	if ptr == "" {
		return ""
	}

	var b strings.Builder
	for _, part := range strings.Split(ptr, "/") {
		part = strings.ReplaceAll(strings.ReplaceAll(part, "~1", "/"), "~0", "~")
		if part == "" {
			continue
		}
		if _, err := strconv.Atoi(part); err == nil {
			b.WriteString("[" + part + "]")
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}
