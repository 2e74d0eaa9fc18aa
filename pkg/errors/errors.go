package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// StepError indicates a step could not be constructed: the type is not
// registered or a parameter failed coercion. It always surfaces during the
// build phase, before any step has executed.
type StepError struct {
	StepType string
	Message  string
	Err      error
}

// NewStepError constructs a StepError for the given step type.
func NewStepError(stepType string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &StepError{StepType: stepType, Message: message, Err: err}
}

func (e *StepError) Error() string {
	if e == nil {
		return ""
	}
	if e.StepType != "" {
		return fmt.Sprintf("step error [%s]: %s", e.StepType, e.Message)
	}
	return fmt.Sprintf("step error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *StepError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NotFoundError reports a lookup of a definition that does not exist.
type NotFoundError struct {
	Kind string
	ID   string
}

// NewNotFoundError constructs a NotFoundError for the given definition kind.
func NewNotFoundError(kind, id string) error {
	return &NotFoundError{Kind: kind, ID: id}
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("unknown %s: %s", e.Kind, e.ID)
}
