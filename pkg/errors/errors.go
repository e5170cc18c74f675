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

// ValidationError captures manifest validation issues.
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

// InvalidPathError reports a manifest entry path that is absolute, not in
// normalized form, or escapes the project root via parent-directory segments.
type InvalidPathError struct {
	Path   string
	Reason string
}

// NewInvalidPathError constructs an InvalidPathError.
func NewInvalidPathError(path, reason string) error {
	return &InvalidPathError{Path: path, Reason: reason}
}

func (e *InvalidPathError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("invalid path %q: %s", e.Path, e.Reason)
}

// DuplicatePathError reports two manifest entries targeting the same path.
type DuplicatePathError struct {
	Path string
}

// NewDuplicatePathError constructs a DuplicatePathError.
func NewDuplicatePathError(path string) error {
	return &DuplicatePathError{Path: path}
}

func (e *DuplicatePathError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("duplicate path %q: manifest entries must target distinct paths", e.Path)
}

// AlreadyExistsError reports that the target root exists and overwrite was
// not requested.
type AlreadyExistsError struct {
	Root string
}

// NewAlreadyExistsError constructs an AlreadyExistsError.
func NewAlreadyExistsError(root string) error {
	return &AlreadyExistsError{Root: root}
}

func (e *AlreadyExistsError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("root %q already exists (use overwrite to replace it)", e.Root)
}

// UndefinedVariableError reports a template placeholder with no context value.
type UndefinedVariableError struct {
	Variable string
	Path     string
}

// NewUndefinedVariableError constructs an UndefinedVariableError.
func NewUndefinedVariableError(variable, path string) error {
	return &UndefinedVariableError{Variable: variable, Path: path}
}

func (e *UndefinedVariableError) Error() string {
	if e == nil {
		return ""
	}
	if e.Path != "" {
		return fmt.Sprintf("undefined variable %q in template for %q", e.Variable, e.Path)
	}
	return fmt.Sprintf("undefined variable %q", e.Variable)
}

// IOError wraps an operating system failure while materializing an entry.
type IOError struct {
	Path string
	Op   string
	Err  error
}

// NewIOError constructs an IOError for the given operation and path.
func NewIOError(op, path string, err error) error {
	return &IOError{Path: path, Op: op, Err: err}
}

func (e *IOError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("io error: %s %q: %v", e.Op, e.Path, e.Err)
}

// Unwrap exposes the underlying OS error.
func (e *IOError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
