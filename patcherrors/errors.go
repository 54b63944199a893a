package patcherrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrSecurity indicates a path traversed a reserved segment.
	ErrSecurity = errors.New("security violation")

	// ErrPathResolution indicates a path could not be resolved.
	ErrPathResolution = errors.New("path resolution error")

	// ErrUnsupportedOperation indicates an op the target container cannot perform.
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrUnknownOperation indicates an op outside add, remove, replace and move.
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")

	// ErrParse indicates a patch document could not be decoded.
	ErrParse = errors.New("parse error")

	// ErrValidation indicates a structurally invalid patch.
	ErrValidation = errors.New("validation error")
)

// SecurityError represents a path that traverses a reserved segment.
// The whole apply call is aborted when one is raised.
type SecurityError struct {
	// Path is the full JSON Pointer of the offending patch path
	Path string
	// Segment is the reserved segment that was encountered
	Segment string
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *SecurityError) Error() string {
	msg := "security violation"
	if e.Segment != "" {
		msg += fmt.Sprintf(": reserved segment %q", e.Segment)
	}
	if e.Path != "" {
		msg += " in path " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as SecurityError has no underlying cause.
func (e *SecurityError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *SecurityError) Is(target error) bool {
	return target == ErrSecurity
}

// PathError represents a path that does not resolve to an editable location.
type PathError struct {
	// Path is the full JSON Pointer of the patch path
	Path string
	// At is the pointer prefix where resolution stopped (may be empty)
	At string
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *PathError) Error() string {
	msg := "path resolution error"
	if e.Path != "" {
		msg += fmt.Sprintf(": path %q", e.Path)
	}
	if e.At != "" && e.At != e.Path {
		msg += fmt.Sprintf(" at %q", e.At)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *PathError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *PathError) Is(target error) bool {
	return target == ErrPathResolution
}

// OperationError represents an op that cannot be performed.
// IsUnknown distinguishes ops outside the closed set from ops
// that are merely undefined for the target container kind.
type OperationError struct {
	// Op is the operation name
	Op string
	// Kind is the target container kind (empty for unknown ops)
	Kind string
	// Path is the JSON Pointer of the patch path
	Path string
	// IsUnknown is true if Op is not a recognised operation
	IsUnknown bool
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *OperationError) Error() string {
	msg := "unsupported operation"
	if e.IsUnknown {
		msg = "unknown operation"
	}
	if e.Op != "" {
		msg += fmt.Sprintf(" %q", e.Op)
	}
	if e.Kind != "" {
		msg += " on " + e.Kind
	}
	if e.Path != "" {
		msg += fmt.Sprintf(" at %q", e.Path)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as OperationError has no underlying cause.
func (e *OperationError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
// Matches ErrUnknownOperation when IsUnknown is set and
// ErrUnsupportedOperation otherwise.
func (e *OperationError) Is(target error) bool {
	if e.IsUnknown {
		return target == ErrUnknownOperation
	}
	return target == ErrUnsupportedOperation
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// ParseError represents a failure to decode a patch document.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ValidationError represents a structurally invalid patch.
type ValidationError struct {
	// Index is the zero-based position of the patch in its list (-1 if unknown)
	Index int
	// Field is the patch field with the issue (e.g., "op", "from")
	Field string
	// Value is the problematic value (may be nil)
	Value any
	// Message describes the validation failure
	Message string
}

// Error returns a human-readable error message.
func (e *ValidationError) Error() string {
	msg := "validation error"
	if e.Index >= 0 {
		msg += fmt.Sprintf(" at patches[%d]", e.Index)
	}
	if e.Field != "" {
		msg += "." + e.Field
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as ValidationError has no underlying cause.
func (e *ValidationError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
