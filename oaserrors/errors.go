// Package oaserrors provides structured error types for the request
// validator.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - ParseError: YAML/JSON parsing failures in operation fragments
//   - ReferenceError: $ref resolution failures at schema compile time
//   - CompileError: JSON Schema compilation failures
//   - ConfigError: Invalid configuration or input options
//
// # Usage with errors.Is
//
//	v, err := requestvalidator.New(requestvalidator.WithParameters(params))
//	if err != nil {
//	    if errors.Is(err, oaserrors.ErrConfig) {
//	        // Programmer error: fix the configuration
//	    }
//	}
package oaserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrParse indicates a parsing failure occurred.
	ErrParse = errors.New("parse error")

	// ErrReference indicates a reference resolution failure.
	ErrReference = errors.New("reference error")

	// ErrCompile indicates a schema compilation failure.
	ErrCompile = errors.New("compile error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ParseError represents a failure to parse an operation fragment.
// This includes YAML/JSON deserialization errors and structural issues.
type ParseError struct {
	// Source is the source identifier (e.g., "operation yaml")
	Source string
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Source != "" {
		msg += " in " + e.Source
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

// ReferenceError represents a failure to resolve a $ref at schema
// compile time. The validation engine fails fast on unregistered
// references rather than deferring the failure to request time.
type ReferenceError struct {
	// Ref is the reference string that failed to resolve
	Ref string
	// Message provides additional context about the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ReferenceError) Error() string {
	msg := "reference error"
	if e.Ref != "" {
		msg += ": " + e.Ref
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
func (e *ReferenceError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// Matches both ErrReference and ErrCompile since an unresolved
// reference always surfaces as a compilation failure.
func (e *ReferenceError) Is(target error) bool {
	return target == ErrReference || target == ErrCompile
}

// CompileError represents a failure to compile a schema for one part of
// the request (body, headers, path, query, formData, or a request-body
// media type).
type CompileError struct {
	// Part identifies which request part's schema failed to compile
	Part string
	// MediaType is set when the failing schema belongs to a
	// request-body media type
	MediaType string
	// Message describes the compilation failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *CompileError) Error() string {
	msg := "compile error"
	if e.Part != "" {
		msg += " for " + e.Part
	}
	if e.MediaType != "" {
		msg += " (" + e.MediaType + ")"
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
func (e *CompileError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *CompileError) Is(target error) bool {
	return target == ErrCompile
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
