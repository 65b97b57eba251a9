// Package oaserrors provides structured error types for the open-api library.
//
// Import path: github.com/klangenk/open-api/oaserrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between different categories of errors and implement
// appropriate recovery strategies.
//
// # Error Types
//
// The package provides four core error types:
//
//   - [ParseError]: YAML/JSON parsing failures in operation fragments
//   - [ReferenceError]: $ref resolution failures at schema compile time
//   - [CompileError]: JSON Schema compilation failures
//   - [ConfigError]: Invalid configuration or input options
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrReference]: Matches any [ReferenceError]
//   - [ErrCompile]: Matches any [CompileError] or [ReferenceError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
// Check error category with errors.Is():
//
//	v, err := requestvalidator.New(requestvalidator.WithParameters(params))
//	if errors.Is(err, oaserrors.ErrConfig) {
//	    // Handle configuration error
//	}
//
// Extract error details with errors.As():
//
//	var refErr *oaserrors.ReferenceError
//	if errors.As(err, &refErr) {
//	    fmt.Printf("Failed to resolve ref: %s\n", refErr.Ref)
//	}
//
// # Error Chaining
//
// All error types support error chaining via the Cause field and Unwrap() method.
// This allows finding root causes through the standard error chain.
package oaserrors
