package requestvalidator

import (
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Parameter describes one OpenAPI operation parameter.
type Parameter struct {
	// Name is the parameter name. Header names are matched
	// case-insensitively.
	Name string `json:"name" yaml:"name"`

	// In is the parameter location: "path", "query", "header", "body",
	// or "formData".
	In string `json:"in" yaml:"in"`

	// Required marks the parameter as mandatory.
	Required bool `json:"required,omitempty" yaml:"required,omitempty"`

	// Schema constrains the parameter value. A nil schema validates
	// anything.
	Schema map[string]any `json:"schema,omitempty" yaml:"schema,omitempty"`
}

// MediaType is one entry of a request body's content map.
type MediaType struct {
	// Schema constrains the request body for this media type.
	Schema map[string]any `json:"schema,omitempty" yaml:"schema,omitempty"`
}

// RequestBody is an OpenAPI v3 requestBody object.
type RequestBody struct {
	// Required indicates the request must carry a body.
	Required bool `json:"required,omitempty" yaml:"required,omitempty"`

	// Content maps media type strings (e.g. "application/json",
	// "text/*") to their schemas.
	Content map[string]MediaType `json:"content" yaml:"content"`
}

// Request holds the already-parsed parts of an incoming HTTP request.
// Body, Params and Query values must be JSON-decoded shapes (maps,
// slices, strings, float64 numbers, bools, nil); a nil Body means the
// request carried none. Header lookup is case-insensitive.
type Request struct {
	Body    any
	Headers map[string]any
	Params  map[string]any
	Query   map[string]any
}

// Validation locations, as reported in ValidationError.Location.
const (
	LocationBody     = "body"
	LocationFormData = "formData"
	LocationHeaders  = "headers"
	LocationPath     = "path"
	LocationQuery    = "query"
)

// ValidationError is one request validation failure in the public error
// shape. Path is relative to the value root within Location (the
// internal body envelope prefix is stripped).
type ValidationError struct {
	Path      string `json:"path,omitempty"`
	ErrorCode string `json:"errorCode,omitempty"`
	Message   string `json:"message"`
	Location  string `json:"location,omitempty"`
	Schema    any    `json:"schema,omitempty"`
}

// Result is the outcome of a failed validation. Callers translate
// Status into an HTTP response code themselves; the validator performs
// no network I/O.
type Result struct {
	// Status is 400 for validation failures and 415 for an unsupported
	// media type.
	Status int `json:"status"`

	// Errors lists the individual failures, ordered body first, then
	// formData, path, headers, query.
	Errors []ValidationError `json:"errors"`
}

// Error returns a loggable one-line summary of the result.
func (r *Result) Error() string {
	if r == nil || len(r.Errors) == 0 {
		return ""
	}
	first := r.Errors[0]
	msg := first.Message
	if first.Path != "" {
		msg = first.Path + ": " + msg
	}
	if first.Location != "" {
		msg = first.Location + ": " + msg
	}
	if len(r.Errors) == 1 {
		return fmt.Sprintf("request validation failed (status %d): %s", r.Status, msg)
	}
	return fmt.Sprintf("request validation failed (status %d): %s (and %d more)", r.Status, msg, len(r.Errors)-1)
}

// ErrorTransformer rewrites one mapped validation error before it is
// added to a Result. It receives the default-mapped error and the raw
// engine violation it came from, and runs once per violation.
type ErrorTransformer func(mapped ValidationError, cause *jsonschema.ValidationError) ValidationError

// FormatValidator checks a value against a custom string format.
type FormatValidator func(value any) bool
