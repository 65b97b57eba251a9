package oaserrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestParseError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := &ParseError{
			Source:  "operation yaml",
			Message: "invalid syntax",
			Cause:   cause,
		}

		msg := err.Error()
		if msg != "parse error in operation yaml: invalid syntax: underlying error" {
			t.Errorf("unexpected error message: %s", msg)
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &ParseError{}
		if err.Error() != "parse error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &ParseError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})

	t.Run("Is matches ErrParse", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", &ParseError{Message: "bad yaml"})
		if !errors.Is(err, ErrParse) {
			t.Error("ParseError should match ErrParse")
		}
		if errors.Is(err, ErrConfig) {
			t.Error("ParseError should not match ErrConfig")
		}
	})
}

func TestReferenceError(t *testing.T) {
	t.Run("Error message with ref", func(t *testing.T) {
		err := &ReferenceError{Ref: "#/components/schemas/Pet", Message: "not registered"}
		want := "reference error: #/components/schemas/Pet: not registered"
		if err.Error() != want {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrReference and ErrCompile", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", &ReferenceError{Ref: "#/definitions/Pet"})
		if !errors.Is(err, ErrReference) {
			t.Error("ReferenceError should match ErrReference")
		}
		if !errors.Is(err, ErrCompile) {
			t.Error("ReferenceError should match ErrCompile")
		}
	})
}

func TestCompileError(t *testing.T) {
	t.Run("Error message with part and media type", func(t *testing.T) {
		cause := errors.New("invalid pattern")
		err := &CompileError{Part: "body", MediaType: "application/json", Cause: cause}
		want := "compile error for body (application/json): invalid pattern"
		if err.Error() != want {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with part only", func(t *testing.T) {
		err := &CompileError{Part: "query"}
		if err.Error() != "compile error for query" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrCompile", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", &CompileError{Part: "headers"})
		if !errors.Is(err, ErrCompile) {
			t.Error("CompileError should match ErrCompile")
		}
		if errors.Is(err, ErrReference) {
			t.Error("CompileError should not match ErrReference")
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("engine failure")
		err := &CompileError{Cause: cause}
		if !errors.Is(err, cause) {
			t.Error("CompileError should wrap its cause")
		}
	})
}

func TestConfigError(t *testing.T) {
	t.Run("Error message with option and value", func(t *testing.T) {
		err := &ConfigError{Option: "customFormats", Value: "uuid", Message: "format function is nil"}
		want := "configuration error for customFormats (value: uuid): format function is nil"
		if err.Error() != want {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &ConfigError{}
		if err.Error() != "configuration error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrConfig", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", &ConfigError{Option: "parameters"})
		if !errors.Is(err, ErrConfig) {
			t.Error("ConfigError should match ErrConfig")
		}
	})
}
