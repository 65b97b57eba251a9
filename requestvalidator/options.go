package requestvalidator

import (
	"fmt"

	"github.com/klangenk/open-api/oaserrors"
)

// Option is a functional option for configuring a Validator.
type Option func(*config) error

// config holds the configuration collected from options before
// compilation.
type config struct {
	parameters    []Parameter
	parametersSet bool
	requestBody   *RequestBody

	// schemas is the array form: standalone schemas each carrying an
	// "id" used for local $ref registration.
	schemas []map[string]any

	// definitions is the mapping form: merged into every compiled
	// schema document under "definitions".
	definitions map[string]any

	// componentSchemas is an OpenAPI v3 components map, registered
	// under "#/components/schemas/<id>".
	componentSchemas map[string]any

	// externalSchemas maps reference ids to schemas registered
	// verbatim with the validation engine.
	externalSchemas map[string]any

	customFormats    map[string]FormatValidator
	errorTransformer ErrorTransformer

	logger     Logger
	loggingKey string
}

func defaultConfig() *config {
	return &config{
		logger: NopLogger{},
	}
}

// validate checks the collected configuration for programmer errors.
// These are configuration errors, reported at construction, never at
// request time.
func (c *config) validate() error {
	if c.parametersSet && c.parameters == nil {
		return &oaserrors.ConfigError{Option: "parameters", Message: "parameters cannot be nil"}
	}
	for name, fn := range c.customFormats {
		if fn == nil {
			return &oaserrors.ConfigError{Option: "customFormats", Value: name, Message: "format validator cannot be nil"}
		}
	}
	if c.requestBody != nil && len(c.requestBody.Content) == 0 {
		return &oaserrors.ConfigError{Option: "requestBody", Message: "requestBody must declare at least one content media type"}
	}
	for i, schema := range c.schemas {
		if _, ok := schema["id"].(string); !ok {
			if _, ok := schema["$id"].(string); !ok {
				return &oaserrors.ConfigError{
					Option:  "schemas",
					Message: fmt.Sprintf("schema at index %d has no string id", i),
				}
			}
		}
	}
	return nil
}

// WithParameters sets the OpenAPI parameter list (v2 style, mutually
// usable alongside WithRequestBody). Passing nil is a configuration
// error.
func WithParameters(params []Parameter) Option {
	return func(c *config) error {
		c.parameters = params
		c.parametersSet = true
		return nil
	}
}

// WithRequestBody sets the OpenAPI v3 requestBody object.
func WithRequestBody(body *RequestBody) Option {
	return func(c *config) error {
		if body == nil {
			return &oaserrors.ConfigError{Option: "requestBody", Message: "requestBody cannot be nil"}
		}
		c.requestBody = body
		return nil
	}
}

// WithSchemas registers standalone schemas for local $ref resolution.
// Each schema must carry a string "id" (or "$id") naming the reference
// it answers.
func WithSchemas(schemas ...map[string]any) Option {
	return func(c *config) error {
		c.schemas = append(c.schemas, schemas...)
		return nil
	}
}

// WithDefinitions merges a name-to-schema mapping into every compiled
// schema document under "definitions", making "#/definitions/<name>"
// references resolvable.
func WithDefinitions(defs map[string]any) Option {
	return func(c *config) error {
		if c.definitions == nil {
			c.definitions = map[string]any{}
		}
		for name, schema := range defs {
			c.definitions[name] = schema
		}
		return nil
	}
}

// WithComponentSchemas registers an OpenAPI v3 components schema map.
// Each entry becomes resolvable as "#/components/schemas/<id>".
func WithComponentSchemas(schemas map[string]any) Option {
	return func(c *config) error {
		if c.componentSchemas == nil {
			c.componentSchemas = map[string]any{}
		}
		for id, schema := range schemas {
			c.componentSchemas[id] = schema
		}
		return nil
	}
}

// WithExternalSchemas registers schemas under caller-supplied reference
// ids, verbatim.
func WithExternalSchemas(schemas map[string]any) Option {
	return func(c *config) error {
		if c.externalSchemas == nil {
			c.externalSchemas = map[string]any{}
		}
		for id, schema := range schemas {
			c.externalSchemas[id] = schema
		}
		return nil
	}
}

// WithCustomFormats registers custom string format validators with the
// validation engine. A nil validator function is a configuration error.
func WithCustomFormats(formats map[string]FormatValidator) Option {
	return func(c *config) error {
		if c.customFormats == nil {
			c.customFormats = map[string]FormatValidator{}
		}
		for name, fn := range formats {
			c.customFormats[name] = fn
		}
		return nil
	}
}

// WithErrorTransformer sets a per-violation error rewriting hook. See
// ErrorTransformer.
func WithErrorTransformer(fn ErrorTransformer) Option {
	return func(c *config) error {
		c.errorTransformer = fn
		return nil
	}
}

// WithLogger sets the diagnostic logger. The default is NopLogger.
func WithLogger(logger Logger) Option {
	return func(c *config) error {
		if logger == nil {
			logger = NopLogger{}
		}
		c.logger = logger
		return nil
	}
}

// WithLoggingKey attaches an identifying attribute to every log line
// the validator emits, typically the operation id.
func WithLoggingKey(key string) Option {
	return func(c *config) error {
		c.loggingKey = key
		return nil
	}
}
