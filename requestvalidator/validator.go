package requestvalidator

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/klangenk/open-api/internal/paramconv"
	"github.com/klangenk/open-api/internal/schemautil"
	"github.com/klangenk/open-api/oaserrors"
)

// missingBodyMessage is reported when a required body is absent. The
// hint matters: the usual cause is a missing body parser upstream.
const missingBodyMessage = "request.body was not present in the request. Is a body-parser being used?"

// Validator validates incoming HTTP requests against one OpenAPI
// operation. All schemas are normalized, reference-resolved, and
// compiled once at construction; Validate only executes the compiled
// predicates, so a single Validator is reusable across requests and is
// safe for concurrent use.
type Validator struct {
	logger           Logger
	errorTransformer ErrorTransformer

	// legacy body schema built from a v2-style "in: body" parameter
	body         *jsonschema.Schema
	bodySchema   map[string]any
	bodyRequired bool

	formData *jsonschema.Schema
	path     *jsonschema.Schema
	headers  *jsonschema.Schema
	query    *jsonschema.Schema

	// OpenAPI v3 requestBody content, one predicate per media type
	contentRequired bool
	contentKeys     []string
	content         map[string]*compiledContent
}

// compiledContent is one media type's compiled predicate plus the
// resolved schema reported when a required body is missing.
type compiledContent struct {
	schema    map[string]any
	predicate *jsonschema.Schema
}

// New builds a Validator for one operation. All schema normalization,
// local $ref inlining, and predicate compilation happens here; an
// unresolvable reference or invalid configuration fails construction
// rather than surfacing at request time.
func New(opts ...Option) (*Validator, error) {
	if len(opts) == 0 {
		return nil, &oaserrors.ConfigError{Message: "no options provided"}
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	logger := cfg.logger
	if cfg.loggingKey != "" {
		logger = logger.With("name", cfg.loggingKey)
	}

	sc, err := newSchemaCompiler(cfg)
	if err != nil {
		return nil, err
	}

	v := &Validator{
		logger:           logger,
		errorTransformer: cfg.errorTransformer,
	}

	groups := paramconv.Convert(convParams(cfg.parameters))
	if groups.Body != nil {
		v.bodySchema = sc.resolver.Resolve(schemautil.Normalize(groups.Body))
		v.bodyRequired = groups.BodyRequired
		if v.body, err = sc.compileEnvelope("body", "", v.bodySchema, groups.BodyRequired); err != nil {
			return nil, err
		}
	}
	if groups.FormData != nil {
		if v.formData, err = sc.compilePart("formData", schemautil.Normalize(groups.FormData)); err != nil {
			return nil, err
		}
	}
	if groups.Path != nil {
		if v.path, err = sc.compilePart("path", schemautil.Normalize(groups.Path)); err != nil {
			return nil, err
		}
	}
	if groups.Header != nil {
		if v.headers, err = sc.compilePart("headers", schemautil.Normalize(groups.Header)); err != nil {
			return nil, err
		}
	}
	if groups.Query != nil {
		if v.query, err = sc.compilePart("query", schemautil.Normalize(groups.Query)); err != nil {
			return nil, err
		}
	}

	if cfg.requestBody != nil {
		v.contentRequired = cfg.requestBody.Required
		v.content = make(map[string]*compiledContent, len(cfg.requestBody.Content))
		v.contentKeys = make([]string, 0, len(cfg.requestBody.Content))
		for key := range cfg.requestBody.Content {
			v.contentKeys = append(v.contentKeys, key)
		}
		sort.Strings(v.contentKeys)

		for i, key := range v.contentKeys {
			schema := schemautil.Normalize(cfg.requestBody.Content[key].Schema)
			if schema == nil {
				schema = map[string]any{}
			}
			schema = sc.resolver.Resolve(schema)
			predicate, err := sc.compileEnvelope("media-"+strconv.Itoa(i), key, schema, cfg.requestBody.Required)
			if err != nil {
				return nil, err
			}
			v.content[key] = &compiledContent{schema: schema, predicate: predicate}
		}
	}

	logger.Debug("request validator compiled",
		"legacyBody", v.body != nil,
		"mediaTypes", len(v.contentKeys),
		"formData", v.formData != nil,
		"path", v.path != nil,
		"headers", v.headers != nil,
		"query", v.query != nil,
	)
	return v, nil
}

// Validate runs the compiled predicates against the request's parts in
// a fixed order and classifies the outcome. It returns nil when the
// request is valid, a 400 Result for validation failures, or a 415
// Result when the Content-Type matches no configured media type.
//
// Outcomes are mutually exclusive and prioritized: field-level errors
// from any part win over a missing-required-body error, which wins
// over an unsupported-media-type error.
func (v *Validator) Validate(req *Request) *Result {
	if req == nil {
		req = &Request{}
	}

	var errs []ValidationError
	var schemaErr *ValidationError
	var mediaTypeErr *ValidationError

	if v.body != nil {
		if req.Body != nil {
			errs = append(errs, v.check(v.body, LocationBody, envelope(req.Body))...)
		} else if v.bodyRequired {
			schemaErr = &ValidationError{
				Location: LocationBody,
				Message:  missingBodyMessage,
				Schema:   v.bodySchema,
			}
		}
	}

	if len(v.content) > 0 {
		contentType := headerValue(req.Headers, "content-type")
		key, ok := matchMediaType(contentType, v.contentKeys, v.logger)
		switch {
		case ok:
			media := v.content[key]
			if req.Body != nil {
				errs = append(errs, v.check(media.predicate, LocationBody, envelope(req.Body))...)
			} else if v.contentRequired && schemaErr == nil {
				schemaErr = &ValidationError{
					Location: LocationBody,
					Message:  missingBodyMessage,
					Schema:   media.schema,
				}
			}
		case contentType != "":
			mediaTypeErr = &ValidationError{
				Message: "Unsupported Content-Type " + contentType,
			}
		case v.contentRequired:
			errs = append(errs, ValidationError{
				Location: LocationBody,
				Message:  "media type is not specified",
			})
		}
	}

	if schemaErr == nil && v.formData != nil {
		errs = append(errs, v.check(v.formData, LocationFormData, orEmpty(req.Body))...)
	}
	if v.path != nil {
		errs = append(errs, v.check(v.path, LocationPath, orEmptyMap(req.Params))...)
	}
	if v.headers != nil {
		errs = append(errs, v.check(v.headers, LocationHeaders, lowercaseKeys(req.Headers))...)
	}
	if v.query != nil {
		errs = append(errs, v.check(v.query, LocationQuery, orEmptyMap(req.Query))...)
	}

	switch {
	case len(errs) > 0:
		return &Result{Status: http.StatusBadRequest, Errors: errs}
	case schemaErr != nil:
		return &Result{Status: http.StatusBadRequest, Errors: []ValidationError{*schemaErr}}
	case mediaTypeErr != nil:
		return &Result{Status: http.StatusUnsupportedMediaType, Errors: []ValidationError{*mediaTypeErr}}
	}
	return nil
}

// check runs one compiled predicate and maps its violations.
func (v *Validator) check(predicate *jsonschema.Schema, location string, data any) []ValidationError {
	err := predicate.Validate(data)
	if err == nil {
		return nil
	}
	verr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		v.logger.Error("validation engine failure", "location", location, "error", err)
		return []ValidationError{{Location: location, Message: err.Error()}}
	}
	var out []ValidationError
	for _, leaf := range flatten(verr) {
		out = append(out, v.mapViolation(location, leaf)...)
	}
	return out
}

// envelope wraps a body value the way body schemas are compiled.
func envelope(body any) map[string]any {
	return map[string]any{"body": body}
}

// headerValue performs a case-insensitive header lookup and returns the
// value as a string.
func headerValue(headers map[string]any, name string) string {
	for key, value := range headers {
		if strings.EqualFold(key, name) {
			if s, ok := value.(string); ok {
				return s
			}
		}
	}
	return ""
}

// lowercaseKeys folds all header names to lowercase to match the
// compiled header schema, which is keyed by lowercase names.
func lowercaseKeys(headers map[string]any) map[string]any {
	out := make(map[string]any, len(headers))
	for key, value := range headers {
		out[strings.ToLower(key)] = value
	}
	return out
}

func orEmpty(v any) any {
	if v == nil {
		return map[string]any{}
	}
	return v
}

func orEmptyMap(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}

// convParams converts the public parameter type to the internal
// converter's input.
func convParams(params []Parameter) []paramconv.Parameter {
	if len(params) == 0 {
		return nil
	}
	out := make([]paramconv.Parameter, len(params))
	for i, p := range params {
		out[i] = paramconv.Parameter{
			Name:     p.Name,
			In:       p.In,
			Required: p.Required,
			Schema:   p.Schema,
		}
	}
	return out
}
