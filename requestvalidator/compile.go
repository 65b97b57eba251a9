package requestvalidator

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/klangenk/open-api/internal/schemautil"
	"github.com/klangenk/open-api/oaserrors"
)

// schemaCompiler assembles and compiles all schemas for one validator
// instance. The engine's schema registry is instance-owned: insert-once
// at construction, lookup-many across validate calls, never deleted
// from.
type schemaCompiler struct {
	engine   *jsonschema.Compiler
	resolver *schemautil.Resolver

	// definitions and components are normalized copies embedded into
	// every compiled document so fragment references
	// ("#/definitions/<name>", "#/components/schemas/<id>") resolve
	// within the document itself.
	definitions map[string]any
	components  map[string]any
}

// newSchemaCompiler builds the engine, registers every caller-supplied
// schema, and prepares the local reference registry for inlining.
// Unregistered references fail later at Compile time, never at request
// time.
func newSchemaCompiler(cfg *config) (*schemaCompiler, error) {
	engine := jsonschema.NewCompiler()
	engine.Draft = jsonschema.Draft2020
	engine.AssertFormat = true
	if engine.Formats == nil {
		engine.Formats = map[string]func(any) bool{}
	}
	for name, fn := range cfg.customFormats {
		engine.Formats[name] = fn
	}

	sc := &schemaCompiler{
		engine:      engine,
		definitions: map[string]any{},
		components:  map[string]any{},
	}
	registry := map[string]map[string]any{}

	for name, raw := range cfg.definitions {
		schema, ok := raw.(map[string]any)
		if !ok {
			return nil, &oaserrors.ConfigError{Option: "definitions", Value: name, Message: "schema must be an object"}
		}
		registry["#/definitions/"+name] = schema
		sc.definitions[name] = schemautil.Normalize(schema)
	}

	for id, raw := range cfg.componentSchemas {
		schema, ok := raw.(map[string]any)
		if !ok {
			return nil, &oaserrors.ConfigError{Option: "componentSchemas", Value: id, Message: "schema must be an object"}
		}
		registry["#/components/schemas/"+id] = schema
		sc.components[id] = schemautil.Normalize(schema)
	}

	for _, schema := range cfg.schemas {
		id := schemaID(schema)
		registry[id] = schema
		if err := sc.addResource(id, schemautil.Normalize(schema)); err != nil {
			return nil, err
		}
	}

	for id, raw := range cfg.externalSchemas {
		schema, ok := raw.(map[string]any)
		if !ok {
			return nil, &oaserrors.ConfigError{Option: "externalSchemas", Value: id, Message: "schema must be an object"}
		}
		registry[id] = schema
		if err := sc.addResource(id, schemautil.Normalize(schema)); err != nil {
			return nil, err
		}
	}

	sc.resolver = schemautil.NewResolver(registry)
	return sc, nil
}

// schemaID extracts the registration id from an array-form schema.
// Presence of the id is checked by config.validate.
func schemaID(schema map[string]any) string {
	if id, ok := schema["id"].(string); ok {
		return id
	}
	id, _ := schema["$id"].(string)
	return id
}

// addResource registers a standalone schema with the engine under its
// reference id. Fragment-style ids cannot name an engine resource; they
// stay resolvable through the inlining registry only.
func (sc *schemaCompiler) addResource(id string, schema map[string]any) error {
	if strings.Contains(id, "#") {
		return nil
	}
	raw, err := json.Marshal(schema)
	if err != nil {
		return &oaserrors.ReferenceError{Ref: id, Message: "schema is not serializable", Cause: err}
	}
	if err := sc.engine.AddResource(id, bytes.NewReader(raw)); err != nil {
		return &oaserrors.ReferenceError{Ref: id, Cause: err}
	}
	return nil
}

// document widens a part schema into a standalone compilable document
// carrying the registered definition maps.
func (sc *schemaCompiler) document(schema map[string]any) map[string]any {
	if len(sc.definitions) > 0 {
		schema["definitions"] = sc.definitions
	}
	if len(sc.components) > 0 {
		schema["components"] = map[string]any{"schemas": sc.components}
	}
	return schema
}

// compilePart compiles one request part's schema into a predicate.
func (sc *schemaCompiler) compilePart(part string, schema map[string]any) (*jsonschema.Schema, error) {
	return sc.compileDocument(part, "", sc.document(schema))
}

// compileEnvelope wraps schema in the {body: <schema>} envelope used
// for body validation and compiles it.
func (sc *schemaCompiler) compileEnvelope(part, mediaType string, schema map[string]any, required bool) (*jsonschema.Schema, error) {
	doc := map[string]any{
		"type":       "object",
		"properties": map[string]any{"body": schema},
	}
	if required {
		doc["required"] = []any{"body"}
	}
	return sc.compileDocument(part, mediaType, sc.document(doc))
}

func (sc *schemaCompiler) compileDocument(part, mediaType string, doc map[string]any) (*jsonschema.Schema, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, &oaserrors.CompileError{Part: part, MediaType: mediaType, Message: "schema is not serializable", Cause: err}
	}
	url := "request-" + part + ".json"
	if err := sc.engine.AddResource(url, bytes.NewReader(raw)); err != nil {
		return nil, &oaserrors.CompileError{Part: part, MediaType: mediaType, Cause: err}
	}
	compiled, err := sc.engine.Compile(url)
	if err != nil {
		return nil, &oaserrors.CompileError{Part: part, MediaType: mediaType, Cause: err}
	}
	return compiled, nil
}
