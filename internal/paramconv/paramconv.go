// Package paramconv converts an array of OpenAPI operation parameters
// into per-location JSON Schemas, keyed by parameter name, ready for
// compilation by a JSON Schema validator.
//
// It is a pure transformation: inputs are never mutated and the output
// groups share no structure with the input beyond the individual
// parameter schemas themselves (callers deep-copy at the compilation
// boundary).
package paramconv

import "strings"

// Parameter describes one OpenAPI operation parameter.
type Parameter struct {
	// Name is the parameter name. Header names are matched
	// case-insensitively.
	Name string

	// In is the parameter location: "path", "query", "header", "body",
	// or "formData".
	In string

	// Required marks the parameter as mandatory.
	Required bool

	// Schema constrains the parameter value. A nil schema validates
	// anything.
	Schema map[string]any
}

// Parameter locations.
const (
	InBody     = "body"
	InFormData = "formData"
	InHeader   = "header"
	InPath     = "path"
	InQuery    = "query"
)

// Groups holds the per-location schemas derived from a parameter list.
// Location schemas are object schemas whose properties are keyed by
// parameter name; Body holds the single legacy body parameter's schema
// directly. A nil entry means no parameters were declared for that
// location.
type Groups struct {
	Body         map[string]any
	BodyRequired bool
	FormData     map[string]any
	Header       map[string]any
	Path         map[string]any
	Query        map[string]any
}

// Convert groups a parameter list into per-location schemas. Header
// parameter names are lowercased, both as property keys and in the
// required array, because HTTP header names are case-insensitive.
// Parameters with an unrecognized location are ignored.
func Convert(params []Parameter) Groups {
	var groups Groups
	formData := newGroup()
	header := newGroup()
	path := newGroup()
	query := newGroup()

	for _, p := range params {
		switch p.In {
		case InBody:
			groups.Body = p.Schema
			if groups.Body == nil {
				groups.Body = map[string]any{}
			}
			groups.BodyRequired = p.Required
		case InFormData:
			formData.add(p.Name, p)
		case InHeader:
			header.add(strings.ToLower(p.Name), p)
		case InPath:
			path.add(p.Name, p)
		case InQuery:
			query.add(p.Name, p)
		}
	}

	groups.FormData = formData.schema()
	groups.Header = header.schema()
	groups.Path = path.schema()
	groups.Query = query.schema()
	return groups
}

// group accumulates the properties and required names for one location.
type group struct {
	properties map[string]any
	required   []any
}

func newGroup() *group {
	return &group{properties: map[string]any{}}
}

func (g *group) add(key string, p Parameter) {
	schema := p.Schema
	if schema == nil {
		schema = map[string]any{}
	}
	g.properties[key] = schema
	if p.Required {
		g.required = append(g.required, key)
	}
}

// schema materializes the accumulated group as an object schema, or nil
// when the location had no parameters.
func (g *group) schema() map[string]any {
	if len(g.properties) == 0 {
		return nil
	}
	out := map[string]any{
		"type":       "object",
		"properties": g.properties,
	}
	if len(g.required) > 0 {
		out["required"] = g.required
	}
	return out
}
