// Package schemautil normalizes OpenAPI-dialect schemas into a form a
// standard JSON Schema validator understands, and inlines local $ref
// nodes from an instance-owned schema registry.
//
// Schemas are represented as raw map[string]any trees, the shape they
// take after JSON or YAML decoding. All entry points deep-copy before
// rewriting so caller-owned schemas are never mutated.
package schemautil

import "github.com/mohae/deepcopy"

// Copy returns a deep copy of schema. A nil schema copies to nil.
func Copy(schema map[string]any) map[string]any {
	if schema == nil {
		return nil
	}
	copied, _ := deepcopy.Copy(schema).(map[string]any)
	return copied
}

// Normalize returns a copy of schema rewritten for a standard JSON Schema
// validator:
//
//   - "nullable: true" alongside "type" becomes a two-element type set
//     [type, "null"], or a oneOf over null and the original enum when an
//     enum is present.
//   - Property names whose schema carries "readOnly: true" are removed
//     from sibling "required" arrays, since a read-only field can never
//     be legitimately required on input.
//
// The rewrite reaches every nested schema node regardless of which
// composition keyword holds it (properties, items, allOf, oneOf, anyOf,
// additionalProperties, ...).
func Normalize(schema map[string]any) map[string]any {
	copied := Copy(schema)
	if copied == nil {
		return nil
	}
	normalizeNode(copied)
	return copied
}

// normalizeNode rewrites one node in place, then recurses into every
// object-valued and array-valued member.
func normalizeNode(node map[string]any) {
	rewriteNullable(node)
	StripReadOnlyRequired(node)
	for _, member := range node {
		normalizeMember(member)
	}
}

func normalizeMember(member any) {
	switch v := member.(type) {
	case map[string]any:
		normalizeNode(v)
	case []any:
		for _, item := range v {
			normalizeMember(item)
		}
	}
}

// rewriteNullable converts the OpenAPI v3 "nullable" keyword into
// standard JSON Schema on the given node.
func rewriteNullable(node map[string]any) {
	typ, hasType := node["type"]
	nullable, _ := node["nullable"].(bool)
	if !hasType || !nullable {
		return
	}

	if enum, hasEnum := node["enum"]; hasEnum {
		node["oneOf"] = []any{
			map[string]any{"type": "null"},
			map[string]any{"type": typ, "enum": enum},
		}
		delete(node, "type")
		delete(node, "enum")
		delete(node, "nullable")
		return
	}

	node["type"] = []any{typ, "null"}
	delete(node, "nullable")
}

// StripReadOnlyRequired removes, in place, every property name from the
// node's "required" array whose property schema carries "readOnly: true".
// Nodes without both "properties" and "required" are left untouched.
func StripReadOnlyRequired(node map[string]any) {
	props, ok := node["properties"].(map[string]any)
	if !ok {
		return
	}
	required := toStringSlice(node["required"])
	if required == nil {
		return
	}

	kept := make([]any, 0, len(required))
	for _, name := range required {
		if sub, ok := props[name].(map[string]any); ok {
			if readOnly, _ := sub["readOnly"].(bool); readOnly {
				continue
			}
		}
		kept = append(kept, name)
	}
	node["required"] = kept
}

// toStringSlice extracts a string slice from a decoded "required" value,
// which may be []any (JSON/YAML decode) or []string (hand-built schemas).
func toStringSlice(v any) []string {
	switch t := v.(type) {
	case []string:
		return t
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
