package requestvalidator

import (
	"regexp"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// errorCodeSuffix is appended to the violated keyword to form the
// public error code, e.g. "required.openapi.validation".
const errorCodeSuffix = ".openapi.validation"

// quotedNames extracts the quoted property names from the engine's
// "missing properties: 'a', 'b'" message.
var quotedNames = regexp.MustCompile(`'([^']+)'`)

// flatten collects the leaf violations of an engine error tree in
// reported order. Intermediate nodes only describe which subschema
// failed; the leaves carry the actual keyword violations.
func flatten(err *jsonschema.ValidationError) []*jsonschema.ValidationError {
	if len(err.Causes) == 0 {
		return []*jsonschema.ValidationError{err}
	}
	var leaves []*jsonschema.ValidationError
	for _, cause := range err.Causes {
		leaves = append(leaves, flatten(cause)...)
	}
	return leaves
}

// mapViolation converts one engine violation into the public error
// shape and applies the caller's transformer, if any. A required-
// keyword violation fans out into one error per missing property, each
// with the property name appended to the path.
func (v *Validator) mapViolation(location string, cause *jsonschema.ValidationError) []ValidationError {
	keyword := violatedKeyword(cause.KeywordLocation)
	path := instancePath(cause.InstanceLocation)
	if location == LocationBody {
		path = stripBodyPrefix(path)
	}

	mapped := ValidationError{
		Path:      path,
		ErrorCode: keyword + errorCodeSuffix,
		Message:   cause.Message,
		Location:  location,
	}
	if keyword == "$ref" {
		// Reference violations surface the target schema instead of a
		// keyword error code.
		mapped.ErrorCode = ""
		mapped.Schema = map[string]any{"$ref": cause.AbsoluteKeywordLocation}
	}

	var out []ValidationError
	if keyword == "required" {
		for _, name := range quotedNames.FindAllStringSubmatch(cause.Message, -1) {
			e := mapped
			e.Path = joinPath(path, name[1])
			out = append(out, v.transform(e, cause))
		}
		if out != nil {
			return out
		}
	}
	return append(out, v.transform(mapped, cause))
}

func (v *Validator) transform(mapped ValidationError, cause *jsonschema.ValidationError) ValidationError {
	if v.errorTransformer == nil {
		return mapped
	}
	return v.errorTransformer(mapped, cause)
}

// violatedKeyword returns the last segment of a keyword location
// pointer, i.e. the JSON Schema keyword that failed.
func violatedKeyword(keywordLocation string) string {
	segments := strings.Split(keywordLocation, "/")
	keyword := unescapePointer(segments[len(segments)-1])
	if keyword == "" {
		return "schema"
	}
	return keyword
}

// instancePath converts an engine instance location (a JSON Pointer)
// into the public dot/bracket path form: "/body/items/0/name" becomes
// "body.items[0].name".
func instancePath(pointer string) string {
	if pointer == "" || pointer == "/" {
		return ""
	}
	var b strings.Builder
	for _, segment := range strings.Split(strings.TrimPrefix(pointer, "/"), "/") {
		segment = unescapePointer(segment)
		if isIndex(segment) {
			b.WriteString("[")
			b.WriteString(segment)
			b.WriteString("]")
			continue
		}
		if b.Len() > 0 {
			b.WriteString(".")
		}
		b.WriteString(segment)
	}
	return b.String()
}

// stripBodyPrefix removes the internal {body: ...} envelope prefix so
// body paths are relative to the validated payload.
func stripBodyPrefix(path string) string {
	switch {
	case path == "body":
		return ""
	case strings.HasPrefix(path, "body."):
		return path[len("body."):]
	case strings.HasPrefix(path, "body["):
		return path[len("body"):]
	}
	return path
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func unescapePointer(segment string) string {
	segment = strings.ReplaceAll(segment, "~1", "/")
	return strings.ReplaceAll(segment, "~0", "~")
}

func isIndex(segment string) bool {
	if segment == "" {
		return false
	}
	for _, r := range segment {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
