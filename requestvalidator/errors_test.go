package requestvalidator

import (
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstancePath(t *testing.T) {
	tests := []struct {
		pointer string
		want    string
	}{
		{"", ""},
		{"/", ""},
		{"/body", "body"},
		{"/body/name", "body.name"},
		{"/body/items/0/name", "body.items[0].name"},
		{"/0/name", "[0].name"},
		{"/a~1b/c~0d", "a/b.c~d"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, instancePath(tt.pointer), "pointer %q", tt.pointer)
	}
}

func TestStripBodyPrefix(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"body", ""},
		{"body.name", "name"},
		{"body[0].name", "[0].name"},
		{"bodyguard", "bodyguard"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, stripBodyPrefix(tt.path), "path %q", tt.path)
	}
}

func TestViolatedKeyword(t *testing.T) {
	assert.Equal(t, "required", violatedKeyword("/properties/body/required"))
	assert.Equal(t, "type", violatedKeyword("/items/type"))
	assert.Equal(t, "schema", violatedKeyword(""))
}

func TestFlatten(t *testing.T) {
	leafA := &jsonschema.ValidationError{Message: "a"}
	leafB := &jsonschema.ValidationError{Message: "b"}
	root := &jsonschema.ValidationError{
		Message: "root",
		Causes: []*jsonschema.ValidationError{
			{Message: "mid", Causes: []*jsonschema.ValidationError{leafA}},
			leafB,
		},
	}
	leaves := flatten(root)
	require.Len(t, leaves, 2)
	assert.Same(t, leafA, leaves[0])
	assert.Same(t, leafB, leaves[1])
}

func TestMapViolation(t *testing.T) {
	v := &Validator{logger: NopLogger{}}

	t.Run("maps a keyword violation", func(t *testing.T) {
		out := v.mapViolation(LocationQuery, &jsonschema.ValidationError{
			KeywordLocation:  "/properties/page/type",
			InstanceLocation: "/page",
			Message:          "expected string, but got number",
		})
		require.Len(t, out, 1)
		assert.Equal(t, ValidationError{
			Path:      "page",
			ErrorCode: "type.openapi.validation",
			Message:   "expected string, but got number",
			Location:  LocationQuery,
		}, out[0])
	})

	t.Run("fans out required violations per property", func(t *testing.T) {
		out := v.mapViolation(LocationBody, &jsonschema.ValidationError{
			KeywordLocation:  "/properties/body/required",
			InstanceLocation: "/body",
			Message:          "missing properties: 'name', 'age'",
		})
		require.Len(t, out, 2)
		assert.Equal(t, "name", out[0].Path)
		assert.Equal(t, "age", out[1].Path)
		assert.Equal(t, "required.openapi.validation", out[0].ErrorCode)
		assert.Equal(t, LocationBody, out[0].Location)
	})

	t.Run("surfaces the target schema for reference violations", func(t *testing.T) {
		out := v.mapViolation(LocationBody, &jsonschema.ValidationError{
			KeywordLocation:         "/properties/body/$ref",
			AbsoluteKeywordLocation: "request-body.json#/definitions/Pet",
			InstanceLocation:        "/body",
			Message:                 "doesn't validate with '#/definitions/Pet'",
		})
		require.Len(t, out, 1)
		assert.Empty(t, out[0].ErrorCode)
		assert.Equal(t, map[string]any{"$ref": "request-body.json#/definitions/Pet"}, out[0].Schema)
	})

	t.Run("applies the error transformer once per mapped error", func(t *testing.T) {
		calls := 0
		tv := &Validator{
			logger: NopLogger{},
			errorTransformer: func(mapped ValidationError, cause *jsonschema.ValidationError) ValidationError {
				calls++
				mapped.ErrorCode = "custom"
				return mapped
			},
		}
		out := tv.mapViolation(LocationQuery, &jsonschema.ValidationError{
			KeywordLocation:  "/required",
			InstanceLocation: "",
			Message:          "missing properties: 'a', 'b'",
		})
		require.Len(t, out, 2)
		assert.Equal(t, 2, calls)
		assert.Equal(t, "custom", out[0].ErrorCode)
	})
}
