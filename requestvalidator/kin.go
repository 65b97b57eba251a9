package requestvalidator

import (
	"encoding/json"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/klangenk/open-api/oaserrors"
)

// FromKinOperation configures the validator from a kin-openapi
// operation, typically obtained from a loaded openapi3.T document. The
// operation's parameters and request body are converted through their
// JSON form, so $ref values that were not resolved during loading are
// carried over as-is and must be satisfied via WithComponentSchemas or
// WithDefinitions.
func FromKinOperation(op *openapi3.Operation) Option {
	return func(c *config) error {
		if op == nil {
			return &oaserrors.ConfigError{
				Option:  "FromKinOperation",
				Message: "operation must not be nil",
			}
		}
		if op.Parameters != nil {
			params, err := roundTrip[[]Parameter](op.Parameters)
			if err != nil {
				return &oaserrors.ParseError{
					Source:  "kin operation parameters",
					Message: "failed to convert parameters",
					Cause:   err,
				}
			}
			c.parameters = params
			c.parametersSet = true
		}
		if op.RequestBody != nil {
			body, err := roundTrip[*RequestBody](op.RequestBody)
			if err != nil {
				return &oaserrors.ParseError{
					Source:  "kin operation requestBody",
					Message: "failed to convert request body",
					Cause:   err,
				}
			}
			c.requestBody = body
		}
		return nil
	}
}

// roundTrip converts between type representations via JSON.
func roundTrip[T any](v any) (T, error) {
	var out T
	raw, err := json.Marshal(v)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, err
	}
	return out, nil
}
