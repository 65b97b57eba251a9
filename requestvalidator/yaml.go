package requestvalidator

import (
	"go.yaml.in/yaml/v4"

	"github.com/klangenk/open-api/oaserrors"
)

// operationDoc is the subset of an OpenAPI operation object that the
// validator consumes.
type operationDoc struct {
	Parameters  []Parameter  `yaml:"parameters"`
	RequestBody *RequestBody `yaml:"requestBody"`
}

// WithOperationYAML configures the validator from a YAML operation
// object, as it would appear under a path item in an OpenAPI document.
// Only the parameters and requestBody fields are read; other operation
// fields are ignored.
func WithOperationYAML(data []byte) Option {
	return func(c *config) error {
		var op operationDoc
		if err := yaml.Unmarshal(data, &op); err != nil {
			return &oaserrors.ParseError{
				Source:  "operation yaml",
				Message: "failed to parse operation document",
				Cause:   err,
			}
		}
		if op.Parameters != nil {
			c.parameters = op.Parameters
			c.parametersSet = true
		}
		if op.RequestBody != nil {
			c.requestBody = op.RequestBody
		}
		return nil
	}
}
