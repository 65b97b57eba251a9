// Package openapi is the root of the open-api module, which validates
// HTTP requests against OpenAPI operation definitions.
//
// # Overview
//
// The library consists of two packages:
//
//   - requestvalidator: Compile one operation's parameters and request
//     body into reusable predicates and validate incoming requests
//   - oaserrors: Shared error types and sentinels for parse,
//     reference, compile, and configuration failures
//
// # Quick Start
//
// Build a validator for an operation and validate a request:
//
//	import "github.com/klangenk/open-api/requestvalidator"
//
//	v, err := requestvalidator.New(
//	    requestvalidator.WithParameters(params),
//	    requestvalidator.WithRequestBody(body),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result := v.Validate(req)
//	if result != nil {
//	    // result.Status is 400 or 415
//	    for _, e := range result.Errors {
//	        fmt.Printf("%s: %s\n", e.Path, e.Message)
//	    }
//	}
//
// See the requestvalidator package documentation for configuration
// sources (plain Go values, YAML operation documents, kin-openapi
// operations) and the full error shape.
//
// # Additional Resources
//
//   - OpenAPI Specification: https://spec.openapis.org
//   - JSON Schema Specification: https://json-schema.org
//
// # License
//
// This library is released under the MIT License. See the LICENSE file
// in the repository for full details.
package openapi
