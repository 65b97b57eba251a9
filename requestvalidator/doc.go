// Package requestvalidator validates HTTP requests against a single
// OpenAPI operation.
//
// A Validator is built once per operation and reused across requests.
// Construction compiles every schema up front: parameter schemas are
// grouped by location into object schemas, nullable and readOnly
// keywords are rewritten into standard JSON Schema, local references
// are resolved against the configured definitions and component
// schemas, and each request part gets a compiled predicate. Validation
// then only executes predicates, so a Validator is safe for concurrent
// use.
//
// # Basic Usage
//
// Configure the validator with an operation's parameters and request
// body:
//
//	v, err := requestvalidator.New(
//	    requestvalidator.WithParameters(params),
//	    requestvalidator.WithRequestBody(body),
//	    requestvalidator.WithComponentSchemas(components),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result := v.Validate(&requestvalidator.Request{
//	    Body:    decodedBody,
//	    Headers: headers,
//	    Params:  pathParams,
//	    Query:   query,
//	})
//	if result != nil {
//	    // result.Status is 400 or 415
//	    for _, e := range result.Errors {
//	        log.Printf("%s: %s", e.Path, e.Message)
//	    }
//	}
//
// A nil result means the request satisfies the operation. A Result with
// status 400 carries one located error per violation; status 415 means
// the Content-Type matched none of the operation's media types.
//
// # Configuration Sources
//
// Operations can also be loaded from YAML with WithOperationYAML, or
// converted from a kin-openapi document with FromKinOperation.
// FromHTTPRequest bridges from net/http, decoding JSON and url-encoded
// bodies.
package requestvalidator
