package requestvalidator

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/klangenk/open-api/oaserrors"
)

// FromHTTPRequest builds a Request from an *http.Request. JSON and
// url-encoded bodies are decoded; any other body is carried as a raw
// string. The request body is restored so downstream handlers can read
// it again. Path parameters are not part of the wire request, so the
// caller supplies them from its router.
func FromHTTPRequest(r *http.Request, pathParams map[string]any) (*Request, error) {
	req := &Request{
		Params:  pathParams,
		Headers: headerMap(r.Header),
		Query:   valuesMap(r.URL.Query()),
	}

	if r.Body == nil || r.Body == http.NoBody {
		return req, nil
	}
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, &oaserrors.ParseError{
			Source:  "http request body",
			Message: "failed to read body",
			Cause:   err,
		}
	}
	r.Body = io.NopCloser(bytes.NewReader(raw))
	if len(raw) == 0 {
		return req, nil
	}

	contentType := r.Header.Get("Content-Type")
	switch {
	case strings.Contains(contentType, "json"):
		var body any
		if err := json.Unmarshal(raw, &body); err != nil {
			return nil, &oaserrors.ParseError{
				Source:  "http request body",
				Message: "failed to decode json body",
				Cause:   err,
			}
		}
		req.Body = body
	case strings.Contains(contentType, "x-www-form-urlencoded"):
		form, err := url.ParseQuery(string(raw))
		if err != nil {
			return nil, &oaserrors.ParseError{
				Source:  "http request body",
				Message: "failed to decode form body",
				Cause:   err,
			}
		}
		req.Body = valuesMap(form)
	default:
		req.Body = string(raw)
	}
	return req, nil
}

// headerMap flattens header values, keeping the first value per name.
func headerMap(h http.Header) map[string]any {
	out := make(map[string]any, len(h))
	for name, values := range h {
		if len(values) > 0 {
			out[name] = values[0]
		}
	}
	return out
}

// valuesMap converts url.Values, keeping single values as strings and
// repeated values as slices.
func valuesMap(v url.Values) map[string]any {
	out := make(map[string]any, len(v))
	for name, values := range v {
		if len(values) == 1 {
			out[name] = values[0]
			continue
		}
		items := make([]any, len(values))
		for i, item := range values {
			items[i] = item
		}
		out[name] = items
	}
	return out
}
