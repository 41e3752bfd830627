package transport

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Request is an outbound API call before transforms are applied. Path is
// relative to the versioned base URL and may carry its own query string;
// Query holds parameters added programmatically.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header

	// body is the structured JSON body, nil for body-less requests.
	body map[string]any

	// retried marks that this request already went through one refresh
	// cycle. At most one retry per request, ever.
	retried bool
}

// NewRequest creates a request for the pipeline
func NewRequest(method, path string) *Request {
	return &Request{
		Method: method,
		Path:   path,
		Query:  url.Values{},
		Header: http.Header{},
	}
}

// WithQuery adds a query parameter
func (r *Request) WithQuery(key, value string) *Request {
	r.Query.Set(key, value)
	return r
}

// WithBody attaches a JSON body. The value is flattened to a generic
// object so transforms can patch individual fields before send.
func (r *Request) WithBody(v any) (*Request, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}
	body := map[string]any{}
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, fmt.Errorf("request body must be a JSON object: %w", err)
	}
	r.body = body
	return r, nil
}

// SetBodyField sets one field of the structured body. No-op when the
// request has no body.
func (r *Request) SetBodyField(key string, value any) {
	if r.body == nil {
		return
	}
	r.body[key] = value
}

// HasBody reports whether a structured body is attached.
func (r *Request) HasBody() bool {
	return r.body != nil
}

// BodyField returns one field of the structured body.
func (r *Request) BodyField(key string) any {
	if r.body == nil {
		return nil
	}
	return r.body[key]
}

func (r *Request) encodeBody() ([]byte, error) {
	if r.body == nil {
		return nil, nil
	}
	return json.Marshal(r.body)
}
