package transport

import "encoding/json"

// Envelope is the uniform wrapper every API response arrives in.
type Envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	StatusCode int             `json:"statusCode"`
	Errors     []string        `json:"errors,omitempty"`
	StackTrace []string        `json:"stackTrace,omitempty"`
	Results    json.RawMessage `json:"results,omitempty"`
}

// HasResults reports whether the envelope carries a payload.
func (e *Envelope) HasResults() bool {
	return len(e.Results) > 0 && string(e.Results) != "null"
}
