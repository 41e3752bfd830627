// Copyright 2026 The OpenConsole Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package transport

import "errors"

// Fallback messages for normalized errors.
const (
	// NetworkErrorMessage is used when the transport fails before any
	// response payload arrives.
	NetworkErrorMessage = "Network error. Please check your connection."

	genericErrorMessage = "An error occurred"
)

// APIError is the normalized form of every failed API call. Message is
// safe to show to the user verbatim.
type APIError struct {
	Message    string
	StatusCode int
	Errs       []string
}

// Error implements the error interface
func (e *APIError) Error() string { return e.Message }

// Messages returns every server-supplied error line, falling back to the
// single message.
func (e *APIError) Messages() []string {
	if len(e.Errs) > 0 {
		return append([]string(nil), e.Errs...)
	}
	return []string{e.Message}
}

// normalizeEnvelope builds an APIError from a failed response. The
// message prefers the envelope message, then the first server error line,
// then a generic fallback.
func normalizeEnvelope(httpStatus int, env *Envelope) *APIError {
	message := env.Message
	if message == "" && len(env.Errors) > 0 {
		message = env.Errors[0]
	}
	if message == "" {
		message = genericErrorMessage
	}

	status := env.StatusCode
	if status == 0 {
		status = httpStatus
	}

	errs := env.Errors
	if len(errs) == 0 {
		errs = []string{message}
	}

	return &APIError{
		Message:    message,
		StatusCode: status,
		Errs:       errs,
	}
}

// EnvelopeError normalizes an envelope that reports failure despite a
// 2xx transport status (success=false, or a missing expected payload).
func EnvelopeError(env *Envelope) *APIError {
	return normalizeEnvelope(env.StatusCode, env)
}

// normalizeTransport wraps a failure that produced no response payload.
func normalizeTransport(err error) *APIError {
	return &APIError{
		Message: NetworkErrorMessage,
		Errs:    []string{err.Error()},
	}
}

// ErrorMessage extracts a user-facing message from any error returned by
// the pipeline or the repositories.
func ErrorMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	if err != nil {
		return err.Error()
	}
	return genericErrorMessage
}

// ErrorStatusCode extracts the HTTP status from a normalized error, or
// zero when the error carries none.
func ErrorStatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
