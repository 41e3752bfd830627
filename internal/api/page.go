package api

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/openconsole/openconsole/internal/transport"
)

// ListParams are the common pagination and ordering parameters accepted
// by list endpoints.
type ListParams struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string // "asc" or "desc"
}

func (p *ListParams) encode() string {
	if p == nil {
		return ""
	}
	values := url.Values{}
	if p.Page > 0 {
		values.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		values.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.SortBy != "" {
		values.Set("sortBy", p.SortBy)
	}
	if p.SortOrder != "" {
		values.Set("sortOrder", p.SortOrder)
	}
	return values.Encode()
}

// paginated is the wrapped list shape some endpoints return instead of a
// bare array.
type paginated[T any] struct {
	Data       []T `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// extractList normalizes a list payload: a bare array is used directly, a
// paginated object contributes its data field, anything else is empty.
func extractList[T any](raw json.RawMessage) []T {
	if len(raw) == 0 {
		return []T{}
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err == nil {
		return items
	}

	var page paginated[T]
	if err := json.Unmarshal(raw, &page); err == nil && page.Data != nil {
		return page.Data
	}

	return []T{}
}

// results decodes the payload of a successful envelope. Envelopes without
// success or without a payload become the repository-level error.
func results[T any](env *transport.Envelope) (T, error) {
	var out T
	if !env.Success || !env.HasResults() {
		return out, transport.EnvelopeError(env)
	}
	if err := json.Unmarshal(env.Results, &out); err != nil {
		return out, fmt.Errorf("failed to decode response payload: %w", err)
	}
	return out, nil
}

// confirm checks a payload-less envelope for success.
func confirm(env *transport.Envelope) error {
	if !env.Success {
		return transport.EnvelopeError(env)
	}
	return nil
}

// listResults decodes and normalizes a list payload.
func listResults[T any](env *transport.Envelope) ([]T, error) {
	if !env.Success || !env.HasResults() {
		return nil, transport.EnvelopeError(env)
	}
	return extractList[T](env.Results), nil
}
