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

// Package transport is the single outbound gateway for every API call the
// console makes. It applies an ordered list of request transforms (auth
// attachment, tenant scoping, request tagging, throttling), decodes the
// response envelope, normalizes failures, and recovers from expired
// access tokens with an at-most-once refresh-and-retry protocol.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"github.com/openconsole/openconsole/internal/authz"
	"github.com/openconsole/openconsole/internal/observability/logger"
	"github.com/openconsole/openconsole/internal/observability/metrics"
	"github.com/openconsole/openconsole/internal/session"
	"github.com/openconsole/openconsole/internal/tenantctx"
)

const refreshPath = "/auth/refresh"

// Navigator receives forced navigation when authentication becomes
// unrecoverable. The console UI redirects to the login view.
type Navigator interface {
	NavigateToLogin()
}

// Options configures the pipeline client.
type Options struct {
	// BaseURL is the versioned API root, e.g. "http://host/api/v1".
	BaseURL string

	Session *session.Store
	Tenants *tenantctx.Store

	// HTTPClient overrides the default instrumented client.
	HTTPClient *http.Client

	// Navigator is invoked after an unrecoverable refresh failure.
	Navigator Navigator

	Metrics *metrics.Recorder
	Timeout time.Duration

	// RequestsPerSecond enables the client-side throttle when positive.
	RequestsPerSecond float64
	Burst             int
}

// Client is the request pipeline.
type Client struct {
	baseURL    *url.URL
	http       *http.Client
	session    *session.Store
	tenants    *tenantctx.Store
	eval       *authz.Evaluator
	nav        Navigator
	metrics    *metrics.Recorder
	limiter    *rate.Limiter
	transforms []Transform

	// refresh deduplicates concurrent token refreshes: every 401 handler
	// in flight awaits the same refresh call instead of issuing its own.
	refresh singleflight.Group
}

// NewClient creates the pipeline client
func NewClient(opts Options) (*Client, error) {
	if opts.Session == nil {
		return nil, fmt.Errorf("session store is required")
	}
	if opts.Tenants == nil {
		return nil, fmt.Errorf("tenant store is required")
	}

	base, err := url.Parse(strings.TrimSuffix(opts.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", opts.BaseURL, err)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}

	var limiter *rate.Limiter
	if opts.RequestsPerSecond > 0 {
		burst := opts.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), burst)
	}

	c := &Client{
		baseURL: base,
		http:    httpClient,
		session: opts.Session,
		tenants: opts.Tenants,
		eval:    authz.NewEvaluator(opts.Session),
		nav:     opts.Navigator,
		metrics: opts.Metrics,
		limiter: limiter,
	}
	c.transforms = []Transform{
		c.attachAuth,
		c.injectTenant,
		c.requestID,
		c.throttle,
	}
	return c, nil
}

// Do applies the transforms and sends the request, returning the decoded
// envelope of a successful response or a normalized error.
func (c *Client) Do(ctx context.Context, req *Request) (*Envelope, error) {
	for _, transform := range c.transforms {
		if err := transform(ctx, req); err != nil {
			return nil, err
		}
	}
	return c.send(ctx, req)
}

// Get issues a GET request through the pipeline.
func (c *Client) Get(ctx context.Context, path string) (*Envelope, error) {
	return c.Do(ctx, NewRequest(http.MethodGet, path))
}

// Post issues a POST request with an optional JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) (*Envelope, error) {
	req := NewRequest(http.MethodPost, path)
	if body != nil {
		if _, err := req.WithBody(body); err != nil {
			return nil, err
		}
	}
	return c.Do(ctx, req)
}

// Put issues a PUT request with an optional JSON body.
func (c *Client) Put(ctx context.Context, path string, body any) (*Envelope, error) {
	req := NewRequest(http.MethodPut, path)
	if body != nil {
		if _, err := req.WithBody(body); err != nil {
			return nil, err
		}
	}
	return c.Do(ctx, req)
}

// Delete issues a DELETE request through the pipeline.
func (c *Client) Delete(ctx context.Context, path string) (*Envelope, error) {
	return c.Do(ctx, NewRequest(http.MethodDelete, path))
}

// send performs one HTTP round trip for an already-transformed request
// and drives the 401 recovery protocol.
func (c *Client) send(ctx context.Context, req *Request) (*Envelope, error) {
	httpReq, err := c.buildHTTPRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, normalizeTransport(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, normalizeTransport(err)
	}

	env := &Envelope{}
	if len(data) > 0 {
		// Ignore decode failures; a non-envelope body falls through to
		// the generic normalized error below.
		_ = json.Unmarshal(data, env)
	}

	c.metrics.RecordRequest(ctx, req.Method, req.Path, resp.StatusCode, float64(time.Since(start).Milliseconds()))

	if resp.StatusCode == http.StatusUnauthorized {
		return c.handleUnauthorized(ctx, req, resp.StatusCode, env)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, normalizeEnvelope(resp.StatusCode, env)
	}

	return env, nil
}

// handleUnauthorized runs the two-state retry machine: a fresh request
// refreshes once and resends itself; a retried request fails terminally.
func (c *Client) handleUnauthorized(ctx context.Context, req *Request, httpStatus int, env *Envelope) (*Envelope, error) {
	if req.retried {
		return nil, normalizeEnvelope(httpStatus, env)
	}
	req.retried = true

	if c.session.RefreshToken() == "" {
		return nil, normalizeEnvelope(httpStatus, env)
	}

	if err := c.refreshTokens(ctx); err != nil {
		// Unrecoverable: destroy the session locally and force the UI
		// back to the login view before surfacing the failure.
		c.session.Logout()
		if c.nav != nil {
			c.nav.NavigateToLogin()
		}
		slog.WarnContext(ctx, "token refresh failed, session cleared",
			logger.Component("transport"), logger.Error(err))
		return nil, err
	}

	// Resend the exact request, with only the credential patched. Tenant
	// scoping and other transforms stay as originally applied.
	req.Header.Set("Authorization", "Bearer "+c.session.AccessToken())
	return c.send(ctx, req)
}

// refreshTokens exchanges the refresh token for a new token pair through
// a dedicated, pipeline-bypassing call. Concurrent callers share a single
// in-flight refresh.
func (c *Client) refreshTokens(ctx context.Context) error {
	_, err, _ := c.refresh.Do("refresh", func() (any, error) {
		// Re-read inside the flight: a refresh that just completed on
		// another goroutine has already rotated the token.
		refreshToken := c.session.RefreshToken()
		if refreshToken == "" {
			return nil, &APIError{Message: "no refresh token", StatusCode: http.StatusUnauthorized}
		}

		body, err := json.Marshal(map[string]string{"refreshToken": refreshToken})
		if err != nil {
			return nil, fmt.Errorf("failed to encode refresh request: %w", err)
		}

		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL.String()+refreshPath, bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("failed to build refresh request: %w", err)
		}
		httpReq.Header.Set("Content-Type", "application/json")

		resp, err := c.http.Do(httpReq)
		if err != nil {
			c.metrics.RecordRefresh(ctx, false)
			return nil, normalizeTransport(err)
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			c.metrics.RecordRefresh(ctx, false)
			return nil, normalizeTransport(err)
		}

		env := &Envelope{}
		if len(data) > 0 {
			_ = json.Unmarshal(data, env)
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.Success || !env.HasResults() {
			c.metrics.RecordRefresh(ctx, false)
			return nil, normalizeEnvelope(resp.StatusCode, env)
		}

		var auth session.Auth
		if err := json.Unmarshal(env.Results, &auth); err != nil {
			c.metrics.RecordRefresh(ctx, false)
			return nil, fmt.Errorf("failed to decode refresh response: %w", err)
		}

		c.session.SetTokens(auth.AccessToken, auth.RefreshToken)
		c.metrics.RecordRefresh(ctx, true)
		slog.DebugContext(ctx, "access token refreshed", logger.Component("transport"))
		return nil, nil
	})
	return err
}

// buildHTTPRequest resolves the final URL (base + path + merged query)
// and encodes the body.
func (c *Client) buildHTTPRequest(ctx context.Context, req *Request) (*http.Request, error) {
	path := req.Path
	rawQuery := ""
	if i := strings.Index(path, "?"); i >= 0 {
		rawQuery = path[i+1:]
		path = path[:i]
	}

	u := *c.baseURL
	u.Path = c.baseURL.Path + path

	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		return nil, fmt.Errorf("invalid query in path %q: %w", req.Path, err)
	}
	for key, values := range req.Query {
		for _, v := range values {
			query.Add(key, v)
		}
	}
	u.RawQuery = query.Encode()

	var bodyReader io.Reader
	body, err := req.encodeBody()
	if err != nil {
		return nil, err
	}
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, u.String(), bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	for key, values := range req.Header {
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}
	if body != nil && httpReq.Header.Get("Content-Type") == "" {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	return httpReq, nil
}
