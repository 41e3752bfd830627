package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Config holds metrics configuration
type Config struct {
	Enabled bool
}

// Recorder records client-side request metrics. All methods are safe on a
// nil receiver so instrumentation stays optional.
type Recorder struct {
	requests  metric.Int64Counter
	refreshes metric.Int64Counter
	duration  metric.Float64Histogram
}

// New creates a new metrics recorder
func New(ctx context.Context, cfg Config, serviceName string) (*Recorder, error) {
	name := serviceName
	if !cfg.Enabled {
		name = "noop"
	}
	meter := otel.Meter(name)

	requests, err := meter.Int64Counter(
		"console.client.requests",
		metric.WithDescription("API requests issued by the console client"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create request counter: %w", err)
	}

	refreshes, err := meter.Int64Counter(
		"console.client.token_refreshes",
		metric.WithDescription("Refresh-endpoint calls triggered by 401 responses"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create refresh counter: %w", err)
	}

	duration, err := meter.Float64Histogram(
		"console.client.request_duration",
		metric.WithDescription("API request duration"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}

	return &Recorder{
		requests:  requests,
		refreshes: refreshes,
		duration:  duration,
	}, nil
}

// RecordRequest records a completed API request
func (r *Recorder) RecordRequest(ctx context.Context, method, path string, status int, durationMs float64) {
	if r == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("http.method", method),
		attribute.String("http.route", path),
		attribute.Int("http.status_code", status),
	)
	r.requests.Add(ctx, 1, attrs)
	r.duration.Record(ctx, durationMs, attrs)
}

// RecordRefresh records a token refresh attempt
func (r *Recorder) RecordRefresh(ctx context.Context, success bool) {
	if r == nil {
		return
	}
	r.refreshes.Add(ctx, 1, metric.WithAttributes(attribute.Bool("success", success)))
}
