// Copyright 2026 The Anvil Authors
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

package edge

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// instrumentationName identifies this module's meter.
const instrumentationName = "anvil.dev/internalhttp"

// Recorder receives routing and dispatch outcomes from the RouterListener.
// Implementations must be safe for concurrent use.
//
// RecordDispatch is keyed by the registered route pattern, not the raw path,
// to keep metric cardinality bounded.
type Recorder interface {
	// RecordDispatch records a completed dispatch for a matched route.
	RecordDispatch(ctx context.Context, method, pattern string, status int, elapsed time.Duration)

	// RecordMiss records a routing miss. owned reports whether the path fell
	// inside the reserved namespace (definitive 404) or outside (fall-through).
	RecordMiss(ctx context.Context, method string, owned bool)
}

// noopRecorder discards all observations.
type noopRecorder struct{}

func (noopRecorder) RecordDispatch(context.Context, string, string, int, time.Duration) {}
func (noopRecorder) RecordMiss(context.Context, string, bool)                           {}

var sharedNoopRecorder Recorder = noopRecorder{}

// NoopRecorder returns the shared recorder that discards all observations.
func NoopRecorder() Recorder {
	return sharedNoopRecorder
}

// otelRecorder implements Recorder on the OpenTelemetry metric API. Exporter
// choice (Prometheus, OTLP, stdout) stays with the hosting service's meter
// provider.
type otelRecorder struct {
	dispatches metric.Int64Counter
	misses     metric.Int64Counter
	duration   metric.Float64Histogram
}

// NewOTelRecorder creates a Recorder backed by the given meter provider.
func NewOTelRecorder(provider metric.MeterProvider) (Recorder, error) {
	meter := provider.Meter(instrumentationName)

	dispatches, err := meter.Int64Counter("internalhttp.dispatches",
		metric.WithDescription("Completed dispatches to internal resources"))
	if err != nil {
		return nil, fmt.Errorf("create dispatch counter: %w", err)
	}
	misses, err := meter.Int64Counter("internalhttp.route_misses",
		metric.WithDescription("Routing misses, split by namespace ownership"))
	if err != nil {
		return nil, fmt.Errorf("create miss counter: %w", err)
	}
	duration, err := meter.Float64Histogram("internalhttp.dispatch.duration",
		metric.WithDescription("Dispatch duration in seconds"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, fmt.Errorf("create duration histogram: %w", err)
	}

	return &otelRecorder{dispatches: dispatches, misses: misses, duration: duration}, nil
}

func (o *otelRecorder) RecordDispatch(ctx context.Context, method, pattern string, status int, elapsed time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("http.request.method", method),
		attribute.String("http.route", pattern),
		attribute.Int("http.response.status_code", status),
	)
	o.dispatches.Add(ctx, 1, attrs)
	o.duration.Record(ctx, elapsed.Seconds(), attrs)
}

func (o *otelRecorder) RecordMiss(ctx context.Context, method string, owned bool) {
	o.misses.Add(ctx, 1, metric.WithAttributes(
		attribute.String("http.request.method", method),
		attribute.Bool("namespace.owned", owned),
	))
}
