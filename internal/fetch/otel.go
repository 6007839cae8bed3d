package fetch

import (
	"context"
	"fmt"
	"time"

	"ncschooldata/internal/infrastructure"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	TracerName = "ncschooldata.fetch"
)

// Tracer provides OpenTelemetry instrumentation for dataset fetches.
// A nil *Tracer is valid and disables instrumentation.
type Tracer struct {
	tracer  trace.Tracer
	metrics *infrastructure.FetchMetrics
}

// NewTracer creates a fetch tracer backed by the given providers.
func NewTracer(providers *infrastructure.OTelProviders) (*Tracer, error) {
	metrics, err := infrastructure.CreateFetchMetrics(providers.Meter)
	if err != nil {
		return nil, fmt.Errorf("failed to create fetch metrics: %w", err)
	}

	return &Tracer{
		tracer:  otel.Tracer(TracerName),
		metrics: metrics,
	}, nil
}

// StartFetch opens a span for one dataset fetch and bumps the in-flight
// gauge.
func (ft *Tracer) StartFetch(ctx context.Context, dataset string, year int) (context.Context, trace.Span) {
	if ft == nil {
		return ctx, trace.SpanFromContext(ctx)
	}

	ctx, span := ft.tracer.Start(ctx, fmt.Sprintf("fetch.%s", dataset),
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("fetch.dataset", dataset),
			attribute.Int("fetch.year", year),
		),
	)

	ft.metrics.ActiveFetches.Add(ctx, 1,
		metric.WithAttributes(attribute.String("dataset", dataset)))

	return ctx, span
}

// EndFetch records the fetch outcome on the span and the meters, then ends
// the span.
func (ft *Tracer) EndFetch(ctx context.Context, span trace.Span, dataset string, year int, start time.Time, rows int, err error) {
	if ft == nil {
		return
	}

	infrastructure.RecordFetchMetrics(ctx, ft.metrics, dataset, year, time.Since(start), rows, err)

	ft.metrics.ActiveFetches.Add(ctx, -1,
		metric.WithAttributes(attribute.String("dataset", dataset)))

	if err != nil {
		infrastructure.RecordError(ctx, err)
	} else {
		span.SetAttributes(attribute.Int("fetch.rows", rows))
		span.SetStatus(codes.Ok, "")
	}

	span.End()
}

// RecordSnapshotLookup records a snapshot store hit or miss.
func (ft *Tracer) RecordSnapshotLookup(ctx context.Context, dataset string, hit bool) {
	if ft == nil {
		return
	}
	infrastructure.RecordSnapshotLookup(ctx, ft.metrics, dataset, hit)
}
