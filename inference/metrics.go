// File: metrics.go
// Role: OpenTelemetry tracer, meter and lazily created instruments.

package inference

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Package-level tracer and meter for inference runs.
var (
	tracer = otel.Tracer("lvlid.inference")
	meter  = otel.Meter("lvlid.inference")
)

// Metrics for inference runs.
var (
	inferenceLatency metric.Float64Histogram
	inferenceTotal   metric.Int64Counter
	absorbTotal      metric.Int64Counter

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the metrics. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		inferenceLatency, err = meter.Float64Histogram(
			"inference_duration_seconds",
			metric.WithDescription("Duration of MakeInference runs"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		inferenceTotal, err = meter.Int64Counter(
			"inference_total",
			metric.WithDescription("Total number of MakeInference runs"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		absorbTotal, err = meter.Int64Counter(
			"inference_absorb_total",
			metric.WithDescription("Total number of clique absorptions"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

// recordInferenceMetrics records metrics for one MakeInference run.
func recordInferenceMetrics(ctx context.Context, duration time.Duration, success bool) {
	if err := initMetrics(); err != nil {
		return
	}

	attrs := metric.WithAttributes(attribute.Bool("success", success))

	inferenceLatency.Record(ctx, duration.Seconds(), attrs)
	inferenceTotal.Add(ctx, 1, attrs)
}

// recordAbsorbMetrics counts one absorption.
func recordAbsorbMetrics(ctx context.Context) {
	if err := initMetrics(); err != nil {
		return
	}
	absorbTotal.Add(ctx, 1)
}

// startInferenceSpan creates a span for a MakeInference run.
func startInferenceSpan(ctx context.Context, runID uuid.UUID, cliques int, root int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "Engine.MakeInference",
		trace.WithAttributes(
			attribute.String("inference.run_id", runID.String()),
			attribute.Int("inference.clique_count", cliques),
			attribute.Int("inference.root", root),
		),
	)
}

// setInferenceSpanResult sets the outcome of a run on its span.
func setInferenceSpanResult(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetStatus(codes.Ok, "")
}
