package threatindex

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// instrumentationName identifies this library to meter and tracer providers.
const instrumentationName = "github.com/khandoba/threatindex"

// engineMetrics holds the OpenTelemetry metric instruments for the engine.
// These are created once during NewEngine and reused for all assessments.
type engineMetrics struct {
	// scoreHistogram records composite threat scores (0 to 100)
	scoreHistogram metric.Float64Histogram

	// durationHistogram records assessment duration in milliseconds
	durationHistogram metric.Float64Histogram

	// countCounter increments for each assessment performed
	countCounter metric.Int64Counter
}

// newEngineMetrics creates the metric instruments from a MeterProvider.
// Returns nil when no provider is configured.
func newEngineMetrics(mp metric.MeterProvider) (*engineMetrics, error) {
	if mp == nil {
		return nil, nil
	}
	meter := mp.Meter(instrumentationName)

	metrics := &engineMetrics{}
	var err error

	metrics.scoreHistogram, err = meter.Float64Histogram(
		"threatindex.composite_score",
		metric.WithDescription("Composite threat score from 0 (minimal) to 100 (extreme)"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create score histogram: %w", err)
	}

	metrics.durationHistogram, err = meter.Float64Histogram(
		"threatindex.assessment.duration",
		metric.WithDescription("Assessment duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("create duration histogram: %w", err)
	}

	metrics.countCounter, err = meter.Int64Counter(
		"threatindex.assessment.count",
		metric.WithDescription("Number of assessments performed"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create count counter: %w", err)
	}

	return metrics, nil
}

// record captures one completed assessment. A nil receiver is a no-op so the
// engine can call it unconditionally.
func (m *engineMetrics) record(ctx context.Context, result *Result, durationMs float64) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("vault.id", result.VaultID),
		attribute.String("threat.level", result.Level.String()),
	)
	m.scoreHistogram.Record(ctx, result.Scores.CompositeScore, attrs)
	m.durationHistogram.Record(ctx, durationMs, attrs)
	m.countCounter.Add(ctx, 1, attrs)
}
