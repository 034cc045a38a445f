package threatindex

import (
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/khandoba/threatindex/history"
	"github.com/khandoba/threatindex/score"
)

// DefaultHistoryWindow is the number of trailing snapshots included in each
// assessment result.
const DefaultHistoryWindow = 20

// Option configures the Engine.
type Option func(*engineConfig)

type engineConfig struct {
	weights       score.Weights
	store         history.Store
	logger        *slog.Logger
	meterProvider metric.MeterProvider
	tracer        trace.Tracer
	historyWindow int
	now           func() time.Time
}

// WithWeights sets the scoring weight set. The weights are validated at
// engine construction; the default is score.DefaultWeights().
func WithWeights(w score.Weights) Option {
	return func(c *engineConfig) {
		c.weights = w
	}
}

// WithHistoryStore sets the per-vault score history store. The default is
// an in-memory store capped at history.DefaultCap snapshots per vault.
func WithHistoryStore(s history.Store) Option {
	return func(c *engineConfig) {
		c.store = s
	}
}

// WithLogger sets a custom logger for the engine.
// If not provided, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(c *engineConfig) {
		c.logger = logger
	}
}

// WithMeterProvider enables OpenTelemetry metrics for assessments:
// an assessment counter and composite-score and duration histograms.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *engineConfig) {
		c.meterProvider = mp
	}
}

// WithTracer sets an OpenTelemetry tracer; each assessment then runs inside
// its own span carrying the vault id, batch size, score, and level.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *engineConfig) {
		c.tracer = tracer
	}
}

// WithHistoryWindow sets how many trailing snapshots each result carries.
// Non-positive values fall back to DefaultHistoryWindow.
func WithHistoryWindow(n int) Option {
	return func(c *engineConfig) {
		c.historyWindow = n
	}
}

// WithClock overrides the engine's time source. Intended for deterministic
// trend computation in tests and replay tooling.
func WithClock(now func() time.Time) Option {
	return func(c *engineConfig) {
		c.now = now
	}
}
