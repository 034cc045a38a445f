package threatindex

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/khandoba/threatindex/history"
	"github.com/khandoba/threatindex/inference"
	"github.com/khandoba/threatindex/score"
)

// Engine orchestrates threat assessments: it validates the inference batch,
// runs the scoring pipeline, computes trend against the vault's last
// snapshot, appends the new snapshot, and assembles the Result.
//
// An Engine owns its history store and per-vault locks and is safe for
// concurrent use. Assessments for the same vault are serialized so trend is
// always computed against the immediately preceding successfully appended
// snapshot; assessments for different vaults proceed fully concurrently.
type Engine struct {
	weights       score.Weights
	store         history.Store
	logger        *slog.Logger
	tracer        trace.Tracer
	metrics       *engineMetrics
	historyWindow int
	now           func() time.Time

	// locks holds one mutex per vault id.
	locks sync.Map
}

// NewEngine creates an Engine with the given options. Weights are validated
// here so an invalid calibration fails fast instead of skewing every score.
func NewEngine(opts ...Option) (*Engine, error) {
	cfg := engineConfig{
		weights:       score.DefaultWeights(),
		historyWindow: DefaultHistoryWindow,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.weights.Validate(); err != nil {
		return nil, fmt.Errorf("threatindex: %w", err)
	}
	if cfg.store == nil {
		cfg.store = history.NewMemoryStore(history.DefaultCap)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	if cfg.historyWindow <= 0 {
		cfg.historyWindow = DefaultHistoryWindow
	}
	if cfg.now == nil {
		cfg.now = time.Now
	}

	metrics, err := newEngineMetrics(cfg.meterProvider)
	if err != nil {
		return nil, fmt.Errorf("threatindex: %w", err)
	}

	return &Engine{
		weights:       cfg.weights,
		store:         cfg.store,
		logger:        cfg.logger,
		tracer:        cfg.tracer,
		metrics:       metrics,
		historyWindow: cfg.historyWindow,
		now:           cfg.now,
	}, nil
}

// Weights returns the weight set the engine scores with.
func (e *Engine) Weights() score.Weights {
	return e.weights
}

// Assess runs one complete assessment for a vault.
//
// An empty inference batch is valid and yields a zero composite score at
// level Minimal with no contributions and no recommendations. Any failure
// (invalid inference data, unavailable history) fails the whole assessment
// and appends nothing: there are no partial results.
func (e *Engine) Assess(ctx context.Context, vaultID string, infs []inference.LogicalInference) (*Result, error) {
	if vaultID == "" {
		return nil, ErrInvalidVaultID
	}

	start := e.now()

	var span trace.Span
	if e.tracer != nil {
		ctx, span = e.tracer.Start(ctx, "threatindex.assess")
		defer span.End()
		span.SetAttributes(
			attribute.String("vault.id", vaultID),
			attribute.Int("inference.count", len(infs)),
		)
	}

	result, err := e.assess(ctx, vaultID, infs)
	if err != nil {
		if span != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "assessment failed")
		}
		e.logger.Error("assessment failed",
			slog.String("vault_id", vaultID),
			slog.Any("error", err))
		return nil, err
	}

	durationMs := float64(e.now().Sub(start).Microseconds()) / 1000.0
	e.metrics.record(ctx, result, durationMs)
	if span != nil {
		span.SetAttributes(
			attribute.Float64("threat.composite_score", result.Scores.CompositeScore),
			attribute.String("threat.level", result.Level.String()),
		)
		span.SetStatus(codes.Ok, "")
	}
	e.logger.Debug("assessment complete",
		slog.String("vault_id", vaultID),
		slog.Float64("composite_score", result.Scores.CompositeScore),
		slog.String("level", result.Level.String()),
		slog.Int("inferences", len(infs)),
		slog.Int("recommendations", len(result.Recommendations)))

	return result, nil
}

func (e *Engine) assess(ctx context.Context, vaultID string, infs []inference.LogicalInference) (*Result, error) {
	// Reject bad input before taking the vault lock; the whole batch
	// fails on the first offender.
	for i := range infs {
		if err := infs[i].Validate(); err != nil {
			return nil, newAssessmentError(vaultID, infs[i].ID, CodeInvalidInference, "inference rejected at ingestion", err)
		}
	}

	// Serialize the read-compute-append sequence per vault. Trend must be
	// computed against the immediately preceding appended snapshot, never
	// one that is mid-append.
	mu := e.vaultLock(vaultID)
	mu.Lock()
	defer mu.Unlock()

	prev, err := e.store.Last(ctx, vaultID)
	if err != nil {
		return nil, newAssessmentError(vaultID, "", CodeHistoryUnavailable, "failed to read previous snapshot", err)
	}
	past, err := e.store.History(ctx, vaultID)
	if err != nil {
		return nil, newAssessmentError(vaultID, "", CodeHistoryUnavailable, "failed to read score history", err)
	}

	logicScores := score.AggregateLogic(infs)
	catScores := score.AggregateCategories(infs)
	contribs := score.RankContributions(infs, e.weights)
	composite := score.Composite(logicScores, catScores, e.weights)
	level := score.ClassifyLevel(composite)

	now := e.now()
	if prev != nil && !now.After(prev.Timestamp) {
		// Keep per-vault timestamps strictly increasing even under a
		// coarse or skewed clock.
		now = prev.Timestamp.Add(time.Nanosecond)
	}

	var delta, velocity *float64
	if prev != nil {
		d := score.Round2(composite - prev.CompositeScore)
		delta = &d
		if hours := now.Sub(prev.Timestamp).Hours(); hours > 0 {
			v := score.Round2(d / hours)
			velocity = &v
		}
	}

	recs := score.Recommend(catScores, contribs, composite, e.weights, infs)

	// Defensive single-writer check: the snapshot read under the lock
	// must still be the newest one at append time.
	check, err := e.store.Last(ctx, vaultID)
	if err != nil {
		return nil, newAssessmentError(vaultID, "", CodeHistoryUnavailable, "failed to re-read previous snapshot", err)
	}
	if !sameSnapshot(prev, check) {
		return nil, newAssessmentError(vaultID, "", CodeConcurrencyViolation, "timeline advanced during assessment", nil)
	}

	snap := score.Snapshot{
		Timestamp:      now,
		CompositeScore: composite,
		CategoryScores: catScores,
		LogicScores:    logicScores,
	}
	if err := e.store.Append(ctx, vaultID, snap); err != nil {
		return nil, newAssessmentError(vaultID, "", CodeHistoryUnavailable, "failed to append snapshot", err)
	}

	trail := append(past, snap)
	if len(trail) > e.historyWindow {
		trail = trail[len(trail)-e.historyWindow:]
	}

	return &Result{
		VaultID: vaultID,
		Scores: score.Scores{
			CompositeScore: composite,
			LogicScores:    logicScores,
			CategoryScores: catScores,
			Contributions:  contribs,
			Delta:          delta,
			Velocity:       velocity,
		},
		Level:             level,
		Inferences:        infs,
		CategoryBreakdown: catScores,
		LogicBreakdown:    logicScores,
		Contributions:     contribs,
		Recommendations:   recs,
		CalculatedAt:      now,
		History:           trail,
	}, nil
}

func (e *Engine) vaultLock(vaultID string) *sync.Mutex {
	v, _ := e.locks.LoadOrStore(vaultID, &sync.Mutex{})
	return v.(*sync.Mutex)
}

func sameSnapshot(a, b *score.Snapshot) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Timestamp.Equal(b.Timestamp) && a.CompositeScore == b.CompositeScore
}
