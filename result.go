package threatindex

import (
	"time"

	"github.com/khandoba/threatindex/inference"
	"github.com/khandoba/threatindex/score"
)

// Result is the complete output of one assessment run for a vault.
// All fields are values owned by the caller; the engine keeps no reference
// to a returned Result.
type Result struct {
	// VaultID identifies the assessed vault.
	VaultID string `json:"vault_id"`

	// Scores carries the composite score, both aggregate breakdowns, the
	// ranked contribution list, and trend (delta/velocity) when a prior
	// snapshot exists.
	Scores score.Scores `json:"granular_scores"`

	// Level classifies the composite score into one of ten bands.
	Level score.ThreatLevel `json:"threat_level"`

	// Inferences is the batch of source inferences this result was
	// computed from.
	Inferences []inference.LogicalInference `json:"threat_inferences"`

	// CategoryBreakdown duplicates Scores.CategoryScores for consumers
	// that only read the breakdown.
	CategoryBreakdown score.ThreatCategoryScores `json:"category_breakdown"`

	// LogicBreakdown duplicates Scores.LogicScores for consumers that
	// only read the breakdown.
	LogicBreakdown score.LogicComponentScores `json:"logic_breakdown"`

	// Contributions is the ranked contribution list; the first N entries
	// are the "top contributions" shown in explanation views.
	Contributions []score.Contribution `json:"inference_contributions"`

	// Recommendations is the prioritized remediation list, 1 first.
	Recommendations []score.Recommendation `json:"recommendations"`

	// CalculatedAt is when the assessment completed. Strictly increasing
	// across successive assessments of the same vault.
	CalculatedAt time.Time `json:"calculated_at"`

	// History is a bounded trailing slice of the vault's snapshot
	// timeline, oldest first, including this assessment's snapshot.
	History []score.Snapshot `json:"score_history,omitempty"`
}
