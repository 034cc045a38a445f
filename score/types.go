package score

import (
	"time"

	"github.com/khandoba/threatindex/inference"
)

// LogicComponentScores holds one aggregate 0-100 score per reasoning mode.
// All seven fields are always present; a mode with no supporting inferences
// scores zero, never null.
type LogicComponentScores struct {
	Deductive   float64 `json:"deductive_score"`
	Inductive   float64 `json:"inductive_score"`
	Abductive   float64 `json:"abductive_score"`
	Statistical float64 `json:"statistical_score"`
	Analogical  float64 `json:"analogical_score"`
	Temporal    float64 `json:"temporal_score"`
	Modal       float64 `json:"modal_score"`
}

// ForType returns the aggregate score for the given reasoning mode.
func (s LogicComponentScores) ForType(t inference.LogicType) float64 {
	switch t {
	case inference.LogicDeductive:
		return s.Deductive
	case inference.LogicInductive:
		return s.Inductive
	case inference.LogicAbductive:
		return s.Abductive
	case inference.LogicStatistical:
		return s.Statistical
	case inference.LogicAnalogical:
		return s.Analogical
	case inference.LogicTemporal:
		return s.Temporal
	case inference.LogicModal:
		return s.Modal
	default:
		return 0
	}
}

// ThreatCategoryScores holds one aggregate 0-100 score per threat category,
// with the same always-present, zero-default discipline as
// LogicComponentScores.
type ThreatCategoryScores struct {
	AccessPattern    float64 `json:"access_pattern_score"`
	Geographic       float64 `json:"geographic_score"`
	DocumentContent  float64 `json:"document_content_score"`
	Behavioral       float64 `json:"behavioral_score"`
	ExternalThreat   float64 `json:"external_threat_score"`
	Compliance       float64 `json:"compliance_score"`
	DataExfiltration float64 `json:"data_exfiltration_score"`
}

// ForCategory returns the aggregate score for the given threat category.
func (s ThreatCategoryScores) ForCategory(c inference.ThreatCategory) float64 {
	switch c {
	case inference.CategoryAccessPattern:
		return s.AccessPattern
	case inference.CategoryGeographic:
		return s.Geographic
	case inference.CategoryDocumentContent:
		return s.DocumentContent
	case inference.CategoryBehavioral:
		return s.Behavioral
	case inference.CategoryExternalThreat:
		return s.ExternalThreat
	case inference.CategoryCompliance:
		return s.Compliance
	case inference.CategoryDataExfiltration:
		return s.DataExfiltration
	default:
		return 0
	}
}

// Contribution maps one inference onto its quantified share of the threat
// score. Contributions are ranked descending by score, ties broken by
// descending confidence, then by input order.
type Contribution struct {
	// InferenceID identifies the source inference.
	InferenceID string `json:"inference_id"`

	// LogicType is the reasoning mode of the source inference.
	LogicType inference.LogicType `json:"logic_type"`

	// Category is the resolved threat category of the source inference.
	Category inference.ThreatCategory `json:"category"`

	// Score is the inference's individual contribution (0 to 100).
	Score float64 `json:"contribution_score"`

	// Confidence is carried from the source inference.
	Confidence float64 `json:"confidence"`

	// Impact buckets Score into Low/Medium/High/Critical.
	Impact Impact `json:"impact"`

	// Conclusion is the human-readable conclusion of the source inference.
	Conclusion string `json:"conclusion"`
}

// Recommendation is one prioritized, urgency-tagged remediation action.
// Recommendations are recomputed on every assessment and never persisted.
type Recommendation struct {
	// Priority ranks the recommendation, 1 being the most pressing.
	Priority int `json:"priority"`

	// Category is the threat category the action addresses.
	Category inference.ThreatCategory `json:"category"`

	// Action is the remediation to take.
	Action string `json:"action"`

	// Rationale explains why the action is recommended.
	Rationale string `json:"rationale"`

	// ExpectedImpact estimates the composite score reduction if the
	// action is taken.
	ExpectedImpact float64 `json:"expected_impact"`

	// Urgency tags how quickly the action should be taken.
	Urgency Urgency `json:"urgency"`
}

// Snapshot is the unit of score history: one assessment's composite score
// and both aggregate breakdowns at a point in time.
type Snapshot struct {
	Timestamp      time.Time            `json:"timestamp"`
	CompositeScore float64              `json:"composite_score"`
	CategoryScores ThreatCategoryScores `json:"category_scores"`
	LogicScores    LogicComponentScores `json:"logic_scores"`
}

// Scores is the complete granular scoring output for one assessment.
type Scores struct {
	// CompositeScore is the single 0-100 threat score, rounded to two
	// decimal places.
	CompositeScore float64 `json:"composite_score"`

	// LogicScores is the per-reasoning-mode aggregate breakdown.
	LogicScores LogicComponentScores `json:"logic_scores"`

	// CategoryScores is the per-threat-category aggregate breakdown.
	CategoryScores ThreatCategoryScores `json:"category_scores"`

	// Contributions is the full ranked contribution list.
	Contributions []Contribution `json:"inference_contributions"`

	// Delta is the signed change versus the immediately preceding
	// snapshot. Nil until a second assessment exists for the vault:
	// zero means "no change", nil means "no baseline".
	Delta *float64 `json:"score_delta,omitempty"`

	// Velocity is Delta divided by elapsed time, in score points per
	// hour. Nil whenever Delta is nil.
	Velocity *float64 `json:"score_velocity,omitempty"`
}

// TopContributions returns the first n ranked contributions, or all of them
// when fewer exist. The ranked order is load-bearing for explanation views.
func (s Scores) TopContributions(n int) []Contribution {
	if n <= 0 || len(s.Contributions) == 0 {
		return nil
	}
	if n > len(s.Contributions) {
		n = len(s.Contributions)
	}
	return s.Contributions[:n]
}
