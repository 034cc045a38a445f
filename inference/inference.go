package inference

import (
	"fmt"

	"github.com/google/uuid"
)

// LogicalInference is one unit of reasoning evidence about a vault's access
// or behavior history, produced by the external reasoning engine.
type LogicalInference struct {
	// ID is a unique identifier for the inference.
	ID string `json:"id"`

	// Type is the reasoning mode that produced this inference.
	Type LogicType `json:"type"`

	// Method names the concrete reasoning method (e.g., "modus_ponens",
	// "frequency_baseline").
	Method string `json:"method"`

	// Premise is the rule or prior the reasoning started from.
	Premise string `json:"premise"`

	// Observation is the evidence the reasoning was applied to.
	Observation string `json:"observation"`

	// Conclusion is the human-readable conclusion reached.
	Conclusion string `json:"conclusion"`

	// Confidence is the producer's confidence in the conclusion (0.0 to 1.0).
	Confidence float64 `json:"confidence"`

	// Category tags the threat category this inference points at.
	// When empty, the engine derives it from the conclusion and observation
	// text via CategorizeText.
	Category ThreatCategory `json:"category,omitempty"`

	// SeverityHint is an optional producer-supplied severity estimate
	// (0 to 100). When zero, severity is derived from Confidence.
	SeverityHint float64 `json:"severity_hint,omitempty"`

	// Actionable is an optional remediation note the producer attached.
	Actionable string `json:"actionable,omitempty"`
}

// New creates a LogicalInference with a generated ID.
func New(t LogicType, method, premise, observation, conclusion string, confidence float64) LogicalInference {
	return LogicalInference{
		ID:          uuid.New().String(),
		Type:        t,
		Method:      method,
		Premise:     premise,
		Observation: observation,
		Conclusion:  conclusion,
		Confidence:  confidence,
	}
}

// Validate checks that the inference is well-formed: a known reasoning mode,
// confidence within [0.0, 1.0], a known category when tagged, and a severity
// hint within [0, 100] when supplied.
func (inf LogicalInference) Validate() error {
	if !inf.Type.IsValid() {
		return fmt.Errorf("inference %s: invalid logic type %q", inf.ID, inf.Type)
	}
	if inf.Confidence < 0.0 || inf.Confidence > 1.0 {
		return fmt.Errorf("inference %s: confidence %.4f out of range [0.0, 1.0]", inf.ID, inf.Confidence)
	}
	if inf.Category != "" && !inf.Category.IsValid() {
		return fmt.Errorf("inference %s: invalid threat category %q", inf.ID, inf.Category)
	}
	if inf.SeverityHint < 0.0 || inf.SeverityHint > 100.0 {
		return fmt.Errorf("inference %s: severity hint %.2f out of range [0, 100]", inf.ID, inf.SeverityHint)
	}
	return nil
}

// ResolvedCategory returns the tagged category, or a category derived from
// the conclusion and observation text when the tag is absent.
func (inf LogicalInference) ResolvedCategory() ThreatCategory {
	if inf.Category.IsValid() {
		return inf.Category
	}
	return CategorizeText(inf.Conclusion, inf.Observation)
}

// SeverityBasis returns the severity estimate feeding the scoring engine:
// the producer's hint when supplied, otherwise confidence scaled to 0-100.
func (inf LogicalInference) SeverityBasis() float64 {
	if inf.SeverityHint > 0 {
		return inf.SeverityHint
	}
	return inf.Confidence * 100.0
}
