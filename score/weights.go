package score

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/khandoba/threatindex/inference"
)

// Weights holds every numeric constant driving the scoring pipeline. The
// composite must be reproducible across platforms, so weights are explicit
// configuration, never hidden heuristics: the default set below is the
// calibrated production set, and alternative sets can be loaded from YAML
// and distributed through the calibration package.
type Weights struct {
	// Logic-mode weights reflect the certainty of each reasoning mode.
	Deductive   float64 `yaml:"deductive" json:"deductive"`
	Inductive   float64 `yaml:"inductive" json:"inductive"`
	Abductive   float64 `yaml:"abductive" json:"abductive"`
	Statistical float64 `yaml:"statistical" json:"statistical"`
	Analogical  float64 `yaml:"analogical" json:"analogical"`
	Temporal    float64 `yaml:"temporal" json:"temporal"`
	Modal       float64 `yaml:"modal" json:"modal"`

	// Category weights reflect the relative severity of each threat class.
	AccessPattern    float64 `yaml:"access_pattern" json:"access_pattern"`
	Geographic       float64 `yaml:"geographic" json:"geographic"`
	DocumentContent  float64 `yaml:"document_content" json:"document_content"`
	Behavioral       float64 `yaml:"behavioral" json:"behavioral"`
	ExternalThreat   float64 `yaml:"external_threat" json:"external_threat"`
	Compliance       float64 `yaml:"compliance" json:"compliance"`
	DataExfiltration float64 `yaml:"data_exfiltration" json:"data_exfiltration"`

	// LogicShare and CategoryShare blend the two normalized aggregates
	// into the composite. They must sum to 1.
	LogicShare    float64 `yaml:"logic_share" json:"logic_share"`
	CategoryShare float64 `yaml:"category_share" json:"category_share"`

	// ActionThreshold is the category score at or above which a
	// category-level recommendation is emitted.
	ActionThreshold float64 `yaml:"action_threshold" json:"action_threshold"`

	// MaxRecommendations caps the recommendation list per assessment.
	MaxRecommendations int `yaml:"max_recommendations" json:"max_recommendations"`
}

// DefaultWeights returns the calibrated production weight set.
func DefaultWeights() Weights {
	return Weights{
		Deductive:   1.0,
		Statistical: 0.9,
		Inductive:   0.8,
		Temporal:    0.75,
		Abductive:   0.7,
		Modal:       0.65,
		Analogical:  0.6,

		DataExfiltration: 1.0,
		ExternalThreat:   0.9,
		AccessPattern:    0.85,
		Geographic:       0.8,
		Behavioral:       0.75,
		DocumentContent:  0.7,
		Compliance:       0.65,

		LogicShare:    0.6,
		CategoryShare: 0.4,

		ActionThreshold:    50.0,
		MaxRecommendations: 10,
	}
}

// LoadWeights reads a weight set from a YAML file and validates it.
func LoadWeights(path string) (Weights, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Weights{}, fmt.Errorf("failed to read weights file: %w", err)
	}
	var w Weights
	if err := yaml.Unmarshal(data, &w); err != nil {
		return Weights{}, fmt.Errorf("failed to parse weights file %s: %w", path, err)
	}
	if err := w.Validate(); err != nil {
		return Weights{}, fmt.Errorf("invalid weights in %s: %w", path, err)
	}
	return w, nil
}

// Validate checks that every weight is positive, the blend shares sum to 1,
// and the recommendation limits are sane.
func (w Weights) Validate() error {
	fields := []struct {
		name string
		val  float64
	}{
		{"deductive", w.Deductive},
		{"inductive", w.Inductive},
		{"abductive", w.Abductive},
		{"statistical", w.Statistical},
		{"analogical", w.Analogical},
		{"temporal", w.Temporal},
		{"modal", w.Modal},
		{"access_pattern", w.AccessPattern},
		{"geographic", w.Geographic},
		{"document_content", w.DocumentContent},
		{"behavioral", w.Behavioral},
		{"external_threat", w.ExternalThreat},
		{"compliance", w.Compliance},
		{"data_exfiltration", w.DataExfiltration},
	}
	for _, f := range fields {
		if f.val <= 0 {
			return fmt.Errorf("weight %s must be positive, got %.4f", f.name, f.val)
		}
	}
	if w.LogicShare < 0 || w.CategoryShare < 0 {
		return fmt.Errorf("blend shares must be non-negative")
	}
	if math.Abs(w.LogicShare+w.CategoryShare-1.0) > 1e-9 {
		return fmt.Errorf("blend shares must sum to 1, got %.4f", w.LogicShare+w.CategoryShare)
	}
	if w.ActionThreshold < 0 || w.ActionThreshold > 100 {
		return fmt.Errorf("action threshold %.2f out of range [0, 100]", w.ActionThreshold)
	}
	if w.MaxRecommendations <= 0 {
		return fmt.Errorf("max recommendations must be positive, got %d", w.MaxRecommendations)
	}
	return nil
}

// LogicWeight returns the weight for a reasoning mode.
func (w Weights) LogicWeight(t inference.LogicType) float64 {
	switch t {
	case inference.LogicDeductive:
		return w.Deductive
	case inference.LogicInductive:
		return w.Inductive
	case inference.LogicAbductive:
		return w.Abductive
	case inference.LogicStatistical:
		return w.Statistical
	case inference.LogicAnalogical:
		return w.Analogical
	case inference.LogicTemporal:
		return w.Temporal
	case inference.LogicModal:
		return w.Modal
	default:
		return 0
	}
}

// CategoryWeight returns the weight for a threat category.
func (w Weights) CategoryWeight(c inference.ThreatCategory) float64 {
	switch c {
	case inference.CategoryAccessPattern:
		return w.AccessPattern
	case inference.CategoryGeographic:
		return w.Geographic
	case inference.CategoryDocumentContent:
		return w.DocumentContent
	case inference.CategoryBehavioral:
		return w.Behavioral
	case inference.CategoryExternalThreat:
		return w.ExternalThreat
	case inference.CategoryCompliance:
		return w.Compliance
	case inference.CategoryDataExfiltration:
		return w.DataExfiltration
	default:
		return 0
	}
}

// logicWeightSum is the normalizer for the logic blend.
func (w Weights) logicWeightSum() float64 {
	return w.Deductive + w.Inductive + w.Abductive + w.Statistical +
		w.Analogical + w.Temporal + w.Modal
}

// categoryWeightSum is the normalizer for the category blend.
func (w Weights) categoryWeightSum() float64 {
	return w.AccessPattern + w.Geographic + w.DocumentContent + w.Behavioral +
		w.ExternalThreat + w.Compliance + w.DataExfiltration
}
