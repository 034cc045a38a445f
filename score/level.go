package score

import "fmt"

// ThreatLevel is one of ten ordered bands classifying a composite score.
type ThreatLevel string

const (
	LevelMinimal      ThreatLevel = "minimal"
	LevelVeryLow      ThreatLevel = "very_low"
	LevelLow          ThreatLevel = "low"
	LevelLowMedium    ThreatLevel = "low_medium"
	LevelMedium       ThreatLevel = "medium"
	LevelMediumHigh   ThreatLevel = "medium_high"
	LevelHigh         ThreatLevel = "high"
	LevelHighCritical ThreatLevel = "high_critical"
	LevelCritical     ThreatLevel = "critical"
	LevelExtreme      ThreatLevel = "extreme"
)

// levelBands is the single source of truth for the banding table.
// A score belongs to the first band whose upper bound it is below; a score
// exactly on a boundary (e.g. 10.0) therefore stays in the lower band.
// The last band catches everything up to and including 100.
var levelBands = []struct {
	level ThreatLevel
	upper float64
	rank  int
	name  string
}{
	{LevelMinimal, 10.1, 1, "Minimal"},
	{LevelVeryLow, 20.1, 2, "Very Low"},
	{LevelLow, 30.1, 3, "Low"},
	{LevelLowMedium, 40.1, 4, "Low-Medium"},
	{LevelMedium, 50.1, 5, "Medium"},
	{LevelMediumHigh, 60.1, 6, "Medium-High"},
	{LevelHigh, 70.1, 7, "High"},
	{LevelHighCritical, 80.1, 8, "High-Critical"},
	{LevelCritical, 90.1, 9, "Critical"},
	{LevelExtreme, 101.0, 10, "Extreme"},
}

// ClassifyLevel maps a composite score to its threat level band.
func ClassifyLevel(score float64) ThreatLevel {
	for _, band := range levelBands {
		if score < band.upper {
			return band.level
		}
	}
	return LevelExtreme
}

// Rank returns the numeric rank of the level, 1 (Minimal) to 10 (Extreme).
// Returns 0 for an invalid level.
func (l ThreatLevel) Rank() int {
	for _, band := range levelBands {
		if band.level == l {
			return band.rank
		}
	}
	return 0
}

// RequiresAction reports whether the level calls for operator action
// (Medium-High and above).
func (l ThreatLevel) RequiresAction() bool {
	return l.Rank() >= 6
}

// RequiresImmediateAction reports whether the level calls for immediate
// intervention (High-Critical and above).
func (l ThreatLevel) RequiresImmediateAction() bool {
	return l.Rank() >= 8
}

// IsValid returns true if the level is one of the ten bands.
func (l ThreatLevel) IsValid() bool {
	return l.Rank() != 0
}

// String returns the string representation of the level.
func (l ThreatLevel) String() string {
	return string(l)
}

// DisplayName returns a human-readable name for the level.
func (l ThreatLevel) DisplayName() string {
	for _, band := range levelBands {
		if band.level == l {
			return band.name
		}
	}
	return string(l)
}

// ParseThreatLevel parses a string into a ThreatLevel value.
// Returns an error if the string is not a valid level.
func ParseThreatLevel(s string) (ThreatLevel, error) {
	l := ThreatLevel(s)
	if !l.IsValid() {
		return "", fmt.Errorf("invalid threat level: %s", s)
	}
	return l, nil
}

// AllThreatLevels returns all ten levels in ascending rank order.
func AllThreatLevels() []ThreatLevel {
	levels := make([]ThreatLevel, len(levelBands))
	for i, band := range levelBands {
		levels[i] = band.level
	}
	return levels
}
