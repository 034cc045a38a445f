package inference

import "fmt"

// LogicType identifies the reasoning mode that produced an inference.
type LogicType string

const (
	// LogicDeductive indicates reasoning from general rules to a certain conclusion.
	// Examples: "vault policy forbids foreign access" + "access from abroad" => violation
	LogicDeductive LogicType = "deductive"

	// LogicInductive indicates generalization from repeated observations.
	// Examples: repeated off-hours access implies an emerging access pattern
	LogicInductive LogicType = "inductive"

	// LogicAbductive indicates inference to the most likely explanation.
	// Examples: failed unlocks followed by success suggests credential guessing
	LogicAbductive LogicType = "abductive"

	// LogicStatistical indicates probability-based reasoning over history.
	// Examples: access frequency exceeds the 99th percentile of the baseline
	LogicStatistical LogicType = "statistical"

	// LogicAnalogical indicates reasoning by similarity to known incidents.
	// Examples: activity resembles a previously confirmed exfiltration case
	LogicAnalogical LogicType = "analogical"

	// LogicTemporal indicates reasoning about ordering and timing of events.
	// Examples: impossible travel between two access locations within an hour
	LogicTemporal LogicType = "temporal"

	// LogicModal indicates reasoning about possibility and necessity.
	// Examples: given current device state, compromise is possible but not certain
	LogicModal LogicType = "modal"
)

// IsValid returns true if the logic type is one of the seven reasoning modes.
func (t LogicType) IsValid() bool {
	switch t {
	case LogicDeductive, LogicInductive, LogicAbductive, LogicStatistical,
		LogicAnalogical, LogicTemporal, LogicModal:
		return true
	default:
		return false
	}
}

// String returns the string representation of the logic type.
func (t LogicType) String() string {
	return string(t)
}

// ParseLogicType parses a string into a LogicType value.
// Returns an error if the string is not a valid reasoning mode.
func ParseLogicType(s string) (LogicType, error) {
	t := LogicType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid logic type: %s", s)
	}
	return t, nil
}

// AllLogicTypes returns all seven reasoning modes in certainty order,
// from the most certain (deductive) to the least (analogical).
func AllLogicTypes() []LogicType {
	return []LogicType{
		LogicDeductive,
		LogicStatistical,
		LogicInductive,
		LogicTemporal,
		LogicAbductive,
		LogicModal,
		LogicAnalogical,
	}
}
