package score

// Impact buckets a contribution score into one of four coarse bands used in
// breakdown views and recommendation triggers.
type Impact string

const (
	ImpactLow      Impact = "low"      // contribution below 26
	ImpactMedium   Impact = "medium"   // contribution 26 to 50
	ImpactHigh     Impact = "high"     // contribution 51 to 75
	ImpactCritical Impact = "critical" // contribution 76 and above
)

// ImpactForScore buckets a contribution score. The bucket is always derived
// from the score, never stored independently of it.
func ImpactForScore(contribution float64) Impact {
	switch {
	case contribution >= 76:
		return ImpactCritical
	case contribution >= 51:
		return ImpactHigh
	case contribution >= 26:
		return ImpactMedium
	default:
		return ImpactLow
	}
}

// String returns the string representation of the impact bucket.
func (i Impact) String() string {
	return string(i)
}

// Urgency tags how quickly a recommendation should be acted on.
type Urgency string

const (
	UrgencyImmediate Urgency = "immediate" // act within the hour
	UrgencyUrgent    Urgency = "urgent"    // act within a day
	UrgencyImportant Urgency = "important" // act within a week
	UrgencyRoutine   Urgency = "routine"   // act within a month
)

// UrgencyForScore derives urgency from a score using the same band
// thresholds as the threat level table: Immediate at High-Critical and
// above, Urgent at Medium-High, Important at Low-Medium, else Routine.
func UrgencyForScore(score float64) Urgency {
	switch rank := ClassifyLevel(score).Rank(); {
	case rank >= 8:
		return UrgencyImmediate
	case rank >= 6:
		return UrgencyUrgent
	case rank >= 4:
		return UrgencyImportant
	default:
		return UrgencyRoutine
	}
}

// String returns the string representation of the urgency.
func (u Urgency) String() string {
	return string(u)
}
