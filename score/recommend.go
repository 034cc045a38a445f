package score

import (
	"fmt"
	"sort"

	"github.com/khandoba/threatindex/inference"
)

// categoryActions maps each threat category to its standing remediation.
var categoryActions = map[inference.ThreatCategory]struct {
	action    string
	rationale string
}{
	inference.CategoryAccessPattern: {
		action:    "Require step-up authentication for all new vault sessions",
		rationale: "Anomalous access patterns detected",
	},
	inference.CategoryGeographic: {
		action:    "Enable geofencing restrictions",
		rationale: "Unusual geographic access patterns detected",
	},
	inference.CategoryDocumentContent: {
		action:    "Quarantine recently added documents pending content scan",
		rationale: "Document content risk indicators detected",
	},
	inference.CategoryBehavioral: {
		action:    "Review recent vault activity and revoke unrecognized sessions",
		rationale: "Behavior deviates from the owner's established baseline",
	},
	inference.CategoryExternalThreat: {
		action:    "Block access from known malicious IP addresses",
		rationale: "External threat indicators detected",
	},
	inference.CategoryCompliance: {
		action:    "Enable compliance review and audit logging",
		rationale: "Compliance exposure detected",
	},
	inference.CategoryDataExfiltration: {
		action:    "Suspend bulk export and external sharing until reviewed",
		rationale: "Data exfiltration indicators detected",
	},
}

// candidate is a recommendation before priorities are assigned. rank orders
// candidates by descending (driving score x driving confidence).
type candidate struct {
	rec  Recommendation
	rank float64
}

// Recommend derives the prioritized recommendation list for one assessment.
//
// One recommendation is emitted per category whose aggregate score reaches
// the action threshold, and one per Critical-impact contribution (carrying
// the producer's actionable note when present). An escalation recommendation
// leads the list when the composite itself reaches the Critical band. The
// result is capped at w.MaxRecommendations and sorted by ascending priority,
// 1 first.
func Recommend(cats ThreatCategoryScores, contribs []Contribution, composite float64, w Weights, infs []inference.LogicalInference) []Recommendation {
	var cands []candidate

	if composite >= 80 {
		cands = append(cands, candidate{
			rec: Recommendation{
				Category:       inference.CategoryAccessPattern,
				Action:         "Immediately lock vault and require dual-key authentication",
				Rationale:      "Composite threat score has reached the critical band",
				ExpectedImpact: 30.0,
				Urgency:        UrgencyImmediate,
			},
			// Pinned above every category- and contribution-driven entry.
			rank: composite * 2,
		})
	}

	// topConfidence is the highest contribution confidence per category,
	// used both for ranking and for the top-contribution rationale tie-in.
	topConfidence := make(map[inference.ThreatCategory]float64, 7)
	for _, c := range contribs {
		if c.Confidence > topConfidence[c.Category] {
			topConfidence[c.Category] = c.Confidence
		}
	}

	for _, cat := range inference.AllThreatCategories() {
		cs := cats.ForCategory(cat)
		if cs < w.ActionThreshold {
			continue
		}
		conf := topConfidence[cat]
		if conf == 0 {
			conf = 1.0
		}
		entry := categoryActions[cat]
		cands = append(cands, candidate{
			rec: Recommendation{
				Category:       cat,
				Action:         entry.action,
				Rationale:      entry.rationale,
				ExpectedImpact: categoryImpact(cs, w.CategoryWeight(cat), w),
				Urgency:        UrgencyForScore(cs),
			},
			rank: cs * conf,
		})
	}

	actionable := actionableByID(infs)
	for _, c := range contribs {
		if c.Impact != ImpactCritical {
			continue
		}
		action := actionable[c.InferenceID]
		if action == "" {
			action = fmt.Sprintf("Investigate: %s", c.Conclusion)
		}
		cands = append(cands, candidate{
			rec: Recommendation{
				Category:       c.Category,
				Action:         action,
				Rationale:      c.Conclusion,
				ExpectedImpact: categoryImpact(c.Score, w.CategoryWeight(c.Category), w),
				Urgency:        UrgencyForScore(c.Score),
			},
			rank: c.Score * c.Confidence,
		})
	}

	if len(cands) == 0 {
		return nil
	}

	sort.SliceStable(cands, func(a, b int) bool {
		return cands[a].rank > cands[b].rank
	})
	if len(cands) > w.MaxRecommendations {
		cands = cands[:w.MaxRecommendations]
	}

	recs := make([]Recommendation, len(cands))
	for i, c := range cands {
		c.rec.Priority = i + 1
		recs[i] = c.rec
	}
	return recs
}

func actionableByID(infs []inference.LogicalInference) map[string]string {
	m := make(map[string]string, len(infs))
	for i := range infs {
		if infs[i].Actionable != "" {
			m[infs[i].ID] = infs[i].Actionable
		}
	}
	return m
}
