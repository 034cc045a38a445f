package score

import (
	"sort"

	"github.com/khandoba/threatindex/inference"
)

// RankContributions maps each inference to its individual contribution
// record: the contribution score is the inference's severity basis damped by
// its own confidence and the weight of its reasoning mode, independent of
// any aggregate. The returned list is sorted descending by contribution
// score, ties broken by descending confidence, then by input order.
//
// Downstream consumers depend on this ordering: "top contributions" always
// means the first N entries of this list.
func RankContributions(infs []inference.LogicalInference, w Weights) []Contribution {
	if len(infs) == 0 {
		return nil
	}

	contribs := make([]Contribution, len(infs))
	for i := range infs {
		cs := clamp100(infs[i].SeverityBasis() * infs[i].Confidence * w.LogicWeight(infs[i].Type))
		contribs[i] = Contribution{
			InferenceID: infs[i].ID,
			LogicType:   infs[i].Type,
			Category:    infs[i].ResolvedCategory(),
			Score:       cs,
			Confidence:  infs[i].Confidence,
			Impact:      ImpactForScore(cs),
			Conclusion:  infs[i].Conclusion,
		}
	}

	sort.SliceStable(contribs, func(a, b int) bool {
		if contribs[a].Score != contribs[b].Score {
			return contribs[a].Score > contribs[b].Score
		}
		return contribs[a].Confidence > contribs[b].Confidence
	})
	return contribs
}
