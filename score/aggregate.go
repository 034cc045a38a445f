package score

import (
	"sort"

	"github.com/khandoba/threatindex/inference"
)

// accumulator collects the confidence-weighted mean of per-inference threat
// signals for one partition (a reasoning mode or a threat category).
//
// Each inference contributes basis*confidence, weighted again by confidence,
// so the partition score is sum(conf^2 * basis) / sum(conf). A single
// maximally-confident, maximally-severe inference (basis 100, confidence 1.0)
// drives its partition to exactly 100; lower-confidence evidence is damped
// twice, once in the signal and once in the mean.
//
// Terms are held individually and summed in sorted order at score time, so
// the result is bit-identical for every reordering of the same batch;
// floating-point addition is not associative, and a streaming sum would leak
// the input order into the score.
type accumulator struct {
	weighted []float64
	confs    []float64
}

func (a *accumulator) add(inf inference.LogicalInference) {
	a.weighted = append(a.weighted, inf.Confidence*inf.Confidence*inf.SeverityBasis())
	a.confs = append(a.confs, inf.Confidence)
}

func (a accumulator) score() float64 {
	confSum := canonicalSum(a.confs)
	if confSum == 0 {
		return 0
	}
	return clamp100(canonicalSum(a.weighted) / confSum)
}

// canonicalSum adds the terms in ascending numeric order, giving one fixed
// summation order for any permutation of the same terms.
func canonicalSum(terms []float64) float64 {
	sort.Float64s(terms)
	var sum float64
	for _, t := range terms {
		sum += t
	}
	return sum
}

// AggregateLogic reduces the inference batch to one aggregate score per
// reasoning mode. Modes with no supporting inferences score zero.
func AggregateLogic(infs []inference.LogicalInference) LogicComponentScores {
	acc := make(map[inference.LogicType]*accumulator, 7)
	for i := range infs {
		a, ok := acc[infs[i].Type]
		if !ok {
			a = &accumulator{}
			acc[infs[i].Type] = a
		}
		a.add(infs[i])
	}

	var s LogicComponentScores
	for t, a := range acc {
		switch t {
		case inference.LogicDeductive:
			s.Deductive = a.score()
		case inference.LogicInductive:
			s.Inductive = a.score()
		case inference.LogicAbductive:
			s.Abductive = a.score()
		case inference.LogicStatistical:
			s.Statistical = a.score()
		case inference.LogicAnalogical:
			s.Analogical = a.score()
		case inference.LogicTemporal:
			s.Temporal = a.score()
		case inference.LogicModal:
			s.Modal = a.score()
		}
	}
	return s
}

// AggregateCategories reduces the inference batch to one aggregate score per
// threat category, partitioning the same input by resolved category instead
// of reasoning mode. Categories with no supporting inferences score zero.
func AggregateCategories(infs []inference.LogicalInference) ThreatCategoryScores {
	acc := make(map[inference.ThreatCategory]*accumulator, 7)
	for i := range infs {
		c := infs[i].ResolvedCategory()
		a, ok := acc[c]
		if !ok {
			a = &accumulator{}
			acc[c] = a
		}
		a.add(infs[i])
	}

	var s ThreatCategoryScores
	for c, a := range acc {
		switch c {
		case inference.CategoryAccessPattern:
			s.AccessPattern = a.score()
		case inference.CategoryGeographic:
			s.Geographic = a.score()
		case inference.CategoryDocumentContent:
			s.DocumentContent = a.score()
		case inference.CategoryBehavioral:
			s.Behavioral = a.score()
		case inference.CategoryExternalThreat:
			s.ExternalThreat = a.score()
		case inference.CategoryCompliance:
			s.Compliance = a.score()
		case inference.CategoryDataExfiltration:
			s.DataExfiltration = a.score()
		}
	}
	return s
}

func clamp100(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
