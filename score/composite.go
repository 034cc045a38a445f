package score

import "math"

// Composite combines the fourteen aggregate fields into one 0-100 score:
// the weighted mean of the seven logic-mode scores blended with the weighted
// mean of the seven category scores, LogicShare to CategoryShare. The result
// is rounded to two decimal places, half away from zero.
//
// The same aggregates under the same weight set always yield a bit-identical
// composite; there is no hidden state and no randomness.
func Composite(logic LogicComponentScores, cats ThreatCategoryScores, w Weights) float64 {
	logicBlend := (logic.Deductive*w.Deductive +
		logic.Inductive*w.Inductive +
		logic.Abductive*w.Abductive +
		logic.Statistical*w.Statistical +
		logic.Analogical*w.Analogical +
		logic.Temporal*w.Temporal +
		logic.Modal*w.Modal) / w.logicWeightSum()

	catBlend := (cats.AccessPattern*w.AccessPattern +
		cats.Geographic*w.Geographic +
		cats.DocumentContent*w.DocumentContent +
		cats.Behavioral*w.Behavioral +
		cats.ExternalThreat*w.ExternalThreat +
		cats.Compliance*w.Compliance +
		cats.DataExfiltration*w.DataExfiltration) / w.categoryWeightSum()

	return Round2(clamp100(logicBlend*w.LogicShare + catBlend*w.CategoryShare))
}

// categoryImpact returns one category's contribution to the composite
// weighted sum: the expected composite reduction if that category's score
// dropped to zero. Recommendation impact estimates are computed from this.
func categoryImpact(categoryScore, categoryWeight float64, w Weights) float64 {
	return Round2(categoryScore * categoryWeight / w.categoryWeightSum() * w.CategoryShare)
}

// Round2 rounds to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
