package score

import (
	"math"
	"testing"

	"github.com/khandoba/threatindex/inference"
)

func mkInference(id string, t inference.LogicType, c inference.ThreatCategory, confidence, hint float64) inference.LogicalInference {
	return inference.LogicalInference{
		ID:           id,
		Type:         t,
		Method:       "test",
		Conclusion:   "test conclusion",
		Confidence:   confidence,
		Category:     c,
		SeverityHint: hint,
	}
}

func TestAggregateLogic_Empty(t *testing.T) {
	s := AggregateLogic(nil)
	if s != (LogicComponentScores{}) {
		t.Errorf("AggregateLogic(nil) = %+v, want all-zero", s)
	}
}

func TestAggregateLogic_SingleMaximalInference(t *testing.T) {
	infs := []inference.LogicalInference{
		mkInference("a", inference.LogicDeductive, inference.CategoryAccessPattern, 1.0, 100),
	}
	s := AggregateLogic(infs)
	if s.Deductive != 100.0 {
		t.Errorf("Deductive = %v, want 100 for a maximally-confident, maximally-severe inference", s.Deductive)
	}
	if s.Inductive != 0 || s.Statistical != 0 || s.Modal != 0 {
		t.Errorf("modes with no evidence must stay zero, got %+v", s)
	}
}

func TestAggregateLogic_ConfidenceDampsTwice(t *testing.T) {
	// conf 0.5, basis 80: partition score is 0.5 * 80 = 40.
	infs := []inference.LogicalInference{
		mkInference("a", inference.LogicInductive, inference.CategoryBehavioral, 0.5, 80),
	}
	s := AggregateLogic(infs)
	if s.Inductive != 40.0 {
		t.Errorf("Inductive = %v, want 40", s.Inductive)
	}
}

func TestAggregateCategories_SingleStrongGeographicSignal(t *testing.T) {
	// A single statistical/geographic inference with confidence 0.9 and
	// severity 95 must drive the geographic score high while every other
	// category stays zero.
	infs := []inference.LogicalInference{
		mkInference("a", inference.LogicStatistical, inference.CategoryGeographic, 0.9, 95),
	}
	s := AggregateCategories(infs)

	if s.Geographic < 80 {
		t.Errorf("Geographic = %v, want >= 80 for a single strong signal", s.Geographic)
	}
	if math.Abs(s.Geographic-85.5) > 1e-9 {
		t.Errorf("Geographic = %v, want 85.5", s.Geographic)
	}
	zero := []struct {
		name string
		val  float64
	}{
		{"AccessPattern", s.AccessPattern},
		{"DocumentContent", s.DocumentContent},
		{"Behavioral", s.Behavioral},
		{"ExternalThreat", s.ExternalThreat},
		{"Compliance", s.Compliance},
		{"DataExfiltration", s.DataExfiltration},
	}
	for _, f := range zero {
		if f.val != 0 {
			t.Errorf("%s = %v, want 0", f.name, f.val)
		}
	}
}

func TestAggregate_OrderIndependent(t *testing.T) {
	infs := []inference.LogicalInference{
		mkInference("a", inference.LogicDeductive, inference.CategoryAccessPattern, 1.0, 90),
		mkInference("b", inference.LogicDeductive, inference.CategoryAccessPattern, 0.5, 60),
		mkInference("c", inference.LogicTemporal, inference.CategoryGeographic, 0.25, 40),
		mkInference("d", inference.LogicStatistical, inference.CategoryDataExfiltration, 1.0, 75),
		mkInference("e", inference.LogicTemporal, inference.CategoryGeographic, 0.5, 100),
	}
	reversed := make([]inference.LogicalInference, len(infs))
	for i := range infs {
		reversed[len(infs)-1-i] = infs[i]
	}

	if a, b := AggregateLogic(infs), AggregateLogic(reversed); a != b {
		t.Errorf("AggregateLogic is order-dependent: %+v vs %+v", a, b)
	}
	if a, b := AggregateCategories(infs), AggregateCategories(reversed); a != b {
		t.Errorf("AggregateCategories is order-dependent: %+v vs %+v", a, b)
	}
}

func TestAggregate_BitIdenticalUnderPermutation(t *testing.T) {
	// Confidences 0.1, 0.2, 0.3 are not exactly representable, so a
	// streaming sum drifts across orderings (6 vs 5.999...). Every
	// permutation of the same batch must produce bit-identical scores.
	infs := []inference.LogicalInference{
		mkInference("a", inference.LogicDeductive, inference.CategoryAccessPattern, 0.1, 0),
		mkInference("b", inference.LogicDeductive, inference.CategoryAccessPattern, 0.2, 0),
		mkInference("c", inference.LogicDeductive, inference.CategoryAccessPattern, 0.3, 0),
	}
	perms := [][]int{
		{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
	}

	wantLogic := AggregateLogic(infs)
	wantCats := AggregateCategories(infs)
	for _, p := range perms {
		batch := []inference.LogicalInference{infs[p[0]], infs[p[1]], infs[p[2]]}
		if got := AggregateLogic(batch); got != wantLogic {
			t.Errorf("AggregateLogic(perm %v) = %+v, want %+v", p, got, wantLogic)
		}
		if got := AggregateCategories(batch); got != wantCats {
			t.Errorf("AggregateCategories(perm %v) = %+v, want %+v", p, got, wantCats)
		}
	}
}

func TestAggregate_WeightedMeanAcrossInferences(t *testing.T) {
	// Two deductive inferences: (1.0, 90) and (0.5, 60).
	// Weighted signal sum: 1.0*1.0*90 + 0.5*0.5*60 = 105; confidence sum 1.5.
	infs := []inference.LogicalInference{
		mkInference("a", inference.LogicDeductive, inference.CategoryAccessPattern, 1.0, 90),
		mkInference("b", inference.LogicDeductive, inference.CategoryAccessPattern, 0.5, 60),
	}
	s := AggregateLogic(infs)
	want := 105.0 / 1.5
	if math.Abs(s.Deductive-want) > 1e-9 {
		t.Errorf("Deductive = %v, want %v", s.Deductive, want)
	}
}

func TestAggregateCategories_UntaggedFallsBackToText(t *testing.T) {
	inf := mkInference("a", inference.LogicAbductive, "", 1.0, 50)
	inf.Conclusion = "Possible exfiltration via sharing sink"
	s := AggregateCategories([]inference.LogicalInference{inf})
	if s.DataExfiltration != 50.0 {
		t.Errorf("DataExfiltration = %v, want 50 via keyword fallback", s.DataExfiltration)
	}
}
