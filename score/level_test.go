package score

import "testing"

func TestClassifyLevel(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  ThreatLevel
	}{
		{"zero is minimal", 0, LevelMinimal},
		{"mid first band", 5.0, LevelMinimal},
		{"boundary 10.0 stays minimal", 10.0, LevelMinimal},
		{"just below first threshold", 10.05, LevelMinimal},
		{"first threshold crosses to very low", 10.1, LevelVeryLow},
		{"boundary 20.0 stays very low", 20.0, LevelVeryLow},
		{"threshold 20.1 crosses to low", 20.1, LevelLow},
		{"threshold 30.1 crosses to low-medium", 30.1, LevelLowMedium},
		{"threshold 40.1 crosses to medium", 40.1, LevelMedium},
		{"threshold 50.1 crosses to medium-high", 50.1, LevelMediumHigh},
		{"threshold 60.1 crosses to high", 60.1, LevelHigh},
		{"threshold 70.1 crosses to high-critical", 70.1, LevelHighCritical},
		{"threshold 80.1 crosses to critical", 80.1, LevelCritical},
		{"just below extreme", 90.05, LevelCritical},
		{"threshold 90.1 crosses to extreme", 90.1, LevelExtreme},
		{"maximum is extreme", 100, LevelExtreme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyLevel(tt.score); got != tt.want {
				t.Errorf("ClassifyLevel(%v) = %v, want %v", tt.score, got, tt.want)
			}
		})
	}
}

func TestClassifyLevel_Monotonic(t *testing.T) {
	prev := 0
	for s := 0.0; s <= 100.0; s += 0.05 {
		rank := ClassifyLevel(s).Rank()
		if rank < prev {
			t.Fatalf("rank decreased at score %v: %d < %d", s, rank, prev)
		}
		prev = rank
	}
}

func TestThreatLevel_Rank(t *testing.T) {
	levels := AllThreatLevels()
	if len(levels) != 10 {
		t.Fatalf("AllThreatLevels() returned %d levels, want 10", len(levels))
	}
	for i, l := range levels {
		if got := l.Rank(); got != i+1 {
			t.Errorf("%s.Rank() = %d, want %d", l, got, i+1)
		}
	}
	if got := ThreatLevel("unknown").Rank(); got != 0 {
		t.Errorf("invalid level Rank() = %d, want 0", got)
	}
}

func TestThreatLevel_RequiresAction(t *testing.T) {
	tests := []struct {
		level         ThreatLevel
		action        bool
		immediateNeed bool
	}{
		{LevelMinimal, false, false},
		{LevelMedium, false, false},
		{LevelMediumHigh, true, false},
		{LevelHigh, true, false},
		{LevelHighCritical, true, true},
		{LevelCritical, true, true},
		{LevelExtreme, true, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			if got := tt.level.RequiresAction(); got != tt.action {
				t.Errorf("%s.RequiresAction() = %v, want %v", tt.level, got, tt.action)
			}
			if got := tt.level.RequiresImmediateAction(); got != tt.immediateNeed {
				t.Errorf("%s.RequiresImmediateAction() = %v, want %v", tt.level, got, tt.immediateNeed)
			}
		})
	}
}

func TestParseThreatLevel(t *testing.T) {
	got, err := ParseThreatLevel("high_critical")
	if err != nil {
		t.Fatalf("ParseThreatLevel(high_critical) error = %v", err)
	}
	if got != LevelHighCritical {
		t.Errorf("ParseThreatLevel(high_critical) = %v, want %v", got, LevelHighCritical)
	}

	if _, err := ParseThreatLevel("apocalyptic"); err == nil {
		t.Error("ParseThreatLevel(apocalyptic) expected error, got nil")
	}
}

func TestThreatLevel_DisplayName(t *testing.T) {
	if got := LevelLowMedium.DisplayName(); got != "Low-Medium" {
		t.Errorf("DisplayName() = %q, want %q", got, "Low-Medium")
	}
}
