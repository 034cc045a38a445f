package inference

import "testing"

func TestThreatCategory_IsValid(t *testing.T) {
	tests := []struct {
		name string
		c    ThreatCategory
		want bool
	}{
		{"access pattern is valid", CategoryAccessPattern, true},
		{"geographic is valid", CategoryGeographic, true},
		{"document content is valid", CategoryDocumentContent, true},
		{"behavioral is valid", CategoryBehavioral, true},
		{"external threat is valid", CategoryExternalThreat, true},
		{"compliance is valid", CategoryCompliance, true},
		{"data exfiltration is valid", CategoryDataExfiltration, true},
		{"empty is invalid", ThreatCategory(""), false},
		{"unknown is invalid", ThreatCategory("insider"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.IsValid(); got != tt.want {
				t.Errorf("ThreatCategory.IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestThreatCategory_DisplayName(t *testing.T) {
	if got := CategoryDataExfiltration.DisplayName(); got != "Data Exfiltration" {
		t.Errorf("DisplayName() = %q, want %q", got, "Data Exfiltration")
	}
	if got := CategoryAccessPattern.DisplayName(); got != "Access Pattern" {
		t.Errorf("DisplayName() = %q, want %q", got, "Access Pattern")
	}
}

func TestCategorizeText(t *testing.T) {
	tests := []struct {
		name        string
		conclusion  string
		observation string
		want        ThreatCategory
	}{
		{"travel keywords route to geographic", "Impossible travel detected", "travel between regions", CategoryGeographic},
		{"access keywords route to access pattern", "Possible brute force attempt", "", CategoryAccessPattern},
		{"malware keywords route to document content", "Malware signature in uploaded file", "", CategoryDocumentContent},
		{"hipaa keywords route to compliance", "HIPAA-scoped documents lack audit trail", "", CategoryCompliance},
		{"exfiltration keywords route to data exfiltration", "Possible exfiltration via sharing sink", "", CategoryDataExfiltration},
		{"observation text is also scanned", "Elevated risk", "unusual session timing", CategoryBehavioral},
		{"blacklist keywords route to external threat", "Request from blacklisted network", "", CategoryExternalThreat},
		{"unmatched text defaults to behavioral", "Elevated risk posture", "", CategoryBehavioral},
		{"matching is case-insensitive", "IMPOSSIBLE TRAVEL DETECTED", "", CategoryGeographic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CategorizeText(tt.conclusion, tt.observation); got != tt.want {
				t.Errorf("CategorizeText(%q, %q) = %v, want %v", tt.conclusion, tt.observation, got, tt.want)
			}
		})
	}
}

func TestAllThreatCategories(t *testing.T) {
	cats := AllThreatCategories()
	if len(cats) != 7 {
		t.Fatalf("AllThreatCategories() returned %d categories, want 7", len(cats))
	}
	for _, c := range cats {
		if !c.IsValid() {
			t.Errorf("AllThreatCategories() contains invalid category %q", c)
		}
	}
}
