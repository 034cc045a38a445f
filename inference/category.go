package inference

import (
	"fmt"
	"strings"
)

// ThreatCategory classifies the kind of threat an inference points at.
type ThreatCategory string

const (
	// CategoryAccessPattern indicates anomalous vault access patterns.
	// Examples: brute-force unlock attempts, rapid repeated access
	CategoryAccessPattern ThreatCategory = "access_pattern"

	// CategoryGeographic indicates location-based anomalies.
	// Examples: impossible travel, access from an unknown region
	CategoryGeographic ThreatCategory = "geographic"

	// CategoryDocumentContent indicates risks in stored document content.
	// Examples: malware signatures, sensitive content in unprotected documents
	CategoryDocumentContent ThreatCategory = "document_content"

	// CategoryBehavioral indicates deviations from the owner's usual behavior.
	// Examples: unusual session length, atypical operation mix
	CategoryBehavioral ThreatCategory = "behavioral"

	// CategoryExternalThreat indicates indicators originating outside the vault.
	// Examples: access from blacklisted IP ranges, known-malicious clients
	CategoryExternalThreat ThreatCategory = "external_threat"

	// CategoryCompliance indicates regulatory or policy exposure.
	// Examples: HIPAA-scoped documents without audit logging enabled
	CategoryCompliance ThreatCategory = "compliance"

	// CategoryDataExfiltration indicates data leaving the vault improperly.
	// Examples: bulk exports, suspicious sharing sinks
	CategoryDataExfiltration ThreatCategory = "data_exfiltration"
)

// IsValid returns true if the category is one of the seven threat categories.
func (c ThreatCategory) IsValid() bool {
	switch c {
	case CategoryAccessPattern,
		CategoryGeographic,
		CategoryDocumentContent,
		CategoryBehavioral,
		CategoryExternalThreat,
		CategoryCompliance,
		CategoryDataExfiltration:
		return true
	default:
		return false
	}
}

// String returns the string representation of the category.
func (c ThreatCategory) String() string {
	return string(c)
}

// DisplayName returns a human-readable display name for the category.
func (c ThreatCategory) DisplayName() string {
	switch c {
	case CategoryAccessPattern:
		return "Access Pattern"
	case CategoryGeographic:
		return "Geographic"
	case CategoryDocumentContent:
		return "Document Content"
	case CategoryBehavioral:
		return "Behavioral"
	case CategoryExternalThreat:
		return "External Threat"
	case CategoryCompliance:
		return "Compliance"
	case CategoryDataExfiltration:
		return "Data Exfiltration"
	default:
		return string(c)
	}
}

// ParseThreatCategory parses a string into a ThreatCategory value.
// Returns an error if the string is not a valid category.
func ParseThreatCategory(s string) (ThreatCategory, error) {
	c := ThreatCategory(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid threat category: %s", s)
	}
	return c, nil
}

// AllThreatCategories returns all seven threat categories.
func AllThreatCategories() []ThreatCategory {
	return []ThreatCategory{
		CategoryAccessPattern,
		CategoryGeographic,
		CategoryDocumentContent,
		CategoryBehavioral,
		CategoryExternalThreat,
		CategoryCompliance,
		CategoryDataExfiltration,
	}
}

// categoryKeywords routes untagged inferences to a category by scanning the
// conclusion and observation text. Order matters: earlier rules win.
var categoryKeywords = []struct {
	category ThreatCategory
	words    []string
}{
	{CategoryGeographic, []string{"location", "geographic", "travel", "geofence"}},
	{CategoryAccessPattern, []string{"access", "brute force", "rapid", "unlock attempt"}},
	{CategoryDocumentContent, []string{"malware", "file", "document", "content"}},
	{CategoryCompliance, []string{"compliance", "hipaa", "gdpr", "legal", "audit"}},
	{CategoryDataExfiltration, []string{"exfiltration", "data flow", "sink", "export"}},
	{CategoryBehavioral, []string{"behavior", "pattern", "unusual", "session"}},
	{CategoryExternalThreat, []string{"malicious", "blacklist", "ip", "external"}},
}

// CategorizeText derives a threat category from free-form conclusion and
// observation text. It is the fallback for inferences whose producer did not
// tag a category. Unmatched text defaults to CategoryBehavioral.
func CategorizeText(conclusion, observation string) ThreatCategory {
	conclusion = strings.ToLower(conclusion)
	observation = strings.ToLower(observation)

	for _, rule := range categoryKeywords {
		for _, w := range rule.words {
			if strings.Contains(conclusion, w) || strings.Contains(observation, w) {
				return rule.category
			}
		}
	}
	return CategoryBehavioral
}
