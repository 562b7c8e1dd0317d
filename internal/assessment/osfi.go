package assessment

import "strings"

// OSFI E-23 risk rating thresholds on the materiality-adjusted score
const (
	osfiLowMax    = 25.0
	osfiMediumMax = 50.0
	osfiHighMax   = 75.0
)

// AssessOSFI maps a project description to E-23 model risk factors, applies
// the materiality multiplier and produces a discrete risk rating.
func AssessOSFI(description, projectName string) OSFIResult {
	text := strings.ToLower(description)

	factors := make(map[string]bool, len(osfiRuleset.Factors))
	raw := 0
	for _, f := range osfiRuleset.Factors {
		factors[f.Name] = false
		for _, kw := range f.Keywords {
			if strings.Contains(text, kw) {
				factors[f.Name] = true
				raw += f.Weight
				break
			}
		}
	}

	materiality, multiplier := materialityTier(text)

	base := float64(raw) / float64(osfiRuleset.MaxScore()) * 100
	score := base * multiplier
	if score > 100 {
		score = 100
	}

	return OSFIResult{
		ProjectName:     projectName,
		RiskScore:       score,
		RiskRating:      RiskRating(score),
		Materiality:     materiality,
		DetectedFactors: factors,
	}
}

// materialityTier returns the first matching tier, high checked first
func materialityTier(text string) (string, float64) {
	for _, tier := range materialityRules {
		for _, kw := range tier.Keywords {
			if strings.Contains(text, kw) {
				return tier.Tier, tier.Multiplier
			}
		}
	}
	return "low", 1.0
}

// RiskRating maps a materiality-adjusted score onto the E-23 rating scale
func RiskRating(score float64) string {
	switch {
	case score <= osfiLowMax:
		return "Low"
	case score <= osfiMediumMax:
		return "Medium"
	case score <= osfiHighMax:
		return "High"
	default:
		return "Critical"
	}
}
