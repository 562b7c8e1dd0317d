package assessment

import "strings"

// AIA impact level thresholds as percentage of the maximum score
const (
	aiaLevelIMax   = 25.0
	aiaLevelIIMax  = 50.0
	aiaLevelIIIMax = 75.0
)

// AssessAIA maps a project description to detected AIA risk factors, a
// weighted score and an impact level. Pure function: same description, same
// result.
func AssessAIA(description, projectName string) AIAResult {
	text := strings.ToLower(description)

	factors := make(map[string]bool, len(aiaRuleset.Factors))
	raw := 0
	for _, f := range aiaRuleset.Factors {
		factors[f.Name] = false
		for _, kw := range f.Keywords {
			if strings.Contains(text, kw) {
				factors[f.Name] = true
				raw += f.Weight
				break
			}
		}
	}

	max := aiaRuleset.MaxScore()
	pct := float64(raw) / float64(max) * 100

	return AIAResult{
		ProjectName:     projectName,
		RawScore:        raw,
		MaxScore:        max,
		Percentage:      pct,
		ImpactLevel:     ImpactLevel(pct),
		DetectedFactors: factors,
	}
}

// ScoreResponses converts collected questionnaire answers into a final AIA
// result. The denominator is the questionnaire's own maximum, never the
// keyword ruleset's: mixing the two tables is how percentage bugs happen.
func ScoreResponses(responses ResponsesResult, projectName string) AIAResult {
	max := QuestionMaxScore()
	pct := float64(responses.RawScore) / float64(max) * 100
	if pct > 100 {
		pct = 100
	}

	return AIAResult{
		ProjectName: projectName,
		RawScore:    responses.RawScore,
		MaxScore:    max,
		Percentage:  pct,
		ImpactLevel: ImpactLevel(pct),
	}
}

// CollectResponses validates answers against the questionnaire and computes
// the raw score. Unknown question ids are ignored.
func CollectResponses(answers map[string]bool) ResponsesResult {
	raw := 0
	answered := 0
	kept := make(map[string]bool, len(answers))
	for _, q := range aiaQuestions {
		v, ok := answers[q.ID]
		if !ok {
			continue
		}
		kept[q.ID] = v
		answered++
		if v {
			raw += q.Weight
		}
	}
	return ResponsesResult{
		Answers:  kept,
		Answered: answered,
		RawScore: raw,
		MaxScore: QuestionMaxScore(),
	}
}

// ImpactLevel maps a score percentage onto AIA impact levels I-IV
func ImpactLevel(percentage float64) string {
	switch {
	case percentage <= aiaLevelIMax:
		return "I"
	case percentage <= aiaLevelIIMax:
		return "II"
	case percentage <= aiaLevelIIIMax:
		return "III"
	default:
		return "IV"
	}
}
