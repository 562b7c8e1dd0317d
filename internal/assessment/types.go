// Package assessment implements the regulatory scoring collaborators: the
// framework detector, the description validator and the AIA / OSFI E-23
// keyword assessors. Everything here is a pure function over static
// rulesets; no workflow state is read or written.
package assessment

import "github.com/dumitrudabija/aiamcp/internal/workflow"

// Framework tags produced by the detector
const (
	FrameworkAIA     = "aia"
	FrameworkOSFI    = "osfi-e23"
	FrameworkBoth    = "both"
	FrameworkUnknown = "unknown"
)

// FrameworkMatch is the detector's classification of free-text user context
type FrameworkMatch struct {
	Framework       string   `json:"framework"`
	Confidence      float64  `json:"confidence"`
	MatchedKeywords []string `json:"matched_keywords,omitempty"`
}

// ValidationResult is the description validator's pass/fail gate outcome
type ValidationResult struct {
	Passed    bool            `json:"passed"`
	WordCount int             `json:"word_count"`
	Coverage  map[string]bool `json:"coverage"`
	Details   string          `json:"details"`
}

// ResultKind implements workflow.ToolResult
func (ValidationResult) ResultKind() string { return workflow.KindValidation }

// GatePassed implements workflow.Gated
func (r ValidationResult) GatePassed() bool { return r.Passed }

// CopyResult implements workflow.ResultCopier
func (r ValidationResult) CopyResult() workflow.ToolResult {
	cp := r
	cp.Coverage = copyBoolMap(r.Coverage)
	return cp
}

// AIAResult is an Algorithmic Impact Assessment outcome. ImpactLevel is one
// of the four AIA impact levels, "I" through "IV".
type AIAResult struct {
	ProjectName     string          `json:"project_name"`
	RawScore        int             `json:"raw_score"`
	MaxScore        int             `json:"max_score"`
	Percentage      float64         `json:"percentage"`
	ImpactLevel     string          `json:"impact_level"`
	DetectedFactors map[string]bool `json:"detected_factors"`
}

// ResultKind implements workflow.ToolResult
func (AIAResult) ResultKind() string { return workflow.KindAssessment }

// RiskSummary implements workflow.ScoreCarrier
func (r AIAResult) RiskSummary() (float64, string, bool) {
	return r.Percentage, r.ImpactLevel, r.ImpactLevel != "" && r.MaxScore > 0
}

// CopyResult implements workflow.ResultCopier
func (r AIAResult) CopyResult() workflow.ToolResult {
	cp := r
	cp.DetectedFactors = copyBoolMap(r.DetectedFactors)
	return cp
}

// OSFIResult is an OSFI Guideline E-23 model risk outcome
type OSFIResult struct {
	ProjectName     string          `json:"project_name"`
	RiskScore       float64         `json:"risk_score"`
	RiskRating      string          `json:"risk_rating"`
	Materiality     string          `json:"materiality"`
	DetectedFactors map[string]bool `json:"detected_factors"`
}

// ResultKind implements workflow.ToolResult
func (OSFIResult) ResultKind() string { return workflow.KindAssessment }

// RiskSummary implements workflow.ScoreCarrier
func (r OSFIResult) RiskSummary() (float64, string, bool) {
	return r.RiskScore, r.RiskRating, r.RiskRating != ""
}

// CopyResult implements workflow.ResultCopier
func (r OSFIResult) CopyResult() workflow.ToolResult {
	cp := r
	cp.DetectedFactors = copyBoolMap(r.DetectedFactors)
	return cp
}

// Question is one AIA questionnaire entry
type Question struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Weight int    `json:"weight"`
}

// ResponsesResult records manually collected questionnaire answers
type ResponsesResult struct {
	Answers  map[string]bool `json:"answers"`
	Answered int             `json:"answered"`
	RawScore int             `json:"raw_score"`
	MaxScore int             `json:"max_score"`
}

// ResultKind implements workflow.ToolResult
func (ResponsesResult) ResultKind() string { return workflow.KindResponses }

// CopyResult implements workflow.ResultCopier
func (r ResponsesResult) CopyResult() workflow.ToolResult {
	cp := r
	cp.Answers = copyBoolMap(r.Answers)
	return cp
}

func copyBoolMap(m map[string]bool) map[string]bool {
	if m == nil {
		return nil
	}
	cp := make(map[string]bool, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return cp
}
