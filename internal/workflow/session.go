package workflow

import (
	"time"
)

// SessionState represents the lifecycle state of an assessment session
type SessionState string

const (
	// SessionStateCreated indicates the session exists but no step has run
	SessionStateCreated SessionState = "created"
	// SessionStateInProgress indicates at least one step has completed
	SessionStateInProgress SessionState = "in_progress"
	// SessionStateCompleted indicates every required step has completed
	SessionStateCompleted SessionState = "completed"
	// SessionStateFailed indicates an unrecoverable validation block
	SessionStateFailed SessionState = "failed"
)

// AssessmentType selects which fixed step sequence applies to a session
type AssessmentType string

const (
	// TypeAIAFull is the full Algorithmic Impact Assessment with questionnaire
	TypeAIAFull AssessmentType = "aia_full"
	// TypeAIAPreview is the keyword-only AIA estimate without questionnaire
	TypeAIAPreview AssessmentType = "aia_preview"
	// TypeOSFI is the OSFI Guideline E-23 model risk assessment
	TypeOSFI AssessmentType = "osfi_e23"
	// TypeCombined runs both frameworks against one project
	TypeCombined AssessmentType = "combined"
)

// KnownAssessmentType reports whether t is a recognized assessment type
func KnownAssessmentType(t AssessmentType) bool {
	switch t {
	case TypeAIAFull, TypeAIAPreview, TypeOSFI, TypeCombined:
		return true
	}
	return false
}

// LifecycleStage is a user-declared model lifecycle phase. It is only ever
// set through explicit input; nothing in this package derives it from
// free text.
type LifecycleStage string

const (
	StageDesign      LifecycleStage = "design"
	StageDevelopment LifecycleStage = "development"
	StageValidation  LifecycleStage = "validation"
	StageDeployment  LifecycleStage = "deployment"
	StageMonitoring  LifecycleStage = "monitoring"
)

// DefaultStage is used when the caller explicitly declines to pick a stage.
const DefaultStage = StageDesign

// KnownStage reports whether s is one of the five recognized stages
func KnownStage(s LifecycleStage) bool {
	switch s {
	case StageDesign, StageDevelopment, StageValidation, StageDeployment, StageMonitoring:
		return true
	}
	return false
}

// Session represents one assessment workflow instance
type Session struct {
	ID                 string
	AssessmentType     AssessmentType
	ProjectName        string
	ProjectDescription string
	State              SessionState
	// StepSequence is fixed at creation from the per-type table and never
	// mutated afterwards.
	StepSequence   []Step
	CompletedTools map[string]bool
	ToolResults    map[string]ToolResult
	CreatedAt      time.Time
	LastAccessed   time.Time
	// LifecycleStage is empty until set explicitly via the store
	LifecycleStage LifecycleStage
}

// Completed reports whether the named tool has executed successfully
func (s *Session) Completed(tool string) bool {
	return s.CompletedTools[tool]
}

// Result returns the stored result for a completed tool
func (s *Session) Result(tool string) (ToolResult, bool) {
	r, ok := s.ToolResults[tool]
	return r, ok
}

// clone returns a deep copy so callers cannot mutate store state
func (s *Session) clone() *Session {
	cp := *s
	cp.StepSequence = make([]Step, len(s.StepSequence))
	copy(cp.StepSequence, s.StepSequence)
	cp.CompletedTools = make(map[string]bool, len(s.CompletedTools))
	for k, v := range s.CompletedTools {
		cp.CompletedTools[k] = v
	}
	cp.ToolResults = make(map[string]ToolResult, len(s.ToolResults))
	for k, v := range s.ToolResults {
		if c, ok := v.(ResultCopier); ok {
			cp.ToolResults[k] = c.CopyResult()
		} else {
			cp.ToolResults[k] = v
		}
	}
	return &cp
}
