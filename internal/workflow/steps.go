package workflow

import (
	"github.com/dumitrudabija/aiamcp/internal/config"
)

// Step is one named unit of work in an assessment sequence
type Step struct {
	// Tool is the MCP tool name; results are keyed by it
	Tool string
	// DependsOn lists tools that must be completed (and, for the validation
	// gate, passed) before this step may run
	DependsOn []string
	// Required steps count toward completion; optional steps do not block
	// the session from reaching the completed state
	Required bool
	// Automatable steps may be run by auto_execute; manual steps need
	// information only a human can supply and always stop the auto run
	Automatable bool
}

// stepSequences is the static per-type table. Sequences are fixed at session
// creation and never mutated; completion percentages are computed against
// the required-step count of this same table, so numerator and denominator
// can never drift apart.
var stepSequences = map[AssessmentType][]Step{
	TypeAIAFull: {
		{Tool: config.ToolValidateDescription, Required: true, Automatable: true},
		{Tool: config.ToolAssessAIA, DependsOn: []string{config.ToolValidateDescription}, Required: true, Automatable: true},
		{Tool: config.ToolCollectAIAResponses, DependsOn: []string{config.ToolAssessAIA}, Required: true, Automatable: false},
		{Tool: config.ToolCalculateAIAScore, DependsOn: []string{config.ToolCollectAIAResponses}, Required: true, Automatable: true},
		{Tool: config.ToolGenerateReportData, DependsOn: []string{config.ToolCalculateAIAScore}, Required: true, Automatable: true},
		{Tool: config.ToolExportReport, DependsOn: []string{config.ToolGenerateReportData}, Required: false, Automatable: true},
	},
	TypeAIAPreview: {
		{Tool: config.ToolValidateDescription, Required: true, Automatable: true},
		{Tool: config.ToolAssessAIA, DependsOn: []string{config.ToolValidateDescription}, Required: true, Automatable: true},
		{Tool: config.ToolCalculateAIAScore, DependsOn: []string{config.ToolAssessAIA}, Required: true, Automatable: true},
		{Tool: config.ToolGenerateReportData, DependsOn: []string{config.ToolCalculateAIAScore}, Required: true, Automatable: true},
		{Tool: config.ToolExportReport, DependsOn: []string{config.ToolGenerateReportData}, Required: false, Automatable: true},
	},
	TypeOSFI: {
		{Tool: config.ToolValidateDescription, Required: true, Automatable: true},
		{Tool: config.ToolAssessOSFI, DependsOn: []string{config.ToolValidateDescription}, Required: true, Automatable: true},
		{Tool: config.ToolSetLifecycleStage, DependsOn: []string{config.ToolValidateDescription}, Required: true, Automatable: false},
		{Tool: config.ToolGenerateReportData, DependsOn: []string{config.ToolAssessOSFI, config.ToolSetLifecycleStage}, Required: true, Automatable: true},
		{Tool: config.ToolExportReport, DependsOn: []string{config.ToolGenerateReportData}, Required: false, Automatable: true},
	},
	TypeCombined: {
		{Tool: config.ToolValidateDescription, Required: true, Automatable: true},
		{Tool: config.ToolAssessAIA, DependsOn: []string{config.ToolValidateDescription}, Required: true, Automatable: true},
		{Tool: config.ToolAssessOSFI, DependsOn: []string{config.ToolValidateDescription}, Required: true, Automatable: true},
		{Tool: config.ToolSetLifecycleStage, DependsOn: []string{config.ToolValidateDescription}, Required: true, Automatable: false},
		{Tool: config.ToolGenerateReportData, DependsOn: []string{config.ToolAssessAIA, config.ToolAssessOSFI, config.ToolSetLifecycleStage}, Required: true, Automatable: true},
		{Tool: config.ToolExportReport, DependsOn: []string{config.ToolGenerateReportData}, Required: false, Automatable: true},
	},
}

// SequenceFor returns a copy of the step sequence for an assessment type
func SequenceFor(t AssessmentType) ([]Step, bool) {
	seq, ok := stepSequences[t]
	if !ok {
		return nil, false
	}
	out := make([]Step, len(seq))
	copy(out, seq)
	return out, true
}

// RequiredStepCount returns the fixed number of required steps for a type.
// Both sides of the completion ratio read from this same table.
func RequiredStepCount(t AssessmentType) int {
	n := 0
	for _, st := range stepSequences[t] {
		if st.Required {
			n++
		}
	}
	return n
}

// findStep locates a step by tool name within a session's sequence
func findStep(s *Session, tool string) (Step, bool) {
	for _, st := range s.StepSequence {
		if st.Tool == tool {
			return st, true
		}
	}
	return Step{}, false
}

// ValidateDependencies checks that every prerequisite of tool is satisfied in
// the session. A dependency on the validation gate additionally requires the
// recorded result to have passed; a completed-but-failed validation gates
// dependents exactly like a missing one.
func ValidateDependencies(s *Session, tool string) error {
	step, ok := findStep(s, tool)
	if !ok {
		return ErrUnknownTool
	}

	var missing []string
	for _, dep := range step.DependsOn {
		if !s.Completed(dep) {
			missing = append(missing, dep)
			continue
		}
		if gated, ok := s.ToolResults[dep].(Gated); ok && !gated.GatePassed() {
			return &ValidationBlockedError{Tool: tool}
		}
	}
	if len(missing) > 0 {
		return &DependencyError{Tool: tool, Missing: missing}
	}
	return nil
}
