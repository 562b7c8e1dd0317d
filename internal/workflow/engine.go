package workflow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dumitrudabija/aiamcp/internal/config"
)

// StepHandler executes one automatable step against session-derived input.
// Handlers are injected collaborators (validator, assessors, renderers); the
// engine owns sequencing, gating and result recording, never the domain work.
type StepHandler func(ctx context.Context, session *Session) (ToolResult, error)

// Engine orchestrates step execution across a session's fixed sequence
type Engine struct {
	store    *Store
	handlers map[string]StepHandler
	logger   *slog.Logger
	maxSteps int
}

// NewEngine creates an engine around the given store
func NewEngine(store *Store, logger *slog.Logger) *Engine {
	return &Engine{
		store:    store,
		handlers: make(map[string]StepHandler),
		logger:   logger,
		maxSteps: config.DefaultMaxAutoSteps,
	}
}

// Register adds or replaces the handler for a tool name
func (e *Engine) Register(tool string, handler StepHandler) {
	e.handlers[tool] = handler
}

// NextStep returns the first unexecuted, dependency-satisfied tool in the
// session's sequence. When the validation gate was attempted and failed, the
// gate itself is the next step: nothing else can move until it passes.
func (e *Engine) NextStep(session *Session) (string, bool) {
	if gateFailed(session) {
		return config.ToolValidateDescription, true
	}
	for _, step := range session.StepSequence {
		if session.Completed(step.Tool) {
			continue
		}
		if err := ValidateDependencies(session, step.Tool); err == nil {
			return step.Tool, true
		}
	}
	return "", false
}

// CanAutoExecute reports whether auto-execution may proceed. Terminal states
// and a failed validation gate both stop it; this is what prevents runaway
// auto-execution past a failed quality gate.
func (e *Engine) CanAutoExecute(session *Session) bool {
	if session.State == SessionStateCompleted || session.State == SessionStateFailed {
		return false
	}
	return !gateFailed(session)
}

// ExecuteStep runs a single named step: dependency validation, export guard,
// handler invocation, then result recording. Nothing is recorded when the
// handler fails.
func (e *Engine) ExecuteStep(ctx context.Context, sessionID, tool string) (ToolResult, error) {
	session, err := e.store.Get(sessionID)
	if err != nil {
		return nil, err
	}

	step, ok := findStep(session, tool)
	if !ok {
		return nil, ErrUnknownTool
	}
	if !step.Automatable {
		return nil, &ManualStepError{Tool: tool}
	}

	// A failed gate may itself be re-run; everything else stays blocked.
	if session.State == SessionStateFailed && tool != config.ToolValidateDescription {
		return nil, &ValidationBlockedError{Tool: tool}
	}

	if err := ValidateDependencies(session, tool); err != nil {
		return nil, err
	}

	if tool == config.ToolExportReport {
		if _, ok := CompleteAssessment(session); !ok {
			return nil, &ExportDataIncompleteError{SessionID: session.ID}
		}
	}

	handler, ok := e.handlers[tool]
	if !ok {
		return nil, fmt.Errorf("no handler registered for tool: %s", tool)
	}

	result, err := handler(ctx, session)
	if err != nil {
		e.logger.Error("step handler failed", "session_id", sessionID, "tool", tool, "error", err)
		return nil, err
	}

	if _, err := e.store.RecordResult(sessionID, tool, result); err != nil {
		return nil, err
	}

	e.logger.Info("step executed", "session_id", sessionID, "tool", tool,
		"automatable", step.Automatable)
	return result, nil
}

// CheckDependencies reports whether tool may run now, without executing or
// recording anything. Callers with side effects of their own use it to fail
// before mutating any state.
func (e *Engine) CheckDependencies(sessionID, tool string) error {
	session, err := e.store.Get(sessionID)
	if err != nil {
		return err
	}
	return ValidateDependencies(session, tool)
}

// RecordManualResult validates dependencies and records a result supplied by
// the user rather than produced by a registered handler (questionnaire
// responses, lifecycle stage declarations).
func (e *Engine) RecordManualResult(sessionID, tool string, result ToolResult) error {
	session, err := e.store.Get(sessionID)
	if err != nil {
		return err
	}
	if err := ValidateDependencies(session, tool); err != nil {
		return err
	}
	_, err = e.store.RecordResult(sessionID, tool, result)
	return err
}

// CompleteAssessment finds a complete risk outcome anywhere in the session,
// scanning the sequence in reverse so the most derived result wins. Export
// never proceeds on placeholder values; absence anywhere means the export
// must fail rather than render defaults.
func CompleteAssessment(session *Session) (ScoreCarrier, bool) {
	for i := len(session.StepSequence) - 1; i >= 0; i-- {
		result, ok := session.ToolResults[session.StepSequence[i].Tool]
		if !ok {
			continue
		}
		carrier, ok := result.(ScoreCarrier)
		if !ok {
			continue
		}
		if _, _, complete := carrier.RiskSummary(); complete {
			return carrier, true
		}
	}
	return nil, false
}

// Outcome status values for auto-execution reports
const (
	OutcomeExecuted = "executed"
	OutcomeSkipped  = "skipped"
	OutcomeError    = "error"
)

// StepOutcome is one entry of an auto-execution report, in execution order.
// Failed steps are always reported, never dropped.
type StepOutcome struct {
	Tool   string `json:"tool"`
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// AutoExecuteReport summarizes one bounded auto-execution run
type AutoExecuteReport struct {
	SessionID     string        `json:"session_id"`
	ExecutedSteps int           `json:"executed_steps"`
	Outcomes      []StepOutcome `json:"outcomes"`
	StoppedReason string        `json:"stopped_reason,omitempty"`
	NextStep      string        `json:"next_step,omitempty"`
}

// AutoExecute runs eligible steps in sequence order until maxSteps is
// reached, a manual step is next, a step fails, or the sequence is
// exhausted. maxSteps above the engine cap is clamped to it.
func (e *Engine) AutoExecute(ctx context.Context, sessionID string, maxSteps int) (*AutoExecuteReport, error) {
	if maxSteps <= 0 || maxSteps > e.maxSteps {
		maxSteps = e.maxSteps
	}

	session, err := e.store.Get(sessionID)
	if err != nil {
		return nil, err
	}

	report := &AutoExecuteReport{SessionID: sessionID}

	if !e.CanAutoExecute(session) {
		if gateFailed(session) {
			report.StoppedReason = "description validation did not pass"
		} else {
			report.StoppedReason = fmt.Sprintf("session is %s", session.State)
		}
		return report, nil
	}

	for report.ExecutedSteps < maxSteps {
		tool, ok := e.NextStep(session)
		if !ok {
			report.StoppedReason = "sequence exhausted"
			break
		}

		step, _ := findStep(session, tool)
		if !step.Automatable {
			report.Outcomes = append(report.Outcomes, StepOutcome{
				Tool:   tool,
				Status: OutcomeSkipped,
				Detail: "requires manual input",
			})
			report.StoppedReason = "next step requires manual input"
			break
		}

		result, err := e.ExecuteStep(ctx, sessionID, tool)
		if err != nil {
			report.Outcomes = append(report.Outcomes, StepOutcome{
				Tool:   tool,
				Status: OutcomeError,
				Detail: err.Error(),
			})
			report.StoppedReason = "step failed"
			break
		}

		report.Outcomes = append(report.Outcomes, StepOutcome{Tool: tool, Status: OutcomeExecuted})
		report.ExecutedSteps++

		if gated, ok := result.(Gated); ok && !gated.GatePassed() {
			report.StoppedReason = "description validation did not pass"
			break
		}

		session, err = e.store.Get(sessionID)
		if err != nil {
			return report, err
		}
	}

	if session, err := e.store.Get(sessionID); err == nil {
		if next, ok := e.NextStep(session); ok {
			report.NextStep = next
		}
		if report.StoppedReason == "" && report.ExecutedSteps == maxSteps {
			report.StoppedReason = "step limit reached"
		}
	}

	return report, nil
}
