package workflow

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dumitrudabija/aiamcp/internal/config"
)

var (
	// ErrSessionNotFound indicates an unknown session id
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired indicates a session idle past the timeout window.
	// Expired sessions are as good as gone, but the distinct error aids
	// client diagnostics.
	ErrSessionExpired = errors.New("session expired")
	// ErrInvalidAssessmentType indicates an unknown assessment type at creation
	ErrInvalidAssessmentType = errors.New("invalid assessment type")
	// ErrInvalidStage indicates a lifecycle stage outside the five known values
	ErrInvalidStage = errors.New("invalid lifecycle stage")
	// ErrUnknownTool indicates a tool name not present in the session's sequence
	ErrUnknownTool = errors.New("tool not in step sequence")
)

// DependencyError reports unmet prerequisites for a step. It always names
// every missing dependency; nothing is skipped silently.
type DependencyError struct {
	Tool    string
	Missing []string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("dependencies not satisfied for %s: missing %s",
		e.Tool, strings.Join(e.Missing, ", "))
}

// RecommendedAction returns a human-readable next step for the client
func (e *DependencyError) RecommendedAction() string {
	return fmt.Sprintf(config.MsgRunBefore, strings.Join(e.Missing, ", "), e.Tool)
}

// ValidationBlockedError reports that the validation gate was attempted and
// did not pass. Dependent steps stay blocked until a later validation run
// records a passing result.
type ValidationBlockedError struct {
	Tool string
}

func (e *ValidationBlockedError) Error() string {
	return fmt.Sprintf("%s is blocked: description validation did not pass", e.Tool)
}

// RecommendedAction returns the remediation hint for a failed gate
func (e *ValidationBlockedError) RecommendedAction() string {
	return config.MsgRevalidate
}

// ExportDataIncompleteError reports an export attempt with no complete
// assessment result anywhere in the session.
type ExportDataIncompleteError struct {
	SessionID string
}

func (e *ExportDataIncompleteError) Error() string {
	return fmt.Sprintf("export data incomplete for session %s: no assessment result with a risk score and level", e.SessionID)
}

// RecommendedAction returns the remediation hint for an incomplete export
func (e *ExportDataIncompleteError) RecommendedAction() string {
	return "complete the assessment steps so a risk score and level exist before exporting"
}

// ManualStepError reports an attempt to run a manual step through the
// automated execution path. Manual steps carry user-supplied input and have
// dedicated tools of their own.
type ManualStepError struct {
	Tool string
}

func (e *ManualStepError) Error() string {
	return fmt.Sprintf("%s requires manual input and cannot be executed as an automated step", e.Tool)
}

// RecommendedAction points the client at the step's dedicated tool
func (e *ManualStepError) RecommendedAction() string {
	return fmt.Sprintf(config.MsgUseManualTool, e.Tool)
}

// StageRequiredError reports a step that needs a lifecycle stage before the
// user has declared one. The engine never guesses a stage from text.
type StageRequiredError struct {
	Tool string
}

func (e *StageRequiredError) Error() string {
	return fmt.Sprintf("%s requires a lifecycle stage and none has been set", e.Tool)
}

// RecommendedAction returns the remediation hint for a missing stage
func (e *StageRequiredError) RecommendedAction() string {
	return config.MsgProvideStage
}

// Actionable is implemented by errors that carry a recommended next action
// for the MCP client.
type Actionable interface {
	RecommendedAction() string
}
