package server

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/dumitrudabija/aiamcp/internal/config"
	"github.com/dumitrudabija/aiamcp/internal/workflow"
)

// Error kinds surfaced in structured error payloads
const (
	errKindSessionNotFound       = "SessionNotFound"
	errKindSessionExpired        = "SessionExpired"
	errKindInvalidAssessmentType = "InvalidAssessmentType"
	errKindDependency            = "DependencyNotSatisfied"
	errKindValidationFailed      = "ValidationFailed"
	errKindExportIncomplete      = "ExportDataIncomplete"
	errKindMalformedRequest      = "MalformedRequest"
	errKindInternal              = "InternalError"
)

// errorPayload is the user-visible structured error contract: a kind, a
// human-readable reason and, where applicable, a recommended next action.
type errorPayload struct {
	Error             string   `json:"error"`
	Reason            string   `json:"reason"`
	UnmetDependencies []string `json:"unmet_dependencies,omitempty"`
	RecommendedAction string   `json:"recommended_action,omitempty"`
}

// jsonResult marshals a success payload into a text tool result
func jsonResult(v interface{}) *mcp.CallToolResult {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf(`{"error":%q,"reason":%q}`, errKindInternal, err.Error()))
	}
	return mcp.NewToolResultText(string(data))
}

// errorResult converts a domain error into a structured error payload. The
// process never crashes on a bad request; everything comes back as a result.
func errorResult(err error) *mcp.CallToolResult {
	payload := errorPayload{
		Error:  errorKind(err),
		Reason: err.Error(),
	}
	var depErr *workflow.DependencyError
	if errors.As(err, &depErr) {
		payload.UnmetDependencies = depErr.Missing
	}
	if actionable, ok := err.(workflow.Actionable); ok {
		payload.RecommendedAction = actionable.RecommendedAction()
	} else if payload.Error == errKindSessionNotFound || payload.Error == errKindSessionExpired {
		payload.RecommendedAction = config.MsgStartNew
	}

	data, mErr := json.Marshal(payload)
	if mErr != nil {
		return mcp.NewToolResultError(err.Error())
	}
	return mcp.NewToolResultError(string(data))
}

// malformedResult reports a transport-level argument violation
func malformedResult(err error) *mcp.CallToolResult {
	data, _ := json.Marshal(errorPayload{Error: errKindMalformedRequest, Reason: err.Error()})
	return mcp.NewToolResultError(string(data))
}

func errorKind(err error) string {
	var depErr *workflow.DependencyError
	var blockedErr *workflow.ValidationBlockedError
	var exportErr *workflow.ExportDataIncompleteError
	var stageErr *workflow.StageRequiredError
	var manualErr *workflow.ManualStepError

	switch {
	case errors.Is(err, workflow.ErrSessionNotFound):
		return errKindSessionNotFound
	case errors.Is(err, workflow.ErrSessionExpired):
		return errKindSessionExpired
	case errors.Is(err, workflow.ErrInvalidAssessmentType):
		return errKindInvalidAssessmentType
	case errors.Is(err, workflow.ErrInvalidStage), errors.Is(err, workflow.ErrUnknownTool):
		return errKindMalformedRequest
	case errors.As(err, &depErr):
		return errKindDependency
	case errors.As(err, &blockedErr):
		return errKindValidationFailed
	case errors.As(err, &exportErr):
		return errKindExportIncomplete
	case errors.As(err, &stageErr), errors.As(err, &manualErr):
		return errKindMalformedRequest
	default:
		return errKindInternal
	}
}
