package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/dumitrudabija/aiamcp/internal/assessment"
	"github.com/dumitrudabija/aiamcp/internal/config"
	"github.com/dumitrudabija/aiamcp/internal/workflow"
)

// handleDetectFramework implements the detect_framework tool
func (ms *MCPServer) handleDetectFramework(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	contextText, err := request.RequireString("context")
	if err != nil {
		return malformedResult(err), nil
	}

	ms.auditLogger.LogToolCall(ctx, &AuditEntry{ToolName: config.ToolDetectFramework})

	match := assessment.DetectFramework(contextText)

	ms.auditLogger.LogToolResult(ctx, &AuditEntry{ToolName: config.ToolDetectFramework, Success: true})
	return jsonResult(match), nil
}

// handleValidateDescription implements the validate_description tool. With a
// session id the result is recorded as the session's validation gate; with a
// bare description it is a standalone check.
func (ms *MCPServer) handleValidateDescription(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID := request.GetString("session_id", "")
	description := request.GetString("description", "")

	ms.auditLogger.LogToolCall(ctx, &AuditEntry{SessionID: sessionID, ToolName: config.ToolValidateDescription})

	if sessionID == "" {
		if description == "" {
			return malformedResult(fmt.Errorf("either session_id or description is required")), nil
		}
		result := assessment.Validate(description)
		ms.auditLogger.LogToolResult(ctx, &AuditEntry{ToolName: config.ToolValidateDescription, Success: result.Passed})
		return jsonResult(result), nil
	}

	// A supplied description replaces the session's text before the gate
	// runs. This is the recovery path after a failed validation: the same
	// description would fail forever, an improved one can pass.
	if description != "" {
		if err := ms.store.SetProjectDescription(sessionID, description); err != nil {
			ms.auditLogger.LogToolResult(ctx, &AuditEntry{SessionID: sessionID, ToolName: config.ToolValidateDescription, ErrorMsg: err.Error()})
			return errorResult(err), nil
		}
	}

	result, err := ms.engine.ExecuteStep(ctx, sessionID, config.ToolValidateDescription)
	if err != nil {
		ms.auditLogger.LogToolResult(ctx, &AuditEntry{SessionID: sessionID, ToolName: config.ToolValidateDescription, ErrorMsg: err.Error()})
		return errorResult(err), nil
	}

	ms.auditLogger.LogToolResult(ctx, &AuditEntry{SessionID: sessionID, ToolName: config.ToolValidateDescription, Success: true})
	return jsonResult(result), nil
}

// handleGetAIAQuestions implements the get_aia_questions tool
func (ms *MCPServer) handleGetAIAQuestions(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ms.auditLogger.LogToolCall(ctx, &AuditEntry{ToolName: config.ToolGetAIAQuestions})

	payload := struct {
		Questions []assessment.Question `json:"questions"`
		MaxScore  int                   `json:"max_score"`
	}{
		Questions: assessment.Questions(),
		MaxScore:  assessment.QuestionMaxScore(),
	}

	ms.auditLogger.LogToolResult(ctx, &AuditEntry{ToolName: config.ToolGetAIAQuestions, Success: true})
	return jsonResult(payload), nil
}

// handleStartAssessment implements the start_assessment tool
func (ms *MCPServer) handleStartAssessment(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	assessmentType, err := request.RequireString("assessment_type")
	if err != nil {
		return malformedResult(err), nil
	}
	projectName, err := request.RequireString("project_name")
	if err != nil {
		return malformedResult(err), nil
	}
	projectDescription, err := request.RequireString("project_description")
	if err != nil {
		return malformedResult(err), nil
	}

	ms.auditLogger.LogToolCall(ctx, &AuditEntry{
		ToolName:  config.ToolStartAssessment,
		Arguments: map[string]interface{}{"assessment_type": assessmentType, "project_name": projectName},
	})

	session, err := ms.store.Create(workflow.AssessmentType(assessmentType), projectName, projectDescription)
	if err != nil {
		ms.auditLogger.LogToolResult(ctx, &AuditEntry{ToolName: config.ToolStartAssessment, ErrorMsg: err.Error()})
		return errorResult(err), nil
	}

	sequence := make([]map[string]interface{}, 0, len(session.StepSequence))
	for _, step := range session.StepSequence {
		sequence = append(sequence, map[string]interface{}{
			"tool":        step.Tool,
			"required":    step.Required,
			"automatable": step.Automatable,
		})
	}

	next, _ := ms.engine.NextStep(session)
	payload := map[string]interface{}{
		"session_id":      session.ID,
		"assessment_type": session.AssessmentType,
		"project_name":    session.ProjectName,
		"state":           session.State,
		"sequence":        sequence,
		"next_step":       next,
	}

	ms.auditLogger.LogToolResult(ctx, &AuditEntry{SessionID: session.ID, ToolName: config.ToolStartAssessment, Success: true})
	return jsonResult(payload), nil
}

// handleExecuteStep implements the execute_step tool
func (ms *MCPServer) handleExecuteStep(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, err := request.RequireString("session_id")
	if err != nil {
		return malformedResult(err), nil
	}
	tool, err := request.RequireString("tool")
	if err != nil {
		return malformedResult(err), nil
	}

	ms.auditLogger.LogToolCall(ctx, &AuditEntry{SessionID: sessionID, ToolName: tool})

	result, err := ms.engine.ExecuteStep(ctx, sessionID, tool)
	if err != nil {
		ms.auditLogger.LogToolResult(ctx, &AuditEntry{SessionID: sessionID, ToolName: tool, ErrorMsg: err.Error()})
		return errorResult(err), nil
	}

	ms.auditLogger.LogToolResult(ctx, &AuditEntry{SessionID: sessionID, ToolName: tool, Success: true})
	return jsonResult(result), nil
}

// handleCollectAIAResponses implements the collect_aia_responses tool
func (ms *MCPServer) handleCollectAIAResponses(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, err := request.RequireString("session_id")
	if err != nil {
		return malformedResult(err), nil
	}
	rawResponses, err := request.RequireString("responses")
	if err != nil {
		return malformedResult(err), nil
	}

	var answers map[string]bool
	if err := json.Unmarshal([]byte(rawResponses), &answers); err != nil {
		return malformedResult(fmt.Errorf("responses must be a JSON object of question id to boolean: %w", err)), nil
	}

	ms.auditLogger.LogToolCall(ctx, &AuditEntry{SessionID: sessionID, ToolName: config.ToolCollectAIAResponses})

	result := assessment.CollectResponses(answers)
	if err := ms.engine.RecordManualResult(sessionID, config.ToolCollectAIAResponses, result); err != nil {
		ms.auditLogger.LogToolResult(ctx, &AuditEntry{SessionID: sessionID, ToolName: config.ToolCollectAIAResponses, ErrorMsg: err.Error()})
		return errorResult(err), nil
	}

	ms.auditLogger.LogToolResult(ctx, &AuditEntry{SessionID: sessionID, ToolName: config.ToolCollectAIAResponses, Success: true})
	return jsonResult(result), nil
}

// handleSetLifecycleStage implements the set_lifecycle_stage tool. The stage
// is always explicit user input; declining yields the fixed default, never a
// guess from the description.
func (ms *MCPServer) handleSetLifecycleStage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, err := request.RequireString("session_id")
	if err != nil {
		return malformedResult(err), nil
	}
	stageArg := request.GetString("stage", "")
	useDefault := request.GetString("use_default", "") == "true"

	ms.auditLogger.LogToolCall(ctx, &AuditEntry{
		SessionID: sessionID,
		ToolName:  config.ToolSetLifecycleStage,
		Arguments: map[string]interface{}{"stage": stageArg, "use_default": useDefault},
	})

	if stageArg == "" && !useDefault {
		err := &workflow.StageRequiredError{Tool: config.ToolSetLifecycleStage}
		ms.auditLogger.LogToolResult(ctx, &AuditEntry{SessionID: sessionID, ToolName: config.ToolSetLifecycleStage, ErrorMsg: err.Error()})
		return errorResult(err), nil
	}

	stage := workflow.LifecycleStage(stageArg)
	if useDefault && stageArg == "" {
		stage = workflow.DefaultStage
	}

	// Dependencies are checked before anything is persisted, so a rejected
	// call leaves no partial stage behind. Sequences without the stage step
	// still cache the stage for any later step that wants it.
	depErr := ms.engine.CheckDependencies(sessionID, config.ToolSetLifecycleStage)
	if depErr != nil && !errors.Is(depErr, workflow.ErrUnknownTool) {
		ms.auditLogger.LogToolResult(ctx, &AuditEntry{SessionID: sessionID, ToolName: config.ToolSetLifecycleStage, ErrorMsg: depErr.Error()})
		return errorResult(depErr), nil
	}

	if err := ms.store.SetLifecycleStage(sessionID, stage); err != nil {
		ms.auditLogger.LogToolResult(ctx, &AuditEntry{SessionID: sessionID, ToolName: config.ToolSetLifecycleStage, ErrorMsg: err.Error()})
		return errorResult(err), nil
	}

	if depErr == nil {
		if err := ms.engine.RecordManualResult(sessionID, config.ToolSetLifecycleStage, workflow.StageResult{Stage: stage}); err != nil {
			ms.auditLogger.LogToolResult(ctx, &AuditEntry{SessionID: sessionID, ToolName: config.ToolSetLifecycleStage, ErrorMsg: err.Error()})
			return errorResult(err), nil
		}
	}

	ms.auditLogger.LogToolResult(ctx, &AuditEntry{SessionID: sessionID, ToolName: config.ToolSetLifecycleStage, Success: true})
	return jsonResult(map[string]interface{}{"session_id": sessionID, "lifecycle_stage": stage}), nil
}

// handleAutoExecute implements the auto_execute tool
func (ms *MCPServer) handleAutoExecute(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, err := request.RequireString("session_id")
	if err != nil {
		return malformedResult(err), nil
	}

	maxSteps := config.DefaultMaxAutoSteps
	if raw := request.GetString("max_steps", ""); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return malformedResult(fmt.Errorf("max_steps must be a positive integer, got %q", raw)), nil
		}
		maxSteps = n
	}

	ms.auditLogger.LogToolCall(ctx, &AuditEntry{
		SessionID: sessionID,
		ToolName:  config.ToolAutoExecute,
		Arguments: map[string]interface{}{"max_steps": maxSteps},
	})

	report, err := ms.engine.AutoExecute(ctx, sessionID, maxSteps)
	if err != nil {
		ms.auditLogger.LogToolResult(ctx, &AuditEntry{SessionID: sessionID, ToolName: config.ToolAutoExecute, ErrorMsg: err.Error()})
		return errorResult(err), nil
	}

	ms.auditLogger.LogToolResult(ctx, &AuditEntry{SessionID: sessionID, ToolName: config.ToolAutoExecute, Success: true})
	return jsonResult(report), nil
}

// handleWorkflowStatus implements the workflow_status tool
func (ms *MCPServer) handleWorkflowStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, err := request.RequireString("session_id")
	if err != nil {
		return malformedResult(err), nil
	}

	ms.auditLogger.LogToolCall(ctx, &AuditEntry{SessionID: sessionID, ToolName: config.ToolWorkflowStatus})

	status, err := ms.engine.Status(sessionID)
	if err != nil {
		ms.auditLogger.LogToolResult(ctx, &AuditEntry{SessionID: sessionID, ToolName: config.ToolWorkflowStatus, ErrorMsg: err.Error()})
		return errorResult(err), nil
	}

	ms.auditLogger.LogToolResult(ctx, &AuditEntry{SessionID: sessionID, ToolName: config.ToolWorkflowStatus, Success: true})
	return jsonResult(status), nil
}

// handleExportReport implements the export_report tool
func (ms *MCPServer) handleExportReport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, err := request.RequireString("session_id")
	if err != nil {
		return malformedResult(err), nil
	}

	ms.auditLogger.LogToolCall(ctx, &AuditEntry{SessionID: sessionID, ToolName: config.ToolExportReport})

	result, err := ms.engine.ExecuteStep(ctx, sessionID, config.ToolExportReport)
	if err != nil {
		ms.auditLogger.LogToolResult(ctx, &AuditEntry{SessionID: sessionID, ToolName: config.ToolExportReport, ErrorMsg: err.Error()})
		return errorResult(err), nil
	}

	ms.auditLogger.LogToolResult(ctx, &AuditEntry{SessionID: sessionID, ToolName: config.ToolExportReport, Success: true})
	return jsonResult(result), nil
}
