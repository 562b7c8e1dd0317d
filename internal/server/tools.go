package server

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/dumitrudabija/aiamcp/internal/config"
)

// registerTools registers all MCP tools with handlers via the tool registry.
// Tool descriptions double as workflow guidance for the LLM client: they
// spell out ordering and prerequisites so a well-behaved client follows the
// sequence without trial and error.
func (ms *MCPServer) registerTools() {
	add := func(tool mcp.Tool, name string) {
		h, err := ms.toolRegistry.GetHandler(name)
		if err != nil {
			panic(fmt.Sprintf("tool %s not found in registry", name))
		}
		ms.server.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return h(ctx, req)
		})
	}

	detectTool := mcp.NewTool(config.ToolDetectFramework,
		mcp.WithDescription("Identify which regulatory framework applies to a project: the federal "+
			"Algorithmic Impact Assessment (AIA), OSFI Guideline E-23 model risk management, or both. "+
			"Call this first when the user has not named a framework."),
		mcp.WithString("context",
			mcp.Required(),
			mcp.Description("Free-text description of the organization and project context"),
		),
	)
	add(detectTool, config.ToolDetectFramework)

	validateTool := mcp.NewTool(config.ToolValidateDescription,
		mcp.WithDescription("Validate that a project description is detailed enough for assessment. "+
			"This is a hard gate: assessment steps stay blocked until validation passes. "+
			"Pass session_id to validate within a workflow, or description alone for a standalone check. "+
			"Pass both to replace the session's description with improved text and re-validate after a failure."),
		mcp.WithString("session_id",
			mcp.Description("Workflow session to validate; records the result as the session's gate"),
		),
		mcp.WithString("description",
			mcp.Description("Project description for a standalone check, or improved text to store on the session"),
		),
	)
	add(validateTool, config.ToolValidateDescription)

	questionsTool := mcp.NewTool(config.ToolGetAIAQuestions,
		mcp.WithDescription("Retrieve the AIA questionnaire. Present these to the user one at a time "+
			"and collect yes/no answers; submit them with collect_aia_responses."),
	)
	add(questionsTool, config.ToolGetAIAQuestions)

	startTool := mcp.NewTool(config.ToolStartAssessment,
		mcp.WithDescription("Start an assessment workflow session. Returns the session id and the "+
			"ordered step sequence. Assessment types: aia_full (questionnaire-based AIA), aia_preview "+
			"(keyword-only AIA estimate), osfi_e23 (OSFI E-23 model risk), combined (both frameworks)."),
		mcp.WithString("assessment_type",
			mcp.Required(),
			mcp.Description("One of: aia_full, aia_preview, osfi_e23, combined"),
		),
		mcp.WithString("project_name",
			mcp.Required(),
			mcp.Description("Project name used in reports and file names"),
		),
		mcp.WithString("project_description",
			mcp.Required(),
			mcp.Description("Detailed project description; all scoring derives from this text"),
		),
	)
	add(startTool, config.ToolStartAssessment)

	executeTool := mcp.NewTool(config.ToolExecuteStep,
		mcp.WithDescription("Execute one named workflow step. Dependencies are enforced: running a "+
			"step before its prerequisites returns DependencyNotSatisfied with the unmet steps named."),
		mcp.WithString("session_id",
			mcp.Required(),
			mcp.Description("Workflow session id from start_assessment"),
		),
		mcp.WithString("tool",
			mcp.Required(),
			mcp.Description("Step name from the session's sequence"),
		),
	)
	add(executeTool, config.ToolExecuteStep)

	responsesTool := mcp.NewTool(config.ToolCollectAIAResponses,
		mcp.WithDescription("Record the user's answers to the AIA questionnaire for a full assessment. "+
			"Ask the user each question from get_aia_questions; never invent answers on their behalf."),
		mcp.WithString("session_id",
			mcp.Required(),
			mcp.Description("Workflow session id"),
		),
		mcp.WithString("responses",
			mcp.Required(),
			mcp.Description(`JSON object mapping question ids to booleans, e.g. {"q_personal_info": true}`),
		),
	)
	add(responsesTool, config.ToolCollectAIAResponses)

	stageTool := mcp.NewTool(config.ToolSetLifecycleStage,
		mcp.WithDescription("Record the model lifecycle stage the user declared. Ask the user which "+
			"stage applies; do not infer it from the project description. If the user declines to pick, "+
			"set use_default instead."),
		mcp.WithString("session_id",
			mcp.Required(),
			mcp.Description("Workflow session id"),
		),
		mcp.WithString("stage",
			mcp.Description("One of: design, development, validation, deployment, monitoring"),
		),
		mcp.WithString("use_default",
			mcp.Description("Set to \"true\" when the user explicitly declines to choose a stage"),
		),
	)
	add(stageTool, config.ToolSetLifecycleStage)

	autoTool := mcp.NewTool(config.ToolAutoExecute,
		mcp.WithDescription("Automatically execute the next eligible steps in order, stopping at "+
			"manual steps, failures, or the step cap. Reports the outcome of every step attempted."),
		mcp.WithString("session_id",
			mcp.Required(),
			mcp.Description("Workflow session id"),
		),
		mcp.WithString("max_steps",
			mcp.Description("Maximum steps to execute in this call (capped at 5)"),
		),
	)
	add(autoTool, config.ToolAutoExecute)

	statusTool := mcp.NewTool(config.ToolWorkflowStatus,
		mcp.WithDescription("Report workflow progress: completed and remaining steps, completion "+
			"percentage, and the recommended next step."),
		mcp.WithString("session_id",
			mcp.Required(),
			mcp.Description("Workflow session id"),
		),
	)
	add(statusTool, config.ToolWorkflowStatus)

	exportTool := mcp.NewTool(config.ToolExportReport,
		mcp.WithDescription("Export the assessment report as a Word document. Requires a completed "+
			"assessment with a real risk score and level; never writes a document with placeholders."),
		mcp.WithString("session_id",
			mcp.Required(),
			mcp.Description("Workflow session id"),
		),
	)
	add(exportTool, config.ToolExportReport)
}
