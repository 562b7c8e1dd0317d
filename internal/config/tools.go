package config

// Tool names exposed over MCP and used as step identifiers in workflow
// sequences. Step results are keyed by these names, so they must stay
// stable across releases.
const (
	// ToolDetectFramework is the stateless framework detection tool name
	ToolDetectFramework = "detect_framework"
	// ToolValidateDescription is the description validation gate tool name
	ToolValidateDescription = "validate_description"
	// ToolGetAIAQuestions is the AIA questionnaire retrieval tool name
	ToolGetAIAQuestions = "get_aia_questions"
	// ToolAssessAIA is the AIA keyword assessment tool name
	ToolAssessAIA = "assess_aia"
	// ToolCollectAIAResponses is the manual AIA questionnaire response tool name
	ToolCollectAIAResponses = "collect_aia_responses"
	// ToolCalculateAIAScore is the AIA scoring tool name
	ToolCalculateAIAScore = "calculate_aia_score"
	// ToolAssessOSFI is the OSFI E-23 assessment tool name
	ToolAssessOSFI = "assess_osfi_e23"
	// ToolSetLifecycleStage is the explicit lifecycle stage setter tool name
	ToolSetLifecycleStage = "set_lifecycle_stage"
	// ToolGenerateReportData is the report data assembly tool name
	ToolGenerateReportData = "generate_report_data"
	// ToolExportReport is the Word document export tool name
	ToolExportReport = "export_report"
	// ToolStartAssessment is the workflow creation tool name
	ToolStartAssessment = "start_assessment"
	// ToolWorkflowStatus is the workflow progress reporting tool name
	ToolWorkflowStatus = "workflow_status"
	// ToolAutoExecute is the bounded auto-execution tool name
	ToolAutoExecute = "auto_execute"
	// ToolExecuteStep is the single-step execution tool name
	ToolExecuteStep = "execute_step"
)

// AllTools returns a slice of all MCP-exposed tool names
func AllTools() []string {
	return []string{
		ToolDetectFramework,
		ToolValidateDescription,
		ToolGetAIAQuestions,
		ToolStartAssessment,
		ToolExecuteStep,
		ToolCollectAIAResponses,
		ToolSetLifecycleStage,
		ToolAutoExecute,
		ToolWorkflowStatus,
		ToolExportReport,
	}
}
