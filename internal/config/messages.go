package config

// Shared message formats surfaced to the MCP client
const (
	// MsgRunBefore is the recommended-action format for an unmet dependency
	MsgRunBefore = "run %s before %s"
	// MsgRevalidate is the recommended action after a failed validation gate
	MsgRevalidate = "improve the project description and re-run validate_description until it passes"
	// MsgProvideStage is the recommended action when a lifecycle stage is needed
	MsgProvideStage = "call set_lifecycle_stage with one of: design, development, validation, deployment, monitoring"
	// MsgStartNew is the recommended action for a missing or expired session
	MsgStartNew = "call start_assessment to begin a new assessment"
	// MsgUseManualTool is the recommended action when a manual step is sent
	// through the automated execution path
	MsgUseManualTool = "call the %s tool directly with the user's input"
)
