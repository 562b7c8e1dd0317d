package server

import (
	"context"
	"log/slog"
)

// AuditEntry represents a logged event for provenance tracking. Every tool
// invocation and its outcome is logged; the user-visible contract stays a
// structured result, the audit trail lives on stderr.
type AuditEntry struct {
	SessionID string
	ToolName  string
	Arguments map[string]interface{}
	Success   bool
	ErrorMsg  string
}

// AuditLogger records tool invocations and results over slog
type AuditLogger struct {
	logger *slog.Logger
}

// NewAuditLogger creates an audit logger backed by the given slog logger
func NewAuditLogger(logger *slog.Logger) *AuditLogger {
	return &AuditLogger{logger: logger}
}

// LogToolCall logs a tool invocation with all relevant context
func (al *AuditLogger) LogToolCall(ctx context.Context, entry *AuditEntry) {
	al.logger.InfoContext(ctx, "tool_call",
		"session_id", entry.SessionID,
		"tool_name", entry.ToolName,
		"arguments", entry.Arguments,
	)
}

// LogToolResult logs a tool execution result
func (al *AuditLogger) LogToolResult(ctx context.Context, entry *AuditEntry) {
	if entry.ErrorMsg != "" {
		al.logger.ErrorContext(ctx, "tool_error",
			"session_id", entry.SessionID,
			"tool_name", entry.ToolName,
			"error", entry.ErrorMsg,
		)
		return
	}
	al.logger.InfoContext(ctx, "tool_result",
		"session_id", entry.SessionID,
		"tool_name", entry.ToolName,
		"success", entry.Success,
	)
}
