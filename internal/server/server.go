package server

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/dumitrudabija/aiamcp/internal/config"
	"github.com/dumitrudabija/aiamcp/internal/report"
	"github.com/dumitrudabija/aiamcp/internal/workflow"
)

// MCPServer wraps the mcp-go server with the assessment business logic
type MCPServer struct {
	server       *server.MCPServer
	store        *workflow.Store
	engine       *workflow.Engine
	renderer     *report.Renderer
	auditLogger  *AuditLogger
	toolRegistry *ToolHandlerRegistry
}

// Config holds configuration for the MCP server
type Config struct {
	Name    string
	Version string
}

// New creates and configures the MCP server: step handlers wired into the
// engine, tool handlers into the registry, tools registered with mcp-go.
func New(cfg Config, store *workflow.Store, engine *workflow.Engine, renderer *report.Renderer, logger *slog.Logger) *MCPServer {
	mcpServer := server.NewMCPServer(
		cfg.Name,
		cfg.Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	ms := &MCPServer{
		server:      mcpServer,
		store:       store,
		engine:      engine,
		renderer:    renderer,
		auditLogger: NewAuditLogger(logger),
	}

	registerStepHandlers(engine, renderer)

	ms.toolRegistry = NewToolHandlerRegistry()
	for name, handler := range map[string]ToolHandlerFunc{
		config.ToolDetectFramework:     ms.handleDetectFramework,
		config.ToolValidateDescription: ms.handleValidateDescription,
		config.ToolGetAIAQuestions:     ms.handleGetAIAQuestions,
		config.ToolStartAssessment:     ms.handleStartAssessment,
		config.ToolExecuteStep:         ms.handleExecuteStep,
		config.ToolCollectAIAResponses: ms.handleCollectAIAResponses,
		config.ToolSetLifecycleStage:   ms.handleSetLifecycleStage,
		config.ToolAutoExecute:         ms.handleAutoExecute,
		config.ToolWorkflowStatus:      ms.handleWorkflowStatus,
		config.ToolExportReport:        ms.handleExportReport,
	} {
		ms.toolRegistry.Register(name, handler)
	}

	ms.registerTools()

	return ms
}

// Server returns the underlying mcp-go server
func (ms *MCPServer) Server() *server.MCPServer {
	return ms.server
}

// Serve starts the MCP server with stdio transport
func (ms *MCPServer) Serve() error {
	return server.ServeStdio(ms.server)
}

// ServeWithLogger starts the MCP server with stdio transport and custom logger
func (ms *MCPServer) ServeWithLogger(logger *slog.Logger) error {
	logger.Info("Starting MCP server with stdio transport")
	return ms.Serve()
}
