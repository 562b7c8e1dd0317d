package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dumitrudabija/aiamcp/internal/config"
	"github.com/dumitrudabija/aiamcp/internal/report"
	"github.com/dumitrudabija/aiamcp/internal/server"
	"github.com/dumitrudabija/aiamcp/internal/workflow"
)

const (
	serverName    = "aiamcp"
	serverVersion = "0.3.0"

	defaultOutputDir = "./reports"
)

var (
	version = flag.Bool("version", false, "Print version and exit")
	debug   = flag.Bool("debug", false, "Enable debug logging")
)

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("%s v%s\n", serverName, serverVersion)
		os.Exit(0)
	}

	// Structured logging goes to stderr; stdout carries the MCP stream.
	logLevel := slog.LevelInfo
	if *debug {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	outputDir := os.Getenv("AIAMCP_OUTPUT_DIR")
	if outputDir == "" {
		outputDir = defaultOutputDir
	}

	logger.Info("Starting regulatory assessment MCP server",
		"version", serverVersion,
		"debug", *debug,
		"output_dir", outputDir,
	)

	store := workflow.NewStore(config.DefaultSessionTimeout)
	engine := workflow.NewEngine(store, logger)
	renderer := report.NewRenderer(outputDir)

	cfg := server.Config{
		Name:    serverName,
		Version: serverVersion,
	}
	mcpServer := server.New(cfg, store, engine, renderer, logger)

	logger.Info("MCP server initialized",
		"name", cfg.Name,
		"version", cfg.Version,
		"tools", len(config.AllTools()),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := mcpServer.ServeWithLogger(logger); err != nil {
			logger.Error("MCP server error", "error", err)
			cancel()
		}
	}()

	// Periodic sweep for sessions idle past the two-hour window; expiry is
	// also enforced lazily on access.
	go store.RunCleanupLoop(ctx, config.DefaultCleanupInterval, logger)

	select {
	case <-sigChan:
		logger.Info("Received shutdown signal")
	case <-ctx.Done():
		logger.Info("Context canceled")
	}

	logger.Info("Server shutdown complete")
}
