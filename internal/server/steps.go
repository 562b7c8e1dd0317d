package server

import (
	"context"
	"fmt"

	"github.com/dumitrudabija/aiamcp/internal/assessment"
	"github.com/dumitrudabija/aiamcp/internal/config"
	"github.com/dumitrudabija/aiamcp/internal/report"
	"github.com/dumitrudabija/aiamcp/internal/workflow"
)

// registerStepHandlers wires the engine's automatable steps to their
// collaborators. Manual steps (questionnaire responses, lifecycle stage)
// have no handler here; their results arrive through dedicated MCP tools.
func registerStepHandlers(engine *workflow.Engine, renderer *report.Renderer) {
	engine.Register(config.ToolValidateDescription, func(_ context.Context, s *workflow.Session) (workflow.ToolResult, error) {
		return assessment.Validate(s.ProjectDescription), nil
	})

	engine.Register(config.ToolAssessAIA, func(_ context.Context, s *workflow.Session) (workflow.ToolResult, error) {
		return assessment.AssessAIA(s.ProjectDescription, s.ProjectName), nil
	})

	engine.Register(config.ToolAssessOSFI, func(_ context.Context, s *workflow.Session) (workflow.ToolResult, error) {
		return assessment.AssessOSFI(s.ProjectDescription, s.ProjectName), nil
	})

	engine.Register(config.ToolCalculateAIAScore, func(_ context.Context, s *workflow.Session) (workflow.ToolResult, error) {
		// Full assessments score collected questionnaire responses; the
		// preview path scores the keyword assessment alone.
		if r, ok := s.Result(config.ToolCollectAIAResponses); ok {
			responses, ok := r.(assessment.ResponsesResult)
			if !ok {
				return nil, fmt.Errorf("unexpected result kind %q for %s", r.ResultKind(), config.ToolCollectAIAResponses)
			}
			return assessment.ScoreResponses(responses, s.ProjectName), nil
		}
		if r, ok := s.Result(config.ToolAssessAIA); ok {
			if aia, ok := r.(assessment.AIAResult); ok {
				return aia, nil
			}
		}
		return nil, fmt.Errorf("no scoring input available for %s", config.ToolCalculateAIAScore)
	})

	engine.Register(config.ToolGenerateReportData, func(_ context.Context, s *workflow.Session) (workflow.ToolResult, error) {
		data, err := buildReportData(s)
		if err != nil {
			return nil, err
		}
		return data, nil
	})

	engine.Register(config.ToolExportReport, func(_ context.Context, s *workflow.Session) (workflow.ToolResult, error) {
		data, err := reportDataFor(s)
		if err != nil {
			return nil, err
		}
		return renderer.Render(data, s.ProjectName, s.ProjectDescription)
	})
}

// buildReportData assembles report data from the session's stored results
func buildReportData(s *workflow.Session) (report.Data, error) {
	var aia *assessment.AIAResult
	var osfi *assessment.OSFIResult

	// The calculated score supersedes the keyword assessment when present
	if r, ok := s.Result(config.ToolCalculateAIAScore); ok {
		if v, ok := r.(assessment.AIAResult); ok {
			aia = &v
		}
	} else if r, ok := s.Result(config.ToolAssessAIA); ok {
		if v, ok := r.(assessment.AIAResult); ok {
			aia = &v
		}
	}
	if r, ok := s.Result(config.ToolAssessOSFI); ok {
		if v, ok := r.(assessment.OSFIResult); ok {
			osfi = &v
		}
	}

	return report.Build(string(s.AssessmentType), s.ProjectName, s.LifecycleStage, aia, osfi)
}

// reportDataFor prefers the generate step's stored data and otherwise
// rebuilds it from prior completed assessments, so an export asked to run
// with incomplete immediate input still succeeds when the session holds
// complete data anywhere.
func reportDataFor(s *workflow.Session) (report.Data, error) {
	if r, ok := s.Result(config.ToolGenerateReportData); ok {
		if data, ok := r.(report.Data); ok {
			if _, _, complete := data.RiskSummary(); complete {
				return data, nil
			}
		}
	}
	return buildReportData(s)
}
