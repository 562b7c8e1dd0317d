// Package report assembles assessment outcomes into report data and renders
// them as Word documents. Renderers are sinks: they consume a complete
// result object and refuse anything with missing risk fields.
package report

import (
	"fmt"

	"github.com/dumitrudabija/aiamcp/internal/assessment"
	"github.com/dumitrudabija/aiamcp/internal/workflow"
)

// Section is one titled block of report prose
type Section struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Data is the structured report content for one session, stored as the
// generate_report_data step result and consumed by the renderer.
type Data struct {
	Framework   string                  `json:"framework"`
	ProjectName string                  `json:"project_name"`
	Stage       workflow.LifecycleStage `json:"lifecycle_stage,omitempty"`
	AIA         *assessment.AIAResult   `json:"aia,omitempty"`
	OSFI        *assessment.OSFIResult  `json:"osfi,omitempty"`
	Sections    []Section               `json:"sections"`
}

// ResultKind implements workflow.ToolResult
func (Data) ResultKind() string { return workflow.KindReport }

// RiskSummary implements workflow.ScoreCarrier. The primary framework's
// outcome wins; a Data with neither assessment is incomplete.
func (d Data) RiskSummary() (float64, string, bool) {
	if d.OSFI != nil {
		return d.OSFI.RiskSummary()
	}
	if d.AIA != nil {
		return d.AIA.RiskSummary()
	}
	return 0, "", false
}

// CopyResult implements workflow.ResultCopier
func (d Data) CopyResult() workflow.ToolResult {
	cp := d
	cp.Sections = append([]Section(nil), d.Sections...)
	if d.AIA != nil {
		aia := d.AIA.CopyResult().(assessment.AIAResult)
		cp.AIA = &aia
	}
	if d.OSFI != nil {
		osfi := d.OSFI.CopyResult().(assessment.OSFIResult)
		cp.OSFI = &osfi
	}
	return cp
}

// ExportResult records a rendered document on disk
type ExportResult struct {
	FilePath string `json:"file_path"`
	ByteSize int64  `json:"byte_size"`
}

// ResultKind implements workflow.ToolResult
func (ExportResult) ResultKind() string { return workflow.KindExport }

// Build assembles report data from whichever assessments the session has
// produced. At least one assessment must be present.
func Build(framework, projectName string, stage workflow.LifecycleStage, aia *assessment.AIAResult, osfi *assessment.OSFIResult) (Data, error) {
	if aia == nil && osfi == nil {
		return Data{}, fmt.Errorf("report data requires at least one completed assessment")
	}

	d := Data{
		Framework:   framework,
		ProjectName: projectName,
		Stage:       stage,
		AIA:         aia,
		OSFI:        osfi,
	}

	if aia != nil {
		d.Sections = append(d.Sections, Section{
			Title: "Algorithmic Impact Assessment",
			Body: fmt.Sprintf(
				"The project scored %d of %d points (%.1f%%), corresponding to Impact Level %s under the Treasury Board Directive on Automated Decision-Making. %s",
				aia.RawScore, aia.MaxScore, aia.Percentage, aia.ImpactLevel, levelGuidance(aia.ImpactLevel)),
		})
	}
	if osfi != nil {
		body := fmt.Sprintf(
			"Model risk is rated %s (score %.1f, materiality %s) under OSFI Guideline E-23.",
			osfi.RiskRating, osfi.RiskScore, osfi.Materiality)
		if stage != "" {
			body += fmt.Sprintf(" Requirements are assessed for the declared %s lifecycle stage.", stage)
		}
		d.Sections = append(d.Sections, Section{Title: "OSFI E-23 Model Risk Rating", Body: body})
	}

	d.Sections = append(d.Sections, Section{
		Title: "Limitations",
		Body: "This report is generated from keyword-based screening and self-declared questionnaire responses. " +
			"It does not constitute regulatory certification; professional human validation is required before relying on these results.",
	})

	return d, nil
}

func levelGuidance(level string) string {
	switch level {
	case "I":
		return "Level I systems carry little to no impact and the minimum mitigation requirements apply."
	case "II":
		return "Level II systems carry moderate impact; peer review and notice requirements apply."
	case "III":
		return "Level III systems carry high impact; qualified oversight, explanation and recourse requirements apply."
	default:
		return "Level IV systems carry very high impact; the most stringent mitigation, oversight and approval requirements apply."
	}
}
