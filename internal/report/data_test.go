package report

import (
	"strings"
	"testing"

	"github.com/dumitrudabija/aiamcp/internal/assessment"
	"github.com/dumitrudabija/aiamcp/internal/workflow"
)

func sampleAIA() *assessment.AIAResult {
	return &assessment.AIAResult{
		ProjectName: "Benefits Triage",
		RawScore:    12,
		MaxScore:    23,
		Percentage:  52.2,
		ImpactLevel: "III",
		DetectedFactors: map[string]bool{
			"affects_individuals": true,
			"machine_learning":    true,
		},
	}
}

func sampleOSFI() *assessment.OSFIResult {
	return &assessment.OSFIResult{
		ProjectName: "Credit Scoring",
		RiskScore:   61.5,
		RiskRating:  "High",
		Materiality: "medium",
		DetectedFactors: map[string]bool{
			"credit_decisioning": true,
			"fraud_aml":          false,
		},
	}
}

func TestBuild_RequiresAnAssessment(t *testing.T) {
	if _, err := Build("aia", "P", "", nil, nil); err == nil {
		t.Fatal("Expected error when no assessment is present")
	}
}

func TestBuild_AIAOnly(t *testing.T) {
	d, err := Build("aia", "Benefits Triage", "", sampleAIA(), nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if len(d.Sections) != 2 {
		t.Fatalf("Sections = %d, want AIA section plus limitations", len(d.Sections))
	}
	if d.Sections[0].Title != "Algorithmic Impact Assessment" {
		t.Errorf("First section = %q", d.Sections[0].Title)
	}
	if !strings.Contains(d.Sections[0].Body, "Impact Level III") {
		t.Errorf("AIA section body missing the level: %q", d.Sections[0].Body)
	}
	if d.Sections[len(d.Sections)-1].Title != "Limitations" {
		t.Error("Limitations section must come last")
	}

	score, level, complete := d.RiskSummary()
	if !complete || level != "III" || score != 52.2 {
		t.Errorf("RiskSummary = (%v, %q, %v)", score, level, complete)
	}
}

func TestBuild_OSFIWithStage(t *testing.T) {
	d, err := Build("osfi-e23", "Credit Scoring", workflow.StageDeployment, nil, sampleOSFI())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	body := d.Sections[0].Body
	if !strings.Contains(body, "rated High") {
		t.Errorf("OSFI section missing the rating: %q", body)
	}
	if !strings.Contains(body, "deployment lifecycle stage") {
		t.Errorf("OSFI section missing the declared stage: %q", body)
	}

	score, level, complete := d.RiskSummary()
	if !complete || level != "High" || score != 61.5 {
		t.Errorf("RiskSummary = (%v, %q, %v)", score, level, complete)
	}
}

func TestBuild_CombinedPrefersOSFISummary(t *testing.T) {
	d, err := Build("both", "Combined", workflow.StageDesign, sampleAIA(), sampleOSFI())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(d.Sections) != 3 {
		t.Fatalf("Sections = %d, want both assessments plus limitations", len(d.Sections))
	}

	_, level, _ := d.RiskSummary()
	if level != "High" {
		t.Errorf("Combined summary level = %q, want the OSFI rating", level)
	}
}

func TestData_ResultKinds(t *testing.T) {
	if kind := (Data{}).ResultKind(); kind != workflow.KindReport {
		t.Errorf("Data kind = %q", kind)
	}
	if kind := (ExportResult{}).ResultKind(); kind != workflow.KindExport {
		t.Errorf("ExportResult kind = %q", kind)
	}
}
