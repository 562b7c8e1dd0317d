package report

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/dumitrudabija/aiamcp/internal/workflow"
)

func newTestRenderer(t *testing.T) (*Renderer, string) {
	t.Helper()
	dir := t.TempDir()
	r := NewRenderer(dir)
	r.now = func() time.Time {
		return time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	}
	return r, dir
}

func TestRender_WritesDocument(t *testing.T) {
	r, dir := newTestRenderer(t)
	data, err := Build("osfi-e23", "Credit Scoring", workflow.StageDeployment, nil, sampleOSFI())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	result, err := r.Render(data, "Credit Scoring", "A retail credit model.")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := filepath.Join(dir, "credit-scoring_osfi-e23_deployment_2026-03-15.docx")
	if result.FilePath != want {
		t.Errorf("FilePath = %q, want %q", result.FilePath, want)
	}
	if result.ByteSize <= 0 {
		t.Errorf("ByteSize = %d, want > 0", result.ByteSize)
	}
}

func TestRender_RefusesIncompleteData(t *testing.T) {
	r, _ := newTestRenderer(t)
	if _, err := r.Render(Data{Framework: "aia", ProjectName: "P"}, "P", ""); err == nil {
		t.Fatal("Expected refusal for data with no risk summary")
	}
}

func TestRender_FallsBackToDataProjectName(t *testing.T) {
	r, _ := newTestRenderer(t)
	data, err := Build("aia", "Benefits Triage", "", sampleAIA(), nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	result, err := r.Render(data, "", "")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := filepath.Base(result.FilePath); got != "benefits-triage_aia_2026-03-15.docx" {
		t.Errorf("FilePath = %q", got)
	}
}

func TestRender_CreatesOutputDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "reports")
	r := NewRenderer(dir)
	r.now = func() time.Time {
		return time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	}

	data, err := Build("aia", "P", "", sampleAIA(), nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if _, err := r.Render(data, "P", ""); err != nil {
		t.Fatalf("Render into a missing directory: %v", err)
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Benefits Triage", "benefits-triage"},
		{"  Fraud / AML  Monitor!", "fraud-aml-monitor"},
		{"already-sluggy", "already-sluggy"},
		{"Trailing?!", "trailing"},
	}
	for _, tt := range tests {
		if got := slug(tt.in); got != tt.want {
			t.Errorf("slug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
