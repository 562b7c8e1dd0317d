package assessment

import (
	"strings"
	"testing"
)

const goodDescription = "The purpose of this system is to assess loan " +
	"applications and recommend an approval decision for each applicant. " +
	"It is a machine learning model trained on historical data from the " +
	"bank's loan origination database, combining credit bureau records " +
	"with internal account information. Retail customers submit " +
	"applications online and the system scores each one before a human " +
	"underwriter reviews the recommendation and makes the final decision."

func TestValidate_Passes(t *testing.T) {
	result := Validate(goodDescription)

	if !result.Passed {
		t.Fatalf("Validate() passed = false, details: %s", result.Details)
	}
	if !result.GatePassed() {
		t.Error("GatePassed() must mirror Passed")
	}
	if result.WordCount < 40 {
		t.Errorf("WordCount = %d, want >= 40", result.WordCount)
	}
}

func TestValidate_Fails(t *testing.T) {
	tests := []struct {
		name        string
		description string
	}{
		{"empty", ""},
		{"too short", "A model that scores loans."},
		{"long but no content areas", strings.Repeat("lorem ipsum dolor sit amet ", 20)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Validate(tt.description)
			if result.Passed {
				t.Errorf("Validate(%q) passed, want fail", tt.name)
			}
			if result.Details == "" {
				t.Error("Expected details explaining the failure")
			}
		})
	}
}

func TestValidate_CoverageAreas(t *testing.T) {
	result := Validate(goodDescription)

	for _, area := range []string{"purpose", "data_sources", "decision_scope", "affected_users", "technology"} {
		if _, ok := result.Coverage[area]; !ok {
			t.Errorf("Coverage missing area %q", area)
		}
	}
	if !result.Coverage["purpose"] {
		t.Error("Expected purpose area covered")
	}
	if !result.Coverage["technology"] {
		t.Error("Expected technology area covered")
	}
}

func TestValidate_ResultKind(t *testing.T) {
	if got := Validate(goodDescription).ResultKind(); got != "validation" {
		t.Errorf("ResultKind() = %q, want validation", got)
	}
}
