package assessment

import "testing"

func TestAssessOSFI_DetectsFactors(t *testing.T) {
	description := "A machine learning model for retail credit underwriting, " +
		"making automated decisions on loan applications across an " +
		"enterprise-wide portfolio."

	result := AssessOSFI(description, "Credit Scoring")

	wantDetected := []string{
		"credit_decisioning",
		"complex_model",
		"autonomous_use",
		"customer_facing",
	}
	for _, factor := range wantDetected {
		if !result.DetectedFactors[factor] {
			t.Errorf("Expected factor %q detected", factor)
		}
	}
	if result.DetectedFactors["fraud_aml"] {
		t.Error("Did not expect fraud_aml")
	}
	if result.Materiality != "high" {
		t.Errorf("Materiality = %q, want high for enterprise-wide scope", result.Materiality)
	}
}

func TestAssessOSFI_MaterialityMultiplier(t *testing.T) {
	// Same risk factors, different materiality tiers. The adjusted score
	// must scale with the tier multiplier.
	low := AssessOSFI("fraud detection model", "A")
	medium := AssessOSFI("fraud detection model for a regional business", "B")
	high := AssessOSFI("fraud detection model used enterprise-wide", "C")

	if low.Materiality != "low" || medium.Materiality != "medium" || high.Materiality != "high" {
		t.Fatalf("Tiers = %q/%q/%q, want low/medium/high",
			low.Materiality, medium.Materiality, high.Materiality)
	}
	if !(low.RiskScore < medium.RiskScore && medium.RiskScore < high.RiskScore) {
		t.Errorf("Scores %v/%v/%v do not scale with materiality",
			low.RiskScore, medium.RiskScore, high.RiskScore)
	}
}

func TestAssessOSFI_ScoreClamped(t *testing.T) {
	description := "An enterprise-wide machine learning credit underwriting model " +
		"for capital stress testing, automated decisions without human review, " +
		"retail customer pricing, third-party vendor model components and " +
		"fraud transaction monitoring."

	result := AssessOSFI(description, "Everything")
	if result.RiskScore > 100 {
		t.Errorf("RiskScore = %v, must be clamped to 100", result.RiskScore)
	}
	if result.RiskRating != "Critical" {
		t.Errorf("RiskRating = %q, want Critical", result.RiskRating)
	}
}

func TestAssessOSFI_EmptyDescription(t *testing.T) {
	result := AssessOSFI("", "Empty")
	if result.RiskScore != 0 {
		t.Errorf("RiskScore = %v, want 0", result.RiskScore)
	}
	if result.RiskRating != "Low" {
		t.Errorf("RiskRating = %q, want Low", result.RiskRating)
	}
	if result.Materiality != "low" {
		t.Errorf("Materiality = %q, want low by default", result.Materiality)
	}
}

func TestRiskRating(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0, "Low"},
		{25, "Low"},
		{25.1, "Medium"},
		{50, "Medium"},
		{50.1, "High"},
		{75, "High"},
		{75.1, "Critical"},
		{100, "Critical"},
	}
	for _, tt := range tests {
		if got := RiskRating(tt.score); got != tt.want {
			t.Errorf("RiskRating(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
