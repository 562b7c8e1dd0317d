package workflow

import (
	"errors"
	"testing"

	"github.com/dumitrudabija/aiamcp/internal/config"
)

func TestSequenceFor(t *testing.T) {
	tests := []struct {
		name      string
		typ       AssessmentType
		wantSteps int
		wantOK    bool
	}{
		{"aia full", TypeAIAFull, 6, true},
		{"aia preview", TypeAIAPreview, 5, true},
		{"osfi", TypeOSFI, 5, true},
		{"combined", TypeCombined, 6, true},
		{"unknown", AssessmentType("nope"), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, ok := SequenceFor(tt.typ)
			if ok != tt.wantOK {
				t.Fatalf("SequenceFor() ok = %v, want %v", ok, tt.wantOK)
			}
			if len(seq) != tt.wantSteps {
				t.Errorf("SequenceFor() = %d steps, want %d", len(seq), tt.wantSteps)
			}
		})
	}
}

func TestSequence_FirstStepIsAlwaysTheGate(t *testing.T) {
	for _, typ := range []AssessmentType{TypeAIAFull, TypeAIAPreview, TypeOSFI, TypeCombined} {
		seq, _ := SequenceFor(typ)
		if seq[0].Tool != config.ToolValidateDescription {
			t.Errorf("%s: first step = %q, want the validation gate", typ, seq[0].Tool)
		}
		if !seq[0].Required {
			t.Errorf("%s: validation gate must be required", typ)
		}
	}
}

func TestSequence_DependenciesPointBackwards(t *testing.T) {
	// Every dependency must name an earlier step of the same sequence, so a
	// client following the order never hits an unsatisfiable step.
	for typ := range stepSequences {
		seq, _ := SequenceFor(typ)
		seen := make(map[string]bool)
		for _, step := range seq {
			for _, dep := range step.DependsOn {
				if !seen[dep] {
					t.Errorf("%s: step %q depends on %q which does not precede it", typ, step.Tool, dep)
				}
			}
			seen[step.Tool] = true
		}
	}
}

func TestRequiredStepCount(t *testing.T) {
	tests := []struct {
		typ  AssessmentType
		want int
	}{
		{TypeAIAFull, 5},
		{TypeAIAPreview, 4},
		{TypeOSFI, 4},
		{TypeCombined, 5},
	}
	for _, tt := range tests {
		if got := RequiredStepCount(tt.typ); got != tt.want {
			t.Errorf("RequiredStepCount(%s) = %d, want %d", tt.typ, got, tt.want)
		}
	}
}

func TestValidateDependencies(t *testing.T) {
	store := NewStore(testTimeout)
	session, _ := store.Create(TypeAIAFull, "Deps", testDescription)

	if err := ValidateDependencies(session, config.ToolValidateDescription); err != nil {
		t.Errorf("Gate has no dependencies, got %v", err)
	}

	err := ValidateDependencies(session, config.ToolAssessAIA)
	var depErr *DependencyError
	if !errors.As(err, &depErr) {
		t.Fatalf("error = %v, want DependencyError", err)
	}
	if len(depErr.Missing) != 1 || depErr.Missing[0] != config.ToolValidateDescription {
		t.Errorf("Missing = %v, want [%s]", depErr.Missing, config.ToolValidateDescription)
	}

	if err := ValidateDependencies(session, "no_such_tool"); !errors.Is(err, ErrUnknownTool) {
		t.Errorf("error = %v, want ErrUnknownTool", err)
	}
}

func TestValidateDependencies_GateMustPass(t *testing.T) {
	store := NewStore(testTimeout)
	session, _ := store.Create(TypeAIAFull, "Gate Pass", testDescription)

	// Completed but failed: gates dependents exactly like a missing step
	store.RecordResult(session.ID, config.ToolValidateDescription, passResult{passed: false})
	session, _ = store.Get(session.ID)

	err := ValidateDependencies(session, config.ToolAssessAIA)
	var blocked *ValidationBlockedError
	if !errors.As(err, &blocked) {
		t.Fatalf("error = %v, want ValidationBlockedError", err)
	}

	store.RecordResult(session.ID, config.ToolValidateDescription, passResult{passed: true})
	session, _ = store.Get(session.ID)
	if err := ValidateDependencies(session, config.ToolAssessAIA); err != nil {
		t.Errorf("error after passing gate = %v, want nil", err)
	}
}
