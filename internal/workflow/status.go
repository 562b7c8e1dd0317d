package workflow

// SequenceEntry is one marked step in a status view
type SequenceEntry struct {
	Tool        string `json:"tool"`
	Required    bool   `json:"required"`
	Automatable bool   `json:"automatable"`
	Completed   bool   `json:"completed"`
}

// Status is a read-only progress view of a session
type Status struct {
	SessionID            string          `json:"session_id"`
	AssessmentType       AssessmentType  `json:"assessment_type"`
	ProjectName          string          `json:"project_name"`
	State                SessionState    `json:"state"`
	CompletedTools       []string        `json:"completed_tools"`
	RemainingTools       []string        `json:"remaining_tools"`
	CompletionPercentage float64         `json:"completion_percentage"`
	NextRecommendedStep  string          `json:"next_recommended_step,omitempty"`
	LifecycleStage       LifecycleStage  `json:"lifecycle_stage,omitempty"`
	Sequence             []SequenceEntry `json:"sequence"`
}

// Status produces a progress view without mutating the session beyond the
// standard activity refresh from the fetch.
func (e *Engine) Status(sessionID string) (*Status, error) {
	session, err := e.store.Get(sessionID)
	if err != nil {
		return nil, err
	}

	status := &Status{
		SessionID:      session.ID,
		AssessmentType: session.AssessmentType,
		ProjectName:    session.ProjectName,
		State:          session.State,
		LifecycleStage: session.LifecycleStage,
	}

	// Numerator and denominator both come from the session's fixed sequence
	// table; a mismatched question set can never skew the ratio.
	requiredTotal := RequiredStepCount(session.AssessmentType)
	requiredDone := 0

	for _, step := range session.StepSequence {
		done := session.Completed(step.Tool)
		status.Sequence = append(status.Sequence, SequenceEntry{
			Tool:        step.Tool,
			Required:    step.Required,
			Automatable: step.Automatable,
			Completed:   done,
		})
		if done {
			status.CompletedTools = append(status.CompletedTools, step.Tool)
			if step.Required {
				requiredDone++
			}
		} else {
			status.RemainingTools = append(status.RemainingTools, step.Tool)
		}
	}

	if requiredTotal > 0 {
		status.CompletionPercentage = float64(requiredDone) / float64(requiredTotal) * 100
	}
	if status.CompletionPercentage > 100 {
		status.CompletionPercentage = 100
	}
	if status.CompletionPercentage < 0 {
		status.CompletionPercentage = 0
	}

	if next, ok := e.NextStep(session); ok {
		status.NextRecommendedStep = next
	}

	return status, nil
}
