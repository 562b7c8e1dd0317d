package workflow

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store is the sole holder of mutable workflow state. It is constructed once
// at process start and injected into the engine and the protocol adapter;
// there is no package-level session map.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	timeout  time.Duration

	// now is swappable in tests
	now func() time.Time
}

// NewStore creates a session store with the given inactivity timeout
func NewStore(timeout time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		timeout:  timeout,
		now:      time.Now,
	}
}

// Create validates the assessment type, builds the step sequence from the
// static per-type table and returns the new session.
func (st *Store) Create(t AssessmentType, projectName, projectDescription string) (*Session, error) {
	if !KnownAssessmentType(t) {
		return nil, ErrInvalidAssessmentType
	}
	seq, _ := SequenceFor(t)

	now := st.now()
	session := &Session{
		ID:                 uuid.NewString(),
		AssessmentType:     t,
		ProjectName:        projectName,
		ProjectDescription: projectDescription,
		State:              SessionStateCreated,
		StepSequence:       seq,
		CompletedTools:     make(map[string]bool),
		ToolResults:        make(map[string]ToolResult),
		CreatedAt:          now,
		LastAccessed:       now,
	}

	st.mu.Lock()
	st.sessions[session.ID] = session
	st.mu.Unlock()

	return session.clone(), nil
}

// Get returns a copy of the session and refreshes its activity timestamp.
// An expired session is removed and reported as ErrSessionExpired; it never
// serves stale data.
func (st *Store) Get(id string) (*Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	session, err := st.lookup(id)
	if err != nil {
		return nil, err
	}
	session.LastAccessed = st.now()
	return session.clone(), nil
}

// lookup fetches a live session under the caller's lock, applying lazy expiry
func (st *Store) lookup(id string) (*Session, error) {
	session, ok := st.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if st.now().Sub(session.LastAccessed) > st.timeout {
		delete(st.sessions, id)
		return nil, ErrSessionExpired
	}
	return session, nil
}

// RecordResult marks tool completed, stores its result and advances the
// session state. The session moves to completed when every required step in
// its sequence is done and the validation gate passed; a failed gate result
// moves it to failed until a later passing run clears the block.
func (st *Store) RecordResult(id, tool string, result ToolResult) (*Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	session, err := st.lookup(id)
	if err != nil {
		return nil, err
	}
	if _, ok := findStep(session, tool); !ok {
		return nil, ErrUnknownTool
	}

	session.CompletedTools[tool] = true
	session.ToolResults[tool] = result
	session.LastAccessed = st.now()
	session.State = deriveState(session)

	return session.clone(), nil
}

// deriveState recomputes the session state from recorded results
func deriveState(s *Session) SessionState {
	if gateFailed(s) {
		return SessionStateFailed
	}
	if len(s.CompletedTools) == 0 {
		return SessionStateCreated
	}
	for _, step := range s.StepSequence {
		if step.Required && !s.CompletedTools[step.Tool] {
			return SessionStateInProgress
		}
	}
	return SessionStateCompleted
}

// gateFailed reports whether any recorded gate result did not pass
func gateFailed(s *Session) bool {
	for _, r := range s.ToolResults {
		if gated, ok := r.(Gated); ok && !gated.GatePassed() {
			return true
		}
	}
	return false
}

// SetProjectDescription replaces the session's description text. A failed
// validation gate is only recoverable by re-validating better text, so the
// description is the one session field the caller may revise after creation.
func (st *Store) SetProjectDescription(id, description string) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	session, err := st.lookup(id)
	if err != nil {
		return err
	}
	session.ProjectDescription = description
	session.LastAccessed = st.now()
	return nil
}

// SetLifecycleStage stores an explicitly chosen stage. Only the five known
// values are accepted; nothing here or anywhere else infers a stage from the
// project description.
func (st *Store) SetLifecycleStage(id string, stage LifecycleStage) error {
	if !KnownStage(stage) {
		return ErrInvalidStage
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	session, err := st.lookup(id)
	if err != nil {
		return err
	}
	session.LifecycleStage = stage
	session.LastAccessed = st.now()
	return nil
}

// GetLifecycleStage returns the stored stage and whether one has been set
func (st *Store) GetLifecycleStage(id string) (LifecycleStage, bool, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	session, err := st.lookup(id)
	if err != nil {
		return "", false, err
	}
	session.LastAccessed = st.now()
	return session.LifecycleStage, session.LifecycleStage != "", nil
}

// CleanupStale removes sessions idle past the timeout and returns the count
func (st *Store) CleanupStale() int {
	st.mu.Lock()
	defer st.mu.Unlock()

	now := st.now()
	deleted := 0
	for id, session := range st.sessions {
		if now.Sub(session.LastAccessed) > st.timeout {
			delete(st.sessions, id)
			deleted++
		}
	}
	return deleted
}

// RunCleanupLoop sweeps stale sessions on a ticker until ctx is done
func (st *Store) RunCleanupLoop(ctx context.Context, interval time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if deleted := st.CleanupStale(); deleted > 0 {
				logger.Info("Cleaned up stale sessions", "count", deleted)
			}
		case <-ctx.Done():
			return
		}
	}
}

// Count returns the number of live sessions
func (st *Store) Count() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
