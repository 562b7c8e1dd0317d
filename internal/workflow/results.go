package workflow

// Result kinds stored in Session.ToolResults. One kind per tool family, so
// consumers can discriminate without runtime key lookups into untyped maps.
const (
	KindValidation = "validation"
	KindAssessment = "assessment"
	KindResponses  = "responses"
	KindStage      = "stage"
	KindReport     = "report_data"
	KindExport     = "export"
)

// ToolResult is implemented by every payload recorded against a completed
// tool. Implementations live with the component that produces them; the
// engine only needs the discriminator and the two capability interfaces
// below.
type ToolResult interface {
	ResultKind() string
}

// Gated is implemented by validation-gate results. Completion alone does not
// satisfy a dependency on the gate; the recorded result must also report
// GatePassed() == true. A completed-but-failed gate blocks dependents
// exactly like a missing one.
type Gated interface {
	GatePassed() bool
}

// ScoreCarrier is implemented by results that carry a full risk outcome.
// The export guard walks completed results through this interface to find
// injectable data before refusing an export.
type ScoreCarrier interface {
	// RiskSummary returns the numeric score, the discrete level label, and
	// whether the result is complete enough to render.
	RiskSummary() (score float64, level string, complete bool)
}

// ResultCopier is implemented by results that carry reference types (maps,
// slices, pointers). The store uses it when cloning sessions, so the
// copy-on-read discipline extends into result payloads; results holding only
// value fields need not implement it.
type ResultCopier interface {
	CopyResult() ToolResult
}

// StageResult records a lifecycle stage chosen explicitly by the user.
type StageResult struct {
	Stage LifecycleStage `json:"stage"`
}

// ResultKind implements ToolResult
func (StageResult) ResultKind() string { return KindStage }
