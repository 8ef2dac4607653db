package progress

import "time"

// Stage identifies which pipeline stage is active.
type Stage string

const (
	StageIngest     Stage = "ingest"
	StagePersonas   Stage = "personas"
	StageSynthesize Stage = "synthesize"
	StageGenerate   Stage = "generate"
	StageComplete   Stage = "complete"
)

// Event carries progress information from the pipeline to the renderer.
type Event struct {
	Stage   Stage
	Message string
	Percent float64 // 0.0–1.0
	Elapsed time.Duration
	Error   error
	// Platform is the target platform id, set on StageComplete.
	Platform string
	// WordCount is the generated content's word count, set on StageComplete.
	WordCount int
	// OutputFile is set on StageComplete when the content was written to disk.
	OutputFile string
}

// Callback is the function signature for progress event handlers.
type Callback func(Event)

// NopCallback is a no-op progress callback for tests and silent mode.
func NopCallback(Event) {}

// NewEvent creates an Event with common fields populated.
func NewEvent(stage Stage, msg string, pct float64, start time.Time) Event {
	return Event{
		Stage:   stage,
		Message: msg,
		Percent: pct,
		Elapsed: time.Since(start),
	}
}
