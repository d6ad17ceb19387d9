package metrics

import "time"

// OutcomeLabel enumerates copy run outcomes for counters.
type OutcomeLabel string

const (
	OutcomeCopied  OutcomeLabel = "copied"
	OutcomeSkipped OutcomeLabel = "skipped" // source directory absent
	OutcomeFailed  OutcomeLabel = "failed"
)

// Recorder defines observability hooks for copy runs. Implementations may
// forward to Prometheus or similar; NoopRecorder is the default.
type Recorder interface {
	ObserveCopyDuration(d time.Duration)
	IncFilesCopied(n int)
	AddBytesCopied(n int64)
	IncCopyOutcome(outcome OutcomeLabel)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveCopyDuration(time.Duration) {}
func (NoopRecorder) IncFilesCopied(int)                {}
func (NoopRecorder) AddBytesCopied(int64)              {}
func (NoopRecorder) IncCopyOutcome(OutcomeLabel)       {}
