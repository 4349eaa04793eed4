package decision

import (
	"time"

	"github.com/charmbracelet/log"
)

// Recorder is the external telemetry collaborator. All methods are
// best-effort: implementations must never block a classification or
// surface errors into it.
type Recorder interface {
	// RecordStart marks the beginning of one classification call.
	RecordStart(agentID, executionRef string)

	// RecordSuccess marks a completed classification.
	RecordSuccess(agentID, executionRef string, confidence float64, duration time.Duration)

	// RecordFailure marks a failed classification.
	RecordFailure(agentID, executionRef string, err error)
}

// NopRecorder discards all telemetry.
type NopRecorder struct{}

func (NopRecorder) RecordStart(string, string) {}

func (NopRecorder) RecordSuccess(string, string, float64, time.Duration) {}

func (NopRecorder) RecordFailure(string, string, error) {}

// LogRecorder emits telemetry as structured log lines.
type LogRecorder struct {
	logger *log.Logger
}

// NewLogRecorder returns a recorder writing to the given logger.
func NewLogRecorder(logger *log.Logger) *LogRecorder {
	return &LogRecorder{logger: logger}
}

func (r *LogRecorder) RecordStart(agentID, executionRef string) {
	r.logger.Debug("classification started",
		"agent", agentID, "execution_ref", executionRef)
}

func (r *LogRecorder) RecordSuccess(agentID, executionRef string, confidence float64, duration time.Duration) {
	r.logger.Info("classification complete",
		"agent", agentID, "execution_ref", executionRef,
		"confidence", confidence, "duration", duration)
}

func (r *LogRecorder) RecordFailure(agentID, executionRef string, err error) {
	r.logger.Error("classification failed",
		"agent", agentID, "execution_ref", executionRef, "err", err)
}
