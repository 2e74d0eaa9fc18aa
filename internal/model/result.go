package model

import (
	"time"
)

// RunStatus represents the terminal state of a run. StatusSuccess doubles as
// the initial value; it only becomes meaningful once the run returns.
type RunStatus string

const (
	StatusSuccess   RunStatus = "success"
	StatusFailed    RunStatus = "failed"
	StatusCancelled RunStatus = "cancelled"
)

// Log levels recorded in run results.
const (
	LevelDebug   = "DEBUG"
	LevelInfo    = "INFO"
	LevelWarning = "WARNING"
	LevelError   = "ERROR"
)

// LogEntry is a single run log line with its capture-time timestamp.
type LogEntry struct {
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	StepType  string    `json:"step_type,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// ActionError records one failure observed during a run.
type ActionError struct {
	Message  string `json:"message"`
	StepType string `json:"step_type,omitempty"`
	Kind     string `json:"kind,omitempty"`
}

// RunResult accumulates logs, errors, and named outputs for one run. It is
// owned exclusively by the run that created it; concurrent runs never share a
// result.
type RunResult struct {
	Status  RunStatus      `json:"status"`
	Logs    []LogEntry     `json:"logs"`
	Errors  []ActionError  `json:"errors"`
	Outputs map[string]any `json:"outputs"`
}

// NewRunResult creates an empty result in the success state.
func NewRunResult() *RunResult {
	return &RunResult{
		Status:  StatusSuccess,
		Outputs: make(map[string]any),
	}
}

// AddLog appends a log entry stamped with the current time.
func (r *RunResult) AddLog(level, message, stepType string) {
	r.Logs = append(r.Logs, LogEntry{
		Level:     level,
		Message:   message,
		StepType:  stepType,
		Timestamp: time.Now().UTC(),
	})
}

// AddError appends an error and forces the status to failed. Errors are never
// cleared and the status never reverts.
func (r *RunResult) AddError(message, stepType, kind string) {
	r.Errors = append(r.Errors, ActionError{Message: message, StepType: stepType, Kind: kind})
	r.Status = StatusFailed
}

// Cancel marks the run cancelled unless a failure was already recorded.
func (r *RunResult) Cancel() {
	if r.Status == StatusFailed {
		return
	}
	r.Status = StatusCancelled
}

// Failed reports whether a failure has been recorded.
func (r *RunResult) Failed() bool {
	return r.Status == StatusFailed
}
