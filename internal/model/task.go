package model

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// ResultKind classifies how a single file conversion ended
type ResultKind int

const (
	// ResultSucceeded means the tool exited with status 0
	ResultSucceeded ResultKind = iota
	// ResultFailed means the tool ran and exited non-zero
	ResultFailed
	// ResultErrored means the tool could not be started or the output path was unusable
	ResultErrored
	// ResultSkipped means the file was interrupted or never attempted because of a stop request
	ResultSkipped
)

func (k ResultKind) String() string {
	switch k {
	case ResultSucceeded:
		return "succeeded"
	case ResultFailed:
		return "failed"
	case ResultErrored:
		return "errored"
	case ResultSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Counted reports whether the result contributes to the processed counter
func (k ResultKind) Counted() bool {
	return k == ResultSucceeded || k == ResultFailed || k == ResultErrored
}

// ConversionResult is the outcome of one file
type ConversionResult struct {
	Input    string
	Output   string
	Kind     ResultKind
	ExitCode int    // meaningful for ResultFailed
	Message  string // meaningful for ResultErrored
	Elapsed  time.Duration
}

// Summary renders the result the way it appears in the conversion log
func (r ConversionResult) Summary() string {
	name := filepath.Base(r.Input)
	switch r.Kind {
	case ResultSucceeded:
		return "✓ Success: " + name
	case ResultFailed:
		return fmt.Sprintf("✗ Failed: %s (code %d)", name, r.ExitCode)
	case ResultErrored:
		return "✗ Error: " + r.Message
	default:
		return "■ Stopped: " + name
	}
}

// ConversionTask is one file's unit of work inside a batch. It is derived
// from the batch snapshot and rebuilt for every run.
type ConversionTask struct {
	ID         string
	Index      int // position in the batch, 0-based
	Total      int // batch size
	InputPath  string
	OutputPath string
	Args       []string
	Status     TaskStatus
	Progress   float64 // 0.0 to 1.0
	Percent    int     // 0 to 100
	LastError  string
	StartedAt  time.Time
	FinishedAt time.Time
}

// NewConversionTask creates a pending task for input at position index of total
func NewConversionTask(index, total int, input string) *ConversionTask {
	return &ConversionTask{
		ID:        newID("convert-"),
		Index:     index,
		Total:     total,
		InputPath: input,
		Status:    TaskStatusPending,
	}
}

// SetProgress updates the fractional progress, clamped to [0,1]
func (t *ConversionTask) SetProgress(fraction float64) {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	t.Progress = fraction
	t.Percent = int(fraction * 100)
}

// Finish records the terminal status of the task from its result
func (t *ConversionTask) Finish(r ConversionResult) {
	t.FinishedAt = time.Now()
	switch r.Kind {
	case ResultSucceeded:
		t.Status = TaskStatusCompleted
		t.SetProgress(1)
	case ResultFailed:
		t.Status = TaskStatusFailed
		t.LastError = fmt.Sprintf("exit code %d", r.ExitCode)
	case ResultErrored:
		t.Status = TaskStatusError
		t.LastError = r.Message
	default:
		t.Status = TaskStatusStopped
	}
}

// Report is the terminal summary of a batch
type Report struct {
	BatchID   string
	Processed int
	Total     int
	Succeeded int
	Failed    int
	Errored   int
	Cancelled bool
	Results   []ConversionResult
	Elapsed   time.Duration
}

// Add records one file result and updates the counters
func (r *Report) Add(res ConversionResult) {
	r.Results = append(r.Results, res)
	switch res.Kind {
	case ResultSucceeded:
		r.Succeeded++
	case ResultFailed:
		r.Failed++
	case ResultErrored:
		r.Errored++
	}
	if res.Kind.Counted() {
		r.Processed++
	}
}

// Complete reports whether every file in the batch produced an outcome
func (r Report) Complete() bool {
	return r.Processed == r.Total
}

// Clean reports whether the batch completed and every file succeeded
func (r Report) Clean() bool {
	return r.Complete() && !r.Cancelled && r.Failed == 0 && r.Errored == 0
}

func newID(prefix string) string {
	id, err := uuid.NewV7()
	if err != nil {
		return prefix + uuid.NewString()
	}
	return prefix + id.String()
}
