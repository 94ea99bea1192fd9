package encode

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/ytget/nvenc-encoder/internal/model"
)

// Batch errors returned by Start and Run
var (
	ErrNoFiles        = errors.New("no files selected")
	ErrNoOutputDir    = errors.New("no output directory selected")
	ErrAlreadyRunning = errors.New("a conversion is already running")
	ErrNotRunning     = errors.New("no conversion is running")
)

// Conversion log markers
const (
	LogBatchStarted   = "=== Conversion started ==="
	LogBatchStopped   = "=== Conversion stopped by user ==="
	LogBatchFinished  = "=== Conversion finished ==="
	LogConverting     = "Converting: "
	LogTo             = "To: "
	LogCommand        = "Command: "
	LogFilesProcessed = "Files processed: %d/%d"
)

// Service converts a batch of files one at a time
type Service struct {
	runner Runner
	log    *logrus.Entry

	mu     sync.Mutex
	state  model.BatchState
	cancel context.CancelFunc
	done   chan struct{}
	last   model.Report

	// callbacks, set before Start
	onLine     func(string)
	onUpdate   func(model.ConversionTask)
	onFinished func(model.Report)
}

// NewService creates a conversion service. A nil runner uses ExecRunner and
// a nil logger uses the logrus standard logger.
func NewService(runner Runner, log *logrus.Entry) *Service {
	if runner == nil {
		runner = &ExecRunner{}
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Service{
		runner: runner,
		log:    log,
		state:  model.BatchStateIdle,
	}
}

// SetLineCallback sets the receiver of conversion log lines, including the
// tool's own output
func (s *Service) SetLineCallback(callback func(string)) {
	s.onLine = callback
}

// SetUpdateCallback sets the callback for per-file status and progress
func (s *Service) SetUpdateCallback(callback func(model.ConversionTask)) {
	s.onUpdate = callback
}

// SetFinishedCallback sets the callback invoked once per batch after the
// service is back to Idle. Wait returns only after the callback.
func (s *Service) SetFinishedCallback(callback func(model.Report)) {
	s.onFinished = callback
}

// State returns the current batch state
func (s *Service) State() model.BatchState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Start validates the batch and converts it on a background goroutine
func (s *Service) Start(batch model.Batch) error {
	ctx, err := s.begin(context.Background(), batch)
	if err != nil {
		return err
	}
	go func() {
		s.finish(s.process(ctx, batch))
	}()
	return nil
}

// Run converts the batch on the calling goroutine. Cancelling ctx has the
// same effect as Cancel.
func (s *Service) Run(ctx context.Context, batch model.Batch) (model.Report, error) {
	runCtx, err := s.begin(ctx, batch)
	if err != nil {
		return model.Report{}, err
	}
	report := s.process(runCtx, batch)
	s.finish(report)
	return report, nil
}

// Cancel stops the running batch. The file being converted is interrupted
// and no further file is attempted.
func (s *Service) Cancel() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case model.BatchStateIdle:
		return ErrNotRunning
	case model.BatchStateCancelling:
		return nil
	}

	s.state = model.BatchStateCancelling
	s.cancel()
	s.log.Info("Cancellation requested")
	return nil
}

// Wait blocks until the current batch, if any, is finished and returns the
// last report
func (s *Service) Wait() model.Report {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()

	if done != nil {
		<-done
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

func (s *Service) begin(parent context.Context, batch model.Batch) (context.Context, error) {
	if len(batch.Files) == 0 {
		return nil, ErrNoFiles
	}
	if batch.OutputDir == "" {
		return nil, ErrNoOutputDir
	}
	if err := batch.Options.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != model.BatchStateIdle {
		return nil, ErrAlreadyRunning
	}

	ctx, cancel := context.WithCancel(parent)
	s.cancel = cancel
	s.state = model.BatchStateRunning
	s.done = make(chan struct{})
	return ctx, nil
}

func (s *Service) finish(report model.Report) {
	s.mu.Lock()
	s.cancel()
	s.cancel = nil
	s.state = model.BatchStateIdle
	s.last = report
	done := s.done
	s.mu.Unlock()
	defer close(done)

	s.log.WithFields(logrus.Fields{
		"batch":     report.BatchID,
		"processed": report.Processed,
		"total":     report.Total,
		"failed":    report.Failed,
		"errored":   report.Errored,
		"cancelled": report.Cancelled,
		"elapsed":   report.Elapsed.Round(time.Millisecond),
	}).Info("Batch finished")

	if s.onFinished != nil {
		s.onFinished(report)
	}
}

// process walks the files in order. ctx is checked before each file and,
// inside the runner, per output line.
func (s *Service) process(ctx context.Context, batch model.Batch) model.Report {
	started := time.Now()
	total := len(batch.Files)
	report := model.Report{BatchID: batch.ID, Total: total}

	s.log.WithFields(logrus.Fields{
		"batch":  batch.ID,
		"files":  total,
		"output": batch.OutputDir,
	}).Info("Batch started")

	s.emit(LogBatchStarted)
	s.emit(fmt.Sprintf("Files to process: %d", total))
	s.emit("Output folder: " + batch.OutputDir)
	s.emit("")

	stopped := false
	for i, input := range batch.Files {
		if ctx.Err() != nil {
			stopped = true
			break
		}

		res := s.convert(ctx, i, total, input, batch)
		report.Add(res)
		if res.Kind == model.ResultSkipped {
			stopped = true
			break
		}
		s.emit("")
	}

	report.Cancelled = stopped
	report.Elapsed = time.Since(started)

	if stopped {
		s.emit(LogBatchStopped)
	}
	s.emit(LogBatchFinished)
	s.emit(fmt.Sprintf(LogFilesProcessed, report.Processed, report.Total))
	return report
}

// convert runs a single file and returns its result
func (s *Service) convert(ctx context.Context, index, total int, input string, batch model.Batch) model.ConversionResult {
	opts := batch.Options
	task := model.NewConversionTask(index, total, input)
	task.StartedAt = time.Now()
	task.Status = model.TaskStatusRunning
	s.notifyUpdate(task)

	logger := s.log.WithFields(logrus.Fields{
		"task":  task.ID,
		"input": input,
	})
	if info, err := os.Stat(input); err == nil {
		logger = logger.WithField("size", humanize.IBytes(uint64(info.Size())))
	}

	res := model.ConversionResult{Input: input}
	s.emit(LogConverting + filepath.Base(input))

	out, err := DeriveOutputPath(input, batch.OutputDir, opts.OutputSuffix, opts.PreserveStructure, opts.BaseDir)
	if err != nil {
		res.Kind = model.ResultErrored
		res.Message = err.Error()
		return s.complete(task, res, logger)
	}
	task.OutputPath = out
	res.Output = out
	s.emit(LogTo + filepath.Base(out))

	task.Args = BuildArgs(opts.Executable, input, out, opts)
	s.emit(LogCommand + CommandLine(task.Args))

	tracker := NewProgressTracker()
	outcome := s.runner.Run(ctx, task.Args, func(line string) {
		s.emit(line)
		if fraction, ok := tracker.Observe(line); ok {
			task.SetProgress(fraction)
			s.notifyUpdate(task)
		}
	})

	switch outcome.Kind {
	case OutcomeSuccess:
		res.Kind = model.ResultSucceeded
	case OutcomeFailed:
		res.Kind = model.ResultFailed
		res.ExitCode = outcome.ExitCode
	case OutcomeErrored:
		res.Kind = model.ResultErrored
		res.Message = outcome.Err.Error()
	default:
		res.Kind = model.ResultSkipped
		s.removePartial(out, opts, logger)
	}
	return s.complete(task, res, logger)
}

func (s *Service) complete(task *model.ConversionTask, res model.ConversionResult, logger *logrus.Entry) model.ConversionResult {
	res.Elapsed = time.Since(task.StartedAt)
	task.Finish(res)

	s.emit(res.Summary())
	logger.WithFields(logrus.Fields{
		"result":  res.Kind.String(),
		"elapsed": res.Elapsed.Round(time.Millisecond),
	}).Info("File finished")

	s.notifyUpdate(task)
	return res
}

// removePartial deletes an interrupted output. It is only done when the tool
// was allowed to overwrite, so a pre-existing file is never removed.
func (s *Service) removePartial(path string, opts model.ConversionOptions, logger *logrus.Entry) {
	if !opts.Overwrite || path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		logger.WithError(err).Warn("Failed to remove partial output")
	}
}

func (s *Service) emit(line string) {
	if s.onLine != nil {
		s.onLine(line)
	}
}

// notifyUpdate passes a copy so the receiver never races with the worker
func (s *Service) notifyUpdate(task *model.ConversionTask) {
	if s.onUpdate != nil {
		s.onUpdate(*task)
	}
}
