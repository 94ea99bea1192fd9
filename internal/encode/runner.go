package encode

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"syscall"
	"time"
)

// DefaultWaitDelay bounds how long a terminated child may keep running
// before it is killed.
const DefaultWaitDelay = 5 * time.Second

// ErrEmptyCommand is returned when Run is called without an executable
var ErrEmptyCommand = errors.New("empty command")

// OutcomeKind classifies how a child process ended
type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeFailed
	OutcomeErrored
	OutcomeCancelled
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeFailed:
		return "failed"
	case OutcomeErrored:
		return "errored"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// ProcessOutcome is the result of one Run
type ProcessOutcome struct {
	Kind     OutcomeKind
	ExitCode int   // set for OutcomeFailed
	Err      error // set for OutcomeErrored
}

// ExecRunner runs the tool with os/exec. Stdout and stderr share one pipe so
// their lines arrive in the order the child wrote them.
type ExecRunner struct {
	// WaitDelay overrides DefaultWaitDelay when positive
	WaitDelay time.Duration
	// Env, if set, replaces the child's environment
	Env []string
}

// Run starts args[0] with args[1:], forwards every output line to onLine and
// waits for the child to exit. When ctx is cancelled the child is sent a
// termination signal, the rest of its output is discarded and the outcome is
// OutcomeCancelled.
func (r *ExecRunner) Run(ctx context.Context, args []string, onLine func(string)) ProcessOutcome {
	if len(args) == 0 || args[0] == "" {
		return ProcessOutcome{Kind: OutcomeErrored, Err: ErrEmptyCommand}
	}
	if ctx.Err() != nil {
		return ProcessOutcome{Kind: OutcomeCancelled}
	}

	pr, pw, err := os.Pipe()
	if err != nil {
		return ProcessOutcome{Kind: OutcomeErrored, Err: fmt.Errorf("failed to create output pipe: %w", err)}
	}
	defer pr.Close()

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stdout = pw
	cmd.Stderr = pw
	cmd.Env = r.Env
	cmd.WaitDelay = r.waitDelay()
	cmd.Cancel = func() error {
		return terminate(cmd.Process)
	}

	if err := cmd.Start(); err != nil {
		pw.Close()
		return ProcessOutcome{Kind: OutcomeErrored, Err: fmt.Errorf("failed to start %s: %w", args[0], err)}
	}
	// Only the child holds the write end now, so EOF means it exited
	pw.Close()

	// A child that ignores the signal, or a grandchild holding the pipe,
	// must not block the reader forever.
	stop := context.AfterFunc(ctx, func() {
		_ = pr.SetReadDeadline(time.Now().Add(r.waitDelay()))
	})
	defer stop()

	interrupted := false
	for line := range Lines(pr) {
		if ctx.Err() != nil {
			interrupted = true
			break
		}
		if onLine != nil {
			onLine(strings.TrimSpace(line))
		}
	}
	if !interrupted {
		// Lines stops early on overlong lines; keep the child from blocking on a full pipe
		_, _ = io.Copy(io.Discard, pr)
	} else {
		pr.Close()
	}

	waitErr := cmd.Wait()
	cleanExit := cmd.ProcessState != nil && cmd.ProcessState.Success()
	return outcomeOf(interrupted, cleanExit, ctx.Err(), waitErr)
}

// outcomeOf classifies a finished child. A child that drained its output
// and exited 0 is a success even if the context was cancelled afterwards;
// Wait reports ctx.Err() in that case when the signal reached the zombie.
func outcomeOf(interrupted, cleanExit bool, ctxErr, waitErr error) ProcessOutcome {
	if interrupted {
		return ProcessOutcome{Kind: OutcomeCancelled}
	}
	if cleanExit || waitErr == nil {
		return ProcessOutcome{Kind: OutcomeSuccess}
	}
	if ctxErr != nil {
		return ProcessOutcome{Kind: OutcomeCancelled}
	}

	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) {
		return ProcessOutcome{Kind: OutcomeFailed, ExitCode: exitErr.ExitCode()}
	}
	return ProcessOutcome{Kind: OutcomeErrored, Err: waitErr}
}

func (r *ExecRunner) waitDelay() time.Duration {
	if r.WaitDelay > 0 {
		return r.WaitDelay
	}
	return DefaultWaitDelay
}

// terminate asks the child to exit. Windows has no SIGTERM delivery for
// console processes, so the child is killed there.
func terminate(p *os.Process) error {
	if p == nil {
		return nil
	}
	if runtime.GOOS == "windows" {
		return p.Kill()
	}
	return p.Signal(syscall.SIGTERM)
}
