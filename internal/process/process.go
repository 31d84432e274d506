// Package process runs external commands behind a small interface so callers
// can be tested without spawning anything.
package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"
)

// Command describes one external process invocation.
type Command struct {
	Name string
	Args []string
	// Dir is the working directory. Empty means the current directory.
	Dir string
	// Env is appended to the current environment.
	Env []string
	// Stream tees output to Stdout/Stderr while still capturing it.
	Stream bool
	Stdout io.Writer
	Stderr io.Writer
	// Timeout bounds the run. Zero means no limit beyond ctx.
	Timeout time.Duration
}

// String renders the command line for logs and error context.
func (c Command) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// Result is the observable outcome of a finished process.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Success reports whether the process exited with status 0.
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// Runner executes commands. A non-zero exit status is reported through
// Result.ExitCode and is not an error; the error return is reserved for
// spawn failures, timeouts and cancellation.
type Runner interface {
	Run(ctx context.Context, cmd Command) (Result, error)
}

// ErrTimeout is returned when a command exceeds its Timeout.
var ErrTimeout = errors.New("command timed out")

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// NewExecRunner returns a Runner backed by os/exec.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, c Command) (Result, error) {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	if len(c.Env) > 0 {
		cmd.Env = append(os.Environ(), c.Env...)
	}
	cmd.WaitDelay = 2 * time.Second

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if c.Stream {
		if c.Stdout != nil {
			cmd.Stdout = io.MultiWriter(&stdout, c.Stdout)
		}
		if c.Stderr != nil {
			cmd.Stderr = io.MultiWriter(&stderr, c.Stderr)
		}
	}

	err := cmd.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}

	if ctxErr := ctx.Err(); ctxErr != nil {
		res.ExitCode = -1
		if errors.Is(ctxErr, context.DeadlineExceeded) && c.Timeout > 0 {
			return res, fmt.Errorf("%s: %w after %s", c, ErrTimeout, c.Timeout)
		}
		return res, fmt.Errorf("%s: %w", c, ctxErr)
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		res.ExitCode = -1
		return res, fmt.Errorf("starting %s: %w", c.Name, err)
	}
	return res, nil
}
