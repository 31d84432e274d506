// Package git initializes a repository in a freshly scaffolded project.
package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/SibilSoren/react-vite-boilerplate/internal/output"
	"github.com/SibilSoren/react-vite-boilerplate/internal/process"
)

// CommitMessage is used for the initial commit.
const CommitMessage = "Initial commit from react-vite-boilerplate"

// StepError reports which git step failed.
type StepError struct {
	Step     string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *StepError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "git %s failed", e.Step)
	if e.Err != nil {
		fmt.Fprintf(&sb, ": %v", e.Err)
	} else {
		fmt.Fprintf(&sb, " with exit status %d", e.ExitCode)
	}
	if msg := strings.TrimSpace(e.Stderr); msg != "" {
		fmt.Fprintf(&sb, ": %s", msg)
	}
	return sb.String()
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Initializer runs git through a process.Runner.
type Initializer struct {
	Runner process.Runner
}

// NewInitializer creates an Initializer. A nil runner uses process.ExecRunner.
func NewInitializer(runner process.Runner) *Initializer {
	if runner == nil {
		runner = process.NewExecRunner()
	}
	return &Initializer{Runner: runner}
}

// Available reports whether git can be executed.
func (g *Initializer) Available(ctx context.Context) bool {
	res, err := g.Runner.Run(ctx, process.Command{Name: "git", Args: []string{"--version"}})
	return err == nil && res.Success()
}

// Init creates a repository in dir, stages everything and commits it.
// The steps run in order and the first failure is returned as a *StepError.
func (g *Initializer) Init(ctx context.Context, dir string) error {
	steps := []struct {
		name string
		args []string
	}{
		{"init", []string{"init"}},
		{"add", []string{"add", "-A"}},
		{"commit", []string{"commit", "-m", CommitMessage}},
	}

	for _, s := range steps {
		output.Debug("running git", "step", s.name, "dir", dir)

		res, err := g.Runner.Run(ctx, process.Command{Name: "git", Args: s.args, Dir: dir})
		if err != nil {
			return &StepError{Step: s.name, ExitCode: -1, Err: err}
		}
		if !res.Success() {
			return &StepError{Step: s.name, ExitCode: res.ExitCode, Stderr: res.Stderr}
		}
	}
	return nil
}
