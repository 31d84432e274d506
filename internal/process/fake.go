package process

import (
	"context"
	"sync"
)

// FakeRunner is a scripted Runner for tests. Handler receives each command;
// a nil Handler returns a zero Result.
type FakeRunner struct {
	Handler func(ctx context.Context, cmd Command) (Result, error)

	mu    sync.Mutex
	calls []Command
}

// Run records the command and delegates to Handler.
func (f *FakeRunner) Run(ctx context.Context, cmd Command) (Result, error) {
	f.mu.Lock()
	f.calls = append(f.calls, cmd)
	f.mu.Unlock()

	if f.Handler == nil {
		return Result{}, nil
	}
	return f.Handler(ctx, cmd)
}

// Calls returns a copy of the recorded commands.
func (f *FakeRunner) Calls() []Command {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Command, len(f.calls))
	copy(out, f.calls)
	return out
}

// CommandLines returns the recorded commands rendered with Command.String.
func (f *FakeRunner) CommandLines() []string {
	calls := f.Calls()
	lines := make([]string, len(calls))
	for i, c := range calls {
		lines[i] = c.String()
	}
	return lines
}
