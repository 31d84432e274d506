package output

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh/spinner"
)

// SpinnerOption configures a spinner.
type SpinnerOption func(*spinnerConfig)

type spinnerConfig struct {
	title   string
	enabled bool
}

// WithTitle sets the spinner title.
func WithTitle(title string) SpinnerOption {
	return func(c *spinnerConfig) {
		c.title = title
	}
}

// WithSpinnerEnabled forces the spinner on or off. By default it is shown
// only when stdout is a terminal.
func WithSpinnerEnabled(enabled bool) SpinnerOption {
	return func(c *spinnerConfig) {
		c.enabled = enabled
	}
}

// RunWithSpinner executes an action with a spinner.
func RunWithSpinner(ctx context.Context, action func(ctx context.Context) error, opts ...SpinnerOption) error {
	cfg := &spinnerConfig{
		title:   "Working...",
		enabled: IsTTY(),
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if !cfg.enabled {
		return action(ctx)
	}

	done := make(chan struct{})
	var actionErr error
	go func() {
		defer close(done)
		actionErr = action(ctx)
	}()

	spinnerErr := spinner.New().
		Title(cfg.title).
		Action(func() {
			<-done
		}).
		Run()

	// The action owns the subprocess; always wait for it to finish.
	<-done

	if actionErr != nil {
		return actionErr
	}
	if spinnerErr != nil {
		return fmt.Errorf("spinner error: %w", spinnerErr)
	}
	return nil
}
