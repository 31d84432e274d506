// Package rollback records compensating actions for a multi-step operation
// and runs them in reverse order when the operation fails.
package rollback

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
)

// Action is a single compensating step.
type Action struct {
	Run         func() error
	Description string
}

// Failure records a compensating action that returned an error or panicked.
type Failure struct {
	Description string
	Err         error
}

// Report summarizes one Execute call.
type Report struct {
	Attempted int
	Failures  []Failure
}

// OK reports whether every attempted action succeeded.
func (r Report) OK() bool {
	return len(r.Failures) == 0
}

// Manager holds an ordered list of compensating actions. Once Execute or
// MarkCompleted has been called, later Execute calls are no-ops.
type Manager struct {
	mu        sync.Mutex
	actions   []Action
	completed bool
	logger    *log.Logger
}

// New creates an empty Manager. A nil logger uses log.Default().
func New(logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.Default()
	}
	return &Manager{logger: logger}
}

// AddAction appends a compensating action.
func (m *Manager) AddAction(action func() error, description string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.actions = append(m.actions, Action{Run: action, Description: description})
}

// Len returns the number of registered actions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.actions)
}

// Completed reports whether the manager has been executed or marked completed.
func (m *Manager) Completed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.completed
}

// MarkCompleted disarms the manager without running any action.
func (m *Manager) MarkCompleted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.completed = true
}

// Execute runs every registered action in reverse insertion order, at most
// once over the manager's lifetime. A failing action is logged and recorded;
// the remaining actions still run. Execute never panics.
func (m *Manager) Execute() Report {
	m.mu.Lock()
	if m.completed {
		m.mu.Unlock()
		return Report{}
	}
	m.completed = true
	actions := make([]Action, len(m.actions))
	copy(actions, m.actions)
	m.mu.Unlock()

	var report Report
	if len(actions) == 0 {
		return report
	}

	m.logger.Warn("Rolling back changes", "actions", len(actions))

	for i := len(actions) - 1; i >= 0; i-- {
		a := actions[i]
		report.Attempted++

		m.logger.Debug("Rollback", "action", a.Description)
		if err := runSafely(a.Run); err != nil {
			m.logger.Error("Rollback action failed", "action", a.Description, "error", err)
			report.Failures = append(report.Failures, Failure{Description: a.Description, Err: err})
		}
	}

	if report.OK() {
		m.logger.Info("Rollback complete")
	}
	return report
}

func runSafely(fn func() error) (err error) {
	if fn == nil {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn()
}
