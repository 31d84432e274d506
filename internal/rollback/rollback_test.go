package rollback

import (
	"bytes"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() (*Manager, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	return New(logger), &buf
}

func TestExecute_ReverseOrder(t *testing.T) {
	m, _ := newTestManager()
	var order []string

	for _, name := range []string{"a", "b", "c"} {
		m.AddAction(func() error {
			order = append(order, name)
			return nil
		}, "undo "+name)
	}

	report := m.Execute()
	assert.Equal(t, []string{"c", "b", "a"}, order)
	assert.Equal(t, 3, report.Attempted)
	assert.True(t, report.OK())
	assert.True(t, m.Completed())
}

func TestExecute_ContinuesAfterFailure(t *testing.T) {
	m, buf := newTestManager()
	var order []string

	m.AddAction(func() error { order = append(order, "first"); return nil }, "first")
	m.AddAction(func() error { order = append(order, "fails"); return errors.New("boom") }, "fails")
	m.AddAction(func() error { order = append(order, "panics"); panic("kaboom") }, "panics")

	report := m.Execute()

	assert.Equal(t, []string{"panics", "fails", "first"}, order)
	assert.Equal(t, 3, report.Attempted)
	require.Len(t, report.Failures, 2)
	assert.Equal(t, "panics", report.Failures[0].Description)
	assert.Contains(t, report.Failures[0].Err.Error(), "kaboom")
	assert.Equal(t, "fails", report.Failures[1].Description)
	assert.EqualError(t, report.Failures[1].Err, "boom")
	assert.Contains(t, buf.String(), "Rollback action failed")
}

func TestExecute_AtMostOnce(t *testing.T) {
	m, _ := newTestManager()
	var calls int
	m.AddAction(func() error { calls++; return nil }, "count")

	m.Execute()
	second := m.Execute()

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, second.Attempted)
}

func TestExecute_Concurrent(t *testing.T) {
	m, _ := newTestManager()
	var calls atomic.Int32
	for range 5 {
		m.AddAction(func() error { calls.Add(1); return nil }, "count")
	}

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Execute()
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(5), calls.Load())
}

func TestMarkCompleted_DisarmsExecute(t *testing.T) {
	m, _ := newTestManager()
	called := false
	m.AddAction(func() error { called = true; return nil }, "never")

	m.MarkCompleted()
	report := m.Execute()

	assert.False(t, called)
	assert.Equal(t, 0, report.Attempted)
	assert.True(t, m.Completed())
}

func TestExecute_Empty(t *testing.T) {
	m, buf := newTestManager()
	report := m.Execute()

	assert.Equal(t, Report{}, report)
	assert.Empty(t, buf.String())
	assert.Equal(t, 0, m.Len())
}

func TestExecute_NilAction(t *testing.T) {
	m, _ := newTestManager()
	m.AddAction(nil, "nil")

	report := m.Execute()
	assert.Equal(t, 1, report.Attempted)
	assert.True(t, report.OK())
}

func TestNew_NilLogger(t *testing.T) {
	m := New(nil)
	m.AddAction(func() error { return nil }, "noop")
	assert.Equal(t, 1, m.Len())
}
