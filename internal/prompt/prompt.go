// Package prompt asks the operator yes/no questions.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/SibilSoren/react-vite-boilerplate/internal/output"
)

// ErrNoAnswer is returned when input ends before an answer is given.
var ErrNoAnswer = errors.New("no answer received; re-run with --yes to confirm without prompting")

// Confirmer asks a yes/no question.
type Confirmer interface {
	Confirm(ctx context.Context, question string) (bool, error)
}

// New returns a huh-backed Confirmer on a terminal and a line reader on
// stdin otherwise.
func New() Confirmer {
	if output.IsInteractive() {
		return &HuhConfirmer{}
	}
	return NewLineConfirmer(os.Stdin, os.Stderr)
}

// HuhConfirmer renders an interactive confirm field.
type HuhConfirmer struct{}

// Confirm implements Confirmer. Aborting the form counts as "no".
func (h *HuhConfirmer) Confirm(ctx context.Context, question string) (bool, error) {
	var confirmed bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(question).
			Affirmative("Yes").
			Negative("No").
			Value(&confirmed),
	))

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, fmt.Errorf("prompt: %w", err)
	}
	return confirmed, nil
}

// LineConfirmer reads a y/N answer from a line-oriented reader.
type LineConfirmer struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewLineConfirmer reads answers from in and writes questions to out.
func NewLineConfirmer(in io.Reader, out io.Writer) *LineConfirmer {
	return &LineConfirmer{in: bufio.NewScanner(in), out: out}
}

// Confirm implements Confirmer. Only "y" and "yes" confirm.
func (l *LineConfirmer) Confirm(_ context.Context, question string) (bool, error) {
	fmt.Fprintf(l.out, "%s [y/N]: ", question)

	if !l.in.Scan() {
		fmt.Fprintln(l.out)
		if err := l.in.Err(); err != nil {
			return false, fmt.Errorf("reading answer: %w", err)
		}
		return false, ErrNoAnswer
	}

	answer := strings.TrimSpace(strings.ToLower(l.in.Text()))
	return answer == "y" || answer == "yes", nil
}

// Static always returns the same answer. Used with --yes and in tests.
type Static struct {
	Answer bool
	Err    error

	Asked []string
}

// Confirm implements Confirmer.
func (s *Static) Confirm(_ context.Context, question string) (bool, error) {
	s.Asked = append(s.Asked, question)
	return s.Answer, s.Err
}
