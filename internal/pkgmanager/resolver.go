package pkgmanager

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"golang.org/x/sync/errgroup"

	rerrors "github.com/SibilSoren/react-vite-boilerplate/internal/errors"
	"github.com/SibilSoren/react-vite-boilerplate/internal/output"
	"github.com/SibilSoren/react-vite-boilerplate/internal/process"
)

// Resolver probes package managers through a process.Runner.
type Resolver struct {
	Runner process.Runner
}

// NewResolver creates a Resolver. A nil runner uses process.ExecRunner.
func NewResolver(runner process.Runner) *Resolver {
	if runner == nil {
		runner = process.NewExecRunner()
	}
	return &Resolver{Runner: runner}
}

// IsAvailable reports whether name is a known manager whose check command
// exits with status 0. Unknown names are rejected without spawning anything.
func (r *Resolver) IsAvailable(ctx context.Context, name string) bool {
	cfg, ok := Lookup(name)
	if !ok {
		return false
	}

	res, err := r.Runner.Run(ctx, process.Command{
		Name: cfg.CheckCommand[0],
		Args: cfg.CheckCommand[1:],
	})
	if err != nil {
		output.Debug("package manager probe failed", "manager", name, "error", err)
		return false
	}
	return res.Success()
}

// DetectAvailable probes every known manager concurrently and returns the
// available ones in registry order. One failed probe does not affect others.
func (r *Resolver) DetectAvailable(ctx context.Context) []string {
	found := make([]bool, len(registry))

	g, gctx := errgroup.WithContext(ctx)
	for i, cfg := range registry {
		g.Go(func() error {
			found[i] = r.IsAvailable(gctx, cfg.Name)
			return nil
		})
	}
	_ = g.Wait()

	var available []string
	for i, cfg := range registry {
		if found[i] {
			available = append(available, cfg.Name)
		}
	}
	output.Debug("detected package managers", "available", strings.Join(available, ","))
	return available
}

// GetPreferred chooses a manager for projectDir from available:
// a lockfile in projectDir, then one in its parent (workspace roots), then
// the pnpm > yarn > bun > npm priority, then available[0], then npm.
// It only checks file existence and never spawns processes.
func GetPreferred(projectDir string, available []string) string {
	if name, ok := lockfileMatch(projectDir, available); ok {
		return name
	}
	if name, ok := lockfileMatch(filepath.Dir(filepath.Clean(projectDir)), available); ok {
		return name
	}

	for _, name := range priority {
		if slices.Contains(available, name) {
			return name
		}
	}

	if len(available) > 0 {
		return available[0]
	}
	return Fallback
}

func lockfileMatch(dir string, available []string) (string, bool) {
	for _, cfg := range registry {
		if !slices.Contains(available, cfg.Name) {
			continue
		}
		if _, err := os.Stat(filepath.Join(dir, cfg.LockFile)); err == nil {
			return cfg.Name, true
		}
	}
	return "", false
}

// Version runs the manager's check command and parses its output as semver.
func (r *Resolver) Version(ctx context.Context, name string) (*semver.Version, error) {
	cfg, ok := Lookup(name)
	if !ok {
		return nil, rerrors.PackageManager(fmt.Sprintf("unknown package manager %q", name), rerrors.WithManager(name))
	}

	cmd := process.Command{Name: cfg.CheckCommand[0], Args: cfg.CheckCommand[1:]}
	res, err := r.Runner.Run(ctx, cmd)
	if err != nil {
		return nil, rerrors.PackageManager(fmt.Sprintf("%s is not available", name),
			rerrors.WithManager(name), rerrors.WithCommand(cmd.String()), rerrors.WithCause(err))
	}
	if !res.Success() {
		return nil, rerrors.PackageManager(fmt.Sprintf("%s --version failed", name),
			rerrors.WithManager(name), rerrors.WithCommand(cmd.String()), rerrors.WithExitCode(res.ExitCode))
	}

	v, err := semver.NewVersion(strings.TrimSpace(res.Stdout))
	if err != nil {
		return nil, fmt.Errorf("parsing %s version %q: %w", name, strings.TrimSpace(res.Stdout), err)
	}
	return v, nil
}

// InstallOptions controls how Install runs.
type InstallOptions struct {
	// Stream forwards the manager's output to Stdout and Stderr.
	Stream  bool
	Stdout  io.Writer
	Stderr  io.Writer
	Timeout time.Duration
}

// Install runs the manager's install command in dir.
func (r *Resolver) Install(ctx context.Context, name, dir string, opts InstallOptions) error {
	cfg, ok := Lookup(name)
	if !ok {
		return rerrors.PackageManager(fmt.Sprintf("unknown package manager %q", name), rerrors.WithManager(name))
	}
	return r.run(ctx, name, dir, cfg.InstallCommand, "install", opts)
}

// Exec runs a package binary through the manager's executor
// (npx, yarn dlx, pnpm dlx or bunx) in dir.
func (r *Resolver) Exec(ctx context.Context, name, dir string, args []string, opts InstallOptions) error {
	cfg, ok := Lookup(name)
	if !ok {
		return rerrors.PackageManager(fmt.Sprintf("unknown package manager %q", name), rerrors.WithManager(name))
	}
	argv := append(slices.Clone(cfg.ExecCommand), args...)
	return r.run(ctx, name, dir, argv, "exec", opts)
}

func (r *Resolver) run(ctx context.Context, name, dir string, argv []string, step string, opts InstallOptions) error {
	cmd := process.Command{
		Name:    argv[0],
		Args:    argv[1:],
		Dir:     dir,
		Stream:  opts.Stream,
		Stdout:  opts.Stdout,
		Stderr:  opts.Stderr,
		Timeout: opts.Timeout,
	}

	output.Debug("running package manager", "command", cmd.String(), "dir", dir)

	res, err := r.Runner.Run(ctx, cmd)
	if err != nil {
		return rerrors.PackageManager(fmt.Sprintf("failed to run %s", cmd),
			rerrors.WithManager(name), rerrors.WithCommand(cmd.String()), rerrors.WithPath(dir),
			rerrors.WithStep(step), rerrors.WithCause(err))
	}
	if !res.Success() {
		var cause error
		if msg := strings.TrimSpace(res.Stderr); msg != "" {
			cause = fmt.Errorf("%s", lastLines(msg, 5))
		}
		return rerrors.PackageManager(fmt.Sprintf("%s exited with status %d", cmd, res.ExitCode),
			rerrors.WithManager(name), rerrors.WithCommand(cmd.String()), rerrors.WithPath(dir),
			rerrors.WithStep(step), rerrors.WithExitCode(res.ExitCode), rerrors.WithCause(cause))
	}
	return nil
}

func lastLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
