// Package scaffold creates a project: it validates input, renders the
// template, installs dependencies, initializes git and rolls everything back
// when a step fails.
package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	rerrors "github.com/SibilSoren/react-vite-boilerplate/internal/errors"
	"github.com/SibilSoren/react-vite-boilerplate/internal/git"
	"github.com/SibilSoren/react-vite-boilerplate/internal/network"
	"github.com/SibilSoren/react-vite-boilerplate/internal/output"
	"github.com/SibilSoren/react-vite-boilerplate/internal/pkgmanager"
	"github.com/SibilSoren/react-vite-boilerplate/internal/process"
	"github.com/SibilSoren/react-vite-boilerplate/internal/prompt"
	"github.com/SibilSoren/react-vite-boilerplate/internal/rollback"
	"github.com/SibilSoren/react-vite-boilerplate/internal/templates"
	"github.com/SibilSoren/react-vite-boilerplate/internal/validation"
)

// Result describes a finished Create call.
type Result struct {
	ProjectName    string
	Directory      string
	Template       string
	PackageManager string
	Files          []string
	Warnings       []string

	// Declined is set when the operator refused to overwrite the directory.
	Declined bool
	DryRun   bool

	// Overwrote is set when an existing directory was replaced.
	Overwrote      bool
	Installed      bool
	GitInitialized bool
}

// Deps are the collaborators of a Creator. Nil fields get production
// implementations from NewCreator.
type Deps struct {
	Runner    process.Runner
	Resolver  *pkgmanager.Resolver
	Confirmer prompt.Confirmer
	Network   network.Checker
	Git       *git.Initializer
	Logger    *log.Logger

	// Out receives the dry-run report and the success summary.
	Out io.Writer
	// ErrOut receives streamed install output in verbose mode.
	ErrOut io.Writer

	Now func() time.Time
}

// Creator runs project creation.
type Creator struct {
	runner    process.Runner
	resolver  *pkgmanager.Resolver
	confirmer prompt.Confirmer
	network   network.Checker
	git       *git.Initializer
	logger    *log.Logger
	out       io.Writer
	errOut    io.Writer
	now       func() time.Time
}

// NewCreator builds a Creator from d.
func NewCreator(d Deps) *Creator {
	c := &Creator{
		runner:    d.Runner,
		resolver:  d.Resolver,
		confirmer: d.Confirmer,
		network:   d.Network,
		git:       d.Git,
		logger:    d.Logger,
		out:       d.Out,
		errOut:    d.ErrOut,
		now:       d.Now,
	}
	if c.runner == nil {
		c.runner = process.NewExecRunner()
	}
	if c.resolver == nil {
		c.resolver = pkgmanager.NewResolver(c.runner)
	}
	if c.confirmer == nil {
		c.confirmer = prompt.New()
	}
	if c.network == nil {
		c.network = network.NewDialChecker()
	}
	if c.git == nil {
		c.git = git.NewInitializer(c.runner)
	}
	if c.logger == nil {
		c.logger = output.Logger()
	}
	if c.out == nil {
		c.out = os.Stdout
	}
	if c.errOut == nil {
		c.errOut = os.Stderr
	}
	if c.now == nil {
		c.now = time.Now
	}
	return c
}

// run is the state of one Create call.
type run struct {
	opts   Options
	abs    string
	rb     *rollback.Manager
	result *Result
	backup string
}

func (r *run) warn(c *Creator, msg string, keyvals ...interface{}) {
	c.logger.Warn(msg, keyvals...)
	r.result.Warnings = append(r.result.Warnings, msg)
}

// Create validates opts and creates the project. Any failure after the
// filesystem has been touched rolls back every change before returning.
// Declining the overwrite prompt returns a Result with Declined set and a
// nil error.
func (c *Creator) Create(ctx context.Context, opts Options) (result *Result, err error) {
	opts = opts.withDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	r := &run{
		opts: opts,
		rb:   rollback.New(c.logger),
		result: &Result{
			ProjectName: opts.ProjectName,
			Template:    opts.Template,
		},
	}

	defer func() {
		if err == nil {
			return
		}
		report := r.rb.Execute()
		for _, f := range report.Failures {
			fmt.Fprintln(c.errOut, output.FormatCross(fmt.Sprintf("Could not %s: %v", f.Description, f.Err)))
		}
	}()

	if err := c.validate(r); err != nil {
		return nil, err
	}

	tmpl, err := templates.Get(opts.Template)
	if err != nil {
		return nil, rerrors.Template(fmt.Sprintf("Unknown template %q", opts.Template), rerrors.WithCause(err))
	}

	existing, err := nonEmptyDir(r.abs)
	if err != nil {
		return nil, rerrors.Filesystem("Cannot inspect target directory",
			rerrors.WithPath(r.abs), rerrors.WithCause(err))
	}

	if opts.DryRun {
		r.rb.MarkCompleted()
		return c.dryRun(ctx, r, existing)
	}

	if existing && !opts.Yes {
		ok, err := c.confirmer.Confirm(ctx, fmt.Sprintf("Directory %s already exists and is not empty. Overwrite it?", r.abs))
		if err != nil {
			msg := "Overwrite confirmation failed"
			if errors.Is(err, prompt.ErrNoAnswer) {
				msg = "No answer to the overwrite prompt; re-run with --yes to overwrite without asking"
			}
			return nil, rerrors.Validation(msg, rerrors.WithPath(r.abs), rerrors.WithCause(err))
		}
		if !ok {
			r.rb.MarkCompleted()
			c.logger.Info("Operation cancelled; nothing was changed")
			r.result.Declined = true
			return r.result, nil
		}
	}

	if existing {
		if err := c.moveAside(r); err != nil {
			return nil, err
		}
	}

	if err := c.createDirectory(r); err != nil {
		return nil, err
	}

	if err := c.render(r); err != nil {
		return nil, err
	}

	if opts.SkipInstall {
		r.result.PackageManager = c.hintManager(r)
	} else {
		if err := c.install(ctx, r); err != nil {
			return nil, err
		}
		if err := c.postInstall(ctx, r, tmpl); err != nil {
			return nil, err
		}
	}

	if !opts.SkipGit {
		c.initGit(ctx, r)
	}

	r.rb.MarkCompleted()
	c.dropBackup(r)
	c.printSummary(r)

	return r.result, nil
}

func (c *Creator) validate(r *run) error {
	name := validation.ValidateProjectName(r.opts.ProjectName)
	if !name.Valid {
		return rerrors.Validation(name.Error, rerrors.WithProjectName(r.opts.ProjectName))
	}
	for _, w := range name.Warnings {
		r.warn(c, w)
	}

	dir := validation.ValidateTargetDirectory(r.opts.Directory)
	if !dir.Valid {
		return rerrors.Filesystem(dir.Error, rerrors.WithPath(r.opts.Directory))
	}
	for _, w := range dir.Warnings {
		r.warn(c, w)
	}

	abs, err := filepath.Abs(r.opts.Directory)
	if err != nil {
		return rerrors.Filesystem("Cannot resolve target directory",
			rerrors.WithPath(r.opts.Directory), rerrors.WithCause(err))
	}
	r.abs = abs
	r.result.Directory = abs
	return nil
}

// nonEmptyDir reports whether dir exists and has entries.
func nonEmptyDir(dir string) (bool, error) {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if !info.IsDir() {
		return false, fmt.Errorf("%s is not a directory", dir)
	}
	empty, err := validation.IsEmptyDir(dir)
	if err != nil {
		return false, err
	}
	return !empty, nil
}
