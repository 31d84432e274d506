package scaffold

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	rerrors "github.com/SibilSoren/react-vite-boilerplate/internal/errors"
	"github.com/SibilSoren/react-vite-boilerplate/internal/output"
	"github.com/SibilSoren/react-vite-boilerplate/internal/pkgmanager"
	"github.com/SibilSoren/react-vite-boilerplate/internal/templates"
)

// backupPath is a hidden sibling of dir so the rename stays on one
// filesystem. A numeric suffix is added while the name is taken.
func (c *Creator) backupPath(dir string) string {
	base := filepath.Join(filepath.Dir(dir),
		fmt.Sprintf(".%s.backup-%d", filepath.Base(dir), c.now().Unix()))
	path := base
	for i := 1; ; i++ {
		if _, err := os.Lstat(path); os.IsNotExist(err) {
			return path
		}
		path = fmt.Sprintf("%s-%d", base, i)
	}
}

// moveAside renames an existing directory out of the way. Rollback puts it
// back; success removes it.
func (c *Creator) moveAside(r *run) error {
	backup := c.backupPath(r.abs)
	c.logger.Debug("moving existing directory aside", "from", r.abs, "to", backup)

	if err := os.Rename(r.abs, backup); err != nil {
		return rerrors.Filesystem("Cannot move existing directory aside",
			rerrors.WithPath(r.abs), rerrors.WithStep("backup"), rerrors.WithCause(err))
	}

	r.backup = backup
	r.result.Overwrote = true
	r.rb.AddAction(func() error {
		if err := os.RemoveAll(r.abs); err != nil {
			return err
		}
		return os.Rename(backup, r.abs)
	}, fmt.Sprintf("restore %s", r.abs))
	return nil
}

func (c *Creator) dropBackup(r *run) {
	if r.backup == "" {
		return
	}
	if err := os.RemoveAll(r.backup); err != nil {
		r.warn(c, fmt.Sprintf("Could not remove backup %s", r.backup), "error", err)
	}
}

func (c *Creator) createDirectory(r *run) error {
	_, statErr := os.Stat(r.abs)
	created := os.IsNotExist(statErr)

	if err := os.MkdirAll(r.abs, 0o755); err != nil {
		return rerrors.Filesystem("Cannot create project directory",
			rerrors.WithPath(r.abs), rerrors.WithStep("mkdir"), rerrors.WithCause(err))
	}

	if created {
		r.rb.AddAction(func() error {
			return os.RemoveAll(r.abs)
		}, fmt.Sprintf("remove %s", r.abs))
	} else {
		// An empty directory we did not create is emptied, not removed.
		r.rb.AddAction(func() error {
			return emptyDir(r.abs)
		}, fmt.Sprintf("clean %s", r.abs))
	}
	return nil
}

func emptyDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if err := os.RemoveAll(filepath.Join(dir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}

func (c *Creator) render(r *run) error {
	c.logger.Debug("rendering template", "template", r.opts.Template, "dir", r.abs)

	files, err := templates.NewRenderer(templates.NewData(r.opts.ProjectName)).Render(r.opts.Template, r.abs)
	if err != nil {
		if rerrors.KindOf(err) == rerrors.KindTemplate {
			return err
		}
		return rerrors.Template("Failed to copy template files",
			rerrors.WithPath(r.abs), rerrors.WithStep("render"), rerrors.WithCause(err))
	}
	r.result.Files = files
	return nil
}

// selectManager resolves the manager to install with from the probed
// available list. An explicit choice must be installed.
func (c *Creator) selectManager(r *run, available []string) (string, error) {
	if pm := r.opts.PackageManager; pm != "" {
		if !slices.Contains(available, pm) {
			return "", rerrors.PackageManager(fmt.Sprintf("%s is not installed", pm),
				rerrors.WithManager(pm), rerrors.WithStep("detect"))
		}
		return pm, nil
	}

	if len(available) == 0 {
		return "", rerrors.PackageManager(
			fmt.Sprintf("No package manager found; install one of: %s", strings.Join(pkgmanager.Names(), ", ")),
			rerrors.WithStep("detect"))
	}
	return pkgmanager.GetPreferred(r.abs, available), nil
}

// hintManager picks a manager name for the next-steps hint without probing.
func (c *Creator) hintManager(r *run) string {
	if r.opts.PackageManager != "" {
		return r.opts.PackageManager
	}
	return pkgmanager.Fallback
}

func (c *Creator) install(ctx context.Context, r *run) error {
	available := c.resolver.DetectAvailable(ctx)
	pm, err := c.selectManager(r, available)
	if err != nil {
		return err
	}
	r.result.PackageManager = pm

	if r.opts.Verbose {
		if v, err := c.resolver.Version(ctx, pm); err == nil {
			c.logger.Debug("using package manager", "manager", pm, "version", v.String())
		} else {
			c.logger.Debug("using package manager", "manager", pm, "version_error", err)
		}
	}

	if r.opts.NetworkCheck {
		if err := c.network.Check(ctx); err != nil {
			if rerrors.KindOf(err) == rerrors.KindNetwork {
				return err
			}
			return rerrors.Network("Network check failed", rerrors.WithCause(err))
		}
	}

	c.logger.Info("Installing dependencies", "manager", pm)

	installOpts := c.installOptions(r)
	err = output.RunWithSpinner(ctx, func(ctx context.Context) error {
		return c.resolver.Install(ctx, pm, r.abs, installOpts)
	},
		output.WithTitle(fmt.Sprintf("Installing dependencies with %s...", pm)),
		output.WithSpinnerEnabled(!r.opts.Verbose && output.IsTTY()),
	)
	if err != nil {
		return err
	}

	r.result.Installed = true
	return nil
}

func (c *Creator) installOptions(r *run) pkgmanager.InstallOptions {
	return pkgmanager.InstallOptions{
		Stream:  r.opts.Verbose,
		Stdout:  c.errOut,
		Stderr:  c.errOut,
		Timeout: r.opts.InstallTimeout,
	}
}

// postInstall runs the template's setup steps. Critical failures abort;
// the rest become warnings.
func (c *Creator) postInstall(ctx context.Context, r *run, tmpl templates.Template) error {
	pm := r.result.PackageManager
	for _, step := range tmpl.PostInstall {
		c.logger.Info("Running setup step", "step", step.Name)

		opts := c.installOptions(r)
		err := output.RunWithSpinner(ctx, func(ctx context.Context) error {
			return c.resolver.Exec(ctx, pm, r.abs, step.Command, opts)
		},
			output.WithTitle(fmt.Sprintf("Running %s...", step.Name)),
			output.WithSpinnerEnabled(!r.opts.Verbose && output.IsTTY()),
		)
		if err == nil {
			continue
		}

		if step.Critical {
			return rerrors.Template(fmt.Sprintf("Setup step %q failed", step.Name),
				rerrors.WithManager(pm), rerrors.WithStep(step.Name), rerrors.WithCause(err))
		}
		r.warn(c, fmt.Sprintf("Setup step %q failed; run it manually later", step.Name), "error", err)
	}
	return nil
}

// initGit is best effort: failures are warnings.
func (c *Creator) initGit(ctx context.Context, r *run) {
	if !c.git.Available(ctx) {
		r.warn(c, "git not found; skipping repository initialization")
		return
	}
	if err := c.git.Init(ctx, r.abs); err != nil {
		r.warn(c, "Could not initialize git repository", "error", err)
		return
	}
	r.result.GitInitialized = true
}
