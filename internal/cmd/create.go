package cmd

import (
	"github.com/spf13/cobra"

	"github.com/SibilSoren/react-vite-boilerplate/internal/config"
	rerrors "github.com/SibilSoren/react-vite-boilerplate/internal/errors"
	"github.com/SibilSoren/react-vite-boilerplate/internal/output"
	"github.com/SibilSoren/react-vite-boilerplate/internal/prompt"
	"github.com/SibilSoren/react-vite-boilerplate/internal/scaffold"
)

func runCreate(cmd *cobra.Command, args []string, g *config.GlobalConfig, f *createFlags, deps scaffold.Deps) error {
	if len(args) == 0 {
		return printError(cmd, rerrors.Validation("Project name is required. Usage: react-vite-boilerplate <project-name>"), g.Verbose)
	}

	if g.LoadErr != nil {
		return printError(cmd, rerrors.Validation("Invalid configuration",
			rerrors.WithPath(g.ConfigPath), rerrors.WithCause(g.LoadErr)), g.Verbose)
	}

	s := g.Settings
	opts := scaffold.Options{
		ProjectName:    args[0],
		Directory:      f.Dir,
		Yes:            f.Yes,
		PackageManager: s.PackageManager,
		SkipInstall:    s.SkipInstall,
		SkipGit:        s.SkipGit,
		Verbose:        g.Verbose,
		DryRun:         f.DryRun,
		Template:       s.Template,
		NetworkCheck:   s.NetworkCheck,
		InstallTimeout: s.InstallTimeout,
	}

	if deps.Out == nil {
		deps.Out = cmd.OutOrStdout()
	}
	if deps.ErrOut == nil {
		deps.ErrOut = cmd.ErrOrStderr()
	}
	if deps.Confirmer == nil && !output.IsInteractive() {
		deps.Confirmer = prompt.NewLineConfirmer(cmd.InOrStdin(), cmd.ErrOrStderr())
	}

	output.Debug("creating project",
		"name", opts.ProjectName,
		"dir", opts.Directory,
		"template", opts.Template,
		"pm", opts.PackageManager,
		"dry_run", opts.DryRun,
	)

	if _, err := scaffold.NewCreator(deps).Create(cmd.Context(), opts); err != nil {
		return printError(cmd, err, g.Verbose)
	}
	return nil
}
