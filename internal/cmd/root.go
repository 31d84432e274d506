// Package cmd provides CLI command implementations.
package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	configcmd "github.com/SibilSoren/react-vite-boilerplate/internal/cmd/config"
	"github.com/SibilSoren/react-vite-boilerplate/internal/config"
	"github.com/SibilSoren/react-vite-boilerplate/internal/output"
	"github.com/SibilSoren/react-vite-boilerplate/internal/scaffold"
	"github.com/SibilSoren/react-vite-boilerplate/internal/version"
)

// globalFlags are persistent flags shared by every command.
type globalFlags struct {
	config     string
	verbose    bool
	timestamps bool
}

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	return newRootCmd(scaffold.Deps{})
}

// newRootCmd builds the command tree. deps are handed to the scaffold
// Creator so tests can substitute the process runner, prompt and network.
func newRootCmd(deps scaffold.Deps) *cobra.Command {
	g := &config.GlobalConfig{}
	gf := &globalFlags{}
	cf := &createFlags{}
	info := version.Get()

	rootCmd := &cobra.Command{
		Use:   "react-vite-boilerplate <project-name>",
		Short: "Create a React + Vite + TypeScript project",
		Long: `Create a production-ready React project with Vite, TypeScript and
Tailwind CSS, install its dependencies and initialize a git repository.

Any step that fails after the filesystem has been touched is rolled back.`,
		Example: `  # Create my-app in ./my-app using the detected package manager
  react-vite-boilerplate my-app

  # Use pnpm and skip git
  react-vite-boilerplate my-app --pm pnpm --skip-git

  # Show what would be created without writing anything
  react-vite-boilerplate my-app --dry-run`,
		Version:       info.Short(),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			initializeGlobals(cmd, g, gf, cf)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, args, g, cf, deps)
		},
	}
	rootCmd.SetVersionTemplate(versionTemplate(info))

	rootCmd.PersistentFlags().StringVar(&gf.config, "config", "",
		"Path to config file (env: RVB_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&gf.verbose, "verbose", "v", false,
		"Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&gf.timestamps, "timestamps", true,
		"Show timestamps in log output")

	cf.AddTo(rootCmd)

	rootCmd.AddCommand(configcmd.NewConfigCmd(g))

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError(cmd, err, gf.verbose)
	})
	wrapArgs(rootCmd, &gf.verbose)

	return rootCmd
}

// initializeGlobals loads configuration, resolves settings and sets up
// logging. Failures are recorded on g rather than returned so commands that
// do not need configuration still run.
func initializeGlobals(cmd *cobra.Command, g *config.GlobalConfig, gf *globalFlags, cf *createFlags) {
	g.Verbose = gf.verbose

	var loadErr error
	pathResult, err := config.ResolveConfigPath(config.ResolveConfigPathOptions{
		FlagValue: gf.config,
	})
	if err != nil {
		loadErr = err
	} else {
		g.ConfigPath = pathResult.ConfigPath
		g.ConfigSource = pathResult.Source
		g.Config, loadErr = config.NewLoader().Load(pathResult.ConfigPath)
	}

	settings, err := config.Resolve(config.ResolveOptions{
		Config:         g.Config,
		PackageManager: cf.PackageManager,
		Template:       cf.Template,
		SkipInstall:    changedBool(cmd, "skip-install", cf.SkipInstall),
		SkipGit:        changedBool(cmd, "skip-git", cf.SkipGit),
		Timestamps:     changedBool(cmd, "timestamps", gf.timestamps),
	})
	if err != nil {
		loadErr = errors.Join(loadErr, err)
		settings = config.DefaultSettings()
	}
	g.Settings = settings
	g.LoadErr = loadErr

	output.SetupLogging(output.LogConfig{
		Verbose:    gf.verbose,
		Timestamps: output.BoolPtr(settings.Timestamps),
	})

	if loadErr != nil {
		output.Debug("config load error", "error", loadErr)
	}
	info := version.Get()
	output.Debug("initializing CLI",
		"version", info.Version,
		"release", info.IsRelease(),
		"config", g.ConfigPath,
		"config_source", g.ConfigSource,
	)
	config.LogResolvedValues(settings.Values)
}

// changedBool returns a pointer to v when the flag was set explicitly on
// cmd, and nil otherwise so lower-precedence sources apply.
func changedBool(cmd *cobra.Command, name string, v bool) *bool {
	if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
		return &v
	}
	return nil
}
