package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/SibilSoren/react-vite-boilerplate/internal/config"
	rerrors "github.com/SibilSoren/react-vite-boilerplate/internal/errors"
)

const configHeader = `# react-vite-boilerplate configuration
# Values here are overridden by RVB_* environment variables and flags.

`

func newInitCmd(g *config.GlobalConfig) *cobra.Command {
	var force bool

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create a configuration file with default values",
		Long: `Create a configuration file with default values.

The file is created at ~/.react-vite-boilerplate/config.yaml by default.
Use --config or RVB_CONFIG to choose a different location.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, g, force)
		},
	}

	initCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config file")

	return initCmd
}

func runInit(cmd *cobra.Command, g *config.GlobalConfig, force bool) error {
	if g.ConfigPath == "" {
		return rerrors.NewExitError(fmt.Errorf("could not determine config file path: %w", g.LoadErr),
			rerrors.ExitGeneralError)
	}

	expandedPath, err := config.ExpandPath(g.ConfigPath)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	exists, err := config.ConfigFileExists(expandedPath)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}
	if exists && !force {
		return rerrors.NewExitError(
			fmt.Errorf("config file already exists at %s (use --force to overwrite)", expandedPath),
			rerrors.ExitGeneralError,
		)
	}

	if err := os.MkdirAll(filepath.Dir(expandedPath), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	data = append([]byte(configHeader), data...)

	if err := os.WriteFile(expandedPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Config file created: %s\n", expandedPath)
	return nil
}
