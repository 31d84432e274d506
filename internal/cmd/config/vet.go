package config

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SibilSoren/react-vite-boilerplate/internal/config"
	rerrors "github.com/SibilSoren/react-vite-boilerplate/internal/errors"
	"github.com/SibilSoren/react-vite-boilerplate/internal/output"
)

func newVetCmd(g *config.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the configuration file",
		Long: `Validate the configuration file and show the effective settings.

Each setting is listed with the source it was resolved from:
flag, env, config or default.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVet(cmd, g)
		},
	}
}

func runVet(cmd *cobra.Command, g *config.GlobalConfig) error {
	if g.ConfigPath == "" {
		return rerrors.NewExitError(fmt.Errorf("could not determine config file path: %w", g.LoadErr),
			rerrors.ExitGeneralError)
	}

	exists, err := config.ConfigFileExists(g.ConfigPath)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}
	if !exists {
		return rerrors.NewExitError(
			fmt.Errorf("config file not found: %s (run 'react-vite-boilerplate config init')", g.ConfigPath),
			rerrors.ExitGeneralError,
		)
	}

	if g.LoadErr != nil {
		w := cmd.ErrOrStderr()
		fmt.Fprintln(w, "Error: config validation failed")
		fmt.Fprintf(w, "  File: %s\n\n", g.ConfigPath)

		var validationErrs config.ValidationErrors
		if errors.As(g.LoadErr, &validationErrs) {
			for _, e := range validationErrs {
				fmt.Fprintf(w, "  %s: %s\n", e.Field, e.Message)
			}
		} else {
			fmt.Fprintf(w, "  %v\n", g.LoadErr)
		}
		return &rerrors.ExitError{Err: g.LoadErr, Code: rerrors.ExitGeneralError, Printed: true}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, output.FormatCheckmark("Config file is valid: "+g.ConfigPath))
	fmt.Fprintln(out)
	for _, v := range g.Settings.Values {
		fmt.Fprintf(out, "  %-16s %-12v %s\n", v.Key, v.Value, output.StyleDim.Render(string(v.Source)))
	}
	return nil
}
