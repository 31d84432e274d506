// Package config provides CLI command implementations for the config command group.
package config

import (
	"github.com/spf13/cobra"

	"github.com/SibilSoren/react-vite-boilerplate/internal/config"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd(cfg *config.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long: `Manage the defaults used when creating projects.

A project literally named "config" can still be created with:
  react-vite-boilerplate -- config`,
	}

	c.AddCommand(newInitCmd(cfg))
	c.AddCommand(newVetCmd(cfg))

	return c
}
