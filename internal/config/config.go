// Package config loads user defaults for project creation and resolves them
// against flags and environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/SibilSoren/react-vite-boilerplate/internal/pkgmanager"
	"github.com/SibilSoren/react-vite-boilerplate/internal/templates"
)

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// Config is the contents of the config file, merged with RVB_* variables.
// Unset fields are nil or empty so the resolver can tell them apart from
// explicit values.
type Config struct {
	// PackageManager is the preferred manager when --pm is not given.
	// Env: RVB_PACKAGE_MANAGER
	PackageManager string `mapstructure:"packageManager" yaml:"packageManager,omitempty"`

	// Template is the template used when --template is not given.
	// Env: RVB_TEMPLATE
	Template string `mapstructure:"template" yaml:"template,omitempty"`

	// Env: RVB_SKIP_INSTALL
	SkipInstall *bool `mapstructure:"skipInstall" yaml:"skipInstall,omitempty"`

	// Env: RVB_SKIP_GIT
	SkipGit *bool `mapstructure:"skipGit" yaml:"skipGit,omitempty"`

	// NetworkCheck probes the npm registry before installing.
	// Env: RVB_NETWORK_CHECK
	NetworkCheck *bool `mapstructure:"networkCheck" yaml:"networkCheck,omitempty"`

	// InstallTimeout bounds the dependency install, e.g. "10m".
	InstallTimeout time.Duration `mapstructure:"installTimeout" yaml:"installTimeout,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log,omitempty"`
}

// Built-in defaults.
const (
	DefaultInstallTimeout = 10 * time.Minute
	DefaultNetworkCheck   = true
)

// DefaultConfig returns a Config with all default values populated.
func DefaultConfig() *Config {
	f := false
	t := true
	return &Config{
		Template:       templates.DefaultName,
		SkipInstall:    &f,
		SkipGit:        &f,
		NetworkCheck:   &t,
		InstallTimeout: DefaultInstallTimeout,
		Log:            LogConfig{Timestamps: &t},
	}
}

// Validate checks values that came from the file or the environment.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if c.PackageManager != "" && !pkgmanager.IsKnown(c.PackageManager) {
		errs = append(errs, ValidationError{
			Field:   "packageManager",
			Message: fmt.Sprintf("unknown package manager %q", c.PackageManager),
		})
	}
	if c.Template != "" && !templates.IsValid(c.Template) {
		errs = append(errs, ValidationError{
			Field:   "template",
			Message: fmt.Sprintf("unknown template %q", c.Template),
		})
	}
	if c.InstallTimeout < 0 {
		errs = append(errs, ValidationError{
			Field:   "installTimeout",
			Message: "must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// MarshalYAML renders InstallTimeout as a duration string such as "10m0s",
// which the loader decodes back into a time.Duration.
func (c Config) MarshalYAML() (interface{}, error) {
	type fileConfig struct {
		PackageManager string    `yaml:"packageManager,omitempty"`
		Template       string    `yaml:"template,omitempty"`
		SkipInstall    *bool     `yaml:"skipInstall,omitempty"`
		SkipGit        *bool     `yaml:"skipGit,omitempty"`
		NetworkCheck   *bool     `yaml:"networkCheck,omitempty"`
		InstallTimeout string    `yaml:"installTimeout,omitempty"`
		Log            LogConfig `yaml:"log,omitempty"`
	}

	fc := fileConfig{
		PackageManager: c.PackageManager,
		Template:       c.Template,
		SkipInstall:    c.SkipInstall,
		SkipGit:        c.SkipGit,
		NetworkCheck:   c.NetworkCheck,
		Log:            c.Log,
	}
	if c.InstallTimeout > 0 {
		fc.InstallTimeout = c.InstallTimeout.String()
	}
	return fc, nil
}
