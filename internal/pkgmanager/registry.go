// Package pkgmanager knows the supported JavaScript package managers, probes
// which ones are installed and picks the one a project should use.
package pkgmanager

import "slices"

// Config is the static description of one package manager.
type Config struct {
	Name           string
	InstallCommand []string
	LockFile       string
	CheckCommand   []string
	// ExecCommand runs a package binary without installing it globally.
	ExecCommand []string
}

// Manager names.
const (
	NPM  = "npm"
	Yarn = "yarn"
	PNPM = "pnpm"
	Bun  = "bun"
)

// Fallback is returned when nothing is known to be available.
const Fallback = NPM

// registry is kept in registry order: npm, yarn, pnpm, bun.
var registry = []Config{
	{
		Name:           NPM,
		InstallCommand: []string{"npm", "install"},
		LockFile:       "package-lock.json",
		CheckCommand:   []string{"npm", "--version"},
		ExecCommand:    []string{"npx"},
	},
	{
		Name:           Yarn,
		InstallCommand: []string{"yarn", "install"},
		LockFile:       "yarn.lock",
		CheckCommand:   []string{"yarn", "--version"},
		ExecCommand:    []string{"yarn", "dlx"},
	},
	{
		Name:           PNPM,
		InstallCommand: []string{"pnpm", "install"},
		LockFile:       "pnpm-lock.yaml",
		CheckCommand:   []string{"pnpm", "--version"},
		ExecCommand:    []string{"pnpm", "dlx"},
	},
	{
		Name:           Bun,
		InstallCommand: []string{"bun", "install"},
		LockFile:       "bun.lockb",
		CheckCommand:   []string{"bun", "--version"},
		ExecCommand:    []string{"bunx"},
	},
}

// priority is the fallback order when no lockfile decides.
var priority = []string{PNPM, Yarn, Bun, NPM}

// Registry returns a copy of every known manager in registry order.
func Registry() []Config {
	out := make([]Config, len(registry))
	for i, c := range registry {
		out[i] = c.clone()
	}
	return out
}

// Names returns the manager names in registry order.
func Names() []string {
	names := make([]string, len(registry))
	for i, c := range registry {
		names[i] = c.Name
	}
	return names
}

// Lookup returns the Config for name.
func Lookup(name string) (Config, bool) {
	for _, c := range registry {
		if c.Name == name {
			return c.clone(), true
		}
	}
	return Config{}, false
}

// IsKnown reports whether name is a registered manager.
func IsKnown(name string) bool {
	_, ok := Lookup(name)
	return ok
}

func (c Config) clone() Config {
	c.InstallCommand = slices.Clone(c.InstallCommand)
	c.CheckCommand = slices.Clone(c.CheckCommand)
	c.ExecCommand = slices.Clone(c.ExecCommand)
	return c
}
