package scaffold

import (
	"fmt"
	"strings"
	"time"

	rerrors "github.com/SibilSoren/react-vite-boilerplate/internal/errors"
	"github.com/SibilSoren/react-vite-boilerplate/internal/pkgmanager"
	"github.com/SibilSoren/react-vite-boilerplate/internal/templates"
)

// DefaultInstallTimeout bounds the dependency install.
const DefaultInstallTimeout = 10 * time.Minute

// Options enumerates every input to Create.
type Options struct {
	// ProjectName is required.
	ProjectName string

	// Directory is the target directory. Default: ProjectName without its
	// "@scope/" prefix, relative to the working directory.
	Directory string

	// Yes skips the overwrite confirmation.
	Yes bool

	// PackageManager forces a manager. Empty means auto-detect.
	PackageManager string

	SkipInstall bool
	SkipGit     bool
	Verbose     bool

	// DryRun reports what would happen without touching the filesystem.
	DryRun bool

	// Template defaults to templates.DefaultName.
	Template string

	// NetworkCheck probes the registry before installing.
	NetworkCheck bool

	// InstallTimeout defaults to DefaultInstallTimeout.
	InstallTimeout time.Duration
}

// DefaultOptions returns Options for projectName with every default applied.
func DefaultOptions(projectName string) Options {
	return Options{
		ProjectName:    projectName,
		Directory:      defaultDirectory(projectName),
		Template:       templates.DefaultName,
		NetworkCheck:   true,
		InstallTimeout: DefaultInstallTimeout,
	}
}

// defaultDirectory maps a project name to its directory name. A scoped
// name "@scope/app" is created in "app".
func defaultDirectory(name string) string {
	if strings.HasPrefix(name, "@") {
		if i := strings.LastIndex(name, "/"); i >= 0 {
			return name[i+1:]
		}
	}
	return name
}

// withDefaults fills zero-valued fields that have a non-zero default.
// NetworkCheck is left alone because false is a meaningful choice.
func (o Options) withDefaults() Options {
	o.ProjectName = strings.TrimSpace(o.ProjectName)
	if o.Directory == "" {
		o.Directory = defaultDirectory(o.ProjectName)
	}
	if o.Template == "" {
		o.Template = templates.DefaultName
	}
	if o.InstallTimeout == 0 {
		o.InstallTimeout = DefaultInstallTimeout
	}
	return o
}

// Validate checks option combinations. Project name and directory rules are
// applied by Create through the validation package.
func (o Options) Validate() error {
	if o.ProjectName == "" {
		return rerrors.Validation("Project name is required")
	}
	if o.PackageManager != "" && !pkgmanager.IsKnown(o.PackageManager) {
		return rerrors.Validation(
			fmt.Sprintf("Unknown package manager %q; expected one of: %s",
				o.PackageManager, strings.Join(pkgmanager.Names(), ", ")),
			rerrors.WithManager(o.PackageManager))
	}
	if o.InstallTimeout < 0 {
		return rerrors.Validation("Install timeout must not be negative")
	}
	return nil
}
