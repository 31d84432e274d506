// Package version provides build information for react-vite-boilerplate.
package version

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Build-time variables set via ldflags.
var (
	// Version is the CLI version (set via ldflags).
	Version = "v0.0.0-dev"

	// GitCommit is the git commit hash.
	GitCommit = "unknown"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)

// Info contains version information.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`
}

// Get returns the current version information.
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
	}
}

// Short returns the bare version without the leading "v", as printed by
// --version.
func (i Info) Short() string {
	return strings.TrimPrefix(i.Version, "v")
}

// Semver parses Version. Development builds parse as prereleases.
func (i Info) Semver() (*semver.Version, error) {
	v, err := semver.NewVersion(i.Version)
	if err != nil {
		return nil, fmt.Errorf("parsing version %q: %w", i.Version, err)
	}
	return v, nil
}

// IsRelease reports whether this is a tagged release build.
func (i Info) IsRelease() bool {
	v, err := i.Semver()
	return err == nil && v.Prerelease() == "" && i.GitCommit != "unknown"
}

// String returns a human-readable version string.
func (i Info) String() string {
	return fmt.Sprintf("react-vite-boilerplate:\n  Version:  %s\n  Build ID: %s/%s\n  Go:       %s",
		i.Version, i.BuildDate, i.GitCommit, i.GoVersion)
}
