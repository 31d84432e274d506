package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// systemPaths are directories a project may never be created as.
var systemPaths = []string{
	"/bin", "/boot", "/dev", "/etc", "/lib", "/opt", "/proc",
	"/root", "/sbin", "/sys", "/usr", "/var",
}

var windowsSystemPaths = []string{
	`C:\Windows`, `C:\Program Files`, `C:\Program Files (x86)`,
}

// ProtectedPaths returns the absolute paths that ValidateTargetDirectory
// rejects on exact match: the filesystem root, the user's home directory,
// the working directory and the OS system directories.
func ProtectedPaths() []string {
	var paths []string

	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Clean(cwd))
		paths = append(paths, filepath.VolumeName(cwd)+string(filepath.Separator))
	} else {
		paths = append(paths, string(filepath.Separator))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Clean(home))
	}

	if runtime.GOOS == "windows" {
		paths = append(paths, windowsSystemPaths...)
	} else {
		paths = append(paths, systemPaths...)
	}
	return paths
}

func isProtected(abs string) bool {
	for _, p := range ProtectedPaths() {
		if runtime.GOOS == "windows" {
			if strings.EqualFold(abs, p) {
				return true
			}
			continue
		}
		if abs == p {
			return true
		}
	}
	return false
}

// hasTraversal reports whether path contains a ".." segment or a "~"
// home shorthand.
func hasTraversal(path string) bool {
	if strings.Contains(path, "~") {
		return true
	}
	for _, seg := range strings.FieldsFunc(path, func(r rune) bool {
		return r == '/' || r == '\\'
	}) {
		if seg == ".." {
			return true
		}
	}
	return false
}

// ValidateTargetDirectory checks that path can be used as the project
// directory. An existing non-empty directory is valid but produces a warning.
func ValidateTargetDirectory(path string) Result {
	if strings.TrimSpace(path) == "" {
		return fail("Target directory cannot be empty")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fail(fmt.Sprintf("Cannot resolve target directory %q: %v", path, err))
	}

	if isProtected(abs) {
		return fail(fmt.Sprintf("Refusing to use protected directory %q", abs))
	}

	if hasTraversal(path) {
		return fail(fmt.Sprintf("Target directory %q must not contain '..' or '~'", path))
	}

	parent := filepath.Dir(abs)
	if info, err := os.Stat(parent); err != nil || !info.IsDir() {
		return fail(fmt.Sprintf("Parent directory %q does not exist or is not writable", parent))
	}
	if !isWritable(parent) {
		return fail(fmt.Sprintf("Parent directory %q is not writable", parent))
	}

	info, err := os.Stat(abs)
	if os.IsNotExist(err) {
		return ok()
	}
	if err != nil {
		return fail(fmt.Sprintf("Cannot access target directory %q: %v", abs, err))
	}
	if !info.IsDir() {
		return fail(fmt.Sprintf("Target path %q exists and is not a directory", abs))
	}

	empty, err := IsEmptyDir(abs)
	if err != nil {
		return fail(fmt.Sprintf("Cannot read target directory %q: %v", abs, err))
	}
	if !empty {
		return ok(fmt.Sprintf("Directory %q is not empty", abs))
	}
	return ok()
}

// IsEmptyDir reports whether dir has no entries.
func IsEmptyDir(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, err
	}
	return len(entries) == 0, nil
}
