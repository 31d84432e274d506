package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// MaxNameLength is the longest accepted project name.
const MaxNameLength = 214

var (
	unscopedNameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_.-]*$`)
	scopedNameRegex   = regexp.MustCompile(`^@[a-z0-9\-._~]+/[a-z0-9\-._~]+$`)
)

// forbiddenChars may never appear in a project name.
const forbiddenChars = "~)('!*"

// reservedNames is compared in lower case.
var reservedNames = map[string]struct{}{
	// filesystem
	".":  {},
	"..": {},
	// windows devices
	"con": {}, "prn": {}, "aux": {}, "nul": {},
	"com1": {}, "com2": {}, "com3": {}, "com4": {}, "com5": {},
	"com6": {}, "com7": {}, "com8": {}, "com9": {},
	"lpt1": {}, "lpt2": {}, "lpt3": {}, "lpt4": {}, "lpt5": {},
	"lpt6": {}, "lpt7": {}, "lpt8": {}, "lpt9": {},
	// ecosystem
	"node_modules": {},
	"favicon.ico":  {},
	"npm":          {},
	"node":         {},
	"package":      {},
	"package.json": {},
	"react":        {},
	"vite":         {},
	"test":         {},
	"src":          {},
	"public":       {},
	"dist":         {},
	"build":        {},
}

// IsReservedName reports whether name is reserved, ignoring case.
func IsReservedName(name string) bool {
	_, found := reservedNames[strings.ToLower(name)]
	return found
}

// ValidateProjectName checks name against the package naming rules.
// It has no side effects.
func ValidateProjectName(name string) Result {
	if strings.TrimSpace(name) == "" {
		return fail("Project name cannot be empty")
	}

	if len(name) > MaxNameLength {
		return fail(fmt.Sprintf("Project name must be less than %d characters", MaxNameLength))
	}

	if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
		return fail("Project name cannot start with a dot or underscore")
	}

	if strings.ContainsAny(name, forbiddenChars) {
		return fail(`Project name cannot contain special characters: ~ ) ( ' ! *`)
	}

	if strings.HasPrefix(name, "@") {
		if !scopedNameRegex.MatchString(name) {
			return fail("Scoped project name must be in the format @scope/name using lowercase letters, digits, hyphens, dots, tildes and underscores")
		}
		return ok()
	}

	if !unscopedNameRegex.MatchString(name) {
		return fail("Project name can only contain letters, digits, hyphens, underscores and dots, and must start with a letter or digit")
	}

	if IsReservedName(name) {
		return fail(fmt.Sprintf("%q is a reserved name and cannot be used", name))
	}

	return ok()
}
