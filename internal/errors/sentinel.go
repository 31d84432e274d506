package errors

import "errors"

// Sentinel errors, one per error kind. A BoilerplateError matches the
// sentinel of its kind under errors.Is.
var (
	// ErrValidation indicates bad user input.
	ErrValidation = errors.New("validation error")

	// ErrNetwork indicates connectivity was unavailable.
	ErrNetwork = errors.New("network error")

	// ErrFilesystem indicates a permission or path problem.
	ErrFilesystem = errors.New("filesystem error")

	// ErrPackageManager indicates a package manager probe or install failure.
	ErrPackageManager = errors.New("package manager error")

	// ErrTemplate indicates a template copy or substitution failure.
	ErrTemplate = errors.New("template error")

	// ErrUnknown is the catch-all.
	ErrUnknown = errors.New("unknown error")
)
