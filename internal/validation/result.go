// Package validation checks project names and target directories before any
// filesystem mutation happens.
package validation

// Result is the outcome of a validation check.
// Valid == false always comes with a non-empty Error.
type Result struct {
	Valid    bool
	Error    string
	Warnings []string
}

func ok(warnings ...string) Result {
	return Result{Valid: true, Warnings: warnings}
}

func fail(msg string) Result {
	return Result{Valid: false, Error: msg}
}
