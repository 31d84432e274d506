package errors

import "strconv"

// Exit codes.
const (
	// ExitSuccess indicates the command completed successfully, including
	// a declined overwrite.
	ExitSuccess = 0

	// ExitGeneralError indicates any unrecovered error.
	ExitGeneralError = 1
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	// Err is the underlying error.
	Err error

	// Code is the process exit code.
	Code int

	// Printed is true when the command layer already rendered Err.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return "exit status " + strconv.Itoa(e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates an ExitError.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}
