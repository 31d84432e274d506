package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	rerrors "github.com/SibilSoren/react-vite-boilerplate/internal/errors"
)

// printError renders err on the command's error stream and returns an
// ExitError marked as printed so main does not print it again.
func printError(cmd *cobra.Command, err error, verbose bool) error {
	w := cmd.ErrOrStderr()
	fmt.Fprint(w, rerrors.FormatErrorMessage(err))
	if verbose {
		fmt.Fprint(w, rerrors.FormatVerboseDetails(err))
	}
	return &rerrors.ExitError{Err: err, Code: rerrors.ExitGeneralError, Printed: true}
}

// usageError reports a cobra argument or flag error as a validation error.
func usageError(cmd *cobra.Command, err error, verbose bool) error {
	return printError(cmd, rerrors.Validation(
		fmt.Sprintf("Invalid usage: %v. Usage: %s", err, cmd.UseLine()),
		rerrors.WithCause(err)), verbose)
}

// wrapArgs routes positional argument errors of c and its subcommands
// through usageError. Flags are parsed before Args run, so verbose is set.
func wrapArgs(c *cobra.Command, verbose *bool) {
	if pos := c.Args; pos != nil {
		c.Args = func(cmd *cobra.Command, args []string) error {
			if err := pos(cmd, args); err != nil {
				return usageError(cmd, err, *verbose)
			}
			return nil
		}
	}
	for _, sub := range c.Commands() {
		wrapArgs(sub, verbose)
	}
}
