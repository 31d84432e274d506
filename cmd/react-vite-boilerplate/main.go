// Package main is the entry point for react-vite-boilerplate.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/SibilSoren/react-vite-boilerplate/internal/cmd"
	rerrors "github.com/SibilSoren/react-vite-boilerplate/internal/errors"
)

func main() {
	// Cancelling the context aborts a running install and triggers rollback.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		var exitErr *rerrors.ExitError
		if errors.As(err, &exitErr) {
			// Only print if the command layer hasn't already printed it
			if !exitErr.Printed {
				fmt.Fprintln(os.Stderr, "Error:", err)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(rerrors.ExitGeneralError)
	}
}
