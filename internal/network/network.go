// Package network checks that the package registry is reachable before
// dependencies are installed.
package network

import (
	"context"
	"fmt"
	"net"
	"time"

	rerrors "github.com/SibilSoren/react-vite-boilerplate/internal/errors"
)

// Defaults for the registry probe.
const (
	DefaultAddress = "registry.npmjs.org:443"
	DefaultTimeout = 5 * time.Second
)

// Checker probes connectivity.
type Checker interface {
	Check(ctx context.Context) error
}

// DialChecker opens and closes a TCP connection to Address.
type DialChecker struct {
	Address string
	Timeout time.Duration
}

// NewDialChecker returns a checker for the npm registry.
func NewDialChecker() *DialChecker {
	return &DialChecker{Address: DefaultAddress, Timeout: DefaultTimeout}
}

// Check implements Checker. Failures are Network errors.
func (d *DialChecker) Check(ctx context.Context) error {
	timeout := d.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	dialer := net.Dialer{Timeout: timeout}
	conn, err := dialer.DialContext(ctx, "tcp", d.Address)
	if err != nil {
		return rerrors.Network(fmt.Sprintf("cannot reach %s", d.Address), rerrors.WithCause(err))
	}
	_ = conn.Close()
	return nil
}

// CheckerFunc adapts a function to Checker.
type CheckerFunc func(ctx context.Context) error

// Check implements Checker.
func (f CheckerFunc) Check(ctx context.Context) error {
	return f(ctx)
}
