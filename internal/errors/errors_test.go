//nolint:revive // Package name matches the package it tests
package errors

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	sentinels := []error{ErrValidation, ErrNetwork, ErrFilesystem, ErrPackageManager, ErrTemplate, ErrUnknown}
	for i := range sentinels {
		for j := range sentinels {
			if i != j {
				assert.NotEqual(t, sentinels[i], sentinels[j])
			}
		}
	}
}

func TestNew_DefaultsToUnknown(t *testing.T) {
	var k Kind
	assert.Equal(t, KindUnknown, k)
	assert.Equal(t, "Unknown", k.String())

	err := New(k, "something odd")
	assert.Equal(t, KindUnknown, err.Kind())
	assert.True(t, errors.Is(err, ErrUnknown))
}

func TestNew_CarriesContext(t *testing.T) {
	before := time.Now()
	cause := errors.New("exit status 1")
	err := PackageManager("install failed",
		WithManager("pnpm"),
		WithPath("/tmp/app"),
		WithExitCode(1),
		WithCause(cause),
	)

	assert.Equal(t, "install failed", err.Message())
	assert.Equal(t, KindPackageManager, err.Kind())
	assert.Equal(t, "pnpm", err.Context().Manager)
	assert.Equal(t, "/tmp/app", err.Context().Path)
	assert.Equal(t, 1, err.Context().ExitCode)
	assert.False(t, err.Timestamp().Before(before))
	assert.Equal(t, "install failed: exit status 1", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrPackageManager)
	assert.NotErrorIs(t, err, ErrValidation)
}

func TestContext_IsCopiedByValue(t *testing.T) {
	err := Validation("bad", WithProjectName("app"))
	ctx := err.Context()
	ctx.ProjectName = "mutated"
	assert.Equal(t, "app", err.Context().ProjectName)
}

func TestContext_Pairs(t *testing.T) {
	assert.Empty(t, Context{}.Pairs())
	assert.True(t, Context{}.IsZero())

	c := Context{Manager: "npm", Step: "install", ExitCode: 2}
	assert.Equal(t, []interface{}{"manager", "npm", "step", "install", "exit_code", "2"}, c.Pairs())
	assert.False(t, c.IsZero())
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"boilerplate error", Network("offline"), KindNetwork},
		{"wrapped boilerplate error", fmt.Errorf("creating: %w", Filesystem("denied")), KindFilesystem},
		{"wrapped sentinel", fmt.Errorf("copy: %w", ErrTemplate), KindTemplate},
		{"plain error", errors.New("plain"), KindUnknown},
		{"nil", nil, KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Validation", KindValidation.String())
	assert.Equal(t, "Network", KindNetwork.String())
	assert.Equal(t, "Filesystem", KindFilesystem.String())
	assert.Equal(t, "PackageManager", KindPackageManager.String())
	assert.Equal(t, "Template", KindTemplate.String())
	assert.Equal(t, "Unknown", Kind(99).String())
}

func TestAs(t *testing.T) {
	be, ok := As(fmt.Errorf("outer: %w", Template("missing file")))
	require.True(t, ok)
	assert.Equal(t, "missing file", be.Message())

	_, ok = As(errors.New("plain"))
	assert.False(t, ok)
}

func TestExitError(t *testing.T) {
	inner := Validation("bad name")
	exitErr := NewExitError(inner, ExitGeneralError)

	assert.Equal(t, "bad name", exitErr.Error())
	assert.Equal(t, 1, exitErr.Code)
	assert.ErrorIs(t, exitErr, ErrValidation)

	var target *ExitError
	require.True(t, errors.As(fmt.Errorf("wrapped: %w", exitErr), &target))
	assert.Equal(t, ExitGeneralError, target.Code)

	assert.Equal(t, "exit status 1", (&ExitError{Code: 1}).Error())
}
