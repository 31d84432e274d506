// Package e2e provides end-to-end tests for the react-vite-boilerplate binary.
package e2e

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var binary string

func TestMain(m *testing.M) {
	// Build the binary once for all tests
	tmpDir, err := os.MkdirTemp("", "rvb-e2e-*")
	if err != nil {
		panic("failed to create temp dir: " + err.Error())
	}

	binary = filepath.Join(tmpDir, "react-vite-boilerplate")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	cmd := exec.CommandContext(ctx, "go", "build", "-o", binary, "../../cmd/react-vite-boilerplate")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		cancel()
		os.RemoveAll(tmpDir)
		panic("failed to build binary: " + err.Error())
	}
	cancel()

	code := m.Run()
	os.RemoveAll(tmpDir)
	os.Exit(code)
}

// run executes the binary in workDir with stdin and an isolated HOME.
func run(t *testing.T, workDir, stdin string, args ...string) (stdout, stderr string, exitCode int) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Dir = workDir
	cmd.Env = append(os.Environ(), "HOME="+t.TempDir(), "RVB_CONFIG=")
	cmd.Stdin = strings.NewReader(stdin)

	var out, errOut strings.Builder
	cmd.Stdout = &out
	cmd.Stderr = &errOut

	err := cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		exitCode = exitErr.ExitCode()
	default:
		t.Fatalf("running binary: %v", err)
	}
	return out.String(), errOut.String(), exitCode
}

func TestE2E_DryRunCreatesNothing(t *testing.T) {
	workDir := t.TempDir()

	stdout, stderr, code := run(t, workDir, "", "my-app", "--dry-run", "--skip-install")
	require.Zero(t, code, "stderr: %s", stderr)

	assert.Contains(t, stdout, "my-app")
	assert.Contains(t, stdout, "package.json")
	assert.NoDirExists(t, filepath.Join(workDir, "my-app"))
}

func TestE2E_DeclineOverwriteLeavesDirectory(t *testing.T) {
	workDir := t.TempDir()
	target := filepath.Join(workDir, "my-app")
	require.NoError(t, os.Mkdir(target, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "keep.txt"), []byte("keep"), 0o644))

	_, stderr, code := run(t, workDir, "n\n", "my-app", "--skip-install", "--skip-git")
	require.Zero(t, code, "stderr: %s", stderr)

	data, err := os.ReadFile(filepath.Join(target, "keep.txt"))
	require.NoError(t, err)
	assert.Equal(t, "keep", string(data))
	assert.NoFileExists(t, filepath.Join(target, "package.json"))
}

func TestE2E_CreateWithoutInstall(t *testing.T) {
	workDir := t.TempDir()

	stdout, stderr, code := run(t, workDir, "", "my-app", "--skip-install", "--skip-git", "--template", "minimal")
	require.Zero(t, code, "stderr: %s", stderr)

	assert.FileExists(t, filepath.Join(workDir, "my-app", "package.json"))
	assert.FileExists(t, filepath.Join(workDir, "my-app", ".gitignore"))
	assert.Contains(t, stdout, "cd my-app")

	data, err := os.ReadFile(filepath.Join(workDir, "my-app", "package.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"name": "my-app"`)
}

func TestE2E_InvalidNameExitsWithError(t *testing.T) {
	workDir := t.TempDir()

	_, stderr, code := run(t, workDir, "", "node_modules", "--skip-install")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "reserved name")
	assert.NoDirExists(t, filepath.Join(workDir, "node_modules"))
}

func TestE2E_Version(t *testing.T) {
	stdout, _, code := run(t, t.TempDir(), "", "--version")
	assert.Zero(t, code)
	assert.Contains(t, stdout, "react-vite-boilerplate")
}
