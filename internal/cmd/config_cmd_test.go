package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rerrors "github.com/SibilSoren/react-vite-boilerplate/internal/errors"
)

func TestConfigInit(t *testing.T) {
	isolate(t)
	cfgPath := filepath.Join(t.TempDir(), "nested", "config.yaml")

	res := execute(t, "", "config", "init", "--config", cfgPath)
	require.NoError(t, res.err, res.stderr)
	assert.Contains(t, res.stdout, "Config file created")

	data, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "template: default")
	assert.Contains(t, string(data), "installTimeout: 10m0s")

	info, err := os.Stat(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	t.Run("refuses to overwrite", func(t *testing.T) {
		res := execute(t, "", "config", "init", "--config", cfgPath)
		var exitErr *rerrors.ExitError
		require.ErrorAs(t, res.err, &exitErr)
		assert.Contains(t, exitErr.Error(), "--force")
	})

	t.Run("force overwrites", func(t *testing.T) {
		require.NoError(t, os.WriteFile(cfgPath, []byte("template: minimal\n"), 0o600))
		res := execute(t, "", "config", "init", "--config", cfgPath, "--force")
		require.NoError(t, res.err)

		data, err := os.ReadFile(cfgPath)
		require.NoError(t, err)
		assert.Contains(t, string(data), "template: default")
	})
}

func TestConfigVet(t *testing.T) {
	t.Run("valid file lists sources", func(t *testing.T) {
		isolate(t)
		cfgPath := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(cfgPath, []byte("packageManager: pnpm\n"), 0o644))

		res := execute(t, "", "config", "vet", "--config", cfgPath)
		require.NoError(t, res.err, res.stderr)

		assert.Contains(t, res.stdout, "Config file is valid")
		assert.Contains(t, res.stdout, "packageManager")
		assert.Contains(t, res.stdout, "pnpm")
		assert.Contains(t, res.stdout, "config")
		assert.Contains(t, res.stdout, "default")
	})

	t.Run("missing file", func(t *testing.T) {
		isolate(t)
		res := execute(t, "", "config", "vet", "--config", filepath.Join(t.TempDir(), "none.yaml"))

		var exitErr *rerrors.ExitError
		require.ErrorAs(t, res.err, &exitErr)
		assert.False(t, exitErr.Printed)
		assert.Contains(t, exitErr.Error(), "config init")
	})

	t.Run("invalid values", func(t *testing.T) {
		isolate(t)
		cfgPath := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(cfgPath, []byte("template: vue\n"), 0o644))

		res := execute(t, "", "config", "vet", "--config", cfgPath)

		var exitErr *rerrors.ExitError
		require.ErrorAs(t, res.err, &exitErr)
		assert.True(t, exitErr.Printed)
		assert.Contains(t, res.stderr, "template")
		assert.Contains(t, res.stderr, "vue")
	})
}
