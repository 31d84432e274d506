package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandPath(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	assert.NoError(t, err, "should get home directory")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "no tilde",
			input:    "/absolute/path",
			expected: "/absolute/path",
		},
		{
			name:     "relative path without tilde",
			input:    "relative/path",
			expected: "relative/path",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: homeDir,
		},
		{
			name:     "tilde with slash",
			input:    "~/.react-vite-boilerplate/config.yaml",
			expected: filepath.Join(homeDir, ".react-vite-boilerplate", "config.yaml"),
		},
		{
			name:     "tilde with path",
			input:    "~/Documents/file.txt",
			expected: filepath.Join(homeDir, "Documents", "file.txt"),
		},
		{
			name:     "tilde username pattern (not expanded)",
			input:    "~username/file",
			expected: "~username/file",
		},
		{
			name:     "tilde in middle (not expanded)",
			input:    "/path/~/file",
			expected: "/path/~/file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ExpandPath(tt.input)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestDefaultPaths(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	assert.NoError(t, err)

	paths, err := DefaultPaths()
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(homeDir, ".react-vite-boilerplate"), paths.HomeDir)
	assert.Equal(t, filepath.Join(homeDir, ".react-vite-boilerplate", "config.yaml"), paths.ConfigFile)
}

func TestGetConfigFile_EnvOverride(t *testing.T) {
	t.Setenv(EnvConfig, "/custom/config.yaml")

	path, err := GetConfigFile()
	assert.NoError(t, err)
	assert.Equal(t, "/custom/config.yaml", path)
}
