package scaffold

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rerrors "github.com/SibilSoren/react-vite-boilerplate/internal/errors"
)

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions("my-app")

	assert.Equal(t, "my-app", o.ProjectName)
	assert.Equal(t, "my-app", o.Directory)
	assert.Equal(t, "default", o.Template)
	assert.True(t, o.NetworkCheck)
	assert.Equal(t, 10*time.Minute, o.InstallTimeout)
	assert.False(t, o.Yes)
	assert.False(t, o.DryRun)
	assert.Empty(t, o.PackageManager)
}

func TestOptions_WithDefaults(t *testing.T) {
	o := Options{ProjectName: " app "}.withDefaults()

	assert.Equal(t, "app", o.ProjectName)
	assert.Equal(t, "app", o.Directory)
	assert.Equal(t, "default", o.Template)
	assert.Equal(t, DefaultInstallTimeout, o.InstallTimeout)
	assert.False(t, o.NetworkCheck)

	kept := Options{ProjectName: "app", Directory: "elsewhere", Template: "minimal", InstallTimeout: time.Second}.withDefaults()
	assert.Equal(t, "elsewhere", kept.Directory)
	assert.Equal(t, "minimal", kept.Template)
	assert.Equal(t, time.Second, kept.InstallTimeout)
}

func TestDefaultDirectory(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"my-app", "my-app"},
		{"@scope/app", "app"},
		{"@acme/ui-kit", "ui-kit"},
		{"@scope", "@scope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, defaultDirectory(tt.name))
			assert.Equal(t, tt.want, DefaultOptions(tt.name).Directory)
			assert.Equal(t, tt.want, Options{ProjectName: tt.name}.withDefaults().Directory)
		})
	}
}

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr string
	}{
		{"ok", DefaultOptions("app"), ""},
		{"missing name", Options{}, "required"},
		{"unknown manager", Options{ProjectName: "app", PackageManager: "cargo"}, "cargo"},
		{"negative timeout", Options{ProjectName: "app", InstallTimeout: -time.Second}, "negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Equal(t, rerrors.KindValidation, rerrors.KindOf(err))
		})
	}
}
