package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	info := Get()

	require.NotEmpty(t, info.GoVersion, "GoVersion should be populated")
	assert.Equal(t, Version, info.Version)
}

func TestInfoString(t *testing.T) {
	info := Info{
		Version:   "v1.0.0",
		GitCommit: "abc123",
		BuildDate: "2026-01-29",
		GoVersion: "go1.25",
	}

	str := info.String()

	assert.Contains(t, str, "v1.0.0")
	assert.Contains(t, str, "abc123")
	assert.Contains(t, str, "2026-01-29")
	assert.Contains(t, str, "go1.25")
}

func TestShort(t *testing.T) {
	assert.Equal(t, "1.2.3", Info{Version: "v1.2.3"}.Short())
	assert.Equal(t, "1.2.3", Info{Version: "1.2.3"}.Short())
}

func TestSemver(t *testing.T) {
	tests := []struct {
		name      string
		info      Info
		wantErr   bool
		isRelease bool
	}{
		{"release", Info{Version: "v1.4.0", GitCommit: "abc123"}, false, true},
		{"dev default", Info{Version: "v0.0.0-dev", GitCommit: "unknown"}, false, false},
		{"release without commit", Info{Version: "v1.4.0", GitCommit: "unknown"}, false, false},
		{"garbage", Info{Version: "banana"}, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.info.Semver()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.isRelease, tt.info.IsRelease())
		})
	}
}
