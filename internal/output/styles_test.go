package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSemanticStyles(t *testing.T) {
	assert.Equal(t, ColorCyan, StyleNoun.GetForeground())
	assert.True(t, StyleAction.GetBold())
	assert.True(t, StyleDim.GetFaint())
	assert.True(t, StyleError.GetBold())
	assert.Equal(t, ColorRed, StyleError.GetForeground())
}

func TestFormatMarkers(t *testing.T) {
	tests := []struct {
		name   string
		got    string
		marker string
	}{
		{"checkmark", FormatCheckmark("done"), "✔"},
		{"warning", FormatWarning("careful"), "⚠"},
		{"cross", FormatCross("broken"), "✖"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, tt.got, tt.marker)
		})
	}

	assert.Contains(t, FormatCheckmark("done"), "done")
	assert.Contains(t, FormatWarning("careful"), "careful")
}
