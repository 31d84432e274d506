package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderFileTree_Empty(t *testing.T) {
	assert.Empty(t, RenderFileTree("my-app", nil))
}

func TestRenderFileTree_DirectoriesFirst(t *testing.T) {
	out := RenderFileTree("my-app", map[string]string{
		"package.json":    "Project metadata",
		"src/main.tsx":    "",
		"src/App.tsx":     "",
		"index.html":      "",
		"public/vite.svg": "",
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Contains(t, lines[0], "my-app/")
	assert.Contains(t, lines[1], "public/")
	assert.Contains(t, lines[3], "src/")
	assert.Contains(t, lines[4], "App.tsx")
	assert.Contains(t, lines[5], "main.tsx")
	assert.Contains(t, out, "index.html")
	assert.Contains(t, out, "Project metadata")
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], treeLast))
}
