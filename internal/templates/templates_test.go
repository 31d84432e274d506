package templates

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rerrors "github.com/SibilSoren/react-vite-boilerplate/internal/errors"
)

func TestRegistry(t *testing.T) {
	assert.Equal(t, []string{"default", "minimal"}, Names())
	assert.True(t, IsValid("default"))
	assert.True(t, IsValid("minimal"))
	assert.False(t, IsValid("advanced"))

	list := List()
	require.Len(t, list, 2)
	assert.True(t, list[0].Default)
	assert.False(t, list[1].Default)
	for _, tmpl := range list {
		assert.NotEmpty(t, tmpl.Description, tmpl.Name)
	}
}

func TestGet(t *testing.T) {
	tmpl, err := Get("default")
	require.NoError(t, err)
	assert.Equal(t, "default", tmpl.Name)
	require.Len(t, tmpl.PostInstall, 1)
	assert.Equal(t, "shadcn", tmpl.PostInstall[0].Name)
	assert.False(t, tmpl.PostInstall[0].Critical)
	assert.NotEmpty(t, tmpl.PostInstall[0].Command)

	minimal, err := Get("minimal")
	require.NoError(t, err)
	assert.Empty(t, minimal.PostInstall)

	_, err = Get("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "valid templates: default, minimal")

	def, err := Get(DefaultName)
	require.NoError(t, err)
	assert.Equal(t, DefaultName, def.Name)
}

func TestPlan(t *testing.T) {
	files, err := Plan("default")
	require.NoError(t, err)

	assert.Contains(t, files, "package.json")
	assert.Contains(t, files, "index.html")
	assert.Contains(t, files, ".gitignore")
	assert.Contains(t, files, "src/main.tsx")
	assert.Contains(t, files, "src/lib/utils.ts")
	assert.NotContains(t, files, "template.yaml")
	assert.NotContains(t, files, "package.json.tmpl")
	assert.NotContains(t, files, "gitignore")
	assert.IsIncreasing(t, files)

	_, err = Plan("nope")
	require.Error(t, err)
}

func TestRender(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()

			created, err := NewRenderer(NewData("My-App")).Render(name, dir)
			require.NoError(t, err)

			planned, err := Plan(name)
			require.NoError(t, err)
			assert.Equal(t, planned, created)

			for _, f := range created {
				assert.FileExists(t, filepath.Join(dir, filepath.FromSlash(f)))
			}
			assert.NoFileExists(t, filepath.Join(dir, "template.yaml"))
			assert.NoFileExists(t, filepath.Join(dir, "gitignore"))

			raw, err := os.ReadFile(filepath.Join(dir, "package.json"))
			require.NoError(t, err)

			var pkg map[string]any
			require.NoError(t, json.Unmarshal(raw, &pkg))
			assert.Equal(t, "my-app", pkg["name"])
			assert.Equal(t, InitialVersion, pkg["version"])

			html, err := os.ReadFile(filepath.Join(dir, "index.html"))
			require.NoError(t, err)
			assert.Contains(t, string(html), "<title>My-App</title>")
		})
	}
}

func TestRender_UnknownTemplate(t *testing.T) {
	dir := t.TempDir()
	_, err := NewRenderer(NewData("app")).Render("nope", dir)
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRenderFile(t *testing.T) {
	r := NewRenderer(Data{ProjectName: "demo", PackageName: "demo", Version: "1.0.0"})

	out, err := r.RenderFile([]byte("{{ .ProjectName }}@{{ .Version }}"))
	require.NoError(t, err)
	assert.Equal(t, "demo@1.0.0", string(out))

	_, err = r.RenderFile([]byte("{{ .Missing }}"))
	require.Error(t, err)

	_, err = r.RenderFile([]byte("{{ .ProjectName "))
	require.Error(t, err)
}

func TestTargetPath(t *testing.T) {
	tests := map[string]string{
		"package.json.tmpl": "package.json",
		"gitignore":         ".gitignore",
		"src/gitignore":     "src/.gitignore",
		"src/main.tsx":      "src/main.tsx",
		"README.md.tmpl":    "README.md",
	}
	for in, want := range tests {
		assert.Equal(t, want, targetPath(in), in)
	}
}

func TestValidatePackageJSON(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{"valid", `{"name":"my-app","version":"0.0.0"}`, false},
		{"scoped", `{"name":"@org/app","version":"1.0.0","private":true}`, false},
		{"missing name", `{"version":"0.0.0"}`, true},
		{"uppercase name", `{"name":"MyApp","version":"0.0.0"}`, true},
		{"bad type", `{"name":"app","version":"0.0.0","type":"esm"}`, true},
		{"bad dependency", `{"name":"app","version":"0.0.0","dependencies":{"react":19}}`, true},
		{"not json", `{name:`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePackageJSON([]byte(tt.content))
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, rerrors.KindTemplate, rerrors.KindOf(err))
		})
	}
}

func TestPackageName(t *testing.T) {
	assert.Equal(t, "my-app", PackageName("My-App"))
	assert.Equal(t, "@org/app", PackageName("@org/app"))
	assert.Equal(t, "app", PackageName("  app "))
}

func TestNewData(t *testing.T) {
	d := NewData("Demo")
	assert.Equal(t, "Demo", d.ProjectName)
	assert.Equal(t, "demo", d.PackageName)
	assert.Equal(t, InitialVersion, d.Version)
}
