package templates

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/SibilSoren/react-vite-boilerplate/internal/output"
)

// Renderer renders templates with data substitution.
type Renderer struct {
	data Data
}

// NewRenderer creates a new renderer with the given template data.
func NewRenderer(data Data) *Renderer {
	return &Renderer{data: data}
}

// RenderFile executes content as a text/template over the renderer's data.
func (r *Renderer) RenderFile(content []byte) ([]byte, error) {
	tmpl, err := template.New("file").Option("missingkey=error").Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, r.data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderTemplate renders every file of the named template in memory.
// Files ending in .tmpl are executed and lose the suffix; all others are
// copied verbatim.
func (r *Renderer) RenderTemplate(name string) ([]File, error) {
	if !IsValid(name) {
		_, err := Get(name)
		return nil, err
	}

	var files []File
	err := fs.WalkDir(templateFS, name, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel := strings.TrimPrefix(p, name+"/")
		if rel == manifestFile {
			return nil
		}

		content, err := templateFS.ReadFile(p)
		if err != nil {
			return fmt.Errorf("reading template %s: %w", p, err)
		}

		if strings.HasSuffix(rel, ".tmpl") {
			content, err = r.RenderFile(content)
			if err != nil {
				return fmt.Errorf("%s: %w", p, err)
			}
		}

		files = append(files, File{
			SourcePath: p,
			TargetPath: targetPath(rel),
			Content:    content,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool { return files[i].TargetPath < files[j].TargetPath })
	return files, nil
}

// Render writes the named template into targetDir, which must exist, and
// returns the created paths relative to targetDir. The rendered package.json
// is validated before anything is written.
func (r *Renderer) Render(name, targetDir string) ([]string, error) {
	files, err := r.RenderTemplate(name)
	if err != nil {
		return nil, err
	}

	for _, f := range files {
		if f.TargetPath == "package.json" {
			if err := ValidatePackageJSON(f.Content); err != nil {
				return nil, err
			}
		}
	}

	created := make([]string, 0, len(files))
	for _, f := range files {
		dest := filepath.Join(targetDir, filepath.FromSlash(f.TargetPath))

		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return created, fmt.Errorf("creating directory for %s: %w", f.TargetPath, err)
		}
		if err := os.WriteFile(dest, f.Content, 0o644); err != nil {
			return created, fmt.Errorf("writing %s: %w", f.TargetPath, err)
		}

		output.Debug("created file", "path", f.TargetPath)
		created = append(created, f.TargetPath)
	}
	return created, nil
}

// Plan lists the files a render of the named template would create,
// without rendering or writing anything.
func Plan(name string) ([]string, error) {
	if _, err := Get(name); err != nil {
		return nil, err
	}

	var files []string
	err := fs.WalkDir(templateFS, name, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel := strings.TrimPrefix(p, name+"/")
		if rel == manifestFile {
			return nil
		}
		files = append(files, targetPath(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// targetPath maps an embedded path to its output path. Dotfiles are stored
// without the leading dot so tooling does not treat them as live config.
func targetPath(rel string) string {
	rel = strings.TrimSuffix(rel, ".tmpl")
	dir, base := path.Split(rel)
	if base == "gitignore" {
		base = ".gitignore"
	}
	return dir + base
}
