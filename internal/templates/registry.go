package templates

import (
	"fmt"
	"path"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// DefaultName is the template used when --template is not specified.
const DefaultName = "default"

// names is the display order of the embedded templates.
var names = []string{"default", "minimal"}

var (
	loadOnce  sync.Once
	manifests map[string]Template
	loadErr   error
)

func loadManifests() (map[string]Template, error) {
	loadOnce.Do(func() {
		manifests = make(map[string]Template, len(names))
		for _, name := range names {
			data, err := templateFS.ReadFile(path.Join(name, manifestFile))
			if err != nil {
				loadErr = fmt.Errorf("reading %s manifest: %w", name, err)
				return
			}

			var t Template
			if err := yaml.Unmarshal(data, &t); err != nil {
				loadErr = fmt.Errorf("parsing %s manifest: %w", name, err)
				return
			}
			if t.Name != name {
				loadErr = fmt.Errorf("manifest in %s declares name %q", name, t.Name)
				return
			}
			for i, step := range t.PostInstall {
				if len(step.Command) == 0 {
					loadErr = fmt.Errorf("%s manifest: postInstall[%d] %q has no command", name, i, step.Name)
					return
				}
			}
			manifests[name] = t
		}
	})
	return manifests, loadErr
}

// Get returns a template by name.
func Get(name string) (Template, error) {
	all, err := loadManifests()
	if err != nil {
		return Template{}, err
	}
	t, ok := all[name]
	if !ok {
		return Template{}, fmt.Errorf("unknown template %q; valid templates: %s", name, strings.Join(Names(), ", "))
	}
	return t, nil
}

// List returns all available templates in display order.
func List() []Template {
	all, err := loadManifests()
	if err != nil {
		return nil
	}
	out := make([]Template, 0, len(names))
	for _, n := range names {
		out = append(out, all[n])
	}
	return out
}

// Names returns all template names.
func Names() []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// IsValid reports whether name is an embedded template.
func IsValid(name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
