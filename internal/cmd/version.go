package cmd

import (
	"strings"

	"github.com/SibilSoren/react-vite-boilerplate/internal/version"
)

// versionTemplate is printed by --version. Braces are escaped because cobra
// treats the result as a text/template.
func versionTemplate(info version.Info) string {
	s := info.String()
	s = strings.ReplaceAll(s, "{{", `{{"{{"}}`)
	return s + "\n"
}
