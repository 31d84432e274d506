// Package templates provides the embedded project templates, their
// manifests and rendering into a target directory.
package templates

import "embed"

// templateFS holds one directory per template. Every directory carries a
// template.yaml manifest next to the files it produces.
//
//go:embed all:default all:minimal
var templateFS embed.FS

//go:embed schema/package.schema.json
var packageSchema []byte

// manifestFile is read by the registry and never copied.
const manifestFile = "template.yaml"
