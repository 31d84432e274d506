package scaffold

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/SibilSoren/react-vite-boilerplate/internal/output"
	"github.com/SibilSoren/react-vite-boilerplate/internal/templates"
)

// fileDescriptions annotates well-known files in the summary tree.
var fileDescriptions = map[string]string{
	"package.json":     "Project metadata and scripts",
	"index.html":       "HTML entry point",
	"vite.config.ts":   "Vite configuration",
	"tsconfig.json":    "TypeScript configuration",
	"components.json":  "shadcn/ui configuration",
	"eslint.config.js": "ESLint configuration",
	"src/main.tsx":     "Application entry",
	"src/App.tsx":      "Root component",
	"src/index.css":    "Tailwind styles",
	"src/lib/utils.ts": "Class name helper",
}

func describe(files []string) map[string]string {
	out := make(map[string]string, len(files))
	for _, f := range files {
		out[f] = fileDescriptions[f]
	}
	return out
}

// dryRun reports the plan without touching the filesystem or installing.
func (c *Creator) dryRun(ctx context.Context, r *run, existing bool) (*Result, error) {
	files, err := templates.Plan(r.opts.Template)
	if err != nil {
		return nil, err
	}

	r.result.DryRun = true
	r.result.Files = files

	pm := "skipped (--skip-install)"
	if !r.opts.SkipInstall {
		available := c.resolver.DetectAvailable(ctx)
		chosen, err := c.selectManager(r, available)
		if err != nil {
			r.warn(c, err.Error())
			pm = "none available"
		} else {
			r.result.PackageManager = chosen
			pm = chosen
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n\n", output.StyleAction.Render("Dry run: no changes will be made"))
	fmt.Fprintf(&sb, "  Project:          %s\n", output.StyleNoun.Render(r.opts.ProjectName))
	fmt.Fprintf(&sb, "  Directory:        %s\n", output.StyleNoun.Render(r.abs))
	if existing {
		fmt.Fprintf(&sb, "                    %s\n", output.StyleDim.Render("(exists and would be overwritten)"))
	}
	fmt.Fprintf(&sb, "  Template:         %s\n", r.opts.Template)
	fmt.Fprintf(&sb, "  Package manager:  %s\n", pm)
	fmt.Fprintf(&sb, "  Git:              %s\n\n", onOff(!r.opts.SkipGit))
	sb.WriteString(output.RenderFileTree(filepath.Base(r.abs), describe(files)))

	fmt.Fprint(c.out, sb.String())
	return r.result, nil
}

func onOff(b bool) string {
	if b {
		return "initialize repository"
	}
	return "skipped (--skip-git)"
}

func (c *Creator) printSummary(r *run) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s\n\n", output.FormatCheckmark(fmt.Sprintf("Created %s in %s",
		output.StyleNoun.Render(r.opts.ProjectName), output.StyleNoun.Render(r.abs))))
	sb.WriteString(output.RenderFileTree(filepath.Base(r.abs), describe(r.result.Files)))

	for _, w := range r.result.Warnings {
		fmt.Fprintf(&sb, "\n%s", output.FormatWarning(w))
	}
	if len(r.result.Warnings) > 0 {
		sb.WriteString("\n")
	}

	pm := r.result.PackageManager
	sb.WriteString("\n" + output.StyleAction.Render("Next steps:") + "\n")
	fmt.Fprintf(&sb, "  cd %s\n", displayPath(r.abs))
	if !r.result.Installed {
		fmt.Fprintf(&sb, "  %s install\n", pm)
	}
	fmt.Fprintf(&sb, "  %s\n", runScript(pm, "dev"))

	fmt.Fprint(c.out, sb.String())
}

// displayPath shortens dir to a path relative to the working directory when
// it lives below it.
func displayPath(dir string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return dir
	}
	rel, err := filepath.Rel(cwd, dir)
	if err != nil || strings.HasPrefix(rel, "..") {
		return dir
	}
	return rel
}

// runScript renders the command that runs a package.json script.
func runScript(pm, script string) string {
	if pm == "" || pm == "npm" {
		return "npm run " + script
	}
	return pm + " " + script
}
