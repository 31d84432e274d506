package errors

import (
	"fmt"
	"strings"
	"time"

	"github.com/SibilSoren/react-vite-boilerplate/internal/output"
)

// SupportURL is where users are asked to report persistent problems.
const SupportURL = "https://github.com/SibilSoren/react-vite-boilerplate/issues"

// remediations holds the static suggestion lines per kind.
var remediations = map[Kind][]string{
	KindNetwork: {
		"Check your internet connection",
		"Try a different network",
		"Try offline mode with --skip-install and install dependencies later",
	},
	KindPackageManager: {
		"Try a different package manager with --pm <npm|yarn|pnpm|bun>",
		"Clear the package manager cache and try again",
	},
	KindFilesystem: {
		"Check the permissions of the target directory",
		"Make sure you have write access to the parent directory",
		"Try running with elevated permissions",
	},
	KindValidation: {
		"Use only letters, digits, hyphens, underscores and dots",
		"Start the name with a letter or digit",
		"Avoid reserved words such as node_modules or favicon.ico",
	},
}

// Remediation returns the suggestion lines for err, including
// context-dependent ones.
func Remediation(err error) []string {
	kind := KindOf(err)
	lines := append([]string(nil), remediations[kind]...)

	if kind == KindPackageManager {
		if be, ok := As(err); ok && be.context.Manager != "" {
			lines = append(lines, fmt.Sprintf("Run: %s cache clean --force", be.context.Manager))
		}
	}
	return lines
}

// FormatErrorMessage renders err for the terminal: a red header with the
// message, kind-specific suggestions, and a pointer to the issue tracker.
func FormatErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	message := err.Error()
	if be, ok := As(err); ok {
		message = be.message
	}

	var b strings.Builder
	b.WriteString(output.StyleError.Render("✖ Error: " + message))
	b.WriteString("\n")

	if lines := Remediation(err); len(lines) > 0 {
		b.WriteString("\n")
		b.WriteString(output.StyleAction.Render("Suggestions:"))
		b.WriteString("\n")
		for _, line := range lines {
			b.WriteString("  • ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(output.StyleDim.Render("If the problem persists, please report it at " + SupportURL))
	b.WriteString("\n")
	return b.String()
}

// FormatVerboseDetails renders the structured context, timestamp and cause
// chain of err. Used with --verbose.
func FormatVerboseDetails(err error) string {
	if err == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("Details:\n")
	fmt.Fprintf(&b, "  kind: %s\n", KindOf(err))

	if be, ok := As(err); ok {
		fmt.Fprintf(&b, "  time: %s\n", be.timestamp.Format(time.RFC3339))
		kv := be.context.Pairs()
		for i := 0; i+1 < len(kv); i += 2 {
			fmt.Fprintf(&b, "  %v: %v\n", kv[i], kv[i+1])
		}
	}

	depth := 0
	for cause := unwrapOnce(err); cause != nil; cause = unwrapOnce(cause) {
		if depth == 0 {
			b.WriteString("Trace:\n")
		}
		depth++
		fmt.Fprintf(&b, "  %s%s\n", strings.Repeat("  ", depth-1), cause.Error())
	}
	return b.String()
}

func unwrapOnce(err error) error {
	u, ok := err.(interface{ Unwrap() error })
	if !ok {
		return nil
	}
	return u.Unwrap()
}
