package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette. Use these rather than inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: project names, paths, managers.
	ColorCyan = lipgloss.Color("14")

	// ColorYellow is used for warnings.
	ColorYellow = lipgloss.Color("220")

	// ColorRed is used for error headers.
	ColorRed = lipgloss.Color("196")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (project names, paths, package managers).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleAction styles action verbs and headings.
	StyleAction = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (tree connectors, descriptions, hints).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleError styles error headers.
	StyleError = lipgloss.NewStyle().Bold(true).Foreground(ColorRed)

	// StyleWarning styles warning markers.
	StyleWarning = lipgloss.NewStyle().Foreground(ColorYellow)
)

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatWarning renders a yellow warning marker with a message.
func FormatWarning(msg string) string {
	return StyleWarning.Render("⚠") + " " + msg
}

// FormatCross renders a red cross with a message.
func FormatCross(msg string) string {
	return StyleError.Render("✖") + " " + msg
}
