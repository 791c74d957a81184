package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette — named constants for all ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: feature names, paths.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "write" action (bright, high-visibility).
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "skip" action (medium visibility).
	ColorYellow = lipgloss.Color("220")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for "mkdir" action lines and structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Action verbs reported on stdout.
const (
	VerbMkdir = "mkdir"
	VerbWrite = "write"
	VerbSkip  = "skip"
)

// ActionStyle returns the lipgloss style for a reported action verb.
// Unknown verbs, and any verb when stdout is not a terminal, render plain.
func ActionStyle(verb string) lipgloss.Style {
	if !IsTTY() {
		return lipgloss.NewStyle()
	}

	switch verb {
	case VerbMkdir:
		return lipgloss.NewStyle().Foreground(ColorDimGray)
	case VerbWrite:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case VerbSkip:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	default:
		return lipgloss.NewStyle()
	}
}

// Styles groups the semantic styles used for stdout rendering.
type Styles struct {
	// Noun styles identifiable nouns (feature names, directories, paths).
	Noun lipgloss.Style

	// Bold styles summary headings and the tree root.
	Bold lipgloss.Style

	// Muted styles structural chrome (tree descriptions, separators).
	Muted lipgloss.Style
}

// GetStyles returns the styles for the current terminal. When stdout is not
// a terminal every style renders as plain text.
func GetStyles() Styles {
	if !IsTTY() {
		plain := lipgloss.NewStyle()
		return Styles{Noun: plain, Bold: plain, Muted: plain}
	}

	return Styles{
		Noun:  lipgloss.NewStyle().Foreground(ColorCyan),
		Bold:  lipgloss.NewStyle().Bold(true),
		Muted: lipgloss.NewStyle().Faint(true),
	}
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	if !IsTTY() {
		return "✔ " + msg
	}
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}
