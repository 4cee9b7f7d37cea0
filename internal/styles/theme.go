// Package styles provides the colour theme shared by terminal output:
// the table sink and the CLI summaries.
package styles

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Theme defines the colour palette.
type Theme struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Border    lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:   lipgloss.Color("#7C3AED"), // Purple
		Secondary: lipgloss.Color("#06B6D4"), // Cyan
		Muted:     lipgloss.Color("#6C7086"), // Medium gray
		Success:   lipgloss.Color("#A6E3A1"), // Green
		Warning:   lipgloss.Color("#F9E2AF"), // Yellow
		Error:     lipgloss.Color("#F38BA8"), // Red
		Border:    lipgloss.Color("#45475A"), // Border gray
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for section headers.
	Title lipgloss.Style

	// Header style for table header cells.
	Header lipgloss.Style

	// Cell style for table body cells.
	Cell lipgloss.Style

	// Label style for summary keys.
	Label lipgloss.Style

	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style

	// Border style for table borders.
	Border lipgloss.Style
}

// NewStyles creates styles from a theme.
// A nil theme uses DefaultTheme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme:   theme,
		Title:   lipgloss.NewStyle().Bold(true).Foreground(theme.Primary),
		Header:  lipgloss.NewStyle().Bold(true).Foreground(theme.Secondary).Padding(0, 1),
		Cell:    lipgloss.NewStyle().Padding(0, 1),
		Label:   lipgloss.NewStyle().Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(theme.Muted),
		Success: lipgloss.NewStyle().Foreground(theme.Success),
		Warning: lipgloss.NewStyle().Foreground(theme.Warning),
		Error:   lipgloss.NewStyle().Foreground(theme.Error),
		Border:  lipgloss.NewStyle().Foreground(theme.Border),
	}
}

// PlainStyles returns styles without colour or emphasis, keeping only the
// cell padding tables need to stay readable.
func PlainStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Title:   plain,
		Header:  plain.Padding(0, 1),
		Cell:    plain.Padding(0, 1),
		Label:   plain,
		Muted:   plain,
		Success: plain,
		Warning: plain,
		Error:   plain,
		Border:  plain,
	}
}

// ForWriter returns coloured styles when w is a terminal and plain styles
// otherwise.
func ForWriter(w io.Writer) *Styles {
	if IsTerminal(w) {
		return NewStyles(nil)
	}
	return PlainStyles()
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Theme returns the theme used by these styles. Nil for plain styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
