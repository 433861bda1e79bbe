// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/clipscope/internal/core/domain"
)

// Theme is the TUI palette. Kind badges reuse the status colours:
// images take Success, files and PDFs Warning, unknown entries Error.
type Theme struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Background lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Border     lipgloss.Color

	// StatusBackground fills the status bar row.
	StatusBackground lipgloss.Color
}

// DefaultTheme returns the default dark palette.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:          lipgloss.Color("#2DD4BF"), // teal
		Secondary:        lipgloss.Color("#60A5FA"), // blue
		Background:       lipgloss.Color("#111827"),
		Foreground:       lipgloss.Color("#E5E7EB"),
		Muted:            lipgloss.Color("#6B7280"),
		Success:          lipgloss.Color("#86EFAC"),
		Warning:          lipgloss.Color("#FCD34D"),
		Error:            lipgloss.Color("#FCA5A5"),
		Border:           lipgloss.Color("#374151"),
		StatusBackground: lipgloss.Color("#0B1220"),
	}
}

// labelWidth aligns detail values in the detail pane.
const labelWidth = 16

// Styles are the rendered styles derived from a Theme.
type Styles struct {
	theme *Theme

	// Text.
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Help     lipgloss.Style

	// Selected highlights the cursor row in lists.
	Selected lipgloss.Style

	// Status messages.
	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style

	// Kind is the base badge style; RenderKind colours it per family.
	Kind lipgloss.Style

	// Label is the fixed-width key column of the detail pane.
	Label lipgloss.Style

	// Panel and FocusedPanel differ only in border colour.
	Panel        lipgloss.Style
	FocusedPanel lipgloss.Style

	StatusBar lipgloss.Style
}

// NewStyles derives styles from theme. A nil theme uses DefaultTheme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	fg := func(c lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c)
	}
	panel := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		Padding(0, 1)

	return &Styles{
		theme: theme,

		Title:    fg(theme.Primary).Bold(true),
		Subtitle: fg(theme.Secondary).Bold(true),
		Normal:   fg(theme.Foreground),
		Muted:    fg(theme.Muted),
		Help:     fg(theme.Muted).Italic(true),

		Selected: fg(theme.Background).Background(theme.Primary).Bold(true),

		Error:   fg(theme.Error),
		Success: fg(theme.Success),
		Warning: fg(theme.Warning),

		Kind:  fg(theme.Secondary),
		Label: fg(theme.Muted).Width(labelWidth),

		Panel:        panel.BorderForeground(theme.Border),
		FocusedPanel: panel.BorderForeground(theme.Primary),

		StatusBar: fg(theme.Muted).Background(theme.StatusBackground).Padding(0, 1),
	}
}

// KindColour returns the badge colour for a data kind family.
func (s *Styles) KindColour(kind domain.DataKind) lipgloss.Color {
	switch {
	case kind.IsImage():
		return s.theme.Success
	case kind == domain.KindFiles || kind == domain.KindPDF:
		return s.theme.Warning
	case kind == domain.KindUnknown:
		return s.theme.Error
	case kind.IsText():
		return s.theme.Secondary
	default:
		return s.theme.Muted
	}
}

// RenderKind renders a kind badge in its family colour.
func (s *Styles) RenderKind(kind domain.DataKind) string {
	return s.Kind.Foreground(s.KindColour(kind)).Render(kind.String())
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
