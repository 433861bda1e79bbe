// Package history provides the history panel for the TUI.
package history

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/custodia-labs/clipscope/internal/adapters/driving/render"
	"github.com/custodia-labs/clipscope/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/clipscope/internal/core/domain"
)

// View lists history entries, newest first.
type View struct {
	styles *styles.Styles

	entries  []domain.HistoryEntry
	selected int
	current  string
	width    int
	height   int
}

// NewView creates a new history panel.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles: s,
		width:  80,
		height: 6,
	}
}

// SetEntries replaces the listed entries, keeping the selection in range.
func (v *View) SetEntries(entries []domain.HistoryEntry) {
	v.entries = entries
	if v.selected >= len(entries) {
		v.selected = max(len(entries)-1, 0)
	}
}

// Entries returns the listed entries.
func (v *View) Entries() []domain.HistoryEntry {
	return v.entries
}

// SetCurrent marks the entry with id as the one on display.
func (v *View) SetCurrent(id string) {
	v.current = id
}

// Selected returns the index of the selected entry.
func (v *View) Selected() int {
	return v.selected
}

// SelectedEntry returns the selected entry, or nil if the list is empty.
func (v *View) SelectedEntry() *domain.HistoryEntry {
	if v.selected < 0 || v.selected >= len(v.entries) {
		return nil
	}
	return &v.entries[v.selected]
}

// MoveUp moves selection up.
func (v *View) MoveUp() {
	if v.selected > 0 {
		v.selected--
	}
}

// MoveDown moves selection down.
func (v *View) MoveDown() {
	if v.selected < len(v.entries)-1 {
		v.selected++
	}
}

// View renders the panel. focused highlights the selection.
func (v *View) View(focused bool) string {
	var b strings.Builder

	b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf("History (%d)", len(v.entries))))
	b.WriteString("\n")

	if len(v.entries) == 0 {
		b.WriteString(v.styles.Muted.Render("No history."))
		return b.String()
	}

	visible := max(v.height-1, 1)
	start := 0
	if v.selected >= visible {
		start = v.selected - visible + 1
	}
	end := min(start+visible, len(v.entries))

	for i := start; i < end; i++ {
		b.WriteString(v.renderEntry(i, focused))
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (v *View) renderEntry(i int, focused bool) string {
	e := v.entries[i]

	marker := "  "
	if e.ID == v.current {
		marker = "* "
	}

	when := humanize.Time(e.Timestamp)
	origin := string(e.Result.Origin)
	summary := render.Snippet(e.Summary, max(v.width-len(when)-len(origin)-10, 10))
	line := fmt.Sprintf("%s%s  %s  %s", marker, summary, origin, when)

	if focused && i == v.selected {
		return v.styles.Selected.Render(line)
	}
	return v.styles.Normal.Render(marker+summary) + "  " + v.styles.Muted.Render(origin+"  "+when)
}

// SetDimensions sets the panel dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}
