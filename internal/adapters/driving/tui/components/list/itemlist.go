// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/clipscope/internal/adapters/driving/render"
	"github.com/custodia-labs/clipscope/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/clipscope/internal/core/domain"
)

// ItemList displays parsed items in a navigable list.
type ItemList struct {
	items    []domain.DataItem
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewItemList creates a new item list component.
func NewItemList(s *styles.Styles) *ItemList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ItemList{
		styles: s,
		width:  40,
		height: 10,
	}
}

// Init initialises the item list.
func (l *ItemList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (l *ItemList) Update(msg tea.Msg) (*ItemList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			l.MoveUp()
		case "down", "j":
			l.MoveDown()
		}
	}
	return l, nil
}

// View renders the item list.
func (l *ItemList) View() string {
	if len(l.items) == 0 {
		return l.styles.Muted.Render("No items. Press r to read the clipboard or paste into the terminal.")
	}

	lines := make([]string, 0, len(l.items)*2+2)
	lines = append(lines, l.styles.Subtitle.Render(fmt.Sprintf("Items (%d)", len(l.items))), "")

	// Each item takes two lines.
	visible := (l.height - 2) / 2
	if visible < 1 {
		visible = 1
	}

	start := 0
	if l.selected >= visible {
		start = l.selected - visible + 1
	}
	end := start + visible
	if end > len(l.items) {
		end = len(l.items)
	}

	for i := start; i < end; i++ {
		lines = append(lines, l.renderItem(i, &l.items[i]))
	}

	return strings.Join(lines, "\n")
}

// renderItem formats one item as a label line and a snippet line.
func (l *ItemList) renderItem(index int, item *domain.DataItem) string {
	indicator := "  "
	if index == l.selected {
		indicator = "> "
	}

	label := item.Label()
	size := item.Metadata.FormattedSize
	maxLabel := l.width - lipgloss.Width(size) - 6
	if maxLabel < 8 {
		maxLabel = 8
	}
	label = render.Snippet(label, maxLabel)

	var title string
	if index == l.selected {
		title = l.styles.Selected.Render(fmt.Sprintf("%s%-*s  %s", indicator, maxLabel, label, size))
	} else {
		title = l.styles.Normal.Render(fmt.Sprintf("%s%-*s  ", indicator, maxLabel, label)) +
			l.styles.Muted.Render(size)
	}

	detail := l.styles.RenderKind(item.Kind)
	if item.Text != "" {
		maxSnippet := l.width - lipgloss.Width(item.Kind.String()) - 8
		if maxSnippet < 8 {
			maxSnippet = 8
		}
		detail += l.styles.Muted.Render("  " + render.Snippet(item.Text, maxSnippet))
	}

	return title + "\n    " + detail
}

// SetItems replaces the list contents and resets the selection.
func (l *ItemList) SetItems(items []domain.DataItem) {
	l.items = items
	l.selected = 0
}

// Items returns the current items.
func (l *ItemList) Items() []domain.DataItem {
	return l.items
}

// Selected returns the index of the selected item.
func (l *ItemList) Selected() int {
	return l.selected
}

// SetSelected sets the selected index.
func (l *ItemList) SetSelected(index int) {
	if index >= 0 && index < len(l.items) {
		l.selected = index
	}
}

// SelectedItem returns the currently selected item, or nil if none.
func (l *ItemList) SelectedItem() *domain.DataItem {
	if len(l.items) == 0 || l.selected < 0 || l.selected >= len(l.items) {
		return nil
	}
	return &l.items[l.selected]
}

// MoveUp moves selection up.
func (l *ItemList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *ItemList) MoveDown() {
	if l.selected < len(l.items)-1 {
		l.selected++
	}
}

// SetDimensions sets the component dimensions.
func (l *ItemList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Count returns the number of items.
func (l *ItemList) Count() int {
	return len(l.items)
}

// IsEmpty returns whether the list is empty.
func (l *ItemList) IsEmpty() bool {
	return len(l.items) == 0
}
