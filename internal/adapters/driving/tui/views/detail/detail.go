// Package detail provides the item detail pane for the TUI.
package detail

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/clipscope/internal/adapters/driving/render"
	"github.com/custodia-labs/clipscope/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/clipscope/internal/core/domain"
)

// maxContentLines bounds the content preview section.
const maxContentLines = 200

// View shows the metadata and content of one item.
type View struct {
	styles *styles.Styles

	item         *domain.DataItem
	scrollOffset int
	width        int
	height       int
}

// NewView creates a new detail view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles: s,
		width:  40,
		height: 10,
	}
}

// SetItem sets the item to display and resets scrolling.
func (v *View) SetItem(item *domain.DataItem) {
	v.item = item
	v.scrollOffset = 0
}

// Item returns the displayed item.
func (v *View) Item() *domain.DataItem {
	return v.item
}

// ScrollUp scrolls the content up by one line.
func (v *View) ScrollUp() {
	if v.scrollOffset > 0 {
		v.scrollOffset--
	}
}

// ScrollDown scrolls the content down by one line.
func (v *View) ScrollDown() {
	if v.scrollOffset < v.maxScrollOffset() {
		v.scrollOffset++
	}
}

// ScrollOffset returns the current scroll offset.
func (v *View) ScrollOffset() int {
	return v.scrollOffset
}

// visibleLines returns the number of content lines that fit.
func (v *View) visibleLines() int {
	// Title, separator and scroll indicator.
	available := v.height - 4
	if available < 1 {
		available = 1
	}
	return available
}

func (v *View) maxScrollOffset() int {
	maxOffset := len(v.buildContent()) - v.visibleLines()
	if maxOffset < 0 {
		maxOffset = 0
	}
	return maxOffset
}

// buildContent builds the metadata and content lines.
func (v *View) buildContent() []string {
	if v.item == nil {
		return nil
	}

	lines := render.DetailLines(render.Item(*v.item))

	content := v.item.Text
	if html, ok := v.item.Metadata.HTML(); ok && html.Markdown != "" {
		content = html.Markdown
	}
	if content == "" {
		return lines
	}

	lines = append(lines, "", "Content:")
	body := strings.Split(strings.TrimRight(content, "\n"), "\n")
	if len(body) > maxContentLines {
		body = append(body[:maxContentLines], fmt.Sprintf("… %d more lines", len(body)-maxContentLines))
	}
	for _, line := range body {
		lines = append(lines, "  "+render.Snippet(strings.ReplaceAll(line, "\t", "    "), v.width-4))
	}
	return lines
}

// View renders the detail pane.
func (v *View) View() string {
	var b strings.Builder

	if v.item == nil {
		b.WriteString(v.styles.Title.Render("Details"))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Muted.Render("Nothing selected"))
		return b.String()
	}

	b.WriteString(v.styles.Title.Render(v.item.Label()))
	b.WriteString("  ")
	b.WriteString(v.styles.RenderKind(v.item.Kind))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", max(min(v.width-2, 60), 1)))
	b.WriteString("\n")

	lines := v.buildContent()
	visible := v.visibleLines()
	for i := v.scrollOffset; i < len(lines) && i < v.scrollOffset+visible; i++ {
		b.WriteString(v.renderLine(lines[i]))
		b.WriteString("\n")
	}

	if len(lines) > visible {
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("[Line %d-%d of %d]",
			v.scrollOffset+1,
			min(v.scrollOffset+visible, len(lines)),
			len(lines))))
	}

	return b.String()
}

// renderLine styles a content line by its shape.
func (v *View) renderLine(line string) string {
	switch {
	case line == "Content:":
		return v.styles.Subtitle.Render(line)
	case strings.HasPrefix(line, "  "), line == "":
		return v.styles.Normal.Render(line)
	}

	key, value, ok := strings.Cut(line, ": ")
	if !ok {
		return v.styles.Normal.Render(line)
	}
	return v.styles.Label.Render(key+":") + v.styles.Normal.Render(value)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	if v.scrollOffset > v.maxScrollOffset() {
		v.scrollOffset = v.maxScrollOffset()
	}
}
