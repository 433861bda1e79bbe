// Package status renders the one-line status bar at the bottom of the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/clipscope/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/clipscope/internal/adapters/driving/tui/styles"
)

// State is what the bar is currently reporting.
type State string

const (
	StateReady   State = "ready"
	StateReading State = "reading"
	StateParsed  State = "parsed"
	StateCopied  State = "copied"
	StateError   State = "error"
	StateHelp    State = "help"
	StateHistory State = "history"
)

const hintSeparator = " | "

// Bar shows the current state on the left and key hints on the right.
// Hints that do not fit the width are dropped from the end.
type Bar struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	state     State
	message   string
	itemCount int
	watching  bool
	width     int
}

// NewBar creates a bar in the ready state. Nil arguments use the defaults.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &Bar{styles: s, keymap: km, state: StateReady, width: 80}
}

// View renders the bar at its current width.
func (s *Bar) View() string {
	left := s.status()
	if s.watching {
		left = s.styles.Warning.Render("● watching") + "  " + left
	}

	room := s.width - lipgloss.Width(left) - 1
	right := s.hints(room)
	gap := max(s.width-lipgloss.Width(left)-lipgloss.Width(right), 1)

	return s.styles.StatusBar.Width(s.width).Render(left + strings.Repeat(" ", gap) + right)
}

func (s *Bar) status() string {
	switch s.state {
	case StateReading:
		return s.styles.Muted.Render("Reading...")
	case StateError:
		if s.message == "" {
			return s.styles.Error.Render("Error")
		}
		return s.styles.Error.Render("Error: " + s.message)
	case StateCopied:
		return s.styles.Success.Render(s.message)
	case StateHelp:
		return s.styles.Normal.Render("Help")
	case StateParsed, StateHistory:
		if s.message != "" {
			return s.styles.Normal.Render(s.message)
		}
		noun := "items"
		if s.itemCount == 1 {
			noun = "item"
		}
		return s.styles.Normal.Render(fmt.Sprintf("%d %s", s.itemCount, noun))
	default:
		return s.styles.Muted.Render("Ready")
	}
}

// hints joins as many key hints as fit in room columns.
func (s *Bar) hints(room int) string {
	bindings := s.keymap.ShortHelp()
	if s.state == StateHistory {
		bindings = s.keymap.HistoryHelp()
	}

	var b strings.Builder
	for _, binding := range bindings {
		h := binding.Help()
		hint := h.Key + ": " + h.Desc
		need := len(hint)
		if b.Len() > 0 {
			need += len(hintSeparator)
		}
		if lipgloss.Width(b.String())+need > room {
			break
		}
		if b.Len() > 0 {
			b.WriteString(hintSeparator)
		}
		b.WriteString(hint)
	}
	if b.Len() == 0 {
		return ""
	}
	return s.styles.Muted.Render(b.String())
}

// SetState sets the current state.
func (s *Bar) SetState(state State) { s.state = state }

// State returns the current state.
func (s *Bar) State() State { return s.state }

// SetMessage replaces the text shown for the current state.
func (s *Bar) SetMessage(message string) { s.message = message }

// Message returns the current message.
func (s *Bar) Message() string { return s.message }

// SetItemCount sets the count shown when a parsed state has no message.
func (s *Bar) SetItemCount(count int) { s.itemCount = count }

// ItemCount returns the item count.
func (s *Bar) ItemCount() int { return s.itemCount }

// SetWatching toggles the watch indicator.
func (s *Bar) SetWatching(watching bool) { s.watching = watching }

// Watching reports whether the watch indicator is shown.
func (s *Bar) Watching() bool { return s.watching }

// SetWidth sets the rendered width in columns.
func (s *Bar) SetWidth(width int) { s.width = width }

// Width returns the rendered width.
func (s *Bar) Width() int { return s.width }

// Clear returns to the ready state. The watch indicator is kept.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
	s.itemCount = 0
}
