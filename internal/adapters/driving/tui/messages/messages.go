// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/clipscope/internal/core/domain"
)

// ParseCompleted carries the result of a read, paste or drop cycle.
type ParseCompleted struct {
	Result domain.ParseResult
}

// CopyCompleted carries the result of a write-back.
type CopyCompleted struct {
	Result domain.CopyResult
}

// HistoryRestored carries a restored history result.
type HistoryRestored struct {
	ID     string
	Result domain.ParseResult
	Err    error
}

// WatchToggled reports the clipboard watcher state.
type WatchToggled struct {
	Active bool
	Err    error
}

// WatchStopped reports that the clipboard watcher ended on its own.
type WatchStopped struct {
	Err error
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewItems is the item list and detail pane.
	ViewItems ViewType = iota
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewItems:
		return "items"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
