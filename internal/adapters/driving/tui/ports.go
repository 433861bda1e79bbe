// Package tui provides an interactive terminal user interface for clipscope.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/clipscope/internal/core/ports/driven"
	"github.com/custodia-labs/clipscope/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Inspector runs parse cycles over reads, pastes and drops.
	Inspector driving.InspectorService

	// History records every parse result.
	History driving.HistoryService

	// WriteBack copies items back to the clipboard. Optional.
	WriteBack driving.WriteBackService

	// Listeners runs the clipboard watcher. Optional.
	Listeners driving.ListenerService

	// PasteSource builds the clipboard watch source. Required with Listeners.
	PasteSource func() driven.EventSource
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Inspector == nil {
		return ErrMissingInspectorService
	}
	if p.History == nil {
		return ErrMissingHistoryService
	}
	return nil
}

// CanWatch reports whether the clipboard watcher can be enabled.
func (p *Ports) CanWatch() bool {
	return p.Listeners != nil && p.PasteSource != nil
}
