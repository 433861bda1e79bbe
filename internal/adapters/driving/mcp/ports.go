package mcp

import (
	"github.com/custodia-labs/clipscope/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Inspector runs clipboard parse cycles.
	Inspector driving.InspectorService

	// Classifier classifies and analyses ad-hoc text.
	Classifier driving.ClassifierService

	// WriteBack copies text to the clipboard. Optional.
	WriteBack driving.WriteBackService

	// History records parse results. Optional.
	History driving.HistoryService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Inspector == nil {
		return ErrMissingInspectorService
	}
	if p.Classifier == nil {
		return ErrMissingClassifierService
	}
	return nil
}
