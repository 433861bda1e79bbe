package driving

import (
	"context"

	"github.com/custodia-labs/clipscope/internal/core/domain"
	"github.com/custodia-labs/clipscope/internal/core/ports/driven"
)

// InspectorService runs parse cycles over clipboard reads and paste or drop payloads.
// Failures are reported through ParseResult, never as errors.
type InspectorService interface {
	// Read parses the current system clipboard.
	Read(ctx context.Context) domain.ParseResult

	// Parse parses a paste or drop payload.
	Parse(ctx context.Context, payload driven.Payload, origin domain.Origin) domain.ParseResult

	// Current returns the newest completed result, if any.
	Current() (domain.ParseResult, bool)

	// Restore makes a recorded history entry's result current.
	Restore(id string) (domain.ParseResult, error)
}

// ClassifierService exposes classification and analysis of ad-hoc content.
type ClassifierService interface {
	// ClassifyText returns the kind of a text sample declared with mimeType.
	ClassifyText(mimeType, text string) domain.DataKind

	// AnalyzeText classifies and analyses a text sample.
	AnalyzeText(mimeType, text string) (domain.DataKind, domain.Metadata)
}
