package driven

import (
	"context"

	"github.com/custodia-labs/clipscope/internal/core/domain"
)

// AnalysisInput is the content handed to a StructureAnalyser.
type AnalysisInput struct {
	// Kind is the classified kind of the content.
	Kind domain.DataKind

	// MIMEHint is the declared MIME type.
	MIMEHint string

	// Text is the decoded text, empty for binary input.
	Text string

	// Data is the raw bytes for binary input, nil for text.
	Data []byte
}

// StructureAnalyser produces kind-specific structure for content.
// Each analyser handles specific kinds (e.g., HTML, JSON).
type StructureAnalyser interface {
	// Name returns the analyser name.
	Name() string

	// SupportedKinds returns the kinds this analyser handles.
	SupportedKinds() []domain.DataKind

	// Priority returns the selection priority (higher = preferred).
	Priority() int

	// Analyse returns the structure of the input.
	// Errors are swallowed by the caller and degrade metadata.
	Analyse(ctx context.Context, in AnalysisInput) (domain.Details, error)
}
