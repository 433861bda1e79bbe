package driving

import (
	"context"

	"github.com/custodia-labs/clipscope/internal/core/domain"
)

// Capabilities reports which write-back tiers are available.
type Capabilities struct {
	Structured bool
	Legacy     bool
	Read       bool
}

// WriteBackService copies text to the system clipboard.
type WriteBackService interface {
	// WriteBack copies text in the requested format, degrading to plain text
	// when the structured tier is unavailable.
	WriteBack(ctx context.Context, text string, format domain.TextFormat) domain.CopyResult

	// Capabilities reports which clipboard mechanisms are wired.
	Capabilities() Capabilities
}
