package driven

import (
	"context"

	"github.com/custodia-labs/clipscope/internal/core/domain"
)

// EventSource produces payloads from paste or drop events.
type EventSource interface {
	// Mode returns the listener mode this source serves.
	Mode() domain.ListenMode

	// Run emits payloads until ctx is cancelled or the source fails.
	// Run returns nil on cancellation.
	Run(ctx context.Context, emit func(Payload)) error
}
