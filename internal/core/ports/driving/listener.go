package driving

import (
	"context"

	"github.com/custodia-labs/clipscope/internal/core/domain"
	"github.com/custodia-labs/clipscope/internal/core/ports/driven"
)

// Subscription is an active listener. Disable is the only way to release it.
type Subscription interface {
	// Mode returns the listener mode.
	Mode() domain.ListenMode

	// Disable stops the listener. Safe to call more than once.
	Disable()

	// Done is closed once the listener has stopped.
	Done() <-chan struct{}

	// Err returns the source's terminal error after Done is closed.
	Err() error
}

// ListenerService manages paste and drop listeners.
type ListenerService interface {
	// Enable starts a listener for the source's mode, first tearing down any listener
	// already registered for that mode.
	Enable(ctx context.Context, source driven.EventSource, cb func(domain.ParseResult)) (Subscription, error)

	// Disable stops the listener for mode. Safe when none is active.
	Disable(mode domain.ListenMode)

	// Active reports whether a listener is registered for mode.
	Active(mode domain.ListenMode) bool
}
