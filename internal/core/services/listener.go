package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/clipscope/internal/core/domain"
	"github.com/custodia-labs/clipscope/internal/core/ports/driven"
	"github.com/custodia-labs/clipscope/internal/core/ports/driving"
	"github.com/custodia-labs/clipscope/internal/logger"
)

// Ensure ListenerRegistry and Subscription implement the interfaces.
var (
	_ driving.ListenerService = (*ListenerRegistry)(nil)
	_ driving.Subscription    = (*Subscription)(nil)
)

// ListenerRegistry runs at most one listener per mode. Each registry is an
// independent value; registries never share subscriptions.
type ListenerRegistry struct {
	inspector driving.InspectorService

	mu   sync.Mutex
	subs map[domain.ListenMode]*Subscription
}

// NewListenerRegistry creates a registry that parses payloads with inspector.
func NewListenerRegistry(inspector driving.InspectorService) *ListenerRegistry {
	return &ListenerRegistry{
		inspector: inspector,
		subs:      make(map[domain.ListenMode]*Subscription),
	}
}

// Enable starts source and calls cb with the result of every payload it
// emits. Any listener already registered for the source's mode is stopped
// first. cb runs on the listener's goroutine and must not call back into
// the registry or the subscription synchronously.
func (r *ListenerRegistry) Enable(ctx context.Context, source driven.EventSource, cb func(domain.ParseResult)) (driving.Subscription, error) {
	if source == nil {
		return nil, fmt.Errorf("event source: %w", domain.ErrInvalidInput)
	}
	if r.inspector == nil {
		return nil, fmt.Errorf("inspector: %w", domain.ErrInvalidInput)
	}
	mode := source.Mode()
	origin, err := originFor(mode)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if old := r.subs[mode]; old != nil {
		old.stop()
	}

	runCtx, cancel := context.WithCancel(ctx)
	sub := &Subscription{
		mode:     mode,
		cancel:   cancel,
		done:     make(chan struct{}),
		registry: r,
	}
	r.subs[mode] = sub

	log := logger.With("listener")
	go func() {
		defer close(sub.done)
		err := source.Run(runCtx, func(p driven.Payload) {
			if runCtx.Err() != nil {
				return
			}
			result := r.inspector.Parse(runCtx, p, origin)
			if cb != nil && runCtx.Err() == nil {
				cb(result)
			}
		})
		if err != nil && runCtx.Err() == nil {
			log.Warn("%s listener stopped: %v", mode, err)
		}
		sub.setErr(err)
	}()

	return sub, nil
}

// Disable stops the listener for mode. It is a no-op when none is active.
func (r *ListenerRegistry) Disable(mode domain.ListenMode) {
	r.mu.Lock()
	sub := r.subs[mode]
	delete(r.subs, mode)
	r.mu.Unlock()

	if sub != nil {
		sub.stop()
	}
}

// Active reports whether a listener is registered for mode.
func (r *ListenerRegistry) Active(mode domain.ListenMode) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.subs[mode] != nil
}

// forget removes sub if it is still the registered listener for its mode.
func (r *ListenerRegistry) forget(sub *Subscription) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.subs[sub.mode] == sub {
		delete(r.subs, sub.mode)
	}
}

// Subscription is the handle of one running listener.
type Subscription struct {
	mode     domain.ListenMode
	cancel   context.CancelFunc
	done     chan struct{}
	registry *ListenerRegistry

	mu  sync.Mutex
	err error
}

// Mode returns the listener mode.
func (s *Subscription) Mode() domain.ListenMode {
	return s.mode
}

// Disable stops the listener and waits for its source to return.
// Calling it more than once is safe.
func (s *Subscription) Disable() {
	s.stop()
	s.registry.forget(s)
}

// Done is closed once the source has returned.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

// Err returns the error the source returned, if any.
func (s *Subscription) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *Subscription) stop() {
	s.cancel()
	<-s.done
}

func (s *Subscription) setErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

func originFor(mode domain.ListenMode) (domain.Origin, error) {
	switch mode {
	case domain.ListenPaste:
		return domain.OriginPaste, nil
	case domain.ListenDrop:
		return domain.OriginDrop, nil
	default:
		return "", fmt.Errorf("listener mode %q: %w", mode, domain.ErrInvalidInput)
	}
}
