// Package poll watches the clipboard for changes by reading it at a fixed
// rate. Each change is emitted as a paste payload.
package poll

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/clipscope/internal/core/domain"
	"github.com/custodia-labs/clipscope/internal/core/ports/driven"
	"github.com/custodia-labs/clipscope/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.EventSource = (*Source)(nil)

// DefaultInterval is the poll interval when none is configured.
const DefaultInterval = 500 * time.Millisecond

// Source polls a clipboard reader and emits its contents when they change.
type Source struct {
	reader      driven.ClipboardReader
	interval    time.Duration
	emitInitial bool
	log         logger.Logger
}

// Option configures a Source.
type Option func(*Source)

// WithInterval sets the poll interval.
func WithInterval(d time.Duration) Option {
	return func(s *Source) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithInitial makes the first successful read emit even though nothing
// has changed yet.
func WithInitial() Option {
	return func(s *Source) {
		s.emitInitial = true
	}
}

// New creates a source polling reader.
func New(reader driven.ClipboardReader, opts ...Option) *Source {
	s := &Source{
		reader:   reader,
		interval: DefaultInterval,
		log:      logger.With("poll"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Mode implements driven.EventSource.
func (s *Source) Mode() domain.ListenMode {
	return domain.ListenPaste
}

// Run polls until ctx is cancelled. Read failures are logged and retried
// on the next tick.
func (s *Source) Run(ctx context.Context, emit func(driven.Payload)) error {
	if s.reader == nil {
		return domain.ErrUnsupportedPlatform
	}
	limiter := rate.NewLimiter(rate.Every(s.interval), 1)

	var last string
	first := true
	for {
		if err := limiter.Wait(ctx); err != nil {
			// Wait fails only on cancellation or a deadline it cannot meet.
			return nil
		}

		items, err := s.reader.Read(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			s.log.Debug("read: %v", err)
			continue
		}

		fp := fingerprint(ctx, items)
		changed := fp != last
		last = fp
		if first {
			first = false
			if !s.emitInitial {
				continue
			}
		}
		if !changed || fp == "" {
			continue
		}

		s.log.Debug("clipboard changed")
		for _, item := range items {
			emit(item)
		}
	}
}

// fingerprint hashes every advertised type and its bytes. An empty
// clipboard has an empty fingerprint.
func fingerprint(ctx context.Context, items []driven.ClipboardItem) string {
	if len(items) == 0 {
		return ""
	}
	h := sha256.New()
	for _, item := range items {
		for _, t := range item.Types() {
			h.Write([]byte(t))
			h.Write([]byte{0})
			blob, err := item.GetType(ctx, t)
			if err != nil || blob == nil {
				continue
			}
			data, err := blob.Bytes(ctx)
			if err != nil {
				continue
			}
			h.Write(data)
			h.Write([]byte{0})
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}
