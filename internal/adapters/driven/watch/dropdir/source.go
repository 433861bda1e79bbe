// Package dropdir turns files landing in a directory into drop payloads.
package dropdir

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/clipscope/internal/adapters/driven/transfer"
	"github.com/custodia-labs/clipscope/internal/core/domain"
	"github.com/custodia-labs/clipscope/internal/core/ports/driven"
	"github.com/custodia-labs/clipscope/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.EventSource = (*Source)(nil)

// DefaultSettle is how long a file must stay unchanged before it is emitted.
const DefaultSettle = 150 * time.Millisecond

// Source emits one drop payload per file written into a directory.
type Source struct {
	dir    string
	settle time.Duration
	log    logger.Logger
}

// Option configures a Source.
type Option func(*Source)

// WithSettle sets the quiet period that must follow the last write.
func WithSettle(d time.Duration) Option {
	return func(s *Source) {
		if d > 0 {
			s.settle = d
		}
	}
}

// New creates a source watching dir.
func New(dir string, opts ...Option) *Source {
	s := &Source{
		dir:    dir,
		settle: DefaultSettle,
		log:    logger.With("dropdir"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Mode implements driven.EventSource.
func (s *Source) Mode() domain.ListenMode {
	return domain.ListenDrop
}

// Dir returns the watched directory.
func (s *Source) Dir() string {
	return s.dir
}

// Run watches the directory until ctx is cancelled. Files already present
// when Run starts are ignored. Hidden files and directories are skipped.
func (s *Source) Run(ctx context.Context, emit func(driven.Payload)) error {
	if s.dir == "" {
		return fmt.Errorf("drop directory: %w", domain.ErrInvalidInput)
	}
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("create drop directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(s.dir); err != nil {
		return fmt.Errorf("watch %s: %w", s.dir, err)
	}
	s.log.Info("watching %s", s.dir)

	settle := newDebouncer(ctx, s.settle)
	defer settle.stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			switch {
			case event.Has(fsnotify.Create), event.Has(fsnotify.Write):
				settle.touch(event.Name)
			case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
				settle.cancel(event.Name)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.log.Warn("watch error: %v", err)

		case done := <-settle.ready:
			if !settle.fired(done) {
				continue
			}
			if payload := s.payloadFor(done.path); payload != nil {
				emit(payload)
			}
		}
	}
}

// payloadFor opens path as a single-file drop, or returns nil if the
// path should be ignored.
func (s *Source) payloadFor(path string) driven.Payload {
	if strings.HasPrefix(filepath.Base(path), ".") {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil
	}
	f, err := transfer.OpenFile(path)
	if err != nil {
		s.log.Warn("open %s: %v", path, err)
		return nil
	}
	s.log.Debug("dropped %s (%s)", f.Name(), f.Type())
	return transfer.NewDataTransfer().AddFile(f)
}
