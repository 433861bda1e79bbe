package services

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/custodia-labs/clipscope/internal/core/domain"
	"github.com/custodia-labs/clipscope/internal/core/ports/driven"
	"github.com/custodia-labs/clipscope/internal/core/ports/driving"
	"github.com/custodia-labs/clipscope/internal/logger"
)

// Ensure Inspector implements the interface.
var _ driving.InspectorService = (*Inspector)(nil)

// Inspector runs parse cycles: payload, extract, normalise, record.
//
// Every cycle is numbered when it starts. Current only moves forward, so a
// slow cycle that finishes after a newer one is returned to its caller and
// recorded in history but does not replace the current result.
type Inspector struct {
	reader     driven.ClipboardReader
	extractor  *Extractor
	normalizer *Normalizer
	history    driving.HistoryService

	seq atomic.Uint64

	mu         sync.RWMutex
	current    domain.ParseResult
	hasCurrent bool
	published  uint64

	now func() time.Time
	log logger.Logger
}

// NewInspector creates an inspector. reader and history may be nil.
func NewInspector(
	reader driven.ClipboardReader,
	extractor *Extractor,
	normalizer *Normalizer,
	history driving.HistoryService,
) *Inspector {
	if extractor == nil {
		extractor = NewExtractor(nil, 0)
	}
	if normalizer == nil {
		normalizer = NewNormalizer(nil, nil)
	}
	return &Inspector{
		reader:     reader,
		extractor:  extractor,
		normalizer: normalizer,
		history:    history,
		now:        time.Now,
		log:        logger.With("inspector"),
	}
}

// Read parses the system clipboard.
func (s *Inspector) Read(ctx context.Context) domain.ParseResult {
	seq := s.seq.Add(1)
	logger.Section("Read clipboard")

	entries, err := s.readEntries(ctx)
	if err != nil {
		return s.finish(s.failure(seq, domain.OriginRead, err))
	}
	return s.finish(s.success(ctx, seq, domain.OriginRead, entries))
}

// Parse parses a paste or drop payload. A paste that yields nothing falls
// back to reading the clipboard directly; a drop does not. A failed
// fallback read still completes the cycle, with no items.
func (s *Inspector) Parse(ctx context.Context, payload driven.Payload, origin domain.Origin) domain.ParseResult {
	seq := s.seq.Add(1)
	logger.Section(fmt.Sprintf("Parse %s", origin))

	entries := s.extractor.Extract(ctx, payload)
	if len(entries) == 0 && origin == domain.OriginPaste && s.reader != nil {
		s.log.Debug("paste payload empty, reading clipboard")
		fallback, err := s.readEntries(ctx)
		if err != nil {
			s.log.Debug("paste fallback read: %v", err)
		}
		entries = fallback
	}
	return s.finish(s.success(ctx, seq, origin, entries))
}

// Current returns the result of the newest cycle that has completed.
func (s *Inspector) Current() (domain.ParseResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, s.hasCurrent
}

// Restore makes a recorded result current again.
func (s *Inspector) Restore(id string) (domain.ParseResult, error) {
	if s.history == nil {
		return domain.ParseResult{}, fmt.Errorf("history entry %s: %w", id, domain.ErrNotFound)
	}
	entry, err := s.history.Get(id)
	if err != nil {
		return domain.ParseResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = entry.Result
	s.hasCurrent = true
	return entry.Result, nil
}

// readEntries reads every clipboard item. When the structured read yields
// nothing, the plain-text read is tried as a declared text/plain entry.
func (s *Inspector) readEntries(ctx context.Context) ([]domain.RawEntry, error) {
	if s.reader == nil {
		return nil, domain.ErrUnsupportedPlatform
	}
	items, err := s.reader.Read(ctx)
	if err != nil {
		return nil, err
	}

	var entries []domain.RawEntry
	for _, item := range items {
		entries = append(entries, s.extractor.Extract(ctx, item)...)
	}
	if len(entries) > 0 {
		return entries, nil
	}

	text, err := s.reader.ReadText(ctx)
	if err != nil {
		s.log.Debug("plain-text read failed: %v", err)
		return entries, nil
	}
	if text != "" {
		entries = append(entries, domain.RawEntry{
			Channel:  domain.ChannelDeclaredType,
			MIMEHint: string(domain.KindPlainText),
			Text:     text,
		})
	}
	return entries, nil
}

func (s *Inspector) success(ctx context.Context, seq uint64, origin domain.Origin, entries []domain.RawEntry) domain.ParseResult {
	items := s.normalizer.Normalize(ctx, entries)
	return domain.ParseResult{
		Success:   true,
		Message:   fmt.Sprintf("Parsed %d %s from %s", len(items), plural(len(items), "item", "items"), sourceName(origin)),
		Items:     items,
		Timestamp: s.now(),
		Origin:    origin,
		Sequence:  seq,
	}
}

func (s *Inspector) failure(seq uint64, origin domain.Origin, err error) domain.ParseResult {
	s.log.Debug("%s failed: %v", origin, err)
	return domain.ParseResult{
		Success:   false,
		Message:   fmt.Sprintf("Parse failed: %v", err),
		Items:     []domain.DataItem{},
		Timestamp: s.now(),
		Origin:    origin,
		Sequence:  seq,
	}
}

// finish publishes r as current unless a newer cycle already completed,
// and records successful results in history.
func (s *Inspector) finish(r domain.ParseResult) domain.ParseResult {
	s.mu.Lock()
	if r.Sequence > s.published {
		s.current = r
		s.hasCurrent = true
		s.published = r.Sequence
	} else {
		s.log.Debug("cycle %d finished after cycle %d, not made current", r.Sequence, s.published)
	}
	s.mu.Unlock()

	if r.Success && s.history != nil {
		s.history.Append(r)
	}
	return r
}

func sourceName(origin domain.Origin) string {
	switch origin {
	case domain.OriginPaste:
		return "paste"
	case domain.OriginDrop:
		return "drop"
	default:
		return "clipboard"
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
