package services

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/custodia-labs/clipscope/internal/core/domain"
	"github.com/custodia-labs/clipscope/internal/core/ports/driven"
	"github.com/custodia-labs/clipscope/internal/core/ports/driving"
)

// Ensure HistoryLedger implements the interface.
var _ driving.HistoryService = (*HistoryLedger)(nil)

// HistoryLedger is a bounded, newest-first record of parse results.
// It keeps everything in memory; nothing survives the process.
type HistoryLedger struct {
	mu       sync.RWMutex
	entries  []domain.HistoryEntry
	capacity int
	visible  bool
	onEvict  func(domain.HistoryEntry)
}

// NewHistoryLedger creates a ledger holding at most capacity entries.
// A non-positive capacity uses domain.DefaultHistoryCapacity.
func NewHistoryLedger(capacity int, visible bool) *HistoryLedger {
	if capacity <= 0 {
		capacity = domain.DefaultHistoryCapacity
	}
	return &HistoryLedger{
		capacity: capacity,
		visible:  visible,
	}
}

// OnEvict registers fn to be called for every entry dropped by Append or
// Clear. fn runs after the ledger lock is released.
func (h *HistoryLedger) OnEvict(fn func(domain.HistoryEntry)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onEvict = fn
}

// Append prepends result and drops the oldest entries beyond capacity.
// Identical consecutive results are all recorded.
func (h *HistoryLedger) Append(result domain.ParseResult) domain.HistoryEntry {
	entry := domain.HistoryEntry{
		ID:        newHistoryID(),
		Timestamp: result.Timestamp,
		Result:    result,
		Summary:   domain.Summarise(result),
	}

	h.mu.Lock()
	h.entries = append([]domain.HistoryEntry{entry}, h.entries...)
	var evicted []domain.HistoryEntry
	if len(h.entries) > h.capacity {
		evicted = append(evicted, h.entries[h.capacity:]...)
		clear(h.entries[h.capacity:])
		h.entries = h.entries[:h.capacity]
	}
	onEvict := h.onEvict
	h.mu.Unlock()

	notify(onEvict, evicted)
	return entry
}

// List returns a copy of the entries, newest first.
func (h *HistoryLedger) List() []domain.HistoryEntry {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]domain.HistoryEntry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Get returns the entry with the given ID.
func (h *HistoryLedger) Get(id string) (domain.HistoryEntry, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, e := range h.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return domain.HistoryEntry{}, fmt.Errorf("history entry %s: %w", id, domain.ErrNotFound)
}

// Clear removes all entries. Capacity and visibility are unchanged.
func (h *HistoryLedger) Clear() {
	h.mu.Lock()
	evicted := h.entries
	h.entries = nil
	onEvict := h.onEvict
	h.mu.Unlock()

	notify(onEvict, evicted)
}

// ToggleVisible flips the visibility flag and returns the new value.
func (h *HistoryLedger) ToggleVisible() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.visible = !h.visible
	return h.visible
}

// Visible reports the visibility flag.
func (h *HistoryLedger) Visible() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.visible
}

// Capacity returns the maximum number of entries kept.
func (h *HistoryLedger) Capacity() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.capacity
}

// ReleasePreviews returns an eviction hook that frees the preview handles
// held by an entry's items.
func ReleasePreviews(store driven.PreviewStore) func(domain.HistoryEntry) {
	return func(e domain.HistoryEntry) {
		if store == nil {
			return
		}
		for i := range e.Result.Items {
			if h := e.Result.Items[i].PreviewHandle; h != "" {
				store.Release(h)
			}
		}
	}
}

func notify(fn func(domain.HistoryEntry), entries []domain.HistoryEntry) {
	if fn == nil {
		return
	}
	for _, e := range entries {
		fn(e)
	}
}

func newHistoryID() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return "history_" + id.String()
}
