package driving

import "github.com/custodia-labs/clipscope/internal/core/domain"

// HistoryService is the bounded, newest-first record of parse results.
type HistoryService interface {
	// Append records a result and returns its entry.
	Append(result domain.ParseResult) domain.HistoryEntry

	// List returns entries newest first.
	List() []domain.HistoryEntry

	// Get returns an entry by ID.
	Get(id string) (domain.HistoryEntry, error)

	// Clear removes all entries, keeping capacity and visibility.
	Clear()

	// ToggleVisible flips panel visibility and returns the new value.
	ToggleVisible() bool

	// Visible reports panel visibility.
	Visible() bool

	// Capacity returns the maximum number of entries kept.
	Capacity() int
}
