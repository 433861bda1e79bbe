package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Origin identifies what triggered a parse cycle.
type Origin string

// Parse cycle origins.
const (
	OriginRead  Origin = "read"
	OriginPaste Origin = "paste"
	OriginDrop  Origin = "drop"
)

// ParseResult is one complete extraction cycle's outcome.
// Success is false only when the whole read could not be attempted.
type ParseResult struct {
	// Success reports whether the read was attempted and completed.
	Success bool

	// Message is a human-readable summary or failure reason.
	Message string

	// Items are the classified entries, in channel order.
	Items []DataItem

	// Timestamp is when the cycle completed.
	Timestamp time.Time

	// Origin is what triggered the cycle.
	Origin Origin

	// Sequence is the monotonic cycle number assigned at start.
	Sequence uint64
}

// TimestampMs returns the completion time in Unix milliseconds.
func (r ParseResult) TimestampMs() int64 {
	return r.Timestamp.UnixMilli()
}

// Kinds returns the distinct item kinds in first-seen order.
func (r ParseResult) Kinds() []DataKind {
	seen := make(map[DataKind]bool, len(r.Items))
	var kinds []DataKind
	for i := range r.Items {
		if !seen[r.Items[i].Kind] {
			seen[r.Items[i].Kind] = true
			kinds = append(kinds, r.Items[i].Kind)
		}
	}
	return kinds
}

// TotalBytes sums the byte size of all items.
func (r ParseResult) TotalBytes() int64 {
	var total int64
	for i := range r.Items {
		total += r.Items[i].ByteSize
	}
	return total
}

// WriteTier identifies which write-back mechanism produced a result.
type WriteTier string

// Write tiers.
const (
	TierNone       WriteTier = "none"
	TierStructured WriteTier = "structured"
	TierLegacy     WriteTier = "legacy"
)

// WriteItem is a single structured clipboard write.
type WriteItem struct {
	Format TextFormat
	Data   []byte
}

// CopyResult is the outcome of a write-back.
type CopyResult struct {
	// Success reports whether some tier wrote the clipboard.
	Success bool

	// Message is suitable for a status toast.
	Message string

	// Tier is the mechanism that produced this result.
	Tier WriteTier

	// Downgraded is true when HTML was requested but plain text was written.
	Downgraded bool

	// Err is the failure cause when Success is false.
	Err error
}

// HistoryEntry records one past parse result.
type HistoryEntry struct {
	// ID is unique within the process.
	ID string

	// Timestamp is the result's timestamp.
	Timestamp time.Time

	// Result is the recorded parse result.
	Result ParseResult

	// Summary is a one-line description.
	Summary string
}

// Summarise builds the history summary line for a result.
func Summarise(r ParseResult) string {
	noun := "items"
	if len(r.Items) == 1 {
		noun = "item"
	}
	kinds := r.Kinds()
	if len(kinds) == 0 {
		return fmt.Sprintf("Parsed %d %s", len(r.Items), noun)
	}
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	sort.Strings(names)
	return fmt.Sprintf("Parsed %d %s (%s)", len(r.Items), noun, strings.Join(names, ", "))
}
