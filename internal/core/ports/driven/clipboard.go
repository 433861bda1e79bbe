package driven

import (
	"context"

	"github.com/custodia-labs/clipscope/internal/core/domain"
)

// ClipboardReader reads the system clipboard.
type ClipboardReader interface {
	// Read returns the clipboard contents as MIME-typed items.
	Read(ctx context.Context) ([]ClipboardItem, error)

	// ReadText returns the clipboard contents as plain text.
	ReadText(ctx context.Context) (string, error)
}

// StructuredWriter writes a single MIME-tagged item to the clipboard.
// This is the preferred write-back tier.
type StructuredWriter interface {
	Write(ctx context.Context, item domain.WriteItem) error
}

// LegacyWriter copies plain text to the clipboard.
// This is the fallback write-back tier and supports plain text only.
type LegacyWriter interface {
	WriteText(text string) error
}

// PreviewStore hands out preview handles for image payloads.
// Handles are released by the caller; the store never expires them.
type PreviewStore interface {
	// Allocate registers the blob and returns its handle.
	Allocate(b Blob) string

	// Get returns the blob behind a handle.
	Get(handle string) (Blob, bool)

	// Release frees a handle. Unknown handles are ignored.
	Release(handle string)
}
