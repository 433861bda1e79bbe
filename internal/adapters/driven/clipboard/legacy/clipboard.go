// Package legacy is the plain-text clipboard tier. It relies on
// github.com/atotto/clipboard, which picks whatever text-only tool the
// host offers (xsel, xclip, wl-copy, pbcopy or the Windows API).
package legacy

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/custodia-labs/clipscope/internal/adapters/driven/transfer"
	"github.com/custodia-labs/clipscope/internal/core/domain"
	"github.com/custodia-labs/clipscope/internal/core/ports/driven"
)

// Ensure Clipboard implements the interfaces.
var (
	_ driven.LegacyWriter    = (*Clipboard)(nil)
	_ driven.ClipboardReader = (*Clipboard)(nil)
)

// Hooks into the clipboard library, replaced in tests.
var (
	writeAll    = clipboard.WriteAll
	readAll     = clipboard.ReadAll
	unsupported = func() bool { return clipboard.Unsupported }
)

// Clipboard reads and writes plain text only.
type Clipboard struct{}

// New creates a plain-text clipboard.
func New() *Clipboard {
	return &Clipboard{}
}

// Available reports whether the host has a usable text clipboard.
func (c *Clipboard) Available() bool {
	return !unsupported()
}

// WriteText copies text to the clipboard.
func (c *Clipboard) WriteText(text string) error {
	if unsupported() {
		return domain.ErrUnsupportedPlatform
	}
	if err := writeAll(text); err != nil {
		return fmt.Errorf("write text: %w", err)
	}
	return nil
}

// ReadText returns the clipboard text.
func (c *Clipboard) ReadText(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if unsupported() {
		return "", domain.ErrUnsupportedPlatform
	}
	text, err := readAll()
	if err != nil {
		return "", fmt.Errorf("read text: %w", err)
	}
	return text, nil
}

// Read returns the clipboard text as a single text/plain item, or no
// items when the clipboard is empty.
func (c *Clipboard) Read(ctx context.Context) ([]driven.ClipboardItem, error) {
	text, err := c.ReadText(ctx)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, nil
	}
	mimeType := domain.FormatPlain.String()
	return []driven.ClipboardItem{
		transfer.NewClipboardItem(transfer.NewBlob(mimeType, []byte(text))),
	}, nil
}
