// Package memory provides an in-process clipboard. It backs tests and the
// "none" clipboard tool, and records every call it receives.
package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/clipscope/internal/adapters/driven/transfer"
	"github.com/custodia-labs/clipscope/internal/core/domain"
	"github.com/custodia-labs/clipscope/internal/core/ports/driven"
)

// Ensure Clipboard implements the interfaces.
var (
	_ driven.ClipboardReader  = (*Clipboard)(nil)
	_ driven.StructuredWriter = (*Clipboard)(nil)
	_ driven.LegacyWriter     = (*Clipboard)(nil)
)

// Clipboard holds one set of MIME-typed contents.
type Clipboard struct {
	mu       sync.Mutex
	contents map[string][]byte
	order    []string

	// Failure injection; nil means the call succeeds.
	ReadErr     error
	ReadTextErr error
	WriteErr    error
	LegacyErr   error

	calls Calls
}

// Calls counts the calls a Clipboard has received.
type Calls struct {
	Read      int
	ReadText  int
	Write     int
	WriteText int
}

// Total returns the number of calls of any kind.
func (c Calls) Total() int {
	return c.Read + c.ReadText + c.Write + c.WriteText
}

// New creates an empty clipboard.
func New() *Clipboard {
	return &Clipboard{contents: make(map[string][]byte)}
}

// Put replaces the clipboard contents with a single type.
func (c *Clipboard) Put(mimeType string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.contents = map[string][]byte{mimeType: data}
	c.order = []string{mimeType}
}

// Add advertises another type alongside the current contents.
func (c *Clipboard) Add(mimeType string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.contents[mimeType]; !ok {
		c.order = append(c.order, mimeType)
	}
	c.contents[mimeType] = data
}

// Content returns the data stored for mimeType.
func (c *Clipboard) Content(mimeType string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.contents[mimeType]
	return d, ok
}

// Calls returns a snapshot of the call counters.
func (c *Clipboard) Calls() Calls {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

// Read returns the contents as a single clipboard item,
// or no items when the clipboard is empty.
func (c *Clipboard) Read(ctx context.Context) ([]driven.ClipboardItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls.Read++

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if c.ReadErr != nil {
		return nil, c.ReadErr
	}
	if len(c.order) == 0 {
		return nil, nil
	}

	item := transfer.NewClipboardItem()
	for _, t := range c.order {
		item.Add(t, transfer.NewBlob(t, c.contents[t]))
	}
	return []driven.ClipboardItem{item}, nil
}

// ReadText returns the text/plain contents.
func (c *Clipboard) ReadText(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls.ReadText++

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if c.ReadTextErr != nil {
		return "", c.ReadTextErr
	}
	return string(c.contents[string(domain.FormatPlain)]), nil
}

// Write replaces the contents with a single structured item.
func (c *Clipboard) Write(ctx context.Context, item domain.WriteItem) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls.Write++

	if err := ctx.Err(); err != nil {
		return err
	}
	if c.WriteErr != nil {
		return c.WriteErr
	}
	c.contents = map[string][]byte{item.Format.String(): item.Data}
	c.order = []string{item.Format.String()}
	return nil
}

// WriteText replaces the contents with plain text.
func (c *Clipboard) WriteText(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls.WriteText++

	if c.LegacyErr != nil {
		return c.LegacyErr
	}
	c.contents = map[string][]byte{string(domain.FormatPlain): []byte(text)}
	c.order = []string{string(domain.FormatPlain)}
	return nil
}
