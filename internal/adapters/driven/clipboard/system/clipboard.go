package system

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/clipscope/internal/adapters/driven/transfer"
	"github.com/custodia-labs/clipscope/internal/core/domain"
	"github.com/custodia-labs/clipscope/internal/core/ports/driven"
	"github.com/custodia-labs/clipscope/internal/logger"
)

// Ensure Clipboard implements the interfaces.
var (
	_ driven.ClipboardReader  = (*Clipboard)(nil)
	_ driven.StructuredWriter = (*Clipboard)(nil)
)

// Clipboard is the structured clipboard backed by a command-line tool.
type Clipboard struct {
	backend backend
	runner  Runner
	log     logger.Logger
}

// Option configures a Clipboard.
type Option func(*Clipboard)

// WithRunner replaces the command runner.
func WithRunner(r Runner) Option {
	return func(c *Clipboard) {
		c.runner = r
	}
}

// New creates a clipboard for an already resolved tool (see Detect).
// Auto and none are rejected with ErrUnsupportedPlatform.
func New(tool domain.ClipboardTool, opts ...Option) (*Clipboard, error) {
	b, ok := backendFor(tool)
	if !ok {
		return nil, fmt.Errorf("clipboard tool %q: %w", tool, domain.ErrUnsupportedPlatform)
	}
	c := &Clipboard{
		backend: b,
		runner:  ExecRunner{},
		log:     logger.With("clipboard"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Tool returns the tool this clipboard drives.
func (c *Clipboard) Tool() domain.ClipboardTool {
	return c.backend.tool
}

// Read returns every advertised MIME type as one clipboard item. A type
// that fails to read is recorded as a per-type error on the item.
func (c *Clipboard) Read(ctx context.Context) ([]driven.ClipboardItem, error) {
	types, err := c.listTypes(ctx)
	if err != nil {
		return nil, err
	}
	if len(types) == 0 {
		return nil, nil
	}

	item := transfer.NewClipboardItem()
	for _, t := range types {
		data, err := c.run(ctx, nil, c.backend.read(t))
		if err != nil {
			c.log.Debug("read %s: %v", t, err)
			item.AddError(t, err)
			continue
		}
		item.Add(t, transfer.NewBlob(t, data))
	}
	return []driven.ClipboardItem{item}, nil
}

// ReadText returns the clipboard as plain text.
func (c *Clipboard) ReadText(ctx context.Context) (string, error) {
	data, err := c.run(ctx, nil, c.backend.readText())
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Write replaces the clipboard with a single MIME-typed item.
func (c *Clipboard) Write(ctx context.Context, item domain.WriteItem) error {
	_, err := c.run(ctx, item.Data, c.backend.write(item.Format.String()))
	return err
}

// listTypes returns the advertised MIME types. X11 targets such as
// TARGETS or UTF8_STRING are not MIME types and are dropped.
func (c *Clipboard) listTypes(ctx context.Context) ([]string, error) {
	out, err := c.run(ctx, nil, c.backend.listTypes())
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var types []string
	for _, line := range strings.Split(string(out), "\n") {
		t := strings.TrimSpace(line)
		if !strings.Contains(t, "/") || seen[t] {
			continue
		}
		seen[t] = true
		types = append(types, t)
	}
	return types, nil
}

func (c *Clipboard) run(ctx context.Context, stdin []byte, cmd command) ([]byte, error) {
	return c.runner.Run(ctx, stdin, cmd.name, cmd.args...)
}
