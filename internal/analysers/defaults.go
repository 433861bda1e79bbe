package analysers

import (
	"github.com/custodia-labs/clipscope/internal/analysers/html"
	"github.com/custodia-labs/clipscope/internal/analysers/json"
	"github.com/custodia-labs/clipscope/internal/analysers/pdf"
	"github.com/custodia-labs/clipscope/internal/analysers/rtf"
)

// Options toggles optional analyser behaviour.
type Options struct {
	// Markdown enables the Markdown rendition of HTML content.
	Markdown bool
}

// DefaultRegistry returns a registry with all built-in analysers.
func DefaultRegistry(opts Options) *Registry {
	r := NewRegistry()
	r.Register(html.New(html.WithMarkdown(opts.Markdown)))
	r.Register(rtf.New())
	r.Register(json.New())
	r.Register(pdf.New())
	return r
}
