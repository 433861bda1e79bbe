// Package html describes HTML clipboard content with regex-level structure
// tests and an optional Markdown rendition.
//
// No DOM is built: each marker is an independent pattern match, so partial
// fragments copied from a browser are described as faithfully as full
// documents.
package html

import (
	"context"
	stdhtml "html"
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"

	"github.com/custodia-labs/clipscope/internal/core/domain"
	"github.com/custodia-labs/clipscope/internal/core/ports/driven"
	"github.com/custodia-labs/clipscope/internal/logger"
)

// Ensure Analyser implements the interface.
var _ driven.StructureAnalyser = (*Analyser)(nil)

// Pre-compiled regular expressions for HTML structure tests.
var (
	doctypeTag  = regexp.MustCompile(`(?i)<!DOCTYPE`)
	htmlTag     = regexp.MustCompile(`(?i)<html[^>]*>`)
	headTag     = regexp.MustCompile(`(?i)<head[^>]*>`)
	bodyTag     = regexp.MustCompile(`(?i)<body[^>]*>`)
	titleTag    = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
	imgTag      = regexp.MustCompile(`(?i)<img[^>]*>`)
	anchorTag   = regexp.MustCompile(`(?i)<a[^>]*>`)
	tableTag    = regexp.MustCompile(`(?i)<table[^>]*>`)
	formTag     = regexp.MustCompile(`(?i)<form[^>]*>`)
	styleTag    = regexp.MustCompile(`(?i)<style[^>]*>`)
	scriptTag   = regexp.MustCompile(`(?i)<script[^>]*>`)
	inlineStyle = regexp.MustCompile(`(?i)style\s*=`)
)

// Option configures an Analyser.
type Option func(*Analyser)

// WithMarkdown enables or disables the Markdown rendition.
func WithMarkdown(enabled bool) Option {
	return func(a *Analyser) {
		a.markdown = enabled
	}
}

// Analyser handles HTML content.
type Analyser struct {
	markdown bool
	conv     *converter.Converter
}

// New creates a new HTML analyser. Markdown rendition is off by default.
func New(opts ...Option) *Analyser {
	a := &Analyser{}
	for _, opt := range opts {
		opt(a)
	}
	if a.markdown {
		a.conv = converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		)
	}
	return a
}

// Name returns the analyser name.
func (a *Analyser) Name() string {
	return "html"
}

// SupportedKinds returns the kinds this analyser handles.
func (a *Analyser) SupportedKinds() []domain.DataKind {
	return []domain.DataKind{domain.KindHTML}
}

// Priority returns the selection priority.
func (a *Analyser) Priority() int {
	return 50
}

// Analyse describes the structure of an HTML payload.
// A failed Markdown conversion leaves Markdown empty and is not an error.
func (a *Analyser) Analyse(_ context.Context, in driven.AnalysisInput) (domain.Details, error) {
	content := in.Text
	if content == "" && in.Data != nil {
		content = string(in.Data)
	}

	d := Describe(content)
	if a.conv != nil && strings.TrimSpace(content) != "" {
		md, err := a.conv.ConvertString(content)
		if err != nil {
			logger.Debug("html: markdown conversion failed: %v", err)
		} else {
			d.Markdown = strings.TrimSpace(md)
		}
	}
	return d, nil
}

// Describe runs the regex structure tests over content.
func Describe(content string) *domain.HTMLDetails {
	d := &domain.HTMLDetails{
		HasDoctype: doctypeTag.MatchString(content),
		HasHTMLTag: htmlTag.MatchString(content),
		HasHeadTag: headTag.MatchString(content),
		HasBodyTag: bodyTag.MatchString(content),
		Elements: domain.HTMLElementCounts{
			Images: count(imgTag, content),
			Links:  count(anchorTag, content),
			Tables: count(tableTag, content),
			Forms:  count(formTag, content),
		},
		Styling: domain.HTMLStyling{
			StyleTags:    count(styleTag, content),
			ScriptTags:   count(scriptTag, content),
			InlineStyles: count(inlineStyle, content),
		},
	}
	d.IsComplete = d.HasDoctype && d.HasHTMLTag && d.HasHeadTag && d.HasBodyTag

	if m := titleTag.FindStringSubmatch(content); len(m) > 1 {
		d.Title = stdhtml.UnescapeString(strings.TrimSpace(m[1]))
	}
	return d
}

func count(re *regexp.Regexp, s string) int {
	return len(re.FindAllStringIndex(s, -1))
}
