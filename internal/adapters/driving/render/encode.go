package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/clipscope/internal/core/domain"
)

// Format is an output encoding.
type Format string

// Output formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates an output format name. Empty means text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("output format %q: %w", s, domain.ErrInvalidInput)
	}
}

// Encode writes v as JSON or YAML. Text output is produced by the
// Write* helpers instead.
func Encode(w io.Writer, format Format, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("encode %q: %w", format, domain.ErrInvalidInput)
	}
}

// WriteResult writes a human-readable rendering of a parse result.
func WriteResult(w io.Writer, r ResultView) {
	fmt.Fprintln(w, r.Message)
	for i, item := range r.Items {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "[%d] %s (%s)\n", i+1, item.Label, item.Kind)
		for _, line := range DetailLines(item) {
			fmt.Fprintf(w, "    %s\n", line)
		}
	}
}

// WriteHistory writes one line per history entry, newest first.
func WriteHistory(w io.Writer, entries []HistoryView) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No history.")
		return
	}
	for _, e := range entries {
		fmt.Fprintf(w, "%s  %s  %s\n", e.ID, e.Timestamp, e.Summary)
	}
}

// DetailLines returns "key: value" lines describing an item.
func DetailLines(item ItemView) []string {
	m := item.Metadata
	lines := []string{
		"Kind: " + item.Description,
		"Size: " + m.FormattedSize,
	}
	if m.MIMEHint != "" {
		lines = append(lines, "Declared type: "+m.MIMEHint)
	}
	if m.Channel != "" {
		lines = append(lines, "Channel: "+m.Channel)
	}

	if t := m.Text; t != nil {
		lines = append(lines,
			fmt.Sprintf("Lines: %d  Words: %d  Characters: %d (%d without spaces)",
				t.Lines, t.Words, t.Characters, t.CharactersNoSpaces),
			"Language: "+t.Language,
			"Encoding: "+t.Encoding,
		)
		if t.Charset != "" {
			lines = append(lines, "Charset: "+t.Charset)
		}
	}

	switch {
	case m.HTML != nil:
		h := m.HTML
		lines = append(lines,
			fmt.Sprintf("Complete document: %s (doctype %s, html %s, head %s, body %s)",
				yesNo(h.IsComplete), yesNo(h.HasDoctype), yesNo(h.HasHTMLTag), yesNo(h.HasHeadTag), yesNo(h.HasBodyTag)),
			fmt.Sprintf("Elements: %d images, %d links, %d tables, %d forms", h.Images, h.Links, h.Tables, h.Forms),
			fmt.Sprintf("Styling: %d style tags, %d script tags, %d inline styles", h.StyleTags, h.ScriptTags, h.InlineStyles),
		)
		if h.Title != "" {
			lines = append(lines, "Title: "+h.Title)
		}
	case m.RTF != nil:
		r := m.RTF
		lines = append(lines, "Valid header: "+yesNo(r.HasValidHeader))
		if r.Version != nil {
			lines = append(lines, fmt.Sprintf("RTF version: %d", *r.Version))
		}
		if r.Charset != "" {
			lines = append(lines, "RTF charset: "+r.Charset)
		}
	case m.JSON != nil:
		j := m.JSON
		if !j.IsValid {
			lines = append(lines, "JSON: "+j.Error)
			break
		}
		lines = append(lines, "JSON shape: "+j.Shape)
		if j.Keys != nil {
			lines = append(lines, fmt.Sprintf("Top-level keys: %d", *j.Keys))
		}
	case m.PDF != nil:
		lines = append(lines, fmt.Sprintf("PDF: %d pages, version %s", m.PDF.Pages, m.PDF.Version))
	case m.File != nil:
		f := m.File
		if f.Name != "" {
			lines = append(lines, "File name: "+f.Name)
		}
		if f.MIMEType != "" {
			lines = append(lines, "File type: "+f.MIMEType)
		}
		if f.ItemKind != "" {
			lines = append(lines, fmt.Sprintf("Item: %s %s", f.ItemKind, f.ItemType))
		}
	}

	if item.Preview != "" {
		lines = append(lines, "Preview: "+item.Preview)
	}
	return lines
}

// Snippet returns the first line of text cut to max runes.
func Snippet(text string, max int) string {
	line, _, _ := strings.Cut(strings.TrimSpace(text), "\n")
	runes := []rune(line)
	if max > 1 && len(runes) > max {
		return string(runes[:max-1]) + "…"
	}
	return line
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
