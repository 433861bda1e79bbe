// Package render converts pipeline results into tagged view structs for the
// CLI, TUI and MCP adapters, and encodes them as text, JSON or YAML.
package render

import (
	"time"

	"github.com/custodia-labs/clipscope/internal/core/domain"
)

// ResultView is the serialisable form of a ParseResult.
type ResultView struct {
	Success     bool       `json:"success" yaml:"success"`
	Message     string     `json:"message" yaml:"message"`
	Origin      string     `json:"origin" yaml:"origin"`
	Sequence    uint64     `json:"sequence" yaml:"sequence"`
	Timestamp   string     `json:"timestamp" yaml:"timestamp"`
	TimestampMs int64      `json:"timestamp_ms" yaml:"timestamp_ms"`
	Items       []ItemView `json:"items" yaml:"items"`
}

// ItemView is the serialisable form of a DataItem.
type ItemView struct {
	Kind        string       `json:"kind" yaml:"kind"`
	Description string       `json:"description" yaml:"description"`
	Label       string       `json:"label" yaml:"label"`
	ByteSize    int64        `json:"byte_size" yaml:"byte_size"`
	Text        string       `json:"text,omitempty" yaml:"text,omitempty"`
	File        *FileView    `json:"file,omitempty" yaml:"file,omitempty"`
	Preview     string       `json:"preview,omitempty" yaml:"preview,omitempty"`
	Metadata    MetadataView `json:"metadata" yaml:"metadata"`
}

// MetadataView flattens the metadata union; at most one detail is set.
type MetadataView struct {
	MIMEHint      string    `json:"mime_hint,omitempty" yaml:"mime_hint,omitempty"`
	FormattedSize string    `json:"formatted_size" yaml:"formatted_size"`
	Channel       string    `json:"channel,omitempty" yaml:"channel,omitempty"`
	Text          *TextView `json:"text,omitempty" yaml:"text,omitempty"`
	HTML          *HTMLView `json:"html,omitempty" yaml:"html,omitempty"`
	RTF           *RTFView  `json:"rtf,omitempty" yaml:"rtf,omitempty"`
	JSON          *JSONView `json:"json,omitempty" yaml:"json,omitempty"`
	PDF           *PDFView  `json:"pdf,omitempty" yaml:"pdf,omitempty"`
	File          *FileView `json:"file_info,omitempty" yaml:"file_info,omitempty"`
}

// TextView mirrors domain.TextDetails.
type TextView struct {
	Lines              int    `json:"lines" yaml:"lines"`
	Words              int    `json:"words" yaml:"words"`
	Characters         int    `json:"characters" yaml:"characters"`
	CharactersNoSpaces int    `json:"characters_no_spaces" yaml:"characters_no_spaces"`
	Language           string `json:"language" yaml:"language"`
	Encoding           string `json:"encoding" yaml:"encoding"`
	Charset            string `json:"charset,omitempty" yaml:"charset,omitempty"`
}

// HTMLView mirrors domain.HTMLDetails.
type HTMLView struct {
	HasDoctype   bool   `json:"has_doctype" yaml:"has_doctype"`
	HasHTMLTag   bool   `json:"has_html_tag" yaml:"has_html_tag"`
	HasHeadTag   bool   `json:"has_head_tag" yaml:"has_head_tag"`
	HasBodyTag   bool   `json:"has_body_tag" yaml:"has_body_tag"`
	IsComplete   bool   `json:"is_complete" yaml:"is_complete"`
	Images       int    `json:"images" yaml:"images"`
	Links        int    `json:"links" yaml:"links"`
	Tables       int    `json:"tables" yaml:"tables"`
	Forms        int    `json:"forms" yaml:"forms"`
	StyleTags    int    `json:"style_tags" yaml:"style_tags"`
	ScriptTags   int    `json:"script_tags" yaml:"script_tags"`
	InlineStyles int    `json:"inline_styles" yaml:"inline_styles"`
	Title        string `json:"title,omitempty" yaml:"title,omitempty"`
	Markdown     string `json:"markdown,omitempty" yaml:"markdown,omitempty"`
}

// RTFView mirrors domain.RTFDetails. Version is nil when absent.
type RTFView struct {
	HasValidHeader bool   `json:"has_valid_header" yaml:"has_valid_header"`
	Version        *int   `json:"version,omitempty" yaml:"version,omitempty"`
	Charset        string `json:"charset,omitempty" yaml:"charset,omitempty"`
}

// JSONView mirrors domain.JSONDetails.
type JSONView struct {
	IsValid bool   `json:"is_valid" yaml:"is_valid"`
	Shape   string `json:"shape,omitempty" yaml:"shape,omitempty"`
	Keys    *int   `json:"keys,omitempty" yaml:"keys,omitempty"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
}

// PDFView mirrors domain.PDFDetails.
type PDFView struct {
	Pages   int    `json:"pages" yaml:"pages"`
	Version string `json:"version" yaml:"version"`
}

// FileView mirrors domain.FileDescriptor and domain.FileDetails.
type FileView struct {
	Name     string `json:"name,omitempty" yaml:"name,omitempty"`
	Size     int64  `json:"size" yaml:"size"`
	MIMEType string `json:"mime_type,omitempty" yaml:"mime_type,omitempty"`
	ItemKind string `json:"item_kind,omitempty" yaml:"item_kind,omitempty"`
	ItemType string `json:"item_type,omitempty" yaml:"item_type,omitempty"`
}

// HistoryView is the serialisable form of a HistoryEntry.
type HistoryView struct {
	ID        string `json:"id" yaml:"id"`
	Timestamp string `json:"timestamp" yaml:"timestamp"`
	Summary   string `json:"summary" yaml:"summary"`
	Origin    string `json:"origin" yaml:"origin"`
	Items     int    `json:"items" yaml:"items"`
}

// CopyView is the serialisable form of a CopyResult.
type CopyView struct {
	Success    bool   `json:"success" yaml:"success"`
	Message    string `json:"message" yaml:"message"`
	Tier       string `json:"tier" yaml:"tier"`
	Downgraded bool   `json:"downgraded" yaml:"downgraded"`
	Error      string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Result builds the view of a parse result.
func Result(r domain.ParseResult) ResultView {
	items := make([]ItemView, len(r.Items))
	for i := range r.Items {
		items[i] = Item(r.Items[i])
	}
	return ResultView{
		Success:     r.Success,
		Message:     r.Message,
		Origin:      string(r.Origin),
		Sequence:    r.Sequence,
		Timestamp:   formatTime(r.Timestamp),
		TimestampMs: r.TimestampMs(),
		Items:       items,
	}
}

// Item builds the view of a single item.
func Item(item domain.DataItem) ItemView {
	v := ItemView{
		Kind:        item.Kind.String(),
		Description: item.Kind.Description(),
		Label:       item.Label(),
		ByteSize:    item.ByteSize,
		Text:        item.Text,
		Preview:     item.PreviewHandle,
		Metadata:    Metadata(item.Metadata),
	}
	if item.File != nil {
		v.File = &FileView{
			Name:     item.File.Name,
			Size:     item.File.Size,
			MIMEType: item.File.MIMEHint,
		}
	}
	return v
}

// Metadata builds the view of item metadata.
func Metadata(m domain.Metadata) MetadataView {
	v := MetadataView{
		MIMEHint:      m.MIMEHint,
		FormattedSize: m.FormattedSize,
		Channel:       string(m.Channel),
	}
	if t := m.Text; t != nil {
		v.Text = &TextView{
			Lines:              t.Stats.Lines,
			Words:              t.Stats.Words,
			Characters:         t.Stats.Characters,
			CharactersNoSpaces: t.Stats.CharactersNoSpaces,
			Language:           t.Language,
			Encoding:           t.Encoding,
			Charset:            t.Charset,
		}
	}

	switch d := m.Details.(type) {
	case *domain.HTMLDetails:
		v.HTML = &HTMLView{
			HasDoctype:   d.HasDoctype,
			HasHTMLTag:   d.HasHTMLTag,
			HasHeadTag:   d.HasHeadTag,
			HasBodyTag:   d.HasBodyTag,
			IsComplete:   d.IsComplete,
			Images:       d.Elements.Images,
			Links:        d.Elements.Links,
			Tables:       d.Elements.Tables,
			Forms:        d.Elements.Forms,
			StyleTags:    d.Styling.StyleTags,
			ScriptTags:   d.Styling.ScriptTags,
			InlineStyles: d.Styling.InlineStyles,
			Title:        d.Title,
			Markdown:     d.Markdown,
		}
	case *domain.RTFDetails:
		v.RTF = &RTFView{HasValidHeader: d.HasValidHeader, Charset: d.Charset}
		if d.HasVersion {
			version := d.Version
			v.RTF.Version = &version
		}
	case *domain.JSONDetails:
		v.JSON = &JSONView{IsValid: d.IsValid, Shape: string(d.Shape), Error: d.Error}
		if d.Shape == domain.JSONObject {
			keys := d.Keys
			v.JSON.Keys = &keys
		}
	case *domain.PDFDetails:
		v.PDF = &PDFView{Pages: d.Pages, Version: d.Version}
	case *domain.FileDetails:
		v.File = &FileView{
			Name:     d.Name,
			Size:     d.Size,
			MIMEType: d.MIMEType,
			ItemKind: d.ItemKind,
			ItemType: d.ItemType,
		}
	}
	return v
}

// History builds the views of history entries.
func History(entries []domain.HistoryEntry) []HistoryView {
	views := make([]HistoryView, len(entries))
	for i, e := range entries {
		views[i] = HistoryView{
			ID:        e.ID,
			Timestamp: formatTime(e.Timestamp),
			Summary:   e.Summary,
			Origin:    string(e.Result.Origin),
			Items:     len(e.Result.Items),
		}
	}
	return views
}

// Copy builds the view of a write-back result.
func Copy(r domain.CopyResult) CopyView {
	v := CopyView{
		Success:    r.Success,
		Message:    r.Message,
		Tier:       string(r.Tier),
		Downgraded: r.Downgraded,
	}
	if r.Err != nil {
		v.Error = r.Err.Error()
	}
	return v
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339Nano)
}
