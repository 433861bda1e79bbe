package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/clipscope/internal/core/domain"
)

type fakeFile struct {
	name string
	mime string
}

func (f fakeFile) FileName() string { return f.name }
func (f fakeFile) FileType() string { return f.mime }

func TestKind_CanonicalRoundTrip(t *testing.T) {
	for _, m := range Canonical() {
		t.Run(m, func(t *testing.T) {
			assert.Equal(t, domain.DataKind(m), Kind(m))
		})
	}
}

func TestCanonical_ExcludesFallbackKinds(t *testing.T) {
	c := Canonical()
	assert.NotContains(t, c, "files")
	assert.NotContains(t, c, "unknown")
	assert.Len(t, c, len(domain.AllKinds())-2)
}

func TestKind_Synonyms(t *testing.T) {
	tests := []struct {
		mime string
		want domain.DataKind
	}{
		{"image/jpg", domain.KindJPEG},
		{"application/rtf", domain.KindRTF},
		{"text/xml", domain.KindXML},
		{"  TEXT/HTML ", domain.KindHTML},
		{"text/html; charset=utf-8", domain.KindHTML},
	}
	for _, tt := range tests {
		t.Run(tt.mime, func(t *testing.T) {
			assert.Equal(t, tt.want, Kind(tt.mime))
		})
	}
}

func TestKind_Fallbacks(t *testing.T) {
	tests := []struct {
		mime string
		want domain.DataKind
	}{
		{"image/weird-subtype", domain.KindPNG},
		{"image/x-icon", domain.KindPNG},
		{"application/ld+json", domain.KindJSON},
		{"application/atom+xml", domain.KindXML},
		{"application/x-pdf", domain.KindPDF},
		{"application/octet-stream", domain.KindUnknown},
		{"video/mp4", domain.KindUnknown},
		{"", domain.KindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.mime, func(t *testing.T) {
			assert.Equal(t, tt.want, Kind(tt.mime))
		})
	}
}

func TestKindOfText(t *testing.T) {
	tests := []struct {
		name string
		mime string
		text string
		want domain.DataKind
	}{
		{"declared json", "application/json", `{"a":1}`, domain.KindJSON},
		{"sniffed json over text/plain", "text/plain", `{"a":1}`, domain.KindJSON},
		{"json array", "text", `[1, 2, 3]`, domain.KindJSON},
		{"braces but invalid json", "text/plain", `{not json}`, domain.KindPlainText},
		{"xml declaration", "text/plain", `<?xml version="1.0"?><a/>`, domain.KindXML},
		{"html doctype", "", "<!DOCTYPE html><html></html>", domain.KindHTML},
		{"html tag uppercase", "text/plain", "<HTML><body>x</body></HTML>", domain.KindHTML},
		{"markup without html hint", "text/plain", "<note>hi</note>", domain.KindXML},
		{"markup with html hint", "text/x-html-fragment", "<b>hi</b>", domain.KindHTML},
		{"rtf", "text/plain", `{\rtf1\ansi hello}`, domain.KindRTF},
		{"plain", "text/plain", "hello world", domain.KindPlainText},
		{"other text subtype", "text/markdown", "# title", domain.KindPlainText},
		{"exact match wins over content", "text/html", `{"a":1}`, domain.KindHTML},
		{"blank text subtype", "text/csv", "   ", domain.KindPlainText},
		{"empty text plain", "text/plain", "", domain.KindPlainText},
		{"blank image", "image/weird", "", domain.KindPNG},
		{"blank octet stream", "application/octet-stream", "", domain.KindUnknown},
		{"string sample with unknown type", "application/octet-stream", "abc", domain.KindPlainText},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOfText(tt.mime, tt.text))
		})
	}
}

func TestKindOfFile(t *testing.T) {
	tests := []struct {
		name string
		mime string
		file fakeFile
		want domain.DataKind
	}{
		{"exact mime wins", "image/gif", fakeFile{"a.png", "image/gif"}, domain.KindGIF},
		{"extension", "", fakeFile{"notes.TXT", ""}, domain.KindPlainText},
		{"tif extension", "application/octet-stream", fakeFile{"scan.tif", ""}, domain.KindTIFF},
		{"htm extension", "", fakeFile{"page.htm", ""}, domain.KindHTML},
		{"own declared type", "", fakeFile{"blob", "application/pdf"}, domain.KindPDF},
		{"own image subtype", "", fakeFile{"icon", "image/x-icon"}, domain.KindPNG},
		{"unknown file", "", fakeFile{"archive.zip", "application/zip"}, domain.KindFiles},
		{"no name no type", "", fakeFile{}, domain.KindFiles},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOfFile(tt.mime, tt.file))
		})
	}
}

func TestKindOfFile_NilFile(t *testing.T) {
	assert.Equal(t, domain.KindUnknown, KindOfFile("", nil))
	assert.Equal(t, domain.KindPNG, KindOfFile("image/foo", nil))
}

func TestRules_Order(t *testing.T) {
	assert.Equal(t,
		[]string{"json", "xml-declaration", "html-document", "markup", "rtf", "text"},
		Rules())
}

func TestMatchRule(t *testing.T) {
	tests := []struct {
		rule   string
		mime   string
		sample string
		want   domain.DataKind
		ok     bool
	}{
		{"json", "", `{"a":1}`, domain.KindJSON, true},
		{"json", "", `{"a":}`, "", false},
		{"json", "", `"str"`, "", false},
		{"xml-declaration", "", "<?xml?>", domain.KindXML, true},
		{"html-document", "", "<!doctype HTML>", domain.KindHTML, true},
		{"html-document", "", "<div></div>", "", false},
		{"markup", "text/html-ish", "<div></div>", domain.KindHTML, true},
		{"markup", "", "<div></div>", domain.KindXML, true},
		{"markup", "", "<div>", domain.KindXML, true},
		{"markup", "", "<div", "", false},
		{"rtf", "", `{\rtf1}`, domain.KindRTF, true},
		{"rtf", "", `{\pict}`, "", false},
		{"text", "text/csv", "", domain.KindPlainText, true},
		{"text", "", "x", domain.KindPlainText, true},
		{"text", "", "", "", false},
		{"missing", "", "x", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.rule+"/"+tt.sample, func(t *testing.T) {
			got, ok := MatchRule(tt.rule, tt.mime, tt.sample)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeAndParam(t *testing.T) {
	assert.Equal(t, "text/html", Normalize(" Text/HTML ; charset=UTF-8"))
	assert.Equal(t, "UTF-8", Param("text/html; charset=UTF-8", "charset"))
	assert.Equal(t, "iso-8859-1", Param(`text/plain; format=flowed; Charset="iso-8859-1"`, "charset"))
	assert.Empty(t, Param("text/plain", "charset"))
}

func TestClassify_Idempotent(t *testing.T) {
	inputs := []string{`{"a":1}`, "<p>x</p>", "plain", ""}
	for _, in := range inputs {
		assert.Equal(t, KindOfText("text/plain", in), KindOfText("text/plain", in))
	}
}

func TestIsTextLike(t *testing.T) {
	assert.True(t, IsTextLike("text/html; charset=utf-8"))
	assert.True(t, IsTextLike("Application/JSON"))
	assert.False(t, IsTextLike("application/ld+json"))
	assert.False(t, IsTextLike("image/svg+xml"))
	assert.False(t, IsTextLike(""))
}
