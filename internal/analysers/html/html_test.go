package html

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/clipscope/internal/core/domain"
	"github.com/custodia-labs/clipscope/internal/core/ports/driven"
)

const fullDoc = `<!DOCTYPE html>
<html lang="en">
<head><title> Report &amp; Notes </title><style>p{}</style></head>
<body>
<p style="color:red">Hello</p>
<a href="/a">one</a><a href="/b">two</a>
<img src="x.png"><table><tr><td>1</td></tr></table>
<form action="/f"></form>
<script>var x;</script>
</body>
</html>`

func TestNew(t *testing.T) {
	a := New()
	require.NotNil(t, a)
	assert.Equal(t, "html", a.Name())
	assert.Equal(t, []domain.DataKind{domain.KindHTML}, a.SupportedKinds())
	assert.Equal(t, 50, a.Priority())
	assert.Nil(t, a.conv)
}

func TestDescribe_FullDocument(t *testing.T) {
	d := Describe(fullDoc)

	assert.True(t, d.HasDoctype)
	assert.True(t, d.HasHTMLTag)
	assert.True(t, d.HasHeadTag)
	assert.True(t, d.HasBodyTag)
	assert.True(t, d.IsComplete)
	assert.Equal(t, "Report & Notes", d.Title)
	assert.Equal(t, domain.HTMLElementCounts{Images: 1, Links: 2, Tables: 1, Forms: 1}, d.Elements)
	assert.Equal(t, domain.HTMLStyling{StyleTags: 1, ScriptTags: 1, InlineStyles: 1}, d.Styling)
}

func TestDescribe_Fragment(t *testing.T) {
	d := Describe(`<b>bold</b> <a href="#">link</a>`)

	assert.False(t, d.HasDoctype)
	assert.False(t, d.HasHTMLTag)
	assert.False(t, d.IsComplete)
	assert.Empty(t, d.Title)
	assert.Equal(t, 1, d.Elements.Links)
}

func TestDescribe_MissingOneMarker(t *testing.T) {
	d := Describe(`<!DOCTYPE html><html><body></body></html>`)

	assert.True(t, d.HasDoctype)
	assert.False(t, d.HasHeadTag)
	assert.False(t, d.IsComplete)
}

func TestAnalyse_WithoutMarkdown(t *testing.T) {
	a := New()
	d, err := a.Analyse(context.Background(), driven.AnalysisInput{Kind: domain.KindHTML, Text: fullDoc})
	require.NoError(t, err)

	h, ok := d.(*domain.HTMLDetails)
	require.True(t, ok)
	assert.True(t, h.IsComplete)
	assert.Empty(t, h.Markdown)
}

func TestAnalyse_WithMarkdown(t *testing.T) {
	a := New(WithMarkdown(true))
	d, err := a.Analyse(context.Background(), driven.AnalysisInput{
		Kind: domain.KindHTML,
		Text: `<p>Hello <strong>world</strong></p>`,
	})
	require.NoError(t, err)

	h := d.(*domain.HTMLDetails)
	assert.Contains(t, h.Markdown, "**world**")
}

func TestAnalyse_BytesInput(t *testing.T) {
	a := New()
	d, err := a.Analyse(context.Background(), driven.AnalysisInput{
		Kind: domain.KindHTML,
		Data: []byte(`<html><head></head></html>`),
	})
	require.NoError(t, err)

	h := d.(*domain.HTMLDetails)
	assert.True(t, h.HasHTMLTag)
	assert.True(t, h.HasHeadTag)
}
