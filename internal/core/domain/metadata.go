package domain

// Metadata holds the analysis results attached to a DataItem.
// The common fields are always set; Text and Details depend on the kind.
type Metadata struct {
	// MIMEHint is the MIME type the entry was declared with.
	MIMEHint string

	// FormattedSize is the human-readable byte size.
	FormattedSize string

	// Channel is the extraction channel the item came through.
	Channel Channel

	// Text is set for any item analysed as text.
	Text *TextDetails

	// Details carries the kind-specific structure, if any.
	Details Details
}

// HTML returns the HTML structure if present.
func (m Metadata) HTML() (*HTMLDetails, bool) {
	d, ok := m.Details.(*HTMLDetails)
	return d, ok
}

// RTF returns the RTF header info if present.
func (m Metadata) RTF() (*RTFDetails, bool) {
	d, ok := m.Details.(*RTFDetails)
	return d, ok
}

// JSON returns the JSON info if present.
func (m Metadata) JSON() (*JSONDetails, bool) {
	d, ok := m.Details.(*JSONDetails)
	return d, ok
}

// PDF returns the PDF info if present.
func (m Metadata) PDF() (*PDFDetails, bool) {
	d, ok := m.Details.(*PDFDetails)
	return d, ok
}

// FileInfo returns the file info if present.
func (m Metadata) FileInfo() (*FileDetails, bool) {
	d, ok := m.Details.(*FileDetails)
	return d, ok
}

// Details is a kind-specific structural record.
// The set of variants is closed to this package.
type Details interface {
	// DetailKind names the variant, e.g. "html" or "json".
	DetailKind() string

	sealed()
}

// TextStats holds basic counts over a text payload.
type TextStats struct {
	Lines              int
	Words              int
	Characters         int
	CharactersNoSpaces int
}

// TextDetails is produced for every item analysed as text.
type TextDetails struct {
	// Stats are the line, word and character counts.
	Stats TextStats

	// Language is a coarse language tag from Unicode block tests.
	Language string

	// Encoding is "utf-8", or "corrupted" if replacement characters appear.
	Encoding string

	// Charset is the charset parameter of the declared MIME type, if any.
	Charset string
}

// HTMLElementCounts counts selected element tags.
type HTMLElementCounts struct {
	Images int
	Links  int
	Tables int
	Forms  int
}

// HTMLStyling counts styling and scripting constructs.
type HTMLStyling struct {
	StyleTags    int
	ScriptTags   int
	InlineStyles int
}

// HTMLDetails is the regex-level structure of an HTML payload.
type HTMLDetails struct {
	HasDoctype bool
	HasHTMLTag bool
	HasHeadTag bool
	HasBodyTag bool

	// IsComplete is true when all four document markers are present.
	IsComplete bool

	Elements HTMLElementCounts
	Styling  HTMLStyling

	// Title is the text of the <title> element, if any.
	Title string

	// Markdown is a Markdown rendition of the HTML, when enabled.
	Markdown string
}

// RTFDetails describes an RTF header.
type RTFDetails struct {
	HasValidHeader bool

	// Version is the digit run after \rtf; zero with HasVersion false if absent.
	Version    int
	HasVersion bool

	// Charset is ansi, mac or pc; empty if absent. \pca reads as pc.
	Charset string
}

// JSONShape is the top-level shape of a JSON document.
type JSONShape string

// JSON shapes.
const (
	JSONObject JSONShape = "object"
	JSONArray  JSONShape = "array"
	JSONString JSONShape = "string"
	JSONNumber JSONShape = "number"
	JSONBool   JSONShape = "boolean"
	JSONNull   JSONShape = "null"
)

// InvalidJSONMessage is the fixed error recorded for unparsable JSON.
const InvalidJSONMessage = "Invalid JSON"

// JSONDetails describes a JSON payload.
type JSONDetails struct {
	IsValid bool

	// Shape is set when IsValid is true.
	Shape JSONShape

	// Keys is the number of top-level keys for objects.
	Keys int

	// Error is InvalidJSONMessage when IsValid is false.
	Error string
}

// FileDetails is the stub recorded for file items.
type FileDetails struct {
	Name     string
	Size     int64
	MIMEType string

	// ItemKind and ItemType are set for files resolved from structured items.
	ItemKind string
	ItemType string
}

// PDFDetails describes a PDF blob.
type PDFDetails struct {
	Pages   int
	Version string
}

func (*HTMLDetails) DetailKind() string { return "html" }
func (*RTFDetails) DetailKind() string  { return "rtf" }
func (*JSONDetails) DetailKind() string { return "json" }
func (*FileDetails) DetailKind() string { return "file" }
func (*PDFDetails) DetailKind() string  { return "pdf" }

func (*HTMLDetails) sealed() {}
func (*RTFDetails) sealed()  {}
func (*JSONDetails) sealed() {}
func (*FileDetails) sealed() {}
func (*PDFDetails) sealed()  {}
