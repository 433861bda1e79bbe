package domain

import "strings"

// DataKind is the closed classification assigned to one clipboard or drop entry.
// Exactly one kind is assigned per item; KindUnknown is the total fallback.
type DataKind string

// Available data kinds.
const (
	KindPlainText DataKind = "text/plain"
	KindHTML      DataKind = "text/html"
	KindRTF       DataKind = "text/rtf"

	KindPNG  DataKind = "image/png"
	KindJPEG DataKind = "image/jpeg"
	KindGIF  DataKind = "image/gif"
	KindWebP DataKind = "image/webp"
	KindSVG  DataKind = "image/svg+xml"
	KindBMP  DataKind = "image/bmp"
	KindTIFF DataKind = "image/tiff"

	KindJSON DataKind = "application/json"
	KindXML  DataKind = "application/xml"
	KindPDF  DataKind = "application/pdf"

	// KindFiles is a file whose concrete type could not be determined.
	KindFiles DataKind = "files"

	// KindUnknown is assigned when no other kind applies.
	KindUnknown DataKind = "unknown"
)

// AllKinds returns every data kind in declaration order.
func AllKinds() []DataKind {
	return []DataKind{
		KindPlainText, KindHTML, KindRTF,
		KindPNG, KindJPEG, KindGIF, KindWebP, KindSVG, KindBMP, KindTIFF,
		KindJSON, KindXML, KindPDF,
		KindFiles, KindUnknown,
	}
}

// IsValid returns true if the kind is one of the known kinds.
func (k DataKind) IsValid() bool {
	for _, known := range AllKinds() {
		if k == known {
			return true
		}
	}
	return false
}

// IsImage returns true for the image kinds.
func (k DataKind) IsImage() bool {
	return strings.HasPrefix(string(k), "image/")
}

// IsText returns true for kinds whose payload is readable text.
func (k DataKind) IsText() bool {
	switch k {
	case KindPlainText, KindHTML, KindRTF, KindJSON, KindXML, KindSVG:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k DataKind) String() string {
	return string(k)
}

// Description returns a short human-readable label.
func (k DataKind) Description() string {
	switch k {
	case KindPlainText:
		return "Plain text"
	case KindHTML:
		return "HTML"
	case KindRTF:
		return "Rich text (RTF)"
	case KindPNG, KindJPEG, KindGIF, KindWebP, KindBMP, KindTIFF:
		return "Image (" + strings.ToUpper(strings.TrimPrefix(string(k), "image/")) + ")"
	case KindSVG:
		return "Image (SVG)"
	case KindJSON:
		return "JSON"
	case KindXML:
		return "XML"
	case KindPDF:
		return "PDF document"
	case KindFiles:
		return "File"
	default:
		return "Unknown"
	}
}

// TextFormat is a format the write-back path can request.
type TextFormat string

// Write-back formats. Rich text is never written; it is coerced to plain text.
const (
	FormatPlain TextFormat = "text/plain"
	FormatHTML  TextFormat = "text/html"
)

// ParseTextFormat maps a requested format onto a writable one.
// Anything other than HTML, including text/rtf, becomes plain text.
func ParseTextFormat(s string) TextFormat {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text/html", "html":
		return FormatHTML
	default:
		return FormatPlain
	}
}

// String returns the string representation.
func (f TextFormat) String() string {
	return string(f)
}
