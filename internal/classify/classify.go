package classify

import (
	"strings"

	"github.com/custodia-labs/clipscope/internal/core/domain"
)

// Kind classifies a declared MIME type with no content sample.
func Kind(mimeType string) domain.DataKind {
	m := Normalize(mimeType)
	if k, ok := lookupExact(m); ok {
		return k
	}
	return fallback(m, false)
}

// KindOfText classifies a declared MIME type with a text sample.
// Content sniffing can override a generic declared type.
func KindOfText(mimeType, text string) domain.DataKind {
	m := Normalize(mimeType)
	if !isGeneric(m) {
		if k, ok := lookupExact(m); ok {
			return k
		}
	}

	if strings.TrimSpace(text) == "" {
		if isGeneric(m) || strings.HasPrefix(m, "text/") {
			return domain.KindPlainText
		}
		return fallback(m, false)
	}

	if k, ok := sniff(m, text); ok {
		return k
	}
	return fallback(m, true)
}

// KindOfFile classifies a declared MIME type with a file sample.
// Files that match nothing become domain.KindFiles.
func KindOfFile(mimeType string, file domain.FileLike) domain.DataKind {
	m := Normalize(mimeType)
	if k, ok := lookupExact(m); ok {
		return k
	}
	if file == nil {
		return fallback(m, false)
	}

	if k, ok := lookupExtension(file.FileName()); ok {
		return k
	}

	own := Normalize(file.FileType())
	if own != "" {
		if k := Kind(own); k != domain.KindUnknown {
			return k
		}
	}
	return domain.KindFiles
}

// fallback applies the declared-type prefix rules.
func fallback(m string, hasText bool) domain.DataKind {
	switch {
	case strings.HasPrefix(m, "image/"):
		// Unrecognised image subtypes are assumed to be PNG. The result is a
		// guess about the pixel format, not a validated content type.
		return domain.KindPNG
	case strings.HasPrefix(m, "application/"):
		switch {
		case strings.Contains(m, "json"):
			return domain.KindJSON
		case strings.Contains(m, "xml"):
			return domain.KindXML
		case strings.Contains(m, "pdf"):
			return domain.KindPDF
		}
	}
	if hasText {
		return domain.KindPlainText
	}
	return domain.KindUnknown
}
