package classify

import (
	"path/filepath"
	"strings"

	"github.com/custodia-labs/clipscope/internal/core/domain"
)

// exact maps canonical MIME strings and their synonyms onto kinds.
var exact = map[string]domain.DataKind{
	"text/plain":       domain.KindPlainText,
	"text/html":        domain.KindHTML,
	"text/rtf":         domain.KindRTF,
	"application/rtf":  domain.KindRTF,
	"image/png":        domain.KindPNG,
	"image/jpeg":       domain.KindJPEG,
	"image/jpg":        domain.KindJPEG,
	"image/gif":        domain.KindGIF,
	"image/webp":       domain.KindWebP,
	"image/svg+xml":    domain.KindSVG,
	"image/bmp":        domain.KindBMP,
	"image/tiff":       domain.KindTIFF,
	"application/json": domain.KindJSON,
	"application/xml":  domain.KindXML,
	"text/xml":         domain.KindXML,
	"application/pdf":  domain.KindPDF,
}

// extensions maps lowercase file suffixes onto kinds.
var extensions = map[string]domain.DataKind{
	".rtf":  domain.KindRTF,
	".json": domain.KindJSON,
	".xml":  domain.KindXML,
	".html": domain.KindHTML,
	".htm":  domain.KindHTML,
	".txt":  domain.KindPlainText,
	".jpg":  domain.KindJPEG,
	".jpeg": domain.KindJPEG,
	".png":  domain.KindPNG,
	".gif":  domain.KindGIF,
	".webp": domain.KindWebP,
	".svg":  domain.KindSVG,
	".bmp":  domain.KindBMP,
	".tiff": domain.KindTIFF,
	".tif":  domain.KindTIFF,
}

// Canonical returns the canonical MIME string of every concrete kind.
// Each entry classifies to itself.
func Canonical() []string {
	var out []string
	for _, k := range domain.AllKinds() {
		if k == domain.KindFiles || k == domain.KindUnknown {
			continue
		}
		out = append(out, k.String())
	}
	return out
}

// Normalize lowercases and trims a MIME string and drops any parameters.
func Normalize(mimeType string) string {
	m := strings.ToLower(strings.TrimSpace(mimeType))
	if i := strings.IndexByte(m, ';'); i >= 0 {
		m = strings.TrimSpace(m[:i])
	}
	return m
}

// Param returns a MIME parameter value such as charset, or "".
func Param(mimeType, name string) string {
	parts := strings.Split(mimeType, ";")
	for _, p := range parts[1:] {
		k, v, ok := strings.Cut(strings.TrimSpace(p), "=")
		if !ok || !strings.EqualFold(strings.TrimSpace(k), name) {
			continue
		}
		return strings.Trim(strings.TrimSpace(v), `"'`)
	}
	return ""
}

func lookupExact(m string) (domain.DataKind, bool) {
	k, ok := exact[m]
	return k, ok
}

func lookupExtension(name string) (domain.DataKind, bool) {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return "", false
	}
	k, ok := extensions[ext]
	return k, ok
}

// isGeneric reports whether a declared type says nothing beyond "some text".
func isGeneric(m string) bool {
	return m == "" || m == "text" || m == "text/plain"
}

// IsTextLike reports whether bytes declared with mimeType should be decoded
// to text before analysis.
func IsTextLike(mimeType string) bool {
	m := Normalize(mimeType)
	return strings.HasPrefix(m, "text/") || m == "application/json"
}
