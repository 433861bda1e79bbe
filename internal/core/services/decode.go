package services

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/net/html/charset"

	"github.com/custodia-labs/clipscope/internal/core/domain"
)

// decodeText converts bytes declared with mimeType to UTF-8 text.
// The charset parameter, a BOM, or an HTML meta tag selects the encoding;
// otherwise valid UTF-8 is kept and anything else is read as windows-1252.
func decodeText(data []byte, mimeType string) (string, error) {
	r, err := charset.NewReader(bytes.NewReader(data), mimeType)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrDecodeFailure, err)
	}
	out, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrDecodeFailure, err)
	}
	return string(out), nil
}
