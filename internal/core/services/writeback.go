package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/clipscope/internal/core/domain"
	"github.com/custodia-labs/clipscope/internal/core/ports/driven"
	"github.com/custodia-labs/clipscope/internal/core/ports/driving"
	"github.com/custodia-labs/clipscope/internal/logger"
)

// Ensure WriteBackService implements the interface.
var _ driving.WriteBackService = (*WriteBackService)(nil)

// Write-back messages.
const (
	msgEmpty       = "Nothing to copy: content is empty"
	msgCopied      = "Copied to clipboard"
	msgCopiedHTML  = "Copied to clipboard as HTML"
	msgDowngraded  = "Copied as plain text (HTML formatting not preserved)"
	msgWriteFailed = "Copy failed: no clipboard mechanism accepted the content"
)

// WriteBackService copies text to the clipboard with two tiers: a structured
// writer that keeps the requested format, and a legacy plain-text writer.
type WriteBackService struct {
	structured driven.StructuredWriter
	legacy     driven.LegacyWriter
	reader     driven.ClipboardReader
	log        logger.Logger
}

// NewWriteBackService creates a write-back service. Any writer may be nil;
// a nil tier counts as unavailable. reader is only used for Capabilities.
func NewWriteBackService(structured driven.StructuredWriter, legacy driven.LegacyWriter, reader driven.ClipboardReader) *WriteBackService {
	return &WriteBackService{
		structured: structured,
		legacy:     legacy,
		reader:     reader,
		log:        logger.With("writeback"),
	}
}

// WriteBack copies text in the requested format.
//
// Blank text fails locally without touching the clipboard. Otherwise the
// structured tier is tried first; on any failure the legacy tier writes
// plain text, and an HTML request is reported as downgraded.
func (s *WriteBackService) WriteBack(ctx context.Context, text string, format domain.TextFormat) domain.CopyResult {
	if strings.TrimSpace(text) == "" {
		return domain.CopyResult{
			Message: msgEmpty,
			Tier:    domain.TierNone,
			Err:     domain.ErrEmptyInput,
		}
	}
	if format != domain.FormatHTML {
		format = domain.FormatPlain
	}

	primaryErr := s.writeStructured(ctx, text, format)
	if primaryErr == nil {
		msg := msgCopied
		if format == domain.FormatHTML {
			msg = msgCopiedHTML
		}
		return domain.CopyResult{Success: true, Message: msg, Tier: domain.TierStructured}
	}
	s.log.Debug("structured write failed, falling back: %v", primaryErr)

	fallbackErr := s.writeLegacy(text)
	if fallbackErr != nil {
		s.log.Warn("clipboard write failed: %v", fallbackErr)
		return domain.CopyResult{
			Message: msgWriteFailed,
			Tier:    domain.TierNone,
			Err: fmt.Errorf("%w: structured: %w; legacy: %w",
				domain.ErrWriteFailure, primaryErr, fallbackErr),
		}
	}

	if format == domain.FormatHTML {
		return domain.CopyResult{Success: true, Message: msgDowngraded, Tier: domain.TierLegacy, Downgraded: true}
	}
	return domain.CopyResult{Success: true, Message: msgCopied, Tier: domain.TierLegacy}
}

// Capabilities reports which clipboard mechanisms are wired.
func (s *WriteBackService) Capabilities() driving.Capabilities {
	return driving.Capabilities{
		Structured: s.structured != nil,
		Legacy:     s.legacy != nil,
		Read:       s.reader != nil,
	}
}

func (s *WriteBackService) writeStructured(ctx context.Context, text string, format domain.TextFormat) error {
	if s.structured == nil {
		return domain.ErrUnsupportedPlatform
	}
	return s.structured.Write(ctx, domain.WriteItem{Format: format, Data: []byte(text)})
}

func (s *WriteBackService) writeLegacy(text string) error {
	if s.legacy == nil {
		return fmt.Errorf("legacy writer: %w", domain.ErrUnsupportedPlatform)
	}
	return s.legacy.WriteText(text)
}
