package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"github.com/dustin/go-humanize"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/custodia-labs/clipscope/internal/analysers"
	"github.com/custodia-labs/clipscope/internal/analysers/text"
	"github.com/custodia-labs/clipscope/internal/classify"
	"github.com/custodia-labs/clipscope/internal/core/domain"
	"github.com/custodia-labs/clipscope/internal/core/ports/driven"
	"github.com/custodia-labs/clipscope/internal/core/ports/driving"
	"github.com/custodia-labs/clipscope/internal/logger"
)

// Ensure ContentAnalyzer implements the interface.
var _ driving.ClassifierService = (*ContentAnalyzer)(nil)

// ContentAnalyzer produces metadata for text and blob content.
// It never fails outward: every failure degrades the metadata instead.
type ContentAnalyzer struct {
	registry *analysers.Registry
	memo     *lru.Cache[string, domain.Metadata]
	log      logger.Logger
}

// NewContentAnalyzer creates an analyzer backed by registry.
// cacheSize bounds the memo of text results; zero disables it.
func NewContentAnalyzer(registry *analysers.Registry, cacheSize int) *ContentAnalyzer {
	if registry == nil {
		registry = analysers.NewRegistry()
	}
	a := &ContentAnalyzer{
		registry: registry,
		log:      logger.With("analyzer"),
	}
	if cacheSize > 0 {
		memo, err := lru.New[string, domain.Metadata](cacheSize)
		if err == nil {
			a.memo = memo
		}
	}
	return a
}

// ClassifyText returns the kind of a text sample.
func (a *ContentAnalyzer) ClassifyText(mimeType, content string) domain.DataKind {
	return classify.KindOfText(mimeType, content)
}

// AnalyzeText classifies and analyses a text sample.
func (a *ContentAnalyzer) AnalyzeText(mimeType, content string) (domain.DataKind, domain.Metadata) {
	return classify.KindOfText(mimeType, content), a.Text(context.Background(), content, mimeType)
}

// Text analyses string content declared with mimeType.
// Structural details are attached only when the classified kind has an analyser.
func (a *ContentAnalyzer) Text(ctx context.Context, content, mimeType string) domain.Metadata {
	key := memoKey(mimeType, content)
	if a.memo != nil {
		if md, ok := a.memo.Get(key); ok {
			return md
		}
	}

	kind := classify.KindOfText(mimeType, content)
	details := text.Analyse(content, mimeType)
	md := domain.Metadata{
		MIMEHint:      mimeType,
		FormattedSize: formatSize(int64(len(content))),
		Text:          &details,
		Details:       a.structure(ctx, driven.AnalysisInput{Kind: kind, MIMEHint: mimeType, Text: content}),
	}

	if a.memo != nil {
		a.memo.Add(key, md)
	}
	return md
}

// Blob analyses binary content declared with mimeType.
// Text-like blobs are decoded and analysed as text; a read or decode failure
// leaves only the size and MIME fields. Other blobs get structural details
// when an analyser exists for their kind.
func (a *ContentAnalyzer) Blob(ctx context.Context, blob driven.Blob, mimeType string) domain.Metadata {
	md := domain.Metadata{
		MIMEHint:      mimeType,
		FormattedSize: formatSize(blob.Size()),
	}

	if classify.IsTextLike(mimeType) {
		data, err := blob.Bytes(ctx)
		if err != nil {
			a.log.Debug("read %s blob: %v", mimeType, err)
			return md
		}
		content, err := decodeText(data, mimeType)
		if err != nil {
			a.log.Debug("decode %s blob: %v", mimeType, err)
			return md
		}
		tmd := a.Text(ctx, content, mimeType)
		tmd.FormattedSize = md.FormattedSize
		return tmd
	}

	kind := classify.Kind(mimeType)
	if !a.registry.Has(kind) {
		return md
	}
	data, err := blob.Bytes(ctx)
	if err != nil {
		a.log.Debug("read %s blob: %v", mimeType, err)
		return md
	}
	md.Details = a.structure(ctx, driven.AnalysisInput{Kind: kind, MIMEHint: mimeType, Data: data})
	return md
}

func (a *ContentAnalyzer) structure(ctx context.Context, in driven.AnalysisInput) domain.Details {
	d, err := a.registry.Analyse(ctx, in)
	if err != nil {
		a.log.Debug("%s structure: %v", in.Kind, err)
		return nil
	}
	return d
}

func memoKey(mimeType, content string) string {
	h := sha256.New()
	h.Write([]byte(mimeType))
	h.Write([]byte{0})
	h.Write([]byte(content))
	return hex.EncodeToString(h.Sum(nil))
}

// formatSize renders a byte count the way the inspector shows it.
func formatSize(n int64) string {
	if n < 0 {
		n = 0
	}
	return humanize.IBytes(uint64(n))
}
