package services

import (
	"context"
	"slices"

	"github.com/custodia-labs/clipscope/internal/classify"
	"github.com/custodia-labs/clipscope/internal/core/domain"
	"github.com/custodia-labs/clipscope/internal/core/ports/driven"
	"github.com/custodia-labs/clipscope/internal/logger"
)

// Normalizer turns raw entries into classified, deduplicated items.
type Normalizer struct {
	analyzer *ContentAnalyzer
	previews driven.PreviewStore
	log      logger.Logger
}

// NewNormalizer creates a normalizer.
// previews may be nil, in which case no preview handles are allocated.
func NewNormalizer(analyzer *ContentAnalyzer, previews driven.PreviewStore) *Normalizer {
	if analyzer == nil {
		analyzer = NewContentAnalyzer(nil, 0)
	}
	return &Normalizer{
		analyzer: analyzer,
		previews: previews,
		log:      logger.With("normalizer"),
	}
}

// Normalize classifies entries and collapses duplicate files.
//
// Entries are processed declared-type first, then file-list, then
// item-list. Declared-type entries are always kept. File entries are
// deduplicated on (name, size, MIME type) and the first occurrence wins,
// so a file seen through both file channels is attributed to file-list.
func (n *Normalizer) Normalize(ctx context.Context, entries []domain.RawEntry) []domain.DataItem {
	ordered := slices.Clone(entries)
	slices.SortStableFunc(ordered, func(a, b domain.RawEntry) int {
		return a.Channel.Rank() - b.Channel.Rank()
	})

	items := make([]domain.DataItem, 0, len(ordered))
	seen := make(map[string]bool)
	for _, e := range ordered {
		switch {
		case !e.IsFile():
			items = append(items, n.textItem(ctx, e))
		case e.Channel == domain.ChannelDeclaredType:
			items = append(items, n.blobItem(ctx, e))
		default:
			key := e.File.DedupKey()
			if seen[key] {
				n.log.Debug("duplicate %s file %q dropped", e.Channel, e.File.Name)
				n.release(e.File.PreviewHandle)
				continue
			}
			seen[key] = true
			items = append(items, n.fileItem(e))
		}
	}
	return items
}

func (n *Normalizer) textItem(ctx context.Context, e domain.RawEntry) domain.DataItem {
	md := n.analyzer.Text(ctx, e.Text, e.MIMEHint)
	md.Channel = e.Channel
	return domain.DataItem{
		Kind:     classify.KindOfText(e.MIMEHint, e.Text),
		Text:     e.Text,
		ByteSize: int64(len(e.Text)),
		Metadata: md,
	}
}

// blobItem handles binary declared-type entries. Blobs with a structure
// analyser (PDF) get its details; the rest get the file stub.
func (n *Normalizer) blobItem(ctx context.Context, e domain.RawEntry) domain.DataItem {
	fd := *e.File
	item := domain.DataItem{
		Kind:          classify.Kind(e.MIMEHint),
		File:          &fd,
		ByteSize:      fd.Size,
		PreviewHandle: fd.PreviewHandle,
		Metadata:      fileStub(e),
	}
	if b, ok := e.Blob.(driven.Blob); ok {
		md := n.analyzer.Blob(ctx, b, e.MIMEHint)
		if md.Details != nil {
			item.Metadata.Details = md.Details
		}
	}
	return item
}

// fileItem handles file-list and item-list entries. No content analysis
// is done; an item-list image without a preview gets one here.
func (n *Normalizer) fileItem(e domain.RawEntry) domain.DataItem {
	fd := *e.File
	kind := classify.KindOfFile(e.MIMEHint, fd)
	if kind.IsImage() && fd.PreviewHandle == "" && n.previews != nil {
		if b, ok := e.Blob.(driven.Blob); ok {
			fd.PreviewHandle = n.previews.Allocate(b)
		}
	}
	return domain.DataItem{
		Kind:          kind,
		File:          &fd,
		ByteSize:      fd.Size,
		PreviewHandle: fd.PreviewHandle,
		Metadata:      fileStub(e),
	}
}

func (n *Normalizer) release(handle string) {
	if handle != "" && n.previews != nil {
		n.previews.Release(handle)
	}
}

func fileStub(e domain.RawEntry) domain.Metadata {
	return domain.Metadata{
		MIMEHint:      e.MIMEHint,
		FormattedSize: formatSize(e.File.Size),
		Channel:       e.Channel,
		Details: &domain.FileDetails{
			Name:     e.File.Name,
			Size:     e.File.Size,
			MIMEType: e.File.MIMEHint,
			ItemKind: e.ItemKind,
			ItemType: e.ItemType,
		},
	}
}
