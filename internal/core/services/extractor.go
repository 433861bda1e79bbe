package services

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/clipscope/internal/classify"
	"github.com/custodia-labs/clipscope/internal/core/domain"
	"github.com/custodia-labs/clipscope/internal/core/ports/driven"
	"github.com/custodia-labs/clipscope/internal/logger"
)

// DefaultExtractConcurrency bounds parallel blob reads within one cycle.
const DefaultExtractConcurrency = 4

// Extractor pulls raw entries out of platform payloads.
// It never fails: per-entry errors are logged and the entry is skipped.
type Extractor struct {
	previews    driven.PreviewStore
	concurrency int
	log         logger.Logger
}

// NewExtractor creates an extractor.
// previews may be nil, in which case no preview handles are allocated.
func NewExtractor(previews driven.PreviewStore, concurrency int) *Extractor {
	if concurrency <= 0 {
		concurrency = DefaultExtractConcurrency
	}
	return &Extractor{
		previews:    previews,
		concurrency: concurrency,
		log:         logger.With("extractor"),
	}
}

// Extract returns the entries of payload in channel order:
// declared-type, then file-list, then item-list.
func (e *Extractor) Extract(ctx context.Context, payload driven.Payload) []domain.RawEntry {
	switch p := payload.(type) {
	case nil:
		return []domain.RawEntry{}
	case driven.DataTransfer:
		var entries []domain.RawEntry
		entries = append(entries, e.declaredText(p)...)
		entries = append(entries, e.fileList(p)...)
		entries = append(entries, e.itemList(p)...)
		return nonNil(entries)
	case driven.ClipboardItem:
		return nonNil(e.declaredBlobs(ctx, p))
	default:
		e.log.Warn("unsupported payload %T", payload)
		return []domain.RawEntry{}
	}
}

// declaredText reads every advertised type of a transfer as text.
func (e *Extractor) declaredText(dt driven.DataTransfer) []domain.RawEntry {
	var entries []domain.RawEntry
	for _, t := range dt.Types() {
		data, err := dt.GetData(t)
		if err != nil {
			e.log.Debug("get %s: %v", t, err)
			continue
		}
		if data == "" {
			continue
		}
		entries = append(entries, domain.RawEntry{
			Channel:  domain.ChannelDeclaredType,
			MIMEHint: t,
			Text:     data,
		})
	}
	return entries
}

// declaredBlobs reads every advertised type of a clipboard item.
// Reads run concurrently; results keep the advertised order.
func (e *Extractor) declaredBlobs(ctx context.Context, item driven.ClipboardItem) []domain.RawEntry {
	types := item.Types()
	slots := make([]*domain.RawEntry, len(types))

	var g errgroup.Group
	g.SetLimit(e.concurrency)
	for i, t := range types {
		g.Go(func() error {
			entry, err := e.readBlob(ctx, item, t)
			if err != nil {
				e.log.Debug("read %s: %v", t, err)
				return nil
			}
			slots[i] = entry
			return nil
		})
	}
	_ = g.Wait()

	var entries []domain.RawEntry
	for _, s := range slots {
		if s != nil {
			entries = append(entries, *s)
		}
	}
	return entries
}

// readBlob returns nil, nil for empty payloads.
func (e *Extractor) readBlob(ctx context.Context, item driven.ClipboardItem, mimeType string) (*domain.RawEntry, error) {
	blob, err := item.GetType(ctx, mimeType)
	if err != nil {
		return nil, err
	}
	if blob == nil || blob.Size() == 0 {
		return nil, nil
	}

	// The blob's own type decides decoding; the advertised type is the hint.
	own := blob.Type()
	if own == "" {
		own = mimeType
	}
	if classify.IsTextLike(own) {
		data, err := blob.Bytes(ctx)
		if err != nil {
			return nil, err
		}
		content, err := decodeText(data, own)
		if err != nil {
			return nil, err
		}
		if content == "" {
			return nil, nil
		}
		return &domain.RawEntry{
			Channel:  domain.ChannelDeclaredType,
			MIMEHint: mimeType,
			Text:     content,
		}, nil
	}

	fd := &domain.FileDescriptor{
		Size:     blob.Size(),
		MIMEHint: mimeType,
	}
	if isImageType(own) {
		fd.PreviewHandle = e.allocate(blob)
	}
	return &domain.RawEntry{
		Channel:  domain.ChannelDeclaredType,
		MIMEHint: mimeType,
		File:     fd,
		Blob:     blob,
	}, nil
}

// fileList records every file attached directly to a transfer.
// Image files get a preview handle eagerly.
func (e *Extractor) fileList(dt driven.DataTransfer) []domain.RawEntry {
	var entries []domain.RawEntry
	for _, f := range dt.Files() {
		if f == nil {
			continue
		}
		fd := describeFile(f)
		if isImageType(f.Type()) {
			fd.PreviewHandle = e.allocate(f)
		}
		entries = append(entries, domain.RawEntry{
			Channel:  domain.ChannelFileList,
			MIMEHint: f.Type(),
			File:     fd,
			Blob:     f,
		})
	}
	return entries
}

// itemList records every structured item that resolves to a file,
// whether or not the file-list channel already produced it.
func (e *Extractor) itemList(dt driven.DataTransfer) []domain.RawEntry {
	var entries []domain.RawEntry
	for _, it := range dt.Items() {
		if it == nil || it.Kind() != "file" {
			continue
		}
		f, ok := it.AsFile()
		if !ok || f == nil {
			e.log.Debug("item %s did not resolve to a file", it.Type())
			continue
		}
		entries = append(entries, domain.RawEntry{
			Channel:  domain.ChannelItemList,
			MIMEHint: f.Type(),
			File:     describeFile(f),
			Blob:     f,
			ItemKind: it.Kind(),
			ItemType: it.Type(),
		})
	}
	return entries
}

func (e *Extractor) allocate(b driven.Blob) string {
	if e.previews == nil {
		return ""
	}
	return e.previews.Allocate(b)
}

func describeFile(f driven.File) *domain.FileDescriptor {
	return &domain.FileDescriptor{
		Name:     f.Name(),
		Size:     f.Size(),
		MIMEHint: f.Type(),
	}
}

func isImageType(mimeType string) bool {
	return strings.HasPrefix(classify.Normalize(mimeType), "image/")
}

func nonNil(entries []domain.RawEntry) []domain.RawEntry {
	if entries == nil {
		return []domain.RawEntry{}
	}
	return entries
}
