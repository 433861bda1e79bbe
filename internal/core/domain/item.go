package domain

import "strconv"

// Channel identifies which part of a platform payload an entry came through.
type Channel string

// Extraction channels, in dedup precedence order.
const (
	// ChannelDeclaredType carries data advertised under a MIME type.
	ChannelDeclaredType Channel = "declared-type"

	// ChannelFileList carries files attached directly to the payload.
	ChannelFileList Channel = "file-list"

	// ChannelItemList carries structured items that resolve to files.
	ChannelItemList Channel = "item-list"
)

// Rank returns the processing order of the channel (lower runs first).
func (c Channel) Rank() int {
	switch c {
	case ChannelDeclaredType:
		return 0
	case ChannelFileList:
		return 1
	case ChannelItemList:
		return 2
	default:
		return 3
	}
}

// FileLike is the minimal view of a file the classifier needs.
type FileLike interface {
	// FileName returns the file name including extension.
	FileName() string

	// FileType returns the file's own declared MIME type.
	FileType() string
}

// FileDescriptor describes a file or binary blob seen in a payload.
type FileDescriptor struct {
	// Name is the file name. Empty for anonymous blobs.
	Name string

	// Size is the size in bytes.
	Size int64

	// MIMEHint is the declared MIME type of the file.
	MIMEHint string

	// PreviewHandle references a preview resource for image files.
	// The caller releases it when the item is discarded.
	PreviewHandle string
}

// Ensure FileDescriptor satisfies FileLike.
var _ FileLike = FileDescriptor{}

// FileName implements FileLike.
func (f FileDescriptor) FileName() string { return f.Name }

// FileType implements FileLike.
func (f FileDescriptor) FileType() string { return f.MIMEHint }

// DedupKey returns the composite key used to collapse duplicate files.
func (f FileDescriptor) DedupKey() string {
	return f.Name + "\x00" + f.MIMEHint + "\x00" + strconv.FormatInt(f.Size, 10)
}

// RawEntry is an unclassified, source-tagged unit produced by extraction.
// Exactly one of Text or File is the payload.
type RawEntry struct {
	// Channel is where the entry came from.
	Channel Channel

	// MIMEHint is the declared MIME type.
	MIMEHint string

	// Text is the payload for textual entries.
	Text string

	// File is the payload for file and binary entries.
	File *FileDescriptor

	// Blob keeps a reference to the bytes behind File when available.
	// It is opaque to the domain and consumed by the analyzer.
	Blob any

	// ItemKind and ItemType record the structured item an item-list entry
	// was resolved from.
	ItemKind string
	ItemType string
}

// IsFile returns true if the entry carries a file payload.
func (e RawEntry) IsFile() bool {
	return e.File != nil
}

// DataItem is a classified, metadata-enriched record exposed to callers.
// It is created once by the normalizer and not modified afterwards.
type DataItem struct {
	// Kind is the derived classification.
	Kind DataKind

	// Text is the content for textual items.
	Text string

	// File is the content for file and binary items.
	File *FileDescriptor

	// ByteSize is the size in bytes (UTF-8 length for text).
	ByteSize int64

	// PreviewHandle references a preview for image items.
	PreviewHandle string

	// Metadata holds analysis results.
	Metadata Metadata
}

// IsFile returns true if the item carries a file payload.
func (i DataItem) IsFile() bool {
	return i.File != nil
}

// Label returns a short display label for the item.
func (i DataItem) Label() string {
	if i.File != nil && i.File.Name != "" {
		return i.File.Name
	}
	return i.Kind.Description()
}
