package driven

import "context"

// Blob is a readable binary payload with a declared MIME type.
type Blob interface {
	// Type returns the blob's own declared MIME type.
	Type() string

	// Size returns the size in bytes.
	Size() int64

	// Bytes reads the full content. It may block.
	Bytes(ctx context.Context) ([]byte, error)
}

// File is a named Blob.
type File interface {
	Blob

	// Name returns the file name.
	Name() string
}

// Payload is anything the extractor accepts.
// Concrete payloads implement DataTransfer or ClipboardItem.
type Payload interface {
	// Types returns the MIME types the payload advertises.
	Types() []string
}

// DataTransfer is a paste or drop payload.
type DataTransfer interface {
	Payload

	// GetData returns the textual data for an advertised type.
	GetData(mimeType string) (string, error)

	// Files returns files attached directly to the payload.
	Files() []File

	// Items returns the structured items of the payload.
	Items() []TransferItem
}

// TransferItem is one structured item of a DataTransfer.
type TransferItem interface {
	// Kind is "file" or "string".
	Kind() string

	// Type is the item's MIME type.
	Type() string

	// AsFile resolves the item to a file, if it is one.
	AsFile() (File, bool)
}

// ClipboardItem is one item returned by a clipboard read.
type ClipboardItem interface {
	Payload

	// GetType fetches the data for an advertised type. It may block.
	GetType(ctx context.Context, mimeType string) (Blob, error)
}
