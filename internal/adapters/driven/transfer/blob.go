package transfer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/custodia-labs/clipscope/internal/core/ports/driven"
)

// Ensure the blob and file types implement the interfaces.
var (
	_ driven.Blob = (*Blob)(nil)
	_ driven.File = (*File)(nil)
	_ driven.File = (*DiskFile)(nil)
)

// Blob is an in-memory blob.
type Blob struct {
	mimeType string
	data     []byte
	size     int64
	err      error
}

// NewBlob creates a blob holding data.
func NewBlob(mimeType string, data []byte) *Blob {
	return &Blob{mimeType: mimeType, data: data, size: int64(len(data))}
}

// NewFailingBlob creates a blob of the given size whose reads fail with err.
func NewFailingBlob(mimeType string, size int64, err error) *Blob {
	return &Blob{mimeType: mimeType, size: size, err: err}
}

// Type returns the blob's MIME type.
func (b *Blob) Type() string { return b.mimeType }

// Size returns the size in bytes.
func (b *Blob) Size() int64 { return b.size }

// Bytes returns the blob content.
func (b *Blob) Bytes(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if b.err != nil {
		return nil, b.err
	}
	return b.data, nil
}

// File is a named in-memory blob.
type File struct {
	*Blob
	name string
}

// NewFile creates an in-memory file.
func NewFile(name, mimeType string, data []byte) *File {
	return &File{Blob: NewBlob(mimeType, data), name: name}
}

// Name returns the file name.
func (f *File) Name() string { return f.name }

// DiskFile is a file on disk. Its content is read lazily.
type DiskFile struct {
	path     string
	mimeType string
	size     int64
}

// OpenFile stats path and sniffs its MIME type from the content.
func OpenFile(path string) (*DiskFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}

	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return nil, fmt.Errorf("detect %s: %w", path, err)
	}

	return &DiskFile{
		path:     path,
		mimeType: mimeTypeOf(mt),
		size:     info.Size(),
	}, nil
}

// mimeTypeOf strips parameters from a detected type and reports the
// generic fallbacks as unknown.
func mimeTypeOf(mt *mimetype.MIME) string {
	if mt == nil || mt.Is("application/octet-stream") {
		return ""
	}
	m, _, _ := strings.Cut(mt.String(), ";")
	return strings.TrimSpace(m)
}

// Name returns the base name of the file.
func (f *DiskFile) Name() string { return filepath.Base(f.path) }

// Path returns the full path of the file.
func (f *DiskFile) Path() string { return f.path }

// Type returns the sniffed MIME type, or "" when unrecognised.
func (f *DiskFile) Type() string { return f.mimeType }

// Size returns the size in bytes at open time.
func (f *DiskFile) Size() int64 { return f.size }

// Bytes reads the file.
func (f *DiskFile) Bytes(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(f.path)
}
