package transfer

import (
	"context"
	"fmt"

	"github.com/custodia-labs/clipscope/internal/core/domain"
	"github.com/custodia-labs/clipscope/internal/core/ports/driven"
)

// Ensure the payload types implement the interfaces.
var (
	_ driven.DataTransfer  = (*DataTransfer)(nil)
	_ driven.TransferItem  = (*Item)(nil)
	_ driven.ClipboardItem = (*ClipboardItem)(nil)
)

// FilesType is the marker type a transfer advertises when it carries files.
const FilesType = "Files"

// Item kinds.
const (
	ItemKindFile   = "file"
	ItemKindString = "string"
)

// Item is one structured item of a DataTransfer.
type Item struct {
	kind     string
	mimeType string
	file     driven.File
}

// FileItem creates a file item.
func FileItem(f driven.File) *Item {
	return &Item{kind: ItemKindFile, mimeType: f.Type(), file: f}
}

// StringItem creates a string item for an advertised type.
func StringItem(mimeType string) *Item {
	return &Item{kind: ItemKindString, mimeType: mimeType}
}

// Kind returns "file" or "string".
func (i *Item) Kind() string { return i.kind }

// Type returns the item's MIME type.
func (i *Item) Type() string { return i.mimeType }

// AsFile returns the item's file.
func (i *Item) AsFile() (driven.File, bool) {
	if i.kind != ItemKindFile || i.file == nil {
		return nil, false
	}
	return i.file, true
}

// DataTransfer is an in-memory paste or drop payload.
// The zero value is empty and ready to use.
type DataTransfer struct {
	types []string
	data  map[string]string
	files []driven.File
	items []driven.TransferItem
}

// NewDataTransfer creates an empty transfer.
func NewDataTransfer() *DataTransfer {
	return &DataTransfer{}
}

// SetData advertises mimeType with textual data.
func (d *DataTransfer) SetData(mimeType, data string) *DataTransfer {
	if d.data == nil {
		d.data = make(map[string]string)
	}
	if _, ok := d.data[mimeType]; !ok {
		d.types = append(d.types, mimeType)
		d.items = append(d.items, StringItem(mimeType))
	}
	d.data[mimeType] = data
	return d
}

// AddFile attaches f through both the file list and the item list,
// as a desktop drop does.
func (d *DataTransfer) AddFile(f driven.File) *DataTransfer {
	d.markFiles()
	d.files = append(d.files, f)
	d.items = append(d.items, FileItem(f))
	return d
}

// AddFileOnly attaches f through the file list alone.
func (d *DataTransfer) AddFileOnly(f driven.File) *DataTransfer {
	d.markFiles()
	d.files = append(d.files, f)
	return d
}

// AddItem appends a structured item.
func (d *DataTransfer) AddItem(it driven.TransferItem) *DataTransfer {
	d.items = append(d.items, it)
	return d
}

func (d *DataTransfer) markFiles() {
	for _, t := range d.types {
		if t == FilesType {
			return
		}
	}
	d.types = append(d.types, FilesType)
}

// Types returns the advertised types in insertion order.
func (d *DataTransfer) Types() []string { return d.types }

// GetData returns the data for an advertised type. The Files marker
// has no textual data and returns "".
func (d *DataTransfer) GetData(mimeType string) (string, error) {
	if mimeType == FilesType {
		return "", nil
	}
	v, ok := d.data[mimeType]
	if !ok {
		return "", fmt.Errorf("type %s: %w", mimeType, domain.ErrNotFound)
	}
	return v, nil
}

// Files returns the attached files.
func (d *DataTransfer) Files() []driven.File { return d.files }

// Items returns the structured items.
func (d *DataTransfer) Items() []driven.TransferItem { return d.items }

// ClipboardItem is one item of a clipboard read, holding a blob per type.
type ClipboardItem struct {
	types []string
	blobs map[string]driven.Blob
	errs  map[string]error
}

// NewClipboardItem creates an item advertising one type per blob.
func NewClipboardItem(blobs ...driven.Blob) *ClipboardItem {
	c := &ClipboardItem{
		blobs: make(map[string]driven.Blob),
		errs:  make(map[string]error),
	}
	for _, b := range blobs {
		c.Add(b.Type(), b)
	}
	return c
}

// Add advertises mimeType backed by b.
func (c *ClipboardItem) Add(mimeType string, b driven.Blob) *ClipboardItem {
	if _, ok := c.blobs[mimeType]; !ok {
		if _, failing := c.errs[mimeType]; !failing {
			c.types = append(c.types, mimeType)
		}
	}
	c.blobs[mimeType] = b
	return c
}

// AddError advertises mimeType whose fetch fails with err.
func (c *ClipboardItem) AddError(mimeType string, err error) *ClipboardItem {
	if _, ok := c.blobs[mimeType]; !ok {
		c.types = append(c.types, mimeType)
	}
	delete(c.blobs, mimeType)
	c.errs[mimeType] = err
	return c
}

// Types returns the advertised types in insertion order.
func (c *ClipboardItem) Types() []string { return c.types }

// GetType returns the blob for an advertised type.
func (c *ClipboardItem) GetType(ctx context.Context, mimeType string) (driven.Blob, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err, ok := c.errs[mimeType]; ok {
		return nil, err
	}
	b, ok := c.blobs[mimeType]
	if !ok {
		return nil, fmt.Errorf("type %s: %w", mimeType, domain.ErrNotFound)
	}
	return b, nil
}
