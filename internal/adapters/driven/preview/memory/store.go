// Package memory provides an in-process preview handle store.
package memory

import (
	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/custodia-labs/clipscope/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.PreviewStore = (*Store)(nil)

// HandlePrefix starts every handle issued by a Store.
const HandlePrefix = "preview://"

// Store keeps preview blobs until their handles are released.
// Handles never expire on their own.
type Store struct {
	cache *gocache.Cache
}

// NewStore creates an empty preview store.
func NewStore() *Store {
	return &Store{
		cache: gocache.New(gocache.NoExpiration, 0),
	}
}

// Allocate registers b and returns a new handle.
func (s *Store) Allocate(b driven.Blob) string {
	handle := HandlePrefix + uuid.NewString()
	s.cache.Set(handle, b, gocache.NoExpiration)
	return handle
}

// Get returns the blob behind handle.
func (s *Store) Get(handle string) (driven.Blob, bool) {
	v, ok := s.cache.Get(handle)
	if !ok {
		return nil, false
	}
	b, ok := v.(driven.Blob)
	return b, ok
}

// Release frees handle. Unknown handles are ignored.
func (s *Store) Release(handle string) {
	s.cache.Delete(handle)
}

// Len returns the number of live handles.
func (s *Store) Len() int {
	return s.cache.ItemCount()
}
