package memory

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/clipscope/internal/adapters/driven/transfer"
)

func TestStore_AllocateGetRelease(t *testing.T) {
	s := NewStore()
	b := transfer.NewBlob("image/png", []byte{1})

	h := s.Allocate(b)
	assert.True(t, strings.HasPrefix(h, HandlePrefix))
	assert.Equal(t, 1, s.Len())

	got, ok := s.Get(h)
	require.True(t, ok)
	assert.Same(t, b, got)

	s.Release(h)
	_, ok = s.Get(h)
	assert.False(t, ok)
	assert.Zero(t, s.Len())
}

func TestStore_UniqueHandles(t *testing.T) {
	s := NewStore()
	b := transfer.NewBlob("image/png", nil)

	assert.NotEqual(t, s.Allocate(b), s.Allocate(b))
	assert.Equal(t, 2, s.Len())
}

func TestStore_ReleaseUnknown(t *testing.T) {
	s := NewStore()
	assert.NotPanics(t, func() { s.Release("preview://missing") })
}
