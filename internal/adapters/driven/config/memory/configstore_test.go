package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Seed(t *testing.T) {
	store := NewConfigStore(map[string]any{"history.max_items": 5})

	assert.Equal(t, 5, store.GetInt("history.max_items"))
	assert.Equal(t, Path, store.Path())
}

func TestConfigStore_SetGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("clipboard.tool", "xclip"))

	val, ok := store.Get("clipboard.tool")
	assert.True(t, ok)
	assert.Equal(t, "xclip", val)

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store := NewConfigStore(map[string]any{
		"int":       42,
		"int64":     int64(7),
		"float":     3.0,
		"intstr":    "12",
		"bool":      true,
		"boolstr":   "true",
		"str":       "hello",
		"wrongtype": struct{}{},
	})

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"int", store.GetInt("int"), 42},
		{"int64", store.GetInt("int64"), 7},
		{"float", store.GetInt("float"), 3},
		{"numeric string", store.GetInt("intstr"), 12},
		{"int missing", store.GetInt("missing"), 0},
		{"bool", store.GetBool("bool"), true},
		{"bool string", store.GetBool("boolstr"), true},
		{"bool wrong type", store.GetBool("wrongtype"), false},
		{"string", store.GetString("str"), "hello"},
		{"string wrong type", store.GetString("int"), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestConfigStore_Unset(t *testing.T) {
	store := NewConfigStore(map[string]any{"a": 1})

	require.NoError(t, store.Unset("a"))
	require.NoError(t, store.Unset("missing"))

	_, ok := store.Get("a")
	assert.False(t, ok)
}

func TestConfigStore_SaveCounts(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Save())
	require.NoError(t, store.Save())
	require.NoError(t, store.Load())

	assert.Equal(t, 2, store.Saves())
}

func TestConfigStore_Concurrent(t *testing.T) {
	store := NewConfigStore()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = store.Set("k", n)
			_ = store.GetInt("k")
		}(i)
	}
	wg.Wait()

	_, ok := store.Get("k")
	assert.True(t, ok)
}
