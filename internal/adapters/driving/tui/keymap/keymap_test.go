package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
}

func TestDefaultKeyMap_Bindings(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
		keys    []string
	}{
		{"quit", km.Quit, []string{"q", "ctrl+c"}},
		{"help", km.Help, []string{"?"}},
		{"back", km.Back, []string{"esc"}},
		{"up", km.Up, []string{"up", "k"}},
		{"down", km.Down, []string{"down", "j"}},
		{"scroll up", km.ScrollUp, []string{"pgup", "ctrl+u"}},
		{"scroll down", km.ScrollDown, []string{"pgdown", "ctrl+d"}},
		{"read", km.Read, []string{"r"}},
		{"copy", km.Copy, []string{"c"}},
		{"copy plain", km.CopyPlain, []string{"C"}},
		{"history", km.History, []string{"h"}},
		{"clear", km.Clear, []string{"x"}},
		{"restore", km.Restore, []string{"enter"}},
		{"watch", km.Watch, []string{"w"}},
		{"focus", km.Focus, []string{"tab"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.keys, tt.binding.Keys())
			assert.NotEmpty(t, tt.binding.Help().Desc)
		})
	}
}

func TestKeyMap_ShortHelp(t *testing.T) {
	km := DefaultKeyMap()

	help := km.ShortHelp()

	require.Len(t, help, 5)
	assert.Equal(t, km.Read.Keys(), help[0].Keys())
	assert.Equal(t, km.Quit.Keys(), help[4].Keys())
}

func TestKeyMap_HistoryHelp(t *testing.T) {
	km := DefaultKeyMap()

	help := km.HistoryHelp()

	require.Len(t, help, 4)
	assert.Equal(t, km.Restore.Keys(), help[0].Keys())
}

func TestKeyMap_FullHelp(t *testing.T) {
	km := DefaultKeyMap()

	groups := km.FullHelp()

	require.Len(t, groups, 4)
	total := 0
	for _, g := range groups {
		total += len(g)
	}
	assert.Equal(t, 15, total)
}

func TestMatches(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("q", km.Quit))
	assert.True(t, Matches("ctrl+c", km.Quit))
	assert.True(t, Matches("C", km.CopyPlain))
	assert.False(t, Matches("c", km.CopyPlain))
	assert.False(t, Matches("", km.Read))
}
