package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	configmem "github.com/custodia-labs/clipscope/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/clipscope/internal/core/domain"
)

// pathStore reports a real-looking config path.
type pathStore struct {
	*configmem.ConfigStore
	path string
}

func (s pathStore) Path() string { return s.path }

func TestSettingsService_Defaults(t *testing.T) {
	svc := NewSettingsService(configmem.NewConfigStore())

	settings, err := svc.Get()
	require.NoError(t, err)

	want := domain.DefaultSettings()
	assert.Equal(t, want, *settings)
	assert.Empty(t, settings.Watch.DropDir, "in-memory store has no directory")
}

func TestSettingsService_DropDirFollowsConfigPath(t *testing.T) {
	svc := NewSettingsService(pathStore{configmem.NewConfigStore(), "/home/u/.clipscope/config.toml"})

	defaults := svc.GetDefaults()

	assert.Equal(t, "/home/u/.clipscope/drop", defaults.Watch.DropDir)
}

func TestSettingsService_StoredValues(t *testing.T) {
	store := configmem.NewConfigStore(map[string]any{
		"history.max_items":   int64(5),
		"history.visible":     true,
		"clipboard.tool":      "xclip",
		"extract.concurrency": 2,
		"watch.interval_ms":   "250",
		"watch.drop_dir":      "/tmp/drop",
		"analysis.markdown":   false,
		"analysis.cache_size": 0,
	})
	svc := NewSettingsService(store)

	s, err := svc.Get()
	require.NoError(t, err)

	assert.Equal(t, 5, s.History.MaxItems)
	assert.True(t, s.History.Visible)
	assert.Equal(t, domain.ClipboardToolXclip, s.Clipboard.Tool)
	assert.Equal(t, 2, s.Extract.Concurrency)
	assert.Equal(t, 250*time.Millisecond, s.Watch.Interval)
	assert.Equal(t, "/tmp/drop", s.Watch.DropDir)
	assert.False(t, s.Analysis.Markdown)
	assert.Zero(t, s.Analysis.CacheSize)
}

func TestSettingsService_InvalidValuesFallBack(t *testing.T) {
	store := configmem.NewConfigStore(map[string]any{
		"history.max_items":   -3,
		"clipboard.tool":      "pbcopy",
		"extract.concurrency": "lots",
		"analysis.cache_size": -1,
	})
	svc := NewSettingsService(store)

	s, err := svc.Get()
	require.NoError(t, err)

	defaults := domain.DefaultSettings()
	assert.Equal(t, defaults.History.MaxItems, s.History.MaxItems)
	assert.Equal(t, defaults.Clipboard.Tool, s.Clipboard.Tool)
	assert.Equal(t, defaults.Extract.Concurrency, s.Extract.Concurrency)
	assert.Equal(t, defaults.Analysis.CacheSize, s.Analysis.CacheSize)
}

func TestSettingsService_SaveRoundTrip(t *testing.T) {
	store := configmem.NewConfigStore()
	svc := NewSettingsService(store)

	s := domain.DefaultSettings()
	s.History.MaxItems = 7
	s.Clipboard.Tool = domain.ClipboardToolNone
	s.Watch.Interval = time.Second
	require.NoError(t, svc.Save(&s))

	got, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, s, *got)
	assert.Equal(t, 1, store.Saves())
}

func TestSettingsService_SaveRejectsInvalid(t *testing.T) {
	store := configmem.NewConfigStore()
	svc := NewSettingsService(store)

	assert.ErrorIs(t, svc.Save(nil), domain.ErrInvalidInput)

	s := domain.DefaultSettings()
	s.Clipboard.Tool = "pbcopy"
	assert.Error(t, svc.Save(&s))
	assert.Zero(t, store.Saves())
}

func TestSettingsService_Set(t *testing.T) {
	tests := []struct {
		key   string
		value string
		check func(t *testing.T, s *domain.Settings)
	}{
		{"history.max_items", "12", func(t *testing.T, s *domain.Settings) { assert.Equal(t, 12, s.History.MaxItems) }},
		{"history.visible", "true", func(t *testing.T, s *domain.Settings) { assert.True(t, s.History.Visible) }},
		{"clipboard.tool", "wl-clipboard", func(t *testing.T, s *domain.Settings) {
			assert.Equal(t, domain.ClipboardToolWayland, s.Clipboard.Tool)
		}},
		{"extract.concurrency", " 8 ", func(t *testing.T, s *domain.Settings) { assert.Equal(t, 8, s.Extract.Concurrency) }},
		{"watch.interval_ms", "100", func(t *testing.T, s *domain.Settings) {
			assert.Equal(t, 100*time.Millisecond, s.Watch.Interval)
		}},
		{"watch.drop_dir", "/srv/in", func(t *testing.T, s *domain.Settings) { assert.Equal(t, "/srv/in", s.Watch.DropDir) }},
		{"analysis.markdown", "false", func(t *testing.T, s *domain.Settings) { assert.False(t, s.Analysis.Markdown) }},
		{"analysis.cache_size", "0", func(t *testing.T, s *domain.Settings) { assert.Zero(t, s.Analysis.CacheSize) }},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			svc := NewSettingsService(configmem.NewConfigStore())

			require.NoError(t, svc.Set(tt.key, tt.value))

			s, err := svc.Get()
			require.NoError(t, err)
			tt.check(t, s)
		})
	}
}

func TestSettingsService_SetErrors(t *testing.T) {
	svc := NewSettingsService(configmem.NewConfigStore())

	assert.ErrorIs(t, svc.Set("history.colour", "red"), domain.ErrInvalidInput)
	assert.Error(t, svc.Set("clipboard.tool", "pbcopy"))
	assert.Error(t, svc.Set("history.max_items", "0"))
	assert.Error(t, svc.Set("history.max_items", "ten"))
	assert.Error(t, svc.Set("history.visible", "maybe"))
	assert.Error(t, svc.Set("analysis.cache_size", "-5"))
}

func TestSettingsService_Keys(t *testing.T) {
	svc := NewSettingsService(configmem.NewConfigStore())

	keys := svc.Keys()

	assert.Len(t, keys, 8)
	assert.Contains(t, keys, "clipboard.tool")
	assert.Contains(t, keys, "watch.drop_dir")
}

func TestSettingsService_Reset(t *testing.T) {
	store := configmem.NewConfigStore(map[string]any{"history.max_items": 5})
	svc := NewSettingsService(store)

	require.NoError(t, svc.Reset("history.max_items"))

	s, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultHistoryCapacity, s.History.MaxItems)

	assert.ErrorIs(t, svc.Reset("history.colour"), domain.ErrInvalidInput)
}
