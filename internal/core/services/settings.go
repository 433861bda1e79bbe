package services

import (
	"fmt"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/clipscope/internal/core/domain"
	"github.com/custodia-labs/clipscope/internal/core/ports/driven"
	"github.com/custodia-labs/clipscope/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyHistoryMaxItems    = "history.max_items"
	keyHistoryVisible     = "history.visible"
	keyClipboardTool      = "clipboard.tool"
	keyExtractConcurrency = "extract.concurrency"
	keyWatchIntervalMs    = "watch.interval_ms"
	keyWatchDropDir       = "watch.drop_dir"
	keyAnalysisMarkdown   = "analysis.markdown"
	keyAnalysisCacheSize  = "analysis.cache_size"
)

// dropDirName is the default drop directory under the config directory.
const dropDirName = "drop"

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
// Missing or invalid values fall back to defaults.
func (s *SettingsService) Get() (*domain.Settings, error) {
	defaults := s.GetDefaults()

	settings := &domain.Settings{
		History: domain.HistorySettings{
			MaxItems: s.getPositiveInt(keyHistoryMaxItems, defaults.History.MaxItems),
			Visible:  s.getBool(keyHistoryVisible, defaults.History.Visible),
		},
		Clipboard: domain.ClipboardSettings{
			Tool: s.getClipboardTool(defaults.Clipboard.Tool),
		},
		Extract: domain.ExtractSettings{
			Concurrency: s.getPositiveInt(keyExtractConcurrency, defaults.Extract.Concurrency),
		},
		Watch: domain.WatchSettings{
			Interval: time.Duration(s.getPositiveInt(keyWatchIntervalMs, int(defaults.Watch.Interval/time.Millisecond))) * time.Millisecond,
			DropDir:  s.getString(keyWatchDropDir, defaults.Watch.DropDir),
		},
		Analysis: domain.AnalysisSettings{
			Markdown:  s.getBool(keyAnalysisMarkdown, defaults.Analysis.Markdown),
			CacheSize: s.getNonNegativeInt(keyAnalysisCacheSize, defaults.Analysis.CacheSize),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.Settings) error {
	if settings == nil {
		return domain.ErrInvalidInput
	}
	if !settings.Clipboard.Tool.IsValid() {
		return fmt.Errorf("invalid clipboard tool: %s", settings.Clipboard.Tool)
	}

	values := []struct {
		key   string
		value any
	}{
		{keyHistoryMaxItems, settings.History.MaxItems},
		{keyHistoryVisible, settings.History.Visible},
		{keyClipboardTool, settings.Clipboard.Tool.String()},
		{keyExtractConcurrency, settings.Extract.Concurrency},
		{keyWatchIntervalMs, int(settings.Watch.Interval / time.Millisecond)},
		{keyWatchDropDir, settings.Watch.DropDir},
		{keyAnalysisMarkdown, settings.Analysis.Markdown},
		{keyAnalysisCacheSize, settings.Analysis.CacheSize},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}

	return s.configStore.Save()
}

// Set updates a single setting from its string form and persists it.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	value = strings.TrimSpace(value)
	switch key {
	case keyHistoryMaxItems:
		settings.History.MaxItems, err = parsePositive(key, value)
	case keyHistoryVisible:
		settings.History.Visible, err = parseBool(key, value)
	case keyClipboardTool:
		tool := domain.ClipboardTool(value)
		if !tool.IsValid() {
			return fmt.Errorf("invalid clipboard tool: %s", value)
		}
		settings.Clipboard.Tool = tool
	case keyExtractConcurrency:
		settings.Extract.Concurrency, err = parsePositive(key, value)
	case keyWatchIntervalMs:
		var ms int
		ms, err = parsePositive(key, value)
		settings.Watch.Interval = time.Duration(ms) * time.Millisecond
	case keyWatchDropDir:
		settings.Watch.DropDir = value
	case keyAnalysisMarkdown:
		settings.Analysis.Markdown, err = parseBool(key, value)
	case keyAnalysisCacheSize:
		settings.Analysis.CacheSize, err = strconv.Atoi(value)
		if err == nil && settings.Analysis.CacheSize < 0 {
			err = fmt.Errorf("%s must not be negative", key)
		}
	default:
		return fmt.Errorf("unknown setting %q: %w", key, domain.ErrInvalidInput)
	}
	if err != nil {
		return err
	}

	return s.Save(settings)
}

// Reset removes a stored setting so Get falls back to its default.
func (s *SettingsService) Reset(key string) error {
	if !slices.Contains(s.Keys(), key) {
		return fmt.Errorf("unknown setting %q: %w", key, domain.ErrInvalidInput)
	}
	if err := s.configStore.Unset(key); err != nil {
		return fmt.Errorf("reset %s: %w", key, err)
	}
	return s.configStore.Save()
}

// Keys returns the recognised setting keys.
func (s *SettingsService) Keys() []string {
	return []string{
		keyHistoryMaxItems,
		keyHistoryVisible,
		keyClipboardTool,
		keyExtractConcurrency,
		keyWatchIntervalMs,
		keyWatchDropDir,
		keyAnalysisMarkdown,
		keyAnalysisCacheSize,
	}
}

// GetDefaults returns default settings. The drop directory defaults to a
// directory next to the config file.
func (s *SettingsService) GetDefaults() domain.Settings {
	defaults := domain.DefaultSettings()
	if path := s.configStore.Path(); path != "" && !strings.HasPrefix(path, ":") {
		defaults.Watch.DropDir = filepath.Join(filepath.Dir(path), dropDirName)
	}
	return defaults
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getPositiveInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getNonNegativeInt(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	val := s.configStore.GetInt(key)
	if val < 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getClipboardTool(defaultVal domain.ClipboardTool) domain.ClipboardTool {
	val := s.configStore.GetString(keyClipboardTool)
	if val == "" {
		return defaultVal
	}
	tool := domain.ClipboardTool(val)
	if !tool.IsValid() {
		return defaultVal
	}
	return tool
}

func parsePositive(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s must be positive", key)
	}
	return n, nil
}

func parseBool(key, value string) (bool, error) {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
