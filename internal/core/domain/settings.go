package domain

import "time"

const unknownDescription = "Unknown"

// ClipboardTool selects the command-line backend for structured clipboard access.
type ClipboardTool string

// Available clipboard tools.
const (
	// ClipboardToolAuto picks wl-clipboard on Wayland and xclip on X11.
	ClipboardToolAuto ClipboardTool = "auto"

	// ClipboardToolWayland uses wl-copy and wl-paste.
	ClipboardToolWayland ClipboardTool = "wl-clipboard"

	// ClipboardToolXclip uses xclip.
	ClipboardToolXclip ClipboardTool = "xclip"

	// ClipboardToolNone disables the structured tier entirely.
	ClipboardToolNone ClipboardTool = "none"
)

// IsValid returns true if the tool is recognised.
func (t ClipboardTool) IsValid() bool {
	switch t {
	case ClipboardToolAuto, ClipboardToolWayland, ClipboardToolXclip, ClipboardToolNone:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t ClipboardTool) String() string {
	return string(t)
}

// Description returns a human-readable description of the tool.
func (t ClipboardTool) Description() string {
	switch t {
	case ClipboardToolAuto:
		return "Auto (detect from session)"
	case ClipboardToolWayland:
		return "wl-clipboard (Wayland)"
	case ClipboardToolXclip:
		return "xclip (X11)"
	case ClipboardToolNone:
		return "None (plain-text fallback only)"
	default:
		return unknownDescription
	}
}

// AllClipboardTools returns all clipboard tool options.
func AllClipboardTools() []ClipboardTool {
	return []ClipboardTool{
		ClipboardToolAuto,
		ClipboardToolWayland,
		ClipboardToolXclip,
		ClipboardToolNone,
	}
}

// ListenMode identifies a kind of event listener.
type ListenMode string

// Listener modes.
const (
	ListenPaste ListenMode = "paste"
	ListenDrop  ListenMode = "drop"
)

// HistorySettings configures the history ledger.
type HistorySettings struct {
	// MaxItems is the ledger capacity.
	MaxItems int

	// Visible is the initial visibility of the history panel.
	Visible bool
}

// ClipboardSettings configures platform clipboard access.
type ClipboardSettings struct {
	// Tool is the structured clipboard backend.
	Tool ClipboardTool
}

// ExtractSettings configures the source extractor.
type ExtractSettings struct {
	// Concurrency bounds parallel blob reads within one cycle.
	Concurrency int
}

// WatchSettings configures the paste and drop listeners.
type WatchSettings struct {
	// Interval is the clipboard poll interval in paste mode.
	Interval time.Duration

	// DropDir is the directory watched in drop mode.
	DropDir string
}

// AnalysisSettings configures the content analyzer.
type AnalysisSettings struct {
	// Markdown enables the Markdown rendition of HTML items.
	Markdown bool

	// CacheSize bounds the analysis memo cache. Zero disables it.
	CacheSize int
}

// Settings is the aggregate of all application settings.
type Settings struct {
	History   HistorySettings
	Clipboard ClipboardSettings
	Extract   ExtractSettings
	Watch     WatchSettings
	Analysis  AnalysisSettings
}

// DefaultHistoryCapacity is the default ledger capacity.
const DefaultHistoryCapacity = 20

// DefaultSettings returns the default settings.
// DropDir is left empty; the settings service resolves it under the config dir.
func DefaultSettings() Settings {
	return Settings{
		History: HistorySettings{
			MaxItems: DefaultHistoryCapacity,
			Visible:  false,
		},
		Clipboard: ClipboardSettings{
			Tool: ClipboardToolAuto,
		},
		Extract: ExtractSettings{
			Concurrency: 4,
		},
		Watch: WatchSettings{
			Interval: 500 * time.Millisecond,
		},
		Analysis: AnalysisSettings{
			Markdown:  true,
			CacheSize: 256,
		},
	}
}
