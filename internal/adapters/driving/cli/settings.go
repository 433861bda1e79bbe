package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/clipscope/internal/adapters/driving/render"
	"github.com/custodia-labs/clipscope/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change clipscope settings. Settings are stored in
config.toml under the config directory.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Change a single setting and save it.

Available keys:
  history.max_items    - history capacity (positive integer)
  history.visible      - show the history panel at start (true/false)
  clipboard.tool       - auto, wl-clipboard, xclip or none
  extract.concurrency  - parallel clipboard reads (positive integer)
  watch.interval_ms    - clipboard poll interval in milliseconds
  watch.drop_dir       - directory watched for dropped files
  analysis.markdown    - render HTML as Markdown (true/false)
  analysis.cache_size  - analysis cache entries (0 disables)`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset <key>",
	Short: "Restore a setting to its default",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsReset,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	rootCmd.AddCommand(settingsCmd)
}

// settingsView is the serialisable form of domain.Settings.
type settingsView struct {
	HistoryMaxItems    int    `json:"history_max_items" yaml:"history_max_items"`
	HistoryVisible     bool   `json:"history_visible" yaml:"history_visible"`
	ClipboardTool      string `json:"clipboard_tool" yaml:"clipboard_tool"`
	ExtractConcurrency int    `json:"extract_concurrency" yaml:"extract_concurrency"`
	WatchIntervalMs    int64  `json:"watch_interval_ms" yaml:"watch_interval_ms"`
	WatchDropDir       string `json:"watch_drop_dir" yaml:"watch_drop_dir"`
	AnalysisMarkdown   bool   `json:"analysis_markdown" yaml:"analysis_markdown"`
	AnalysisCacheSize  int    `json:"analysis_cache_size" yaml:"analysis_cache_size"`
}

func viewSettings(s *domain.Settings) settingsView {
	return settingsView{
		HistoryMaxItems:    s.History.MaxItems,
		HistoryVisible:     s.History.Visible,
		ClipboardTool:      s.Clipboard.Tool.String(),
		ExtractConcurrency: s.Extract.Concurrency,
		WatchIntervalMs:    s.Watch.Interval.Milliseconds(),
		WatchDropDir:       s.Watch.DropDir,
		AnalysisMarkdown:   s.Analysis.Markdown,
		AnalysisCacheSize:  s.Analysis.CacheSize,
	}
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if f := format(); f != render.FormatText {
		return render.Encode(cmd.OutOrStdout(), f, viewSettings(settings))
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[History]")
	cmd.Printf("  Capacity: %d\n", settings.History.MaxItems)
	cmd.Printf("  Visible: %t\n", settings.History.Visible)
	cmd.Println()

	cmd.Println("[Clipboard]")
	cmd.Printf("  Tool: %s\n", settings.Clipboard.Tool.Description())
	if writeBackService != nil {
		caps := writeBackService.Capabilities()
		cmd.Printf("  Structured: %s\n", available(caps.Structured))
		cmd.Printf("  Fallback: %s\n", available(caps.Legacy))
	}
	cmd.Println()

	cmd.Println("[Extract]")
	cmd.Printf("  Concurrency: %d\n", settings.Extract.Concurrency)
	cmd.Println()

	cmd.Println("[Watch]")
	cmd.Printf("  Interval: %s\n", settings.Watch.Interval)
	cmd.Printf("  Drop directory: %s\n", settings.Watch.DropDir)
	cmd.Println()

	cmd.Println("[Analysis]")
	cmd.Printf("  Markdown: %t\n", settings.Analysis.Markdown)
	cmd.Printf("  Cache size: %d\n", settings.Analysis.CacheSize)

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := strings.ToLower(args[0]), args[1]
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("%s = %s\n", key, value)
	return nil
}

func runSettingsReset(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key := strings.ToLower(args[0])
	if err := settingsService.Reset(key); err != nil {
		return fmt.Errorf("failed to reset %s: %w", key, err)
	}

	cmd.Printf("%s reset to default\n", key)
	return nil
}

func available(ok bool) string {
	if ok {
		return "available"
	}
	return "unavailable"
}
