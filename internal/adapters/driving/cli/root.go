// Package cli provides the cobra command tree for clipscope.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/clipscope/internal/adapters/driving/render"
	"github.com/custodia-labs/clipscope/internal/core/ports/driven"
	"github.com/custodia-labs/clipscope/internal/core/ports/driving"
	"github.com/custodia-labs/clipscope/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

// Global flags.
var (
	verbose      bool
	configDir    string
	outputFormat string
)

// Services aggregates everything the commands drive.
type Services struct {
	Inspector  driving.InspectorService
	Classifier driving.ClassifierService
	WriteBack  driving.WriteBackService
	History    driving.HistoryService
	Listeners  driving.ListenerService
	Settings   driving.SettingsService

	// PasteSource builds the clipboard poll source for watch mode.
	PasteSource func() driven.EventSource

	// DropSource builds the drop directory source for watch mode.
	DropSource func(dir string) driven.EventSource
}

// Services injected by main, or lazily by the bootstrap hook.
var (
	inspectorService  driving.InspectorService
	classifierService driving.ClassifierService
	writeBackService  driving.WriteBackService
	historyService    driving.HistoryService
	listenerService   driving.ListenerService
	settingsService   driving.SettingsService
	pasteSource       func() driven.EventSource
	dropSource        func(dir string) driven.EventSource
)

// bootstrap builds the services once flags are parsed.
var bootstrap func(configDir string) (*Services, error)

var rootCmd = &cobra.Command{
	Use:   "clipscope",
	Short: "Inspect, classify and analyse clipboard contents",
	Long: `clipscope reads the system clipboard, pasted text and dropped files,
classifies every entry into a data kind, and reports text statistics and
structural metadata for HTML, RTF, JSON and PDF content.

Run without a subcommand to read the clipboard once.`,
	SilenceUsage:      true,
	PersistentPreRunE: preRun,
	RunE:              runRead,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default $CLIPSCOPE_HOME or ~/.clipscope)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "output format: text, json or yaml")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetBootstrap registers a hook that builds the services after flags are
// parsed. It runs at most once, and only if no services were set directly.
func SetBootstrap(fn func(configDir string) (*Services, error)) {
	bootstrap = fn
}

// SetServices injects the services used by the commands.
func SetServices(s *Services) {
	if s == nil {
		s = &Services{}
	}
	inspectorService = s.Inspector
	classifierService = s.Classifier
	writeBackService = s.WriteBack
	historyService = s.History
	listenerService = s.Listeners
	settingsService = s.Settings
	pasteSource = s.PasteSource
	dropSource = s.DropSource
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func preRun(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if _, err := render.ParseFormat(outputFormat); err != nil {
		return err
	}

	if cmd == versionCmd || bootstrap == nil || inspectorService != nil {
		return nil
	}

	logger.Section("Bootstrap")
	services, err := bootstrap(configDir)
	if err != nil {
		return fmt.Errorf("initialising: %w", err)
	}
	if services == nil {
		return errors.New("initialising: no services")
	}
	SetServices(services)
	return nil
}

// format returns the validated output format.
func format() render.Format {
	f, err := render.ParseFormat(outputFormat)
	if err != nil {
		return render.FormatText
	}
	return f
}

// emitResult writes a parse result in the selected output format.
func emitResult(cmd *cobra.Command, view render.ResultView) error {
	if f := format(); f != render.FormatText {
		return render.Encode(cmd.OutOrStdout(), f, view)
	}
	render.WriteResult(cmd.OutOrStdout(), view)
	return nil
}
