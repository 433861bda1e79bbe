// Command clipscope inspects, classifies and analyses clipboard contents.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/clipscope/internal/adapters/driven/clipboard/legacy"
	"github.com/custodia-labs/clipscope/internal/adapters/driven/clipboard/system"
	"github.com/custodia-labs/clipscope/internal/adapters/driven/config/file"
	previewmem "github.com/custodia-labs/clipscope/internal/adapters/driven/preview/memory"
	"github.com/custodia-labs/clipscope/internal/adapters/driven/watch/dropdir"
	"github.com/custodia-labs/clipscope/internal/adapters/driven/watch/poll"
	"github.com/custodia-labs/clipscope/internal/adapters/driving/cli"
	"github.com/custodia-labs/clipscope/internal/analysers"
	"github.com/custodia-labs/clipscope/internal/core/ports/driven"
	"github.com/custodia-labs/clipscope/internal/core/services"
	"github.com/custodia-labs/clipscope/internal/logger"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// bootstrap wires the service graph from the settings in configDir.
func bootstrap(configDir string) (*cli.Services, error) {
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}
	logger.Debug("config: %s", store.Path())

	settingsService := services.NewSettingsService(store)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	plain := legacy.New()
	var (
		reader     driven.ClipboardReader = plain
		structured driven.StructuredWriter
	)
	tool, err := system.Detect(settings.Clipboard.Tool, system.HostEnvironment())
	if err != nil {
		logger.Debug("structured clipboard unavailable (%s): %v", settings.Clipboard.Tool, err)
	} else {
		clip, newErr := system.New(tool)
		if newErr != nil {
			return nil, fmt.Errorf("creating clipboard: %w", newErr)
		}
		logger.Debug("clipboard tool: %s", tool)
		reader, structured = clip, clip
	}

	var legacyWriter driven.LegacyWriter
	if plain.Available() {
		legacyWriter = plain
	}

	previews := previewmem.NewStore()
	registry := analysers.DefaultRegistry(analysers.Options{Markdown: settings.Analysis.Markdown})
	analyzer := services.NewContentAnalyzer(registry, settings.Analysis.CacheSize)

	history := services.NewHistoryLedger(settings.History.MaxItems, settings.History.Visible)
	history.OnEvict(services.ReleasePreviews(previews))

	inspector := services.NewInspector(
		reader,
		services.NewExtractor(previews, settings.Extract.Concurrency),
		services.NewNormalizer(analyzer, previews),
		history,
	)

	return &cli.Services{
		Inspector:  inspector,
		Classifier: analyzer,
		WriteBack:  services.NewWriteBackService(structured, legacyWriter, reader),
		History:    history,
		Listeners:  services.NewListenerRegistry(inspector),
		Settings:   settingsService,
		PasteSource: func() driven.EventSource {
			return poll.New(reader, poll.WithInterval(settings.Watch.Interval))
		},
		DropSource: func(dir string) driven.EventSource {
			return dropdir.New(dir)
		},
	}, nil
}
