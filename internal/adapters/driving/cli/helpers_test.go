package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/custodia-labs/clipscope/internal/adapters/driven/clipboard/memory"
	configmem "github.com/custodia-labs/clipscope/internal/adapters/driven/config/memory"
	previewmem "github.com/custodia-labs/clipscope/internal/adapters/driven/preview/memory"
	"github.com/custodia-labs/clipscope/internal/analysers"
	"github.com/custodia-labs/clipscope/internal/core/domain"
	"github.com/custodia-labs/clipscope/internal/core/ports/driven"
	"github.com/custodia-labs/clipscope/internal/core/services"
)

// testEnv is a fully wired service graph over an in-memory clipboard.
type testEnv struct {
	clipboard *memory.Clipboard
	history   *services.HistoryLedger
	settings  *services.SettingsService
	services  *Services
}

func setupTestServices(t *testing.T) *testEnv {
	t.Helper()

	clip := memory.New()
	previews := previewmem.NewStore()
	analyzer := services.NewContentAnalyzer(analysers.DefaultRegistry(analysers.Options{Markdown: true}), 0)
	history := services.NewHistoryLedger(10, false)
	inspector := services.NewInspector(clip, services.NewExtractor(previews, 2), services.NewNormalizer(analyzer, previews), history)
	settings := services.NewSettingsService(configmem.NewConfigStore())

	env := &testEnv{
		clipboard: clip,
		history:   history,
		settings:  settings,
		services: &Services{
			Inspector:  inspector,
			Classifier: analyzer,
			WriteBack:  services.NewWriteBackService(clip, clip, clip),
			History:    history,
			Listeners:  services.NewListenerRegistry(inspector),
			Settings:   settings,
		},
	}
	SetServices(env.services)
	t.Cleanup(resetCLI)
	return env
}

// resetCLI restores globals and flag variables between tests.
func resetCLI() {
	SetServices(nil)
	SetBootstrap(nil)
	outputFormat = "text"
	verbose = false
	configDir = ""
	classifyMIME = "text/plain"
	classifyFile = ""
	copyFormat = "text/plain"
	copyFile = ""
	watchDrop = ""
	watchNoPaste = false
	mcpPort = 0
	mcpHost = "localhost"
	rootCmd.SetArgs(nil)
	rootCmd.SetIn(nil)
	rootCmd.SetOut(nil)
	rootCmd.SetErr(nil)
}

// execute runs the root command with args and stdin, returning its output.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

// onceSource emits its payloads and returns.
type onceSource struct {
	mode     domain.ListenMode
	payloads []driven.Payload
	err      error
}

func (s *onceSource) Mode() domain.ListenMode { return s.mode }

func (s *onceSource) Run(_ context.Context, emit func(driven.Payload)) error {
	for _, p := range s.payloads {
		emit(p)
	}
	return s.err
}
