package mcp

import (
	"context"
	"time"

	"github.com/custodia-labs/clipscope/internal/core/domain"
	"github.com/custodia-labs/clipscope/internal/core/ports/driven"
	"github.com/custodia-labs/clipscope/internal/core/ports/driving"
)

// mockInspectorService is a mock implementation of driving.InspectorService.
type mockInspectorService struct {
	result     domain.ParseResult
	current    *domain.ParseResult
	restored   domain.ParseResult
	restoreErr error
	restoredID string
}

func (m *mockInspectorService) Read(_ context.Context) domain.ParseResult {
	return m.result
}

func (m *mockInspectorService) Parse(_ context.Context, _ driven.Payload, _ domain.Origin) domain.ParseResult {
	return m.result
}

func (m *mockInspectorService) Current() (domain.ParseResult, bool) {
	if m.current == nil {
		return domain.ParseResult{}, false
	}
	return *m.current, true
}

func (m *mockInspectorService) Restore(id string) (domain.ParseResult, error) {
	m.restoredID = id
	return m.restored, m.restoreErr
}

// mockClassifierService is a mock implementation of driving.ClassifierService.
type mockClassifierService struct {
	kind     domain.DataKind
	metadata domain.Metadata
	lastMIME string
	lastText string
}

func (m *mockClassifierService) ClassifyText(mimeType, text string) domain.DataKind {
	m.lastMIME, m.lastText = mimeType, text
	return m.kind
}

func (m *mockClassifierService) AnalyzeText(mimeType, text string) (domain.DataKind, domain.Metadata) {
	m.lastMIME, m.lastText = mimeType, text
	return m.kind, m.metadata
}

// mockWriteBackService is a mock implementation of driving.WriteBackService.
type mockWriteBackService struct {
	result     domain.CopyResult
	lastText   string
	lastFormat domain.TextFormat
}

func (m *mockWriteBackService) WriteBack(_ context.Context, text string, format domain.TextFormat) domain.CopyResult {
	m.lastText, m.lastFormat = text, format
	return m.result
}

func (m *mockWriteBackService) Capabilities() driving.Capabilities {
	return driving.Capabilities{Structured: true, Legacy: true, Read: true}
}

// mockHistoryService is a mock implementation of driving.HistoryService.
type mockHistoryService struct {
	entries []domain.HistoryEntry
	visible bool
}

func (m *mockHistoryService) Append(result domain.ParseResult) domain.HistoryEntry {
	e := domain.HistoryEntry{ID: "h-new", Timestamp: result.Timestamp, Result: result, Summary: domain.Summarise(result)}
	m.entries = append([]domain.HistoryEntry{e}, m.entries...)
	return e
}

func (m *mockHistoryService) List() []domain.HistoryEntry {
	return m.entries
}

func (m *mockHistoryService) Get(id string) (domain.HistoryEntry, error) {
	for _, e := range m.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return domain.HistoryEntry{}, domain.ErrNotFound
}

func (m *mockHistoryService) Clear() {
	m.entries = nil
}

func (m *mockHistoryService) ToggleVisible() bool {
	m.visible = !m.visible
	return m.visible
}

func (m *mockHistoryService) Visible() bool {
	return m.visible
}

func (m *mockHistoryService) Capacity() int {
	return domain.DefaultHistoryCapacity
}

// sampleResult builds a successful result with one text item.
func sampleResult(seq uint64) domain.ParseResult {
	return domain.ParseResult{
		Success:   true,
		Message:   "Parsed 1 item from clipboard",
		Origin:    domain.OriginRead,
		Sequence:  seq,
		Timestamp: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Items: []domain.DataItem{{
			Kind:     domain.KindPlainText,
			Text:     "hello world",
			ByteSize: 11,
			Metadata: domain.Metadata{
				MIMEHint:      "text/plain",
				FormattedSize: "11 B",
				Channel:       domain.ChannelDeclaredType,
				Text: &domain.TextDetails{
					Stats:    domain.TextStats{Lines: 1, Words: 2, Characters: 11, CharactersNoSpaces: 10},
					Language: "latin",
					Encoding: "utf-8",
				},
			},
		}},
	}
}

// sampleEntries builds two history entries, newest first.
func sampleEntries() []domain.HistoryEntry {
	newer, older := sampleResult(2), sampleResult(1)
	return []domain.HistoryEntry{
		{ID: "h-2", Timestamp: newer.Timestamp, Result: newer, Summary: domain.Summarise(newer)},
		{ID: "h-1", Timestamp: older.Timestamp, Result: older, Summary: domain.Summarise(older)},
	}
}

// newTestServer creates a server with the inspector and classifier mocks plus
// any optional services given.
func newTestServer(
	inspector *mockInspectorService,
	writeBack *mockWriteBackService,
	history *mockHistoryService,
) *Server {
	ports := &Ports{
		Inspector:  inspector,
		Classifier: &mockClassifierService{kind: domain.KindPlainText},
	}
	if writeBack != nil {
		ports.WriteBack = writeBack
	}
	if history != nil {
		ports.History = history
	}
	s, err := NewServer(ports)
	if err != nil {
		panic(err)
	}
	return s
}
