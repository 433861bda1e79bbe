package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/clipscope/internal/adapters/driving/render"
)

func TestExtractEntryID(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{
			name:     "valid entry URI",
			uri:      "clipscope://history/abc-123",
			expected: "abc-123",
		},
		{
			name:     "invalid prefix",
			uri:      "file://history/abc-123",
			expected: "",
		},
		{
			name:     "history list URI",
			uri:      "clipscope://history",
			expected: "",
		},
		{
			name:     "empty URI",
			uri:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractEntryID(tt.uri))
		})
	}
}

func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: uri},
	}
}

func TestServer_handleHistoryResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns history as JSON", func(t *testing.T) {
		server := newTestServer(&mockInspectorService{}, nil, &mockHistoryService{entries: sampleEntries()})

		result, err := server.handleHistoryResource(ctx, makeReadResourceRequest("clipscope://history"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)

		var views []render.HistoryView
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &views))
		require.Len(t, views, 2)
		assert.Equal(t, "h-2", views[0].ID)
		assert.Equal(t, 1, views[0].Items)
	})

	t.Run("no history service returns empty list", func(t *testing.T) {
		server := newTestServer(&mockInspectorService{}, nil, nil)

		result, err := server.handleHistoryResource(ctx, makeReadResourceRequest("clipscope://history"))

		require.NoError(t, err)
		assert.Equal(t, "[]", result.Contents[0].Text)
	})
}

func TestServer_handleHistoryEntryResource(t *testing.T) {
	ctx := context.Background()
	history := &mockHistoryService{entries: sampleEntries()}
	server := newTestServer(&mockInspectorService{}, nil, history)

	t.Run("returns entry result", func(t *testing.T) {
		result, err := server.handleHistoryEntryResource(ctx, makeReadResourceRequest("clipscope://history/h-1"))

		require.NoError(t, err)
		var view render.ResultView
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &view))
		assert.Equal(t, uint64(1), view.Sequence)
		assert.Equal(t, "hello world", view.Items[0].Text)
	})

	t.Run("unknown entry is not found", func(t *testing.T) {
		_, err := server.handleHistoryEntryResource(ctx, makeReadResourceRequest("clipscope://history/missing"))
		require.Error(t, err)
	})

	t.Run("malformed URI is not found", func(t *testing.T) {
		_, err := server.handleHistoryEntryResource(ctx, makeReadResourceRequest("clipscope://other"))
		require.Error(t, err)
	})
}

func TestServer_handleCurrentResource(t *testing.T) {
	ctx := context.Background()

	t.Run("no result yet is not found", func(t *testing.T) {
		server := newTestServer(&mockInspectorService{}, nil, nil)

		_, err := server.handleCurrentResource(ctx, makeReadResourceRequest("clipscope://current"))

		require.Error(t, err)
	})

	t.Run("returns current result", func(t *testing.T) {
		current := sampleResult(7)
		server := newTestServer(&mockInspectorService{current: &current}, nil, nil)

		result, err := server.handleCurrentResource(ctx, makeReadResourceRequest("clipscope://current"))

		require.NoError(t, err)
		var view render.ResultView
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &view))
		assert.Equal(t, uint64(7), view.Sequence)
	})
}
