package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/clipscope/internal/adapters/driving/render"
	"github.com/custodia-labs/clipscope/internal/core/domain"
)

// defaultHistoryLimit bounds the history tool when no limit is given.
const defaultHistoryLimit = 10

// ReadInput is the input schema for the read_clipboard tool.
type ReadInput struct{}

// ClassifyInput is the input schema for the classify and analyze tools.
type ClassifyInput struct {
	Text string `json:"text" jsonschema:"the content to classify"`
	MIME string `json:"mime,omitempty" jsonschema:"declared MIME type of the content (default text/plain)"`
}

// ClassifyOutput is the output schema for the classify tool.
type ClassifyOutput struct {
	Kind        string `json:"kind"`
	Description string `json:"description"`
}

// AnalyzeOutput is the output schema for the analyze tool.
type AnalyzeOutput struct {
	Kind     string              `json:"kind"`
	Metadata render.MetadataView `json:"metadata"`
}

// WriteInput is the input schema for the write_clipboard tool.
type WriteInput struct {
	Text   string `json:"text" jsonschema:"the text to copy"`
	Format string `json:"format,omitempty" jsonschema:"text/plain or text/html (default text/plain)"`
}

// HistoryInput is the input schema for the history tool.
type HistoryInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"maximum number of entries to return (default 10)"`
}

// RestoreInput is the input schema for the restore_history tool.
type RestoreInput struct {
	ID string `json:"id" jsonschema:"the history entry ID to restore"`
}

// HistoryOutput is the output schema for the history tool.
type HistoryOutput struct {
	Entries []render.HistoryView `json:"entries"`
	Count   int                  `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "read_clipboard",
		Description: "Read the system clipboard and classify every item on it",
	}, s.handleRead)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "classify",
		Description: "Classify a piece of content into a data kind",
	}, s.handleClassify)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyze",
		Description: "Classify content and report text statistics and structure",
	}, s.handleAnalyze)

	if s.ports.WriteBack != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "write_clipboard",
			Description: "Copy text to the system clipboard as plain text or HTML",
		}, s.handleWrite)
	}

	if s.ports.History != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "history",
			Description: "List recent clipboard parse results, newest first",
		}, s.handleHistory)

		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "restore_history",
			Description: "Make a recorded parse result current again",
		}, s.handleRestore)
	}
}

// handleRead handles the read_clipboard tool invocation.
func (s *Server) handleRead(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ReadInput,
) (*mcp.CallToolResult, render.ResultView, error) {
	result := s.ports.Inspector.Read(ctx)
	if !result.Success {
		return nil, render.ResultView{}, errors.New(result.Message)
	}
	return nil, render.Result(result), nil
}

// handleClassify handles the classify tool invocation.
func (s *Server) handleClassify(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ClassifyInput,
) (*mcp.CallToolResult, ClassifyOutput, error) {
	kind := s.ports.Classifier.ClassifyText(mimeOrPlain(input.MIME), input.Text)
	return nil, ClassifyOutput{
		Kind:        kind.String(),
		Description: kind.Description(),
	}, nil
}

// handleAnalyze handles the analyze tool invocation.
func (s *Server) handleAnalyze(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ClassifyInput,
) (*mcp.CallToolResult, AnalyzeOutput, error) {
	kind, meta := s.ports.Classifier.AnalyzeText(mimeOrPlain(input.MIME), input.Text)
	return nil, AnalyzeOutput{
		Kind:     kind.String(),
		Metadata: render.Metadata(meta),
	}, nil
}

// handleWrite handles the write_clipboard tool invocation.
func (s *Server) handleWrite(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input WriteInput,
) (*mcp.CallToolResult, render.CopyView, error) {
	result := s.ports.WriteBack.WriteBack(ctx, input.Text, domain.ParseTextFormat(input.Format))
	if !result.Success {
		return nil, render.CopyView{}, errors.New(result.Message)
	}
	return nil, render.Copy(result), nil
}

// handleHistory handles the history tool invocation.
func (s *Server) handleHistory(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input HistoryInput,
) (*mcp.CallToolResult, HistoryOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	entries := s.ports.History.List()
	if len(entries) > limit {
		entries = entries[:limit]
	}

	views := render.History(entries)
	return nil, HistoryOutput{Entries: views, Count: len(views)}, nil
}

// handleRestore handles the restore_history tool invocation.
func (s *Server) handleRestore(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input RestoreInput,
) (*mcp.CallToolResult, render.ResultView, error) {
	if input.ID == "" {
		return nil, render.ResultView{}, errors.New("id is required")
	}

	result, err := s.ports.Inspector.Restore(input.ID)
	if err != nil {
		return nil, render.ResultView{}, fmt.Errorf("restoring %s: %w", input.ID, err)
	}
	return nil, render.Result(result), nil
}

func mimeOrPlain(mime string) string {
	if mime == "" {
		return string(domain.KindPlainText)
	}
	return mime
}
