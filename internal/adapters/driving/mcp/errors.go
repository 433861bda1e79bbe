// Package mcp provides an MCP (Model Context Protocol) server adapter for clipscope.
// It lets AI assistants read, classify and write the local clipboard.
package mcp

import "errors"

// ErrMissingInspectorService is returned when the inspector service is not provided.
var ErrMissingInspectorService = errors.New("mcp: inspector service is required")

// ErrMissingClassifierService is returned when the classifier service is not provided.
var ErrMissingClassifierService = errors.New("mcp: classifier service is required")
