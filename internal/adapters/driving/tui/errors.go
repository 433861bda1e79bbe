package tui

import "errors"

// ErrMissingInspectorService is returned when the inspector service is not provided.
var ErrMissingInspectorService = errors.New("tui: inspector service is required")

// ErrMissingHistoryService is returned when the history service is not provided.
var ErrMissingHistoryService = errors.New("tui: history service is required")

// errWriteBackUnavailable is reported when no write-back service is wired.
var errWriteBackUnavailable = errors.New("copying is not available")
