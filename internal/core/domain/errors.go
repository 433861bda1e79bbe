package domain

import "errors"

// Domain errors represent pipeline failures.
// Classification and analysis never return them; they surface as data
// on ParseResult and CopyResult.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedPlatform indicates a required clipboard capability is absent.
	ErrUnsupportedPlatform = errors.New("clipboard capability unavailable")

	// ErrEmptyInput indicates there is nothing to copy.
	ErrEmptyInput = errors.New("content is empty")

	// ErrDecodeFailure indicates a blob could not be read as text.
	// It degrades metadata and is never returned to callers.
	ErrDecodeFailure = errors.New("decode failure")

	// ErrParseFailure indicates structured content could not be parsed.
	// It is captured into metadata.
	ErrParseFailure = errors.New("parse failure")

	// ErrWriteFailure indicates both write-back tiers failed.
	ErrWriteFailure = errors.New("clipboard write failed")
)
