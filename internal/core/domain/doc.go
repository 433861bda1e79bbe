// Package domain defines the core entities of the clipboard pipeline.
//
// This package is the innermost layer of the hexagon. It has NO external
// dependencies and defines the fundamental types:
//
//   - DataKind: the closed classification of an entry
//   - RawEntry: an unclassified, channel-tagged unit from extraction
//   - DataItem: a classified, metadata-enriched record
//   - Metadata: common fields plus a kind-specific Details variant
//   - ParseResult, CopyResult, HistoryEntry: pipeline outputs
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
