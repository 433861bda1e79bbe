// Package analysers provides the per-kind structure analysers used by the
// content analyzer, and the registry that dispatches to them.
//
// Each analyser knows how to describe one family of content (HTML markup,
// RTF headers, JSON documents, PDF files). Plain text statistics live in the
// text subpackage and apply to every textual item regardless of kind.
//
// Analysers are registered with a Registry at startup. When several
// analysers support the same kind, the one with the highest Priority wins.
package analysers
