// Package driven defines the interfaces that core calls OUT to the platform.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and adapters implement them.
//
// # Platform Payloads
//
//   - DataTransfer: a paste or drop payload (declared types, files, items)
//   - ClipboardItem: one item from a clipboard read (declared types as blobs)
//   - Blob, File: readable binary payloads
//
// # Optional Interfaces
//
// These can be nil - the pipeline degrades gracefully:
//
//   - ClipboardReader: without it, reads report an unsupported platform.
//   - StructuredWriter: without it, write-back goes straight to the legacy tier.
//   - LegacyWriter: without it, the fallback tier reports an unsupported platform.
//   - PreviewStore: without it, no preview handles are allocated.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
