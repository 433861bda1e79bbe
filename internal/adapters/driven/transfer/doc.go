// Package transfer provides concrete platform payloads: in-memory blobs and
// files, files on disk, data transfers (paste and drop events) and
// clipboard items.
//
// Drop directories, bracketed terminal pastes, the system clipboard and
// tests all build their payloads from these types.
package transfer
