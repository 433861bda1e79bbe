// Package file provides the TOML-backed configuration store.
//
// Settings live in ~/.clipscope/config.toml unless CLIPSCOPE_HOME or an
// explicit directory says otherwise. Keys are addressed with dot notation
// ("history.max_items") and written back as nested TOML tables.
package file
