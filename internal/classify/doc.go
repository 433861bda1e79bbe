// Package classify maps a declared MIME type plus an optional content sample
// onto exactly one domain.DataKind.
//
// Classification is pure and total: it performs no I/O, never fails, and
// falls back to domain.KindUnknown when nothing else applies.
//
// Priority order:
//
//  1. Normalise the declared type (lowercase, trim, drop parameters).
//  2. Exact match against the canonical table and its synonyms.
//  3. For files: the name's extension, then the file's own declared type.
//  4. For text: the ordered sniffing rules (see Rules).
//  5. Prefix fallback on the declared type.
//
// Generic declared types (text/plain, "text" and empty) do not win step 2
// when a text sample is present; the sample is sniffed instead.
package classify
