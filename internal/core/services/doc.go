// Package services implements the driving port interfaces.
// Services contain the parse-cycle logic (extract, classify, analyse,
// deduplicate) and the write-back strategy, and orchestrate calls to
// driven ports (adapters).
//
// Services hold no process-wide state: every service value is created and
// owned by the caller that wires it.
package services
