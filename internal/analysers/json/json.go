// Package json validates JSON clipboard content and reports its shape.
package json

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/custodia-labs/clipscope/internal/core/domain"
	"github.com/custodia-labs/clipscope/internal/core/ports/driven"
)

// Ensure Analyser implements the interface.
var _ driven.StructureAnalyser = (*Analyser)(nil)

// Analyser handles JSON content.
type Analyser struct{}

// New creates a new JSON analyser.
func New() *Analyser {
	return &Analyser{}
}

// Name returns the analyser name.
func (a *Analyser) Name() string {
	return "json"
}

// SupportedKinds returns the kinds this analyser handles.
func (a *Analyser) SupportedKinds() []domain.DataKind {
	return []domain.DataKind{domain.KindJSON}
}

// Priority returns the selection priority.
func (a *Analyser) Priority() int {
	return 50
}

// Analyse parses the input. A parse failure is recorded in the details
// with a fixed message and is never returned as an error.
func (a *Analyser) Analyse(_ context.Context, in driven.AnalysisInput) (domain.Details, error) {
	data := in.Data
	if in.Text != "" || data == nil {
		data = []byte(in.Text)
	}
	return Describe(data), nil
}

// Describe reports validity, top-level shape and key count.
func Describe(data []byte) *domain.JSONDetails {
	if !json.Valid(data) {
		return &domain.JSONDetails{IsValid: false, Error: domain.InvalidJSONMessage}
	}

	var v any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return &domain.JSONDetails{IsValid: false, Error: domain.InvalidJSONMessage}
	}

	d := &domain.JSONDetails{IsValid: true}
	switch t := v.(type) {
	case map[string]any:
		d.Shape = domain.JSONObject
		d.Keys = len(t)
	case []any:
		d.Shape = domain.JSONArray
	case string:
		d.Shape = domain.JSONString
	case json.Number:
		d.Shape = domain.JSONNumber
	case bool:
		d.Shape = domain.JSONBool
	default:
		d.Shape = domain.JSONNull
	}
	return d
}
