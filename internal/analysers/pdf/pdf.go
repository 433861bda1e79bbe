// Package pdf reads page count and version from PDF blobs using pdfcpu.
package pdf

import (
	"bytes"
	"context"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/custodia-labs/clipscope/internal/core/domain"
	"github.com/custodia-labs/clipscope/internal/core/ports/driven"
)

// Ensure Analyser implements the interface.
var _ driven.StructureAnalyser = (*Analyser)(nil)

// pdfcpu would otherwise create a config directory under the user's home.
func init() {
	api.DisableConfigDir()
}

// Analyser handles PDF blobs. Text input is ignored.
type Analyser struct{}

// New creates a new PDF analyser.
func New() *Analyser {
	return &Analyser{}
}

// Name returns the analyser name.
func (a *Analyser) Name() string {
	return "pdf"
}

// SupportedKinds returns the kinds this analyser handles.
func (a *Analyser) SupportedKinds() []domain.DataKind {
	return []domain.DataKind{domain.KindPDF}
}

// Priority returns the selection priority.
func (a *Analyser) Priority() int {
	return 50
}

// Analyse reads the PDF's page count and header version.
// pdfcpu panics on some malformed input; a panic is reported as a parse failure.
func (a *Analyser) Analyse(_ context.Context, in driven.AnalysisInput) (d domain.Details, err error) {
	if len(in.Data) == 0 {
		return nil, fmt.Errorf("pdf: no data: %w", domain.ErrInvalidInput)
	}

	defer func() {
		if r := recover(); r != nil {
			d, err = nil, fmt.Errorf("pdfcpu read: %w: %v", domain.ErrParseFailure, r)
		}
	}()

	conf := model.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(in.Data), conf)
	if err != nil {
		return nil, fmt.Errorf("pdfcpu read: %w: %w", domain.ErrParseFailure, err)
	}

	return &domain.PDFDetails{
		Pages:   ctx.PageCount,
		Version: ctx.VersionString(),
	}, nil
}
