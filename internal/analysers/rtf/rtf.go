// Package rtf reads the header of RTF clipboard content.
package rtf

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/custodia-labs/clipscope/internal/core/domain"
	"github.com/custodia-labs/clipscope/internal/core/ports/driven"
)

// Ensure Analyser implements the interface.
var _ driven.StructureAnalyser = (*Analyser)(nil)

// Header is the literal prefix of a valid RTF document.
const Header = `{\rtf`

var (
	versionWord = regexp.MustCompile(`\\rtf(\d+)`)
	// Alternatives match leftmost-first, so \pca reports "pc".
	charsetWord = regexp.MustCompile(`\\(ansi|mac|pc|pca)`)
)

// Analyser handles RTF content.
type Analyser struct{}

// New creates a new RTF analyser.
func New() *Analyser {
	return &Analyser{}
}

// Name returns the analyser name.
func (a *Analyser) Name() string {
	return "rtf"
}

// SupportedKinds returns the kinds this analyser handles.
func (a *Analyser) SupportedKinds() []domain.DataKind {
	return []domain.DataKind{domain.KindRTF}
}

// Priority returns the selection priority.
func (a *Analyser) Priority() int {
	return 50
}

// Analyse reads the RTF header of the input.
func (a *Analyser) Analyse(_ context.Context, in driven.AnalysisInput) (domain.Details, error) {
	content := in.Text
	if content == "" && in.Data != nil {
		content = string(in.Data)
	}
	return Describe(content), nil
}

// Describe reads the header, version and charset control words.
func Describe(content string) *domain.RTFDetails {
	d := &domain.RTFDetails{
		HasValidHeader: strings.HasPrefix(content, Header),
	}
	if m := versionWord.FindStringSubmatch(content); len(m) > 1 {
		if v, err := strconv.Atoi(m[1]); err == nil {
			d.Version = v
			d.HasVersion = true
		}
	}
	if m := charsetWord.FindStringSubmatch(content); len(m) > 1 {
		d.Charset = m[1]
	}
	return d
}
