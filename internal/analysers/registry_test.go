package analysers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/clipscope/internal/core/domain"
	"github.com/custodia-labs/clipscope/internal/core/ports/driven"
)

type stubAnalyser struct {
	name     string
	kinds    []domain.DataKind
	priority int
	details  domain.Details
	err      error
}

func (s *stubAnalyser) Name() string                      { return s.name }
func (s *stubAnalyser) SupportedKinds() []domain.DataKind { return s.kinds }
func (s *stubAnalyser) Priority() int                     { return s.priority }
func (s *stubAnalyser) Analyse(context.Context, driven.AnalysisInput) (domain.Details, error) {
	return s.details, s.err
}

func TestRegistry_PriorityOrder(t *testing.T) {
	r := NewRegistry()
	low := &stubAnalyser{name: "low", kinds: []domain.DataKind{domain.KindHTML}, priority: 10}
	high := &stubAnalyser{name: "high", kinds: []domain.DataKind{domain.KindHTML}, priority: 90}
	r.Register(low)
	r.Register(high)

	a, ok := r.For(domain.KindHTML)
	require.True(t, ok)
	assert.Equal(t, "high", a.Name())
	assert.Equal(t, []string{"high", "low"}, r.Names())
}

func TestRegistry_Unregistered(t *testing.T) {
	r := NewRegistry()
	assert.False(t, r.Has(domain.KindPNG))

	d, err := r.Analyse(context.Background(), driven.AnalysisInput{Kind: domain.KindPNG})
	assert.NoError(t, err)
	assert.Nil(t, d)
}

func TestRegistry_WrapsErrors(t *testing.T) {
	r := NewRegistry()
	boom := errors.New("boom")
	r.Register(&stubAnalyser{name: "bad", kinds: []domain.DataKind{domain.KindRTF}, err: boom})

	_, err := r.Analyse(context.Background(), driven.AnalysisInput{Kind: domain.KindRTF})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "bad analyser")
}

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry(Options{})

	for _, k := range []domain.DataKind{domain.KindHTML, domain.KindRTF, domain.KindJSON, domain.KindPDF} {
		assert.True(t, r.Has(k), k)
	}
	assert.False(t, r.Has(domain.KindPlainText))
	assert.Equal(t, []string{"html", "json", "pdf", "rtf"}, r.Names())

	d, err := r.Analyse(context.Background(), driven.AnalysisInput{Kind: domain.KindJSON, Text: `{"a":1}`})
	require.NoError(t, err)
	j, ok := d.(*domain.JSONDetails)
	require.True(t, ok)
	assert.Equal(t, 1, j.Keys)
}
