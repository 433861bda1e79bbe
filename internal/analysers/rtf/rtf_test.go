package rtf

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/clipscope/internal/core/domain"
	"github.com/custodia-labs/clipscope/internal/core/ports/driven"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    domain.RTFDetails
	}{
		{
			name:    "full header",
			content: `{\rtf1\ansi\deff0 {\fonttbl {\f0 Times;}} Hello}`,
			want:    domain.RTFDetails{HasValidHeader: true, Version: 1, HasVersion: true, Charset: "ansi"},
		},
		{
			name:    "mac charset",
			content: `{\rtf1\mac Hello}`,
			want:    domain.RTFDetails{HasValidHeader: true, Version: 1, HasVersion: true, Charset: "mac"},
		},
		{
			name:    "pca charset reports pc",
			content: `{\rtf1\pca Hello}`,
			want:    domain.RTFDetails{HasValidHeader: true, Version: 1, HasVersion: true, Charset: "pc"},
		},
		{
			name:    "no version",
			content: `{\rtf\pc x}`,
			want:    domain.RTFDetails{HasValidHeader: true, Charset: "pc"},
		},
		{
			name:    "not rtf",
			content: "plain words",
			want:    domain.RTFDetails{},
		},
		{
			name:    "leading space is not a valid header",
			content: ` {\rtf1 x}`,
			want:    domain.RTFDetails{Version: 1, HasVersion: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, &tt.want, Describe(tt.content))
		})
	}
}

func TestAnalyse(t *testing.T) {
	a := New()
	assert.Equal(t, "rtf", a.Name())
	assert.Equal(t, []domain.DataKind{domain.KindRTF}, a.SupportedKinds())

	d, err := a.Analyse(context.Background(), driven.AnalysisInput{Data: []byte(`{\rtf2 x}`)})
	require.NoError(t, err)

	r, ok := d.(*domain.RTFDetails)
	require.True(t, ok)
	assert.Equal(t, 2, r.Version)
}
