package plotting

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportstat/domain/core"
	"sportstat/internal/analysis"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func TestBuild(t *testing.T) {
	sample := analysis.NewSample("PTS", []float64{10, 12, 30, 8})
	plots := Build(sample, "PTS")

	assert.Equal(t, "PTS Histogram", plots.Histogram.Title)
	assert.Equal(t, "PTS", plots.Histogram.XLabel)
	assert.Equal(t, "Player count", plots.Histogram.YLabel)
	assert.Equal(t, 30, plots.Histogram.Bins)
	assert.Equal(t, "PTS Boxplot", plots.BoxPlot.Title)
	assert.True(t, plots.BoxPlot.Horizontal)

	// specs are independent and do not alias the sample
	plots.Histogram.Values[0] = -1
	assert.Equal(t, 10.0, plots.BoxPlot.Values[0])
	assert.Equal(t, []float64{10, 12, 30, 8}, sample.Values())
}

func TestRender(t *testing.T) {
	plots := Build(analysis.NewSample("AST", []float64{1, 4, 2, 8, 5, 7, 3, 3, 9}), "AST")
	renderer := NewRenderer(12, 8)

	for _, kind := range []Kind{KindHistogram, KindBoxPlot} {
		var buf bytes.Buffer
		require.NoError(t, renderer.Render(plots, kind, &buf), kind)
		assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic), kind)
	}
}

func TestRenderEmpty(t *testing.T) {
	plots := Build(analysis.NewSample("AST", nil), "AST")
	renderer := NewRenderer(12, 8)

	var buf bytes.Buffer
	assert.ErrorIs(t, renderer.Render(plots, KindHistogram, &buf), core.ErrInsufficientData)
	assert.ErrorIs(t, renderer.Render(plots, KindBoxPlot, &buf), core.ErrInsufficientData)
	assert.Error(t, renderer.Render(plots, Kind("pie"), &buf))
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("histogram.png")
	require.NoError(t, err)
	assert.Equal(t, KindHistogram, k)

	k, err = ParseKind("BoxPlot")
	require.NoError(t, err)
	assert.Equal(t, KindBoxPlot, k)

	_, err = ParseKind("scatter")
	assert.Error(t, err)
}
