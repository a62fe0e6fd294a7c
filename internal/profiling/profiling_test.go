package profiling

import (
	"math"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportstat/domain/core"
	"sportstat/domain/dataset"
	"sportstat/internal/analysis"
)

func TestAnalyzeDistribution(t *testing.T) {
	summary, shape, err := NewDistributionAnalyzer().AnalyzeDistribution([]float64{1, 2, 3, 4, 5, 100})
	require.NoError(t, err)

	assert.Equal(t, 1.0, summary.Min)
	assert.Equal(t, 100.0, summary.Max)
	assert.Equal(t, 3.5, summary.Median)
	assert.Equal(t, 1.5, summary.Q25)
	assert.Equal(t, 4.5, summary.Q75)
	assert.Equal(t, 1, shape.Outliers)
	assert.Greater(t, shape.Skewness, 0.0)
}

func TestAnalyzeDistribution_Constant(t *testing.T) {
	_, shape, err := NewDistributionAnalyzer().AnalyzeDistribution([]float64{2, 2, 2, 2})
	require.NoError(t, err)
	assert.Equal(t, 0.0, shape.Skewness)
	assert.False(t, math.IsNaN(shape.Kurtosis))
}

func TestAnalyzeDistribution_Empty(t *testing.T) {
	_, _, err := NewDistributionAnalyzer().AnalyzeDistribution(nil)
	assert.ErrorIs(t, err, core.ErrInsufficientData)
}

func TestProfileDataset(t *testing.T) {
	frame := dataframe.LoadRecords([][]string{
		{"Player", "PTS", "AST"},
		{"a", "10", "NaN"},
		{"b", "12", "NaN"},
		{"c", "NaN", "NaN"},
	},
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues([]string{"NaN"}),
		dataframe.WithTypes(map[string]series.Type{"AST": series.Float}),
	)
	ds, err := dataset.New("x.csv", frame, nil)
	require.NoError(t, err)

	profiles, err := NewDataProfiler().ProfileDataset(ds)
	require.NoError(t, err)
	require.Len(t, profiles, 2)

	assert.Equal(t, "PTS", profiles[0].Name)
	assert.Equal(t, 2, profiles[0].N)
	assert.Equal(t, 1, profiles[0].Missing)
	assert.Equal(t, 12.0, profiles[0].Summary.Max)

	assert.Equal(t, "AST", profiles[1].Name)
	assert.Equal(t, 0, profiles[1].N)
	assert.Equal(t, 3, profiles[1].Missing)
}

func TestProfileColumn_DoesNotMutate(t *testing.T) {
	values := []float64{5, 1, 4}
	NewDataProfiler().ProfileColumn(analysis.NewSample("x", values))
	assert.Equal(t, []float64{5, 1, 4}, values)
}
