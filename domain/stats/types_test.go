package stats

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDecideBoundaryIsStrict(t *testing.T) {
	assert.Equal(t, Rejected, Decide(0.049999))
	assert.Equal(t, NotRejected, Decide(0.05))
	assert.Equal(t, NotRejected, Decide(0.101))
	assert.Equal(t, Rejected, Decide(0))
}

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()
	assert.Equal(t, 1.5, p.ReferenceValue)
	assert.Equal(t, 0.95, p.MeanConfidence)
	assert.Equal(t, 0.95, p.VarianceConfidence)
	assert.Equal(t, 0.90, p.SampleConfidence)
	assert.Equal(t, 0.1, p.MarginError)
}

func TestIntervalContains(t *testing.T) {
	i := Interval{Lower: 1, Upper: 2, Level: 0.95}
	assert.True(t, i.Contains(1))
	assert.True(t, i.Contains(2))
	assert.False(t, i.Contains(2.0000001))
	assert.False(t, i.Contains(math.NaN()))
	assert.Equal(t, 1.0, i.Width())
}

func TestSameNumbersIgnoresMetadata(t *testing.T) {
	a := AnalysisResult{ID: "a", Column: "PTS", N: 5, Mean: 3, ComputedAt: time.Now()}
	b := a
	b.ID = "b"
	b.ComputedAt = a.ComputedAt.Add(time.Hour)
	assert.True(t, a.SameNumbers(b))

	b.Mean = 3.0000001
	assert.False(t, a.SameNumbers(b))
}
