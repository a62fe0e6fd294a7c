package analysis

import (
	"math"

	"sportstat/domain/core"
	"sportstat/domain/dataset"
)

// Sample is a cleaned, immutable sequence of finite values from one column
type Sample struct {
	column  string
	values  []float64
	dropped int
}

// NewSample wraps values taken from outside a dataset. The slice is copied.
func NewSample(column string, values []float64) Sample {
	out := make([]float64, len(values))
	copy(out, values)
	return Sample{column: column, values: out}
}

// Column returns the name of the source column
func (s Sample) Column() string { return s.column }

// Len returns the number of values
func (s Sample) Len() int { return len(s.values) }

// Dropped returns how many missing or non-finite entries were removed
func (s Sample) Dropped() int { return s.dropped }

// Values returns a copy of the values
func (s Sample) Values() []float64 {
	out := make([]float64, len(s.values))
	copy(out, s.values)
	return out
}

// Clean extracts column from ds and drops missing entries, keeping order.
// Non-finite values are dropped as well. A short sample is not an error here;
// the engine rejects it.
func Clean(ds *dataset.Dataset, column string) (Sample, error) {
	if ds == nil {
		return Sample{}, core.ErrNoDatasetLoaded
	}
	raw, err := ds.Floats(column)
	if err != nil {
		return Sample{}, err
	}

	values := make([]float64, 0, len(raw))
	for _, v := range raw {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		values = append(values, v)
	}

	return Sample{
		column:  column,
		values:  values,
		dropped: len(raw) - len(values),
	}, nil
}
