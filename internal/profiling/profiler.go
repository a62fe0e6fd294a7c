package profiling

import (
	"sportstat/domain/dataset"
	"sportstat/internal/analysis"
)

// ColumnProfile is the distribution overview of one numeric column
type ColumnProfile struct {
	Name    string  `json:"name"`
	N       int     `json:"n"`
	Missing int     `json:"missing"`
	Summary Summary `json:"summary"`
	Shape   Shape   `json:"shape"`
}

// DataProfiler profiles the numeric columns of a dataset
type DataProfiler struct {
	analyzer *DistributionAnalyzer
}

// NewDataProfiler creates a new data profiler
func NewDataProfiler() *DataProfiler {
	return &DataProfiler{analyzer: NewDistributionAnalyzer()}
}

// ProfileColumn profiles a cleaned sample. An empty sample yields a profile
// with only the counts set.
func (dp *DataProfiler) ProfileColumn(sample analysis.Sample) ColumnProfile {
	profile := ColumnProfile{
		Name:    sample.Column(),
		N:       sample.Len(),
		Missing: sample.Dropped(),
	}
	if summary, shape, err := dp.analyzer.AnalyzeDistribution(sample.Values()); err == nil {
		profile.Summary = summary
		profile.Shape = shape
	}
	return profile
}

// ProfileDataset profiles every numeric column of ds in column order
func (dp *DataProfiler) ProfileDataset(ds *dataset.Dataset) ([]ColumnProfile, error) {
	names := ds.NumericColumns()
	profiles := make([]ColumnProfile, 0, len(names))
	for _, name := range names {
		sample, err := analysis.Clean(ds, name)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, dp.ProfileColumn(sample))
	}
	return profiles, nil
}
