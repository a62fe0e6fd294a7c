// Package profiling summarizes the shape of numeric columns: five-number
// summary, skewness, kurtosis and IQR outliers.
package profiling

import (
	"math"

	"github.com/montanaflynn/stats"

	"sportstat/domain/core"
)

// Summary is the five-number summary of a column
type Summary struct {
	Min    float64 `json:"min"`
	Q25    float64 `json:"q25"`
	Median float64 `json:"median"`
	Q75    float64 `json:"q75"`
	Max    float64 `json:"max"`
}

// Shape describes the distribution beyond its location
type Shape struct {
	Skewness float64 `json:"skewness"`
	Kurtosis float64 `json:"kurtosis"`
	Outliers int     `json:"outliers"`
}

// DistributionAnalyzer handles distribution shape analysis
type DistributionAnalyzer struct{}

// NewDistributionAnalyzer creates a new distribution analyzer
func NewDistributionAnalyzer() *DistributionAnalyzer {
	return &DistributionAnalyzer{}
}

// AnalyzeDistribution computes the summary and shape of data. Empty data
// fails with core.ErrInsufficientData.
func (da *DistributionAnalyzer) AnalyzeDistribution(data []float64) (Summary, Shape, error) {
	if len(data) == 0 {
		return Summary{}, Shape{}, core.ErrInsufficientData
	}

	mean, err := stats.Mean(data)
	if err != nil {
		return Summary{}, Shape{}, err
	}
	stdDev, err := stats.StandardDeviation(data)
	if err != nil {
		return Summary{}, Shape{}, err
	}
	min, err := stats.Min(data)
	if err != nil {
		return Summary{}, Shape{}, err
	}
	max, err := stats.Max(data)
	if err != nil {
		return Summary{}, Shape{}, err
	}
	median, err := stats.Median(data)
	if err != nil {
		return Summary{}, Shape{}, err
	}
	q25, err := stats.Percentile(data, 25)
	if err != nil {
		return Summary{}, Shape{}, err
	}
	q75, err := stats.Percentile(data, 75)
	if err != nil {
		return Summary{}, Shape{}, err
	}

	summary := Summary{Min: min, Q25: q25, Median: median, Q75: q75, Max: max}
	shape := Shape{Outliers: detectOutliers(data, q25, q75)}
	if stdDev > 0 {
		shape.Skewness = calculateSkewness(data, mean, stdDev)
		shape.Kurtosis = calculateKurtosis(data, mean, stdDev)
	}
	return summary, shape, nil
}

// calculateSkewness computes sample skewness using the adjusted Fisher-Pearson coefficient
func calculateSkewness(data []float64, mean, stdDev float64) float64 {
	if len(data) < 3 {
		return 0
	}

	n := float64(len(data))
	sumCubedDeviations := 0.0
	for _, x := range data {
		deviation := (x - mean) / stdDev
		sumCubedDeviations += deviation * deviation * deviation
	}

	skewness := sumCubedDeviations / n
	// bias correction for sample skewness
	return skewness * math.Sqrt(n*(n-1)) / (n - 2)
}

// calculateKurtosis computes sample kurtosis (not excess)
func calculateKurtosis(data []float64, mean, stdDev float64) float64 {
	if len(data) < 4 {
		return 0
	}

	n := float64(len(data))
	sumFourthDeviations := 0.0
	for _, x := range data {
		deviation := (x - mean) / stdDev
		sumFourthDeviations += deviation * deviation * deviation * deviation
	}

	excessKurtosis := sumFourthDeviations/n - 3
	correction := (n - 1) / ((n - 2) * (n - 3))
	excessKurtosis = excessKurtosis*correction + 6/(n+1)

	return excessKurtosis + 3
}

// detectOutliers counts values outside the 1.5·IQR fences drawn by the boxplot
func detectOutliers(data []float64, q25, q75 float64) int {
	iqr := q75 - q25
	lowerBound := q25 - 1.5*iqr
	upperBound := q75 + 1.5*iqr

	outlierCount := 0
	for _, x := range data {
		if x < lowerBound || x > upperBound {
			outlierCount++
		}
	}
	return outlierCount
}
