package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Distributions provides the quantile and tail functions used by the engine.
// Every function is deterministic.
type Distributions struct{}

// NewDistributions creates a new distributions utility
func NewDistributions() *Distributions {
	return &Distributions{}
}

// NormalQuantile computes the inverse CDF of the standard normal
func (d *Distributions) NormalQuantile(p float64) float64 {
	return distuv.UnitNormal.Quantile(p)
}

// TwoSidedZ returns the standard normal critical value of a two-sided
// interval with the given confidence, i.e. Φ⁻¹((1+confidence)/2).
func (d *Distributions) TwoSidedZ(confidence float64) float64 {
	return d.NormalQuantile((1 + confidence) / 2)
}

// ChiSquareQuantile computes the inverse CDF of the chi-square distribution
func (d *Distributions) ChiSquareQuantile(p float64, degreesOfFreedom int) float64 {
	return distuv.ChiSquared{K: float64(degreesOfFreedom)}.Quantile(p)
}

// TTestPValue computes the two-sided p-value of a t statistic using Student's
// t-distribution. The lower tail is used directly so that large statistics do
// not lose precision to 1 - CDF cancellation.
func (d *Distributions) TTestPValue(tStatistic float64, degreesOfFreedom int) float64 {
	if degreesOfFreedom <= 0 {
		return 1.0
	}
	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(degreesOfFreedom)}
	return 2 * tDist.CDF(-math.Abs(tStatistic))
}
