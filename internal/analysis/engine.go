package analysis

import (
	"fmt"
	"math"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/montanaflynn/stats"

	"sportstat/domain/core"
	domainstats "sportstat/domain/stats"
)

// Engine computes the descriptive statistics, interval estimates, t-test and
// sample-size recommendation for one cleaned sample. It holds no state
// between calls.
type Engine struct {
	dist     *Distributions
	validate *validator.Validate
	now      func() time.Time
}

// NewEngine creates a statistics engine
func NewEngine() *Engine {
	return &Engine{
		dist:     NewDistributions(),
		validate: validator.New(),
		now:      time.Now,
	}
}

var defaultEngine = NewEngine()

// Analyze runs the default engine
func Analyze(sample Sample, params domainstats.Params) (*domainstats.AnalysisResult, error) {
	return defaultEngine.Analyze(sample, params)
}

// Analyze computes an AnalysisResult. Samples with fewer than two values fail
// with core.ErrInsufficientData; a zero-variance sample or any non-finite
// intermediate fails with core.ErrComputation.
func (e *Engine) Analyze(sample Sample, params domainstats.Params) (*domainstats.AnalysisResult, error) {
	if err := e.validate.Struct(params); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrInvalidParameters, err)
	}

	n := sample.Len()
	if n < 2 {
		return nil, core.NewInsufficientDataError(sample.Column(), n)
	}
	data := sample.values

	mean, err := stats.Mean(data)
	if err != nil {
		return nil, core.NewComputationError(sample.Column(), err.Error())
	}
	median, err := stats.Median(data)
	if err != nil {
		return nil, core.NewComputationError(sample.Column(), err.Error())
	}
	variance, err := stats.SampleVariance(data)
	if err != nil {
		return nil, core.NewComputationError(sample.Column(), err.Error())
	}
	if variance == 0 || isConstant(data) {
		return nil, core.NewComputationError(sample.Column(), "zero variance, t statistic is undefined")
	}
	stdDev := math.Sqrt(variance)
	stdErr := stdDev / math.Sqrt(float64(n))
	df := n - 1

	meanCI := e.MeanInterval(mean, stdErr, params.MeanConfidence)
	varCI := e.VarianceInterval(variance, n, params.VarianceConfidence)

	tStat := (mean - params.ReferenceValue) / stdErr
	pValue := e.dist.TTestPValue(tStat, df)

	required, err := e.RequiredSampleSize(stdDev, params.MarginError, params.SampleConfidence)
	if err != nil {
		return nil, core.NewComputationError(sample.Column(), err.Error())
	}

	checks := []struct {
		name  string
		value float64
	}{
		{"mean", mean},
		{"median", median},
		{"variance", variance},
		{"mean interval", meanCI.Width()},
		{"variance interval", varCI.Width()},
		{"t statistic", tStat},
		{"p-value", pValue},
	}
	for _, c := range checks {
		if math.IsNaN(c.value) || math.IsInf(c.value, 0) {
			return nil, core.NewComputationError(sample.Column(), c.name+" is not finite")
		}
	}

	return &domainstats.AnalysisResult{
		ID:         core.NewAnalysisID(),
		Column:     sample.Column(),
		N:          n,
		Mean:       mean,
		Median:     median,
		Variance:   variance,
		StdDev:     stdDev,
		StdError:   stdErr,
		MeanCI:     meanCI,
		VarianceCI: varCI,
		Test: domainstats.TTest{
			ReferenceValue:    params.ReferenceValue,
			TStatistic:        tStat,
			PValue:            pValue,
			DegreesOfFreedom:  df,
			SignificanceLevel: domainstats.SignificanceLevel,
			Decision:          domainstats.Decide(pValue),
		},
		SampleSize: domainstats.SampleSize{
			Required:    required,
			Confidence:  params.SampleConfidence,
			MarginError: params.MarginError,
		},
		ComputedAt: e.now(),
	}, nil
}

// MeanInterval is the normal-approximation interval mean ± z·se
func (e *Engine) MeanInterval(mean, stdErr, confidence float64) domainstats.Interval {
	margin := e.dist.TwoSidedZ(confidence) * stdErr
	return domainstats.Interval{
		Lower: mean - margin,
		Upper: mean + margin,
		Level: confidence,
	}
}

// VarianceInterval is the chi-square pivot interval for the variance. The
// lower bound divides by the upper quantile and the upper bound by the lower
// quantile.
func (e *Engine) VarianceInterval(variance float64, n int, confidence float64) domainstats.Interval {
	df := n - 1
	alpha := 1 - confidence
	chi2Lower := e.dist.ChiSquareQuantile(alpha/2, df)
	chi2Upper := e.dist.ChiSquareQuantile(1-alpha/2, df)
	scaled := float64(df) * variance
	return domainstats.Interval{
		Lower: scaled / chi2Upper,
		Upper: scaled / chi2Lower,
		Level: confidence,
	}
}

// RequiredSampleSize returns ceil((z·σ/E)²), using stdDev as the assumed
// population standard deviation.
func (e *Engine) RequiredSampleSize(stdDev, marginError, confidence float64) (int64, error) {
	if marginError <= 0 {
		return 0, fmt.Errorf("margin of error must be positive, got %v", marginError)
	}
	z := e.dist.TwoSidedZ(confidence)
	n := math.Ceil(math.Pow(z*stdDev/marginError, 2))
	if math.IsNaN(n) || n < 0 || n >= math.MaxInt64 {
		return 0, fmt.Errorf("required sample size out of range: %v", n)
	}
	return int64(n), nil
}

// isConstant reports whether every value equals the first. Rounding in the
// mean can leave a tiny positive variance for such samples.
func isConstant(data []float64) bool {
	for _, v := range data[1:] {
		if v != data[0] {
			return false
		}
	}
	return true
}
