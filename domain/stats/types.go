package stats

import (
	"time"

	"sportstat/domain/core"
)

// ReferenceValue is the fixed mean tested against by the one-sample t-test.
// It is not configurable.
const ReferenceValue = 1.5

// SignificanceLevel is the fixed rejection threshold of the t-test. It is
// independent of the confidence level chosen for the mean interval.
const SignificanceLevel = 0.05

// Params configures one analysis
type Params struct {
	ReferenceValue     float64 `json:"reference_value"`
	MeanConfidence     float64 `json:"mean_confidence" validate:"gt=0,lt=1"`
	VarianceConfidence float64 `json:"variance_confidence" validate:"gt=0,lt=1"`
	SampleConfidence   float64 `json:"sample_confidence" validate:"gt=0,lt=1"`
	MarginError        float64 `json:"margin_error" validate:"gt=0"`
}

// DefaultParams returns the parameters used by every presentation shell
func DefaultParams() Params {
	return Params{
		ReferenceValue:     ReferenceValue,
		MeanConfidence:     0.95,
		VarianceConfidence: 0.95,
		SampleConfidence:   0.90,
		MarginError:        0.1,
	}
}

// Interval is a two-sided confidence interval
type Interval struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Level float64 `json:"level"`
}

// Contains reports whether v lies within the closed interval
func (i Interval) Contains(v float64) bool {
	return i.Lower <= v && v <= i.Upper
}

// Width returns Upper - Lower
func (i Interval) Width() float64 {
	return i.Upper - i.Lower
}

// Decision is the outcome of the hypothesis test
type Decision string

const (
	Rejected    Decision = "rejected"
	NotRejected Decision = "not_rejected"
)

// Decide applies the fixed significance level. The boundary is strict.
func Decide(pValue float64) Decision {
	if pValue < SignificanceLevel {
		return Rejected
	}
	return NotRejected
}

// TTest holds the one-sample t-test outcome
type TTest struct {
	ReferenceValue    float64  `json:"reference_value"`
	TStatistic        float64  `json:"t_statistic"`
	PValue            float64  `json:"p_value"`
	DegreesOfFreedom  int      `json:"degrees_of_freedom"`
	SignificanceLevel float64  `json:"significance_level"`
	Decision          Decision `json:"decision"`
}

// SampleSize is the recommended sample size for a target margin of error.
// It is conditioned on the current sample's standard deviation.
type SampleSize struct {
	Required    int64   `json:"required"`
	Confidence  float64 `json:"confidence"`
	MarginError float64 `json:"margin_error"`
}

// AnalysisResult is the output of one analysis invocation
type AnalysisResult struct {
	ID         core.AnalysisID `json:"id"`
	Column     string          `json:"column"`
	N          int             `json:"n"`
	Mean       float64         `json:"mean"`
	Median     float64         `json:"median"`
	Variance   float64         `json:"variance"`
	StdDev     float64         `json:"std_dev"`
	StdError   float64         `json:"std_error"`
	MeanCI     Interval        `json:"mean_ci"`
	VarianceCI Interval        `json:"variance_ci"`
	Test       TTest           `json:"t_test"`
	SampleSize SampleSize      `json:"sample_size"`
	ComputedAt time.Time       `json:"computed_at"`
}

// SameNumbers reports whether two results carry identical numeric content,
// ignoring the ID and timestamp metadata.
func (r AnalysisResult) SameNumbers(o AnalysisResult) bool {
	r.ID, o.ID = "", ""
	r.ComputedAt, o.ComputedAt = time.Time{}, time.Time{}
	return r == o
}
