// Package report formats an analysis result for the presentation shells.
package report

import (
	"fmt"
	"strings"

	domainstats "sportstat/domain/stats"
)

// Row is one labelled line of a result
type Row struct {
	Label   string
	Display string
	Raw     interface{} // numeric value or string used by workbook export
}

// DecisionText returns the human-readable test decision
func DecisionText(d domainstats.Decision) string {
	if d == domainstats.Rejected {
		return "H0 rejected"
	}
	return "H0 not rejected"
}

func percent(level float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", level*100), "0"), ".") + "%"
}

func interval(i domainstats.Interval) string {
	return fmt.Sprintf("(%.3f, %.3f)", i.Lower, i.Upper)
}

// Rows lists the result fields in display order
func Rows(r *domainstats.AnalysisResult) []Row {
	return []Row{
		{"Column", r.Column, r.Column},
		{"n", fmt.Sprintf("%d", r.N), r.N},
		{"Mean", fmt.Sprintf("%.3f", r.Mean), r.Mean},
		{"Median", fmt.Sprintf("%.3f", r.Median), r.Median},
		{"Variance", fmt.Sprintf("%.3f", r.Variance), r.Variance},
		{"Std Dev", fmt.Sprintf("%.3f", r.StdDev), r.StdDev},
		{"Std Error", fmt.Sprintf("%.3f", r.StdError), r.StdError},
		{percent(r.MeanCI.Level) + " Confidence Interval (Mean)", interval(r.MeanCI), interval(r.MeanCI)},
		{percent(r.VarianceCI.Level) + " Confidence Interval (Variance)", interval(r.VarianceCI), interval(r.VarianceCI)},
		{"t", fmt.Sprintf("%.3f", r.Test.TStatistic), r.Test.TStatistic},
		{"p", fmt.Sprintf("%.5f", r.Test.PValue), r.Test.PValue},
		{"df", fmt.Sprintf("%d", r.Test.DegreesOfFreedom), r.Test.DegreesOfFreedom},
		{
			fmt.Sprintf("Hypothesis Result (H0: mean = %g, alpha = %g)", r.Test.ReferenceValue, r.Test.SignificanceLevel),
			DecisionText(r.Test.Decision),
			DecisionText(r.Test.Decision),
		},
		{
			fmt.Sprintf("Required Sample (%s, ±%g)", percent(r.SampleSize.Confidence), r.SampleSize.MarginError),
			fmt.Sprintf("%d", r.SampleSize.Required),
			r.SampleSize.Required,
		},
	}
}

// Text renders the result as a plain multi-line block
func Text(r *domainstats.AnalysisResult) string {
	var b strings.Builder
	for _, row := range Rows(r) {
		fmt.Fprintf(&b, "%s: %s\n", row.Label, row.Display)
	}
	return b.String()
}
