// Package plotting builds and renders the descriptive plots of a cleaned
// sample: a 30-bin histogram and a horizontal boxplot.
package plotting

import (
	"fmt"
	"strings"

	"sportstat/internal/analysis"
)

// HistogramBins is the fixed number of histogram bins
const HistogramBins = 30

// Kind identifies one of the two plots
type Kind string

const (
	KindHistogram Kind = "histogram"
	KindBoxPlot   Kind = "boxplot"
)

// ParseKind resolves a plot name from a URL or flag
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSuffix(s, ".png"))) {
	case KindHistogram:
		return KindHistogram, nil
	case KindBoxPlot:
		return KindBoxPlot, nil
	default:
		return "", fmt.Errorf("unknown plot kind %q", s)
	}
}

// HistogramSpec describes a histogram with axis labels
type HistogramSpec struct {
	Title  string
	XLabel string
	YLabel string
	Bins   int
	Values []float64
}

// BoxPlotSpec describes a boxplot
type BoxPlotSpec struct {
	Title      string
	Label      string
	Horizontal bool
	Values     []float64
}

// Plots holds both specifications for one sample. Each spec owns its own
// copy of the values.
type Plots struct {
	Histogram HistogramSpec
	BoxPlot   BoxPlotSpec
}

// Build creates the plot specifications for sample. title is usually the
// column name.
func Build(sample analysis.Sample, title string) Plots {
	return Plots{
		Histogram: HistogramSpec{
			Title:  title + " Histogram",
			XLabel: title,
			YLabel: "Player count",
			Bins:   HistogramBins,
			Values: sample.Values(),
		},
		BoxPlot: BoxPlotSpec{
			Title:      title + " Boxplot",
			Label:      title,
			Horizontal: true,
			Values:     sample.Values(),
		},
	}
}
