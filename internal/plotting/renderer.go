package plotting

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"sportstat/domain/core"
)

// Renderer draws plot specifications as PNG images
type Renderer struct {
	width  vg.Length
	height vg.Length
}

// NewRenderer creates a renderer producing images of the given size
func NewRenderer(widthCm, heightCm float64) *Renderer {
	return &Renderer{
		width:  vg.Length(widthCm) * vg.Centimeter,
		height: vg.Length(heightCm) * vg.Centimeter,
	}
}

// Render writes the plot of the requested kind to w
func (r *Renderer) Render(plots Plots, kind Kind, w io.Writer) error {
	switch kind {
	case KindHistogram:
		return r.RenderHistogram(plots.Histogram, w)
	case KindBoxPlot:
		return r.RenderBoxPlot(plots.BoxPlot, w)
	default:
		return fmt.Errorf("unknown plot kind %q", kind)
	}
}

// RenderHistogram writes a histogram PNG
func (r *Renderer) RenderHistogram(spec HistogramSpec, w io.Writer) error {
	if len(spec.Values) == 0 {
		return fmt.Errorf("%w: nothing to plot for %s", core.ErrInsufficientData, spec.Title)
	}

	p := plot.New()
	p.Title.Text = spec.Title
	p.X.Label.Text = spec.XLabel
	p.Y.Label.Text = spec.YLabel

	hist, err := plotter.NewHist(plotter.Values(spec.Values), spec.Bins)
	if err != nil {
		return fmt.Errorf("failed to build histogram: %w", err)
	}
	p.Add(plotter.NewGrid(), hist)

	return r.write(p, w)
}

// RenderBoxPlot writes a boxplot PNG
func (r *Renderer) RenderBoxPlot(spec BoxPlotSpec, w io.Writer) error {
	if len(spec.Values) == 0 {
		return fmt.Errorf("%w: nothing to plot for %s", core.ErrInsufficientData, spec.Title)
	}

	p := plot.New()
	p.Title.Text = spec.Title

	box, err := plotter.NewBoxPlot(vg.Points(40), 0, plotter.Values(spec.Values))
	if err != nil {
		return fmt.Errorf("failed to build boxplot: %w", err)
	}
	box.Horizontal = spec.Horizontal
	p.Add(plotter.NewGrid(), box)
	if spec.Horizontal {
		p.NominalY(spec.Label)
	} else {
		p.NominalX(spec.Label)
	}

	return r.write(p, w)
}

func (r *Renderer) write(p *plot.Plot, w io.Writer) error {
	wt, err := p.WriterTo(r.width, r.height, "png")
	if err != nil {
		return fmt.Errorf("failed to create png canvas: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write png: %w", err)
	}
	return nil
}
