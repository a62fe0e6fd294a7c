package ports

import (
	"io"

	"sportstat/internal/plotting"
)

// PlotRenderer writes one of the prepared plots as an image
type PlotRenderer interface {
	Render(plots plotting.Plots, kind plotting.Kind, w io.Writer) error
}
