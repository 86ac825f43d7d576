package chart

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/isingplot/internal/lattice"
	"github.com/san-kum/isingplot/internal/series"
)

// DPI used to convert pixel sizes to plot lengths; it matches the PNG backend.
const DPI = 96

// Pixels converts a pixel count to a plot length.
func Pixels(n float64) vg.Length {
	return vg.Length(n) * vg.Inch / DPI
}

// Options holds the cosmetic settings shared by every figure.
type Options struct {
	Width      vg.Length
	Height     vg.Length
	MarkerSize vg.Length
}

func DefaultOptions() Options {
	return Options{
		Width:      Pixels(600),
		Height:     Pixels(600),
		MarkerSize: Pixels(5),
	}
}

// Figure is a rendered chart and the data behind it.
type Figure struct {
	Name   string
	Title  string
	Plot   *plot.Plot
	Width  vg.Length
	Height vg.Length

	// Cells holds heatmap values in display order, top row first.
	Cells *mat.Dense

	Series []series.Series
	XTitle string
	YTitle string
}

// IsHeatmap reports whether f was built by NewHeatmap.
func (f *Figure) IsHeatmap() bool {
	return f.Cells != nil
}

// Display shows a figure.
type Display interface {
	Show(fig *Figure) error
}

// Renderer builds figures and shows them on a Display.
type Renderer struct {
	Display Display
	Options Options
}

func NewRenderer(d Display, opts Options) *Renderer {
	return &Renderer{Display: d, Options: opts}
}

// Heatmap renders and shows one spin configuration.
func (r *Renderer) Heatmap(m lattice.SpinMatrix, size, temperature string) error {
	fig, err := NewHeatmap(m, size, temperature, r.Options)
	if err != nil {
		return err
	}
	return r.Display.Show(fig)
}

// Scatter renders and shows several series in one figure.
func (r *Renderer) Scatter(name string, ss []series.Series, xTitle, yTitle string) error {
	fig, err := NewScatter(name, ss, xTitle, yTitle, r.Options)
	if err != nil {
		return err
	}
	return r.Display.Show(fig)
}
