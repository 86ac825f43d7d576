package chart

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"

	"github.com/san-kum/isingplot/internal/lattice"
)

var (
	// SpinDown is the color of -1 cells.
	SpinDown = color.RGBA{R: 244, G: 244, B: 248, A: 255}
	// SpinUp is the color of +1 cells.
	SpinUp = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// twoTone is a palette.Palette with exactly the given colors.
type twoTone []color.Color

func (t twoTone) Colors() []color.Color {
	return t
}

// spinGrid exposes display-ordered cells as a plotter.GridXYZ. Row 0 of
// cells is the top of the figure, so it is read back at the highest Y.
type spinGrid struct {
	cells *mat.Dense
}

func (g spinGrid) Dims() (c, r int) {
	r, c = g.cells.Dims()
	return c, r
}

func (g spinGrid) Z(c, r int) float64 {
	rows, _ := g.cells.Dims()
	return g.cells.At(rows-1-r, c)
}

func (g spinGrid) X(c int) float64 {
	return float64(c + 1)
}

func (g spinGrid) Y(r int) float64 {
	return float64(r + 1)
}

// HeatmapTitle is the title shown above a spin configuration.
func HeatmapTitle(size, temperature string) string {
	return fmt.Sprintf("Configurations of spins L = %s and T*=%s", size, temperature)
}

// HeatmapName is the file stem of a spin configuration figure.
func HeatmapName(size, temperature string) string {
	return fmt.Sprintf("config_L=%s_T=%s", size, temperature)
}

// NewHeatmap draws m with its row order reversed, so the first row read from
// the file ends up at the bottom. The color scale is fixed to [-1, 1].
func NewHeatmap(m lattice.SpinMatrix, size, temperature string, opts Options) (*Figure, error) {
	cells, err := m.Flipped().Dense()
	if err != nil {
		return nil, fmt.Errorf("heatmap L=%s T=%s: %w", size, temperature, err)
	}
	rows, cols := cells.Dims()

	p := plot.New()
	p.BackgroundColor = color.White
	p.Title.Text = HeatmapTitle(size, temperature)
	p.Title.TextStyle.Font.Size = Pixels(17)
	p.Title.TextStyle.XAlign = draw.XCenter
	p.Title.Padding = Pixels(12)

	h := plotter.NewHeatMap(spinGrid{cells: cells}, twoTone{SpinDown, SpinUp})
	h.Min, h.Max = -1, 1
	p.Add(h, newFrame())

	styleAxis(&p.X, Pixels(1), Pixels(5))
	styleAxis(&p.Y, Pixels(1), Pixels(5))
	p.X.Tick.Marker = unitTicks{n: cols}
	p.Y.Tick.Marker = unitTicks{n: rows}
	p.X.Min, p.X.Max = 0.5, float64(cols)+0.5
	p.Y.Min, p.Y.Max = 0.5, float64(rows)+0.5

	return &Figure{
		Name:   HeatmapName(size, temperature),
		Title:  p.Title.Text,
		Plot:   p,
		Width:  opts.Width,
		Height: opts.Height,
		Cells:  cells,
	}, nil
}
