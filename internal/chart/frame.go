package chart

import (
	"image/color"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// frame strokes the border of the data area, mirroring the axis lines on
// the top and right.
type frame struct {
	draw.LineStyle
}

func newFrame() frame {
	return frame{draw.LineStyle{Color: color.Black, Width: Pixels(1)}}
}

func (f frame) Plot(c draw.Canvas, _ *plot.Plot) {
	c.StrokeLines(f.LineStyle, []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Max.X, Y: c.Min.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Min.X, Y: c.Min.Y},
	})
}

// unitTicks labels cell centers 1..n. Large lattices keep every tick but
// label only 1 and multiples of the step.
type unitTicks struct {
	n int
}

func (t unitTicks) Ticks(min, max float64) []plot.Tick {
	step := 1
	switch {
	case t.n > 50:
		step = 10
	case t.n > 16:
		step = 5
	}

	ticks := make([]plot.Tick, 0, t.n)
	for i := 1; i <= t.n; i++ {
		tk := plot.Tick{Value: float64(i)}
		if i == 1 || i%step == 0 {
			tk.Label = strconv.Itoa(i)
		}
		ticks = append(ticks, tk)
	}
	return ticks
}

func styleAxis(a *plot.Axis, tickWidth, tickLength vg.Length) {
	a.Padding = 0
	a.LineStyle.Color = color.Black
	a.LineStyle.Width = Pixels(1)
	a.Tick.LineStyle.Color = color.Black
	a.Tick.LineStyle.Width = tickWidth
	a.Tick.Length = tickLength
}
