package chart

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"github.com/san-kum/isingplot/internal/series"
)

// margin is the fraction of the data range added on each side of a scatter plot.
const margin = 0.05

// NewScatter composes every series into one figure, in order.
func NewScatter(name string, ss []series.Series, xTitle, yTitle string, opts Options) (*Figure, error) {
	p := plot.New()
	p.BackgroundColor = color.White
	p.Legend.Top = true

	for _, s := range ss {
		sc, err := plotter.NewScatter(s)
		if err != nil {
			return nil, fmt.Errorf("scatter %s %s: %w", name, s.Label, err)
		}
		sc.GlyphStyle.Color = s.Style.Color.RGBA
		sc.GlyphStyle.Radius = opts.MarkerSize / 2
		sc.GlyphStyle.Shape = GlyphFor(s.Style.Marker)
		p.Add(sc)
		p.Legend.Add(s.Label, sc)
	}
	p.Add(newFrame())

	for _, a := range []struct {
		axis  *plot.Axis
		title string
	}{
		{&p.X, xTitle},
		{&p.Y, yTitle},
	} {
		styleAxis(a.axis, Pixels(2), Pixels(8))
		a.axis.Label.Text = a.title
		a.axis.Label.TextStyle.Font.Size = Pixels(20)
		a.axis.Label.TextStyle.Color = color.Black
	}
	pad(&p.X)
	pad(&p.Y)

	return &Figure{
		Name:   name,
		Title:  p.Title.Text,
		Plot:   p,
		Width:  opts.Width,
		Height: opts.Height,
		Series: ss,
		XTitle: xTitle,
		YTitle: yTitle,
	}, nil
}

// pad widens an axis range so glyphs at the extremes stay inside the frame.
func pad(a *plot.Axis) {
	if math.IsInf(a.Min, 0) || math.IsInf(a.Max, 0) {
		return
	}
	d := (a.Max - a.Min) * margin
	if d == 0 {
		d = 0.5
	}
	a.Min -= d
	a.Max += d
}
