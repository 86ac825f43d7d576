package chart

import (
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/san-kum/isingplot/internal/series"
)

// openDot draws an outlined shape with a dot at its center.
type openDot struct {
	outline draw.GlyphDrawer
}

func (g openDot) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	g.outline.DrawGlyph(c, sty, pt)
	dot := sty
	dot.Radius = sty.Radius / 4
	draw.CircleGlyph{}.DrawGlyph(c, dot, pt)
}

type octagonGlyph struct{}

func (octagonGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	var p vg.Path
	for i := 0; i <= 8; i++ {
		a := math.Pi/8 + float64(i)*math.Pi/4
		q := vg.Point{
			X: pt.X + sty.Radius*vg.Length(math.Cos(a)),
			Y: pt.Y + sty.Radius*vg.Length(math.Sin(a)),
		}
		if i == 0 {
			p.Move(q)
		} else {
			p.Line(q)
		}
	}
	p.Close()
	c.SetLineStyle(draw.LineStyle{Color: sty.Color, Width: vg.Points(0.5)})
	c.Stroke(p)
}

// GlyphFor maps a series marker to a glyph drawer.
func GlyphFor(m series.Marker) draw.GlyphDrawer {
	switch m {
	case series.SquareOpenDot:
		return openDot{draw.SquareGlyph{}}
	case series.CrossOpenDot:
		return openDot{draw.PlusGlyph{}}
	case series.OctagonOpenDot:
		return openDot{octagonGlyph{}}
	default:
		return openDot{draw.TriangleGlyph{}}
	}
}
