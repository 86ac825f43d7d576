package series

import (
	"fmt"
	"image/color"
)

// Marker is a point symbol; names follow the usual plotting vocabulary.
type Marker int

const (
	TriangleUpOpenDot Marker = iota
	SquareOpenDot
	CrossOpenDot
	OctagonOpenDot
)

func (m Marker) String() string {
	switch m {
	case TriangleUpOpenDot:
		return "triangle-up-open-dot"
	case SquareOpenDot:
		return "square-open-dot"
	case CrossOpenDot:
		return "cross-open-dot"
	case OctagonOpenDot:
		return "octagon-open-dot"
	default:
		return fmt.Sprintf("marker(%d)", int(m))
	}
}

// Color is a named RGBA color.
type Color struct {
	Name string
	RGBA color.RGBA
}

var (
	Blue  = Color{Name: "blue", RGBA: color.RGBA{R: 0, G: 0, B: 255, A: 255}}
	Green = Color{Name: "green", RGBA: color.RGBA{R: 0, G: 128, B: 0, A: 255}}
	Red   = Color{Name: "red", RGBA: color.RGBA{R: 255, G: 0, B: 0, A: 255}}
	Brown = Color{Name: "brown", RGBA: color.RGBA{R: 165, G: 42, B: 42, A: 255}}
)

// Style is the appearance of one series.
type Style struct {
	Color  Color
	Marker Marker
}

// Palette assigns styles by series position.
type Palette struct {
	Colors  []Color
	Markers []Marker
}

// DefaultPalette has four colors, so at most four series can be styled.
var DefaultPalette = Palette{
	Colors:  []Color{Blue, Green, Red, Brown},
	Markers: []Marker{TriangleUpOpenDot, SquareOpenDot, CrossOpenDot, OctagonOpenDot, TriangleUpOpenDot},
}

// At returns the style for the i-th series. Entries are not cycled.
func (p Palette) At(i int) (Style, error) {
	if i < 0 || i >= len(p.Colors) || i >= len(p.Markers) {
		return Style{}, fmt.Errorf("%w: series %d, %d colors, %d markers",
			ErrPaletteExhausted, i, len(p.Colors), len(p.Markers))
	}
	return Style{Color: p.Colors[i], Marker: p.Markers[i]}, nil
}

// Len is the number of series the palette can style.
func (p Palette) Len() int {
	return min(len(p.Colors), len(p.Markers))
}
