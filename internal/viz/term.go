package viz

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/isingplot/internal/chart"
)

var seriesColors = map[string]asciigraph.AnsiColor{
	"blue":  asciigraph.Blue,
	"green": asciigraph.Green,
	"red":   asciigraph.Red,
	"brown": asciigraph.Brown,
}

// TermDisplay prints a preview of each figure to W.
type TermDisplay struct {
	W      io.Writer
	Theme  Theme
	Width  int
	Height int
}

func NewTermDisplay(w io.Writer, theme Theme) *TermDisplay {
	return &TermDisplay{W: w, Theme: theme, Width: 60, Height: 15}
}

func (d *TermDisplay) Show(fig *chart.Figure) error {
	var out string
	if fig.IsHeatmap() {
		out = d.Heatmap(fig)
	} else {
		out = d.Scatter(fig)
	}
	_, err := fmt.Fprintln(d.W, out)
	return err
}

// Heatmap renders the cells in display order inside a frame.
func (d *TermDisplay) Heatmap(fig *chart.Figure) string {
	rows, cols := fig.Cells.Dims()
	lines := make([]string, rows)
	for i := 0; i < rows; i++ {
		var b strings.Builder
		for j := 0; j < cols; j++ {
			b.WriteString(d.Theme.cell(fig.Cells.At(i, j)))
		}
		lines[i] = b.String()
	}

	return lipgloss.JoinVertical(lipgloss.Center,
		d.Theme.titleStyle().Render(fig.Title),
		d.Theme.frameStyle().Render(strings.Join(lines, "\n")),
	)
}

// Scatter plots each series' y values in sample order; the x range is
// reported in the caption.
func (d *TermDisplay) Scatter(fig *chart.Figure) string {
	data := make([][]float64, 0, len(fig.Series))
	colors := make([]asciigraph.AnsiColor, 0, len(fig.Series))
	legends := make([]string, 0, len(fig.Series))
	xMin, xMax := math.Inf(1), math.Inf(-1)

	for _, s := range fig.Series {
		if s.Len() == 0 {
			continue
		}
		data = append(data, s.Y)
		c, ok := seriesColors[s.Style.Color.Name]
		if !ok {
			c = asciigraph.Default
		}
		colors = append(colors, c)
		legends = append(legends, s.Label)
		for _, x := range s.X {
			xMin = math.Min(xMin, x)
			xMax = math.Max(xMax, x)
		}
	}

	header := d.Theme.titleStyle().Render(fig.YTitle + " vs " + fig.XTitle)
	if len(data) == 0 {
		return header + "\n" + lipgloss.NewStyle().Foreground(d.Theme.Muted).Render("(no samples)")
	}

	graph := asciigraph.PlotMany(data,
		asciigraph.Height(d.Height),
		asciigraph.Width(d.Width),
		asciigraph.SeriesColors(colors...),
		asciigraph.SeriesLegends(legends...),
		asciigraph.Caption(fmt.Sprintf("%s %.3g .. %.3g", fig.XTitle, xMin, xMax)),
	)
	return header + "\n" + graph
}
