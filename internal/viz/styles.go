package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Header with decorative line
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("#444466"))

	// Name column in listings
	MetricLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899"))

	// Value column in listings
	MetricValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)
)

// cellWidth is the number of terminal columns per lattice site; two block
// characters keep cells roughly square.
const cellWidth = 2

func (t Theme) titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Title)
}

func (t Theme) frameStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(t.Frame)
}

func (t Theme) cell(v float64) string {
	c := t.SpinDown
	if v > 0 {
		c = t.SpinUp
	}
	return lipgloss.NewStyle().Foreground(c).Render(strings.Repeat("█", cellWidth))
}

// KeyValue renders an aligned "name  value" line.
func KeyValue(name, value string, width int) string {
	return MetricLabel.Width(width).Render(name) + MetricValue.Render(value)
}
