package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the terminal colors of a preview
type Theme struct {
	Name     string
	SpinUp   lipgloss.Color
	SpinDown lipgloss.Color
	Frame    lipgloss.Color
	Title    lipgloss.Color
	Muted    lipgloss.Color
}

// Available themes
var (
	ThemeClassic = Theme{
		Name:     "classic",
		SpinUp:   lipgloss.Color("#ff0000"), // same as the image output
		SpinDown: lipgloss.Color("#f4f4f8"),
		Frame:    lipgloss.Color("#888888"),
		Title:    lipgloss.Color("#ffffff"),
		Muted:    lipgloss.Color("#666666"),
	}

	ThemeMono = Theme{
		Name:     "mono",
		SpinUp:   lipgloss.Color("#ffffff"),
		SpinDown: lipgloss.Color("#303030"),
		Frame:    lipgloss.Color("#888888"),
		Title:    lipgloss.Color("#ffffff"),
		Muted:    lipgloss.Color("#888888"),
	}

	ThemeOcean = Theme{
		Name:     "ocean",
		SpinUp:   lipgloss.Color("#ffd700"),
		SpinDown: lipgloss.Color("#0077be"),
		Frame:    lipgloss.Color("#4488aa"),
		Title:    lipgloss.Color("#e0f0ff"),
		Muted:    lipgloss.Color("#4488aa"),
	}

	// All available themes
	Themes = []Theme{
		ThemeClassic,
		ThemeMono,
		ThemeOcean,
	}
)

// GetTheme returns a theme by name, falling back to classic
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
