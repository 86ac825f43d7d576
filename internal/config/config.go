package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDataDir = "."
	DefaultOutDir  = "charts"
	DefaultFormat  = "png"
	DefaultTheme   = "classic"
	DefaultWidth   = 600
	DefaultHeight  = 600
	DefaultPattern = "config_L={L}_T={T}.txt"
)

var (
	ErrUnknownPreset     = errors.New("config: unknown preset")
	ErrUnsupportedFormat = errors.New("config: unsupported output format")
	ErrInvalidCanvas     = errors.New("config: canvas dimensions must be positive")
)

// Formats lists the image formats the chart backend can write.
var Formats = []string{"png", "svg", "pdf", "jpg", "jpeg", "eps", "tif", "tiff"}

type Config struct {
	DataDir  string       `yaml:"data_dir"`
	OutDir   string       `yaml:"out_dir"`
	Format   string       `yaml:"format"`
	Open     bool         `yaml:"open"`
	Terminal bool         `yaml:"terminal"`
	Theme    string       `yaml:"theme"`
	Canvas   CanvasConfig `yaml:"canvas"`
	Spins    SpinsConfig  `yaml:"spins"`
	Plots    []PlotConfig `yaml:"plots"`
}

// CanvasConfig is the figure size in pixels.
type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpinsConfig selects the configuration files rendered as heatmaps.
type SpinsConfig struct {
	Pattern      string   `yaml:"pattern"`
	Sizes        []int    `yaml:"sizes"`
	Temperatures []string `yaml:"temperatures"`
}

// PlotConfig describes one scatter plot of an observable.
type PlotConfig struct {
	Name    string   `yaml:"name"`
	Pattern string   `yaml:"pattern"`
	Labels  []string `yaml:"labels"`
	XTitle  string   `yaml:"x_title"`
	YTitle  string   `yaml:"y_title"`
}

func DefaultConfig() *Config {
	return &Config{
		DataDir: DefaultDataDir,
		OutDir:  DefaultOutDir,
		Format:  DefaultFormat,
		Open:    true,
		Theme:   DefaultTheme,
		Canvas: CanvasConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
		Spins: SpinsConfig{
			Pattern:      DefaultPattern,
			Sizes:        []int{8, 16, 35},
			Temperatures: []string{"1.0", "2.26", "10"},
		},
		Plots: []PlotConfig{
			{
				Name:    "heat_capacity",
				Pattern: "heat_file_L{}.txt",
				Labels:  []string{"8", "16", "36"},
				XTitle:  "Reduced Temperature T*",
				YTitle:  "Heat Capacity",
			},
			{
				Name:    "magnetization",
				Pattern: "magnetization_file_L{}.txt",
				Labels:  []string{"5", "10", "30", "60"},
				XTitle:  "T*",
				YTitle:  "<m>",
			},
		},
	}
}

// Load reads a YAML file over the defaults. Lists given in the file replace
// the default lists.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if !slices.Contains(Formats, c.Format) {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, c.Format)
	}
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidCanvas, c.Canvas.Width, c.Canvas.Height)
	}
	return nil
}

// Plot returns the plot with the given name.
func (c *Config) Plot(name string) (PlotConfig, bool) {
	for _, p := range c.Plots {
		if p.Name == name {
			return p, true
		}
	}
	return PlotConfig{}, false
}

// Clone returns a deep copy of c.
func (c *Config) Clone() *Config {
	out := *c
	out.Spins.Sizes = slices.Clone(c.Spins.Sizes)
	out.Spins.Temperatures = slices.Clone(c.Spins.Temperatures)
	out.Plots = make([]PlotConfig, len(c.Plots))
	for i, p := range c.Plots {
		p.Labels = slices.Clone(p.Labels)
		out.Plots[i] = p
	}
	return &out
}
