package experiment

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/san-kum/isingplot/internal/chart"
	"github.com/san-kum/isingplot/internal/config"
	"github.com/san-kum/isingplot/internal/export"
	"github.com/san-kum/isingplot/internal/lattice"
	"github.com/san-kum/isingplot/internal/series"
)

// Combination is one (lattice size, temperature) pair.
type Combination struct {
	Size        int
	Temperature string
}

// Combinations returns sizes × temperatures, size-major.
func Combinations(sizes []int, temperatures []string) []Combination {
	out := make([]Combination, 0, len(sizes)*len(temperatures))
	for _, size := range sizes {
		for _, t := range temperatures {
			out = append(out, Combination{Size: size, Temperature: t})
		}
	}
	return out
}

// Filename is the configuration file of c under pattern.
func (c Combination) Filename(pattern string) string {
	return lattice.Filename(pattern, c.Size, c.Temperature)
}

type Runner struct {
	cfg      *config.Config
	renderer *chart.Renderer
	logger   *log.Logger
}

func NewRunner(cfg *config.Config, renderer *chart.Renderer, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		cfg:      cfg.Clone(),
		renderer: renderer,
		logger:   logger,
	}
}

func (r *Runner) path(name string) string {
	return filepath.Join(r.cfg.DataDir, name)
}

// Run renders every spin configuration, then every observable plot.
func (r *Runner) Run() error {
	if err := r.SpinConfigurations(); err != nil {
		return err
	}
	return r.Observables()
}

// SpinConfigurations renders one heatmap per size and temperature.
func (r *Runner) SpinConfigurations() error {
	for _, c := range Combinations(r.cfg.Spins.Sizes, r.cfg.Spins.Temperatures) {
		path := r.path(c.Filename(r.cfg.Spins.Pattern))
		m, err := lattice.ReadMatrix(path)
		if err != nil {
			return err
		}

		size := strconv.Itoa(c.Size)
		if err := r.renderer.Heatmap(m, size, c.Temperature); err != nil {
			return err
		}
		r.logger.Info("rendered spin configuration", "size", c.Size, "temperature", c.Temperature, "file", path)
	}
	return nil
}

// Observables renders one scatter plot per configured plot.
func (r *Runner) Observables() error {
	for _, p := range r.cfg.Plots {
		if err := r.Observable(p); err != nil {
			return err
		}
	}
	return nil
}

// Observable renders a single scatter plot.
func (r *Runner) Observable(p config.PlotConfig) error {
	ss, err := series.Load(p.Labels, r.path(p.Pattern))
	if err != nil {
		return fmt.Errorf("plot %s: %w", p.Name, err)
	}
	if err := r.renderer.Scatter(p.Name, ss, p.XTitle, p.YTitle); err != nil {
		return err
	}
	r.logger.Info("rendered observable", "plot", p.Name, "series", len(ss))
	return nil
}

// Export loads the same inputs as Run and writes them to a workbook at path.
func (r *Runner) Export(path string) error {
	w, err := export.NewWorkbook()
	if err != nil {
		return err
	}
	defer w.Close()

	for _, c := range Combinations(r.cfg.Spins.Sizes, r.cfg.Spins.Temperatures) {
		m, err := lattice.ReadMatrix(r.path(c.Filename(r.cfg.Spins.Pattern)))
		if err != nil {
			return err
		}
		name := chart.HeatmapName(strconv.Itoa(c.Size), c.Temperature)
		if err := w.AddMatrix(name, m); err != nil {
			return err
		}
	}

	for _, p := range r.cfg.Plots {
		ss, err := series.Load(p.Labels, r.path(p.Pattern))
		if err != nil {
			return fmt.Errorf("plot %s: %w", p.Name, err)
		}
		if err := w.AddSeries(p.Name, ss); err != nil {
			return err
		}
	}

	if err := w.SaveAs(path); err != nil {
		return err
	}
	r.logger.Info("exported workbook", "file", path, "sheets", len(w.Sheets()))
	return nil
}
