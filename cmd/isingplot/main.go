package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/isingplot/internal/chart"
	"github.com/san-kum/isingplot/internal/config"
	"github.com/san-kum/isingplot/internal/experiment"
	"github.com/san-kum/isingplot/internal/lattice"
	"github.com/san-kum/isingplot/internal/series"
	"github.com/san-kum/isingplot/internal/viz"
)

var (
	configFile string
	preset     string
	logLevel   string
	dataDir    string
	outDir     string
	format     string
	openViewer bool
	terminal   bool
	theme      string
	// heatmap
	size        string
	temperature string
	// scatter
	pattern string
	name    string
	xTitle  string
	yTitle  string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix:          "isingplot",
	ReportTimestamp: true,
})

// main registers the commands; with no subcommand it renders the example charts.
func main() {
	rootCmd := &cobra.Command{
		Use:           "isingplot",
		Short:         "charts for ising model simulation output",
		RunE:          runExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := log.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			logger.SetLevel(lvl)
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.StringVar(&dataDir, "data", config.DefaultDataDir, "directory holding simulation output")
	pf.StringVar(&outDir, "out", config.DefaultOutDir, "directory charts are written to")
	pf.StringVar(&format, "format", config.DefaultFormat, "image format (png, svg, pdf, ...)")
	pf.BoolVar(&openViewer, "open", true, "open each chart in the system viewer")
	pf.BoolVar(&terminal, "term", false, "print a terminal preview of each chart")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "terminal preview theme")

	exampleCmd := &cobra.Command{
		Use:   "example",
		Short: "render spin configurations and observables",
		Args:  cobra.NoArgs,
		RunE:  runExample,
	}

	heatmapCmd := &cobra.Command{
		Use:   "heatmap [file]",
		Short: "render one spin configuration",
		Args:  cobra.ExactArgs(1),
		RunE:  runHeatmap,
	}
	heatmapCmd.Flags().StringVar(&size, "size", "", "lattice size label (default: row count)")
	heatmapCmd.Flags().StringVar(&temperature, "temp", "", "reduced temperature label")
	_ = heatmapCmd.MarkFlagRequired("temp")

	scatterCmd := &cobra.Command{
		Use:   "scatter [label...]",
		Short: "render observable series, one per label",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runScatter,
	}
	scatterCmd.Flags().StringVar(&pattern, "pattern", "", "series filename with {} for the label")
	scatterCmd.Flags().StringVar(&name, "name", "scatter", "chart name")
	scatterCmd.Flags().StringVar(&xTitle, "x-title", "T*", "x axis title")
	scatterCmd.Flags().StringVar(&yTitle, "y-title", "", "y axis title")
	_ = scatterCmd.MarkFlagRequired("pattern")

	exportCmd := &cobra.Command{
		Use:   "export [file.xlsx]",
		Short: "export spin configurations and observables to a workbook",
		Args:  cobra.ExactArgs(1),
		RunE:  runExport,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets and themes",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	rootCmd.AddCommand(exampleCmd, heatmapCmd, scatterCmd, exportCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

// loadConfig resolves preset or config file, then applies explicitly set flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	switch {
	case preset != "":
		cfg, err = config.GetPreset(preset)
	case configFile != "":
		cfg, err = config.Load(configFile)
	default:
		cfg = config.DefaultConfig()
	}
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.DataDir = dataDir
	}
	if flags.Changed("out") {
		cfg.OutDir = outDir
	}
	if flags.Changed("format") {
		cfg.Format = format
	}
	if flags.Changed("open") {
		cfg.Open = openViewer
	}
	if flags.Changed("term") {
		cfg.Terminal = terminal
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newRenderer(cfg *config.Config) *chart.Renderer {
	file := viz.NewFileDisplay(cfg.OutDir, cfg.Format)
	file.Open = cfg.Open
	file.Logger = logger

	displays := viz.Multi{file}
	if cfg.Terminal {
		displays = append(displays, viz.NewTermDisplay(os.Stdout, viz.GetTheme(cfg.Theme)))
	}

	opts := chart.DefaultOptions()
	opts.Width = chart.Pixels(float64(cfg.Canvas.Width))
	opts.Height = chart.Pixels(float64(cfg.Canvas.Height))
	return chart.NewRenderer(displays, opts)
}

func runExample(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger.Debug("rendering example charts", "data", cfg.DataDir, "out", cfg.OutDir, "format", cfg.Format)
	return experiment.NewRunner(cfg, newRenderer(cfg), logger).Run()
}

func runHeatmap(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	path := args[0]
	m, err := lattice.ReadMatrix(path)
	if err != nil {
		return err
	}

	label := size
	if label == "" {
		label = strconv.Itoa(m.Rows())
	}
	if err := newRenderer(cfg).Heatmap(m, label, temperature); err != nil {
		return err
	}
	logger.Info("rendered spin configuration", "size", label, "temperature", temperature, "file", path)
	return nil
}

func runScatter(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ss, err := series.Load(args, filepath.Join(cfg.DataDir, pattern))
	if err != nil {
		return err
	}
	if err := newRenderer(cfg).Scatter(name, ss, xTitle, yTitle); err != nil {
		return err
	}
	logger.Info("rendered observable", "plot", name, "series", len(ss))
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return experiment.NewRunner(cfg, newRenderer(cfg), logger).Export(args[0])
}

func listPresets(cmd *cobra.Command, args []string) error {
	fmt.Println(viz.HeaderStyle.Render("presets"))
	for _, p := range config.ListPresets() {
		cfg, err := config.GetPreset(p)
		if err != nil {
			return err
		}
		summary := fmt.Sprintf("%d heatmaps, %d scatter plots",
			len(cfg.Spins.Sizes)*len(cfg.Spins.Temperatures), len(cfg.Plots))
		fmt.Println(viz.KeyValue(p, summary, 14))
	}

	fmt.Println()
	fmt.Println(viz.HeaderStyle.Render("themes"))
	for _, t := range viz.ThemeNames() {
		fmt.Println(viz.KeyValue(t, "", 14))
	}
	return nil
}
