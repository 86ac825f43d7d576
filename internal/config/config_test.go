package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if len(cfg.Spins.Sizes)*len(cfg.Spins.Temperatures) != 9 {
		t.Errorf("expected 9 spin configurations, got %d", len(cfg.Spins.Sizes)*len(cfg.Spins.Temperatures))
	}
	if cfg.Canvas.Width != 600 || cfg.Canvas.Height != 600 {
		t.Errorf("expected 600x600 canvas, got %dx%d", cfg.Canvas.Width, cfg.Canvas.Height)
	}
	if len(cfg.Plots) != 2 {
		t.Fatalf("expected 2 plots, got %d", len(cfg.Plots))
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}

	heat, ok := cfg.Plot("heat_capacity")
	if !ok {
		t.Fatal("expected heat_capacity plot")
	}
	if heat.YTitle != "Heat Capacity" || len(heat.Labels) != 3 {
		t.Errorf("unexpected heat capacity plot %+v", heat)
	}
	if _, ok := cfg.Plot("nonexistent"); ok {
		t.Error("expected missing plot")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "isingplot.yaml")
	content := `
data_dir: runs
format: svg
spins:
  sizes: [4]
  temperatures: ["2.0", "3.5"]
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.DataDir != "runs" || cfg.Format != "svg" {
		t.Errorf("unexpected config %+v", cfg)
	}
	if len(cfg.Spins.Sizes) != 1 || cfg.Spins.Temperatures[1] != "3.5" {
		t.Errorf("unexpected spins %+v", cfg.Spins)
	}
	if cfg.Spins.Pattern != DefaultPattern {
		t.Errorf("expected default pattern, got %s", cfg.Spins.Pattern)
	}
	if len(cfg.Plots) != 2 {
		t.Errorf("expected default plots, got %d", len(cfg.Plots))
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := DefaultConfig()
	cfg.Theme = "ocean"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Theme != "ocean" || loaded.Plots[1].YTitle != "<m>" {
		t.Errorf("round trip lost fields: %+v", loaded)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		err    error
	}{
		{"defaults", func(*Config) {}, nil},
		{"svg", func(c *Config) { c.Format = "svg" }, nil},
		{"unknown format", func(c *Config) { c.Format = "bmp" }, ErrUnsupportedFormat},
		{"zero width", func(c *Config) { c.Canvas.Width = 0 }, ErrInvalidCanvas},
		{"negative height", func(c *Config) { c.Canvas.Height = -600 }, ErrInvalidCanvas},
		{"zero canvas", func(c *Config) { c.Canvas = CanvasConfig{} }, ErrInvalidCanvas},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.err) {
				t.Errorf("expected %v, got %v", tt.err, err)
			}
		})
	}
}

func TestValidate_LoadedCanvas(t *testing.T) {
	path := filepath.Join(t.TempDir(), "isingplot.yaml")
	if err := os.WriteFile(path, []byte("canvas:\n  width: 0\n"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Canvas.Height != DefaultHeight {
		t.Errorf("expected default height, got %d", cfg.Canvas.Height)
	}
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidCanvas) {
		t.Errorf("expected ErrInvalidCanvas, got %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	cfg, err := GetPreset("spins")
	if err != nil {
		t.Fatalf("expected preset, got %v", err)
	}
	if len(cfg.Plots) != 0 {
		t.Errorf("expected no plots, got %d", len(cfg.Plots))
	}

	cfg.Spins.Sizes[0] = 99
	again, _ := GetPreset("spins")
	if again.Spins.Sizes[0] == 99 {
		t.Error("presets must not share state")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	cfg, err := GetPreset("nonexistent")
	if cfg != nil || !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset, got %v", err)
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) != len(Presets) {
		t.Errorf("expected %d presets, got %d", len(Presets), len(presets))
	}
	if presets[0] != "example" {
		t.Errorf("expected sorted names, got %v", presets)
	}
}

func TestClone(t *testing.T) {
	cfg := DefaultConfig()
	cp := cfg.Clone()
	cp.Plots[0].Labels[0] = "99"
	cp.Spins.Temperatures[0] = "0"

	if cfg.Plots[0].Labels[0] != "8" || cfg.Spins.Temperatures[0] != "1.0" {
		t.Error("clone shares slices with the source")
	}
}
