package config

import (
	"fmt"
	"slices"
)

var Presets = map[string]func() *Config{
	"example": DefaultConfig,
	"spins": func() *Config {
		cfg := DefaultConfig()
		cfg.Plots = nil
		return cfg
	},
	"observables": func() *Config {
		cfg := DefaultConfig()
		cfg.Spins.Sizes = nil
		return cfg
	},
	"preview": func() *Config {
		cfg := DefaultConfig()
		cfg.Open = false
		cfg.Terminal = true
		return cfg
	},
}

// GetPreset returns a fresh copy of the named preset.
func GetPreset(name string) (*Config, error) {
	fn, ok := Presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPreset, name)
	}
	return fn(), nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
