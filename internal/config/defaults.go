package config

import (
	_ "embed"
)

//go:embed defaults/life.yaml
var defaultLifeYAML []byte

// DefaultLifeConfig returns the built-in configuration.
func DefaultLifeConfig() LifeConfig {
	return LifeConfig{
		Board: BoardConfig{
			Cols:             80,
			Rows:             50,
			Wrap:             true,
			PreserveOnResize: true,
			Start:            StartGlider,
		},
		Simulation: SimulationConfig{
			Speed:      12,
			MaxCatchUp: 5,
			Density:    0.25,
			SmokeSteps: 3,
			NoiseScale: 6,
			NoiseLevel: 0.05,
		},
		Display: DisplayConfig{
			ShowGrid:   false,
			AliveGlyph: "█",
			SmokeGlyph: "▒",
			GridGlyph:  "·",
			AliveColor: "bright_green",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultLifeYAML
}
