// Package config provides YAML-based configuration loading for the simulator.
package config

import (
	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/life"
)

// Density bounds for Randomize.
const (
	MinDensity = 0.01
	MaxDensity = 0.95
)

// Initial board contents for board.start.
const (
	StartGlider = "glider" // one glider near the top-left corner
	StartRandom = "random" // Randomize at simulation.density
	StartEmpty  = "empty"
)

// LifeConfig contains all configuration for the simulator.
type LifeConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Simulation SimulationConfig `yaml:"simulation"`
	Display    DisplayConfig    `yaml:"display"`
	Patterns   PatternsConfig   `yaml:"patterns"`
}

// BoardConfig defines the initial board.
type BoardConfig struct {
	Cols             int    `yaml:"cols"`
	Rows             int    `yaml:"rows"`
	Wrap             bool   `yaml:"wrap"`
	PreserveOnResize bool   `yaml:"preserve_on_resize"`
	Start            string `yaml:"start"`
}

// SimulationConfig defines pacing, fill density and trail length.
type SimulationConfig struct {
	Speed      int     `yaml:"speed"`        // Generations per second
	MaxCatchUp int     `yaml:"max_catch_up"` // Steps allowed per frame when behind
	Density    float64 `yaml:"density"`      // Live probability for Randomize
	SmokeSteps int     `yaml:"smoke_steps"`
	NoiseScale float64 `yaml:"noise_scale"` // Cells per Perlin lattice unit
	NoiseLevel float64 `yaml:"noise_level"` // Perlin threshold for a live cell
}

// DisplayConfig defines how cells are drawn.
type DisplayConfig struct {
	ShowGrid   bool   `yaml:"show_grid"`
	AliveGlyph string `yaml:"alive_glyph"`
	SmokeGlyph string `yaml:"smoke_glyph"`
	GridGlyph  string `yaml:"grid_glyph"`
	AliveColor string `yaml:"alive_color"`
}

// PatternsConfig points at user pattern files.
type PatternsConfig struct {
	Dir string `yaml:"dir"`
}

// Normalize clamps every value into its valid range and fills empty glyphs.
func (c *LifeConfig) Normalize() {
	d := DefaultLifeConfig()

	c.Board.Cols = core.Clamp(c.Board.Cols, life.MinCols, life.MaxCols)
	c.Board.Rows = core.Clamp(c.Board.Rows, life.MinRows, life.MaxRows)
	switch c.Board.Start {
	case StartGlider, StartRandom, StartEmpty:
	default:
		c.Board.Start = d.Board.Start
	}

	c.Simulation.Speed = core.Clamp(c.Simulation.Speed, core.MinRate, core.MaxRate)
	if c.Simulation.MaxCatchUp <= 0 {
		c.Simulation.MaxCatchUp = d.Simulation.MaxCatchUp
	}
	c.Simulation.Density = core.ClampF(c.Simulation.Density, MinDensity, MaxDensity)
	c.Simulation.SmokeSteps = core.Clamp(c.Simulation.SmokeSteps, life.MinSmoke, life.MaxSmoke)
	if c.Simulation.NoiseScale <= 0 {
		c.Simulation.NoiseScale = d.Simulation.NoiseScale
	}

	if c.Display.AliveGlyph == "" {
		c.Display.AliveGlyph = d.Display.AliveGlyph
	}
	if c.Display.SmokeGlyph == "" {
		c.Display.SmokeGlyph = d.Display.SmokeGlyph
	}
	if c.Display.GridGlyph == "" {
		c.Display.GridGlyph = d.Display.GridGlyph
	}
	if _, ok := core.ParseColor(c.Display.AliveColor); !ok {
		c.Display.AliveColor = d.Display.AliveColor
	}
}

// Color resolves the configured live-cell color.
func (c DisplayConfig) Color() core.Color {
	col, ok := core.ParseColor(c.AliveColor)
	if !ok {
		return core.ColorBrightGreen
	}
	return col
}
