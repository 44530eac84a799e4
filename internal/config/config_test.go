package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(default yaml) failed: %v", err)
	}
	want := DefaultLifeConfig()
	if cfg.Board != want.Board {
		t.Errorf("board = %+v, expected %+v", cfg.Board, want.Board)
	}
	if cfg.Simulation != want.Simulation {
		t.Errorf("simulation = %+v, expected %+v", cfg.Simulation, want.Simulation)
	}
	if cfg.Display != want.Display {
		t.Errorf("display = %+v, expected %+v", cfg.Display, want.Display)
	}
}

func TestParseClampsValues(t *testing.T) {
	cfg, err := Parse([]byte(`
board:
  cols: 5000
  rows: 2
  start: spiral
simulation:
  speed: 0
  density: 0
  smoke_steps: 80
  max_catch_up: -1
display:
  alive_color: chartreuse
`))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if cfg.Board.Cols != 400 || cfg.Board.Rows != 10 {
		t.Errorf("board = %dx%d, expected 400x10", cfg.Board.Cols, cfg.Board.Rows)
	}
	if cfg.Board.Start != StartGlider {
		t.Errorf("unknown start should fall back to %q, got %q", StartGlider, cfg.Board.Start)
	}
	if cfg.Simulation.Speed != 1 {
		t.Errorf("speed = %d, expected 1", cfg.Simulation.Speed)
	}
	if cfg.Simulation.Density != MinDensity {
		t.Errorf("density = %v, expected %v", cfg.Simulation.Density, MinDensity)
	}
	if cfg.Simulation.SmokeSteps != 50 {
		t.Errorf("smoke = %d, expected 50", cfg.Simulation.SmokeSteps)
	}
	if cfg.Simulation.MaxCatchUp != 5 {
		t.Errorf("max_catch_up = %d, expected default 5", cfg.Simulation.MaxCatchUp)
	}
	if cfg.Display.AliveColor != "bright_green" {
		t.Errorf("unknown color should fall back, got %q", cfg.Display.AliveColor)
	}
}

func TestParseKeepsDefaultsForMissingFields(t *testing.T) {
	cfg, err := Parse([]byte("simulation:\n  smoke_steps: 7\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Simulation.SmokeSteps != 7 {
		t.Errorf("smoke = %d, expected 7", cfg.Simulation.SmokeSteps)
	}
	if cfg.Board.Cols != 80 || cfg.Simulation.Speed != 12 {
		t.Errorf("missing fields should keep defaults, got cols=%d speed=%d", cfg.Board.Cols, cfg.Simulation.Speed)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	dir := t.TempDir()
	user := filepath.Join(dir, "user.yaml")
	local := filepath.Join(dir, "local.yaml")

	if err := os.WriteFile(local, []byte("board:\n  cols: 120\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := load("", user, local)
	if err != nil {
		t.Fatalf("load() failed: %v", err)
	}
	if cfg.Board.Cols != 120 {
		t.Errorf("missing user file should fall through to local, cols = %d", cfg.Board.Cols)
	}

	if err := os.WriteFile(user, []byte("board:\n  cols: 60\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = load("", user, local)
	if cfg.Board.Cols != 60 {
		t.Errorf("user file should win over local, cols = %d", cfg.Board.Cols)
	}

	cfg, _ = load("", filepath.Join(dir, "none-a.yaml"), filepath.Join(dir, "none-b.yaml"))
	if cfg.Board.Cols != 80 {
		t.Errorf("no files should yield embedded defaults, cols = %d", cfg.Board.Cols)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom path should be an error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := load(bad); err == nil {
		t.Error("malformed custom config should be an error")
	}
}
