package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/registry"
)

// Board flags shared by play and run. They override the loaded config only
// when set on the command line.
var (
	flagCols     int
	flagRows     int
	flagSmoke    int
	flagSpeed    int
	flagDensity  float64
	flagWrap     bool
	flagPatterns []string
)

func addBoardFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagCols, "cols", 80, "Board width in cells (10-400)")
	cmd.Flags().IntVar(&flagRows, "rows", 50, "Board height in cells (10-300)")
	cmd.Flags().IntVar(&flagSmoke, "smoke", 3, "Trail length in generations (0-50)")
	cmd.Flags().IntVar(&flagSpeed, "speed", 12, "Generations per second (1-60)")
	cmd.Flags().Float64Var(&flagDensity, "density", 0.25, "Live probability for random fill (0.01-0.95)")
	cmd.Flags().BoolVar(&flagWrap, "wrap", true, "Wrap edges (torus); --wrap=false for a bounded board")
	cmd.Flags().StringArrayVar(&flagPatterns, "pattern", nil, "Stamp a pattern: name or name@x,y (repeatable)")
}

// applyBoardFlags copies explicitly set flags into cfg and re-normalizes it.
func applyBoardFlags(cmd *cobra.Command, cfg config.LifeConfig) config.LifeConfig {
	flags := cmd.Flags()
	if flags.Changed("cols") {
		cfg.Board.Cols = flagCols
	}
	if flags.Changed("rows") {
		cfg.Board.Rows = flagRows
	}
	if flags.Changed("smoke") {
		cfg.Simulation.SmokeSteps = flagSmoke
	}
	if flags.Changed("speed") {
		cfg.Simulation.Speed = flagSpeed
	}
	if flags.Changed("density") {
		cfg.Simulation.Density = flagDensity
	}
	if flags.Changed("wrap") {
		cfg.Board.Wrap = flagWrap
	}
	cfg.Normalize()
	return cfg
}

// newEngine creates an empty engine from cfg, seeded by --seed when given.
func newEngine(cfg config.LifeConfig) *life.Engine {
	opts := []life.Option{life.WithWrap(cfg.Board.Wrap)}
	if flagSeed != 0 {
		opts = append(opts, life.WithSeed(flagSeed))
	}
	return life.New(cfg.Board.Cols, cfg.Board.Rows, cfg.Simulation.SmokeSteps, opts...)
}

// placement is a pattern stamp requested on the command line.
type placement struct {
	name string
	x, y int
}

// parsePlacement parses "name" or "name@x,y". Without a position the
// pattern is centred on a cols x rows board.
func parsePlacement(s string, cols, rows int) (placement, error) {
	name, pos, hasPos := strings.Cut(s, "@")
	name = strings.TrimSpace(name)

	p, ok := registry.Lookup(name)
	if !ok {
		return placement{}, fmt.Errorf("unknown pattern %q (run 'life patterns' to list them)", name)
	}

	if !hasPos {
		b := p.Bounds()
		return placement{name: name, x: (cols - b.W) / 2, y: (rows - b.H) / 2}, nil
	}

	xs, ys, found := strings.Cut(pos, ",")
	if !found {
		return placement{}, fmt.Errorf("invalid pattern position %q, expected x,y", pos)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return placement{}, fmt.Errorf("invalid pattern x %q: %w", xs, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return placement{}, fmt.Errorf("invalid pattern y %q: %w", ys, err)
	}
	return placement{name: name, x: x, y: y}, nil
}

// stampAll stamps every --pattern flag onto e.
func stampAll(e *life.Engine, specs []string) error {
	for _, s := range specs {
		p, err := parsePlacement(s, e.Cols(), e.Rows())
		if err != nil {
			return err
		}
		e.StampPattern(p.name, p.x, p.y)
		logger.Debug("pattern stamped", "pattern", p.name, "x", p.x, "y", p.y)
	}
	return nil
}
