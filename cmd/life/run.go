package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/platform/tui"
	"github.com/vovakirdan/tui-life/internal/seed"
	"github.com/vovakirdan/tui-life/internal/storage"
)

var (
	flagGenerations int
	flagPrint       bool
	flagNoise       bool
	flagRecord      bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a headless simulation",
	Long: `Run the simulation without a UI.

The board starts from a random fill, a noise fill (--noise) or the given
patterns. After each generation the population is printed as
"<generation> <population>"; with --print only the final board is printed.

Examples:
  life run --generations 500 --seed 42
  life run --pattern glider@1,1 --wrap=false --generations 40 --print
  life run --noise --generations 1000 --record`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	addBoardFlags(runCmd)
	runCmd.Flags().IntVar(&flagGenerations, "generations", 100, "Number of generations to run")
	runCmd.Flags().BoolVar(&flagPrint, "print", false, "Print the final board instead of populations")
	runCmd.Flags().BoolVar(&flagNoise, "noise", false, "Start from a Perlin noise fill")
	runCmd.Flags().BoolVar(&flagRecord, "record", false, "Record the run in the database")
}

func runRun(cmd *cobra.Command, _ []string) error {
	if flagGenerations < 0 {
		return fmt.Errorf("--generations must not be negative")
	}

	cfg := applyBoardFlags(cmd, lifeCfg)
	engine := newEngine(cfg)

	switch {
	case len(flagPatterns) > 0:
		if err := stampAll(engine, flagPatterns); err != nil {
			return err
		}
	case flagNoise:
		s := flagSeed
		if s == 0 {
			s = time.Now().UnixNano()
		}
		sim := cfg.Simulation
		engine.Fill(seed.Perlin(s, sim.NoiseScale, sim.NoiseLevel))
	default:
		engine.Randomize(cfg.Simulation.Density)
	}

	out := cmd.OutOrStdout()
	tracker := storage.NewRunTracker(engine.Cols(), engine.Rows(), engine.Wrap())
	start := time.Now()
	for range flagGenerations {
		engine.Advance()
		pop := engine.CountAlive()
		tracker.Observe(pop)
		if !flagPrint {
			fmt.Fprintf(out, "%d %d\n", engine.Generation(), pop)
		}
	}
	logger.Debug("run finished", "generations", flagGenerations, "elapsed", time.Since(start))

	if flagPrint {
		fmt.Fprintln(out, tui.BoardString(engine))
	}

	if flagRecord && flagGenerations > 0 {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()
		if _, err := store.RecordRun(tracker.Run()); err != nil {
			return err
		}
	}
	return nil
}
