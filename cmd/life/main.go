// life is a terminal Game of Life with fading smoke trails behind dying cells.
//
// Usage:
//
//	life play                - Run the interactive simulator
//	life run                 - Run headless and print population or the board
//	life patterns            - List registered patterns
//	life boards              - List saved boards
//	life serve               - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.life/configs, ./configs)
//	--db <path>         - Set database path (default: ~/.life/life.db)
//	--seed <value>      - Set RNG seed for reproducible boards
//	--fps <rate>        - Set frame rate (default: 30)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/patterns"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagSeed     int64
	flagFPS      int
	flagLogLevel string

	// Set up by the root command before any subcommand runs.
	logger  *log.Logger
	lifeCfg config.LifeConfig
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "life",
	Short: "Conway's Game of Life in your terminal",
	Long: `life runs Conway's Game of Life on a toroidal or bounded board.
Dying cells leave a trail of smoke that fades over a few generations.

Available commands:
  play      - Interactive simulator
  run       - Headless simulation
  patterns  - Show all registered patterns
  boards    - Manage saved boards
  serve     - Start SSH server for remote play

Examples:
  life play
  life play --cols 120 --rows 40 --smoke 8
  life run --generations 200 --pattern gosper@5,5 --print
  life serve --ssh :2222`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.life/life.db", "Path to board database")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Frame rate of the interactive view")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(boardsCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup builds the logger, loads the config and registers user patterns.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "life",
		Level:           level,
	})

	lifeCfg, err = config.Load(flagConfig)
	if err != nil {
		return err
	}

	if dir := lifeCfg.Patterns.Dir; dir != "" {
		n, err := patterns.RegisterAll(dir)
		if err != nil {
			// Bad pattern files should not stop the simulator.
			logger.Warn("some user patterns were skipped", "dir", dir, "error", err)
		}
		logger.Debug("user patterns registered", "dir", dir, "count", n)
	}
	return nil
}
