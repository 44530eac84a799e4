package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/platform/tui"
	"github.com/vovakirdan/tui-life/internal/storage"
)

var (
	flagLoad  string
	flagStart string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Run the interactive simulator",
	Long: `Start the interactive simulator.

Controls:
  Space        - Play/pause
  S/N          - Single step (while paused)
  R / Shift+N  - Random fill / noise fill
  C            - Clear
  W / G        - Toggle wrap / grid
  + / -        - Faster / slower
  ] / [        - More / less smoke
  Arrows/hjkl  - Move cursor
  Enter/X, D   - Toggle / erase cell
  Tab, P       - Cycle pattern, stamp it at the cursor
  > / <        - Grow / shrink the board
  Ctrl+S       - Save board
  Ctrl+O       - Browse saved boards
  ?            - Full help
  Q/Ctrl+C     - Quit

Examples:
  life play
  life play --cols 200 --rows 60 --smoke 10
  life play --wrap=false --pattern gosper@2,2
  life play --start random
  life play --load my-board`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addBoardFlags(playCmd)
	playCmd.Flags().StringVar(&flagLoad, "load", "", "Load a saved board by name")
	playCmd.Flags().StringVar(&flagStart, "start", "", "Starting board: glider, random or empty (default from config)")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg := applyBoardFlags(cmd, lifeCfg)
	if cmd.Flags().Changed("start") {
		cfg.Board.Start = flagStart
		cfg.Normalize()
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open board database", "error", err)
		// Continue without storage
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	engine := newEngine(cfg)
	switch {
	case flagLoad != "":
		if store == nil {
			return fmt.Errorf("cannot load %q without a board database", flagLoad)
		}
		board, err := store.LoadBoard(flagLoad)
		if err != nil {
			return err
		}
		board.Restore(engine)
	case len(flagPatterns) > 0:
		if err := stampAll(engine, flagPatterns); err != nil {
			return err
		}
	default:
		tui.SeedBoard(engine, cfg)
	}

	model := tui.NewModel(engine, tui.Options{
		Config:  cfg,
		Runtime: rt,
		Store:   store,
		Logger:  logger,
		Name:    flagLoad,
	})
	if err := tui.Run(model); err != nil {
		return fmt.Errorf("running simulator: %w", err)
	}
	return nil
}
