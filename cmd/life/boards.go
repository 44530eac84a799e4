package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/storage"
)

var boardsCmd = &cobra.Command{
	Use:   "boards",
	Short: "List saved boards",
	Long: `Display the boards saved with ctrl+s in the simulator, newest first,
followed by a summary of recorded runs and the longest of them.

Examples:
  life boards
  life boards --top 10
  life boards rm my-board`,
	Args: cobra.NoArgs,
	RunE: runBoards,
}

var boardsRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Delete a saved board",
	Args:  cobra.ExactArgs(1),
	RunE:  runBoardsRm,
}

var flagTop int

func init() {
	boardsCmd.Flags().IntVar(&flagTop, "top", 5, "Number of longest runs to show (0 hides them)")
	boardsCmd.AddCommand(boardsRmCmd)
}

func runBoards(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	boards, err := store.ListBoards()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(boards) == 0 {
		fmt.Fprintln(out, "No saved boards yet.")
	} else {
		maxNameLen := 4 // "Name" header
		for _, b := range boards {
			maxNameLen = max(maxNameLen, len(b.Name))
		}

		fmt.Fprintf(out, "  %-*s  %-9s  %-7s  %-6s  %s\n", maxNameLen, "Name", "Size", "Pop", "Gen", "Saved")
		fmt.Fprintf(out, "  %-*s  %-9s  %-7s  %-6s  %s\n", maxNameLen, "----", "----", "---", "---", "-----")
		for _, b := range boards {
			fmt.Fprintf(out, "  %-*s  %-9s  %-7d  %-6d  %s\n",
				maxNameLen, b.Name, fmt.Sprintf("%dx%d", b.Cols, b.Rows),
				b.Population, b.Generation, b.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	if stats.Count > 0 {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Runs: %d  Total generations: %d  Longest: %d  Peak population: %d  Last: %s\n",
			stats.Count, stats.TotalGens, stats.LongestRun, stats.PeakPopulation,
			stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	if stats.Count == 0 || flagTop <= 0 {
		return nil
	}

	runs, err := store.TopRuns(flagTop)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Longest runs:")
	fmt.Fprintf(out, "  %-3s  %-9s  %-6s  %-5s  %-5s  %-4s  %s\n", "#", "Size", "Gens", "Peak", "Final", "Wrap", "Played")
	for i, r := range runs {
		wrap := "no"
		if r.Wrap {
			wrap = "yes"
		}
		fmt.Fprintf(out, "  %-3d  %-9s  %-6d  %-5d  %-5d  %-4s  %s\n",
			i+1, fmt.Sprintf("%dx%d", r.Cols, r.Rows), r.Generations,
			r.PeakPopulation, r.FinalPopulation, wrap, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func runBoardsRm(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.DeleteBoard(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
	return nil
}
