package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/registry"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List all registered patterns",
	Long: `Shows the built-in patterns and any user patterns loaded from the
directory named by patterns.dir in the config.`,
	Args: cobra.NoArgs,
	Run:  runPatterns,
}

func runPatterns(cmd *cobra.Command, _ []string) {
	list := registry.List()
	out := cmd.OutOrStdout()

	if len(list) == 0 {
		fmt.Fprintln(out, "No patterns available.")
		return
	}

	fmt.Fprintln(out, "Available patterns:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, p := range list {
		maxNameLen = max(maxNameLen, len(p.Name))
	}

	fmt.Fprintf(out, "  %-*s  %-6s  %-7s  %s\n", maxNameLen, "Name", "Cells", "Size", "Title")
	fmt.Fprintf(out, "  %-*s  %-6s  %-7s  %s\n", maxNameLen, "----", "-----", "----", "-----")

	for _, p := range list {
		b := p.Bounds()
		fmt.Fprintf(out, "  %-*s  %-6d  %-7s  %s\n",
			maxNameLen, p.Name, len(p.Points), fmt.Sprintf("%dx%d", b.W, b.H), p.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Stamp one with 'life play --pattern <name>' or press tab and p in the simulator.")
}
