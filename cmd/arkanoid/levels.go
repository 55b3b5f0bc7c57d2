package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arkanoid/internal/games/arkanoid"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all built-in levels",
	Long:  `Shows the built-in levels with the number of blocks to clear in each.`,
	Run:   runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	levels := arkanoid.BuiltinLevels()

	fmt.Println("Available levels:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, l := range levels {
		maxIDLen = max(maxIDLen, len(l.ID))
	}

	fmt.Printf("  %-3s  %-*s  %-14s  %s\n", "#", maxIDLen, "ID", "Name", "Blocks")
	fmt.Printf("  %-3s  %-*s  %-14s  %s\n", "-", maxIDLen, "--", "----", "------")

	for i, l := range levels {
		fmt.Printf("  %-3d  %-*s  %-14s  %d\n", i+1, maxIDLen, l.ID, l.Name, l.Breakable())
	}

	fmt.Println()
	fmt.Println("Run 'arkanoid play <#|id>' to play a level.")
}
