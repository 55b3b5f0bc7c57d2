package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arkanoid/internal/games/arkanoid"
	"github.com/vovakirdan/tui-arkanoid/internal/storage"
)

var (
	flagScoresLevel  string
	flagScoresLimit  int
	flagScoresRecent bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best rounds across all levels, or for one level.

Examples:
  arkanoid scores
  arkanoid scores --level halo
  arkanoid scores --recent --limit 20`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresLevel, "level", "", "Only show scores for this level ID")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of rounds to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the most recent rounds instead of the best")
}

func runScores(_ *cobra.Command, _ []string) error {
	title := "All levels"
	if flagScoresLevel != "" {
		level, ok := arkanoid.GetLevelByID(flagScoresLevel)
		if !ok {
			return fmt.Errorf("unknown level %q, run 'arkanoid levels' to see available levels", flagScoresLevel)
		}
		title = level.Name
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open scores database: %w", err)
	}
	defer store.Close()

	var scores []storage.ScoreEntry
	if flagScoresRecent {
		title = "Recent rounds"
		scores, err = store.RecentScores(arkanoid.GameID, flagScoresLimit)
	} else {
		scores, err = store.TopScores(arkanoid.GameID, flagScoresLevel, flagScoresLimit)
	}
	if err != nil {
		return fmt.Errorf("cannot retrieve scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'arkanoid play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-7s  %-10s  %s\n", "Rank", "Score", "Result", "Level", "Date")
	fmt.Printf("  %-4s  %-8s  %-7s  %-10s  %s\n", "----", "-----", "------", "-----", "----")

	for i, entry := range scores {
		result := "lost"
		if entry.Won {
			result = "cleared"
		}
		fmt.Printf("  %-4d  %-8d  %-7s  %-10s  %s\n",
			i+1, entry.Score, result, entry.Level, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	printStats(store)
	return nil
}

// printStats prints totals for the selected level, or for the whole game.
func printStats(store *storage.Store) {
	var stats *storage.GameStats
	if flagScoresLevel == "" {
		stats, _ = store.GetGameStats(arkanoid.GameID)
	} else if levels, err := store.GetLevelStats(arkanoid.GameID); err == nil {
		stats = levels[flagScoresLevel]
	}
	if stats == nil || stats.GamesCount == 0 {
		return
	}

	fmt.Println()
	fmt.Printf("Rounds: %d  Cleared: %d  Best: %d  Avg: %.0f\n",
		stats.GamesCount, stats.Wins, stats.HighScore, stats.AvgScore)
}
