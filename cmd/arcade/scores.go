package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/swarm-arcade/internal/registry"
	"github.com/vovakirdan/swarm-arcade/internal/storage"
)

var (
	flagScoresRuns  int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores and recent runs for a game",
	Long: `Display the top 10 high scores for the specified game, followed by
the most recent recorded runs.

Examples:
  arcade scores swarm
  arcade scores swarm --runs 20
  arcade scores swarm --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresRuns, "runs", 5, "Number of recent runs to show (0 to hide)")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores and runs for the game")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := args[0]

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := clearGame(store, gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Printf("Cleared scores and runs for %s.\n", title)
		return
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	if stats, err := store.GetGameStats(gameID); err == nil && stats != nil {
		fmt.Println()
		fmt.Printf("Best: %d  Games: %d  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}

	if flagScoresRuns > 0 {
		printRecentRuns(store, gameID, flagScoresRuns)
	}
}

func printRecentRuns(store *storage.Store, gameID string, limit int) {
	runs, err := store.RecentRuns(gameID, limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}
	if len(runs) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Recent runs")
	fmt.Println()
	fmt.Printf("  %-8s  %-6s  %-6s  %-6s  %-8s  %s\n", "ID", "Score", "Kills", "Acc", "Source", "Date")
	fmt.Printf("  %-8s  %-6s  %-6s  %-6s  %-8s  %s\n", "--", "-----", "-----", "---", "------", "----")
	for _, r := range runs {
		fmt.Printf("  %-8s  %-6d  %-6d  %-6.2f  %-8s  %s\n",
			shortID(r.ID), r.Score, r.Kills, r.Accuracy(), r.Source, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func clearGame(store *storage.Store, gameID string) error {
	if err := store.ClearScores(gameID); err != nil {
		return err
	}
	return store.ClearRuns(gameID)
}

// shortID trims a run UUID to its first block for table output.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
