package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/swarm-arcade/internal/registry"
	"github.com/vovakirdan/swarm-arcade/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all games registered in the arcade.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	// Best scores are optional: list still works without a database.
	var stats map[string]*storage.GameStats
	if store := openStore(); store != nil {
		stats, _ = store.GetAllGamesStats()
		store.Close()
	}

	// Print header
	fmt.Printf("  %-*s  %-12s  %s\n", maxIDLen, "ID", "Title", "Best")
	fmt.Printf("  %-*s  %-12s  %s\n", maxIDLen, "--", "-----", "----")

	// Print games
	for _, g := range games {
		best := "-"
		if st, ok := stats[g.ID]; ok && st.GamesCount > 0 {
			best = fmt.Sprintf("%d (%d games)", st.HighScore, st.GamesCount)
		}
		fmt.Printf("  %-*s  %-12s  %s\n", maxIDLen, g.ID, g.Title, best)
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' to play a game.")
}
