package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/swarm-arcade/internal/core"
	"github.com/vovakirdan/swarm-arcade/internal/platform/tui"
	"github.com/vovakirdan/swarm-arcade/internal/registry"
	"github.com/vovakirdan/swarm-arcade/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Mouse             - Steer the player
  Arrows/WASD       - Nudge the player
  Left click/Space  - Fire at the nearest enemy
  Right click/F     - Special shot (hits up to five enemies)
  P                 - Pause
  R/Click           - Restart (after game over)
  B/Esc             - Leave the game
  Q/Ctrl+C          - Quit

Examples:
  arcade play swarm
  arcade play swarm --seed 42
  arcade play swarm --config ./my-swarm.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

// terminalConfig builds a runtime config sized to the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database, logging and returning nil on failure.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}
	checkGameConfig()

	// Continue without storage - game still works
	store := openStore()

	_, runErr := tui.Run(game, store, terminalConfig())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
