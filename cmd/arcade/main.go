// arcade is a terminal arcade hosting Swarm, a homing-enemy survival shooter.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show high scores and recent runs for a game
//	arcade sim               - Run headless autopilot sessions
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.arcade/scores.db)
//	--config <path>     - Custom Swarm config YAML
//	--log-level <level> - debug, info, warn or error (default: warn)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/swarm-arcade/internal/games/swarm"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

// logger is the CLI logger, configured from --log-level before any command runs.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "arcade",
	Level:           log.WarnLevel,
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Swarm Arcade - survive the swarm in your terminal",
	Long: `Swarm Arcade is a terminal-based arcade built around Swarm: steer with
the mouse or arrow keys, shoot the nearest enemy, and save the special shot
for when the swarm closes in.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores and recent runs
  sim      - Run headless autopilot sessions

Examples:
  arcade list
  arcade play swarm
  arcade play swarm --config ./my-swarm.yaml
  arcade menu
  arcade serve --ssh :2222
  arcade scores swarm
  arcade sim --runs 8 --ticks 36000 --save`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger.SetLevel(level)
		log.SetDefault(logger)

		if flagFPS <= 0 {
			return fmt.Errorf("invalid --fps %d: must be positive", flagFPS)
		}

		swarm.SetConfigPath(flagConfig)
		return nil
	},
}

// checkGameConfig reports an unusable Swarm config up front. The game
// itself falls back to defaults.
func checkGameConfig() {
	if _, err := swarm.LoadConfig(); err != nil {
		logger.Warn("using default swarm config", "err", err)
	}
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom Swarm config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}
