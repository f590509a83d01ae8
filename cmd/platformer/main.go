// platformer is a side-scrolling tile platformer that runs in the terminal.
//
// Usage:
//
//	platformer list              - List available games
//	platformer play [game]       - Play a game (default: platformer)
//	platformer sim               - Run the simulation headless with scripted input
//	platformer serve             - Start SSH server for remote play
//	platformer scores [game]     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--db <path>          - Set database path (default: ~/.platformer/scores.db)
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - Log level: debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

const defaultGameID = "platformer"

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "Terminal platformer - run, jump and stomp in your terminal",
	Long: `A side-scrolling tile platformer played in the terminal.

Available commands:
  list     - Show all available games
  play     - Play a game
  sim      - Run the simulation without a terminal
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  platformer play
  platformer play --difficulty easy
  platformer sim --steps 600 --script "R*120,RJ*10,R*200"
  platformer serve --ssh :2222
  platformer scores --tui`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.platformer/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// gameArg returns the game named on the command line, or the default game.
func gameArg(args []string) (string, error) {
	gameID := defaultGameID
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return "", fmt.Errorf("unknown game %q, run 'platformer list' to see available games", gameID)
	}
	return gameID, nil
}

// configureGame loads --config and --difficulty for gameID before any game
// is created. Only the platformer is configurable.
func configureGame(gameID, path, difficulty string) error {
	if gameID != platformer.GameID {
		return nil
	}
	cfg, err := config.LoadPlatformerPreset(path, difficulty)
	if err != nil {
		return err
	}
	platformer.SetConfig(cfg)
	return nil
}
