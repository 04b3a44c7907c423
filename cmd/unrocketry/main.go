// unrocketry is an endless rocket-dodging game for the terminal.
//
// Usage:
//
//	unrocketry play          - Fly a run straight away
//	unrocketry menu          - Start with the main menu
//	unrocketry serve         - Start SSH server for remote play
//	unrocketry scores        - Show the leaderboard
//	unrocketry config        - Print the default tuning file
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.unrocketry/scores.db)
//	--config <path>       - Load tuning from a YAML file
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
//	--sound <mode>        - Terminal bell: off, gameover or all
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagSound      string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "unrocketry",
	Short: "Unrocketry - Steer a rocket through endless obstacles",
	Long: `Unrocketry is an endless terminal game. Your rocket drifts side to
side on its own; tap to flip the drift and slip through the gaps.

Available commands:
  play     - Start a run directly
  menu     - Main menu with high scores
  serve    - Start SSH server for remote play
  scores   - View the leaderboard
  config   - Print the default tuning file

Examples:
  unrocketry play
  unrocketry play --difficulty hard
  unrocketry menu
  unrocketry serve --ssh :2222
  unrocketry scores`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.unrocketry/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagSound, "sound", "gameover", "Terminal bell: off, gameover, all")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// fatal prints an error and exits.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
