package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/unrocketry/internal/games/rocket"
	"github.com/vovakirdan/unrocketry/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Start flying straight away, without the menu.

Controls:
  Space/Arrows/Enter - Flip the drift
  P                  - Pause
  Esc/B              - Pause, then leave
  R                  - Restart (after game over)
  Ctrl+S             - Save a screenshot
  Q/Ctrl+C           - Quit

Difficulty options:
  easy   - Slower start, gentler ramps, wider gaps
  normal - The tuning file as is
  hard   - Faster start, steeper ramps, tighter gaps
  fixed  - No speed ramps at all

Examples:
  unrocketry play
  unrocketry play --difficulty hard
  unrocketry play --seed 42
  unrocketry play --config ./my-rocket.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger(true)
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		fatal("%v", err)
	}
	bell, err := newBell()
	if err != nil {
		fatal("%v", err)
	}

	board, closeBoard := openBoard(cfg, logger)
	defer closeBoard()

	logger.Info("starting run", "difficulty", flagDifficulty, "seed", flagSeed)
	if _, err := tui.Run(rocket.New(cfg), board, bell, logger, runtimeConfig()); err != nil {
		closeBoard()
		closeLog()
		fatal("running game: %v", err)
	}
}
