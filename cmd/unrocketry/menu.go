package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/unrocketry/internal/games/rocket"
	"github.com/vovakirdan/unrocketry/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the main menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a run ends, press B to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  unrocketry menu
  unrocketry menu --fps 30
  unrocketry menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
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

	rc := runtimeConfig()
	title := rocket.New(cfg).Title()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(title, board, rc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		rc = menuResult.Config

		switch menuResult.Choice {
		case tui.ChoiceScores:
			goBack, err := tui.RunScoreboard(board, rc.ScreenW, rc.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			if !goBack {
				return
			}

		case tui.ChoicePlay:
			rc.Seed = flagSeed
			backToMenu, err := tui.Run(rocket.New(cfg), board, bell, logger, rc)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			}
			if !backToMenu {
				return
			}

		default:
			return
		}
	}
}
