package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/unrocketry/internal/config"
	"github.com/vovakirdan/unrocketry/internal/platform/tui"
	"github.com/vovakirdan/unrocketry/internal/scores"
)

var (
	flagScoresClear bool
	flagScoresPlain bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the top scores. On a terminal this opens the scoreboard
screen; with --plain or when piped it prints a table.

Examples:
  unrocketry scores
  unrocketry scores --plain
  unrocketry scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every recorded score")
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print a plain table instead of the scoreboard screen")
}

func runScores(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger(false)
	defer closeLog()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fatal("%v", err)
	}

	store, err := scores.Open(flagDBPath, cfg.Scores.MaxEntries)
	if err != nil {
		fatal("opening scores database: %v", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.Clear(context.Background()); err != nil {
			store.Close()
			fatal("%v", err)
		}
		logger.Info("leaderboard cleared", "db", flagDBPath)
		return
	}

	if !flagScoresPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		w, h, sizeErr := term.GetSize(int(os.Stdout.Fd()))
		if sizeErr != nil {
			w, h = 80, 24
		}
		if _, err := tui.RunScoreboard(scores.NewBoard(store, logger), w, h); err != nil {
			store.Close()
			fatal("%v", err)
		}
		return
	}

	entries, err := store.TopScores(context.Background(), 0)
	if err != nil {
		store.Close()
		fatal("retrieving scores: %v", err)
	}
	printScores(entries)
}

func printScores(entries []scores.Entry) {
	fmt.Println("High Scores - Unrocketry")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'unrocketry play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-16s  %s\n", "Rank", "Score", "Date", "When")
	fmt.Printf("  %-4s  %-10s  %-16s  %s\n", "----", "-----", "----", "----")

	for i, e := range entries {
		fmt.Printf("  %-4d  %-10s  %-16s  %s\n",
			i+1,
			humanize.Comma(int64(e.Score)),
			e.CreatedAt.Local().Format("2006-01-02 15:04"),
			humanize.Time(e.CreatedAt),
		)
	}

	fmt.Println()
	fmt.Printf("Best: %s\n", humanize.Comma(int64(entries[0].Score)))
}
