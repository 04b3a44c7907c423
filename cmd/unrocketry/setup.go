package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/unrocketry/internal/config"
	"github.com/vovakirdan/unrocketry/internal/core"
	"github.com/vovakirdan/unrocketry/internal/platform/tui"
	"github.com/vovakirdan/unrocketry/internal/scores"
)

// newLogger builds the root logger from --log-level. Interactive commands
// log to a file so output never lands on the alt screen. The returned func
// closes the log file, if any.
func newLogger(interactive bool) (*log.Logger, func()) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: unknown log level %q, using info\n", flagLogLevel)
		level = log.InfoLevel
	}

	if !interactive {
		return log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "unrocketry",
			Level:           level,
		}), func() {}
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	if path := config.UserPath("unrocketry.log"); path != "" {
		//nolint:errcheck // Best-effort directory creation
		os.MkdirAll(filepath.Dir(path), 0o755)
		if f, openErr := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600); openErr == nil {
			w = f
			closeFn = func() { f.Close() }
		}
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           level,
	}), closeFn
}

// loadConfig loads tuning from --config and applies --difficulty.
func loadConfig() (config.RocketConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}
	return cfg, nil
}

// openBoard opens the leaderboard. A database that cannot be opened is
// reported and the game continues without saving scores.
func openBoard(cfg config.RocketConfig, logger *log.Logger) (*scores.Board, func()) {
	store, err := scores.Open(flagDBPath, cfg.Scores.MaxEntries)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "db", flagDBPath, "err", err)
		return scores.NewBoard(nil, logger), func() {}
	}
	return scores.NewBoard(store, logger), func() { store.Close() }
}

// newBell creates the local terminal bell from --sound.
func newBell() (*tui.Bell, error) {
	mode, err := tui.ParseBellMode(flagSound)
	if err != nil {
		return nil, err
	}
	return tui.NewBell(os.Stdout, mode), nil
}

// runtimeConfig sizes the runtime to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
