package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/unrocketry/internal/games/rocket"
	"github.com/vovakirdan/unrocketry/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with the main menu and its own
game. All users share one leaderboard.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.unrocketry/host_key

Examples:
  unrocketry serve                           # Listen on :23234 with auto-generated key
  unrocketry serve --ssh :2222               # Listen on port 2222
  unrocketry serve --host-key ./my_host_key  # Use specific host key
  unrocketry serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger(false)
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		fatal("%v", err)
	}
	sound, err := tui.ParseBellMode(flagSound)
	if err != nil {
		fatal("%v", err)
	}

	board, closeBoard := openBoard(cfg, logger)
	defer closeBoard()

	serverCfg := tui.DefaultSSHServerConfig()
	serverCfg.Address = flagSSHAddr
	serverCfg.HostKeyPath = flagHostKey
	serverCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	serverCfg.TickRate = flagFPS
	serverCfg.Sound = sound

	newGame := func() tui.Game { return rocket.New(cfg) }
	server, err := tui.NewSSHServer(serverCfg, newGame, board, logger)
	if err != nil {
		closeBoard()
		fatal("creating server: %v", err)
	}

	fmt.Printf("Starting unrocketry SSH server on %s\n", serverCfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		closeBoard()
		fatal("%v", err)
	}
}
