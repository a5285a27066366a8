package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tank-battle/internal/config"
	"github.com/vovakirdan/tank-battle/internal/games/tanks"
	"github.com/vovakirdan/tank-battle/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Tank Battle SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own game with a difficulty menu. Runs are
recorded under the SSH user name in a shared leaderboard.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.tankbattle/host_key

Examples:
  tankbattle serve                           # Listen on :23234
  tankbattle serve --ssh :2222               # Listen on port 2222
  tankbattle serve --host-key ./my_host_key  # Use specific host key
  tankbattle serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	base, preset, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()
	logger = logger.WithPrefix("tankbattle-ssh")

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS
	cfg.Difficulty = preset
	cfg.Logger = logger
	cfg.NewGame = newGameFactory(base, logger)

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting Tank Battle SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}

// newGameFactory returns a factory building one independent game per session.
func newGameFactory(base config.TanksConfig, logger *log.Logger) tui.GameFactory {
	return func(preset config.DifficultyPreset) tui.Game {
		return tanks.NewWithPreset(base, preset, logger)
	}
}
