// tankbattle is a side-scrolling tank combat game for the terminal.
//
// Usage:
//
//	tankbattle play          - Pick a difficulty and play
//	tankbattle serve         - Host games over SSH
//	tankbattle scores        - Show the leaderboard
//	tankbattle simulate      - Run a headless game with the autopilot
//	tankbattle config        - Print the default game config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.tankbattle/scores.db)
//	--config <path>       - Use a custom tanks.yaml
//	--difficulty <name>   - easy, normal or hard
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tank-battle/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tankbattle",
	Short: "Tank Battle - side-scrolling tank combat in your terminal",
	Long: `Tank Battle is a terminal arcade shooter. Drive your tank, shoot the
enemy tanks rolling in from the right, clear three levels and defeat the boss.

Available commands:
  play      - Pick a difficulty and play
  serve     - Start SSH server for remote play
  scores    - View the leaderboard
  simulate  - Run a headless game driven by the autopilot
  config    - Print the default game configuration

Examples:
  tankbattle play
  tankbattle play --difficulty hard
  tankbattle serve --ssh :2222
  tankbattle simulate --ticks 20000 --seed 7
  tankbattle config > my-tanks.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tankbattle/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tanks.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger. While a full-screen TUI owns the
// terminal, logs only go to --log-file.
func newLogger(fullscreen bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var out io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	case fullscreen:
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "tankbattle",
	})
	return logger, closeFn, nil
}

// loadGameConfig loads tanks.yaml and resolves the --difficulty flag.
// The returned config does not have the preset applied yet.
func loadGameConfig() (config.TanksConfig, config.DifficultyPreset, error) {
	cfg, err := config.LoadTanks(flagConfig)
	if err != nil {
		return config.TanksConfig{}, "", err
	}

	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok && flagDifficulty != "" {
		return config.TanksConfig{}, "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
	}
	return cfg, preset, nil
}

// playerName returns the name recorded with local runs.
func playerName() string {
	for _, k := range []string{"USER", "USERNAME"} {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return "player"
}
