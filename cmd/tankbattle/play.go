package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tank-battle/internal/core"
	"github.com/vovakirdan/tank-battle/internal/games/tanks"
	"github.com/vovakirdan/tank-battle/internal/platform/tui"
	"github.com/vovakirdan/tank-battle/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Tank Battle",
	Long: `Start the game. Without --difficulty a menu lets you pick one and
brings you back after each run.

Controls:
  W/A/S/D, arrows  - Move
  Space/F          - Fire
  Enter            - Continue after a cleared level
  P/Esc            - Pause
  R                - Restart after game over
  Ctrl+S           - Save a screenshot
  Q                - End the run and return to the menu, or decline the next level
  Ctrl+C           - Exit immediately

Examples:
  tankbattle play
  tankbattle play --difficulty easy
  tankbattle play --config ./my-tanks.yaml --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	base, preset, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	opts := tui.ModelOptions{
		Store:  store,
		Player: playerName(),
		Logger: logger,
	}

	// A difficulty on the command line skips the menu
	if flagDifficulty != "" {
		game := tanks.NewWithPreset(base, preset, logger)
		_, err := tui.Run(game, cfg, opts)
		return err
	}

	// Q goes back to the menu; Ctrl+C and declining a level exit
	opts.MenuOnQuit = true

	for {
		menuResult, err := tui.RunMenu(store, cfg, preset)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return sbErr
			}
			if !goBack {
				return nil
			}
			continue
		}

		preset = menuResult.Difficulty
		game := tanks.NewWithPreset(base, preset, logger)

		// A fixed --seed replays the same game every time
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		final, err := tui.Run(game, cfg, opts)
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		if final.IsQuitting() {
			return nil
		}
	}
}
