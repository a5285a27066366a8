package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tank-battle/internal/config"
	"github.com/vovakirdan/tank-battle/internal/core"
	"github.com/vovakirdan/tank-battle/internal/games/tanks"
	"github.com/vovakirdan/tank-battle/internal/games/tanks/engine"
	"github.com/vovakirdan/tank-battle/internal/storage"
)

var (
	flagTicks int
	flagSave  bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless game driven by the autopilot",
	Long: `Run the simulation without a terminal UI. The autopilot steers the
player tank, continues through every level prompt and stops at game over
or after --ticks. The same --seed always produces the same game.

Examples:
  tankbattle simulate --seed 7
  tankbattle simulate --ticks 50000 --difficulty hard --save`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 36000, "Maximum ticks to simulate")
	simulateCmd.Flags().BoolVar(&flagSave, "save", false, "Record the run in the leaderboard")
}

// simulation is the outcome of a headless run.
type simulation struct {
	Result   tanks.Result
	Snapshot engine.Snapshot
	Hash     uint64
}

// simulate plays one game with the autopilot for at most maxTicks ticks.
func simulate(base config.TanksConfig, preset config.DifficultyPreset, seed int64, maxTicks int, logger *log.Logger) simulation {
	game := tanks.NewWithPreset(base, preset, logger)
	rc := core.DefaultConfig()
	rc.Seed = seed
	game.Reset(rc)

	for range maxTicks {
		res := game.Step(tanks.Autopilot(game.World().View()))
		if res.State.GameOver || res.State.Quit {
			break
		}
	}

	return simulation{
		Result:   game.Result(),
		Snapshot: game.Snapshot(),
		Hash:     game.World().Hash(),
	}
}

func runSimulate(_ *cobra.Command, _ []string) error {
	base, preset, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	seed := flagSeed
	if seed == 0 {
		seed = 1
	}

	logger.Info("simulating", "seed", seed, "ticks", flagTicks, "difficulty", preset)
	sim := simulate(base, preset, seed, flagTicks, logger)
	printSimulation(os.Stdout, sim, seed)

	if !flagSave {
		return nil
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	id, err := store.SaveRun(storage.Run{
		Player:       "autopilot",
		Score:        sim.Result.Score,
		Level:        sim.Result.Level,
		Kills:        sim.Result.Kills,
		BossDefeated: sim.Result.BossDefeated,
		Ticks:        int64(sim.Result.Ticks),
		Difficulty:   string(sim.Result.Difficulty),
	})
	if err != nil {
		return err
	}
	fmt.Printf("Saved run %s\n", id)
	return nil
}

func printSimulation(w io.Writer, sim simulation, seed int64) {
	s := sim.Snapshot
	outcome := "time limit"
	switch {
	case s.Won:
		outcome = "boss defeated"
	case s.Phase == engine.PhaseGameOver:
		outcome = "destroyed"
	}

	fmt.Fprintf(w, "Seed:        %d\n", seed)
	fmt.Fprintf(w, "Difficulty:  %s\n", sim.Result.Difficulty)
	fmt.Fprintf(w, "Ticks:       %d\n", s.Tick)
	fmt.Fprintf(w, "Outcome:     %s\n", outcome)
	fmt.Fprintf(w, "Score:       %d\n", s.Score)
	fmt.Fprintf(w, "Level:       %s\n", s.Level)
	fmt.Fprintf(w, "Kills:       %d\n", s.TotalKills)
	fmt.Fprintf(w, "Lives left:  %d\n", s.Lives)
	fmt.Fprintf(w, "Hash:        %016x\n", sim.Hash)
}
