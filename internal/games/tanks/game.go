// Package tanks adapts the tank battle engine to the arcade platform:
// lifecycle commands, pause, ASCII rendering and a scripted autopilot.
package tanks

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tank-battle/internal/config"
	"github.com/vovakirdan/tank-battle/internal/core"
	"github.com/vovakirdan/tank-battle/internal/games/tanks/engine"
)

// ID is the identifier used for score storage.
const ID = "tanks"

// Minimum terminal size for a playable arena.
const (
	MinScreenW = 40
	MinScreenH = 16
)

// hitFlashTicks is how long the player blinks after taking a hit.
const hitFlashTicks = 12

// Options configures a Game.
type Options struct {
	Config     config.TanksConfig
	Difficulty config.DifficultyPreset
	Logger     *log.Logger
}

// Game runs one tank battle session.
type Game struct {
	opts    Options
	runtime core.RuntimeConfig
	sim     *engine.Sim

	paused   bool
	hitFlash int
	lastTick engine.TickReport
}

// New creates a game. Reset must be called before the first Step.
func New(opts Options) *Game {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Difficulty == "" {
		opts.Difficulty = config.DifficultyNormal
	}
	return &Game{opts: opts}
}

// NewWithPreset creates a game from a base config with the difficulty
// preset applied. base is not modified.
func NewWithPreset(base config.TanksConfig, preset config.DifficultyPreset, logger *log.Logger) *Game {
	cfg := base
	config.ApplyPreset(&cfg, preset)
	return New(Options{Config: cfg, Difficulty: preset, Logger: logger})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tank Battle"
}

// Difficulty returns the preset the game was configured with.
func (g *Game) Difficulty() config.DifficultyPreset {
	return g.opts.Difficulty
}

// Reset starts a fresh run seeded from the runtime config.
// The in-memory high score is kept across resets.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	high := 0
	if g.sim != nil {
		high = g.sim.World.HighScore
	}

	g.runtime = runtime
	g.sim = engine.New(g.opts.Config, engine.Options{
		Seed:   runtime.Seed,
		Logger: g.opts.Logger,
	})
	g.sim.World.HighScore = high
	g.paused = false
	g.hitFlash = 0
	g.lastTick = engine.TickReport{}

	g.opts.Logger.Debug("tanks reset", "seed", runtime.Seed, "difficulty", g.opts.Difficulty)
}

// World exposes the simulated world for read-only inspection.
func (g *Game) World() *engine.World {
	return g.sim.World
}

// Step handles lifecycle input for the current phase and otherwise
// advances the simulation by one tick.
//
//	playing:  P pauses, movement and fire drive the player
//	victory:  Enter continues to the next level, Q quits
//	gameover: R restarts
func (g *Game) Step(in core.InputFrame) core.StepResult {
	w := g.sim.World

	switch w.Phase {
	case engine.PhaseGameOver:
		if in.Has(core.ActionRestart) {
			g.sim.Restart()
			g.paused = false
		}
		return core.StepResult{State: g.State()}

	case engine.PhaseVictory:
		switch {
		case in.Has(core.ActionConfirm):
			if rep, ok := g.sim.Acknowledge(true); ok {
				g.lastTick = rep
			}
		case in.Has(core.ActionQuit):
			if rep, ok := g.sim.Acknowledge(false); ok {
				g.lastTick = rep
			}
		}
		return core.StepResult{State: g.State()}

	case engine.PhaseQuit:
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	rep := g.sim.Step(engine.InputFromFrame(in))
	g.lastTick = rep

	if g.hitFlash > 0 {
		g.hitFlash--
	}
	if rep.Count(engine.EventPlayerHit) > 0 {
		g.hitFlash = hitFlashTicks
	}

	return core.StepResult{State: g.State()}
}

// LastTick returns the report of the most recent simulated tick or
// answered level prompt.
func (g *Game) LastTick() engine.TickReport {
	return g.lastTick
}

// State returns the platform-level game state.
func (g *Game) State() core.GameState {
	w := g.sim.World
	return core.GameState{
		Score:          w.Player.Score,
		GameOver:       w.Phase == engine.PhaseGameOver,
		Paused:         g.paused,
		AwaitingChoice: w.Phase == engine.PhaseVictory,
		Quit:           w.Phase == engine.PhaseQuit,
	}
}

// Snapshot returns the engine snapshot for determinism checks.
func (g *Game) Snapshot() engine.Snapshot {
	return g.sim.World.Snapshot()
}

// Result summarizes the current run for the leaderboard.
type Result struct {
	Score        int
	Level        string // Last level reached, "Boss" for the boss level
	Kills        int
	BossDefeated bool
	Ticks        uint64
	Difficulty   config.DifficultyPreset
}

// Result returns the summary of the current run.
func (g *Game) Result() Result {
	w := g.sim.World
	return Result{
		Score:        w.Player.Score,
		Level:        w.Level.String(),
		Kills:        w.TotalKills,
		BossDefeated: w.Won,
		Ticks:        w.Tick,
		Difficulty:   g.opts.Difficulty,
	}
}
