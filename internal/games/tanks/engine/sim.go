package engine

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tank-battle/internal/config"
	"github.com/vovakirdan/tank-battle/internal/core"
)

// Options configures a Sim.
type Options struct {
	// Rand supplies every random draw. When nil, a math/rand source seeded
	// with Seed is used.
	Rand core.Rand
	Seed int64
	// Logger receives progression events. Nil discards them.
	Logger *log.Logger
}

// Input is the per-tick input snapshot.
type Input struct {
	DX, DY float64 // Movement axes, each in [-1, 1]
	Fire   bool
}

// InputFromFrame converts a platform input frame into a tick input.
func InputFromFrame(f core.InputFrame) Input {
	dx, dy := f.Axis()
	return Input{DX: dx, DY: dy, Fire: f.Has(core.ActionFire)}
}

// Sim drives the World one fixed step at a time.
type Sim struct {
	World *World

	rng core.Rand
	log *log.Logger
}

// New creates a simulation with a fresh World at level 1.
func New(cfg config.TanksConfig, opts Options) *Sim {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(opts.Seed))
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Sim{
		World: NewWorld(cfg),
		rng:   rng,
		log:   logger,
	}
}

// Step advances the world by one tick.
//
// Order: player input, entity updates, spawning, collision resolution,
// level direction, dead-entity sweep. Outside PhasePlaying the world is
// left untouched and the report has Stepped == false.
//
// Step panics with an error wrapping ErrInvariant if the world is left
// inconsistent.
func (s *Sim) Step(in Input) TickReport {
	w := s.World
	rep := TickReport{Tick: w.Tick, Phase: w.Phase}
	if w.Phase != PhasePlaying {
		return rep
	}

	w.Tick++
	rep.Tick = w.Tick
	rep.Stepped = true

	w.Player.Move(in.DX, in.DY)
	if in.Fire {
		if b := w.Player.Shoot(); b != nil {
			w.Bullets = append(w.Bullets, b)
		}
	}

	env := Env{Arena: w.Arena, Rand: s.rng, Tick: w.Tick}
	w.Player.Advance(env)
	for _, e := range w.Enemies {
		if b := e.Advance(env); b != nil {
			w.Bullets = append(w.Bullets, b)
		}
	}
	if w.Boss != nil {
		if b := w.Boss.Advance(env); b != nil {
			w.Bullets = append(w.Bullets, b)
		}
	}
	for _, b := range w.Bullets {
		b.Advance(w.Arena)
	}
	for _, p := range w.PowerUps {
		p.Advance(w.Arena)
	}

	Spawn(w, s.rng, &rep)
	ResolveCollisions(w, &rep)
	w.sweep()
	Direct(w, &rep)

	rep.Phase = w.Phase
	s.logEvents(rep)

	if err := w.Validate(); err != nil {
		panic(fmt.Errorf("engine: tick %d: %w", w.Tick, err))
	}
	return rep
}

// Start re-initializes the World at level 1, keeping the high score.
func (s *Sim) Start() {
	s.World.reset()
	s.log.Info("run started", "level", s.World.Level)
}

// Restart starts a new run. It is only valid in PhaseGameOver and reports
// whether it took effect.
func (s *Sim) Restart() bool {
	if s.World.Phase != PhaseGameOver {
		return false
	}
	s.Start()
	return true
}

// Acknowledge answers a pending level-cleared prompt. Continuing starts
// the next level and reports EventLevelStarted; declining moves to
// PhaseQuit. Outside PhaseVictory it does nothing and reports false.
// The world does not tick, so the report has Stepped == false.
func (s *Sim) Acknowledge(cont bool) (TickReport, bool) {
	w := s.World
	rep := TickReport{Tick: w.Tick, Phase: w.Phase}
	if w.Phase != PhaseVictory {
		return rep, false
	}

	if cont {
		advanceLevel(w, &rep)
	} else {
		w.Phase = PhaseQuit
		s.log.Info("player quit after clearing level", "level", w.Level, "score", w.Player.Score)
	}
	rep.Phase = w.Phase
	s.logEvents(rep)
	return rep, true
}

func (s *Sim) logEvents(rep TickReport) {
	w := s.World
	for _, e := range rep.Events {
		switch e.Kind {
		case EventEnemyKilled:
			s.log.Debug("enemy killed", "tick", rep.Tick, "points", e.Points, "killed", w.EnemiesKilled, "quota", w.MaxEnemies)
		case EventLifeLost:
			s.log.Debug("life lost", "tick", rep.Tick, "lives", w.Player.Lives)
		case EventLevelCleared:
			s.log.Info("level cleared", "level", e.Level, "score", w.Player.Score)
		case EventLevelStarted:
			s.log.Info("level started", "level", e.Level, "quota", w.MaxEnemies)
		case EventBossSpawned:
			s.log.Info("boss spawned", "health", w.Boss.Health)
		case EventBossDefeated:
			s.log.Info("boss defeated", "bonus", e.Points)
		case EventGameOver:
			s.log.Info("game over", "won", w.Won, "score", w.Player.Score, "high_score", w.HighScore, "tick", rep.Tick)
		}
	}
}
