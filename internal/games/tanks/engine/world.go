package engine

import (
	"strconv"

	"github.com/vovakirdan/tank-battle/internal/config"
	"github.com/vovakirdan/tank-battle/internal/core"
)

// Level is the current stage: 1..N for numbered levels, or LevelBoss.
type Level int

// LevelBoss is the final stage featuring the boss.
const LevelBoss Level = -1

// String returns "1", "2", ... or "Boss".
func (l Level) String() string {
	if l == LevelBoss {
		return "Boss"
	}
	return strconv.Itoa(int(l))
}

// Phase is the Level Director state.
type Phase int

const (
	PhasePlaying  Phase = iota // Normal gameplay
	PhaseVictory               // Level cleared, waiting for acknowledgment
	PhaseGameOver              // Run ended; only Restart is accepted
	PhaseQuit                  // Player declined to continue; terminal
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseVictory:
		return "victory"
	case PhaseGameOver:
		return "gameover"
	case PhaseQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// World owns every live entity and the progression counters.
// It is only mutated inside Sim.Step and the lifecycle commands.
type World struct {
	Arena    core.Box
	Player   *Player
	Enemies  []*Enemy
	Boss     *Boss
	Bullets  []*Bullet
	PowerUps []*PowerUp

	Level         Level
	Phase         Phase
	EnemiesKilled int // Kills by player bullets in the current level
	MaxEnemies    int // Kill quota of the current level
	HighScore     int
	Won           bool // Boss defeated; set together with PhaseGameOver

	Tick       uint64 // Ticks simulated since the last Start/Restart
	TotalKills int    // Kills across all levels of this run

	cfg config.TanksConfig
}

// NewWorld creates a fresh world at level 1.
func NewWorld(cfg config.TanksConfig) *World {
	w := &World{cfg: cfg}
	w.reset()
	return w
}

// reset re-initializes everything except the high score.
func (w *World) reset() {
	w.Arena = core.Box{W: w.cfg.Arena.Width, H: w.cfg.Arena.Height}
	w.Player = newPlayer(w.cfg, w.Arena)
	w.Enemies = nil
	w.Boss = nil
	w.Bullets = nil
	w.PowerUps = nil
	w.Phase = PhasePlaying
	w.Won = false
	w.Tick = 0
	w.TotalKills = 0
	w.startLevel(1)
}

// startLevel resets the per-level counters for a numbered level.
func (w *World) startLevel(l Level) {
	w.Level = l
	w.EnemiesKilled = 0
	w.MaxEnemies = w.cfg.Levels[l-1].EnemyCount
}

// Config returns the configuration the world was built from.
func (w *World) Config() config.TanksConfig {
	return w.cfg
}

// LevelConfig returns the settings of the current numbered level.
// In the boss level it returns the last numbered level's settings.
func (w *World) LevelConfig() config.LevelConfig {
	if w.Level == LevelBoss {
		return w.cfg.Levels[len(w.cfg.Levels)-1]
	}
	return w.cfg.Levels[w.Level-1]
}

// FinalLevel returns the number of the last numbered level.
func (w *World) FinalLevel() Level {
	return Level(len(w.cfg.Levels))
}

// NextLevelLabel returns the label of the stage after the current one.
func (w *World) NextLevelLabel() string {
	switch {
	case w.Level == LevelBoss:
		return "Final"
	case w.Level >= w.FinalLevel():
		return LevelBoss.String()
	default:
		return (w.Level + 1).String()
	}
}

// BossActive reports whether a live boss is present.
func (w *World) BossActive() bool {
	return w.Boss != nil
}

// Tanks returns every live tank, player first.
func (w *World) Tanks() []Tank {
	tanks := make([]Tank, 0, len(w.Enemies)+2)
	tanks = append(tanks, w.Player)
	for _, e := range w.Enemies {
		tanks = append(tanks, e)
	}
	if w.Boss != nil {
		tanks = append(tanks, w.Boss)
	}
	return tanks
}

// Progress returns the kill quota completion in [0, 1].
func (w *World) Progress() float64 {
	if w.MaxEnemies <= 0 {
		return 1
	}
	return core.ClampF(float64(w.EnemiesKilled)/float64(w.MaxEnemies), 0, 1)
}

// finish ends the run and records the high score.
func (w *World) finish(won bool) {
	w.Phase = PhaseGameOver
	w.Won = won
	w.HighScore = max(w.HighScore, w.Player.Score)
}

// sweep removes every entity marked dead during the tick.
func (w *World) sweep() {
	w.Enemies = compact(w.Enemies, func(e *Enemy) bool { return !e.dead })
	w.Bullets = compact(w.Bullets, func(b *Bullet) bool { return !b.dead })
	w.PowerUps = compact(w.PowerUps, func(p *PowerUp) bool { return !p.dead })
	if w.Boss != nil && w.Boss.dead {
		w.Boss = nil
	}
}

// compact filters s in place, keeping elements for which keep returns true.
func compact[T any](s []T, keep func(T) bool) []T {
	out := s[:0]
	for _, v := range s {
		if keep(v) {
			out = append(out, v)
		}
	}
	clear(s[len(out):])
	return out
}
