package engine

import (
	"github.com/vovakirdan/tank-battle/internal/config"
	"github.com/vovakirdan/tank-battle/internal/core"
)

// Spawn runs the population policy for one tick.
//
// While no boss is active and fewer than enemy.max_alive enemies are alive,
// one enemy is added at the right edge, configured for the current level.
// Independently, a power-up appears along the top edge with probability
// powerups.spawn_chance.
func Spawn(w *World, rng core.Rand, rep *TickReport) {
	cfg := w.cfg

	if !w.BossActive() && w.Level != LevelBoss && len(w.Enemies) < cfg.Enemy.MaxAlive {
		y := randomY(rng, w.Arena, cfg.Enemy.Size)
		e := newEnemy(cfg, w.LevelConfig(), w.Arena, y)
		w.Enemies = append(w.Enemies, e)
		rep.add(Event{Kind: EventEnemySpawned, Pos: e.Box.Center()})
	}

	if rng.Float64() < cfg.PowerUps.SpawnChance {
		p := newPowerUp(cfg.PowerUps, w.Arena, rng)
		w.PowerUps = append(w.PowerUps, p)
		rep.add(Event{Kind: EventPowerUpSpawned, Pos: p.Box.Center(), PowerUp: p.Kind})
	}
}

// newPowerUp creates a pickup centered on the top edge at a random x,
// with a uniformly chosen kind and a random duration.
func newPowerUp(cfg config.PowerUpConfig, arena core.Box, rng core.Rand) *PowerUp {
	lo := int(arena.X + cfg.EdgeMargin)
	hi := int(arena.Right() - cfg.EdgeMargin)
	x := float64(lo + rng.Intn(hi-lo+1))

	kind := PowerUpKind(rng.Intn(int(powerUpKindCount)))
	duration := cfg.MinDuration + rng.Intn(cfg.MaxDuration-cfg.MinDuration+1)

	return &PowerUp{
		Box:       core.BoxAt(core.Vec{X: x, Y: arena.Y}, cfg.Size, cfg.Size),
		Kind:      kind,
		Duration:  duration,
		FallSpeed: cfg.FallSpeed,
	}
}
