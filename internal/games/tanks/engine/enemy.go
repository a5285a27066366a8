package engine

import (
	"github.com/vovakirdan/tank-battle/internal/config"
	"github.com/vovakirdan/tank-battle/internal/core"
)

// Enemy is an autonomous tank drifting left across the arena.
type Enemy struct {
	Body

	ShootChance float64 // Probability of attempting a shot each tick
}

var _ Tank = (*Enemy)(nil)

// newEnemy creates an enemy with its left edge on the arena's right edge.
func newEnemy(cfg config.TanksConfig, lvl config.LevelConfig, arena core.Box, y float64) *Enemy {
	return &Enemy{
		Body: Body{
			Box:       core.Box{X: arena.Right(), Y: y, W: cfg.Enemy.Size, H: cfg.Enemy.Size},
			Speed:     lvl.EnemySpeed,
			Health:    cfg.Enemy.MaxHealth,
			MaxHealth: cfg.Enemy.MaxHealth,
			Gun: Gun{
				BulletSize:  cfg.Bullet.Size,
				BulletSpeed: cfg.Bullet.Speed,
				Damage:      cfg.Bullet.Damage,
				Cooldown:    cfg.Enemy.ShootCooldown,
			},
			arena: arena,
		},
		ShootChance: lvl.EnemyShootChance,
	}
}

// Shoot fires one bullet if the gun is ready. Enemies never run out of ammo.
func (e *Enemy) Shoot() *Bullet {
	if e.Cooldown != 0 {
		return nil
	}
	return e.fire(e.Gun.Cooldown)
}

// Advance moves the enemy left by its speed, wraps it back to the right edge
// at a fresh height once it has fully left the arena, and rolls for a shot.
func (e *Enemy) Advance(env Env) *Bullet {
	e.tickCooldown()

	e.Box.X -= e.Speed
	if e.Box.Right() < env.Arena.X {
		e.Box.X = env.Arena.Right()
		e.Box.Y = randomY(env.Rand, env.Arena, e.Box.H)
	}

	if env.Rand.Float64() < e.ShootChance {
		return e.Shoot()
	}
	return nil
}

// randomY picks a whole-unit top edge so that a box of height h fits the arena.
func randomY(rng core.Rand, arena core.Box, h float64) float64 {
	span := int(arena.H - h)
	if span <= 0 {
		return arena.Y
	}
	return arena.Y + float64(rng.Intn(span+1))
}
