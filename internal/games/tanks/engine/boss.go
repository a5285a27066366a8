package engine

import (
	"math"

	"github.com/vovakirdan/tank-battle/internal/config"
	"github.com/vovakirdan/tank-battle/internal/core"
)

// BossPhase is the state of the boss firing state machine.
type BossPhase int

const (
	// BossCooldown waits for the shot cooldown to run out.
	BossCooldown BossPhase = iota
	// BossRapidFire shoots every RapidFireInterval ticks until the
	// rapid-fire timer expires.
	BossRapidFire
)

// String returns the phase name.
func (p BossPhase) String() string {
	if p == BossRapidFire {
		return "RapidFire"
	}
	return "Cooldown"
}

// Boss is the single scripted tank of the final level.
type Boss struct {
	Body

	Phase          BossPhase
	RapidFireTimer int

	rapidDuration int
	rapidInterval int
	restCooldown  int
	amplitude     float64
	frequency     float64
	age           int // Ticks since spawn, drives the oscillation
}

var _ Tank = (*Boss)(nil)

// newBoss creates the boss flush with the arena's right edge, vertically centered.
func newBoss(cfg config.TanksConfig, arena core.Box) *Boss {
	size := cfg.Boss.Size
	return &Boss{
		Body: Body{
			Box: core.Box{
				X: arena.Right() - size,
				Y: arena.Y + (arena.H-size)/2,
				W: size,
				H: size,
			},
			Speed:     cfg.Boss.Speed,
			Health:    cfg.Boss.Health,
			MaxHealth: cfg.Boss.Health,
			Gun: Gun{
				BulletSize:  cfg.Bullet.Size,
				BulletSpeed: cfg.Bullet.Speed,
				Damage:      cfg.Bullet.Damage,
				Cooldown:    cfg.Boss.RapidFireInterval,
			},
			arena: arena,
		},
		Phase:         BossCooldown,
		rapidDuration: cfg.Boss.RapidFireDuration,
		rapidInterval: cfg.Boss.RapidFireInterval,
		restCooldown:  cfg.Boss.Cooldown,
		amplitude:     cfg.Boss.Amplitude,
		frequency:     cfg.Boss.Frequency,
	}
}

// Shoot fires one bullet while in RapidFire with the gun ready.
func (b *Boss) Shoot() *Bullet {
	if b.Cooldown != 0 || b.Phase != BossRapidFire {
		return nil
	}
	return b.fire(b.rapidInterval)
}

// Advance runs the firing state machine and the vertical oscillation.
//
//	Cooldown  --cooldown hits 0-->  RapidFire (timer = rapid_fire_duration)
//	RapidFire --timer hits 0----->  Cooldown  (cooldown = cooldown)
//
// While in RapidFire the boss fires whenever the cooldown is zero, which
// resets it to rapid_fire_interval.
func (b *Boss) Advance(Env) *Bullet {
	b.tickCooldown()

	if b.Phase == BossRapidFire {
		b.RapidFireTimer--
		if b.RapidFireTimer <= 0 {
			b.Phase = BossCooldown
			b.RapidFireTimer = 0
			b.Cooldown = b.restCooldown
		}
	}
	if b.Phase == BossCooldown && b.Cooldown == 0 {
		b.Phase = BossRapidFire
		b.RapidFireTimer = b.rapidDuration
	}

	var shot *Bullet
	if b.Phase == BossRapidFire {
		shot = b.Shoot()
	}

	b.age++
	dy := math.Sin(float64(b.age)*b.frequency) * b.amplitude
	b.Box = b.Box.Translate(core.Vec{Y: dy}).ClampInside(b.arena)

	return shot
}
