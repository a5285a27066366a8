package engine

import (
	"github.com/vovakirdan/tank-battle/internal/config"
	"github.com/vovakirdan/tank-battle/internal/core"
)

// Player is the user-controlled tank.
type Player struct {
	Body

	Score           int
	Lives           int
	Bullets         int
	MaxBullets      int
	Invincible      bool
	InvincibleTimer int
	Multiplier      int
	MultiplierTimer int
}

var _ Tank = (*Player)(nil)

// newPlayer creates the player at a quarter of the arena width, vertically centered.
func newPlayer(cfg config.TanksConfig, arena core.Box) *Player {
	center := core.Vec{X: arena.X + arena.W/4, Y: arena.Y + arena.H/2}
	return &Player{
		Body: Body{
			Box:       core.BoxAt(center, cfg.Player.Size, cfg.Player.Size).ClampInside(arena),
			Speed:     cfg.Player.Speed,
			Health:    cfg.Player.MaxHealth,
			MaxHealth: cfg.Player.MaxHealth,
			Gun: Gun{
				BulletSize:  cfg.Bullet.Size,
				BulletSpeed: cfg.Bullet.Speed,
				Damage:      cfg.Bullet.Damage,
				Cooldown:    cfg.Player.ShootCooldown,
				FiresRight:  true,
			},
			arena: arena,
		},
		Lives:      cfg.Player.Lives,
		Bullets:    cfg.Player.Bullets,
		MaxBullets: cfg.Player.MaxBullets,
		Multiplier: 1,
	}
}

// Shoot fires one bullet if the gun is ready and ammo remains.
func (p *Player) Shoot() *Bullet {
	if p.Cooldown != 0 || p.Bullets <= 0 {
		return nil
	}
	p.Bullets--
	return p.fire(p.Gun.Cooldown)
}

// Advance counts down the shot cooldown and the power-up timers.
func (p *Player) Advance(Env) *Bullet {
	p.tickCooldown()

	if p.Invincible {
		p.InvincibleTimer--
		if p.InvincibleTimer <= 0 {
			p.Invincible = false
			p.InvincibleTimer = 0
		}
	}
	if p.Multiplier > 1 {
		p.MultiplierTimer--
		if p.MultiplierTimer <= 0 {
			p.Multiplier = 1
			p.MultiplierTimer = 0
		}
	}
	return nil
}

// AddScore credits points scaled by the active multiplier and returns the
// amount actually added.
func (p *Player) AddScore(base int) int {
	points := base * p.Multiplier
	p.Score += points
	return points
}

// Heal restores up to n health, capped at max health.
func (p *Player) Heal(n int) {
	p.Health = min(p.Health+n, p.MaxHealth)
}

// AddAmmo adds up to n bullets, capped at MaxBullets.
func (p *Player) AddAmmo(n int) {
	p.Bullets = min(p.Bullets+n, p.MaxBullets)
}
