// Package engine implements the tank battle simulation: entity behavior,
// spawning, collision resolution and the level/boss state machine.
//
// The engine is pure and deterministic. All randomness comes from the
// core.Rand passed in, all timing is counted in ticks, and nothing here
// touches the terminal. One call to Sim.Step advances the whole World
// by exactly one tick.
package engine

import (
	"github.com/vovakirdan/tank-battle/internal/core"
)

// Gun describes the bullets a tank fires and its default reload time.
type Gun struct {
	BulletSize  float64
	BulletSpeed float64
	Damage      int
	Cooldown    int  // Ticks between shots
	FiresRight  bool // Player guns fire toward increasing x
}

// Body is the state shared by every tank variant.
type Body struct {
	Box       core.Box
	Speed     float64
	Health    int
	MaxHealth int
	Cooldown  int // Ticks until the next shot is allowed
	Gun       Gun

	arena core.Box
	dead  bool
}

// Bounds returns the tank's bounding box.
func (b *Body) Bounds() core.Box {
	return b.Box
}

// HealthRatio returns health as a fraction of max health, for health bars.
func (b *Body) HealthRatio() float64 {
	if b.MaxHealth <= 0 {
		return 0
	}
	return float64(b.Health) / float64(b.MaxHealth)
}

// Move displaces the tank by (dx, dy) scaled by its speed. The result is
// clamped so the tank stays fully inside the arena.
func (b *Body) Move(dx, dy float64) {
	dx = core.ClampF(dx, -1, 1)
	dy = core.ClampF(dy, -1, 1)
	b.Box = b.Box.Translate(core.Vec{X: dx * b.Speed, Y: dy * b.Speed}).ClampInside(b.arena)
}

// Damage subtracts n from health, never going below zero.
// Reports whether health reached zero.
func (b *Body) Damage(n int) bool {
	b.Health = max(b.Health-n, 0)
	return b.Health == 0
}

// tickCooldown decrements the shot cooldown toward zero.
func (b *Body) tickCooldown() {
	if b.Cooldown > 0 {
		b.Cooldown--
	}
}

// fire creates a bullet from the tank's center and starts the cooldown.
func (b *Body) fire(cooldown int) *Bullet {
	b.Cooldown = cooldown
	return &Bullet{
		Box:         core.BoxAt(b.Box.Center(), b.Gun.BulletSize, b.Gun.BulletSize),
		Speed:       b.Gun.BulletSpeed,
		Damage:      b.Gun.Damage,
		MovingRight: b.Gun.FiresRight,
	}
}

// Env is the read-only context a tank needs to advance one tick.
type Env struct {
	Arena core.Box
	Rand  core.Rand
	Tick  uint64
}

// Tank is the capability set shared by the player, enemies and the boss.
type Tank interface {
	Bounds() core.Box
	HealthRatio() float64
	Move(dx, dy float64)
	// Shoot returns a new bullet, or nil when the tank may not fire.
	Shoot() *Bullet
	// Advance runs the tank's per-tick behavior. It may return a bullet
	// fired as part of that behavior.
	Advance(env Env) *Bullet

	body() *Body
}

func (b *Body) body() *Body { return b }

// Bullet is a projectile. MovingRight identifies the owner: true for the
// player, false for enemies and the boss.
type Bullet struct {
	Box         core.Box
	Speed       float64
	Damage      int
	MovingRight bool

	dead bool
}

// Advance moves the bullet horizontally and marks it dead once it has
// fully left the arena.
func (bl *Bullet) Advance(arena core.Box) {
	if bl.MovingRight {
		bl.Box.X += bl.Speed
	} else {
		bl.Box.X -= bl.Speed
	}
	if bl.Box.Right() < arena.X || bl.Box.X > arena.Right() {
		bl.dead = true
	}
}

// PowerUpKind identifies a pickup's effect.
type PowerUpKind int

const (
	PowerUpScoreMultiplier PowerUpKind = iota // Temporary score multiplier
	PowerUpHealth                             // Instant heal
	PowerUpInvincibility                      // Temporary immunity to bullets
	PowerUpAmmo                               // Extra bullets
	powerUpKindCount                          // Sentinel for counting kinds
)

// Valid reports whether k is a known kind.
func (k PowerUpKind) Valid() bool {
	return k >= 0 && k < powerUpKindCount
}

// String returns the name of the pickup kind.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpScoreMultiplier:
		return "x2"
	case PowerUpHealth:
		return "Health"
	case PowerUpInvincibility:
		return "Shield"
	case PowerUpAmmo:
		return "Ammo"
	default:
		return "?"
	}
}

// PowerUp is a falling pickup.
type PowerUp struct {
	Box       core.Box
	Kind      PowerUpKind
	Duration  int // Effect length in ticks for timed kinds
	FallSpeed float64

	dead bool
}

// Advance moves the pickup down and marks it dead once it has fallen
// past the bottom of the arena.
func (p *PowerUp) Advance(arena core.Box) {
	p.Box.Y += p.FallSpeed
	if p.Box.Y > arena.Bottom() {
		p.dead = true
	}
}
