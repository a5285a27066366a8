package engine

import (
	"errors"
	"fmt"
)

// ErrInvariant marks a world state that no sequence of valid ticks can
// produce. It indicates a defect, never bad input.
var ErrInvariant = errors.New("invariant violated")

// Validate checks the world's consistency rules and returns every
// violation found, each wrapping ErrInvariant.
func (w *World) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvariant}, args...)...))
	}

	checkBody := func(name string, b *Body) {
		if b.Health < 0 || b.Health > b.MaxHealth {
			fail("%s health %d outside [0, %d]", name, b.Health, b.MaxHealth)
		}
		if b.Cooldown < 0 {
			fail("%s cooldown %d is negative", name, b.Cooldown)
		}
		if b.dead {
			fail("%s is dead but still in the world", name)
		}
	}

	p := w.Player
	if p == nil {
		return fmt.Errorf("%w: no player", ErrInvariant)
	}
	checkBody("player", &p.Body)
	if p.Lives < 0 {
		fail("player lives %d is negative", p.Lives)
	}
	if p.Health == 0 && w.Phase != PhaseGameOver {
		fail("player at zero health outside game over")
	}
	if p.Bullets < 0 || p.Bullets > p.MaxBullets {
		fail("player bullets %d outside [0, %d]", p.Bullets, p.MaxBullets)
	}
	if p.InvincibleTimer < 0 || p.MultiplierTimer < 0 {
		fail("player timers negative: invincible %d multiplier %d", p.InvincibleTimer, p.MultiplierTimer)
	}
	if p.Multiplier < 1 {
		fail("score multiplier %d below 1", p.Multiplier)
	}

	for i, e := range w.Enemies {
		checkBody(fmt.Sprintf("enemy %d", i), &e.Body)
		if e.Health == 0 {
			fail("enemy %d at zero health still alive", i)
		}
	}

	if b := w.Boss; b != nil {
		checkBody("boss", &b.Body)
		if b.Health == 0 {
			fail("boss at zero health still alive")
		}
		if b.RapidFireTimer < 0 {
			fail("boss rapid-fire timer %d is negative", b.RapidFireTimer)
		}
		if w.Level != LevelBoss {
			fail("boss present on level %s", w.Level)
		}
	}

	for i, b := range w.Bullets {
		if b.dead {
			fail("bullet %d is dead but still in the world", i)
		}
	}
	for i, pu := range w.PowerUps {
		if !pu.Kind.Valid() {
			fail("power-up %d has unknown kind %d", i, pu.Kind)
		}
		if pu.dead {
			fail("power-up %d is dead but still in the world", i)
		}
	}

	if w.EnemiesKilled < 0 {
		fail("kill counter %d is negative", w.EnemiesKilled)
	}
	if w.Level != LevelBoss && (w.Level < 1 || w.Level > w.FinalLevel()) {
		fail("level %d outside campaign", w.Level)
	}
	if w.HighScore < 0 || p.Score < 0 {
		fail("negative score: score %d high %d", p.Score, w.HighScore)
	}

	return errors.Join(errs...)
}
