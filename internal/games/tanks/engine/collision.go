package engine

import "fmt"

// ResolveCollisions applies one tick of collision rules, in order:
//
//	a. player bullets vs enemies: the first overlapping enemy dies, the
//	   bullet is spent, the kill scores and counts toward the level quota
//	b. player bullets vs boss: each hit costs the boss one bullet's damage;
//	   the boss dies the moment its health reaches zero
//	c. enemy bullets vs player: unless invincible, the bullet is spent and
//	   the player loses health; at zero a life is lost
//	d. player vs power-ups: each touched pickup is consumed and applied once
//
// Entities are only marked dead here; World.sweep removes them afterward.
// Resolution stops as soon as the run ends.
func ResolveCollisions(w *World, rep *TickReport) {
	player := w.Player

	for _, bl := range w.Bullets {
		if bl.dead || !bl.MovingRight {
			continue
		}

		for _, e := range w.Enemies {
			if e.dead || !bl.Box.Intersects(e.Box) {
				continue
			}
			e.dead = true
			bl.dead = true
			points := player.AddScore(w.cfg.Enemy.KillPoints)
			w.EnemiesKilled++
			w.TotalKills++
			rep.add(Event{Kind: EventEnemyKilled, Pos: e.Box.Center(), Points: points})
			break
		}
		if bl.dead {
			continue
		}

		if boss := w.Boss; boss != nil && !boss.dead && bl.Box.Intersects(boss.Box) {
			bl.dead = true
			rep.add(Event{Kind: EventBossHit, Pos: bl.Box.Center()})
			if boss.Damage(bl.Damage) {
				boss.dead = true
				points := player.AddScore(w.cfg.Boss.Bonus)
				rep.add(Event{Kind: EventBossDefeated, Pos: boss.Box.Center(), Points: points})
				w.finish(true)
				rep.add(Event{Kind: EventGameOver})
				return
			}
		}
	}

	for _, bl := range w.Bullets {
		if bl.dead || bl.MovingRight || player.Invincible || !bl.Box.Intersects(player.Box) {
			continue
		}
		bl.dead = true
		rep.add(Event{Kind: EventPlayerHit, Pos: bl.Box.Center()})
		if !player.Damage(bl.Damage) {
			continue
		}

		player.Lives--
		rep.add(Event{Kind: EventLifeLost, Pos: player.Box.Center()})
		if player.Lives <= 0 {
			player.Lives = 0
			w.finish(false)
			rep.add(Event{Kind: EventGameOver})
			return
		}
		player.Health = player.MaxHealth
	}

	for _, p := range w.PowerUps {
		if p.dead || !p.Box.Intersects(player.Box) {
			continue
		}
		p.dead = true
		applyPowerUp(w, p)
		rep.add(Event{Kind: EventPowerUpCollected, Pos: p.Box.Center(), PowerUp: p.Kind})
	}
}

// applyPowerUp applies a pickup's effect to the player.
func applyPowerUp(w *World, p *PowerUp) {
	player := w.Player
	cfg := w.cfg.PowerUps

	switch p.Kind {
	case PowerUpScoreMultiplier:
		player.Multiplier = cfg.Multiplier
		player.MultiplierTimer = p.Duration
	case PowerUpHealth:
		player.Heal(cfg.HealthAmount)
	case PowerUpInvincibility:
		player.Invincible = true
		player.InvincibleTimer = p.Duration
	case PowerUpAmmo:
		player.AddAmmo(cfg.AmmoAmount)
	default:
		panic(fmt.Errorf("%w: unknown power-up kind %d", ErrInvariant, p.Kind))
	}
}
