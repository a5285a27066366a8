package tanks

import (
	"math"

	"github.com/vovakirdan/tank-battle/internal/core"
	"github.com/vovakirdan/tank-battle/internal/games/tanks/engine"
)

// Autopilot tuning, in arena units.
const (
	dodgeRange     = 160.0 // How far ahead enemy bullets are considered threats
	dodgeMargin    = 6.0
	alignTolerance = 4.0
)

// Autopilot returns the input of a simple scripted player: it holds a
// position near the left of the arena, dodges incoming bullets, lines up
// with the nearest target ahead and fires when aligned. On a cleared level
// it always continues.
func Autopilot(v engine.View) core.InputFrame {
	f := core.NewInputFrame()
	switch v.Phase {
	case engine.PhaseVictory:
		f.Set(core.ActionConfirm)
		return f
	case engine.PhaseGameOver, engine.PhaseQuit:
		return f
	}

	player, ok := findPlayer(v)
	if !ok {
		return f
	}
	pc := player.Center()

	home := v.Arena.X + v.Arena.W/6
	switch {
	case pc.X > home+alignTolerance:
		f.Set(core.ActionLeft)
	case pc.X < home-alignTolerance:
		f.Set(core.ActionRight)
	}

	if threat, found := incomingBullet(v, player); found {
		up := threat.Center().Y > pc.Y
		if up && player.Y <= v.Arena.Y+1 {
			up = false
		} else if !up && player.Bottom() >= v.Arena.Bottom()-1 {
			up = true
		}
		if up {
			f.Set(core.ActionUp)
		} else {
			f.Set(core.ActionDown)
		}
		return f
	}

	target, found := nearestTarget(v, player)
	if !found {
		return f
	}
	dy := target.Center().Y - pc.Y
	switch {
	case dy > alignTolerance:
		f.Set(core.ActionDown)
	case dy < -alignTolerance:
		f.Set(core.ActionUp)
	}
	if math.Abs(dy) < target.H/2 {
		f.Set(core.ActionFire)
	}
	return f
}

func findPlayer(v engine.View) (core.Box, bool) {
	for _, e := range v.Entities {
		if e.Kind == engine.KindPlayer {
			return e.Box, true
		}
	}
	return core.Box{}, false
}

// incomingBullet returns the closest enemy bullet ahead of the player on a
// collision course.
func incomingBullet(v engine.View, player core.Box) (core.Box, bool) {
	var best core.Box
	found := false
	for _, e := range v.Entities {
		if e.Kind != engine.KindEnemyBullet {
			continue
		}
		b := e.Box
		ahead := b.X - player.Right()
		if b.Right() < player.X || ahead > dodgeRange {
			continue
		}
		if b.Bottom() < player.Y-dodgeMargin || b.Y > player.Bottom()+dodgeMargin {
			continue
		}
		if !found || b.X < best.X {
			best, found = b, true
		}
	}
	return best, found
}

// nearestTarget prefers the boss, then the closest enemy in front of the player.
func nearestTarget(v engine.View, player core.Box) (core.Box, bool) {
	var best core.Box
	found := false
	for _, e := range v.Entities {
		switch e.Kind {
		case engine.KindBoss:
			return e.Box, true
		case engine.KindEnemy:
			if e.Box.X < player.Right() {
				continue
			}
			if !found || e.Box.X < best.X {
				best, found = e.Box, true
			}
		}
	}
	return best, found
}
