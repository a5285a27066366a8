package engine

import "github.com/vovakirdan/tank-battle/internal/core"

// EntityKind classifies a drawable entity.
type EntityKind int

const (
	KindPlayer EntityKind = iota
	KindEnemy
	KindBoss
	KindPlayerBullet
	KindEnemyBullet
	KindPowerUp
)

// EntityView is one drawable entity.
type EntityView struct {
	Kind    EntityKind
	Box     core.Box
	Health  float64     // Health ratio for tanks, 0 otherwise
	PowerUp PowerUpKind // Only meaningful for KindPowerUp
}

// HUD holds the values shown around the arena.
type HUD struct {
	Score           int
	HighScore       int
	Lives           int
	Health          float64
	Bullets         int
	Level           string
	NextLevel       string
	Progress        float64 // Kill quota completion in [0, 1]
	Multiplier      int
	MultiplierTicks int
	InvincibleTicks int
	BossHealth      float64 // Zero when no boss is active
	BossPhase       string
}

// View is the per-tick output consumed by the presentation layer.
// It is a value copy and never aliases World state.
type View struct {
	Arena    core.Box
	Phase    Phase
	Won      bool
	Tick     uint64
	Entities []EntityView
	HUD      HUD
}

// View builds the presentation snapshot of the world.
// Entities are ordered power-ups, enemies, boss, player, bullets so later
// entries draw on top.
func (w *World) View() View {
	p := w.Player
	v := View{
		Arena: w.Arena,
		Phase: w.Phase,
		Won:   w.Won,
		Tick:  w.Tick,
		HUD: HUD{
			Score:      p.Score,
			HighScore:  max(w.HighScore, p.Score),
			Lives:      p.Lives,
			Health:     p.HealthRatio(),
			Bullets:    p.Bullets,
			Level:      w.Level.String(),
			NextLevel:  w.NextLevelLabel(),
			Progress:   w.Progress(),
			Multiplier: p.Multiplier,
		},
	}
	if p.Multiplier > 1 {
		v.HUD.MultiplierTicks = p.MultiplierTimer
	}
	if p.Invincible {
		v.HUD.InvincibleTicks = p.InvincibleTimer
	}

	v.Entities = make([]EntityView, 0, len(w.PowerUps)+len(w.Enemies)+len(w.Bullets)+2)
	for _, pu := range w.PowerUps {
		v.Entities = append(v.Entities, EntityView{Kind: KindPowerUp, Box: pu.Box, PowerUp: pu.Kind})
	}
	for _, e := range w.Enemies {
		v.Entities = append(v.Entities, EntityView{Kind: KindEnemy, Box: e.Box, Health: e.HealthRatio()})
	}
	if b := w.Boss; b != nil {
		v.Entities = append(v.Entities, EntityView{Kind: KindBoss, Box: b.Box, Health: b.HealthRatio()})
		v.HUD.BossHealth = b.HealthRatio()
		v.HUD.BossPhase = b.Phase.String()
	}
	v.Entities = append(v.Entities, EntityView{Kind: KindPlayer, Box: p.Box, Health: p.HealthRatio()})
	for _, b := range w.Bullets {
		kind := KindEnemyBullet
		if b.MovingRight {
			kind = KindPlayerBullet
		}
		v.Entities = append(v.Entities, EntityView{Kind: kind, Box: b.Box})
	}
	return v
}

// Count returns how many entities of the given kind are in the view.
func (v View) Count(kind EntityKind) int {
	n := 0
	for _, e := range v.Entities {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
