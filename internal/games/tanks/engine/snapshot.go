package engine

import (
	"fmt"
	"hash/fnv"
)

// Snapshot captures the scalar game state for determinism testing.
type Snapshot struct {
	Tick          uint64
	Level         Level
	Phase         Phase
	Score         int
	HighScore     int
	Lives         int
	Health        int
	Bullets       int
	EnemiesKilled int
	TotalKills    int
	Enemies       int
	Projectiles   int
	PowerUps      int
	BossHealth    int // -1 when no boss is active
	Won           bool
}

// Snapshot returns the current snapshot.
func (w *World) Snapshot() Snapshot {
	bossHealth := -1
	if w.Boss != nil {
		bossHealth = w.Boss.Health
	}
	return Snapshot{
		Tick:          w.Tick,
		Level:         w.Level,
		Phase:         w.Phase,
		Score:         w.Player.Score,
		HighScore:     w.HighScore,
		Lives:         w.Player.Lives,
		Health:        w.Player.Health,
		Bullets:       w.Player.Bullets,
		EnemiesKilled: w.EnemiesKilled,
		TotalKills:    w.TotalKills,
		Enemies:       len(w.Enemies),
		Projectiles:   len(w.Bullets),
		PowerUps:      len(w.PowerUps),
		BossHealth:    bossHealth,
		Won:           w.Won,
	}
}

// Hash returns a hash of the full world state, positions included.
// Two runs with the same seed and inputs produce the same hash.
func (w *World) Hash() uint64 {
	h := fnv.New64a()

	fmt.Fprintf(h, "S:%+v;", w.Snapshot())

	p := w.Player
	fmt.Fprintf(h, "P:%v:%d:%d:%d:%d;", p.Box, p.Cooldown, p.InvincibleTimer, p.Multiplier, p.MultiplierTimer)

	fmt.Fprintf(h, "E:")
	for _, e := range w.Enemies {
		fmt.Fprintf(h, "%v:%d:%v,", e.Box, e.Cooldown, e.Speed)
	}

	if b := w.Boss; b != nil {
		fmt.Fprintf(h, ";B:%v:%d:%d:%d", b.Box, b.Phase, b.Cooldown, b.RapidFireTimer)
	}

	fmt.Fprintf(h, ";L:")
	for _, b := range w.Bullets {
		fmt.Fprintf(h, "%v:%v,", b.Box, b.MovingRight)
	}

	fmt.Fprintf(h, ";U:")
	for _, pu := range w.PowerUps {
		fmt.Fprintf(h, "%v:%d:%d,", pu.Box, pu.Kind, pu.Duration)
	}

	return h.Sum64()
}
