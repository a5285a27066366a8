package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tank-battle/internal/config"
	"github.com/vovakirdan/tank-battle/internal/core"
)

// scriptedRand replays fixed draws. Once a queue is exhausted it returns
// the fallback: 0.99 for Float64 (no shots, no pickups) and 0 for Intn.
type scriptedRand struct {
	floats []float64
	ints   []int
}

var _ core.Rand = (*scriptedRand)(nil)

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.99
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func testConfig(t *testing.T) config.TanksConfig {
	t.Helper()
	cfg := config.DefaultTanksConfig()
	require.NoError(t, cfg.Validate())
	return cfg
}

func newTestSim(t *testing.T, rng *scriptedRand) *Sim {
	t.Helper()
	if rng == nil {
		rng = &scriptedRand{}
	}
	return New(testConfig(t), Options{Rand: rng})
}

// placeEnemy adds an enemy with its top-left corner at (x, y).
func placeEnemy(w *World, x, y float64) *Enemy {
	e := newEnemy(w.cfg, w.LevelConfig(), w.Arena, y)
	e.Box.X = x
	w.Enemies = append(w.Enemies, e)
	return e
}

// bulletAt adds a bullet centered on c.
func bulletAt(w *World, c core.Vec, movingRight bool) *Bullet {
	b := &Bullet{
		Box:         core.BoxAt(c, w.cfg.Bullet.Size, w.cfg.Bullet.Size),
		Speed:       w.cfg.Bullet.Speed,
		Damage:      w.cfg.Bullet.Damage,
		MovingRight: movingRight,
	}
	w.Bullets = append(w.Bullets, b)
	return b
}

// resolve runs the post-update half of a tick.
func resolve(w *World) TickReport {
	var rep TickReport
	ResolveCollisions(w, &rep)
	w.sweep()
	Direct(w, &rep)
	return rep
}
