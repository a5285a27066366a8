package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawnFillsUpToMaxAlive(t *testing.T) {
	w := NewWorld(testConfig(t))
	rng := &scriptedRand{ints: []int{0, 100, 560, 1000}}

	for range 10 {
		var rep TickReport
		Spawn(w, rng, &rep)
	}

	require.Len(t, w.Enemies, w.cfg.Enemy.MaxAlive)
	for _, e := range w.Enemies {
		assert.Equal(t, w.Arena.Right(), e.Box.X, "enemies enter at the right edge")
		assert.True(t, e.Box.Y >= 0 && e.Box.Bottom() <= w.Arena.Bottom(), "y=%v out of bounds", e.Box.Y)
		assert.Equal(t, w.LevelConfig().EnemySpeed, e.Speed)
		assert.Equal(t, w.LevelConfig().EnemyShootChance, e.ShootChance)
	}
	assert.Equal(t, 100.0, w.Enemies[1].Box.Y)
	assert.Equal(t, 560.0, w.Enemies[2].Box.Y)
	assert.Equal(t, 1000%561, int(w.Enemies[3].Box.Y))
	assert.Empty(t, w.PowerUps)
}

func TestSpawnUsesCurrentLevelSettings(t *testing.T) {
	w := NewWorld(testConfig(t))
	w.startLevel(3)

	var rep TickReport
	Spawn(w, &scriptedRand{}, &rep)

	require.Len(t, w.Enemies, 1)
	assert.Equal(t, 2.0, w.Enemies[0].Speed)
	assert.Equal(t, 0.03, w.Enemies[0].ShootChance)
	assert.Equal(t, 1, rep.Count(EventEnemySpawned))
}

func TestNoEnemySpawnsWhileBossActive(t *testing.T) {
	w := NewWorld(testConfig(t))
	w.Level = LevelBoss
	w.Boss = newBoss(w.cfg, w.Arena)

	var rep TickReport
	Spawn(w, &scriptedRand{}, &rep)

	assert.Empty(t, w.Enemies)
	assert.Zero(t, rep.Count(EventEnemySpawned))
}

func TestPowerUpSpawnChance(t *testing.T) {
	w := NewWorld(testConfig(t))
	for range w.cfg.Enemy.MaxAlive {
		placeEnemy(w, 400, 100)
	}

	var rep TickReport
	Spawn(w, &scriptedRand{floats: []float64{0.005}}, &rep)
	assert.Empty(t, w.PowerUps, "draw equal to the chance does not spawn")

	Spawn(w, &scriptedRand{floats: []float64{0.004}, ints: []int{0, 1, 0}}, &rep)
	require.Len(t, w.PowerUps, 1)
	p := w.PowerUps[0]
	assert.Equal(t, PowerUpHealth, p.Kind)
	assert.Equal(t, 300, p.Duration)
	assert.Equal(t, w.cfg.PowerUps.EdgeMargin, p.Box.Center().X)
	assert.Equal(t, 1, rep.Count(EventPowerUpSpawned))
	assert.Len(t, w.Enemies, w.cfg.Enemy.MaxAlive)

	// Highest duration draw lands exactly on max_duration
	span := w.cfg.PowerUps.MaxDuration - w.cfg.PowerUps.MinDuration
	Spawn(w, &scriptedRand{floats: []float64{0}, ints: []int{0, 3, span}}, &rep)
	require.Len(t, w.PowerUps, 2)
	top := w.PowerUps[1]
	assert.Equal(t, PowerUpAmmo, top.Kind)
	assert.Equal(t, 600, top.Duration)
	assert.Equal(t, w.cfg.PowerUps.MaxDuration, top.Duration)
}
