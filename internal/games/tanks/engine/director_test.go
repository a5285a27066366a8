package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tank-battle/internal/core"
)

func killOne(w *World) TickReport {
	placeEnemy(w, 400, 100)
	bulletAt(w, core.Vec{X: 420, Y: 120}, true)
	return resolve(w)
}

func TestLevelClearedAfterQuota(t *testing.T) {
	s := newTestSim(t, nil)
	w := s.World
	require.Equal(t, 10, w.MaxEnemies)

	for i := range 10 {
		require.Equal(t, PhasePlaying, w.Phase, "cleared early after %d kills", i)
		killOne(w)
	}

	assert.Equal(t, PhaseVictory, w.Phase)
	assert.Equal(t, 10, w.EnemiesKilled)
	assert.Equal(t, Level(1), w.Level)
	assert.Equal(t, 1.0, w.Progress())

	rep := s.Step(Input{Fire: true, DX: 1})
	assert.False(t, rep.Stepped, "the world does not tick while victory is pending")
	assert.False(t, s.Restart(), "restart is only valid after game over")

	ack, ok := s.Acknowledge(true)
	require.True(t, ok)
	assert.False(t, ack.Stepped)
	assert.Equal(t, PhasePlaying, ack.Phase)
	require.Equal(t, 1, ack.Count(EventLevelStarted))
	assert.Equal(t, Level(2), ack.Events[0].Level)
	assert.Equal(t, Level(2), w.Level)
	assert.Equal(t, 0, w.EnemiesKilled)
	assert.Equal(t, 20, w.MaxEnemies)
	assert.Equal(t, PhasePlaying, w.Phase)
	assert.Equal(t, 1000, w.Player.Score, "score carries over")

	_, ok = s.Acknowledge(true)
	assert.False(t, ok, "nothing to acknowledge")
	assert.Equal(t, Level(2), w.Level)
}

func TestLevelClearedThroughStep(t *testing.T) {
	s := newTestSim(t, nil)
	w := s.World
	w.EnemiesKilled = 9
	placeEnemy(w, 400, 100)
	bulletAt(w, core.Vec{X: 420, Y: 120}, true)

	rep := s.Step(Input{})

	assert.True(t, rep.Stepped)
	assert.Equal(t, PhaseVictory, rep.Phase)
	assert.Equal(t, 1, rep.Count(EventEnemyKilled))
	assert.Equal(t, 1, rep.Count(EventLevelCleared))
}

func TestDeclineContinueQuits(t *testing.T) {
	s := newTestSim(t, nil)
	s.World.Phase = PhaseVictory

	rep, ok := s.Acknowledge(false)
	require.True(t, ok)
	assert.Equal(t, PhaseQuit, s.World.Phase)
	assert.Equal(t, PhaseQuit, rep.Phase)
	assert.Empty(t, rep.Events)
	assert.False(t, s.Step(Input{}).Stepped)
	assert.False(t, s.Restart())
}

func TestFinalLevelSpawnsBoss(t *testing.T) {
	s := newTestSim(t, nil)
	w := s.World
	w.startLevel(3)
	assert.Equal(t, "Boss", w.NextLevelLabel())
	w.EnemiesKilled = 29

	rep := killOne(w)

	require.NotNil(t, w.Boss)
	assert.Equal(t, LevelBoss, w.Level)
	assert.Equal(t, PhasePlaying, w.Phase)
	assert.Equal(t, 1, rep.Count(EventBossSpawned))
	assert.Equal(t, 3000, w.Boss.Health)
	assert.True(t, w.Boss.Box.ContainedIn(w.Arena))
	assert.Equal(t, "Final", w.NextLevelLabel())
	assert.NoError(t, w.Validate())

	enemies := len(w.Enemies)
	for range 20 {
		s.Step(Input{})
	}
	assert.LessOrEqual(t, len(w.Enemies), enemies, "no enemies spawn in the boss level")
	assert.NotNil(t, w.Boss, "the boss is never replaced")
}

func TestDirectorWaitsForQuota(t *testing.T) {
	w := NewWorld(testConfig(t))
	w.EnemiesKilled = 9

	var rep TickReport
	Direct(w, &rep)

	assert.Equal(t, PhasePlaying, w.Phase)
	assert.Empty(t, rep.Events)
}
