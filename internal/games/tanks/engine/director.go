package engine

// Direct runs the Level Director after collisions have been resolved.
//
// When the current numbered level's kill quota is met and no boss is
// active, a level before the last pauses in PhaseVictory until Acknowledge
// is called; the last numbered level spawns the boss and enters LevelBoss.
// Game over (lives exhausted or boss defeated) is entered by the collision
// resolver.
func Direct(w *World, rep *TickReport) {
	if w.Phase != PhasePlaying || w.Level == LevelBoss || w.BossActive() {
		return
	}
	if w.EnemiesKilled < w.MaxEnemies {
		return
	}

	if w.Level < w.FinalLevel() {
		w.Phase = PhaseVictory
		rep.add(Event{Kind: EventLevelCleared, Level: w.Level})
		return
	}

	w.Boss = newBoss(w.cfg, w.Arena)
	w.Level = LevelBoss
	rep.add(Event{Kind: EventBossSpawned, Pos: w.Boss.Box.Center(), Level: LevelBoss})
}

// advanceLevel moves from a cleared numbered level to the next one.
func advanceLevel(w *World, rep *TickReport) {
	w.startLevel(w.Level + 1)
	w.Phase = PhasePlaying
	rep.add(Event{Kind: EventLevelStarted, Level: w.Level})
}
