package engine

import "github.com/vovakirdan/tank-battle/internal/core"

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventEnemySpawned EventKind = iota
	EventPowerUpSpawned
	EventEnemyKilled
	EventBossHit
	EventBossDefeated
	EventPlayerHit
	EventLifeLost
	EventPowerUpCollected
	EventLevelCleared
	EventLevelStarted
	EventBossSpawned
	EventGameOver
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventEnemySpawned:
		return "enemy_spawned"
	case EventPowerUpSpawned:
		return "powerup_spawned"
	case EventEnemyKilled:
		return "enemy_killed"
	case EventBossHit:
		return "boss_hit"
	case EventBossDefeated:
		return "boss_defeated"
	case EventPlayerHit:
		return "player_hit"
	case EventLifeLost:
		return "life_lost"
	case EventPowerUpCollected:
		return "powerup_collected"
	case EventLevelCleared:
		return "level_cleared"
	case EventLevelStarted:
		return "level_started"
	case EventBossSpawned:
		return "boss_spawned"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event records one occurrence. Fields that do not apply are zero.
type Event struct {
	Kind    EventKind
	Pos     core.Vec    // Where it happened
	Points  int         // Score awarded
	PowerUp PowerUpKind // Pickup kind for spawn/collect events
	Level   Level       // Level for level events
}

// TickReport summarizes one Sim.Step call.
type TickReport struct {
	Tick    uint64
	Phase   Phase // Phase after the tick
	Events  []Event
	Stepped bool // False when the world was not in PhasePlaying
}

func (r *TickReport) add(e Event) {
	r.Events = append(r.Events, e)
}

// Count returns how many events of the given kind were recorded.
func (r TickReport) Count(kind EventKind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
