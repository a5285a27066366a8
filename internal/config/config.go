// Package config provides YAML-based game configuration loading and
// difficulty presets for the tank battle.
package config

// TanksConfig contains all tunable parameters of the tank battle.
// Lengths are in arena units, durations in ticks (60 ticks = 1 second).
type TanksConfig struct {
	Arena    ArenaConfig   `yaml:"arena"`
	Player   PlayerConfig  `yaml:"player"`
	Enemy    EnemyConfig   `yaml:"enemy"`
	Boss     BossConfig    `yaml:"boss"`
	Bullet   BulletConfig  `yaml:"bullet"`
	PowerUps PowerUpConfig `yaml:"powerups"`
	Levels   []LevelConfig `yaml:"levels"`
}

// ArenaConfig defines the play area.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player tank.
type PlayerConfig struct {
	Size          float64 `yaml:"size"`
	Speed         float64 `yaml:"speed"`
	MaxHealth     int     `yaml:"max_health"`
	Lives         int     `yaml:"lives"`
	Bullets       int     `yaml:"bullets"`
	MaxBullets    int     `yaml:"max_bullets"`
	ShootCooldown int     `yaml:"shoot_cooldown"`
}

// EnemyConfig defines parameters shared by all enemy tanks.
// Speed and shoot chance come from the current level.
type EnemyConfig struct {
	Size          float64 `yaml:"size"`
	MaxHealth     int     `yaml:"max_health"`
	MaxAlive      int     `yaml:"max_alive"`
	ShootCooldown int     `yaml:"shoot_cooldown"`
	KillPoints    int     `yaml:"kill_points"`
}

// BossConfig defines the final boss and its firing pattern.
type BossConfig struct {
	Size              float64 `yaml:"size"`
	Health            int     `yaml:"health"`
	Speed             float64 `yaml:"speed"` // Units per step for scripted moves
	RapidFireDuration int     `yaml:"rapid_fire_duration"`
	RapidFireInterval int     `yaml:"rapid_fire_interval"`
	Cooldown          int     `yaml:"cooldown"`
	Bonus             int     `yaml:"bonus"`
	Amplitude         float64 `yaml:"oscillation_amplitude"` // Max vertical step per tick
	Frequency         float64 `yaml:"oscillation_frequency"` // Radians per tick
}

// BulletConfig defines projectiles.
type BulletConfig struct {
	Size   float64 `yaml:"size"`
	Speed  float64 `yaml:"speed"`
	Damage int     `yaml:"damage"`
}

// PowerUpConfig defines falling pickups.
type PowerUpConfig struct {
	Size         float64 `yaml:"size"`
	SpawnChance  float64 `yaml:"spawn_chance"`
	FallSpeed    float64 `yaml:"fall_speed"`
	EdgeMargin   float64 `yaml:"edge_margin"` // Horizontal spawn margin from each side
	MinDuration  int     `yaml:"min_duration"`
	MaxDuration  int     `yaml:"max_duration"`
	HealthAmount int     `yaml:"health_amount"`
	AmmoAmount   int     `yaml:"ammo_amount"`
	Multiplier   int     `yaml:"multiplier"`
}

// LevelConfig defines one numbered level: its kill quota and how
// newly spawned enemies behave.
type LevelConfig struct {
	EnemyCount       int     `yaml:"enemy_count"`
	EnemySpeed       float64 `yaml:"enemy_speed"`
	EnemyShootChance float64 `yaml:"enemy_shoot_chance"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI string to a preset. Unknown or empty strings
// map to DifficultyNormal with ok=false.
func ParsePreset(s string) (preset DifficultyPreset, ok bool) {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), true
	default:
		return DifficultyNormal, false
	}
}
