package config

import (
	_ "embed"
)

//go:embed defaults/tanks.yaml
var defaultTanksYAML []byte

// DefaultTanksConfig returns the default tank battle configuration.
// It mirrors defaults/tanks.yaml and is used when the embedded file
// cannot be parsed.
func DefaultTanksConfig() TanksConfig {
	return TanksConfig{
		Arena: ArenaConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Size:          40,
			Speed:         3,
			MaxHealth:     100,
			Lives:         3,
			Bullets:       50,
			MaxBullets:    100,
			ShootCooldown: 30,
		},
		Enemy: EnemyConfig{
			Size:          40,
			MaxHealth:     100,
			MaxAlive:      5,
			ShootCooldown: 30,
			KillPoints:    100,
		},
		Boss: BossConfig{
			Size:              120,
			Health:            3000,
			Speed:             1,
			RapidFireDuration: 60,  // 1 second of rapid fire
			RapidFireInterval: 5,   // 12 shots per burst
			Cooldown:          120, // 2 seconds between bursts
			Bonus:             1000,
			Amplitude:         2,
			Frequency:         0.0333,
		},
		Bullet: BulletConfig{
			Size:   16,
			Speed:  5,
			Damage: 10,
		},
		PowerUps: PowerUpConfig{
			Size:         40,
			SpawnChance:  0.005,
			FallSpeed:    1,
			EdgeMargin:   50,
			MinDuration:  300, // 5 seconds
			MaxDuration:  600, // 10 seconds
			HealthAmount: 20,
			AmmoAmount:   20,
			Multiplier:   2,
		},
		Levels: []LevelConfig{
			{EnemyCount: 10, EnemySpeed: 1, EnemyShootChance: 0.01},
			{EnemyCount: 20, EnemySpeed: 1.5, EnemyShootChance: 0.02},
			{EnemyCount: 30, EnemySpeed: 2, EnemyShootChance: 0.03},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultTanksYAML
}
