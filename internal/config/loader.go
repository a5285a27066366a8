package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned (wrapped) when a configuration fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// LoadTanks loads the tank battle configuration.
// Search order: customPath -> ~/.tankbattle/configs/tanks.yaml -> ./configs/tanks.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a partial file only overrides
// the keys it names. An explicit customPath that cannot be read, parsed or
// validated is an error; the implicit locations are skipped when broken.
func LoadTanks(customPath string) (TanksConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return TanksConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return TanksConfig{}, fmt.Errorf("failed to load config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("tanks.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/tanks.yaml"); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultTanksYAML)
	if err != nil {
		return DefaultTanksConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the default configuration and validates it.
func Parse(data []byte) (TanksConfig, error) {
	cfg := DefaultTanksConfig()
	levels := cfg.Levels
	cfg.Levels = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return TanksConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	// A file without a levels list keeps the default campaign.
	if cfg.Levels == nil {
		cfg.Levels = levels
	}
	if err := cfg.Validate(); err != nil {
		return TanksConfig{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration can drive a simulation.
func (c TanksConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(c.Arena.Width > 0 && c.Arena.Height > 0, "arena size must be positive")
	check(c.Player.Size > 0 && c.Player.Size <= c.Arena.Width && c.Player.Size <= c.Arena.Height,
		"player.size must fit the arena")
	check(c.Enemy.Size > 0 && c.Enemy.Size <= c.Arena.Height, "enemy.size must fit the arena")
	check(c.Boss.Size > 0 && c.Boss.Size <= c.Arena.Width && c.Boss.Size <= c.Arena.Height,
		"boss.size must fit the arena")
	check(c.Bullet.Size > 0, "bullet.size must be positive")
	check(c.PowerUps.Size > 0, "powerups.size must be positive")

	check(c.Player.Speed >= 0, "player.speed must not be negative")
	check(c.Player.MaxHealth > 0, "player.max_health must be positive")
	check(c.Player.Lives > 0, "player.lives must be positive")
	check(c.Player.Bullets >= 0 && c.Player.Bullets <= c.Player.MaxBullets,
		"player.bullets must be within [0, max_bullets]")
	check(c.Player.ShootCooldown >= 0, "player.shoot_cooldown must not be negative")

	check(c.Enemy.MaxHealth > 0, "enemy.max_health must be positive")
	check(c.Enemy.MaxAlive >= 0, "enemy.max_alive must not be negative")
	check(c.Enemy.ShootCooldown >= 0, "enemy.shoot_cooldown must not be negative")

	check(c.Boss.Health > 0, "boss.health must be positive")
	check(c.Boss.Speed >= 0, "boss.speed must not be negative")
	check(c.Boss.RapidFireDuration > 0, "boss.rapid_fire_duration must be positive")
	check(c.Boss.RapidFireInterval > 0, "boss.rapid_fire_interval must be positive")
	check(c.Boss.Cooldown >= 0, "boss.cooldown must not be negative")

	check(c.Bullet.Speed > 0, "bullet.speed must be positive")
	check(c.Bullet.Damage > 0, "bullet.damage must be positive")

	check(c.PowerUps.SpawnChance >= 0 && c.PowerUps.SpawnChance <= 1, "powerups.spawn_chance must be within [0, 1]")
	check(c.PowerUps.MinDuration >= 0 && c.PowerUps.MinDuration <= c.PowerUps.MaxDuration,
		"powerups.min_duration must be within [0, max_duration]")
	check(c.PowerUps.Multiplier >= 1, "powerups.multiplier must be at least 1")
	check(2*c.PowerUps.EdgeMargin < c.Arena.Width, "powerups.edge_margin leaves no room to spawn")

	check(len(c.Levels) > 0, "at least one level is required")
	for i, lvl := range c.Levels {
		check(lvl.EnemyCount > 0, "levels[%d].enemy_count must be positive", i)
		check(lvl.EnemySpeed >= 0, "levels[%d].enemy_speed must not be negative", i)
		check(lvl.EnemyShootChance >= 0 && lvl.EnemyShootChance <= 1,
			"levels[%d].enemy_shoot_chance must be within [0, 1]", i)
	}

	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tankbattle", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal leaves the config untouched.
func ApplyPreset(cfg *TanksConfig, preset DifficultyPreset) {
	var lives int
	var chanceScale, bossScale float64

	switch preset {
	case DifficultyEasy:
		lives, chanceScale, bossScale = 5, 0.5, 0.5
	case DifficultyHard:
		lives, chanceScale, bossScale = 2, 1.5, 1.5
	default:
		return
	}

	cfg.Player.Lives = lives
	cfg.Boss.Health = int(float64(cfg.Boss.Health) * bossScale)

	levels := make([]LevelConfig, len(cfg.Levels))
	for i, lvl := range cfg.Levels {
		lvl.EnemyShootChance = min(lvl.EnemyShootChance*chanceScale, 1)
		levels[i] = lvl
	}
	cfg.Levels = levels
}
