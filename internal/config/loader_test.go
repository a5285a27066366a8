package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(DefaultYAML()) failed: %v", err)
	}

	def := DefaultTanksConfig()
	if cfg.Arena != def.Arena || cfg.Player != def.Player || cfg.Enemy != def.Enemy ||
		cfg.Boss != def.Boss || cfg.Bullet != def.Bullet || cfg.PowerUps != def.PowerUps {
		t.Errorf("embedded YAML differs from DefaultTanksConfig:\n yaml=%+v\n code=%+v", cfg, def)
	}
	if len(cfg.Levels) != len(def.Levels) {
		t.Fatalf("levels = %d, expected %d", len(cfg.Levels), len(def.Levels))
	}
	for i := range cfg.Levels {
		if cfg.Levels[i] != def.Levels[i] {
			t.Errorf("levels[%d] = %+v, expected %+v", i, cfg.Levels[i], def.Levels[i])
		}
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("player:\n  lives: 7\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if cfg.Player.Lives != 7 {
		t.Errorf("Player.Lives = %d, expected 7", cfg.Player.Lives)
	}
	if cfg.Player.MaxHealth != 100 {
		t.Errorf("unspecified keys should keep defaults, MaxHealth = %d", cfg.Player.MaxHealth)
	}
	if len(cfg.Levels) != 3 {
		t.Errorf("missing levels list should keep default campaign, got %d levels", len(cfg.Levels))
	}
}

func TestParseReplacesLevels(t *testing.T) {
	data := []byte(`
levels:
  - enemy_count: 2
    enemy_speed: 4
    enemy_shoot_chance: 0.5
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if len(cfg.Levels) != 1 || cfg.Levels[0].EnemyCount != 2 {
		t.Errorf("Levels = %+v, expected single level with count 2", cfg.Levels)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TanksConfig)
	}{
		{"no levels", func(c *TanksConfig) { c.Levels = nil }},
		{"shoot chance above one", func(c *TanksConfig) { c.Levels[0].EnemyShootChance = 1.5 }},
		{"zero quota", func(c *TanksConfig) { c.Levels[1].EnemyCount = 0 }},
		{"durations inverted", func(c *TanksConfig) { c.PowerUps.MinDuration = 700 }},
		{"boss bigger than arena", func(c *TanksConfig) { c.Boss.Size = 900 }},
		{"ammo above cap", func(c *TanksConfig) { c.Player.Bullets = c.Player.MaxBullets + 1 }},
		{"zero lives", func(c *TanksConfig) { c.Player.Lives = 0 }},
		{"negative boss speed", func(c *TanksConfig) { c.Boss.Speed = -1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultTanksConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error should wrap ErrInvalidConfig, got %v", err)
			}
		})
	}

	if err := DefaultTanksConfig().Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoadTanksCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tanks.yaml")
	if err := os.WriteFile(path, []byte("boss:\n  health: 500\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTanks(path)
	if err != nil {
		t.Fatalf("LoadTanks() failed: %v", err)
	}
	if cfg.Boss.Health != 500 {
		t.Errorf("Boss.Health = %d, expected 500", cfg.Boss.Health)
	}

	if _, err := LoadTanks(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadTanks() with a missing custom path should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("levels: []\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTanks(bad); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadTanks() with empty levels should be invalid, got %v", err)
	}
}

func TestApplyPreset(t *testing.T) {
	easy := DefaultTanksConfig()
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Player.Lives != 5 {
		t.Errorf("easy lives = %d, expected 5", easy.Player.Lives)
	}
	if easy.Levels[0].EnemyShootChance != 0.005 {
		t.Errorf("easy shoot chance = %v, expected 0.005", easy.Levels[0].EnemyShootChance)
	}

	hard := DefaultTanksConfig()
	ApplyPreset(&hard, DifficultyHard)
	if hard.Player.Lives != 2 || hard.Boss.Health != 4500 {
		t.Errorf("hard preset = lives %d boss %d", hard.Player.Lives, hard.Boss.Health)
	}

	normal := DefaultTanksConfig()
	ApplyPreset(&normal, DifficultyNormal)
	if normal.Player.Lives != 3 || normal.Boss.Health != 3000 {
		t.Error("normal preset should not change the config")
	}

	// Presets must not alias the caller's level slice.
	base := DefaultTanksConfig()
	derived := base
	ApplyPreset(&derived, DifficultyHard)
	if base.Levels[0].EnemyShootChance != 0.01 {
		t.Error("ApplyPreset mutated the original levels slice")
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset("hard"); !ok || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, ok)
	}
	if p, ok := ParsePreset(""); ok || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, ok)
	}
}
