package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadDoughfall loads the game configuration.
// Search order: customPath -> ~/.doughfall/configs/doughfall.yaml ->
// ./configs/doughfall.yaml -> embedded default -> hardcoded default.
func LoadDoughfall(customPath string) (DoughfallConfig, error) {
	var cfg DoughfallConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("doughfall.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/doughfall.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultDoughfallYAML, &cfg); err != nil {
		return DefaultDoughfallConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".doughfall", "configs", filename)
}

// ApplyDoughfallPreset adjusts the config for a named difficulty preset.
// Normal leaves the defaults untouched. Fixed flattens every scaling
// exponent to 1.0 so stages never get harder.
func ApplyDoughfallPreset(cfg *DoughfallConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.MaxHealth = 75
		cfg.Scaling.EnemySpeed = 1.15
		cfg.Scaling.EnemyHealth = 1.15
		cfg.Scaling.BulletSpeed = 1.15
		cfg.Scaling.SpawnRate = 0.85
		cfg.Scaling.BossHealth = 1.20
		cfg.Scaling.EnemyCount = 1.25

	case DifficultyHard:
		cfg.Player.MaxHealth = 40
		cfg.Scaling.EnemySpeed = 1.30
		cfg.Scaling.EnemyHealth = 1.35
		cfg.Scaling.BulletSpeed = 1.30
		cfg.Scaling.SpawnRate = 0.75
		cfg.Scaling.BossHealth = 1.40
		cfg.Scaling.EnemyCount = 1.45

	case DifficultyFixed:
		cfg.Scaling.EnemySpeed = 1.0
		cfg.Scaling.EnemyHealth = 1.0
		cfg.Scaling.BulletSpeed = 1.0
		cfg.Scaling.SpawnRate = 1.0
		cfg.Scaling.BossHealth = 1.0
		cfg.Scaling.WaveScaling = 1.0
		cfg.Scaling.EnemyCount = 1.0
	}
}
