package config

import (
	_ "embed"
)

//go:embed defaults/doughfall.yaml
var defaultDoughfallYAML []byte

// DefaultDoughfallConfig returns the hardcoded default configuration.
// Used as the final fallback when no YAML source can be read.
func DefaultDoughfallConfig() DoughfallConfig {
	return DoughfallConfig{
		Field: FieldConfig{
			Width:  915,
			Height: 1320,
		},
		Player: PlayerConfig{
			MaxHealth:       50,
			Speed:           5,
			FocusSpeed:      2,
			HitboxRadius:    6,
			Size:            18,
			ShootCooldownMS: 100,
			BulletDamage:    10,
			BulletSpeed:     10,
			BulletSize:      6,
			InvincibilityMS: 500,
		},
		Enemies: EnemyConfig{
			BaseSpeed:   2,
			BaseSize:    30,
			MinSize:     12,
			Health:      50,
			PerWave:     8,
			MaxOnScreen: 25,
		},
		Boss: BossConfig{
			Size:              80,
			BaseHealth:        3000,
			IntroMS:           2000,
			PhaseTransitionMS: 1000,
			PowerupDropMS:     8000,
			Count:             10,
		},
		Bullets: BulletConfig{
			Speed:         5,
			Size:          8,
			MaxLifetimeMS: 10000,
		},
		Waves: WaveConfig{
			PerStage:            5,
			DurationMS:          12000,
			BaseSpawnIntervalMS: 1500,
			MinSpawnIntervalMS:  300,
		},
		Powerups: PowerupConfig{
			SpawnChance:   0.65,
			AbilityChance: 0.1,
			FallSpeed:     2,
			Size:          12,
			LifetimeMS:    10000,
		},
		Scoring: ScoringConfig{
			EnemyKill:        100,
			BossKill:         500,
			StageComplete:    10000,
			Powerup:          50,
			Graze:            5,
			Trick:            200,
			GrazeDistance:    25,
			ComboThresholds:  []int{0, 5, 15, 30, 50},
			ComboMultipliers: []float64{1.0, 1.5, 2.0, 3.0, 5.0},
		},
		Scaling: ScalingConfig{
			EnemySpeed:  1.25,
			EnemyHealth: 1.25,
			BulletSpeed: 1.25,
			SpawnRate:   0.80,
			BossHealth:  1.30,
			WaveScaling: 1.25,
			EnemyCount:  1.35,
		},
	}
}
