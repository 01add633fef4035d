// Package config provides YAML-based tuning configuration and difficulty
// presets for the game.
package config

// DoughfallConfig contains every tunable the simulation reads.
// All durations are in milliseconds, all distances in field units.
type DoughfallConfig struct {
	Field    FieldConfig   `yaml:"field"`
	Player   PlayerConfig  `yaml:"player"`
	Enemies  EnemyConfig   `yaml:"enemies"`
	Boss     BossConfig    `yaml:"boss"`
	Bullets  BulletConfig  `yaml:"bullets"`
	Waves    WaveConfig    `yaml:"waves"`
	Powerups PowerupConfig `yaml:"powerups"`
	Scoring  ScoringConfig `yaml:"scoring"`
	Scaling  ScalingConfig `yaml:"scaling"`
}

// FieldConfig defines the playable area in field units. The renderer maps
// field units onto terminal cells; the simulation never sees cells.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player ship parameters.
type PlayerConfig struct {
	MaxHealth       float64 `yaml:"max_health"`
	Speed           float64 `yaml:"speed"`
	FocusSpeed      float64 `yaml:"focus_speed"` // Slow precise movement while focus is held
	HitboxRadius    float64 `yaml:"hitbox_radius"`
	Size            float64 `yaml:"size"` // Visual radius, larger than the hitbox
	ShootCooldownMS float64 `yaml:"shoot_cooldown_ms"`
	BulletDamage    float64 `yaml:"bullet_damage"`
	BulletSpeed     float64 `yaml:"bullet_speed"`
	BulletSize      float64 `yaml:"bullet_size"`
	InvincibilityMS float64 `yaml:"invincibility_ms"` // Post-hit grace window
}

// EnemyConfig defines baseline enemy parameters before stage scaling.
type EnemyConfig struct {
	BaseSpeed   float64 `yaml:"base_speed"`
	BaseSize    float64 `yaml:"base_size"`
	MinSize     float64 `yaml:"min_size"` // Crowding never shrinks enemies below this
	Health      float64 `yaml:"health"`
	PerWave     int     `yaml:"per_wave"`
	MaxOnScreen int     `yaml:"max_on_screen"`
}

// BossConfig defines boss encounter parameters.
type BossConfig struct {
	Size              float64 `yaml:"size"`
	BaseHealth        float64 `yaml:"base_health"`
	IntroMS           float64 `yaml:"intro_ms"`
	PhaseTransitionMS float64 `yaml:"phase_transition_ms"`
	PowerupDropMS     float64 `yaml:"powerup_drop_ms"` // Periodic guaranteed drop interval
	Count             int     `yaml:"count"`           // Distinct archetypes; the last one is the final boss
}

// BulletConfig defines baseline enemy bullet parameters.
type BulletConfig struct {
	Speed         float64 `yaml:"speed"`
	Size          float64 `yaml:"size"`
	MaxLifetimeMS float64 `yaml:"max_lifetime_ms"`
}

// WaveConfig defines wave and spawn pacing.
type WaveConfig struct {
	PerStage            int     `yaml:"per_stage"`
	DurationMS          float64 `yaml:"duration_ms"`
	BaseSpawnIntervalMS float64 `yaml:"base_spawn_interval_ms"`
	MinSpawnIntervalMS  float64 `yaml:"min_spawn_interval_ms"`
}

// PowerupConfig defines pickup behavior.
type PowerupConfig struct {
	SpawnChance   float64 `yaml:"spawn_chance"`   // Chance a kill drops anything
	AbilityChance float64 `yaml:"ability_chance"` // Chance a drop is an ability switch
	FallSpeed     float64 `yaml:"fall_speed"`
	Size          float64 `yaml:"size"`
	LifetimeMS    float64 `yaml:"lifetime_ms"`
}

// ScoringConfig defines score awards and the combo ladder.
// Thresholds and Multipliers are parallel tables: combo >= Thresholds[i]
// selects Multipliers[i] (highest matching index wins).
type ScoringConfig struct {
	EnemyKill        int       `yaml:"enemy_kill"`
	BossKill         int       `yaml:"boss_kill"` // Multiplied by stage number
	StageComplete    int       `yaml:"stage_complete"`
	Powerup          int       `yaml:"powerup"`
	Graze            int       `yaml:"graze"`
	Trick            int       `yaml:"trick"`
	GrazeDistance    float64   `yaml:"graze_distance"`
	ComboThresholds  []int     `yaml:"combo_thresholds"`
	ComboMultipliers []float64 `yaml:"combo_multipliers"`
}

// ScalingConfig defines the per-category difficulty exponents. Each value is
// raised to (stage-1) + (wave-1)*0.3 to compound across a run; spawn rate
// uses a base below 1 so intervals shrink.
type ScalingConfig struct {
	EnemySpeed  float64 `yaml:"enemy_speed"`
	EnemyHealth float64 `yaml:"enemy_health"`
	BulletSpeed float64 `yaml:"bullet_speed"`
	SpawnRate   float64 `yaml:"spawn_rate"`
	BossHealth  float64 `yaml:"boss_health"`
	WaveScaling float64 `yaml:"wave_scaling"`
	EnemyCount  float64 `yaml:"enemy_count"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ValidPreset reports whether the string names a known preset.
func ValidPreset(s string) bool {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return true
	}
	return false
}
