package doughfall

import (
	"math"

	"github.com/vovakirdan/doughfall/internal/config"
	"github.com/vovakirdan/doughfall/internal/core"
)

// EnemyKind selects one of the regular enemy archetypes.
type EnemyKind int

const (
	EnemyBasic  EnemyKind = iota // aimed three-shot spread
	EnemyCircle                  // slow rotating ring
	EnemySpiral                  // fast spiral arms
	EnemyHoming                  // sparse homing shots
	EnemyWave                    // aimed sine wave
)

// enemyStats holds the per-archetype tuning applied on top of the shared
// difficulty scaling.
type enemyStats struct {
	healthMult float64
	cooldownMS float64
	targetY    float64
	color      core.Color
}

var enemyTable = map[EnemyKind]enemyStats{
	EnemyBasic:  {healthMult: 1.0, cooldownMS: 2000, targetY: 150, color: core.ColorRed},
	EnemyCircle: {healthMult: 1.5, cooldownMS: 3000, targetY: 120, color: core.ColorMagenta},
	EnemySpiral: {healthMult: 1.3, cooldownMS: 1500, targetY: 180, color: core.ColorOrange},
	EnemyHoming: {healthMult: 0.8, cooldownMS: 3500, targetY: 140, color: core.ColorGreen},
	EnemyWave:   {healthMult: 1.0, cooldownMS: 2500, targetY: 160, color: core.ColorYellow},
}

// Enemy is a regular (non-boss) opponent. It drifts toward the target
// position chosen at spawn and fires its archetype pattern on a cooldown.
type Enemy struct {
	Kind             EnemyKind
	X, Y             float64
	TargetX, TargetY float64
	Health           float64
	MaxHealth        float64
	Speed            float64
	BulletSpeed      float64
	BulletDamage     float64
	Size             float64
	Color            core.Color
	ShootTimerMS     float64
	CooldownMS       float64
	MovementTimerMS  float64
	Rotation         float64
}

// totalDifficulty combines stage and wave progression into one exponent.
// Each wave contributes 30% of a full stage step.
func totalDifficulty(stage, wave int) float64 {
	return float64(stage-1) + float64(wave-1)*0.3
}

// newEnemy creates an enemy of the given kind at the spawn position, with
// stats scaled for the current stage and wave. Enemies shrink as the field
// gets crowded so dense waves stay readable.
func newEnemy(kind EnemyKind, x, y float64, stage, wave, enemyCount int, cfg *config.DoughfallConfig) *Enemy {
	td := totalDifficulty(stage, wave)
	stats := enemyTable[kind]

	health := cfg.Enemies.Health * stats.healthMult * math.Pow(cfg.Scaling.EnemyHealth, td)

	sizeScale := math.Max(0.4, 1.0-float64(enemyCount)/60.0)
	size := math.Floor(cfg.Enemies.BaseSize * sizeScale)
	if size < cfg.Enemies.MinSize {
		size = cfg.Enemies.MinSize
	}

	return &Enemy{
		Kind:         kind,
		X:            x,
		Y:            y,
		TargetX:      x,
		TargetY:      stats.targetY,
		Health:       health,
		MaxHealth:    health,
		Speed:        cfg.Enemies.BaseSpeed * math.Pow(cfg.Scaling.EnemySpeed, td),
		BulletSpeed:  cfg.Bullets.Speed * math.Pow(cfg.Scaling.BulletSpeed, td),
		BulletDamage: 10 * math.Pow(1.2, td),
		Size:         size,
		Color:        stats.color,
		CooldownMS:   stats.cooldownMS,
	}
}

// spawnEnemy picks an enemy type for the current difficulty and places it
// just above the field. Basic enemies dominate early stages; the weight
// shifts toward the trickier archetypes as difficulty rises.
func spawnEnemy(rng *core.Rand, stage, wave, enemyCount int, fieldW float64, cfg *config.DoughfallConfig) *Enemy {
	basicWeight := 6 - int(float64(stage)+float64(wave-1)*0.3)
	if basicWeight < 1 {
		basicWeight = 1
	}
	weights := []int{basicWeight, 1, 1, 1, 1}
	kind := EnemyKind(rng.WeightedIndex(weights))

	x := float64(rng.IntBetween(50, int(fieldW)-50))
	return newEnemy(kind, x, -50, stage, wave, enemyCount, cfg)
}

// Update advances the enemy one tick and returns any bullets it fired.
func (e *Enemy) Update(dtMS float64, playerX, playerY float64) []*Bullet {
	e.MovementTimerMS += dtMS
	e.ShootTimerMS += dtMS

	switch e.Kind {
	case EnemyCircle:
		e.Rotation += dtMS * 0.001
	case EnemySpiral:
		e.Rotation += dtMS * 0.002
	}

	// Ease toward the spawn target; stop when close to avoid jitter.
	if math.Abs(e.X-e.TargetX) > 2 {
		e.X += (e.TargetX - e.X) * 0.02
	}
	if math.Abs(e.Y-e.TargetY) > 2 {
		e.Y += (e.TargetY - e.Y) * 0.02
	}

	if e.ShootTimerMS >= e.CooldownMS {
		e.ShootTimerMS = 0
		return e.shoot(playerX, playerY)
	}
	return nil
}

// shoot fires the archetype's pattern.
func (e *Enemy) shoot(playerX, playerY float64) []*Bullet {
	switch e.Kind {
	case EnemyBasic:
		return aimedSpread(e.X, e.Y, playerX, playerY, 3, 0.2, e.BulletSpeed, e.Color, e.BulletDamage)
	case EnemyCircle:
		return circlePattern(e.X, e.Y, 12, e.BulletSpeed, e.Color, e.Rotation, e.BulletDamage)
	case EnemySpiral:
		return spiralPattern(e.X, e.Y, 15, e.BulletSpeed, e.Color, e.Rotation, e.BulletDamage)
	case EnemyHoming:
		return homingBullets(e.X, e.Y, 4, e.BulletSpeed*0.6, e.Color, e.BulletDamage)
	case EnemyWave:
		direction := core.AngleTo(e.X, e.Y, playerX, playerY)
		return wavePattern(e.X, e.Y, direction, 8, e.BulletSpeed, e.Color, e.BulletDamage)
	}
	return nil
}

// TakeDamage applies damage and reports whether the enemy died.
func (e *Enemy) TakeDamage(damage float64) bool {
	e.Health -= damage
	return e.Health <= 0
}
