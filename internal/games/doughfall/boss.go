package doughfall

import (
	"math"

	"github.com/vovakirdan/doughfall/internal/config"
	"github.com/vovakirdan/doughfall/internal/core"
)

// BossKind selects one of the boss archetypes. The final entry is the
// endgame boss with extra health and a fourth phase.
type BossKind int

const (
	BossInfernoOven BossKind = iota
	BossPepperoniSerpent
	BossFrozenPizzaMaker
	BossMegaPizzaTitan
	BossIcedPizzaQueen
	BossCrispyBakerMaster
	BossShadowPizzaChef
	BossPrismaPizza
	BossChaosPizzaChef
	BossAncientPizzaMaster
)

var bossNames = map[BossKind]string{
	BossInfernoOven:        "INFERNO OVEN",
	BossPepperoniSerpent:   "PEPPERONI SERPENT",
	BossFrozenPizzaMaker:   "FROZEN PIZZA MAKER",
	BossMegaPizzaTitan:     "MEGA PIZZA TITAN",
	BossIcedPizzaQueen:     "ICED PIZZA QUEEN",
	BossCrispyBakerMaster:  "CRISPY BAKER MASTER",
	BossShadowPizzaChef:    "SHADOW PIZZA CHEF",
	BossPrismaPizza:        "PRISMA PIZZA",
	BossChaosPizzaChef:     "CHAOS PIZZA CHEF",
	BossAncientPizzaMaster: "ANCIENT PIZZA MASTER",
}

var bossColors = map[BossKind]core.Color{
	BossInfernoOven:        core.ColorRed,
	BossPepperoniSerpent:   core.ColorMagenta,
	BossFrozenPizzaMaker:   core.ColorCyan,
	BossMegaPizzaTitan:     core.ColorOrange,
	BossIcedPizzaQueen:     core.ColorBrightBlue,
	BossCrispyBakerMaster:  core.ColorYellow,
	BossShadowPizzaChef:    core.ColorGray,
	BossPrismaPizza:        core.ColorBrightMagenta,
	BossChaosPizzaChef:     core.ColorBrightRed,
	BossAncientPizzaMaster: core.ColorBrightCyan,
}

var bossCooldownsMS = map[BossKind]float64{
	BossInfernoOven:        1500,
	BossPepperoniSerpent:   1350,
	BossFrozenPizzaMaker:   1650,
	BossMegaPizzaTitan:     1200,
	BossIcedPizzaQueen:     1875,
	BossCrispyBakerMaster:  900,
	BossShadowPizzaChef:    1500,
	BossPrismaPizza:        1425,
	BossChaosPizzaChef:     1050,
	BossAncientPizzaMaster: 1275,
}

var bossAttackCounts = map[BossKind]int{
	BossInfernoOven:        3,
	BossPepperoniSerpent:   3,
	BossFrozenPizzaMaker:   3,
	BossMegaPizzaTitan:     3,
	BossIcedPizzaQueen:     2,
	BossCrispyBakerMaster:  3,
	BossShadowPizzaChef:    3,
	BossPrismaPizza:        3,
	BossChaosPizzaChef:     4,
	BossAncientPizzaMaster: 5,
}

// Boss is a stage-end encounter. It shares the difficulty scaling with
// regular enemies but has multiple phases, an intro pause, and a rotating
// attack script.
type Boss struct {
	Kind             BossKind
	Name             string
	X, Y             float64
	TargetX, TargetY float64
	Health           float64
	MaxHealth        float64
	Size             float64
	BulletSpeed      float64
	BulletDamage     float64
	Color            core.Color

	Phase             int
	MaxPhases         int
	AttackTimerMS     float64
	AttackCooldownMS  float64
	CurrentAttack     int
	PhaseTransitionMS float64
	IntroMS           float64
	PowerupDropMS     float64
	MovementTimerMS   float64

	// Archetype-specific motion state.
	Rotation       float64
	DashTimerMS    float64
	DashDurationMS float64
	TeleportMS     float64
	Visible        bool
}

// newBoss creates a boss of the given kind scaled for the stage.
func newBoss(kind BossKind, x, y float64, stage int, cfg *config.DoughfallConfig) *Boss {
	td := totalDifficulty(stage, 1)
	health := cfg.Boss.BaseHealth * math.Pow(cfg.Scaling.BossHealth, float64(stage-1))
	maxPhases := 3

	if kind == BossAncientPizzaMaster {
		// The final boss soaks up half again as much damage and has an
		// extra phase.
		health *= 1.5
		maxPhases = 4
	}

	return &Boss{
		Kind:             kind,
		Name:             bossNames[kind],
		X:                x,
		Y:                y,
		TargetX:          x,
		TargetY:          y,
		Health:           health,
		MaxHealth:        health,
		Size:             cfg.Boss.Size,
		BulletSpeed:      cfg.Bullets.Speed * math.Pow(cfg.Scaling.BulletSpeed, td),
		BulletDamage:     10 * math.Pow(1.2, td),
		Color:            bossColors[kind],
		Phase:            1,
		MaxPhases:        maxPhases,
		AttackCooldownMS: bossCooldownsMS[kind],
		IntroMS:          cfg.Boss.IntroMS,
		Visible:          true,
	}
}

// createBoss picks a random archetype from the pool and places it at the
// center of the field for a dramatic entrance.
func createBoss(rng *core.Rand, stage int, fieldW, fieldH float64, cfg *config.DoughfallConfig) *Boss {
	kind := BossKind(rng.Intn(cfg.Boss.Count))
	return newBoss(kind, fieldW/2, fieldH/2, stage, cfg)
}

// InIntro reports whether the boss is still in its entrance pause.
func (b *Boss) InIntro() bool {
	return b.IntroMS > 0
}

// Update advances the boss one tick and returns any bullets it fired.
// During the intro and phase transitions the boss neither moves nor
// attacks.
func (b *Boss) Update(dtMS float64, playerX, playerY, fieldW, fieldH float64, rng *core.Rand, cfg *config.DoughfallConfig) []*Bullet {
	if b.IntroMS > 0 {
		b.IntroMS -= dtMS
		return nil
	}

	b.AttackTimerMS += dtMS
	b.MovementTimerMS += dtMS
	b.PowerupDropMS += dtMS

	// Phase is derived from remaining health every tick, so damage from
	// any source (including ultimates) advances it.
	hpPct := b.Health / b.MaxHealth
	newPhase := b.MaxPhases - int(hpPct*float64(b.MaxPhases)) + 1
	newPhase = core.Clamp(newPhase, 1, b.MaxPhases)
	if newPhase != b.Phase {
		b.Phase = newPhase
		b.PhaseTransitionMS = cfg.Boss.PhaseTransitionMS
		b.AttackTimerMS = 0
	}

	if b.PhaseTransitionMS > 0 {
		b.PhaseTransitionMS -= dtMS
		return nil
	}

	b.updateMovement(dtMS, fieldW, fieldH, rng)

	if b.AttackTimerMS >= b.AttackCooldownMS {
		b.AttackTimerMS = 0
		bullets := b.attack(playerX, playerY, rng)
		b.CurrentAttack = (b.CurrentAttack + 1) % bossAttackCounts[b.Kind]
		return bullets
	}
	return nil
}

// ShouldDropPowerup reports whether the periodic drop timer elapsed and
// resets it.
func (b *Boss) ShouldDropPowerup(intervalMS float64) bool {
	if b.PowerupDropMS >= intervalMS {
		b.PowerupDropMS = 0
		return true
	}
	return false
}

// TakeDamage applies damage and reports whether the boss died.
func (b *Boss) TakeDamage(damage float64) bool {
	b.Health -= damage
	return b.Health <= 0
}

// updateMovement runs the archetype movement script. Most bosses ease
// toward a moving target; the constraint margin keeps them inside the
// field.
func (b *Boss) updateMovement(dtMS, fieldW, fieldH float64, rng *core.Rand) {
	switch b.Kind {
	case BossInfernoOven:
		b.Rotation += dtMS * 0.001
		b.TargetX = fieldW/2 + math.Sin(b.MovementTimerMS*0.001)*150
		b.TargetY = 150
		b.easeToTarget(0.01)

	case BossPepperoniSerpent:
		b.Rotation += dtMS * 0.002
		b.TargetX = fieldW/2 + math.Sin(b.Rotation)*200
		b.TargetY = 180 + math.Cos(b.Rotation*0.7)*30
		b.easeToTarget(0.02)

	case BossFrozenPizzaMaker:
		b.Rotation += dtMS * 0.0015
		b.TargetX = fieldW/2 + math.Cos(b.Rotation)*120
		b.TargetY = 200 + math.Sin(b.Rotation)*50
		b.easeToTarget(0.015)

	case BossMegaPizzaTitan:
		b.Rotation += dtMS * 0.002
		b.TargetX = fieldW / 2
		b.TargetY = 200
		b.easeToTarget(0.01)

	case BossIcedPizzaQueen:
		b.Rotation += dtMS * 0.0008
		b.TargetX = fieldW/2 + math.Sin(b.MovementTimerMS*0.0008)*100
		b.TargetY = 200
		b.easeToTarget(0.008)

	case BossCrispyBakerMaster:
		b.DashTimerMS += dtMS
		if b.DashTimerMS > 3000 {
			b.DashTimerMS = 0
			b.DashDurationMS = 300
			b.TargetX = float64(rng.IntBetween(100, int(fieldW)-100))
		}
		if b.DashDurationMS > 0 {
			b.DashDurationMS -= dtMS
			b.X += (b.TargetX - b.X) * 0.3
		} else {
			b.TargetY = 200
			b.easeToTarget(0.015)
		}

	case BossShadowPizzaChef:
		b.TeleportMS += dtMS
		if b.TeleportMS > 4000 {
			b.TeleportMS = 0
			b.X = float64(rng.IntBetween(100, int(fieldW)-100))
			b.Y = float64(rng.IntBetween(100, 250))
			b.Visible = false
		}
		if b.TeleportMS > 500 {
			b.Visible = true
		}
		// Teleport-only movement, no easing or constraint.
		return

	case BossPrismaPizza:
		b.Rotation += dtMS * 0.0012
		cycle := math.Mod(b.MovementTimerMS*0.0003, 4)
		switch {
		case cycle < 1:
			b.TargetX, b.TargetY = 150, 180
		case cycle < 2:
			b.TargetX, b.TargetY = fieldW-150, 180
		case cycle < 3:
			b.TargetX, b.TargetY = fieldW-150, 280
		default:
			b.TargetX, b.TargetY = 150, 280
		}
		b.easeToTarget(0.015)

	case BossChaosPizzaChef:
		if math.Mod(b.MovementTimerMS, 2000) < dtMS {
			b.TargetX = float64(rng.IntBetween(80, int(fieldW)-80))
			b.TargetY = float64(rng.IntBetween(150, 300))
		}
		b.easeToTarget(0.025)

	case BossAncientPizzaMaster:
		b.Rotation += dtMS * 0.0015
		a1 := b.MovementTimerMS * 0.001
		a2 := b.MovementTimerMS * 0.0015
		b.TargetX = fieldW/2 + math.Cos(a1)*150 + math.Sin(a2)*80
		b.TargetY = 220 + math.Sin(a1)*40
		b.easeToTarget(0.015)
	}

	margin := b.Size + 20
	b.X = core.ClampF(b.X, margin, fieldW-margin)
	b.Y = core.ClampF(b.Y, margin, fieldH-margin)
}

func (b *Boss) easeToTarget(rate float64) {
	b.X += (b.TargetX - b.X) * rate
	b.Y += (b.TargetY - b.Y) * rate
}

// attack fires the current entry of the archetype's attack script.
func (b *Boss) attack(playerX, playerY float64, rng *core.Rand) []*Bullet {
	speed := b.BulletSpeed
	dmg := b.BulletDamage

	switch b.Kind {
	case BossInfernoOven:
		switch b.CurrentAttack {
		case 0:
			return circlePattern(b.X, b.Y, 16+b.Phase*4, speed, core.ColorRed, b.Rotation, dmg)
		case 1:
			bullets := circlePattern(b.X, b.Y, 12, speed, core.ColorRed, 0, dmg)
			return append(bullets, circlePattern(b.X, b.Y, 12, speed*0.7, core.ColorOrange, math.Pi/12, dmg)...)
		default:
			return spiralPattern(b.X, b.Y, 20+b.Phase*5, speed, core.ColorRed, b.Rotation, dmg)
		}

	case BossPepperoniSerpent:
		switch b.CurrentAttack {
		case 0:
			return aimedSpread(b.X, b.Y, playerX, playerY, 5+b.Phase*2, 0.3, speed, core.ColorMagenta, dmg)
		case 1:
			direction := core.AngleTo(b.X, b.Y, playerX, playerY)
			return wavePattern(b.X, b.Y, direction, 10+b.Phase*2, speed, core.ColorBrightMagenta, dmg)
		default:
			return crossPattern(b.X, b.Y, speed, core.ColorMagenta, 3+b.Phase, dmg)
		}

	case BossFrozenPizzaMaker:
		switch b.CurrentAttack {
		case 0:
			return homingBullets(b.X, b.Y, 4+b.Phase, speed*0.7, core.ColorGreen, dmg)
		case 1:
			return randomBurst(b.X, b.Y, 15+b.Phase*5, speed*0.5, speed*1.5, core.ColorCyan, rng, dmg)
		default:
			bullets := circlePattern(b.X, b.Y, 12, speed, core.ColorCyan, 0, dmg)
			return append(bullets, homingBullets(b.X, b.Y, 3, speed*0.6, core.ColorGreen, dmg)...)
		}

	case BossMegaPizzaTitan:
		switch b.CurrentAttack {
		case 0:
			return doubleSpiral(b.X, b.Y, 25+b.Phase*5, speed, core.ColorOrange, core.ColorRed, b.Rotation, dmg)
		case 1:
			return crossPattern(b.X, b.Y, speed*1.2, core.ColorOrange, 4+b.Phase, dmg)
		default:
			bullets := spiralPattern(b.X, b.Y, 18+b.Phase*4, speed*1.1, core.ColorRed, b.Rotation, dmg)
			return append(bullets, aimedSpread(b.X, b.Y, playerX, playerY, 3, 0.15, speed*1.3, core.ColorYellow, dmg)...)
		}

	case BossIcedPizzaQueen:
		if b.CurrentAttack == 0 {
			var bullets []*Bullet
			for i := 0; i < 3; i++ {
				bullets = append(bullets, circlePattern(b.X, b.Y, 20,
					speed*(0.6+float64(i)*0.2), b.Color, b.Rotation+float64(i)*0.2, dmg)...)
			}
			return bullets
		}
		// Snowflake: six arms with three bullets each.
		var bullets []*Bullet
		for i := 0; i < 6; i++ {
			angle := float64(i)*math.Pi/3 + b.Rotation
			for j := 0; j < 3; j++ {
				bullets = append(bullets, newBullet(b.X, b.Y, angle+float64(j)*0.1-0.1, speed*0.8, b.Color, dmg, false))
			}
		}
		return bullets

	case BossCrispyBakerMaster:
		switch b.CurrentAttack {
		case 0:
			var bullets []*Bullet
			for i := 0; i < 3; i++ {
				bullets = append(bullets, aimedSpread(b.X, b.Y, playerX, playerY, 3,
					0.2+float64(i)*0.1, speed*(1.2+float64(i)*0.1), core.ColorYellow, dmg)...)
			}
			return bullets
		case 1:
			return randomBurst(b.X, b.Y, 20+b.Phase*5, speed*0.8, speed*1.8, core.ColorYellow, rng, dmg)
		default:
			var bullets []*Bullet
			for _, angle := range []float64{0, math.Pi / 2, math.Pi, -math.Pi / 2} {
				bullets = append(bullets, wavePattern(b.X, b.Y, angle, 6, speed*1.1, core.ColorYellow, dmg)...)
			}
			return bullets
		}

	case BossShadowPizzaChef:
		if !b.Visible {
			return nil
		}
		switch b.CurrentAttack {
		case 0:
			return spiralPattern(b.X, b.Y, 20+b.Phase*4, speed, b.Color, b.MovementTimerMS*0.001, dmg)
		case 1:
			return circlePattern(b.X, b.Y, 24+b.Phase*4, speed*1.1, core.ColorMagenta, 0, dmg)
		default:
			bullets := homingBullets(b.X, b.Y, 5+b.Phase, speed*0.7, core.ColorGreen, dmg)
			return append(bullets, aimedSpread(b.X, b.Y, playerX, playerY, 5, 0.25, speed, b.Color, dmg)...)
		}

	case BossPrismaPizza:
		switch b.CurrentAttack {
		case 0:
			var bullets []*Bullet
			for _, angle := range []float64{0, math.Pi / 2, math.Pi, -math.Pi / 2} {
				for i := 0; i < 4+b.Phase; i++ {
					offset := float64(i-2) * 0.1
					bullets = append(bullets, newBullet(b.X, b.Y, angle+offset, speed, b.Color, dmg, false))
				}
			}
			return bullets
		case 1:
			bullets := crossPattern(b.X, b.Y, speed, b.Color, 4+b.Phase, dmg)
			for _, angle := range []float64{math.Pi / 4, 3 * math.Pi / 4, 5 * math.Pi / 4, 7 * math.Pi / 4} {
				for i := 0; i < 3; i++ {
					offset := float64(i-1) * 0.08
					bullets = append(bullets, newBullet(b.X, b.Y, angle+offset, speed, core.ColorMagenta, dmg, false))
				}
			}
			return bullets
		default:
			bullets := circlePattern(b.X, b.Y, 6, speed*1.2, b.Color, b.Rotation, dmg)
			return append(bullets, circlePattern(b.X, b.Y, 12, speed*0.8, core.ColorMagenta, -b.Rotation, dmg)...)
		}

	case BossChaosPizzaChef:
		// Chaotic: the attack is drawn from the RNG rather than cycled.
		switch rng.IntBetween(0, 3+b.Phase) {
		case 0:
			return randomBurst(b.X, b.Y, 25+b.Phase*5, speed*0.5, speed*1.5, b.Color, rng, dmg)
		case 1:
			return spiralPattern(b.X, b.Y, 22, speed, core.ColorRed, rng.Angle(), dmg)
		case 2:
			return aimedSpread(b.X, b.Y, playerX, playerY, 7+b.Phase, 0.4, speed*1.2, core.ColorOrange, dmg)
		default:
			bullets := circlePattern(b.X, b.Y, 16, speed, b.Color, 0, dmg)
			return append(bullets, homingBullets(b.X, b.Y, 3, speed*0.6, core.ColorGreen, dmg)...)
		}

	case BossAncientPizzaMaster:
		switch b.CurrentAttack {
		case 0:
			return doubleSpiral(b.X, b.Y, 30+b.Phase*5, speed, b.Color, core.ColorMagenta, b.Rotation, dmg)
		case 1:
			bullets := circlePattern(b.X, b.Y, 24+b.Phase*4, speed, b.Color, b.Rotation, dmg)
			return append(bullets, circlePattern(b.X, b.Y, 16, speed*0.6, core.ColorBrightMagenta, -b.Rotation*1.5, dmg)...)
		case 2:
			var bullets []*Bullet
			for i := 0; i < 4+b.Phase; i++ {
				bullets = append(bullets, aimedSpread(b.X, b.Y, playerX, playerY, 3,
					0.15+float64(i)*0.05, speed*(0.9+float64(i)*0.1), core.ColorOrange, dmg)...)
			}
			return bullets
		case 3:
			bullets := homingBullets(b.X, b.Y, 6+b.Phase, speed*0.7, core.ColorGreen, dmg)
			return append(bullets, spiralPattern(b.X, b.Y, 25, speed*1.1, b.Color, b.Rotation, dmg)...)
		default:
			bullets := circlePattern(b.X, b.Y, 20, speed*1.2, core.ColorRed, 0, dmg)
			bullets = append(bullets, crossPattern(b.X, b.Y, speed, core.ColorYellow, 5, dmg)...)
			return append(bullets, homingBullets(b.X, b.Y, 4, speed*0.6, core.ColorGreen, dmg)...)
		}
	}
	return nil
}
