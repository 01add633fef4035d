package doughfall

import (
	"math"

	"github.com/vovakirdan/doughfall/internal/config"
	"github.com/vovakirdan/doughfall/internal/core"
)

// WeaponStyle selects the player's shot pattern. Styles cycle in order
// when a style powerup is collected.
type WeaponStyle int

const (
	StyleNormal WeaponStyle = iota
	StyleBurst
	StyleLaser
	StyleSpread
	StyleHoming
	StyleRapid

	numWeaponStyles
)

func (s WeaponStyle) String() string {
	switch s {
	case StyleNormal:
		return "NORMAL"
	case StyleBurst:
		return "BURST"
	case StyleLaser:
		return "LASER"
	case StyleSpread:
		return "SPREAD"
	case StyleHoming:
		return "HOMING"
	case StyleRapid:
		return "RAPID"
	}
	return "?"
}

// UltimateType selects the screen-clearing ultimate fired with a full
// ultimate meter.
type UltimateType int

const (
	UltimateLaserGrid UltimateType = iota
	UltimateClone
	UltimateFullscreenLaser

	numUltimateTypes
)

func (u UltimateType) String() string {
	switch u {
	case UltimateLaserGrid:
		return "LASER GRID"
	case UltimateClone:
		return "CLONE"
	case UltimateFullscreenLaser:
		return "FULL LASER"
	}
	return "?"
}

// AbilityType selects the charged risk/reward ability.
type AbilityType int

const (
	AbilityBerserker AbilityType = iota
	AbilityGlassCannon
	AbilityInvincible

	numAbilityTypes
)

func (a AbilityType) String() string {
	switch a {
	case AbilityBerserker:
		return "BERSERKER"
	case AbilityGlassCannon:
		return "GLASS CANNON"
	case AbilityInvincible:
		return "INVINCIBLE"
	}
	return "?"
}

// historyPoint is one sample of the player's path, kept for trick
// detection. Dt is the tick duration so the window can be trimmed by time.
type historyPoint struct {
	X, Y float64
	DtMS float64
}

// Player is the player ship. The visible body (Size) is much larger than
// the hitbox (HitboxRadius); only the hitbox takes damage, the gap between
// them is the graze zone.
type Player struct {
	X, Y         float64
	Size         float64
	HitboxRadius float64
	Health       float64
	MaxHealth    float64

	Speed      float64
	FocusSpeed float64

	// Phase sprint. Sprinting drains the meter and phases the ship through
	// bullets; the meter regenerates when idle.
	PhaseThrough    bool
	PhaseTimeMS     float64
	PhaseCharge     float64
	PhaseMax        float64
	phaseDepleteSec float64
	phaseRegenSec   float64

	ShootCooldownMS  float64
	DamageMultiplier float64
	InvincibleMS     float64
	Shield           bool
	PowerLevel       int
	Style            WeaponStyle
	StyleTimerMS     float64

	// Trick detection state.
	History         []historyPoint
	BorderTouched   [4]bool // left, right, top, bottom
	TrickCooldownMS float64

	ShotsFired  int
	DamageTaken float64

	UltimateCharge     float64
	UltimateMax        float64
	UltimateActive     bool
	UltimateDurationMS float64
	Ultimate           UltimateType

	AbilityCharge     float64
	AbilityMax        float64
	AbilityActive     bool
	AbilityDurationMS float64
	Ability           AbilityType

	Combo           int
	ComboMultiplier float64

	GrazeCount int

	cfg *config.DoughfallConfig
}

const (
	borderLeft = iota
	borderRight
	borderTop
	borderBottom
)

func newPlayer(x, y float64, cfg *config.DoughfallConfig) *Player {
	return &Player{
		X:                x,
		Y:                y,
		Size:             cfg.Player.Size,
		HitboxRadius:     cfg.Player.HitboxRadius,
		Health:           cfg.Player.MaxHealth,
		MaxHealth:        cfg.Player.MaxHealth,
		Speed:            cfg.Player.Speed,
		FocusSpeed:       cfg.Player.FocusSpeed,
		PhaseCharge:      100,
		PhaseMax:         100,
		phaseDepleteSec:  60,
		phaseRegenSec:    40,
		DamageMultiplier: 1.0,
		PowerLevel:       1,
		UltimateMax:      100,
		AbilityMax:       100,
		ComboMultiplier:  1.0,
		cfg:              cfg,
	}
}

// Update advances timers, applies movement from the input frame, and
// records the path for trick detection.
func (p *Player) Update(dtMS float64, in core.InputFrame, fieldW, fieldH float64) {
	if p.InvincibleMS > 0 {
		p.InvincibleMS = math.Max(0, p.InvincibleMS-dtMS)
	}

	if p.PhaseThrough {
		p.PhaseTimeMS -= dtMS
		p.PhaseCharge = math.Max(0, p.PhaseCharge-p.phaseDepleteSec*dtMS/1000)
		if p.PhaseTimeMS <= 0 || p.PhaseCharge <= 0 {
			p.PhaseThrough = false
		}
	} else {
		p.PhaseCharge = math.Min(p.PhaseMax, p.PhaseCharge+p.phaseRegenSec*dtMS/1000)
	}

	if p.AbilityActive && p.AbilityDurationMS > 0 {
		p.AbilityDurationMS = math.Max(0, p.AbilityDurationMS-dtMS)
		if p.AbilityDurationMS == 0 {
			p.AbilityActive = false
		}
	}
	if p.UltimateActive && p.UltimateDurationMS > 0 {
		p.UltimateDurationMS = math.Max(0, p.UltimateDurationMS-dtMS)
		if p.UltimateDurationMS == 0 {
			p.UltimateActive = false
		}
	}

	// Focus wins over sprint; sprinting keeps the phase window alive for
	// another 100ms each tick it is held.
	speed := p.Speed
	if in.Has(core.ActionFocus) {
		speed = p.FocusSpeed
	} else if in.Has(core.ActionSprint) && p.PhaseCharge > 0 {
		speed = p.Speed * 1.8
		p.PhaseThrough = true
		p.PhaseTimeMS = 100
	}

	var dx, dy float64
	if in.Has(core.ActionLeft) {
		dx--
	}
	if in.Has(core.ActionRight) {
		dx++
	}
	if in.Has(core.ActionUp) {
		dy--
	}
	if in.Has(core.ActionDown) {
		dy++
	}
	if dx != 0 && dy != 0 {
		dx *= 0.707
		dy *= 0.707
	}
	p.X += dx * speed
	p.Y += dy * speed

	margin := p.Size
	p.X = core.ClampF(p.X, margin, fieldW-margin)
	p.Y = core.ClampF(p.Y, margin, fieldH-margin)

	if p.ShootCooldownMS > 0 {
		p.ShootCooldownMS = math.Max(0, p.ShootCooldownMS-dtMS)
	}
	p.StyleTimerMS += dtMS
	if p.TrickCooldownMS > 0 {
		p.TrickCooldownMS = math.Max(0, p.TrickCooldownMS-dtMS)
	}

	// Keep roughly the last 3 seconds of path history.
	p.History = append(p.History, historyPoint{X: p.X, Y: p.Y, DtMS: dtMS})
	total := 0.0
	for _, h := range p.History {
		total += h.DtMS
	}
	for total > 3000 && len(p.History) > 10 {
		total -= p.History[0].DtMS
		p.History = p.History[1:]
	}

	touchMargin := p.Size + 5
	if p.X <= touchMargin {
		p.BorderTouched[borderLeft] = true
	}
	if p.X >= fieldW-touchMargin {
		p.BorderTouched[borderRight] = true
	}
	if p.Y <= touchMargin {
		p.BorderTouched[borderTop] = true
	}
	if p.Y >= fieldH-touchMargin {
		p.BorderTouched[borderBottom] = true
	}
}

// Shoot fires the current weapon style if the cooldown allows. Each style
// sets its own cooldown relative to the base rate.
func (p *Player) Shoot() []*Bullet {
	if p.ShootCooldownMS > 0 {
		return nil
	}

	base := p.cfg.Player.ShootCooldownMS
	var bullets []*Bullet
	switch p.Style {
	case StyleNormal:
		bullets = p.shootNormal()
		p.ShootCooldownMS = base
	case StyleBurst:
		bullets = p.shootBurst()
		p.ShootCooldownMS = base * 3
	case StyleLaser:
		bullets = p.shootLaser()
		p.ShootCooldownMS = base * 0.5
	case StyleSpread:
		bullets = p.shootSpread()
		p.ShootCooldownMS = base
	case StyleHoming:
		bullets = p.shootHoming()
		p.ShootCooldownMS = base * 1.5
	case StyleRapid:
		bullets = p.shootRapid()
		p.ShootCooldownMS = base * 0.3
	}

	p.ShotsFired += len(bullets)
	return bullets
}

const up = math.Pi * 1.5 // straight up the field

func (p *Player) shootNormal() []*Bullet {
	damage := p.EffectiveDamage()
	var bullets []*Bullet

	switch {
	case p.PowerLevel == 1:
		bullets = append(bullets, newPlayerBullet(p.X, p.Y-p.Size, up, damage, KindNormal))
	case p.PowerLevel == 2:
		bullets = append(bullets,
			newPlayerBullet(p.X-5, p.Y-p.Size, up, damage, KindNormal),
			newPlayerBullet(p.X+5, p.Y-p.Size, up, damage, KindNormal))
	default:
		bullets = append(bullets,
			newPlayerBullet(p.X, p.Y-p.Size, up, damage, KindNormal),
			newPlayerBullet(p.X-8, p.Y-p.Size, up-0.1, damage, KindNormal),
			newPlayerBullet(p.X+8, p.Y-p.Size, up+0.1, damage, KindNormal))
	}

	if p.PowerLevel >= 4 {
		bullets = append(bullets,
			newPlayerBullet(p.X-15, p.Y, up-0.2, damage*0.7, KindNormal),
			newPlayerBullet(p.X+15, p.Y, up+0.2, damage*0.7, KindNormal))
	}
	return bullets
}

func (p *Player) shootBurst() []*Bullet {
	damage := p.EffectiveDamage() * 3.0
	bullets := []*Bullet{newPlayerBullet(p.X, p.Y-p.Size, up, damage, KindBurst)}
	if p.PowerLevel >= 2 {
		bullets = append(bullets,
			newPlayerBullet(p.X-10, p.Y-p.Size, up-0.05, damage, KindBurst),
			newPlayerBullet(p.X+10, p.Y-p.Size, up+0.05, damage, KindBurst))
	}
	return bullets
}

func (p *Player) shootLaser() []*Bullet {
	damage := p.EffectiveDamage() * 1.5
	var bullets []*Bullet
	for i := 0; i < 2+p.PowerLevel; i++ {
		offset := float64(i) * 2
		bullets = append(bullets, newPlayerBullet(p.X, p.Y-p.Size-offset, up, damage, KindLaser))
	}
	return bullets
}

func (p *Player) shootSpread() []*Bullet {
	damage := p.EffectiveDamage() * 0.8
	n := 5 + p.PowerLevel
	const spreadAngle = 0.6
	var bullets []*Bullet
	for i := 0; i < n; i++ {
		angle := up + float64(i-n/2)*(spreadAngle/float64(n))
		bullets = append(bullets, newPlayerBullet(p.X, p.Y-p.Size, angle, damage, KindNormal))
	}
	return bullets
}

func (p *Player) shootHoming() []*Bullet {
	damage := p.EffectiveDamage() * 1.2
	bullets := []*Bullet{newPlayerBullet(p.X, p.Y-p.Size, up, damage, KindHoming)}
	if p.PowerLevel >= 2 {
		bullets = append(bullets,
			newPlayerBullet(p.X-10, p.Y, up-0.3, damage, KindHoming),
			newPlayerBullet(p.X+10, p.Y, up+0.3, damage, KindHoming))
	}
	if p.PowerLevel >= 4 {
		bullets = append(bullets,
			newPlayerBullet(p.X-5, p.Y-5, up, damage, KindHoming),
			newPlayerBullet(p.X+5, p.Y-5, up, damage, KindHoming))
	}
	return bullets
}

func (p *Player) shootRapid() []*Bullet {
	damage := p.EffectiveDamage() * 0.6
	bullets := []*Bullet{newPlayerBullet(p.X, p.Y-p.Size, up, damage, KindRapid)}
	if p.PowerLevel >= 2 {
		bullets = append(bullets,
			newPlayerBullet(p.X-3, p.Y-p.Size, up, damage, KindRapid),
			newPlayerBullet(p.X+3, p.Y-p.Size, up, damage, KindRapid))
	}
	if p.PowerLevel >= 3 {
		bullets = append(bullets,
			newPlayerBullet(p.X-6, p.Y, up-0.05, damage, KindRapid),
			newPlayerBullet(p.X+6, p.Y, up+0.05, damage, KindRapid))
	}
	return bullets
}

// TakeDamage applies a hit and reports whether the player died. Shields
// absorb one hit; any connecting hit breaks the combo.
func (p *Player) TakeDamage(damage float64) bool {
	if p.InvincibleMS > 0 {
		return false
	}
	if p.AbilityActive && p.Ability == AbilityInvincible {
		return false
	}
	if p.Shield {
		p.Shield = false
		p.Combo = 0
		p.updateComboMultiplier()
		return false
	}

	p.Health -= damage
	p.DamageTaken += damage
	p.Combo = 0
	p.updateComboMultiplier()

	if p.Health <= 0 {
		p.Health = 0
		return true
	}
	p.InvincibleMS = p.cfg.Player.InvincibilityMS
	return false
}

func (p *Player) Heal(amount float64) {
	p.Health = math.Min(p.MaxHealth, p.Health+amount)
}

func (p *Player) AddPower() {
	p.PowerLevel = core.Min(4, p.PowerLevel+1)
}

func (p *Player) AddDamageBoost() {
	p.DamageMultiplier = math.Min(3.0, p.DamageMultiplier+0.5)
}

func (p *Player) AddShield() {
	p.Shield = true
}

// SwitchStyle cycles to the next weapon style.
func (p *Player) SwitchStyle() WeaponStyle {
	p.Style = (p.Style + 1) % numWeaponStyles
	return p.Style
}

// SwitchUltimateType cycles to the next ultimate type.
func (p *Player) SwitchUltimateType() UltimateType {
	p.Ultimate = (p.Ultimate + 1) % numUltimateTypes
	return p.Ultimate
}

// SetAbilityType replaces the equipped ability, from a powerup pickup.
func (p *Player) SetAbilityType(t AbilityType) {
	p.Ability = t
}

// ActivateAbility fires the equipped ability if the meter is full.
// Glass cannon drops health to 20 immediately in exchange for the
// damage bonus.
func (p *Player) ActivateAbility() bool {
	if p.AbilityCharge < p.AbilityMax || p.AbilityActive {
		return false
	}
	p.AbilityActive = true
	p.AbilityCharge = 0

	switch p.Ability {
	case AbilityBerserker:
		p.AbilityDurationMS = 5000
	case AbilityGlassCannon:
		p.AbilityDurationMS = 8000
		p.Health = 20
	case AbilityInvincible:
		p.AbilityDurationMS = 10000
	}
	return true
}

// abilityDamageMultiplier returns the damage bonus from the active
// ability. Berserker scales up as health drops.
func (p *Player) abilityDamageMultiplier() float64 {
	if !p.AbilityActive {
		return 1.0
	}
	switch p.Ability {
	case AbilityBerserker:
		ratio := p.Health / p.MaxHealth
		switch {
		case ratio < 0.3:
			return 2.5
		case ratio < 0.5:
			return 2.0
		default:
			return 1.5
		}
	case AbilityGlassCannon:
		return 3.0
	}
	return 1.0
}

// EffectiveDamage is the per-bullet base damage with all modifiers, before
// the per-style factor.
func (p *Player) EffectiveDamage() float64 {
	return p.cfg.Player.BulletDamage * p.DamageMultiplier * p.abilityDamageMultiplier()
}

// ClearPowerups strips collected upgrades when a boss appears. Power level
// drops one step but never below 1.
func (p *Player) ClearPowerups() {
	p.DamageMultiplier = 1.0
	p.Shield = false
	p.Speed = p.cfg.Player.Speed
	p.FocusSpeed = p.cfg.Player.FocusSpeed
	p.Style = StyleNormal
	p.PowerLevel = core.Max(1, p.PowerLevel-1)
}

// IncrementCombo bumps the kill combo and recomputes the multiplier.
func (p *Player) IncrementCombo() {
	p.Combo++
	p.updateComboMultiplier()
}

func (p *Player) updateComboMultiplier() {
	thresholds := p.cfg.Scoring.ComboThresholds
	multipliers := p.cfg.Scoring.ComboMultipliers
	for i := len(thresholds) - 1; i >= 0; i-- {
		if p.Combo >= thresholds[i] && i < len(multipliers) {
			p.ComboMultiplier = multipliers[i]
			return
		}
	}
}

func (p *Player) Alive() bool {
	return p.Health > 0
}
