package doughfall

import (
	"fmt"

	"github.com/vovakirdan/doughfall/internal/config"
	"github.com/vovakirdan/doughfall/internal/core"
)

// PowerupKind identifies a pickup dropped by a kill or a boss.
type PowerupKind int

const (
	PowerupHealth PowerupKind = iota
	PowerupDamage
	PowerupShield
	PowerupPower
	PowerupStyle
	PowerupUltimateType
	PowerupAbilityBerserker
	PowerupAbilityGlassCannon
	PowerupAbilityInvincible
)

var powerupColors = map[PowerupKind]core.Color{
	PowerupHealth:             core.ColorGreen,
	PowerupDamage:             core.ColorRed,
	PowerupShield:             core.ColorYellow,
	PowerupPower:              core.ColorOrange,
	PowerupStyle:              core.ColorMagenta,
	PowerupUltimateType:       core.ColorBrightRed,
	PowerupAbilityBerserker:   core.ColorBrightRed,
	PowerupAbilityGlassCannon: core.ColorBrightYellow,
	PowerupAbilityInvincible:  core.ColorBrightCyan,
}

// Powerup is a falling pickup. It expires after a while so the field does
// not fill up with stale drops.
type Powerup struct {
	Kind       PowerupKind
	X, Y       float64
	Size       float64
	FallSpeed  float64
	LifetimeMS float64
	Color      core.Color
}

func newPowerup(kind PowerupKind, x, y float64, cfg *config.DoughfallConfig) *Powerup {
	return &Powerup{
		Kind:       kind,
		X:          x,
		Y:          y,
		Size:       cfg.Powerups.Size,
		FallSpeed:  cfg.Powerups.FallSpeed,
		LifetimeMS: cfg.Powerups.LifetimeMS,
		Color:      powerupColors[kind],
	}
}

// rollPowerup decides whether a kill drops anything and picks the kind.
// A small fraction of drops are ability switches; the rest come from the
// regular pool.
func rollPowerup(rng *core.Rand, x, y float64, cfg *config.DoughfallConfig) *Powerup {
	if rng.Float() >= cfg.Powerups.SpawnChance {
		return nil
	}
	if rng.Float() < cfg.Powerups.AbilityChance {
		abilities := []PowerupKind{PowerupAbilityBerserker, PowerupAbilityGlassCannon, PowerupAbilityInvincible}
		return newPowerup(abilities[rng.Intn(len(abilities))], x, y, cfg)
	}
	regular := []PowerupKind{PowerupHealth, PowerupDamage, PowerupPower, PowerupShield, PowerupStyle, PowerupUltimateType}
	return newPowerup(regular[rng.Intn(len(regular))], x, y, cfg)
}

// Update advances the fall and the expiry timer.
func (p *Powerup) Update(dtMS float64) {
	p.Y += p.FallSpeed
	p.LifetimeMS -= dtMS
}

// Gone reports whether the pickup fell off the field or expired.
func (p *Powerup) Gone(fieldH float64) bool {
	return p.Y > fieldH+50 || p.LifetimeMS <= 0
}

// Apply grants the pickup's effect and returns a short announcement for
// the HUD.
func (p *Powerup) Apply(player *Player) string {
	switch p.Kind {
	case PowerupHealth:
		player.Heal(30)
		return "FRESH SLICE +30"
	case PowerupDamage:
		player.AddDamageBoost()
		return "EXTRA SPICY"
	case PowerupShield:
		player.AddShield()
		return "CHEESE SHIELD"
	case PowerupPower:
		player.AddPower()
		return fmt.Sprintf("POWER LEAVEN %d", player.PowerLevel)
	case PowerupStyle:
		return "TOPPING: " + player.SwitchStyle().String()
	case PowerupUltimateType:
		return "ULTIMATE: " + player.SwitchUltimateType().String()
	case PowerupAbilityBerserker:
		player.SetAbilityType(AbilityBerserker)
		return "PIZZA FURY"
	case PowerupAbilityGlassCannon:
		player.SetAbilityType(AbilityGlassCannon)
		return "THIN CRUST"
	case PowerupAbilityInvincible:
		player.SetAbilityType(AbilityInvincible)
		return "BRICK OVEN"
	}
	return ""
}
