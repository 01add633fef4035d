package doughfall

import (
	"math"

	"github.com/vovakirdan/doughfall/internal/core"
)

// BulletKind distinguishes the player's shot variants. Enemy and boss
// bullets are always KindNormal.
type BulletKind int

const (
	KindNormal BulletKind = iota
	KindLaser             // wide piercing beam, double speed
	KindBurst             // large slow slug
	KindRapid             // tiny fast pellet, half damage
	KindHoming            // slower seeker that curves toward enemies
)

// Baseline bullet geometry in field units.
const (
	defaultBulletSize       = 8.0
	defaultBulletLifetimeMS = 10000.0
	playerBulletSpeed       = 10.0
	playerBulletSize        = 6.0
)

// Bullet is a single projectile in field coordinates. Position advances by
// the velocity vector once per tick; only the lifetime accumulates dt.
type Bullet struct {
	ID       uint64 // assigned by the game, used for graze dedup
	X, Y     float64
	Angle    float64
	Speed    float64
	VX, VY   float64
	Size     float64
	Damage   float64
	Color    core.Color
	Homing   bool
	Kind     BulletKind
	AgeMS    float64
	MaxAgeMS float64
}

// newBullet creates a bullet travelling at the given angle and speed.
func newBullet(x, y, angle, speed float64, c core.Color, damage float64, homing bool) *Bullet {
	return &Bullet{
		X:        x,
		Y:        y,
		Angle:    angle,
		Speed:    speed,
		VX:       math.Cos(angle) * speed,
		VY:       math.Sin(angle) * speed,
		Size:     defaultBulletSize,
		Damage:   damage,
		Color:    c,
		Homing:   homing,
		MaxAgeMS: defaultBulletLifetimeMS,
	}
}

// newPlayerBullet creates a player shot of the given kind. Angle Pi*1.5
// points straight up the field.
func newPlayerBullet(x, y, angle, damage float64, kind BulletKind) *Bullet {
	b := newBullet(x, y, angle, playerBulletSpeed, core.ColorCyan, damage, false)
	b.Size = playerBulletSize
	b.Kind = kind

	switch kind {
	case KindLaser:
		b.Size = 60
		b.setSpeed(playerBulletSpeed * 2)
		b.Color = core.ColorRed
	case KindBurst:
		b.Size = 10
		b.Color = core.ColorOrange
	case KindRapid:
		b.Size = 4
		b.Damage *= 0.5
	case KindHoming:
		b.Homing = true
		b.Color = core.ColorGreen
		b.setSpeed(playerBulletSpeed * 0.8)
	}
	return b
}

// setSpeed rescales the velocity vector keeping the current angle.
func (b *Bullet) setSpeed(speed float64) {
	b.Speed = speed
	b.VX = math.Cos(b.Angle) * speed
	b.VY = math.Sin(b.Angle) * speed
}

// Update advances the bullet one tick. Homing bullets steer toward the
// target by a small angular correction before moving.
func (b *Bullet) Update(dtMS float64, targetX, targetY float64, hasTarget bool) {
	b.AgeMS += dtMS

	if b.Homing && hasTarget {
		diff := core.NormalizeAngle(core.AngleTo(b.X, b.Y, targetX, targetY) - b.Angle)
		b.Angle += diff * 0.02
		b.VX = math.Cos(b.Angle) * b.Speed
		b.VY = math.Sin(b.Angle) * b.Speed
	}

	b.X += b.VX
	b.Y += b.VY
}

// OffField reports whether the bullet left the field (with a margin) or
// outlived its maximum age.
func (b *Bullet) OffField(fieldW, fieldH float64) bool {
	const margin = 50.0
	return b.X < -margin || b.X > fieldW+margin ||
		b.Y < -margin || b.Y > fieldH+margin ||
		b.AgeMS > b.MaxAgeMS
}
