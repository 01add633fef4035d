package doughfall

import (
	"math"

	"github.com/vovakirdan/doughfall/internal/core"
)

// Clone is a temporary copy of the player spawned by the clone ultimate.
// Clones trail the player and autofire at the nearest enemy until they
// expire.
type Clone struct {
	X, Y         float64
	Size         float64
	AgeMS        float64
	LifetimeMS   float64
	ShootTimerMS float64
	CooldownMS   float64
}

func newClone(x, y, size float64) *Clone {
	return &Clone{
		X:          x,
		Y:          y,
		Size:       size,
		LifetimeMS: 8000,
		CooldownMS: 100,
	}
}

// Update ages the clone and reports whether it is still alive.
func (c *Clone) Update(dtMS float64) bool {
	c.AgeMS += dtMS
	if c.AgeMS > c.LifetimeMS {
		return false
	}
	c.ShootTimerMS += dtMS
	return true
}

// Follow eases the clone toward the player, keeping its spawn offset
// shrinking over time.
func (c *Clone) Follow(playerX, playerY float64) {
	c.X = playerX + (c.X-playerX)*0.95
	c.Y = playerY + (c.Y-playerY)*0.95
}

// Shoot fires one bullet at the nearest enemy, or straight up when the
// field is clear. Clone shots use the unmodified base damage.
func (c *Clone) Shoot(enemies []*Enemy, damage float64) []*Bullet {
	if c.ShootTimerMS < c.CooldownMS {
		return nil
	}
	c.ShootTimerMS = 0

	var nearest *Enemy
	minDist := math.Inf(1)
	for _, e := range enemies {
		d := core.Dist(c.X, c.Y, e.X, e.Y)
		if d < minDist {
			minDist = d
			nearest = e
		}
	}

	angle := up
	if nearest != nil {
		angle = core.AngleTo(c.X, c.Y, nearest.X, nearest.Y)
	}
	return []*Bullet{newPlayerBullet(c.X, c.Y, angle, damage, KindNormal)}
}
