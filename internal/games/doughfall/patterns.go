package doughfall

import (
	"math"

	"github.com/vovakirdan/doughfall/internal/core"
)

// Bullet pattern generators shared by enemies and bosses. All of them
// return freshly allocated bullets with no ID; the game assigns IDs when
// the bullets enter the field.

// circlePattern emits n bullets evenly spaced around a full circle.
func circlePattern(x, y float64, n int, speed float64, c core.Color, offset, damage float64) []*Bullet {
	bullets := make([]*Bullet, 0, n)
	step := 2 * math.Pi / float64(n)
	for i := 0; i < n; i++ {
		angle := float64(i)*step + offset
		bullets = append(bullets, newBullet(x, y, angle, speed, c, damage, false))
	}
	return bullets
}

// spiralPattern emits n bullets along an 8-arm spiral. Later bullets are
// slightly faster so the arms stretch as they travel.
func spiralPattern(x, y float64, n int, speed float64, c core.Color, rotation, damage float64) []*Bullet {
	bullets := make([]*Bullet, 0, n)
	step := 2 * math.Pi / 8
	for i := 0; i < n; i++ {
		angle := float64(i)*step/2.5 + rotation
		bullets = append(bullets, newBullet(x, y, angle, speed+float64(i)*0.1, c, damage, false))
	}
	return bullets
}

// aimedSpread emits n bullets fanned around the direction to the target.
func aimedSpread(x, y, targetX, targetY float64, n int, spread, speed float64, c core.Color, damage float64) []*Bullet {
	bullets := make([]*Bullet, 0, n)
	base := core.AngleTo(x, y, targetX, targetY)
	for i := 0; i < n; i++ {
		offset := float64(i-n/2) * spread
		bullets = append(bullets, newBullet(x, y, base+offset, speed, c, damage, false))
	}
	return bullets
}

// wavePattern emits n bullets wobbling around a base direction.
func wavePattern(x, y, direction float64, n int, speed float64, c core.Color, damage float64) []*Bullet {
	bullets := make([]*Bullet, 0, n)
	for i := 0; i < n; i++ {
		angle := direction + math.Sin(float64(i)*0.5)*0.5
		bullets = append(bullets, newBullet(x, y, angle, speed, c, damage, false))
	}
	return bullets
}

// randomBurst emits n bullets with random angle and speed drawn from the
// shared generator, so bursts replay identically for a given seed.
func randomBurst(x, y float64, n int, minSpeed, maxSpeed float64, c core.Color, rng *core.Rand, damage float64) []*Bullet {
	bullets := make([]*Bullet, 0, n)
	for i := 0; i < n; i++ {
		angle := rng.Angle()
		speed := rng.Uniform(minSpeed, maxSpeed)
		bullets = append(bullets, newBullet(x, y, angle, speed, c, damage, false))
	}
	return bullets
}

// homingBullets emits n homing bullets evenly spaced around a circle.
func homingBullets(x, y float64, n int, speed float64, c core.Color, damage float64) []*Bullet {
	bullets := make([]*Bullet, 0, n)
	step := 2 * math.Pi / float64(n)
	for i := 0; i < n; i++ {
		bullets = append(bullets, newBullet(x, y, float64(i)*step, speed, c, damage, true))
	}
	return bullets
}

// crossPattern emits bullets along the four cardinal directions, thickness
// bullets per arm with a slight angular fan.
func crossPattern(x, y, speed float64, c core.Color, thickness int, damage float64) []*Bullet {
	bullets := make([]*Bullet, 0, thickness*4)
	for i := 0; i < thickness; i++ {
		offset := float64(i-thickness/2) * 0.1
		bullets = append(bullets,
			newBullet(x, y, 0+offset, speed, c, damage, false),
			newBullet(x, y, math.Pi+offset, speed, c, damage, false),
			newBullet(x, y, math.Pi/2+offset, speed, c, damage, false),
			newBullet(x, y, -math.Pi/2+offset, speed, c, damage, false),
		)
	}
	return bullets
}

// doubleSpiral emits two interleaved spiral arms offset by Pi.
func doubleSpiral(x, y float64, n int, speed float64, c1, c2 core.Color, rotation, damage float64) []*Bullet {
	bullets := make([]*Bullet, 0, n*2)
	for i := 0; i < n; i++ {
		angle1 := float64(i)*0.3 + rotation
		angle2 := angle1 + math.Pi
		bullets = append(bullets,
			newBullet(x, y, angle1, speed, c1, damage, false),
			newBullet(x, y, angle2, speed, c2, damage, false),
		)
	}
	return bullets
}
