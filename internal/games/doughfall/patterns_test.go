package doughfall

import (
	"math"
	"testing"

	"github.com/vovakirdan/doughfall/internal/core"
)

func TestCirclePattern(t *testing.T) {
	bullets := circlePattern(100, 100, 12, 5, core.ColorRed, 0, 10)
	if len(bullets) != 12 {
		t.Fatalf("Expected 12 bullets, got %d", len(bullets))
	}

	step := 2 * math.Pi / 12
	for i, b := range bullets {
		want := float64(i) * step
		if math.Abs(b.Angle-want) > 1e-9 {
			t.Errorf("Bullet %d angle = %.4f, expected %.4f", i, b.Angle, want)
		}
	}
}

func TestCirclePatternOffset(t *testing.T) {
	plain := circlePattern(0, 0, 8, 5, core.ColorRed, 0, 10)
	rotated := circlePattern(0, 0, 8, 5, core.ColorRed, 0.5, 10)

	for i := range plain {
		if math.Abs(rotated[i].Angle-plain[i].Angle-0.5) > 1e-9 {
			t.Errorf("Bullet %d: rotation offset not applied", i)
		}
	}
}

func TestAimedSpreadCentersOnTarget(t *testing.T) {
	bullets := aimedSpread(100, 100, 100, 500, 3, 0.2, 5, core.ColorRed, 10)
	if len(bullets) != 3 {
		t.Fatalf("Expected 3 bullets, got %d", len(bullets))
	}

	// Middle bullet flies straight at the target, which is straight down.
	if math.Abs(bullets[1].Angle-math.Pi/2) > 1e-9 {
		t.Errorf("Center bullet angle = %.4f, expected %.4f", bullets[1].Angle, math.Pi/2)
	}
	if math.Abs(bullets[0].Angle-(math.Pi/2-0.2)) > 1e-9 {
		t.Errorf("Left bullet should fan out by the spread step")
	}
}

func TestSpiralPatternSpeedRamp(t *testing.T) {
	bullets := spiralPattern(100, 100, 15, 5, core.ColorOrange, 0, 10)
	if len(bullets) != 15 {
		t.Fatalf("Expected 15 bullets, got %d", len(bullets))
	}
	for i := 1; i < len(bullets); i++ {
		if bullets[i].Speed <= bullets[i-1].Speed {
			t.Error("Spiral bullets should get progressively faster")
			break
		}
	}
}

func TestCrossPattern(t *testing.T) {
	bullets := crossPattern(100, 100, 5, core.ColorRed, 3, 10)
	if len(bullets) != 12 {
		t.Fatalf("Cross with thickness 3 should emit 12 bullets, got %d", len(bullets))
	}
}

func TestDoubleSpiralArmsOppose(t *testing.T) {
	bullets := doubleSpiral(100, 100, 10, 5, core.ColorRed, core.ColorCyan, 0, 10)
	if len(bullets) != 20 {
		t.Fatalf("Expected 20 bullets, got %d", len(bullets))
	}
	for i := 0; i < len(bullets); i += 2 {
		if math.Abs(bullets[i+1].Angle-bullets[i].Angle-math.Pi) > 1e-9 {
			t.Errorf("Pair %d: arms should be offset by pi", i/2)
		}
	}
}

func TestHomingBulletsFlagged(t *testing.T) {
	bullets := homingBullets(100, 100, 4, 3, core.ColorGreen, 10)
	if len(bullets) != 4 {
		t.Fatalf("Expected 4 bullets, got %d", len(bullets))
	}
	for _, b := range bullets {
		if !b.Homing {
			t.Error("All bullets from homingBullets should home")
		}
	}
}

func TestRandomBurstReplaysForSeed(t *testing.T) {
	b1 := randomBurst(100, 100, 10, 2, 6, core.ColorRed, core.NewRand(42), 10)
	b2 := randomBurst(100, 100, 10, 2, 6, core.ColorRed, core.NewRand(42), 10)

	for i := range b1 {
		if b1[i].Angle != b2[i].Angle || b1[i].Speed != b2[i].Speed {
			t.Fatalf("Bullet %d differs between identical seeds", i)
		}
	}
	for _, b := range b1 {
		if b.Speed < 2 || b.Speed > 6 {
			t.Errorf("Burst speed %.2f outside [2, 6]", b.Speed)
		}
	}
}

func TestPatternsLeaveIDsUnset(t *testing.T) {
	bullets := circlePattern(0, 0, 4, 5, core.ColorRed, 0, 10)
	for _, b := range bullets {
		if b.ID != 0 {
			t.Error("Pattern generators must not assign bullet IDs")
		}
	}
}
