package core

import (
	"math"
	"testing"
)

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestDist(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 float64
		expected       float64
	}{
		{"same point", 5, 5, 5, 5, 0},
		{"horizontal", 0, 0, 3, 0, 3},
		{"vertical", 0, 0, 0, 4, 4},
		{"3-4-5 triangle", 0, 0, 3, 4, 5},
		{"negative coords", -3, -4, 0, 0, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := Dist(tc.x1, tc.y1, tc.x2, tc.y2)
			if math.Abs(result-tc.expected) > 1e-9 {
				t.Errorf("Dist = %f, expected %f", result, tc.expected)
			}
			if sq := DistSq(tc.x1, tc.y1, tc.x2, tc.y2); math.Abs(sq-tc.expected*tc.expected) > 1e-9 {
				t.Errorf("DistSq = %f, expected %f", sq, tc.expected*tc.expected)
			}
		})
	}
}

func TestAngleTo(t *testing.T) {
	tests := []struct {
		name     string
		x2, y2   float64
		expected float64
	}{
		{"east", 1, 0, 0},
		{"south", 0, 1, math.Pi / 2}, // y grows downward on the field
		{"west", -1, 0, math.Pi},
		{"north", 0, -1, -math.Pi / 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := AngleTo(0, 0, tc.x2, tc.y2)
			if math.Abs(result-tc.expected) > 1e-9 {
				t.Errorf("AngleTo = %f, expected %f", result, tc.expected)
			}
		})
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, expected float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{3 * math.Pi, math.Pi},
		{2 * math.Pi, 0},
		{-math.Pi / 2, -math.Pi / 2},
		{5 * math.Pi / 2, math.Pi / 2},
	}

	for _, tc := range tests {
		result := NormalizeAngle(tc.in)
		if math.Abs(result-tc.expected) > 1e-9 {
			t.Errorf("NormalizeAngle(%f) = %f, expected %f", tc.in, result, tc.expected)
		}
		if result > math.Pi || result <= -math.Pi {
			t.Errorf("NormalizeAngle(%f) = %f outside (-Pi, Pi]", tc.in, result)
		}
	}
}

func TestLerp(t *testing.T) {
	if Lerp(0, 10, 0.5) != 5 {
		t.Error("Lerp(0, 10, 0.5) should be 5")
	}
	if Lerp(10, 20, 0) != 10 {
		t.Error("Lerp(10, 20, 0) should be 10")
	}
	if Lerp(10, 20, 1) != 20 {
		t.Error("Lerp(10, 20, 1) should be 20")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min is broken")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max is broken")
	}
	if Abs(5) != 5 || Abs(-5) != 5 || Abs(0) != 0 {
		t.Error("Abs is broken")
	}
}
