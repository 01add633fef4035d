package core

import (
	"math"
	"testing"
)

func TestRandDeterminism(t *testing.T) {
	a := NewRand(42)
	b := NewRand(42)

	for i := 0; i < 1000; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("streams diverged at draw %d", i)
		}
	}
}

func TestRandReseedDiscardsState(t *testing.T) {
	r := NewRand(42)
	first := make([]uint64, 10)
	for i := range first {
		first[i] = r.Next()
	}

	r.Reseed(42)
	for i := range first {
		if got := r.Next(); got != first[i] {
			t.Fatalf("draw %d after reseed = %d, expected %d", i, got, first[i])
		}
	}

	if r.Seed() != 42 {
		t.Errorf("Seed() = %d, expected 42", r.Seed())
	}
}

func TestRandIntnBounds(t *testing.T) {
	r := NewRand(7)
	for i := 0; i < 1000; i++ {
		v := r.Intn(13)
		if v < 0 || v >= 13 {
			t.Fatalf("Intn(13) = %d out of range", v)
		}
	}

	if r.Intn(0) != 0 {
		t.Error("Intn(0) should return 0")
	}
	if r.Intn(-5) != 0 {
		t.Error("Intn(-5) should return 0")
	}
}

func TestRandIntBetween(t *testing.T) {
	r := NewRand(7)
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		v := r.IntBetween(50, 865)
		if v < 50 || v > 865 {
			t.Fatalf("IntBetween(50, 865) = %d out of range", v)
		}
		seen[v] = true
	}
	if len(seen) < 100 {
		t.Errorf("IntBetween produced only %d distinct values over 1000 draws", len(seen))
	}
}

func TestRandFloatRange(t *testing.T) {
	r := NewRand(99)
	for i := 0; i < 1000; i++ {
		f := r.Float()
		if f < 0 || f >= 1 {
			t.Fatalf("Float() = %f out of [0,1)", f)
		}
		u := r.Uniform(2.5, 4.0)
		if u < 2.5 || u >= 4.0 {
			t.Fatalf("Uniform(2.5, 4.0) = %f out of range", u)
		}
		a := r.Angle()
		if a < 0 || a >= 2*math.Pi {
			t.Fatalf("Angle() = %f out of [0, 2Pi)", a)
		}
	}
}

func TestRandWeightedIndex(t *testing.T) {
	r := NewRand(5)
	weights := []int{5, 1, 1, 1, 1}

	counts := make([]int, len(weights))
	for i := 0; i < 9000; i++ {
		idx := r.WeightedIndex(weights)
		if idx < 0 || idx >= len(weights) {
			t.Fatalf("WeightedIndex out of range: %d", idx)
		}
		counts[idx]++
	}

	// Index 0 has weight 5 of 9; it should dominate clearly.
	if counts[0] <= counts[1]*2 {
		t.Errorf("weighted pick not skewed: counts=%v", counts)
	}

	// Degenerate weights fall back to a uniform pick.
	idx := r.WeightedIndex([]int{0, 0, 0})
	if idx < 0 || idx > 2 {
		t.Errorf("WeightedIndex with zero weights = %d", idx)
	}
}

func TestRandStateRoundTrip(t *testing.T) {
	r := NewRand(42)
	for i := 0; i < 17; i++ {
		r.Next()
	}

	saved := r.State()
	want := []uint64{r.Next(), r.Next(), r.Next()}

	r.SetState(saved)
	for i, w := range want {
		if got := r.Next(); got != w {
			t.Fatalf("draw %d after SetState = %d, expected %d", i, got, w)
		}
	}
}
