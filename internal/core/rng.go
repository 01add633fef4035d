package core

import "math"

// Rand is a deterministic pseudo-random number generator (64-bit LCG).
// Every stochastic decision in the simulation must draw from a single Rand
// instance so a recorded seed reproduces the entire run: enemy types, boss
// selection, spawn positions, and attack randomness.
//
// The internal state is exposed via State/SetState for snapshots.
type Rand struct {
	seed  int64
	state uint64
}

// NewRand creates a generator seeded with the given value.
func NewRand(seed int64) *Rand {
	r := &Rand{}
	r.Reseed(seed)
	return r
}

// Seed returns the seed this generator was last seeded with.
func (r *Rand) Seed() int64 {
	return r.seed
}

// Reseed resets the stream to the given seed, discarding prior state.
func (r *Rand) Reseed(seed int64) {
	r.seed = seed
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	r.state = s
}

// State returns the raw generator state for snapshotting.
func (r *Rand) State() uint64 {
	return r.state
}

// SetState restores the raw generator state from a snapshot.
func (r *Rand) SetState(state uint64) {
	if state == 0 {
		state = 1
	}
	r.state = state
}

// Next generates the next random uint64.
func (r *Rand) Next() uint64 {
	// LCG parameters (same as MINSTD)
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a random int in [0, n). Returns 0 for n <= 0.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n)) //#nosec G115 -- n is always positive
}

// IntBetween returns a random int in [a, b] inclusive.
// Passing a > b is a programming error; the arguments are swapped to keep
// the call total.
func (r *Rand) IntBetween(a, b int) int {
	if a > b {
		a, b = b, a
	}
	return a + r.Intn(b-a+1)
}

// Float returns a random float64 in [0, 1).
func (r *Rand) Float() float64 {
	// Use the high 53 bits for a uniform mantissa.
	return float64(r.Next()>>11) / (1 << 53)
}

// Uniform returns a random float64 in [min, max).
func (r *Rand) Uniform(min, max float64) float64 {
	return min + r.Float()*(max-min)
}

// Angle returns a random angle in [0, 2*Pi).
func (r *Rand) Angle() float64 {
	return r.Float() * 2 * math.Pi
}

// WeightedIndex picks an index in [0, len(weights)) with probability
// proportional to its weight. Zero or negative total weight falls back to a
// uniform pick.
func (r *Rand) WeightedIndex(weights []int) int {
	total := 0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return r.Intn(len(weights))
	}
	pick := r.Intn(total)
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if pick < w {
			return i
		}
		pick -= w
	}
	return len(weights) - 1
}
