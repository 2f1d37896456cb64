package core

import "math/rand/v2"

// RNG draws seeded board populations.
type RNG struct {
	r *rand.Rand
}

// NewRNG returns a PCG-backed RNG; equal seeds give equal boards.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Chance reports true with probability p. p is clamped to [0, 1].
func (r *RNG) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.r.Float64() < p
}

// FillDensity sets each element to true with probability density and returns
// how many were set.
func (r *RNG) FillDensity(buf []bool, density float64) int {
	n := 0
	for i := range buf {
		buf[i] = r.Chance(density)
		if buf[i] {
			n++
		}
	}
	return n
}
