// Package schedule generates deterministic compliance schedules: future
// calendar dates for recurring trainings and committee meetings, seeded per
// (client, title, year) so that regenerating a schedule always reproduces the
// same dates while unrelated titles never shift.
package schedule

import "math"

const (
	fnvOffsetBasis uint32 = 2166136261
	fnvPrime       uint32 = 16777619

	lcgMultiplier uint32 = 1664525
	lcgIncrement  uint32 = 1013904223
)

// HashSeed hashes text into a 32-bit seed using an FNV-1a style mix.
// The exact constants are load-bearing: schedules generated by earlier
// deployments must reproduce bit-for-bit, so do not swap this for a
// different hash.
func HashSeed(text string) uint32 {
	h := fnvOffsetBasis
	for _, r := range text {
		h ^= uint32(r)
		h *= fnvPrime
	}
	return h
}

// Rand is a linear congruential generator over 32-bit unsigned state.
// It is deliberately not math/rand: the update function and its constants
// must match prior schedule generations exactly.
type Rand struct {
	state uint32
}

// NewRand returns a Rand starting from the given seed.
func NewRand(seed uint32) *Rand {
	return &Rand{state: seed}
}

// Float64 advances the generator and returns the next value in [0, 1).
func (r *Rand) Float64() float64 {
	r.state = lcgMultiplier*r.state + lcgIncrement
	return float64(r.state) / (1 << 32)
}

// IntBetween returns the next value in [min, max], inclusive on both ends.
func (r *Rand) IntBetween(min, max int) int {
	return int(math.Floor(r.Float64()*float64(max-min+1))) + min
}
