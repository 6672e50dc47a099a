package core

import (
	"math/rand/v2"
	"time"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// NewTimeRNG seeds from the wall clock. Sequences are not reproducible.
func NewTimeRNG() *RNG {
	return NewRNG(time.Now().UnixNano())
}

// Float64 returns a uniform value in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// FillUnit fills buf with uniform values in [0, 1).
func FillUnit(r *rand.Rand, buf []float64) {
	for i := range buf {
		buf[i] = r.Float64()
	}
}

// FillSigned fills buf with uniform values in [-1, 1).
func FillSigned(r *rand.Rand, buf []float64) {
	for i := range buf {
		buf[i] = r.Float64()*2 - 1
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
