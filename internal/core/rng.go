package core

import "math/rand/v2"

// RNG wraps math/rand/v2 with deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// FillBinary fills the buffer with 0/1 values.
func (r *RNG) FillBinary(buf []uint8) {
	for i := range buf {
		buf[i] = uint8(r.r.IntN(2))
	}
}

// Scatter sets exactly n entries of buf to 1 and the rest to 0. n is clamped
// to [0, len(buf)].
func (r *RNG) Scatter(buf []uint8, n int) {
	if n < 0 {
		n = 0
	}
	if n > len(buf) {
		n = len(buf)
	}
	for i := range buf {
		buf[i] = 0
	}
	for _, idx := range r.r.Perm(len(buf))[:n] {
		buf[idx] = 1
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
