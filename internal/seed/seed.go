// Package seed provides cell fill generators used to populate a board.
package seed

import (
	"math/rand/v2"

	"github.com/aquilax/go-perlin"
)

// Generator decides whether the cell at (x, y) starts alive.
type Generator func(x, y int) bool

// NewRNG creates a deterministic PCG source for the provided seed.
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// Uniform returns a generator where every cell is alive independently
// with probability p.
func Uniform(r *rand.Rand, p float64) Generator {
	return func(int, int) bool {
		return r.Float64() < p
	}
}

// Noise parameters for Perlin fills.
const (
	noiseAlpha  = 2.0
	noiseBeta   = 2.0
	noiseOctave = 3
)

// Perlin returns a generator that makes cells alive where a 2D Perlin field,
// sampled every scale cells, rises above threshold. This yields clustered
// "islands" rather than uniform salt-and-pepper noise.
func Perlin(seed int64, scale, threshold float64) Generator {
	if scale <= 0 {
		scale = 8
	}
	p := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctave, seed)
	return func(x, y int) bool {
		return p.Noise2D(float64(x)/scale, float64(y)/scale) > threshold
	}
}
