package strobe

import "math/rand/v2"

// Rand is the source of randomness for wobble and rotation. *rand.Rand from
// math/rand/v2 satisfies it; pass a seeded one for reproducible runs.
type Rand interface {
	Float64() float64
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// defaultRand draws from the math/rand/v2 top-level generator.
var defaultRand Rand = globalRand{}

func orDefault(r Rand) Rand {
	if r == nil {
		return defaultRand
	}
	return r
}

// symmetric returns a uniform value in [-limit, +limit].
func symmetric(r Rand, limit float64) float64 {
	if limit == 0 {
		return 0
	}
	return (r.Float64()*2 - 1) * limit
}

// NewSeededRand returns a deterministic Rand for tests and recordings.
func NewSeededRand(seed uint64) Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
