// Package rng holds the random sources shared by the wheel and the confetti.
package rng

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// Source is the only randomness the simulation consumes.
type Source interface {
	Float64() float64 // [0, 1)
}

// Default returns a PCG source seeded from crypto/rand, for interactive play.
func Default() Source {
	var buf [16]byte
	if _, err := cryptoRand.Read(buf[:]); err != nil {
		return &seeded{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
	}
	return &seeded{r: rand.New(rand.NewPCG(
		binary.BigEndian.Uint64(buf[:8]),
		binary.BigEndian.Uint64(buf[8:]),
	))}
}

// Replicable source for tests and recorded sessions.
type seeded struct{ r *rand.Rand }

// NewSeeded returns a deterministic Source. The same seed always yields the
// same sequence.
func NewSeeded(seed uint64) Source {
	return &seeded{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seeded) Float64() float64 { return s.r.Float64() }

// Range draws uniformly from [lo, hi).
func Range(src Source, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}

// Chance reports true with probability p.
func Chance(src Source, p float64) bool {
	return src.Float64() < p
}

// IntN draws uniformly from [0, n). n <= 0 yields 0.
func IntN(src Source, n int) int {
	if n <= 0 {
		return 0
	}
	i := int(src.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}
