// Package entropy provides uniform random draws for the simulation.
// A Source is injected into every stochastic component so that a season
// replays bit-for-bit from the same seed.
package entropy

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
)

// Source produces uniform float64 values in [0, 1).
type Source interface {
	Float() float64
}

// Seeded is a deterministic Source backed by math/rand.
type Seeded struct {
	rng *rand.Rand
}

// NewSeeded creates a deterministic Source. The same seed always yields
// the same draw sequence.
func NewSeeded(seed int64) *Seeded {
	return &Seeded{rng: rand.New(rand.NewSource(seed))}
}

// Float returns the next draw in [0, 1).
func (s *Seeded) Float() float64 {
	return s.rng.Float64()
}

// Crypto is a Source backed by crypto/rand, for unseeded play.
type Crypto struct{}

// Float returns a uniform draw in [0, 1).
func (Crypto) Float() float64 {
	return cryptoRandFloat()
}

func cryptoRandFloat() float64 {
	var buf [8]byte
	_, err := crand.Read(buf[:])
	if err != nil {
		// This should never happen but return 0.5 as a safe default.
		return 0.5
	}
	// Use only 53 bits for a uniform float64 in [0, 1).
	n := binary.LittleEndian.Uint64(buf[:]) >> 11
	return float64(n) / float64(1<<53)
}
