// Package randsource supplies the uniform draws that parameterize randomly
// generated curves. The default source is a PCG generator from math/rand/v2,
// seeded either deterministically for reproducible curves or from the
// system's cryptographic randomness.
package randsource

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	mrand "math/rand/v2"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// Source draws uniformly distributed float64 values from a PCG generator.
// A Source is not safe for concurrent use; wrap it in a Locked source when
// multiple goroutines share it.
type Source struct {
	rng *mrand.Rand
}

// New returns a Source seeded deterministically from the provided value.
// The two 64-bit words required by the PCG state are derived from the one
// seed so that all call sites get reproducible sequences.
func New(seed uint64) *Source {
	return &Source{rng: mrand.New(mrand.NewPCG(mix(seed), mix(seed+goldenRatio64)))}
}

// NewAuto returns a Source seeded from the system's cryptographic
// randomness. Each call produces an independently seeded generator.
func NewAuto() *Source {
	return New(trueRandom())
}

// Float64InRange returns a uniformly distributed value in [low, high).
// It panics if high <= low.
func (s *Source) Float64InRange(low float64, high float64) float64 {
	if high <= low {
		panic(fmt.Sprintf("randsource: invalid range [%v, %v)", low, high))
	}
	return low + s.rng.Float64()*(high-low)
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

func trueRandom() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		panic(fmt.Sprintf("cannot read system randomness: %v", err))
	}
	return binary.LittleEndian.Uint64(b[:])
}
