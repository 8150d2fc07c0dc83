// Package randutil centralises how the binaries obtain randomness: seeded
// math/rand/v2 generators for reproducible runs and a crypto-backed source
// otherwise.
package randutil

import (
	crand "crypto/rand"
	"encoding/binary"
	rand "math/rand/v2"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// The helper centralises how we derive the two 64-bit seeds required by rand/v2
// so that all call sites get reproducible sequences.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// Crypto returns a source whose draws come from crypto/rand, for runs where
// no seed was requested and rolls must not be predictable.
func Crypto() CryptoSource {
	return CryptoSource{}
}

// CryptoSource draws uniform values from the operating system's entropy
// pool. It is stateless and safe for concurrent use.
type CryptoSource struct{}

// Uint64N returns a uniform value in [0, n). It panics if n is 0, matching
// math/rand/v2, or if the entropy pool cannot be read.
func (CryptoSource) Uint64N(n uint64) uint64 {
	if n == 0 {
		panic("randutil: Uint64N called with n == 0")
	}
	// Draws at or above the largest multiple of n are rejected so every
	// residue stays equally likely.
	cutoff := (^uint64(0) / n) * n
	var buf [8]byte
	for {
		if _, err := crand.Read(buf[:]); err != nil {
			panic("failed to generate random bytes: " + err.Error())
		}
		if v := binary.BigEndian.Uint64(buf[:]); v < cutoff {
			return v % n
		}
	}
}
