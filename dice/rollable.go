package dice

import rand "math/rand/v2"

// Rollable is the set of value types a die can produce. Any unsigned integer
// type qualifies, including defined types, so callers can roll directly for
// their own enumerations:
//
//	type Loot uint8
//
//	const (
//		Coins Loot = iota + 1
//		Gems
//		Relic
//	)
//
//	die, err := dice.NewDie(Relic)
type Rollable interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Source supplies the uniform draws behind every roll. *math/rand/v2.Rand
// satisfies it directly, so a seeded generator can be passed as-is:
//
//	src := rand.New(rand.NewPCG(1, 2))
//	total, err := dice.Quickroll[uint32](src, "3d6")
//
// Uint64N must return a uniform value in [0, n). Rolls never retain the
// source, so one Source may be shared across any number of dice.
type Source interface {
	Uint64N(n uint64) uint64
}

// Min returns the smallest value a roll of V can produce. Every die's faces
// start at this floor, and an unrolled die reads it until its first roll.
func Min[V Rollable]() V {
	return 1
}

// Max returns the largest value of V, which is also the widest side count a
// die of V can be built with.
func Max[V Rollable]() V {
	var zero V
	return ^zero
}

type globalSource struct{}

func (globalSource) Uint64N(n uint64) uint64 { return rand.Uint64N(n) }

// DefaultSource returns a Source backed by the shared math/rand/v2
// generator. Callers that need reproducible rolls should seed their own
// *rand.Rand instead.
func DefaultSource() Source {
	return globalSource{}
}
