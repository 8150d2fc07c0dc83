package dice

// Quickroll parses a single notation term, rolls every die in it once using
// src, and returns the total. It is the one-call form of Parse, RollAll and
// Total:
//
//	total, err := dice.Quickroll[uint32](dice.DefaultSource(), "3d6")
//
// The type parameter picks the arithmetic of the total: a "40d6" total can
// wrap for uint8 but not for uint32.
func Quickroll[V Rollable](src Source, notation string) (V, error) {
	d, err := Parse[V](notation)
	if err != nil {
		return 0, err
	}
	return d.RollAll(src).Total(), nil
}
