package dice

// Die is a single die with a fixed number of sides. The zero value is not
// usable; construct one with NewDie.
type Die[V Rollable] struct {
	sides V
	value V
}

// NewDie returns a die with the given number of sides, showing Min[V]()
// until the first roll. Zero sides is rejected with ErrZeroQuantity.
func NewDie[V Rollable](sides V) (*Die[V], error) {
	if sides == 0 {
		return nil, ErrZeroQuantity
	}
	return &Die[V]{sides: sides, value: Min[V]()}, nil
}

// Roll draws a new face uniformly from [Min[V](), sides], stores it as the
// die's current value and returns it. Every call draws independently from
// src.
func (d *Die[V]) Roll(src Source) V {
	d.value = V(src.Uint64N(uint64(d.sides))) + Min[V]()
	return d.value
}

// Value returns the face currently showing: the result of the most recent
// Roll, or Min[V]() if the die has never been rolled.
func (d *Die[V]) Value() V {
	return d.value
}

// Sides returns the side count the die was constructed with.
func (d *Die[V]) Sides() V {
	return d.sides
}
