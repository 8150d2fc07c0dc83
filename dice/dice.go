// Package dice rolls dice described in standard tabletop notation such as
// "3d6": a count, the letter d and a side count. Dice are generic over the
// unsigned integer type they produce, and every roll draws from a
// caller-supplied Source, so seeded and crypto-backed randomness plug in the
// same way.
package dice

import (
	"strconv"
	"strings"
)

// Dice is an ordered collection of dice that are rolled and totalled
// together. Build one with New or Parse, or merge existing collections with
// Combine.
type Dice[V Rollable] struct {
	dice []Die[V]
}

// New returns a collection of count independent dice, each with the given
// number of sides. A count or side count of zero is rejected with
// ErrZeroQuantity. Memory grows linearly with count.
func New[V Rollable](count int, sides V) (*Dice[V], error) {
	if count <= 0 || sides == 0 {
		return nil, ErrZeroQuantity
	}
	d := &Dice[V]{dice: make([]Die[V], count)}
	for i := range d.dice {
		d.dice[i] = Die[V]{sides: sides, value: Min[V]()}
	}
	return d, nil
}

// RollAll rolls every die in the collection exactly once and returns the
// receiver so calls can be chained:
//
//	total := d.RollAll(src).Total()
//
// The collection is mutated in place; the return value is the same
// collection, not a copy.
func (d *Dice[V]) RollAll(src Source) *Dice[V] {
	for i := range d.dice {
		d.dice[i].Roll(src)
	}
	return d
}

// Total sums the current face of every die in V's arithmetic. Sums beyond
// V's range wrap the way V wraps; callers expecting large totals should roll
// for a wider type.
func (d *Dice[V]) Total() V {
	var total V
	for i := range d.dice {
		total += d.dice[i].value
	}
	return total
}

// Values returns the current face of each die in collection order.
func (d *Dice[V]) Values() []V {
	faces := make([]V, len(d.dice))
	for i := range d.dice {
		faces[i] = d.dice[i].value
	}
	return faces
}

// Len returns the number of dice in the collection.
func (d *Dice[V]) Len() int {
	return len(d.dice)
}

// Combine returns a new collection holding copies of the receiver's dice
// followed by copies of other's, preserving order and current faces. The
// result shares no state with either operand, so rolling one collection
// never disturbs another.
func (d *Dice[V]) Combine(other *Dice[V]) *Dice[V] {
	merged := make([]Die[V], 0, len(d.dice)+len(other.dice))
	merged = append(merged, d.dice...)
	merged = append(merged, other.dice...)
	return &Dice[V]{dice: merged}
}

// Notation renders the collection back in notation form, grouping
// consecutive dice with equal side counts: two d4s followed by a d20 read
// "2d4+1d20".
func (d *Dice[V]) Notation() string {
	var b strings.Builder
	run := 0
	for i := range d.dice {
		run++
		if i+1 < len(d.dice) && d.dice[i+1].sides == d.dice[i].sides {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('+')
		}
		b.WriteString(strconv.Itoa(run))
		b.WriteByte('d')
		b.WriteString(strconv.FormatUint(uint64(d.dice[i].sides), 10))
		run = 0
	}
	return b.String()
}

// String renders the collection's current total, mirroring what a player
// reports after rolling.
func (d *Dice[V]) String() string {
	return strconv.FormatUint(uint64(d.Total()), 10)
}

// Verbose renders the current face of every die separated by single spaces,
// e.g. "3 1 4" for three dice.
func (d *Dice[V]) Verbose() string {
	var b strings.Builder
	for i := range d.dice {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatUint(uint64(d.dice[i].value), 10))
	}
	return b.String()
}
