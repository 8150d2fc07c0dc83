package dice

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// Parse builds a collection from a notation string such as "3d4": a dice
// count, the letter d and a side count, both nonempty runs of decimal
// digits. Whitespace is not accepted anywhere in the string.
//
// Parse handles a single term; to mix dice, parse each term separately and
// merge the results with Combine.
//
// Errors wrap ErrMalformedNotation, ErrZeroQuantity or ErrNumericOverflow
// and include the offending input.
func Parse[V Rollable](notation string) (*Dice[V], error) {
	count, sides, err := parseTerm[V](notation)
	if err != nil {
		return nil, err
	}
	return New(count, sides)
}

func parseTerm[V Rollable](term string) (int, V, error) {
	countSeg, sidesSeg, found := strings.Cut(term, "d")
	if !found {
		return 0, 0, fmt.Errorf("%q: missing %q separator: %w", term, "d", ErrMalformedNotation)
	}
	count, err := parseSegment(countSeg, strconv.IntSize-1)
	if err != nil {
		return 0, 0, fmt.Errorf("%q: count %q: %w", term, countSeg, err)
	}
	sides, err := parseSegment(sidesSeg, bitSize[V]())
	if err != nil {
		return 0, 0, fmt.Errorf("%q: sides %q: %w", term, sidesSeg, err)
	}
	if count == 0 || sides == 0 {
		return 0, 0, fmt.Errorf("%q: %w", term, ErrZeroQuantity)
	}
	return int(count), V(sides), nil
}

// parseSegment reads one digit run, distinguishing malformed text from
// numbers that are well formed but too wide for bitSize bits.
func parseSegment(seg string, bitSize int) (uint64, error) {
	n, err := strconv.ParseUint(seg, 10, bitSize)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, ErrNumericOverflow
		}
		return 0, ErrMalformedNotation
	}
	return n, nil
}

// bitSize reports the width of V in bits.
func bitSize[V Rollable]() int {
	return bits.Len64(uint64(Max[V]()))
}
