package dice

import "errors"

// Parse and construction failures wrap one of these sentinels; match them
// with errors.Is.
var (
	// ErrMalformedNotation reports a string that does not follow the
	// count-d-sides form: a missing separator, an empty segment, or
	// characters other than decimal digits around the separator.
	ErrMalformedNotation = errors.New("malformed dice notation")

	// ErrZeroQuantity reports a dice count or side count of zero.
	ErrZeroQuantity = errors.New("dice count and sides must be at least 1")

	// ErrNumericOverflow reports a count or side count whose digits are
	// valid but exceed the range of the value type being rolled for.
	ErrNumericOverflow = errors.New("number out of range for the value type")
)
