package codec

import "errors"

var (
	// ErrTooLarge is returned when a declared size cannot fit the remaining input
	// or exceeds a configured limit. Nothing is allocated for it.
	ErrTooLarge = errors.New("codec: declared size too large")

	// ErrShort is returned when the input ends in the middle of a value.
	ErrShort = errors.New("codec: unexpected end of input")

	// ErrMalformed is returned for input that is complete but invalid.
	ErrMalformed = errors.New("codec: malformed input")
)
