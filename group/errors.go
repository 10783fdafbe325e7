package group

import "errors"

var (
	// ErrMalformedEncoding is returned when an encoding has the wrong
	// length or carries flags the canonical format never produces.
	ErrMalformedEncoding = errors.New("malformed encoding")

	// ErrInvalidPoint is returned when decoded bytes do not describe an
	// element of the expected prime-order subgroup.
	ErrInvalidPoint = errors.New("invalid point")

	// ErrInvalidScalar is returned when an encoded scalar is not below the
	// group order.
	ErrInvalidScalar = errors.New("invalid scalar")
)
