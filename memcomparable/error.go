package memcomparable

import (
	"errors"
	"fmt"
)

// ErrUnexpectedEOF is returned when the input ends before a complete group
// or integer could be read.
var ErrUnexpectedEOF = errors.New("unexpected end of encoded bytes")

// InvalidMarkerError is returned when a terminator marker declares a pad
// count outside the representable range.
type InvalidMarkerError struct {
	Marker byte
}

func (e InvalidMarkerError) Error() string {
	return fmt.Sprintf("invalid group marker 0x%02X: pad count %d exceeds group size %d",
		e.Marker, int(Marker)-int(e.Marker), GroupSize)
}

func errInvalidMarker(marker byte) error {
	return InvalidMarkerError{
		Marker: marker,
	}
}

// InvalidPaddingError is returned when a terminator group carries a nonzero
// byte inside its declared padding.
type InvalidPaddingError struct {
	Marker   byte
	PadCount int
}

func (e InvalidPaddingError) Error() string {
	return fmt.Sprintf("invalid group padding: marker 0x%02X declares %d padding bytes but padding is not zero",
		e.Marker, e.PadCount)
}

func errInvalidPadding(marker byte, padCount int) error {
	return InvalidPaddingError{
		Marker:   marker,
		PadCount: padCount,
	}
}
