package codec

import (
	"fmt"
)

// TruncatedValueError is returned when an encoded value is shorter than its
// layout requires.
type TruncatedValueError struct {
	Have int
	Need int
}

func (e TruncatedValueError) Error() string {
	return fmt.Sprintf("truncated value: %d bytes, need at least %d", e.Have, e.Need)
}

// ErrTruncatedValue returns a new TruncatedValueError.
func ErrTruncatedValue(have, need int) error {
	return TruncatedValueError{
		Have: have,
		Need: need,
	}
}

// UnsupportedFlagsError is returned when a value's meta-flag byte carries a
// reserved bit.
type UnsupportedFlagsError struct {
	Flags byte
}

func (e UnsupportedFlagsError) Error() string {
	return fmt.Sprintf("unsupported value meta flags 0b%08b", e.Flags)
}

// ErrUnsupportedFlags returns a new UnsupportedFlagsError.
func ErrUnsupportedFlags(flags byte) error {
	return UnsupportedFlagsError{
		Flags: flags,
	}
}

// TrailingDataError is returned when bytes remain after the logical end of
// an encoded key.
type TrailingDataError struct {
	Count int
}

func (e TrailingDataError) Error() string {
	return fmt.Sprintf("%d trailing bytes after encoded key", e.Count)
}

// ErrTrailingData returns a new TrailingDataError.
func ErrTrailingData(count int) error {
	return TrailingDataError{
		Count: count,
	}
}
