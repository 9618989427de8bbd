package kv

import (
	"fmt"
)

// UnknownVersionError is returned when a version string does not name any
// supported wire format.
type UnknownVersionError struct {
	Input string
}

func (e UnknownVersionError) Error() string {
	return fmt.Sprintf("unknown API version %q", e.Input)
}

func errUnknownVersion(input string) error {
	return UnknownVersionError{
		Input: input,
	}
}
