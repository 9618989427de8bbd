// Package memcomparable provides order-preserving byte encodings: unsigned
// lexicographic comparison of the encoded form reproduces the logical
// ordering of the original values.
//
// Byte slices are encoded in groups of 8. Every full non-final group is
// followed by the marker 0xFF; the final group is right-padded with zero
// bytes and followed by the marker 0xFF - pad_count. An empty slice and a
// slice whose length is an exact nonzero multiple of 8 both produce a
// terminator group of 8 padding bytes, so no encoded slice is ever a byte
// prefix of another slice's encoding.
package memcomparable

import (
	"encoding/binary"
)

const (
	// GroupSize is the number of data bytes per encoded group.
	GroupSize = 8
	// Marker follows every full, non-terminal group.
	Marker byte = 0xFF
	// Uint64Len is the encoded size of a 64-bit integer.
	Uint64Len = 8
)

var zeroPadding [GroupSize]byte

// EncodedBytesLen returns the encoded size of a byte slice of length n.
func EncodedBytesLen(n int) int {
	return (n/GroupSize + 1) * (GroupSize + 1)
}

// EncodeBytes appends the order-preserving group encoding of data to dst
// and returns the extended buffer.
func EncodeBytes(dst, data []byte) []byte {
	for i := 0; i <= len(data); i += GroupSize {
		remain := len(data) - i
		if remain >= GroupSize {
			dst = append(dst, data[i:i+GroupSize]...)
			dst = append(dst, Marker)

			continue
		}

		pad := GroupSize - remain
		dst = append(dst, data[i:]...)
		dst = append(dst, zeroPadding[:pad]...)
		dst = append(dst, Marker-byte(pad))
	}

	return dst
}

// DecodeBytes reverses EncodeBytes. It returns the decoded slice and the
// input bytes remaining after the terminator group.
//
// Malformed input is reported as ErrUnexpectedEOF, InvalidMarkerError or
// InvalidPaddingError; decoding never panics.
func DecodeBytes(data []byte) (value []byte, rest []byte, err error) {
	value = make([]byte, 0, len(data)/(GroupSize+1)*GroupSize)

	for {
		if len(data) < GroupSize+1 {
			return nil, nil, ErrUnexpectedEOF
		}

		group, marker := data[:GroupSize], data[GroupSize]
		data = data[GroupSize+1:]

		if marker == Marker {
			value = append(value, group...)

			continue
		}

		pad := int(Marker) - int(marker)
		if pad > GroupSize {
			return nil, nil, errInvalidMarker(marker)
		}

		for _, b := range group[GroupSize-pad:] {
			if b != 0 {
				return nil, nil, errInvalidPadding(marker, pad)
			}
		}

		return append(value, group[:GroupSize-pad]...), data, nil
	}
}

// EncodeUint64Desc appends the descending encoding of v to dst: the
// big-endian ones' complement, so that larger values sort first.
func EncodeUint64Desc(dst []byte, v uint64) []byte {
	return binary.BigEndian.AppendUint64(dst, ^v)
}

// DecodeUint64Desc reverses EncodeUint64Desc and returns the remaining
// input bytes.
func DecodeUint64Desc(data []byte) (v uint64, rest []byte, err error) {
	if len(data) < Uint64Len {
		return 0, nil, ErrUnexpectedEOF
	}

	return ^binary.BigEndian.Uint64(data[:Uint64Len]), data[Uint64Len:], nil
}
