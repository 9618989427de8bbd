// Package codec defines the interface that every API-version codec
// implements. It provides the version-agnostic surface for value encoding,
// key encoding and key-mode classification.
package codec

import (
	"github.com/tarantool/go-option"

	"github.com/rawkv/apicodec/kv"
)

// Codec is the set of pure encoding operations bound to one API version.
// Implementations are stateless and safe for unrestricted concurrent use.
type Codec interface {
	// Version returns the wire format this codec implements.
	Version() kv.Version

	// EncodeValue encodes a value and its metadata into the on-disk form.
	// Encoding a value whose expiry the version cannot represent is a
	// caller contract violation and panics.
	EncodeValue(value kv.RawValue) []byte

	// DecodeValue parses the on-disk form of a value. The returned
	// UserValue aliases data; callers that need an independent copy must
	// make one.
	DecodeValue(data []byte) (kv.RawValue, error)

	// EncodeKey encodes a user key, and under VersionV2 an optional
	// logical timestamp, into a sortable key. The encoded bytes order as
	// (user key ascending, timestamp descending).
	EncodeKey(userKey []byte, ts option.Generic[kv.TimeStamp]) []byte

	// DecodeKey reverses EncodeKey. withTS tells the decoder whether an
	// embedded timestamp is expected; versions that never embed one
	// ignore it.
	DecodeKey(encodedKey []byte, withTS bool) ([]byte, option.Generic[kv.TimeStamp], error)

	// ParseKeyMode infers the logical namespace of a key from its
	// prefix. It is safe to pass either a user key or an encoded key.
	ParseKeyMode(key []byte) kv.KeyMode

	// ParseRangeMode classifies the half-open range [start, end). A nil
	// or empty bound, or bounds spanning two namespaces, classify as
	// KeyModeUnknown.
	ParseRangeMode(start, end []byte) kv.KeyMode
}
