// Package kv provides the shared data structures of the key-value encoding
// layer: API versions, raw values with optional expiry, key modes and
// logical timestamps.
package kv

import (
	"github.com/tarantool/go-option"
)

// Version identifies the on-disk wire format of a store.
// It is selected once at store startup and never changes afterwards.
type Version int

const (
	// VersionV1 stores plain user values and keys verbatim.
	VersionV1 Version = iota + 1
	// VersionV1TTL appends an expiry timestamp to every value.
	VersionV1TTL
	// VersionV2 stores values with a meta-flag byte and keys in an
	// order-preserving encoding with an optional embedded timestamp.
	VersionV2
)

func (v Version) String() string {
	switch v {
	case VersionV1:
		return "V1"
	case VersionV1TTL:
		return "V1TTL"
	case VersionV2:
		return "V2"
	default:
		return "Unknown"
	}
}

// ParseVersion converts a configuration string into a Version.
func ParseVersion(s string) (Version, error) {
	switch s {
	case "V1", "v1":
		return VersionV1, nil
	case "V1TTL", "v1ttl":
		return VersionV1TTL, nil
	case "V2", "v2":
		return VersionV2, nil
	default:
		return 0, errUnknownVersion(s)
	}
}

// TimeStamp is the logical timestamp that VersionV2 embeds into encoded
// keys in descending order, so that for one user key the most recent
// timestamp sorts first.
type TimeStamp uint64

// RawValue is a user value together with its storage metadata.
type RawValue struct {
	// UserValue is the value supplied by the caller, free of any codec
	// metadata. After a decode it may alias the decoded buffer.
	UserValue []byte
	// ExpireTS is the unix timestamp in seconds after which the record is
	// logically deleted. Absent means the record never expires.
	ExpireTS option.Generic[uint64]
}

// ExpiredAt reports whether the value is logically deleted at the given
// unix timestamp in seconds.
func (v RawValue) ExpiredAt(now uint64) bool {
	ts, ok := v.ExpireTS.Get()

	return ok && ts != 0 && ts <= now
}

// KeyMode is the logical namespace a key belongs to, inferred from its
// leading bytes.
type KeyMode int

const (
	// KeyModeRaw marks keys of the raw namespace.
	KeyModeRaw KeyMode = iota + 1
	// KeyModeTransactional marks keys of the transactional namespace.
	KeyModeTransactional
	// KeyModeStructured marks keys of the structured namespace.
	//
	// A structured key is not necessarily written by the structured
	// layer; it merely matches that namespace's markers and is treated
	// as structured data for compatibility.
	KeyModeStructured
	// KeyModeUnknown marks keys outside every reserved namespace.
	KeyModeUnknown
)

func (m KeyMode) String() string {
	switch m {
	case KeyModeRaw:
		return "Raw"
	case KeyModeTransactional:
		return "Transactional"
	case KeyModeStructured:
		return "Structured"
	case KeyModeUnknown:
		return "Unknown"
	default:
		return "Unknown"
	}
}
