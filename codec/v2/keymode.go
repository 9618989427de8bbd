package v2

import (
	"github.com/rawkv/apicodec/kv"
)

// Reserved leading bytes multiplexing the logical namespaces inside the one
// physically sorted keyspace.
const (
	// RawKeyPrefix leads every key of the raw namespace.
	RawKeyPrefix byte = 'r'
	// TxnKeyPrefix leads every key of the transactional namespace.
	TxnKeyPrefix byte = 'x'
	// TableKeyPrefix is the structured-table marker.
	TableKeyPrefix byte = 't'
	// MetaKeyPrefix is the structured-meta marker.
	MetaKeyPrefix byte = 'm'
)

// ParseKeyMode implements codec.Codec. The table and meta sub-namespaces
// are both reported as structured: callers treat them as one compatibility
// domain.
func (Codec) ParseKeyMode(key []byte) kv.KeyMode {
	if len(key) == 0 {
		return kv.KeyModeUnknown
	}

	switch key[0] {
	case RawKeyPrefix:
		return kv.KeyModeRaw
	case TxnKeyPrefix:
		return kv.KeyModeTransactional
	case TableKeyPrefix, MetaKeyPrefix:
		return kv.KeyModeStructured
	default:
		return kv.KeyModeUnknown
	}
}

// ParseRangeMode implements codec.Codec. A range classifies as a single
// namespace only when both bounds are non-empty and either share their
// first byte, or the end bound is exactly the one byte following the start
// bound's first byte (the whole-namespace range). Everything else,
// including an absent bound, is unknown.
func (c Codec) ParseRangeMode(start, end []byte) kv.KeyMode {
	if len(start) == 0 || len(end) == 0 {
		return kv.KeyModeUnknown
	}

	if start[0] == end[0] || (len(end) == 1 && end[0] == start[0]+1) {
		return c.ParseKeyMode(start[:1])
	}

	return kv.KeyModeUnknown
}
