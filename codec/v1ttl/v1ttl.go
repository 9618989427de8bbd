// Package v1ttl implements the V1TTL wire format: every value carries a
// trailing 8-byte big-endian expiry timestamp, where zero means the record
// never expires. Keys are stored verbatim, as in V1.
package v1ttl

import (
	"encoding/binary"

	"github.com/tarantool/go-option"

	"github.com/rawkv/apicodec/codec"
	"github.com/rawkv/apicodec/kv"
)

const expireTSLen = 8

// Codec is the V1TTL codec.
type Codec struct{}

// New creates a new V1TTL codec.
func New() Codec {
	return Codec{}
}

// Version implements codec.Codec.
func (Codec) Version() kv.Version {
	return kv.VersionV1TTL
}

// EncodeValue implements codec.Codec. An absent expiry is stored as zero.
func (Codec) EncodeValue(value kv.RawValue) []byte {
	buf := make([]byte, 0, len(value.UserValue)+expireTSLen)
	buf = append(buf, value.UserValue...)

	return binary.BigEndian.AppendUint64(buf, value.ExpireTS.UnwrapOr(0))
}

// DecodeValue implements codec.Codec. The returned user value aliases data.
func (Codec) DecodeValue(data []byte) (kv.RawValue, error) {
	if len(data) < expireTSLen {
		return kv.RawValue{}, codec.ErrTruncatedValue(len(data), expireTSLen)
	}

	value := kv.RawValue{
		UserValue: data[:len(data)-expireTSLen],
		ExpireTS:  option.None[uint64](),
	}

	if expireTS := binary.BigEndian.Uint64(data[len(data)-expireTSLen:]); expireTS != 0 {
		value.ExpireTS = option.Some(expireTS)
	}

	return value, nil
}

// EncodeKey implements codec.Codec.
func (Codec) EncodeKey(userKey []byte, ts option.Generic[kv.TimeStamp]) []byte {
	return codec.EncodePlainKey(userKey, ts)
}

// DecodeKey implements codec.Codec.
func (Codec) DecodeKey(encodedKey []byte, withTS bool) ([]byte, option.Generic[kv.TimeStamp], error) {
	return codec.DecodePlainKey(encodedKey, withTS)
}

// ParseKeyMode implements codec.Codec. Key namespaces do not exist below
// V2, so every key classifies as unknown.
func (Codec) ParseKeyMode(_ []byte) kv.KeyMode {
	return kv.KeyModeUnknown
}

// ParseRangeMode implements codec.Codec.
func (Codec) ParseRangeMode(_, _ []byte) kv.KeyMode {
	return kv.KeyModeUnknown
}
