// Package v1 implements the V1 wire format: user values and keys are
// stored verbatim, with no expiry support and no key namespaces.
package v1

import (
	"github.com/tarantool/go-option"

	"github.com/rawkv/apicodec/codec"
	"github.com/rawkv/apicodec/kv"
)

// Codec is the V1 codec.
type Codec struct{}

// New creates a new V1 codec.
func New() Codec {
	return Codec{}
}

// Version implements codec.Codec.
func (Codec) Version() kv.Version {
	return kv.VersionV1
}

// EncodeValue implements codec.Codec. V1 cannot represent an expiry;
// passing one is a contract violation.
func (Codec) EncodeValue(value kv.RawValue) []byte {
	if value.ExpireTS.IsSome() {
		panic("expire timestamp is not supported by API version V1")
	}

	return value.UserValue
}

// DecodeValue implements codec.Codec.
func (Codec) DecodeValue(data []byte) (kv.RawValue, error) {
	return kv.RawValue{
		UserValue: data,
		ExpireTS:  option.None[uint64](),
	}, nil
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
