// Package v2 implements the V2 wire format.
//
// Values end with a meta-flag byte. The least significant bit of the flags
// indicates that an 8-byte big-endian expiry timestamp precedes the flags;
// all other bits are reserved and must be zero:
//
//	--------------------------------------------------------------------------------
//	| User value     | Expire Ts                               | Meta flags        |
//	--------------------------------------------------------------------------------
//	| 0x12 0x34 0x56 | 0x00 0x00 0x00 0x00 0x00 0x00 0xff 0xff | 0x01 (0b00000001) |
//	--------------------------------------------------------------------------------
//
// Keys are stored in the order-preserving group encoding of package
// memcomparable, optionally followed by a descending 8-byte logical
// timestamp. Three logical namespaces are multiplexed inside the one sorted
// keyspace by reserved leading bytes, see ParseKeyMode.
package v2

import (
	"encoding/binary"

	"github.com/tarantool/go-option"

	"github.com/rawkv/apicodec/codec"
	"github.com/rawkv/apicodec/kv"
)

const (
	metaFlagsLen = 1
	expireTSLen  = 8

	// metaFlagTTL marks a value that carries an expiry timestamp.
	metaFlagTTL byte = 0b0000_0001
	// metaFlagsReserved are the flag bits that must be zero.
	metaFlagsReserved = ^metaFlagTTL
)

// Codec is the V2 codec.
type Codec struct{}

// New creates a new V2 codec.
func New() Codec {
	return Codec{}
}

// Version implements codec.Codec.
func (Codec) Version() kv.Version {
	return kv.VersionV2
}

// EncodeValue implements codec.Codec.
func (Codec) EncodeValue(value kv.RawValue) []byte {
	expireTS, withTTL := value.ExpireTS.Get()

	size := len(value.UserValue) + metaFlagsLen
	if withTTL {
		size += expireTSLen
	}

	buf := make([]byte, 0, size)
	buf = append(buf, value.UserValue...)

	if withTTL {
		buf = binary.BigEndian.AppendUint64(buf, expireTS)

		return append(buf, metaFlagTTL)
	}

	return append(buf, 0)
}

// DecodeValue implements codec.Codec. The returned user value aliases data.
func (Codec) DecodeValue(data []byte) (kv.RawValue, error) {
	if len(data) < metaFlagsLen {
		return kv.RawValue{}, codec.ErrTruncatedValue(len(data), metaFlagsLen)
	}

	flags := data[len(data)-metaFlagsLen]
	if flags&metaFlagsReserved != 0 {
		return kv.RawValue{}, codec.ErrUnsupportedFlags(flags)
	}

	rest := data[:len(data)-metaFlagsLen]
	if flags&metaFlagTTL == 0 {
		return kv.RawValue{
			UserValue: rest,
			ExpireTS:  option.None[uint64](),
		}, nil
	}

	if len(rest) < expireTSLen {
		return kv.RawValue{}, codec.ErrTruncatedValue(len(data), metaFlagsLen+expireTSLen)
	}

	return kv.RawValue{
		UserValue: rest[:len(rest)-expireTSLen],
		ExpireTS:  option.Some(binary.BigEndian.Uint64(rest[len(rest)-expireTSLen:])),
	}, nil
}
