package v2

import (
	"github.com/tarantool/go-option"

	"github.com/rawkv/apicodec/codec"
	"github.com/rawkv/apicodec/kv"
	"github.com/rawkv/apicodec/memcomparable"
)

// EncodeKey implements codec.Codec. The user key is group-encoded so that
// encoded keys order exactly as user keys; a present timestamp appends its
// descending encoding, so for one user key larger timestamps sort first.
func (Codec) EncodeKey(userKey []byte, ts option.Generic[kv.TimeStamp]) []byte {
	size := memcomparable.EncodedBytesLen(len(userKey))
	if ts.IsSome() {
		size += memcomparable.Uint64Len
	}

	buf := memcomparable.EncodeBytes(make([]byte, 0, size), userKey)

	if t, ok := ts.Get(); ok {
		buf = memcomparable.EncodeUint64Desc(buf, uint64(t))
	}

	return buf
}

// DecodeKey implements codec.Codec. withTS tells the decoder whether the
// encoded key carries a trailing timestamp; without one, any bytes left
// after the terminator group are an error.
func (Codec) DecodeKey(encodedKey []byte, withTS bool) ([]byte, option.Generic[kv.TimeStamp], error) {
	noTS := option.None[kv.TimeStamp]()

	userKey, rest, err := memcomparable.DecodeBytes(encodedKey)
	if err != nil {
		return nil, noTS, err
	}

	if !withTS {
		if len(rest) != 0 {
			return nil, noTS, codec.ErrTrailingData(len(rest))
		}

		return userKey, noTS, nil
	}

	ts, rest, err := memcomparable.DecodeUint64Desc(rest)
	if err != nil {
		return nil, noTS, err
	}

	if len(rest) != 0 {
		return nil, noTS, codec.ErrTrailingData(len(rest))
	}

	return userKey, option.Some(kv.TimeStamp(ts)), nil
}
