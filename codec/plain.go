package codec

import (
	"github.com/tarantool/go-option"

	"github.com/rawkv/apicodec/kv"
)

// EncodePlainKey is the shared key encoding of VersionV1 and VersionV1TTL:
// the user key verbatim. The timestamp argument exists for interface
// uniformity and is never persisted.
func EncodePlainKey(userKey []byte, _ option.Generic[kv.TimeStamp]) []byte {
	return userKey
}

// DecodePlainKey reverses EncodePlainKey. No timestamp is ever recovered.
func DecodePlainKey(encodedKey []byte, _ bool) ([]byte, option.Generic[kv.TimeStamp], error) {
	return encodedKey, option.None[kv.TimeStamp](), nil
}
