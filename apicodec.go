package apicodec

import (
	"fmt"

	"github.com/rawkv/apicodec/codec"
	"github.com/rawkv/apicodec/codec/v1"
	"github.com/rawkv/apicodec/codec/v1ttl"
	"github.com/rawkv/apicodec/codec/v2"
	"github.com/rawkv/apicodec/kv"
)

// UnsupportedVersionError is returned when no codec implements the
// requested version.
type UnsupportedVersionError struct {
	Version kv.Version
}

func (e UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported API version %s", e.Version)
}

// New binds the codec of the given API version. The binding is meant to
// happen once, at store startup; the returned Codec dispatches nothing at
// call time.
func New(version kv.Version) (codec.Codec, error) {
	switch version {
	case kv.VersionV1:
		return v1.New(), nil
	case kv.VersionV1TTL:
		return v1ttl.New(), nil
	case kv.VersionV2:
		return v2.New(), nil
	default:
		return nil, UnsupportedVersionError{Version: version}
	}
}

// MustNew is like New but panics on an unsupported version. It suits the
// common case of a version tag already validated by configuration.
func MustNew(version kv.Version) codec.Codec {
	c, err := New(version)
	if err != nil {
		panic(err)
	}

	return c
}
