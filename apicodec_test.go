package apicodec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarantool/go-option"

	"github.com/rawkv/apicodec"
	"github.com/rawkv/apicodec/kv"
)

func TestNew(t *testing.T) {
	t.Parallel()

	for _, version := range []kv.Version{kv.VersionV1, kv.VersionV1TTL, kv.VersionV2} {
		c, err := apicodec.New(version)
		require.NoError(t, err)
		assert.Equal(t, version, c.Version())
	}
}

func TestNew_UnsupportedVersion(t *testing.T) {
	t.Parallel()

	_, err := apicodec.New(0)
	require.Error(t, err)

	var versionErr apicodec.UnsupportedVersionError

	require.ErrorAs(t, err, &versionErr)
	assert.Equal(t, kv.Version(0), versionErr.Version)
}

func TestMustNew(t *testing.T) {
	t.Parallel()

	assert.Equal(t, kv.VersionV2, apicodec.MustNew(kv.VersionV2).Version())
	assert.Panics(t, func() { apicodec.MustNew(42) })
}

// One value, three wire formats. The encoded bytes differ per version but
// every decode restores the original value.
func TestValueEncoding_AcrossVersions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		userValue     []byte
		expireTS      option.Generic[uint64]
		encodedState  map[kv.Version][]byte
		skipUnderTTL0 bool
	}{
		{
			name:      "empty value without expiry",
			userValue: []byte{},
			expireTS:  option.None[uint64](),
			encodedState: map[kv.Version][]byte{
				kv.VersionV1:    {},
				kv.VersionV1TTL: {0, 0, 0, 0, 0, 0, 0, 0},
				kv.VersionV2:    {0},
			},
		},
		{
			name:      "value without expiry",
			userValue: []byte("a"),
			expireTS:  option.None[uint64](),
			encodedState: map[kv.Version][]byte{
				kv.VersionV1:    {'a'},
				kv.VersionV1TTL: {'a', 0, 0, 0, 0, 0, 0, 0, 0},
				kv.VersionV2:    {'a', 0},
			},
		},
		{
			name:      "empty value with expiry",
			userValue: []byte{},
			expireTS:  option.Some(uint64(2)),
			encodedState: map[kv.Version][]byte{
				kv.VersionV1TTL: {0, 0, 0, 0, 0, 0, 0, 2},
				kv.VersionV2:    {0, 0, 0, 0, 0, 0, 0, 2, 1},
			},
		},
		{
			name:      "value with expiry",
			userValue: []byte("a"),
			expireTS:  option.Some(uint64(2)),
			encodedState: map[kv.Version][]byte{
				kv.VersionV1TTL: {'a', 0, 0, 0, 0, 0, 0, 0, 2},
				kv.VersionV2:    {'a', 0, 0, 0, 0, 0, 0, 0, 2, 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			for version, expected := range tt.encodedState {
				c, err := apicodec.New(version)
				require.NoError(t, err)

				value := kv.RawValue{
					UserValue: tt.userValue,
					ExpireTS:  tt.expireTS,
				}

				encoded := c.EncodeValue(value)
				require.Equal(t, expected, encoded, "version %s", version)

				decoded, err := c.DecodeValue(encoded)
				require.NoError(t, err, "version %s", version)
				assert.Equal(t, tt.userValue, decoded.UserValue, "version %s", version)
				assert.Equal(t, tt.expireTS, decoded.ExpireTS, "version %s", version)
			}
		})
	}
}

// One key, three wire formats: verbatim below V2, order-preserving group
// encoding with an optional embedded timestamp under V2.
func TestKeyEncoding_AcrossVersions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		userKey   []byte
		ts        option.Generic[kv.TimeStamp]
		encodedV2 []byte
	}{
		{
			name:      "plain key",
			userKey:   []byte("r"),
			ts:        option.None[kv.TimeStamp](),
			encodedV2: []byte{'r', 0, 0, 0, 0, 0, 0, 0, 0xF8},
		},
		{
			name:    "key with timestamp",
			userKey: []byte("r"),
			ts:      option.Some(kv.TimeStamp(2)),
			encodedV2: []byte{
				'r', 0, 0, 0, 0, 0, 0, 0, 0xF8,
				0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFD,
			},
		},
		{
			name:    "long key with timestamp",
			userKey: []byte("r234567890"),
			ts:      option.Some(kv.TimeStamp(3)),
			encodedV2: []byte{
				'r', '2', '3', '4', '5', '6', '7', '8', 0xFF,
				'9', '0', 0, 0, 0, 0, 0, 0, 0xF9,
				0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFC,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			for _, version := range []kv.Version{kv.VersionV1, kv.VersionV1TTL} {
				c, err := apicodec.New(version)
				require.NoError(t, err)

				encoded := c.EncodeKey(tt.userKey, tt.ts)
				require.Equal(t, tt.userKey, encoded, "version %s", version)

				decoded, ts, err := c.DecodeKey(encoded, tt.ts.IsSome())
				require.NoError(t, err, "version %s", version)
				assert.Equal(t, tt.userKey, decoded, "version %s", version)
				assert.False(t, ts.IsSome(), "version %s", version)
			}

			c, err := apicodec.New(kv.VersionV2)
			require.NoError(t, err)

			encoded := c.EncodeKey(tt.userKey, tt.ts)
			require.Equal(t, tt.encodedV2, encoded)

			decoded, ts, err := c.DecodeKey(encoded, tt.ts.IsSome())
			require.NoError(t, err)
			assert.Equal(t, tt.userKey, decoded)
			assert.Equal(t, tt.ts, ts)
		})
	}
}
