package marshaller

import (
	"github.com/tarantool/go-option"

	"github.com/rawkv/apicodec/codec"
	"github.com/rawkv/apicodec/internal/options"
	"github.com/rawkv/apicodec/kv"
)

// typedOptions contains configuration options for TypedValueMarshaller.
type typedOptions struct {
	marshaller Marshaller
}

func newTypedOptions() typedOptions {
	return typedOptions{
		marshaller: NewMsgpackMarshaller(),
	}
}

// WithMarshaller selects the marshalling format of stored objects.
// MessagePack is the default.
func WithMarshaller(m Marshaller) options.OptionCallback[typedOptions] {
	return func(opts *typedOptions) {
		opts.marshaller = m
	}
}

// TypedValueMarshaller marshals typed objects into the on-disk value form
// of one API version and back. It composes a Marshaller, which produces the
// user value, with a codec.Codec, which adds the version's value metadata.
type TypedValueMarshaller[T any] struct {
	codec      codec.Codec
	marshaller Marshaller
}

// NewTypedValueMarshaller creates a TypedValueMarshaller bound to the given
// version codec.
func NewTypedValueMarshaller[T any](
	c codec.Codec,
	vOpts ...options.OptionCallback[typedOptions],
) TypedValueMarshaller[T] {
	opts := options.ApplyOptions(newTypedOptions, vOpts)

	return TypedValueMarshaller[T]{
		codec:      c,
		marshaller: opts.marshaller,
	}
}

// Marshal serializes data and encodes it, with an optional expiry, into the
// bound version's on-disk value form. As with codec.Codec.EncodeValue, a
// present expiry under a version that cannot represent one panics.
func (m TypedValueMarshaller[T]) Marshal(data T, expireTS option.Generic[uint64]) ([]byte, error) {
	body, err := m.marshaller.Marshal(data)
	if err != nil {
		return nil, err
	}

	return m.codec.EncodeValue(kv.RawValue{
		UserValue: body,
		ExpireTS:  expireTS,
	}), nil
}

func zero[T any]() T {
	var out T
	return out
}

// Unmarshal decodes an on-disk value of the bound version and deserializes
// its user value, returning the object together with the decoded expiry.
func (m TypedValueMarshaller[T]) Unmarshal(data []byte) (T, option.Generic[uint64], error) {
	value, err := m.codec.DecodeValue(data)
	if err != nil {
		return zero[T](), option.None[uint64](), err
	}

	var out T
	if err := m.marshaller.Unmarshal(value.UserValue, &out); err != nil {
		return zero[T](), option.None[uint64](), err
	}

	return out, value.ExpireTS, nil
}
