// Package marshaller represents the interface to user-value
// transformation. It turns typed objects into the byte values a version
// codec encodes, and back.
package marshaller

import (
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Marshaller - serialization of user values, implemented one time for all
// objects. Required by TypedValueMarshaller to set the marshalling format
// of stored objects.
type Marshaller interface {
	Marshal(data any) ([]byte, error)
	Unmarshal(data []byte, out any) error
}

// MsgpackMarshaller marshals user values as MessagePack. It is the default
// format: compact, binary-safe and self-describing.
type MsgpackMarshaller struct{}

// NewMsgpackMarshaller creates a new MsgpackMarshaller object.
func NewMsgpackMarshaller() MsgpackMarshaller {
	return MsgpackMarshaller{}
}

// Marshal implements Marshaller.
func (m MsgpackMarshaller) Marshal(data any) ([]byte, error) {
	marshalled, err := msgpack.Marshal(data)
	if err != nil {
		return nil, errMarshal(err)
	}

	return marshalled, nil
}

// Unmarshal implements Marshaller.
func (m MsgpackMarshaller) Unmarshal(data []byte, out any) error {
	if err := msgpack.Unmarshal(data, out); err != nil {
		return errUnmarshal(err)
	}

	return nil
}

// YAMLMarshaller marshals user values as YAML, for stores holding
// human-maintained configuration objects.
type YAMLMarshaller struct{}

// NewYamlMarshaller creates a new YAMLMarshaller object.
func NewYamlMarshaller() YAMLMarshaller {
	return YAMLMarshaller{}
}

// Marshal implements Marshaller.
func (m YAMLMarshaller) Marshal(data any) ([]byte, error) {
	marshalled, err := yaml.Marshal(data)
	if err != nil {
		return nil, errMarshal(err)
	}

	return marshalled, nil
}

// Unmarshal implements Marshaller.
func (m YAMLMarshaller) Unmarshal(data []byte, out any) error {
	if err := yaml.Unmarshal(data, out); err != nil {
		return errUnmarshal(err)
	}

	return nil
}
