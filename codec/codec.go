// Package codec defines the message codec contract and the generic error
// domain shared by wire formats.
package codec

import (
	"errors"

	"github.com/embedkit/jsonwire/value"
)

var (
	// ErrFailed is the generic decode/encode failure.
	ErrFailed = errors.New("message codec failed")
	// ErrOutOfData indicates the input ended before a complete message.
	ErrOutOfData = errors.New("out of data")
	// ErrAdditionalData indicates unconsumed bytes after a complete message.
	ErrAdditionalData = errors.New("additional data")
	// ErrNotSupported indicates an operation the codec does not implement.
	ErrNotSupported = errors.New("not supported")
)

// MessageCodec converts between values and their wire form. Implementations
// must be stateless: calls with disjoint arguments are safe concurrently.
type MessageCodec interface {
	// EncodeMessage encodes a value, which may be nil, to a fresh buffer.
	EncodeMessage(v *value.Value) ([]byte, error)
	// DecodeMessage decodes exactly one message, consuming the entire
	// buffer. Leftover bytes are an ErrAdditionalData error.
	DecodeMessage(d []byte) (*value.Value, error)
}
