// Package jsoncodec implements the JSON message codec used on platform
// message channels.
//
// The wire form is UTF-8 text holding exactly one JSON value. Two
// deviations from RFC 8259 are required for interop with the decoder on
// the other side of the transport and must be preserved: map keys are
// written with the full value writer (so non-string keys appear on the
// wire), and the literal -9223372036854775808 round-trips as the minimum
// 64-bit integer.
//
// Decoding consumes the entire input buffer; trailing bytes yield
// codec.ErrAdditionalData. All malformed input surfaces as a typed error,
// never a panic.
package jsoncodec

import (
	"fmt"

	"github.com/embedkit/jsonwire/codec"
	"github.com/embedkit/jsonwire/value"
)

// Codec is the JSON message codec. It is stateless; one instance may be
// shared freely across goroutines.
type Codec struct{}

var _ codec.MessageCodec = (*Codec)(nil)

func New() *Codec {
	return &Codec{}
}

// EncodeMessage serializes v (nil encodes as null) into a fresh buffer.
func (c *Codec) EncodeMessage(v *value.Value) ([]byte, error) {
	w := &writer{}
	if err := w.writeValue(v); err != nil {
		return nil, err
	}
	return w.buf.Bytes(), nil
}

// DecodeMessage parses exactly one value from d. The whole buffer must be
// consumed: leftover bytes after the value and its trailing whitespace
// produce codec.ErrAdditionalData with the unconsumed byte count.
func (c *Codec) DecodeMessage(d []byte) (*value.Value, error) {
	r := &reader{d: d}
	v, err := r.readValue()
	if err != nil {
		return nil, err
	}
	if r.off != len(d) {
		return nil, fmt.Errorf("%w: unused %d bytes after JSON message",
			codec.ErrAdditionalData, len(d)-r.off)
	}
	return v, nil
}

// EncodeString is EncodeMessage returning text.
func (c *Codec) EncodeString(v *value.Value) (string, error) {
	d, err := c.EncodeMessage(v)
	if err != nil {
		return "", err
	}
	return string(d), nil
}

// DecodeString is DecodeMessage over text.
func (c *Codec) DecodeString(text string) (*value.Value, error) {
	return c.DecodeMessage([]byte(text))
}
