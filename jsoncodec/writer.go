package jsoncodec

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/embedkit/jsonwire/value"
)

// writer serializes one value into a growing buffer. A failed encode
// discards the buffer; no partial output reaches the caller.
type writer struct {
	buf bytes.Buffer
}

func (w *writer) writeInt(v int64) {
	w.buf.WriteString(strconv.FormatInt(v, 10))
}

func (w *writer) writeFloat(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: can't encode NaN or Inf in JSON", ErrInvalidNumber)
	}

	text := strconv.FormatFloat(v, 'g', -1, 64)
	w.buf.WriteString(text)

	// Add .0 if no decimal point so not confused with an integer. An
	// exponent already marks the number as a float.
	if !strings.ContainsAny(text, ".eE") {
		w.buf.WriteString(".0")
	}
	return nil
}

const hexDigits = "0123456789abcdef"

func (w *writer) writeString(s string) {
	w.buf.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"':
			w.buf.WriteString(`\"`)
		case c == '\\':
			w.buf.WriteString(`\\`)
		case c == '\b':
			w.buf.WriteString(`\b`)
		case c == '\f':
			w.buf.WriteString(`\f`)
		case c == '\n':
			w.buf.WriteString(`\n`)
		case c == '\r':
			w.buf.WriteString(`\r`)
		case c == '\t':
			w.buf.WriteString(`\t`)
		case c < 0x20:
			w.buf.WriteString(`\u00`)
			w.buf.WriteByte(hexDigits[c>>4])
			w.buf.WriteByte(hexDigits[c&0xf])
		default:
			// Pass through byte for byte; the writer does not
			// re-validate UTF-8.
			w.buf.WriteByte(c)
		}
	}
	w.buf.WriteByte('"')
}

// writeValue writes v, with nil serializing like an explicit null.
func (w *writer) writeValue(v *value.Value) error {
	if v == nil {
		w.buf.WriteString("null")
		return nil
	}

	switch v.Type {
	case value.NullType:
		w.buf.WriteString("null")
	case value.BoolType:
		if v.Bool {
			w.buf.WriteString("true")
		} else {
			w.buf.WriteString("false")
		}
	case value.IntType:
		w.writeInt(v.Int)
	case value.FloatType:
		if err := w.writeFloat(v.Float); err != nil {
			return err
		}
	case value.StringType:
		w.writeString(v.Text)
	case value.Uint8ListType:
		w.buf.WriteByte('[')
		for i, e := range v.Uint8List {
			if i != 0 {
				w.buf.WriteByte(',')
			}
			w.writeInt(int64(e))
		}
		w.buf.WriteByte(']')
	case value.Int32ListType:
		w.buf.WriteByte('[')
		for i, e := range v.Int32List {
			if i != 0 {
				w.buf.WriteByte(',')
			}
			w.writeInt(int64(e))
		}
		w.buf.WriteByte(']')
	case value.Int64ListType:
		w.buf.WriteByte('[')
		for i, e := range v.Int64List {
			if i != 0 {
				w.buf.WriteByte(',')
			}
			w.writeInt(e)
		}
		w.buf.WriteByte(']')
	case value.FloatListType:
		w.buf.WriteByte('[')
		for i, e := range v.FloatList {
			if i != 0 {
				w.buf.WriteByte(',')
			}
			if err := w.writeFloat(e); err != nil {
				return err
			}
		}
		w.buf.WriteByte(']')
	case value.ListType:
		w.buf.WriteByte('[')
		for i, e := range v.Values {
			if i != 0 {
				w.buf.WriteByte(',')
			}
			if err := w.writeValue(e); err != nil {
				return err
			}
		}
		w.buf.WriteByte(']')
	case value.MapType:
		w.buf.WriteByte('{')
		for i := range v.Keys {
			if i != 0 {
				w.buf.WriteByte(',')
			}
			// Keys use the full value writer: non-string keys are
			// legal on this wire, a deliberate RFC 8259 deviation
			// shared with the decoder on the other side.
			if err := w.writeValue(v.Keys[i]); err != nil {
				return err
			}
			w.buf.WriteByte(':')
			if err := w.writeValue(v.Values[i]); err != nil {
				return err
			}
		}
		w.buf.WriteByte('}')
	default:
		panic("type")
	}
	return nil
}
