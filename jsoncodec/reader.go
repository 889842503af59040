package jsoncodec

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/embedkit/jsonwire/codec"
	"github.com/embedkit/jsonwire/value"
)

// reader is a cursor over an immutable input buffer. The cursor only moves
// forward; lookahead is a single byte.
type reader struct {
	d   []byte
	off int
}

// cur returns the byte at the cursor, or 0 past the end of input. A NUL
// byte in the input is indistinguishable from end of input, matching the
// wire contract that messages are NUL-free UTF-8 text.
func (r *reader) cur() byte {
	if r.off >= len(r.d) {
		return 0
	}
	return r.d[r.off]
}

func (r *reader) next() {
	r.off++
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\n' || c == '\r' || c == '\t'
}

func (r *reader) skipWhitespace() {
	for isWhitespace(r.cur()) {
		r.next()
	}
}

func digitToInt(c byte) int {
	if c >= '0' && c <= '9' {
		return int(c - '0')
	}
	return -1
}

func xdigitToInt(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	default:
		return -1
	}
}

func (r *reader) readValue() (*value.Value, error) {
	r.skipWhitespace()

	var (
		res *value.Value
		err error
	)
	c := r.cur()
	switch {
	case c == '{':
		res, err = r.readObject()
	case c == '[':
		res, err = r.readArray()
	case c == '"':
		res, err = r.readString()
	case c == '-' || digitToInt(c) >= 0:
		res, err = r.readNumber()
	case c == 't':
		res, err = r.readWord("true", value.FromBool(true))
	case c == 'f':
		res, err = r.readWord("false", value.FromBool(false))
	case c == 'n':
		res, err = r.readWord("null", value.Null())
	case c == 0:
		return nil, fmt.Errorf("%w looking for JSON value", codec.ErrOutOfData)
	default:
		return nil, fmt.Errorf("%w: unexpected value %#02x when decoding JSON value", codec.ErrFailed, c)
	}
	if err != nil {
		return nil, err
	}
	r.skipWhitespace()
	return res, nil
}

func (r *reader) readWord(word string, res *value.Value) (*value.Value, error) {
	for i := 0; i < len(word); i++ {
		if r.cur() != word[i] {
			return nil, fmt.Errorf("%w: expected word %s not present", codec.ErrFailed, word)
		}
		r.next()
	}
	return res, nil
}

func (r *reader) readComma() error {
	c := r.cur()
	if c != ',' {
		return fmt.Errorf("%w: expected comma, got %#02x", ErrMissingComma, c)
	}
	r.next()
	return nil
}

// readUnicharCode reads the 4 hex digits of a \uXXXX escape.
func (r *reader) readUnicharCode() (rune, error) {
	wc := 0
	for i := 0; i < 4; i++ {
		xdigit := xdigitToInt(r.cur())
		if xdigit < 0 {
			return 0, fmt.Errorf("%w: missing hex digit in JSON unicode character", ErrInvalidStringUnicodeEscape)
		}
		wc = wc<<4 + xdigit
		r.next()
	}
	return rune(wc), nil
}

// readStringEscape reads the escape following a backslash.
func (r *reader) readStringEscape() (rune, error) {
	c := r.cur()
	if c == 'u' {
		r.next()
		return r.readUnicharCode()
	}

	var wc rune
	switch c {
	case '"':
		wc = '"'
	case '\\':
		wc = '\\'
	case '/':
		wc = '/'
	case 'b':
		wc = '\b'
	case 'f':
		wc = '\f'
	case 'n':
		wc = '\n'
	case 'r':
		wc = '\r'
	case 't':
		wc = '\t'
	default:
		return 0, fmt.Errorf("%w: unknown string escape character %#02x", ErrInvalidStringEscapeSequence, c)
	}
	r.next()
	return wc, nil
}

// readString reads a string value. The caller has confirmed the opening
// quote is at the cursor.
func (r *reader) readString() (*value.Value, error) {
	r.next()

	var text []byte
	for {
		c := r.cur()
		switch {
		case c == '"':
			r.next()
			return value.FromStringSized(text), nil
		case c == '\\':
			r.next()
			wc, err := r.readStringEscape()
			if err != nil {
				return nil, err
			}
			text = utf8.AppendRune(text, wc)
		case c == 0:
			return nil, fmt.Errorf("%w: unterminated string", codec.ErrOutOfData)
		case c < 0x20:
			return nil, fmt.Errorf("%w: %#02x", ErrInvalidStringCharacter, c)
		default:
			text = append(text, c)
			r.next()
		}
	}
}

// readDigits consumes a run of decimal digits, accumulating their value
// with int64 wrap-around so "9223372036854775808" under a minus sign
// round-trips as the minimum int64. When divisor is non-nil it is set to
// 10^(digit count) for fraction scaling.
func (r *reader) readDigits(divisor *int64) int64 {
	var v int64
	if divisor != nil {
		*divisor = 1
	}
	for {
		digit := digitToInt(r.cur())
		if digit < 0 {
			return v
		}
		v = v*10 + int64(digit)
		if divisor != nil {
			*divisor *= 10
		}
		r.next()
	}
}

func (r *reader) readNumber() (*value.Value, error) {
	c := r.cur()
	sign := int64(1)
	if c == '-' {
		sign = -1
		r.next()
		c = r.cur()
		if digitToInt(c) < 0 {
			return nil, fmt.Errorf("%w: missing digits after negative sign", ErrInvalidNumber)
		}
	}

	var intPart int64
	if c == '0' {
		// A leading zero is a complete integer part. Any following
		// digit is not part of this number and surfaces as trailing
		// data at the top level.
		r.next()
	} else {
		intPart = r.readDigits(nil)
	}

	isFloating := false

	var fraction, divisor int64 = 0, 1
	if r.cur() == '.' {
		isFloating = true
		r.next()
		if digitToInt(r.cur()) < 0 {
			return nil, fmt.Errorf("%w: missing digits after decimal point", ErrInvalidNumber)
		}
		fraction = r.readDigits(&divisor)
	}

	var exponent, exponentSign int64 = 0, 1
	if c := r.cur(); c == 'E' || c == 'e' {
		isFloating = true
		r.next()

		switch r.cur() {
		case '-':
			exponentSign = -1
			r.next()
		case '+':
			r.next()
		}

		if digitToInt(r.cur()) < 0 {
			return nil, fmt.Errorf("%w: missing digits in exponent", ErrInvalidNumber)
		}
		exponent = r.readDigits(nil)
	}

	if isFloating {
		f := float64(sign) * (float64(intPart) + float64(fraction)/float64(divisor)) *
			math.Pow(10, float64(exponentSign*exponent))
		return value.FromFloat(f), nil
	}
	return value.FromInt(sign * intPart), nil
}

// readObject reads an object value. The caller has confirmed the opening
// brace is at the cursor.
func (r *reader) readObject() (*value.Value, error) {
	r.next()

	res := value.NewMap()
	for {
		r.skipWhitespace()

		c := r.cur()
		if c == 0 {
			return nil, fmt.Errorf("%w: unterminated JSON object", codec.ErrOutOfData)
		}
		if c == '}' {
			r.next()
			return res, nil
		}

		if res.Len() != 0 {
			if err := r.readComma(); err != nil {
				return nil, err
			}
			r.skipWhitespace()
		}

		if r.cur() != '"' {
			return nil, fmt.Errorf("%w: missing string key in JSON object", ErrInvalidObjectKeyType)
		}
		key, err := r.readString()
		if err != nil {
			return nil, err
		}
		r.skipWhitespace()

		if r.cur() != ':' {
			return nil, fmt.Errorf("%w: missing colon after JSON object key", codec.ErrFailed)
		}
		r.next()

		val, err := r.readValue()
		if err != nil {
			return nil, err
		}
		res.Set(key, val)
	}
}

// readArray reads an array value. The caller has confirmed the opening
// bracket is at the cursor.
func (r *reader) readArray() (*value.Value, error) {
	r.next()

	res := value.NewList()
	for {
		r.skipWhitespace()

		c := r.cur()
		if c == 0 {
			return nil, fmt.Errorf("%w: unterminated JSON array", codec.ErrOutOfData)
		}
		if c == ']' {
			r.next()
			return res, nil
		}

		if res.Len() != 0 {
			if err := r.readComma(); err != nil {
				return nil, err
			}
			r.skipWhitespace()
		}

		child, err := r.readValue()
		if err != nil {
			return nil, err
		}
		res.Append(child)
	}
}
