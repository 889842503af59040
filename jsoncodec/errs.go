package jsoncodec

import "errors"

// JSON-specific error domain. The generic domain (failed, out of data,
// additional data) lives in the codec package; callers branch on either
// with errors.Is.
var (
	ErrInvalidNumber               = errors.New("invalid number")
	ErrMissingComma                = errors.New("missing comma")
	ErrInvalidObjectKeyType        = errors.New("invalid object key type")
	ErrInvalidStringCharacter      = errors.New("invalid character in string")
	ErrInvalidStringEscapeSequence = errors.New("invalid string escape sequence")
	ErrInvalidStringUnicodeEscape  = errors.New("invalid string unicode escape")
)
