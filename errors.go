package qrgrid

import "errors"

var (
	// ErrTooLong is returned when the content does not fit in any version
	// at the requested error correction level.
	ErrTooLong = errors.New("value too long")

	// ErrInvalidOption is returned when an encoding option is out of range
	// or names an unknown value.
	ErrInvalidOption = errors.New("invalid option")

	// ErrEncode is returned when the data bit stream cannot be assembled.
	ErrEncode = errors.New("encode error")
)
