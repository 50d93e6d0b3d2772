package textedit

import (
	"errors"
	"fmt"
)

// Sentinel errors for the textedit package.
var (
	// ErrNilSource is returned when a layout is created without a glyph source.
	ErrNilSource = errors.New("textedit: nil font source")

	// ErrInvalidRune is returned when a rune is not a Unicode scalar value.
	ErrInvalidRune = errors.New("textedit: invalid rune")
)

// DecodeError reports a malformed UTF-8 sequence.
type DecodeError struct {
	// Offset is the byte offset of the first invalid byte.
	Offset int
	// Byte is the invalid byte.
	Byte byte
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("textedit: invalid UTF-8 byte %#02x at offset %d", e.Byte, e.Offset)
}
