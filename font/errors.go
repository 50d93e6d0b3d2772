package font

import "errors"

// Sentinel errors for the font package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("font: empty font data")

	// ErrUnknownParser is returned when WithParser names an unregistered backend.
	ErrUnknownParser = errors.New("font: unknown parser")

	// ErrAtlasFull is returned when a glyph region cannot be allocated.
	ErrAtlasFull = errors.New("font: atlas full")
)

// AtlasConfigError names the AtlasConfig field that failed validation.
type AtlasConfigError struct {
	Field  string
	Reason string
}

func (e *AtlasConfigError) Error() string {
	return "font: atlas " + e.Field + " " + e.Reason
}
