package font

// Metrics holds font-wide vertical metrics in em units.
type Metrics struct {
	// Ascender is the distance from the baseline to the top of the font (positive).
	Ascender float64

	// Descender is the distance from the baseline to the bottom of the font (negative).
	Descender float64

	// LineHeight is the baseline-to-baseline distance at spacing 1.
	LineHeight float64
}

// Glyph holds the metrics of one codepoint in em units, y-up,
// relative to the pen position on the baseline.
type Glyph struct {
	// Left and Right are the horizontal extent of the ink box.
	Left, Right float64

	// Top and Bottom are the vertical extent of the ink box.
	Top, Bottom float64

	// Advance is the horizontal pen advance.
	Advance float64

	// Texture coordinates of the glyph in the atlas, [0, 1].
	// All zero when the font has no atlas.
	TexLeft, TexRight, TexTop, TexBottom float32
}

// Width returns the ink box width.
func (g Glyph) Width() float64 { return g.Right - g.Left }

// Height returns the ink box height.
func (g Glyph) Height() float64 { return g.Top - g.Bottom }

// Source supplies glyph metrics to the layout engine.
//
// All values are font-size independent (em units); the engine multiplies
// them by the font size when producing pixels.
// Implementations must be safe for concurrent use if shared between layouts.
type Source interface {
	// Metrics returns the font-wide vertical metrics.
	Metrics() Metrics

	// Glyph returns the metrics of r. Missing glyphs return the
	// metrics of the font's fallback glyph.
	Glyph(r rune) Glyph

	// Kern returns the horizontal advance adjustment between prev and next.
	Kern(prev, next rune) float64
}
