package font

import (
	"fmt"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// sfntParser implements Parser using golang.org/x/image/font/opentype.
type sfntParser struct{}

// Parse implements Parser.Parse.
func (p *sfntParser) Parse(data []byte) (ParsedFont, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font: sfnt parse: %w", err)
	}
	upem := int(f.UnitsPerEm())
	if upem <= 0 {
		return nil, fmt.Errorf("font: sfnt parse: invalid units per em %d", upem)
	}
	return &sfntFont{font: f, upem: upem, ppem: fixed.I(upem)}, nil
}

// sfntFont implements ParsedFont using sfnt.Font.
// Queries run at ppem == units per em so that 26.6 results are design units.
type sfntFont struct {
	font *opentype.Font
	upem int
	ppem fixed.Int26_6
}

func (f *sfntFont) Name() string {
	name, err := f.font.Name(nil, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}

func (f *sfntFont) UnitsPerEm() int { return f.upem }

func (f *sfntFont) index(buf *sfnt.Buffer, r rune) sfnt.GlyphIndex {
	idx, err := f.font.GlyphIndex(buf, r)
	if err != nil {
		return 0
	}
	return idx
}

func (f *sfntFont) HasGlyph(r rune) bool {
	var buf sfnt.Buffer
	return f.index(&buf, r) != 0
}

func (f *sfntFont) Advance(r rune) float64 {
	var buf sfnt.Buffer
	adv, err := f.font.GlyphAdvance(&buf, f.index(&buf, r), f.ppem, xfont.HintingNone)
	if err != nil {
		return 0
	}
	return f.em(adv)
}

func (f *sfntFont) Bounds(r rune) (left, right, top, bottom float64) {
	var buf sfnt.Buffer
	b, _, err := f.font.GlyphBounds(&buf, f.index(&buf, r), f.ppem, xfont.HintingNone)
	if err != nil {
		return 0, 0, 0, 0
	}
	// sfnt bounds are y-down.
	return f.em(b.Min.X), f.em(b.Max.X), -f.em(b.Min.Y), -f.em(b.Max.Y)
}

func (f *sfntFont) Kern(prev, next rune) float64 {
	var buf sfnt.Buffer
	k, err := f.font.Kern(&buf, f.index(&buf, prev), f.index(&buf, next), f.ppem, xfont.HintingNone)
	if err != nil {
		// sfnt.ErrNotFound when the font has no kern table.
		return 0
	}
	return f.em(k)
}

func (f *sfntFont) Metrics() Metrics {
	var buf sfnt.Buffer
	m, err := f.font.Metrics(&buf, f.ppem, xfont.HintingNone)
	if err != nil {
		return Metrics{}
	}
	return Metrics{
		Ascender:   f.em(m.Ascent),
		Descender:  -f.em(m.Descent),
		LineHeight: f.em(m.Height),
	}
}

// RasterFace implements Rasterizer.
func (f *sfntFont) RasterFace(ppem float64) (xfont.Face, error) {
	return opentype.NewFace(f.font, &opentype.FaceOptions{
		Size:    ppem,
		DPI:     72,
		Hinting: xfont.HintingNone,
	})
}

// em converts a design-unit 26.6 value to em units.
func (f *sfntFont) em(x fixed.Int26_6) float64 {
	return fixedToFloat64(x) / float64(f.upem)
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}
