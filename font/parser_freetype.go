package font

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// freetypeParser implements Parser using github.com/golang/freetype/truetype.
// It only accepts TrueType outlines (no CFF).
type freetypeParser struct{}

// Parse implements Parser.Parse.
func (p *freetypeParser) Parse(data []byte) (ParsedFont, error) {
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font: freetype parse: %w", err)
	}
	upem := int(f.FUnitsPerEm())
	if upem <= 0 {
		return nil, fmt.Errorf("font: freetype parse: invalid units per em %d", upem)
	}
	ft := &freetypeFont{font: f, upem: upem, scale: fixed.I(upem)}
	ft.metrics = ft.loadMetrics()
	return ft, nil
}

// freetypeFont implements ParsedFont using truetype.Font.
type freetypeFont struct {
	font    *truetype.Font
	upem    int
	scale   fixed.Int26_6
	metrics Metrics

	// GlyphBuf is not safe for concurrent use.
	mu  sync.Mutex
	buf truetype.GlyphBuf
}

func (f *freetypeFont) Name() string {
	return f.font.Name(truetype.NameIDFontFamily)
}

func (f *freetypeFont) UnitsPerEm() int { return f.upem }

func (f *freetypeFont) HasGlyph(r rune) bool {
	return f.font.Index(r) != 0
}

func (f *freetypeFont) Advance(r rune) float64 {
	hm := f.font.HMetric(f.scale, f.font.Index(r))
	return f.em(hm.AdvanceWidth)
}

func (f *freetypeFont) Bounds(r rune) (left, right, top, bottom float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.buf.Load(f.font, f.scale, f.font.Index(r), xfont.HintingNone); err != nil {
		return 0, 0, 0, 0
	}
	b := f.buf.Bounds
	return f.em(b.Min.X), f.em(b.Max.X), f.em(b.Max.Y), f.em(b.Min.Y)
}

func (f *freetypeFont) Kern(prev, next rune) float64 {
	return f.em(f.font.Kern(f.scale, f.font.Index(prev), f.font.Index(next)))
}

func (f *freetypeFont) Metrics() Metrics { return f.metrics }

func (f *freetypeFont) loadMetrics() Metrics {
	face := truetype.NewFace(f.font, &truetype.Options{
		Size:    float64(f.upem),
		DPI:     72,
		Hinting: xfont.HintingNone,
	})
	defer face.Close()
	m := face.Metrics()
	return Metrics{
		Ascender:   f.em(m.Ascent),
		Descender:  -f.em(m.Descent),
		LineHeight: f.em(m.Height),
	}
}

// RasterFace implements Rasterizer.
func (f *freetypeFont) RasterFace(ppem float64) (xfont.Face, error) {
	return truetype.NewFace(f.font, &truetype.Options{
		Size:    ppem,
		DPI:     72,
		Hinting: xfont.HintingNone,
	}), nil
}

func (f *freetypeFont) em(x fixed.Int26_6) float64 {
	return fixedToFloat64(x) / float64(f.upem)
}
