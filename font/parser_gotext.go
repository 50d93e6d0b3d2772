package font

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// gotextParser implements Parser using go-text/typesetting.
// Pair kerning comes from HarfBuzz shaping, so GPOS kerning is honored
// in addition to the legacy kern table.
type gotextParser struct{}

// Parse implements Parser.Parse.
func (p *gotextParser) Parse(data []byte) (ParsedFont, error) {
	face, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("font: gotext parse: %w", err)
	}
	upem := int(face.Upem())
	if upem <= 0 {
		return nil, fmt.Errorf("font: gotext parse: invalid units per em %d", upem)
	}
	return &gotextFont{face: face, upem: upem}, nil
}

// gotextFont implements ParsedFont using a go-text font.Face.
type gotextFont struct {
	upem int

	// font.Face and HarfbuzzShaper are not safe for concurrent use.
	mu     sync.Mutex
	face   *gotext.Face
	shaper shaping.HarfbuzzShaper
}

func (f *gotextFont) Name() string {
	return f.face.Describe().Family
}

func (f *gotextFont) UnitsPerEm() int { return f.upem }

func (f *gotextFont) HasGlyph(r rune) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.face.NominalGlyph(r)
	return ok
}

func (f *gotextFont) Advance(r rune) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	gid, _ := f.face.NominalGlyph(r)
	return float64(f.face.HorizontalAdvance(gid)) / float64(f.upem)
}

func (f *gotextFont) Bounds(r rune) (left, right, top, bottom float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	gid, _ := f.face.NominalGlyph(r)
	ext, ok := f.face.GlyphExtents(gid)
	if !ok {
		return 0, 0, 0, 0
	}
	u := float64(f.upem)
	// Height is negative: extents grow downward from YBearing.
	return float64(ext.XBearing) / u,
		float64(ext.XBearing+ext.Width) / u,
		float64(ext.YBearing) / u,
		float64(ext.YBearing+ext.Height) / u
}

// Kern shapes the pair and compares the shaped advance of prev with its
// nominal advance.
func (f *gotextFont) Kern(prev, next rune) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	gid, ok := f.face.NominalGlyph(prev)
	if !ok {
		return 0
	}
	if _, ok := f.face.NominalGlyph(next); !ok {
		return 0
	}
	text := []rune{prev, next}
	out := f.shaper.Shape(shaping.Input{
		Text:      text,
		RunStart:  0,
		RunEnd:    len(text),
		Direction: di.DirectionLTR,
		Face:      f.face,
		Size:      fixed.I(f.upem),
		Script:    language.LookupScript(prev),
		Language:  language.NewLanguage("en"),
	})
	// A ligature merges the pair; there is no pair adjustment to report.
	if len(out.Glyphs) != len(text) {
		return 0
	}
	shaped := fixedToFloat64(out.Glyphs[0].XAdvance)
	nominal := float64(f.face.HorizontalAdvance(gid))
	return (shaped - nominal) / float64(f.upem)
}

func (f *gotextFont) Metrics() Metrics {
	f.mu.Lock()
	defer f.mu.Unlock()
	ext, ok := f.face.FontHExtents()
	if !ok {
		return Metrics{}
	}
	u := float64(f.upem)
	return Metrics{
		Ascender:   float64(ext.Ascender) / u,
		Descender:  float64(ext.Descender) / u,
		LineHeight: float64(ext.Ascender-ext.Descender+ext.LineGap) / u,
	}
}
