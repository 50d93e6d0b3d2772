package font

import (
	"fmt"
	"image"
	"math"
	"os"

	"github.com/gogpu/textedit/internal/cache"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Rasterizer is implemented by parsed fonts that can produce coverage masks.
type Rasterizer interface {
	// RasterFace returns a face rendering at ppem pixels per em.
	RasterFace(ppem float64) (xfont.Face, error)
}

// kernPair is the kerning cache key.
type kernPair struct {
	prev, next rune
}

// Font is a Source backed by a parsed TrueType/OpenType font.
//
// Glyph metrics and kerning pairs are cached per rune. When an atlas is
// configured, the first lookup of a rune also places it in the atlas and
// fills in its texture coordinates.
//
// Font is safe for concurrent use.
type Font struct {
	parsed  ParsedFont
	parser  string
	metrics Metrics

	glyphs *cache.Cache[rune, Glyph]
	kerns  *cache.Cache[kernPair, float64]

	atlas *Atlas
	// raster is only used from loadGlyph, which runs under the glyph cache lock.
	raster xfont.Face
}

// New parses font data and returns a Font.
func New(data []byte, opts ...Option) (*Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	parser, ok := getParser(cfg.parserName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownParser, cfg.parserName)
	}
	parsed, err := parser.Parse(data)
	if err != nil {
		return nil, err
	}

	f := &Font{
		parsed:  parsed,
		parser:  cfg.parserName,
		metrics: parsed.Metrics(),
		glyphs:  cache.New[rune, Glyph](cfg.cacheLimit),
		kerns:   cache.New[kernPair, float64](cfg.cacheLimit),
	}

	if cfg.atlas != nil {
		atlas, err := NewAtlas(*cfg.atlas)
		if err != nil {
			return nil, err
		}
		f.atlas = atlas
		if r, ok := parsed.(Rasterizer); ok {
			face, err := r.RasterFace(float64(cfg.atlas.GlyphSize))
			if err != nil {
				return nil, fmt.Errorf("font: raster face: %w", err)
			}
			f.raster = face
		} else {
			slogger().Debug("font: backend cannot rasterize, atlas regions stay blank",
				"parser", cfg.parserName)
		}
	}

	slogger().Debug("font: loaded",
		"name", parsed.Name(),
		"parser", cfg.parserName,
		"upem", parsed.UnitsPerEm())
	return f, nil
}

// NewFromFile reads and parses a font file.
func NewFromFile(path string, opts ...Option) (*Font, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the caller
	if err != nil {
		return nil, fmt.Errorf("font: read %s: %w", path, err)
	}
	return New(data, opts...)
}

// Name returns the font family name.
func (f *Font) Name() string { return f.parsed.Name() }

// Parser returns the name of the backend that parsed the font.
func (f *Font) Parser() string { return f.parser }

// Atlas returns the glyph atlas, or nil if none was configured.
func (f *Font) Atlas() *Atlas { return f.atlas }

// Metrics implements Source.
func (f *Font) Metrics() Metrics { return f.metrics }

// Glyph implements Source.
func (f *Font) Glyph(r rune) Glyph {
	return f.glyphs.GetOrCreate(r, func() Glyph { return f.loadGlyph(r) })
}

// Kern implements Source.
func (f *Font) Kern(prev, next rune) float64 {
	return f.kerns.GetOrCreate(kernPair{prev, next}, func() float64 {
		return f.parsed.Kern(prev, next)
	})
}

// CacheStats reports how the per-font metric caches are used.
type CacheStats struct {
	Glyphs       int // cached glyphs
	Kerns        int // cached kerning pairs
	GlyphHitRate float64
	KernHitRate  float64
}

// CacheStats returns the current cache usage.
func (f *Font) CacheStats() CacheStats {
	g, k := f.glyphs.Stats(), f.kerns.Stats()
	return CacheStats{
		Glyphs:       g.Len,
		Kerns:        k.Len,
		GlyphHitRate: g.HitRate(),
		KernHitRate:  k.HitRate(),
	}
}

// HasGlyph reports whether the font maps r to a real glyph.
func (f *Font) HasGlyph(r rune) bool { return f.parsed.HasGlyph(r) }

func (f *Font) loadGlyph(r rune) Glyph {
	if !f.parsed.HasGlyph(r) {
		slogger().Debug("font: missing glyph, using fallback", "rune", string(r))
	}
	left, right, top, bottom := f.parsed.Bounds(r)
	g := Glyph{
		Left:    left,
		Right:   right,
		Top:     top,
		Bottom:  bottom,
		Advance: f.parsed.Advance(r),
	}
	if f.atlas != nil {
		f.place(r, &g)
	}
	return g
}

// place inserts r into the atlas and sets the texture coordinates of g.
func (f *Font) place(r rune, g *Glyph) {
	ppem := float64(f.atlas.config.GlyphSize)
	w := int(math.Ceil(g.Width() * ppem))
	h := int(math.Ceil(g.Height() * ppem))

	var mask image.Image
	var maskp image.Point
	if f.raster != nil {
		dr, m, mp, _, ok := f.raster.Glyph(fixed.Point26_6{}, r)
		if ok {
			w, h = dr.Dx(), dr.Dy()
			mask, maskp = m, mp
		}
	}

	region, err := f.atlas.Insert(r, w, h, mask, maskp)
	if err != nil {
		slogger().Warn("font: glyph not placed in atlas", "rune", string(r), "err", err)
		return
	}
	g.TexLeft, g.TexRight = region.U0, region.U1
	g.TexTop, g.TexBottom = region.V0, region.V1
}

// compile-time check
var _ Source = (*Font)(nil)
