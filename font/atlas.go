package font

import (
	"image"
	"sync"

	"golang.org/x/image/draw"
)

// AtlasConfig sizes the glyph texture.
type AtlasConfig struct {
	Size      int // texture edge in pixels, a power of two in [64, 8192]; default 512
	GlyphSize int // rasterization size in pixels per em; default 32
	Padding   int // empty pixels between glyphs; default 1
}

// DefaultAtlasConfig returns a 512x512 atlas rendering glyphs at 32 ppem.
func DefaultAtlasConfig() AtlasConfig {
	return AtlasConfig{Size: 512, GlyphSize: 32, Padding: 1}
}

// Validate reports the first out-of-range field as an *AtlasConfigError.
func (c *AtlasConfig) Validate() error {
	checks := []struct {
		bad    bool
		field  string
		reason string
	}{
		{c.Size < 64 || c.Size > 8192, "Size", "must be within [64, 8192]"},
		{c.Size&(c.Size-1) != 0, "Size", "must be a power of two"},
		{c.GlyphSize < 8 || c.GlyphSize > c.Size, "GlyphSize", "must be within [8, Size]"},
		{c.Padding < 0 || c.Padding >= c.GlyphSize/2, "Padding", "must be within [0, GlyphSize/2)"},
	}
	for _, chk := range checks {
		if chk.bad {
			return &AtlasConfigError{Field: chk.field, Reason: chk.reason}
		}
	}
	return nil
}

// Region describes a glyph's location in the atlas.
type Region struct {
	// UV coordinates [0, 1] for texture sampling. V grows downward.
	U0, V0, U1, V1 float32

	// Pixel coordinates in the atlas.
	X, Y, Width, Height int
}

// Empty reports whether the region covers no pixels.
func (r Region) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Atlas is a single-channel glyph coverage texture.
//
// Atlas is safe for concurrent use.
type Atlas struct {
	mu      sync.Mutex
	config  AtlasConfig
	img     *image.Alpha
	shelves *shelfPacker
	regions map[rune]Region
	dirty   bool
}

// NewAtlas creates an empty atlas.
func NewAtlas(config AtlasConfig) (*Atlas, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Atlas{
		config:  config,
		img:     image.NewAlpha(image.Rect(0, 0, config.Size, config.Size)),
		shelves: newShelfPacker(config.Size, config.Size, config.Padding),
		regions: make(map[rune]Region),
	}, nil
}

// Config returns the atlas configuration.
func (a *Atlas) Config() AtlasConfig {
	return a.config
}

// Lookup returns the region previously inserted for r.
func (a *Atlas) Lookup(r rune) (Region, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	region, ok := a.regions[r]
	return region, ok
}

// Insert allocates a w x h region for r and copies mask into it, starting
// at maskp in mask. A nil mask leaves the region blank.
// Inserting a rune twice returns the existing region.
func (a *Atlas) Insert(r rune, w, h int, mask image.Image, maskp image.Point) (Region, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if region, ok := a.regions[r]; ok {
		return region, nil
	}
	if w <= 0 || h <= 0 {
		a.regions[r] = Region{}
		return Region{}, nil
	}

	at, ok := a.shelves.pack(w, h)
	if !ok {
		return Region{}, ErrAtlasFull
	}
	x, y := at.X, at.Y

	size := float32(a.config.Size)
	region := Region{
		U0:     float32(x) / size,
		V0:     float32(y) / size,
		U1:     float32(x+w) / size,
		V1:     float32(y+h) / size,
		X:      x,
		Y:      y,
		Width:  w,
		Height: h,
	}
	if mask != nil {
		draw.Draw(a.img, image.Rect(x, y, x+w, y+h), mask, maskp, draw.Src)
	}
	a.regions[r] = region
	a.dirty = true
	return region, nil
}

// Image returns the atlas texture. The image is shared with the atlas and
// changes as glyphs are inserted.
func (a *Atlas) Image() *image.Alpha {
	return a.img
}

// GlyphCount returns the number of runes placed in the atlas.
func (a *Atlas) GlyphCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.regions)
}

// Utilization returns the fraction of the texture in use.
func (a *Atlas) Utilization() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.shelves.usage()
}

// IsDirty reports whether the atlas changed since the last MarkClean.
func (a *Atlas) IsDirty() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.dirty
}

// MarkClean clears the dirty flag, typically after a texture upload.
func (a *Atlas) MarkClean() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.dirty = false
}

// Reset drops all regions and clears the texture.
func (a *Atlas) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.shelves.reset()
	clear(a.img.Pix)
	a.regions = make(map[rune]Region)
	a.dirty = true
}
