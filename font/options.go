package font

// Option configures Font creation.
type Option func(*config)

// config holds configuration for Font.
type config struct {
	cacheLimit int
	parserName string
	atlas      *AtlasConfig
}

// defaultConfig returns the default font configuration.
func defaultConfig() config {
	return config{
		cacheLimit: 512,
		parserName: defaultParserName,
	}
}

// WithCacheLimit sets the maximum number of cached glyphs and kerning pairs.
// A value of 0 disables the cache limit.
func WithCacheLimit(n int) Option {
	return func(c *config) {
		c.cacheLimit = n
	}
}

// WithParser selects the font parsing backend by name.
// The default is "sfnt" (golang.org/x/image/font/opentype);
// "gotext" and "freetype" are also registered.
func WithParser(name string) Option {
	return func(c *config) {
		c.parserName = name
	}
}

// WithAtlas enables the glyph texture atlas. Glyphs then carry texture
// coordinates into the atlas, and coverage masks are rasterized when the
// backend supports it.
func WithAtlas(cfg AtlasConfig) Option {
	return func(c *config) {
		c.atlas = &cfg
	}
}
