// Package font supplies glyph metrics to the textedit layout engine.
//
// A [Font] is parsed from TrueType/OpenType data by one of the registered
// backends:
//
//   - "sfnt" (default): golang.org/x/image/font/opentype
//   - "gotext": github.com/go-text/typesetting, with pair kerning taken
//     from HarfBuzz shaping
//   - "freetype": github.com/golang/freetype/truetype
//
// All metrics are reported in em units so that layout is independent of the
// font size:
//
//	f, err := font.New(goregular.TTF, font.WithAtlas(font.DefaultAtlasConfig()))
//	if err != nil {
//	    return err
//	}
//	g := f.Glyph('A') // g.Advance is a fraction of the em
//
// With an atlas configured, glyphs are rasterized into a single-channel
// texture and carry texture coordinates for mesh emission.
package font
