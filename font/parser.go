package font

import (
	"sort"
	"sync"
)

// Parser is a font parsing backend.
type Parser interface {
	// Parse parses font data (TTF or OTF) and returns a ParsedFont.
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont is a parsed font file queried by rune.
// All metric values are returned in em units, y-up.
type ParsedFont interface {
	// Name returns the font family name, or "" if not available.
	Name() string

	// UnitsPerEm returns the design units per em.
	UnitsPerEm() int

	// HasGlyph reports whether the font maps r to a glyph.
	HasGlyph(r rune) bool

	// Advance returns the horizontal advance of r.
	Advance(r rune) float64

	// Bounds returns the ink box of r as left, right, top, bottom.
	Bounds(r rune) (left, right, top, bottom float64)

	// Kern returns the pair adjustment between prev and next.
	Kern(prev, next rune) float64

	// Metrics returns font-wide vertical metrics.
	Metrics() Metrics
}

// Backend names.
const (
	ParserSFNT     = "sfnt"
	ParserGoText   = "gotext"
	ParserFreetype = "freetype"
)

// defaultParserName is the name of the default parser.
const defaultParserName = ParserSFNT

var (
	parserMu sync.RWMutex

	// parserRegistry holds registered font parsers.
	parserRegistry = map[string]Parser{
		ParserSFNT:     &sfntParser{},
		ParserGoText:   &gotextParser{},
		ParserFreetype: &freetypeParser{},
	}
)

// RegisterParser registers a custom font parser under name.
func RegisterParser(name string, parser Parser) {
	parserMu.Lock()
	defer parserMu.Unlock()
	parserRegistry[name] = parser
}

// Parsers returns the sorted names of the registered parsers.
func Parsers() []string {
	parserMu.RLock()
	defer parserMu.RUnlock()
	names := make([]string, 0, len(parserRegistry))
	for name := range parserRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// getParser returns the parser registered under name.
// An empty name selects the default parser.
func getParser(name string) (Parser, bool) {
	if name == "" {
		name = defaultParserName
	}
	parserMu.RLock()
	defer parserMu.RUnlock()
	p, ok := parserRegistry[name]
	return p, ok
}
