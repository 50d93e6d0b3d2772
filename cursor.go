package textedit

import "github.com/gogpu/textedit/font"

// tabStops is the width of a tab in spaces.
const tabStops = 4

// layoutCursor holds the transient state of one layout pass: the pen, the
// kerning context and the tables being appended to.
//
// All positions are in em units. The last entry of lines is the line
// being filled; its End always equals len(chars).
type layoutCursor struct {
	src     font.Source
	penX    float64
	last    rune // previous glyph on the line, valid when inked
	inked   bool // the current line holds a character other than a collapsed space
	widthEm float64
	advance float64

	// wrapped is set while the current line is a soft-wrap continuation
	// that is still empty.
	wrapped bool

	chars []Character
	lines []Line
}

// checkpoint captures the cursor state before a word is placed.
type checkpoint struct {
	penX   float64
	last   rune
	inked  bool
	nchars int
	nlines int
}

func (c *layoutCursor) checkpoint() checkpoint {
	return checkpoint{penX: c.penX, last: c.last, inked: c.inked, nchars: len(c.chars), nlines: len(c.lines)}
}

func (c *layoutCursor) restore(cp checkpoint) {
	c.penX = cp.penX
	c.last = cp.last
	c.inked = cp.inked
	c.chars = c.chars[:cp.nchars]
	c.lines = c.lines[:cp.nlines]
	c.lines[cp.nlines-1].End = cp.nchars
}

// current returns the line being filled.
func (c *layoutCursor) current() *Line {
	return &c.lines[len(c.lines)-1]
}

// atLineStart reports whether the current line is still empty.
func (c *layoutCursor) atLineStart() bool {
	return c.current().Len() == 0
}

// push appends ch to the current line.
func (c *layoutCursor) push(ch Character) {
	c.chars = append(c.chars, ch)
	c.current().End = len(c.chars)
}

// newLine finishes the current line and starts an empty one below it.
func (c *layoutCursor) newLine() {
	prev := c.current()
	c.lines = append(c.lines, Line{
		BaselineY: prev.BaselineY - c.advance,
		Begin:     len(c.chars),
		End:       len(c.chars),
	})
	c.penX = 0
	c.last = 0
	c.inked = false
	c.wrapped = false
}

// glyph returns the metrics of r. Tabs advance by a fixed number of spaces.
func (c *layoutCursor) glyph(r rune) font.Glyph {
	if r == '\t' {
		return font.Glyph{Advance: tabStops * c.src.Glyph(' ').Advance}
	}
	return c.src.Glyph(r)
}

// kern advances the pen by the pair adjustment from the previous codepoint.
func (c *layoutCursor) kern(r rune) {
	if c.inked {
		c.penX += c.src.Kern(c.last, r)
	}
}
