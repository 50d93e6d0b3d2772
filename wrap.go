package textedit

import "math"

// wordFit is the outcome of placing one word in word-wrap mode.
type wordFit int

const (
	// fitsLine: the word stays where it was placed.
	fitsLine wordFit = iota
	// fitsNextLine: the word moved to a fresh line.
	fitsNextLine
	// hardWrap: the word is wider than an empty line and was placed
	// character by character.
	hardWrap
)

// run lays out runes after the current tables with the given policy.
func (c *layoutCursor) run(runes []rune, mode WrapMode) {
	if mode == WrapWord {
		c.placeWords(runes)
		return
	}
	for _, r := range runes {
		c.placeChar(r)
	}
}

// placeChar places one codepoint with character wrapping.
func (c *layoutCursor) placeChar(r rune) {
	if isNewline(r) {
		c.push(Character{Codepoint: r, Left: c.penX, Right: c.penX})
		c.newLine()
		return
	}

	c.kern(r)
	g := c.glyph(r)
	ws := isWhitespace(r)

	right := c.penX + g.Right
	if ws {
		right = c.penX + g.Advance
	}
	// Never wrap the first glyph of a line.
	if c.widthEm != 0 && c.inked && right > c.widthEm {
		c.newLine()
		c.wrapped = true
	}
	if c.wrapped && isSpace(r) && c.atLineStart() {
		// A space opening a wrapped line keeps its slot but has no width,
		// so it does not indent the line.
		c.push(Character{Codepoint: r})
		return
	}

	if ws {
		c.push(Character{Codepoint: r, Left: c.penX, Right: c.penX + g.Advance})
	} else {
		c.push(Character{Codepoint: r, Left: c.penX + g.Left, Right: c.penX + g.Right})
	}
	c.penX += g.Advance
	c.last = r
	c.inked = true
}

// placeWords places runes with word wrapping. Whitespace and newlines are
// placed exactly as in character mode.
func (c *layoutCursor) placeWords(runes []rune) {
	for i := 0; i < len(runes); {
		if isBreak(runes[i]) {
			c.placeChar(runes[i])
			i++
			continue
		}
		j := i + 1
		for j < len(runes) && !isBreak(runes[j]) {
			j++
		}
		c.fitWord(runes[i:j])
		i = j
	}
}

// fitWord places word on the current line, on a fresh line, or character
// by character, whichever comes first.
func (c *layoutCursor) fitWord(word []rune) wordFit {
	cp := c.checkpoint()
	c.pushWord(word)
	if c.widthEm == 0 || c.maxRight(cp.nchars) <= c.widthEm {
		return fitsLine
	}

	c.restore(cp)
	if !c.atLineStart() && measureWord(c, word) <= c.widthEm {
		c.newLine()
		c.pushWord(word)
		return fitsNextLine
	}

	for _, r := range word {
		c.placeChar(r)
	}
	return hardWrap
}

// pushWord appends word without any wrap check.
func (c *layoutCursor) pushWord(word []rune) {
	for _, r := range word {
		c.kern(r)
		g := c.glyph(r)
		c.push(Character{Codepoint: r, Left: c.penX + g.Left, Right: c.penX + g.Right})
		c.penX += g.Advance
		c.last = r
		c.inked = true
	}
}

// maxRight returns the largest right edge of chars[from:].
func (c *layoutCursor) maxRight(from int) float64 {
	right := math.Inf(-1)
	for _, ch := range c.chars[from:] {
		right = math.Max(right, ch.Right)
	}
	return right
}

// measureWord returns the right edge of word placed at the start of an
// empty line.
func measureWord(c *layoutCursor, word []rune) float64 {
	pen := 0.0
	right := math.Inf(-1)
	for i, r := range word {
		if i > 0 {
			pen += c.src.Kern(word[i-1], r)
		}
		g := c.glyph(r)
		right = math.Max(right, pen+g.Right)
		pen += g.Advance
	}
	return right
}
