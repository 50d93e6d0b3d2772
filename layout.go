package textedit

import (
	"slices"
	"sort"

	"github.com/gogpu/textedit/font"
)

// TextLayout lays out text into a character table and a line table.
//
// Parameter setters take a recompute flag. With recompute false the change
// is staged and takes effect on the next Recompute, so several properties can
// be set with a single layout pass.
//
// TextLayout is not safe for concurrent use.
type TextLayout struct {
	src  font.Source
	opts Options

	// Staged state, applied by Recompute.
	next        Options
	nextSrc     font.Source
	pendingText []rune
	hasPending  bool
	srcChanged  bool
	staged      bool

	chars []Character
	lines []Line

	// replaced counts texts applied through SetText.
	replaced uint64

	// text caches Encode of the character table.
	text      string
	textValid bool

	// Derived from the tables and options; nil when stale.
	offsets []float64
	widest  float64
	model   *Model
}

// NewTextLayout creates an empty layout.
func NewTextLayout(src font.Source, opts Options) (*TextLayout, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	opts = opts.normalized()
	t := &TextLayout{
		src:       src,
		opts:      opts,
		next:      opts,
		nextSrc:   src,
		lines:     []Line{{}},
		textValid: true,
	}
	return t, nil
}

// Layout performs a one-shot layout of text and returns its render model.
func Layout(text string, src font.Source, opts Options) (*Model, error) {
	t, err := NewTextLayout(src, opts)
	if err != nil {
		return nil, err
	}
	if err := t.SetText(text, true); err != nil {
		return nil, err
	}
	return t.Model(), nil
}

// SetText replaces the text. Malformed UTF-8 is rejected with a
// *DecodeError and leaves the layout untouched.
func (t *TextLayout) SetText(s string, recompute bool) error {
	runes, err := Decode(s)
	if err != nil {
		slogger().Warn("textedit: text rejected", "err", err)
		return err
	}
	t.pendingText = runes
	t.hasPending = true
	t.stage(recompute)
	return nil
}

// SetFontSize sets the font size in pixels.
func (t *TextLayout) SetFontSize(px float64, recompute bool) {
	t.next.FontSize = px
	t.next = t.next.normalized()
	t.stage(recompute)
}

// SetFont replaces the glyph source. A nil source is ignored.
func (t *TextLayout) SetFont(src font.Source, recompute bool) {
	if src == nil {
		slogger().Warn("textedit: SetFont called with nil source")
		return
	}
	t.nextSrc = src
	t.srcChanged = true
	t.stage(recompute)
}

// SetAlignment sets the horizontal alignment.
func (t *TextLayout) SetAlignment(a Alignment, recompute bool) {
	t.next.Alignment = a
	t.stage(recompute)
}

// SetWrapMode sets the line breaking policy.
func (t *TextLayout) SetWrapMode(m WrapMode, recompute bool) {
	t.next.Wrap = m
	t.stage(recompute)
}

// SetTextWidth sets the wrap width in pixels. 0 disables wrapping.
func (t *TextLayout) SetTextWidth(px float64, recompute bool) {
	t.next.TextWidth = px
	t.next = t.next.normalized()
	t.stage(recompute)
}

// SetLineSpacing sets the line height multiplier.
func (t *TextLayout) SetLineSpacing(spacing float64, recompute bool) {
	t.next.LineSpacing = spacing
	t.next = t.next.normalized()
	t.stage(recompute)
}

func (t *TextLayout) stage(recompute bool) {
	t.staged = true
	if recompute {
		t.Recompute()
	}
}

// NeedsRecompute reports whether staged changes are waiting for Recompute.
func (t *TextLayout) NeedsRecompute() bool {
	return t.staged
}

// Recompute applies staged changes. The wrap pass only runs when line
// breaks can change; font size and alignment changes otherwise only
// rescale the cached geometry.
func (t *TextLayout) Recompute() {
	if !t.staged {
		return
	}
	t.staged = false

	relayout := t.hasPending || t.srcChanged || t.opts.rewraps(t.next)
	t.opts, t.src = t.next, t.nextSrc
	t.srcChanged = false

	if t.hasPending {
		runes := t.pendingText
		t.pendingText, t.hasPending = nil, false
		t.replaced++
		t.fullLayout(runes)
		t.text, t.textValid = Encode(runes), true
	} else if relayout {
		t.fullLayout(t.codepoints(0, len(t.chars)))
	}
	t.invalidate()
}

// fullLayout rebuilds both tables from runes.
func (t *TextLayout) fullLayout(runes []rune) {
	t.chars = t.chars[:0]
	t.lines = append(t.lines[:0], Line{})
	t.layoutFrom(0, runes)
}

// layoutFrom discards lines[li:] and lays out runes starting at the
// beginning of line li. Lines before li are kept as they are.
func (t *TextLayout) layoutFrom(li int, runes []rune) {
	start := t.lines[li]
	c := &layoutCursor{
		src:     t.src,
		widthEm: t.opts.widthEm(),
		advance: t.lineAdvance(),
		wrapped: start.Begin > 0 && !isNewline(t.chars[start.Begin-1].Codepoint),
		chars:   t.chars[:start.Begin],
		lines:   append(t.lines[:li], Line{BaselineY: start.BaselineY, Begin: start.Begin, End: start.Begin}),
	}
	c.run(runes, t.opts.Wrap)
	t.chars, t.lines = c.chars, c.lines
}

// splice replaces chars[begin:end] with insert and re-lays out the suffix.
//
// The pass restarts at the line before the one holding the start of the
// word touched by the edit: the edited word may now fit on that line, and
// nothing earlier depends on text at or after the word.
func (t *TextLayout) splice(begin, end int, insert []rune) {
	t.Recompute()

	n := len(t.chars)
	begin = clamp(begin, 0, n)
	end = clamp(end, begin, n)

	li := max(t.LineOf(t.wordStart(begin))-1, 0)
	from := t.lines[li].Begin

	tail := make([]rune, 0, (begin-from)+len(insert)+(n-end))
	tail = append(tail, t.codepoints(from, begin)...)
	tail = append(tail, insert...)
	tail = append(tail, t.codepoints(end, n)...)

	slogger().Debug("textedit: relayout", "line", li, "runes", len(tail), "lines", len(t.lines))

	t.layoutFrom(li, tail)
	t.textValid = false
	t.invalidate()
}

// replaceAll lays out runes from scratch. Staged options are applied first.
func (t *TextLayout) replaceAll(runes []rune) {
	t.Recompute()
	t.fullLayout(runes)
	t.textValid = false
	t.invalidate()
}

// wordStart returns the start of the word containing or ending at i.
func (t *TextLayout) wordStart(i int) int {
	for i > 0 && !isBreak(t.chars[i-1].Codepoint) {
		i--
	}
	return i
}

// codepoints returns a copy of the codepoints in chars[from:to].
func (t *TextLayout) codepoints(from, to int) []rune {
	runes := make([]rune, to-from)
	for i, c := range t.chars[from:to] {
		runes[i] = c.Codepoint
	}
	return runes
}

// invalidate drops geometry derived from the tables.
func (t *TextLayout) invalidate() {
	t.offsets = nil
	t.model = nil
}

// lineAdvance returns the distance between baselines in em units.
func (t *TextLayout) lineAdvance() float64 {
	return t.src.Metrics().LineHeight * t.opts.LineSpacing
}

// Text returns the laid out text, re-encoding the character table when the
// cached string is stale. Staged text is not visible until Recompute.
func (t *TextLayout) Text() string {
	if !t.textValid {
		t.text = Encode(t.codepoints(0, len(t.chars)))
		t.textValid = true
	}
	return t.text
}

// Len returns the number of characters.
func (t *TextLayout) Len() int { return len(t.chars) }

// Characters returns a copy of the character table.
func (t *TextLayout) Characters() []Character { return slices.Clone(t.chars) }

// Lines returns a copy of the line table. It always holds at least one line.
func (t *TextLayout) Lines() []Line { return slices.Clone(t.lines) }

// Options returns the options in effect (staged changes excluded).
func (t *TextLayout) Options() Options { return t.opts }

// Font returns the glyph source in effect.
func (t *TextLayout) Font() font.Source { return t.src }

// LineOf returns the index of the line holding character index i.
// Indices at or past the end map to the last line.
func (t *TextLayout) LineOf(i int) int {
	k := sort.Search(len(t.lines), func(k int) bool { return t.lines[k].End > i })
	return min(k, len(t.lines)-1)
}

// Truncation returns the index of the first character whose right edge
// exceeds TextWidth in single-line mode. It returns Len() when everything
// fits, when TextWidth is 0, or in wrapping modes.
func (t *TextLayout) Truncation() int {
	if t.opts.Wrap != WrapSingleLine || t.opts.TextWidth <= 0 {
		return len(t.chars)
	}
	limit := t.opts.TextWidth / t.opts.FontSize
	for i, c := range t.chars {
		if isNewline(c.Codepoint) {
			continue
		}
		if c.Right > limit {
			return i
		}
	}
	return len(t.chars)
}

// Clone returns a deep copy of the layout, including staged changes.
func (t *TextLayout) Clone() *TextLayout {
	c := *t
	c.chars = slices.Clone(t.chars)
	c.lines = slices.Clone(t.lines)
	c.pendingText = slices.Clone(t.pendingText)
	c.offsets = slices.Clone(t.offsets)
	return &c
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
