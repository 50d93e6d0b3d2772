package textedit

// lineWidth returns the ink extent of line l: the largest right edge of
// its visible characters.
func (t *TextLayout) lineWidth(l Line) float64 {
	w := 0.0
	for _, c := range t.chars[l.Begin:l.End] {
		if isBreak(c.Codepoint) {
			continue
		}
		w = max(w, c.Right)
	}
	return w
}

// alignment computes and caches per-line offsets in em units.
//
// Offsets are relative to the declared width when wrapping is constrained
// and to the widest line otherwise.
func (t *TextLayout) alignment() []float64 {
	if t.offsets != nil {
		return t.offsets
	}

	widths := make([]float64, len(t.lines))
	t.widest = 0
	for k, l := range t.lines {
		widths[k] = t.lineWidth(l)
		t.widest = max(t.widest, widths[k])
	}

	ref := t.widest
	if t.opts.constrained() {
		ref = t.opts.widthEm()
	}

	t.offsets = make([]float64, len(t.lines))
	for k, w := range widths {
		t.offsets[k] = alignOffset(t.opts.Alignment, ref, w)
	}
	return t.offsets
}

// alignOffset returns the offset of a line of width w in a box of width ref.
func alignOffset(a Alignment, ref, w float64) float64 {
	switch a {
	case AlignCenter:
		return (ref - w) / 2
	case AlignRight:
		return ref - w
	default:
		return 0
	}
}

// LineOffset returns the alignment offset of line k in pixels.
func (t *TextLayout) LineOffset(k int) float64 {
	return t.alignment()[k] * t.opts.FontSize
}

// Bounds returns the measured extent of the layout in pixels.
// An empty layout has zero bounds.
func (t *TextLayout) Bounds() Bounds {
	if len(t.chars) == 0 {
		return Bounds{}
	}
	t.alignment()
	fs := t.opts.FontSize
	m := t.src.Metrics()
	last := t.lines[len(t.lines)-1]
	return Bounds{
		Left:   0,
		Right:  t.widest * fs,
		Top:    m.Ascender * fs,
		Bottom: (last.BaselineY + m.Descender) * fs,
	}
}
