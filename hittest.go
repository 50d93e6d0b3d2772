package textedit

import "sort"

// PixelToCursorIndex returns the caret index closest to the pixel (x, y).
//
// Coordinates are in layout pixels, y-up, with the first baseline at y = 0.
// Points above the first line map to 0, points below the last line to Len().
// Within a line, the index rounds to the nearer side of the glyph hit.
func (t *TextLayout) PixelToCursorIndex(x, y float64) int {
	if len(t.chars) == 0 {
		return 0
	}
	fs := t.opts.FontSize
	x, y = x/fs, y/fs
	m := t.src.Metrics()

	if y > m.Ascender {
		return 0
	}
	k := sort.Search(len(t.lines), func(k int) bool {
		return y >= t.lines[k].BaselineY+m.Descender
	})
	if k == len(t.lines) {
		return len(t.chars)
	}

	l := t.lines[k]
	end := l.End
	if end > l.Begin && isNewline(t.chars[end-1].Codepoint) {
		end--
	}
	x -= t.alignment()[k]

	for i := l.Begin; i < end; i++ {
		c := t.chars[i]
		if c.Right < x {
			continue
		}
		if x > (c.Left+c.Right)/2 {
			return i + 1
		}
		return i
	}
	return end
}

// CaretPosition returns the pixel position of caret index i on its baseline.
func (t *TextLayout) CaretPosition(i int) (x, y float64) {
	i = clamp(i, 0, len(t.chars))
	k := t.LineOf(i)
	l := t.lines[k]

	var ex float64
	switch {
	case i < l.End:
		ex = t.chars[i].Left
	case i > l.Begin:
		ex = t.chars[i-1].Right
	}
	fs := t.opts.FontSize
	return (ex + t.alignment()[k]) * fs, l.BaselineY * fs
}

// CaretRect returns a zero-width rectangle spanning the line box at caret i.
func (t *TextLayout) CaretRect(i int) Rect {
	x, y := t.CaretPosition(i)
	m := t.src.Metrics()
	fs := t.opts.FontSize
	return Rect{
		MinX: x,
		MaxX: x,
		MinY: y + m.Descender*fs,
		MaxY: y + m.Ascender*fs,
	}
}

// SelectionBoxes returns one rectangle per line covered by the selection
// [begin, end). Each box is one line advance tall and includes the line's
// alignment offset. Lines whose covered part is empty produce no box.
func (t *TextLayout) SelectionBoxes(begin, end int) []Rect {
	if begin > end {
		begin, end = end, begin
	}
	begin = clamp(begin, 0, len(t.chars))
	end = clamp(end, 0, len(t.chars))
	if begin == end {
		return nil
	}

	fs := t.opts.FontSize
	asc := t.src.Metrics().Ascender
	height := t.lineAdvance() * fs
	offsets := t.alignment()

	var boxes []Rect
	for k := t.LineOf(begin); k < len(t.lines); k++ {
		l := t.lines[k]
		if l.Begin >= end {
			break
		}
		s, e := max(begin, l.Begin), min(end, l.End)
		if s >= e {
			continue
		}
		top := (l.BaselineY + asc) * fs
		boxes = append(boxes, Rect{
			MinX: (offsets[k] + t.chars[s].Left) * fs,
			MaxX: (offsets[k] + t.chars[e-1].Right) * fs,
			MinY: top - height,
			MaxY: top,
		})
	}
	return boxes
}
