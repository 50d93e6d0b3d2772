package font

import "image"

// shelfPacker places glyph boxes left to right on horizontal shelves. A
// shelf is as tall as its tallest glyph; a full row opens a new shelf
// below the last one. Only the bottom shelf may grow taller.
type shelfPacker struct {
	bounds image.Point // texture size
	gap    int
	rows   []shelf
	filled int // pixels covered by glyphs, gaps excluded
}

type shelf struct {
	top, height, next int
}

func newShelfPacker(w, h, gap int) *shelfPacker {
	return &shelfPacker{bounds: image.Pt(w, h), gap: gap}
}

// pack reserves a w x h box and returns its top-left corner.
func (p *shelfPacker) pack(w, h int) (image.Point, bool) {
	if w+p.gap > p.bounds.X {
		return image.Point{}, false
	}
	last := len(p.rows) - 1
	for i := range p.rows {
		row := &p.rows[i]
		if row.next+w+p.gap > p.bounds.X {
			continue
		}
		if h > row.height {
			if i != last || row.top+h+p.gap > p.bounds.Y {
				continue
			}
			row.height = h
		}
		at := image.Pt(row.next, row.top)
		row.next += w + p.gap
		p.filled += w * h
		return at, true
	}

	top := 0
	if last >= 0 {
		top = p.rows[last].top + p.rows[last].height + p.gap
	}
	if top+h+p.gap > p.bounds.Y {
		return image.Point{}, false
	}
	p.rows = append(p.rows, shelf{top: top, height: h, next: w + p.gap})
	p.filled += w * h
	return image.Pt(0, top), true
}

func (p *shelfPacker) reset() {
	p.rows = p.rows[:0]
	p.filled = 0
}

// usage is the covered fraction of the texture.
func (p *shelfPacker) usage() float64 {
	area := p.bounds.X * p.bounds.Y
	if area <= 0 {
		return 0
	}
	return float64(p.filled) / float64(area)
}
