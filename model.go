package textedit

import "github.com/gogpu/textedit/mesh"

// Model is the immutable render model of a layout: one quad per character
// slot, in pixels at the layout's font size.
//
// Whitespace and newlines emit degenerate quads so that quad i always
// belongs to character i.
type Model struct {
	Mesh     *mesh.Mesh
	Bounds   Bounds
	FontSize float64
	Lines    []Line
}

// QuadCount returns the number of quads, equal to the character count.
func (m *Model) QuadCount() int { return m.Mesh.QuadCount() }

// Model returns the render model, building it on first use after a change.
// Staged changes are not included until Recompute.
func (t *TextLayout) Model() *Model {
	if t.model != nil {
		return t.model
	}

	offsets := t.alignment()
	fs := t.opts.FontSize
	m := mesh.New(len(t.chars))
	for k, l := range t.lines {
		t.appendLine(m, l, offsets[k], fs)
	}

	t.model = &Model{
		Mesh:     m,
		Bounds:   t.Bounds(),
		FontSize: fs,
		Lines:    t.Lines(),
	}
	return t.model
}

// appendLine emits the quads of line l.
func (t *TextLayout) appendLine(m *mesh.Mesh, l Line, offset, fs float64) {
	y := l.BaselineY * fs
	for _, c := range t.chars[l.Begin:l.End] {
		x0 := (offset + c.Left) * fs
		if isBreak(c.Codepoint) {
			m.AppendQuad(mesh.Quad{
				X0: float32(x0), Y0: float32(y),
				X1: float32(x0), Y1: float32(y),
			})
			continue
		}
		g := t.src.Glyph(c.Codepoint)
		m.AppendQuad(mesh.Quad{
			X0: float32(x0),
			Y0: float32((l.BaselineY + g.Bottom) * fs),
			X1: float32((offset + c.Right) * fs),
			Y1: float32((l.BaselineY + g.Top) * fs),
			U0: g.TexLeft,
			V0: g.TexBottom,
			U1: g.TexRight,
			V1: g.TexTop,
		})
	}
}
