package main

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/gogpu/textedit"
	"github.com/gogpu/textedit/font"
)

const renderMargin = 8

var (
	quadColor      = color.NRGBA{R: 0x40, G: 0x80, B: 0xff, A: 0x30}
	textColor      = color.NRGBA{A: 0xff}
	selectionColor = color.NRGBA{R: 0xff, G: 0xd0, B: 0x00, A: 0x60}
	caretColor     = color.NRGBA{R: 0xe0, G: 0x20, B: 0x20, A: 0xff}
)

// canvas maps layout pixels (y-up, first baseline at 0) to image pixels.
type canvas struct {
	img  *image.NRGBA
	top  float64 // layout y of the image's top margin edge
	rast *vector.Rasterizer
}

func newCanvas(l *textedit.TextLayout) *canvas {
	b := l.Bounds()
	m := l.Model()
	if len(m.Lines) > 0 {
		// Empty trailing lines still get a caret.
		last := m.Lines[len(m.Lines)-1]
		fm := l.Font().Metrics()
		fs := l.Options().FontSize
		b.Top = max(b.Top, fm.Ascender*fs)
		b.Bottom = min(b.Bottom, (last.BaselineY+fm.Descender)*fs)
	}
	w := max(b.Right, l.Options().TextWidth, 1)
	h := max(b.Height(), 1)
	iw := int(math.Ceil(w)) + 2*renderMargin
	ih := int(math.Ceil(h)) + 2*renderMargin

	img := image.NewNRGBA(image.Rect(0, 0, iw, ih))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	return &canvas{
		img:  img,
		top:  b.Top,
		rast: vector.NewRasterizer(iw, ih),
	}
}

func (c *canvas) px(x float64) float32 { return float32(x + renderMargin) }
func (c *canvas) py(y float64) float32 { return float32(c.top - y + renderMargin) }

// fillRect fills the layout-space rectangle r with col.
func (c *canvas) fillRect(minX, minY, maxX, maxY float64, col color.Color) {
	b := c.img.Bounds()
	c.rast.Reset(b.Dx(), b.Dy())
	x0, x1 := c.px(minX), c.px(maxX)
	y0, y1 := c.py(maxY), c.py(minY)
	c.rast.MoveTo(x0, y0)
	c.rast.LineTo(x1, y0)
	c.rast.LineTo(x1, y1)
	c.rast.LineTo(x0, y1)
	c.rast.ClosePath()
	c.rast.Draw(c.img, b, image.NewUniform(col), image.Point{})
}

// drawGlyphs scales each glyph's atlas region into its quad. Fonts whose
// backend cannot rasterize leave the atlas blank, so only the quad boxes
// show.
func (c *canvas) drawGlyphs(m *textedit.Model, atlas *font.Atlas) {
	if atlas == nil {
		return
	}
	src := atlas.Image()
	size := float64(src.Bounds().Dx())
	cov := image.NewAlpha(c.img.Bounds())
	for i := range m.QuadCount() {
		q := m.Mesh.Quad(i)
		if q.Degenerate() {
			continue
		}
		dr := image.Rect(
			int(c.px(float64(q.X0))), int(c.py(float64(q.Y1))),
			int(math.Ceil(float64(c.px(float64(q.X1))))), int(math.Ceil(float64(c.py(float64(q.Y0))))),
		)
		// V1 is the top of the glyph in the atlas.
		sr := image.Rect(
			int(float64(q.U0)*size), int(float64(q.V1)*size),
			int(float64(q.U1)*size), int(float64(q.V0)*size),
		)
		if dr.Empty() || sr.Empty() {
			continue
		}
		draw.ApproxBiLinear.Scale(cov, dr, src, sr, draw.Over, nil)
	}
	draw.DrawMask(c.img, c.img.Bounds(), image.NewUniform(textColor), image.Point{}, cov, image.Point{}, draw.Over)
}

// renderSession draws glyph quads, text, the selection and the caret.
func renderSession(s *textedit.EditSession, atlas *font.Atlas) *image.NRGBA {
	l := s.Layout()
	m := l.Model()
	c := newCanvas(l)

	for i := range m.QuadCount() {
		q := m.Mesh.Quad(i)
		if !q.Degenerate() {
			c.fillRect(float64(q.X0), float64(q.Y0), float64(q.X1), float64(q.Y1), quadColor)
		}
	}
	for _, r := range s.ComputeSelectionBoxes() {
		c.fillRect(r.MinX, r.MinY, max(r.MaxX, r.MinX+1), r.MaxY, selectionColor)
	}
	c.drawGlyphs(m, atlas)

	caret := s.CursorRect()
	c.fillRect(caret.MinX, caret.MinY, caret.MinX+1, caret.MaxY, caretColor)
	return c.img
}

// encodePNG renders the session as PNG to w.
func encodePNG(w io.Writer, s *textedit.EditSession, atlas *font.Atlas) error {
	return png.Encode(w, renderSession(s, atlas))
}

// writePNG renders the session to a PNG file.
func writePNG(path string, s *textedit.EditSession, atlas *font.Atlas) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encodePNG(f, s, atlas); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
