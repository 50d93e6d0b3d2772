package textedit

import (
	"testing"
	"unicode"

	"github.com/gogpu/textedit/font"
)

// fakeSource is a deterministic glyph source. Every visible glyph is 0.5em
// wide with ink covering its whole advance; whitespace advances 0.25em.
// Values are binary fractions so pixel results are exact.
type fakeSource struct {
	kern map[[2]rune]float64
	wide map[rune]float64
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		kern: map[[2]rune]float64{
			{'A', 'V'}: -0.125,
			{'V', 'A'}: -0.125,
			{'T', 'o'}: -0.0625,
		},
		wide: map[rune]float64{'W': 1, 'M': 0.75},
	}
}

func (f *fakeSource) Metrics() font.Metrics {
	return font.Metrics{Ascender: 0.75, Descender: -0.25, LineHeight: 1}
}

func (f *fakeSource) Glyph(r rune) font.Glyph {
	if r == '\n' {
		return font.Glyph{}
	}
	if unicode.IsSpace(r) {
		return font.Glyph{Advance: 0.25}
	}
	adv := 0.5
	if w, ok := f.wide[r]; ok {
		adv = w
	}
	u := float32(r%16) / 16
	return font.Glyph{
		Left: 0, Right: adv, Top: 0.75, Bottom: 0, Advance: adv,
		TexLeft: u, TexRight: u + 1.0/16, TexTop: 0, TexBottom: 1.0 / 16,
	}
}

func (f *fakeSource) Kern(prev, next rune) float64 {
	return f.kern[[2]rune{prev, next}]
}

// newTestLayout lays out text with the fake source at 16px.
func newTestLayout(t testing.TB, text string, opts Options) *TextLayout {
	t.Helper()
	if opts.FontSize == 0 {
		opts.FontSize = 16
	}
	l, err := NewTextLayout(newFakeSource(), opts)
	if err != nil {
		t.Fatalf("NewTextLayout() error = %v", err)
	}
	if err := l.SetText(text, true); err != nil {
		t.Fatalf("SetText(%q) error = %v", text, err)
	}
	return l
}

// lineTexts returns the text of each line.
func lineTexts(l *TextLayout) []string {
	var out []string
	for _, ln := range l.lines {
		out = append(out, Encode(l.codepoints(ln.Begin, ln.End)))
	}
	return out
}

// checkTables verifies the structural invariants of the line table.
func checkTables(t *testing.T, l *TextLayout) {
	t.Helper()
	if len(l.lines) == 0 {
		t.Fatal("line table is empty")
	}
	if l.lines[0].Begin != 0 {
		t.Errorf("first line begins at %d, want 0", l.lines[0].Begin)
	}
	if last := l.lines[len(l.lines)-1]; last.End != len(l.chars) {
		t.Errorf("last line ends at %d, want %d", last.End, len(l.chars))
	}
	for k := 1; k < len(l.lines); k++ {
		prev, cur := l.lines[k-1], l.lines[k]
		if prev.End != cur.Begin {
			t.Errorf("gap between line %d [%d,%d) and line %d [%d,%d)", k-1, prev.Begin, prev.End, k, cur.Begin, cur.End)
		}
		if cur.BaselineY >= prev.BaselineY {
			t.Errorf("line %d baseline %v not below line %d baseline %v", k, cur.BaselineY, k-1, prev.BaselineY)
		}
		if prev.Len() == 0 {
			t.Errorf("line %d is empty but not last", k-1)
		}
	}
}
