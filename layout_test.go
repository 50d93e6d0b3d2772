package textedit

import (
	"errors"
	"math/rand"
	"reflect"
	"strings"
	"testing"
)

func TestNewTextLayoutNilSource(t *testing.T) {
	if _, err := NewTextLayout(nil, DefaultOptions()); !errors.Is(err, ErrNilSource) {
		t.Errorf("NewTextLayout(nil) error = %v, want ErrNilSource", err)
	}
}

func TestEmptyLayout(t *testing.T) {
	l := newTestLayout(t, "", DefaultOptions())
	lines := l.Lines()
	if len(lines) != 1 || lines[0] != (Line{}) {
		t.Errorf("Lines() = %+v, want one empty line", lines)
	}
	if l.Bounds() != (Bounds{}) {
		t.Errorf("Bounds() = %+v, want zero", l.Bounds())
	}
	if m := l.Model(); m.QuadCount() != 0 {
		t.Errorf("QuadCount() = %d, want 0", m.QuadCount())
	}
}

func TestWordWrapScenarios(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width float64 // pixels at 16px/em
		want  []string
	}{
		// "ab" is 1em; the space overflows and collapses onto the next line.
		{"space hidden at wrap", "ab cd", 16, []string{"ab", " cd"}},
		// "ab " is 1.25em; "cd" moves to the next line.
		{"word moves", "ab cd", 20.8, []string{"ab ", "cd"}},
		{"fits", "ab cd", 100, []string{"ab cd"}},
		{"unconstrained", "ab cd ef", 0, []string{"ab cd ef"}},
		{"newline", "ab\ncd", 0, []string{"ab\n", "cd"}},
		{"trailing newline", "ab\n", 0, []string{"ab\n", ""}},
		{"crlf", "ab\r\ncd", 0, []string{"ab\n", "cd"}},
		{"three words", "aa bb cc", 40, []string{"aa bb ", "cc"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestLayout(t, tt.text, Options{TextWidth: tt.width})
			checkTables(t, l)
			if got := lineTexts(l); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("lines = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCollapsedSpaceHasNoWidth(t *testing.T) {
	l := newTestLayout(t, "ab cd", Options{TextWidth: 16})
	sp := l.chars[2]
	if sp.Codepoint != ' ' || sp.Left != 0 || sp.Right != 0 {
		t.Errorf("collapsed space = %+v, want zero-width at 0", sp)
	}
	if c := l.chars[3]; c.Left != 0 {
		t.Errorf("'c' after collapsed space starts at %v, want 0", c.Left)
	}
}

func TestLongWordFallsBackToCharWrap(t *testing.T) {
	// 20 glyphs of 0.5em in a 2em box: 4 per line.
	l := newTestLayout(t, "supercalifragilistic", Options{TextWidth: 32})
	checkTables(t, l)
	if len(l.lines) < 2 {
		t.Fatalf("got %d lines, want >= 2", len(l.lines))
	}
	for k, ln := range l.lines {
		if ln.Len() != 4 {
			t.Errorf("line %d has %d chars, want 4", k, ln.Len())
		}
	}
	if got := strings.Join(lineTexts(l), ""); got != "supercalifragilistic" {
		t.Errorf("joined lines = %q", got)
	}
}

func TestLongWordAfterShortWord(t *testing.T) {
	l := newTestLayout(t, "ab abcdefgh", Options{TextWidth: 32})
	checkTables(t, l)
	// The word cannot fit an empty line, so it breaks where it stands.
	want := []string{"ab a", "bcde", "fgh"}
	if got := lineTexts(l); !reflect.DeepEqual(got, want) {
		t.Errorf("lines = %q, want %q", got, want)
	}
}

func TestCharWrap(t *testing.T) {
	l := newTestLayout(t, "abcdefghij", Options{TextWidth: 40, Wrap: WrapChar})
	checkTables(t, l)
	want := []string{"abcde", "fghij"}
	if got := lineTexts(l); !reflect.DeepEqual(got, want) {
		t.Errorf("lines = %q, want %q", got, want)
	}
}

func TestFirstGlyphNeverWraps(t *testing.T) {
	// 'W' is 1em wide, wider than the 0.5em box.
	l := newTestLayout(t, "WW", Options{TextWidth: 8, Wrap: WrapChar})
	checkTables(t, l)
	want := []string{"W", "W"}
	if got := lineTexts(l); !reflect.DeepEqual(got, want) {
		t.Errorf("lines = %q, want %q", got, want)
	}
}

func TestNULWrapsLikeAnyGlyph(t *testing.T) {
	// 1.5em box: three 0.5em glyphs per line.
	tests := []struct {
		name string
		mode WrapMode
		text string
		want []string
	}{
		{"plain", WrapChar, "abcdefgh", []string{"abc", "def", "gh"}},
		{"inner", WrapChar, "ab\x00cdefgh", []string{"ab\x00", "cde", "fgh"}},
		{"leading", WrapChar, "\x00bcd", []string{"\x00bc", "d"}},
		{"word", WrapWord, "ab\x00cdefgh", []string{"ab\x00", "cde", "fgh"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestLayout(t, tt.text, Options{TextWidth: 24, Wrap: tt.mode})
			checkTables(t, l)
			if got := lineTexts(l); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("lines = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSingleLine(t *testing.T) {
	l := newTestLayout(t, "ab cd ef", Options{TextWidth: 16, Wrap: WrapSingleLine})
	if len(l.lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(l.lines))
	}
	// "ab" ends at 1em; the space at 1.25em is the first past the width.
	if got := l.Truncation(); got != 2 {
		t.Errorf("Truncation() = %d, want 2", got)
	}

	l.SetTextWidth(0, true)
	if got := l.Truncation(); got != l.Len() {
		t.Errorf("Truncation() without width = %d, want %d", got, l.Len())
	}
}

func TestKerning(t *testing.T) {
	l := newTestLayout(t, "AVA", DefaultOptions())
	want := []Character{
		{Codepoint: 'A', Left: 0, Right: 0.5},
		{Codepoint: 'V', Left: 0.375, Right: 0.875},
		{Codepoint: 'A', Left: 0.75, Right: 1.25},
	}
	if got := l.Characters(); !reflect.DeepEqual(got, want) {
		t.Errorf("Characters() = %+v, want %+v", got, want)
	}
}

func TestNoKerningAcrossLines(t *testing.T) {
	l := newTestLayout(t, "A\nV", DefaultOptions())
	if c := l.chars[2]; c.Left != 0 {
		t.Errorf("'V' on new line starts at %v, want 0", c.Left)
	}
}

func TestTab(t *testing.T) {
	l := newTestLayout(t, "\ta", DefaultOptions())
	if c := l.chars[1]; c.Left != 1 {
		t.Errorf("'a' after tab starts at %v, want 1 (4 spaces)", c.Left)
	}
}

func TestBaselines(t *testing.T) {
	l := newTestLayout(t, "a\nb\nc", Options{LineSpacing: 1.5})
	want := []float64{0, -1.5, -3}
	for k, ln := range l.lines {
		if ln.BaselineY != want[k] {
			t.Errorf("line %d BaselineY = %v, want %v", k, ln.BaselineY, want[k])
		}
	}
}

func TestDecodeErrorLeavesTablesUntouched(t *testing.T) {
	l := newTestLayout(t, "hello", DefaultOptions())
	before := l.Characters()

	err := l.SetText("bad\xc3(", true)
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("SetText() error = %v, want *DecodeError", err)
	}
	if de.Offset != 3 || de.Byte != 0xc3 {
		t.Errorf("DecodeError = %+v, want offset 3 byte 0xc3", de)
	}
	if got := l.Characters(); !reflect.DeepEqual(got, before) {
		t.Error("character table changed after decode error")
	}
	if l.Text() != "hello" {
		t.Errorf("Text() = %q, want hello", l.Text())
	}
}

func TestStagedSetters(t *testing.T) {
	l := newTestLayout(t, "ab cd", DefaultOptions())

	if err := l.SetText("ab cd ef gh", false); err != nil {
		t.Fatal(err)
	}
	l.SetTextWidth(32, false)
	l.SetAlignment(AlignRight, false)
	if !l.NeedsRecompute() {
		t.Fatal("NeedsRecompute() = false after staged setters")
	}
	if l.Text() != "ab cd" || len(l.lines) != 1 {
		t.Error("staged changes visible before Recompute")
	}

	l.Recompute()
	if l.NeedsRecompute() {
		t.Error("NeedsRecompute() = true after Recompute")
	}
	if l.Text() != "ab cd ef gh" {
		t.Errorf("Text() = %q", l.Text())
	}
	if l.Options().Alignment != AlignRight || l.Options().TextWidth != 32 {
		t.Errorf("Options() = %+v", l.Options())
	}
	want := []string{"ab ", "cd ", "ef ", "gh"}
	if got := lineTexts(l); !reflect.DeepEqual(got, want) {
		t.Errorf("lines = %q, want %q", got, want)
	}
}

func TestFontSizeRescalesWithoutRewrap(t *testing.T) {
	l := newTestLayout(t, "ab cd\nef", DefaultOptions())
	chars, lines := l.Characters(), l.Lines()
	b16 := l.Bounds()

	l.SetFontSize(32, true)
	if !reflect.DeepEqual(l.Characters(), chars) || !reflect.DeepEqual(l.Lines(), lines) {
		t.Error("unconstrained font size change altered the tables")
	}
	b32 := l.Bounds()
	if b32.Right != 2*b16.Right || b32.Bottom != 2*b16.Bottom {
		t.Errorf("Bounds at 32px = %+v, want 2x %+v", b32, b16)
	}
}

func TestFontSizeRewrapsWhenConstrained(t *testing.T) {
	l := newTestLayout(t, "ab cd", Options{TextWidth: 40})
	if len(l.lines) != 1 {
		t.Fatalf("got %d lines at 16px, want 1", len(l.lines))
	}
	l.SetFontSize(32, true)
	if len(l.lines) != 2 {
		t.Errorf("got %d lines at 32px, want 2", len(l.lines))
	}
}

func TestSetFont(t *testing.T) {
	l := newTestLayout(t, "aa aa", Options{TextWidth: 48})
	wide := newFakeSource()
	wide.wide['a'] = 1
	l.SetFont(wide, true)
	if l.Font() != wide {
		t.Fatal("Font() not replaced")
	}
	want := []string{"aa ", "aa"}
	if got := lineTexts(l); !reflect.DeepEqual(got, want) {
		t.Errorf("lines = %q, want %q", got, want)
	}
	l.SetFont(nil, true)
	if l.Font() != wide {
		t.Error("SetFont(nil) replaced the source")
	}
}

func TestBounds(t *testing.T) {
	l := newTestLayout(t, "abc\nW", DefaultOptions())
	want := Bounds{Left: 0, Right: 24, Top: 12, Bottom: -20}
	if got := l.Bounds(); got != want {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}
}

func TestAlignment(t *testing.T) {
	tests := []struct {
		name  string
		align Alignment
		width float64
		want  []float64 // pixels
	}{
		// Widest line "abcd" is 2em = 32px; "ab" is 16px.
		{"left", AlignLeft, 0, []float64{0, 0}},
		{"center unconstrained", AlignCenter, 0, []float64{0, 8}},
		{"right unconstrained", AlignRight, 0, []float64{0, 16}},
		// Constrained: relative to the declared 48px width.
		{"center constrained", AlignCenter, 48, []float64{8, 16}},
		{"right constrained", AlignRight, 48, []float64{16, 32}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestLayout(t, "abcd\nab", Options{Alignment: tt.align, TextWidth: tt.width})
			for k, want := range tt.want {
				if got := l.LineOffset(k); got != want {
					t.Errorf("LineOffset(%d) = %v, want %v", k, got, want)
				}
			}
		})
	}
}

func TestAlignmentIgnoresTrailingWhitespace(t *testing.T) {
	l := newTestLayout(t, "ab  \nab", Options{Alignment: AlignRight})
	if l.LineOffset(0) != l.LineOffset(1) {
		t.Errorf("offsets %v and %v differ; trailing spaces counted", l.LineOffset(0), l.LineOffset(1))
	}
}

func TestClone(t *testing.T) {
	l := newTestLayout(t, "ab cd", DefaultOptions())
	c := l.Clone()
	NewEditSession(c).Insert("xyz")
	if l.Text() != "ab cd" {
		t.Errorf("original Text() = %q after editing the clone", l.Text())
	}
	if c.Text() != "ab cdxyz" {
		t.Errorf("clone Text() = %q", c.Text())
	}
}

func TestLineOf(t *testing.T) {
	l := newTestLayout(t, "ab\ncd\n", DefaultOptions())
	tests := []struct{ index, want int }{
		{0, 0}, {2, 0}, {3, 1}, {5, 1}, {6, 2}, {100, 2}, {-1, 0},
	}
	for _, tt := range tests {
		if got := l.LineOf(tt.index); got != tt.want {
			t.Errorf("LineOf(%d) = %d, want %d", tt.index, got, tt.want)
		}
	}
}

// randomText builds text from short words, spaces and newlines.
func randomText(rng *rand.Rand, words int) string {
	const letters = "abcdefghAVWMTo"
	var sb strings.Builder
	for i := 0; i < words; i++ {
		n := 1 + rng.Intn(5)
		for j := 0; j < n; j++ {
			sb.WriteByte(letters[rng.Intn(len(letters))])
		}
		switch rng.Intn(8) {
		case 0:
			sb.WriteByte('\n')
		case 1:
			sb.WriteString("  ")
		default:
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

func TestLineCoverageInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, mode := range []WrapMode{WrapWord, WrapChar, WrapSingleLine} {
		for i := 0; i < 20; i++ {
			text := randomText(rng, 30)
			l := newTestLayout(t, text, Options{TextWidth: float64(16 + rng.Intn(100)), Wrap: mode})
			checkTables(t, l)
		}
	}
}

func TestWordWrapNeverSplitsFittingWords(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 50; i++ {
		text := randomText(rng, 40)
		// Words are at most 5 glyphs of up to 1em: 5em = 80px always fits.
		l := newTestLayout(t, text, Options{TextWidth: float64(80 + rng.Intn(80))})
		for k := 1; k < len(l.lines); k++ {
			b := l.lines[k].Begin
			if b == len(l.chars) {
				continue
			}
			if !isBreak(l.chars[b].Codepoint) && !isBreak(l.chars[b-1].Codepoint) {
				t.Fatalf("text %q: line %d starts inside a word at %d (lines %q)", text, k, b, lineTexts(l))
			}
		}
	}
}
