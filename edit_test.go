package textedit

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t testing.TB, text string, opts Options) *EditSession {
	t.Helper()
	return NewEditSession(newTestLayout(t, text, opts))
}

func TestNewEditSessionCaretAtEnd(t *testing.T) {
	s := newTestSession(t, "hello", DefaultOptions())
	assert.Equal(t, 5, s.Cursor())
	assert.Equal(t, 5, s.Anchor())
	assert.False(t, s.HasSelection())
}

func TestInsert(t *testing.T) {
	s := newTestSession(t, "hello", DefaultOptions())
	require.NoError(t, s.Insert(" world"))
	assert.Equal(t, "hello world", s.Text())
	assert.Equal(t, 11, s.Cursor())

	require.NoError(t, s.Insert(""))
	assert.Equal(t, "hello world", s.Text())
}

func TestInsertReplacesSelection(t *testing.T) {
	s := newTestSession(t, "hello world", DefaultOptions())
	s.SetCursor(0, false)
	s.SetCursor(5, true)
	require.Equal(t, "hello", s.SelectedText())

	require.NoError(t, s.Insert("HOWDY"))
	assert.Equal(t, "HOWDY world", s.Text())
	assert.Equal(t, 5, s.Cursor())
	assert.False(t, s.HasSelection())
}

func TestInsertRune(t *testing.T) {
	s := newTestSession(t, "ab", DefaultOptions())
	s.SetCursor(1, false)
	require.NoError(t, s.InsertRune('\r'))
	assert.Equal(t, "a\nb", s.Text())
	assert.Equal(t, 2, s.Cursor())
	assert.Len(t, s.Layout().Lines(), 2)
}

func TestInsertRuneRejectsInvalid(t *testing.T) {
	s := newTestSession(t, "ab", DefaultOptions())
	for _, r := range []rune{0xD800, 0xDFFF, -1, 0x110000} {
		err := s.InsertRune(r)
		assert.ErrorIs(t, err, ErrInvalidRune, "rune %#x", r)
	}
	assert.Equal(t, "ab", s.Text())
	assert.False(t, s.CanUndo())

	require.NoError(t, s.InsertRune(0))
	assert.Equal(t, "ab\x00", s.Text())
	assert.Equal(t, Encode(s.Layout().codepoints(0, s.Len())), s.Text())
}

func TestInsertAtShiftsCarets(t *testing.T) {
	s := newTestSession(t, "hello", DefaultOptions())
	s.SetCursor(1, false)
	s.SetCursor(3, true)

	require.NoError(t, s.InsertAt(0, ">>"))
	assert.Equal(t, ">>hello", s.Text())
	assert.Equal(t, 5, s.Cursor())
	assert.Equal(t, 3, s.Anchor())

	require.NoError(t, s.InsertAt(100, "!"))
	assert.Equal(t, ">>hello!", s.Text())
	assert.Equal(t, 5, s.Cursor())
}

func TestInsertInvalidUTF8(t *testing.T) {
	s := newTestSession(t, "abc", DefaultOptions())
	var de *DecodeError
	assert.ErrorAs(t, s.Insert("x\xff"), &de)
	assert.ErrorAs(t, s.InsertAt(0, "\xff"), &de)
	assert.ErrorAs(t, s.SetText("\xc3"), &de)
	assert.Equal(t, "abc", s.Text())
	assert.False(t, s.CanUndo())
}

func TestDeleteRange(t *testing.T) {
	tests := []struct {
		name               string
		cursor, begin, end int
		wantText           string
		wantCursor         int
	}{
		{"after range", 8, 2, 4, "heo world", 6},
		{"inside range", 3, 2, 6, "heworld", 2},
		{"before range", 1, 2, 4, "heo world", 1},
		{"clamped", 11, 8, 100, "hello wo", 8},
		{"empty", 5, 4, 4, "hello world", 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t, "hello world", DefaultOptions())
			s.SetCursor(tt.cursor, false)
			s.DeleteRange(tt.begin, tt.end)
			assert.Equal(t, tt.wantText, s.Text())
			assert.Equal(t, tt.wantCursor, s.Cursor())
		})
	}
}

func TestDeleteChar(t *testing.T) {
	s := newTestSession(t, "abc", DefaultOptions())
	s.DeleteCharAfter()
	assert.Equal(t, "abc", s.Text(), "delete at end")

	s.DeleteCharBefore()
	assert.Equal(t, "ab", s.Text())
	assert.Equal(t, 2, s.Cursor())

	s.SetCursor(0, false)
	s.DeleteCharBefore()
	assert.Equal(t, "ab", s.Text(), "backspace at start")

	s.DeleteCharAfter()
	assert.Equal(t, "b", s.Text())
	assert.Equal(t, 0, s.Cursor())
}

func TestDeleteCharWithSelection(t *testing.T) {
	s := newTestSession(t, "abcdef", DefaultOptions())
	s.SetCursor(1, false)
	s.SetCursor(4, true)
	s.DeleteCharBefore()
	assert.Equal(t, "aef", s.Text())
	assert.Equal(t, 1, s.Cursor())
	assert.False(t, s.HasSelection())
}

func TestDeleteWord(t *testing.T) {
	s := newTestSession(t, "hello world", DefaultOptions())
	s.DeleteWordBefore()
	assert.Equal(t, "hello ", s.Text())

	s.SetCursor(0, false)
	s.DeleteWordAfter()
	assert.Equal(t, " ", s.Text())
}

func TestMoveWordLeftFromInsideWord(t *testing.T) {
	s := newTestSession(t, "hello world", DefaultOptions())
	s.SetCursor(8, false)
	s.MoveWordLeft(false)
	assert.Equal(t, 6, s.Cursor())
	s.MoveWordLeft(false)
	assert.Equal(t, 0, s.Cursor())
	s.MoveWordLeft(false)
	assert.Equal(t, 0, s.Cursor())
}

func TestWordMovesAcrossPunctuation(t *testing.T) {
	s := newTestSession(t, "foo, bar", DefaultOptions())
	s.SetCursor(0, false)
	s.MoveWordRight(false)
	assert.Equal(t, 3, s.Cursor())
	s.MoveWordRight(false)
	assert.Equal(t, 8, s.Cursor())
	s.MoveWordLeft(false)
	assert.Equal(t, 5, s.Cursor())
}

func TestWordMovesStopAtNewline(t *testing.T) {
	s := newTestSession(t, "ab\ncd", DefaultOptions())
	s.SetCursor(3, false)

	s.MoveWordLeft(false)
	assert.Equal(t, 2, s.Cursor(), "steps over the newline only")
	s.MoveWordLeft(false)
	assert.Equal(t, 0, s.Cursor())

	s.SetCursor(2, false)
	s.MoveWordRight(false)
	assert.Equal(t, 3, s.Cursor())
	s.MoveWordRight(false)
	assert.Equal(t, 5, s.Cursor())
}

func TestMoveLeftRight(t *testing.T) {
	s := newTestSession(t, "abc", DefaultOptions())
	s.MoveRight(false)
	assert.Equal(t, 3, s.Cursor(), "clamped at end")

	s.MoveLeft(true)
	s.MoveLeft(true)
	assert.Equal(t, 1, s.Cursor())
	assert.Equal(t, 3, s.Anchor())

	s.MoveRight(false)
	assert.Equal(t, 3, s.Cursor(), "collapses to selection end")
	assert.False(t, s.HasSelection())

	s.SelectAll()
	s.MoveLeft(false)
	assert.Equal(t, 0, s.Cursor(), "collapses to selection start")
}

func TestHomeEnd(t *testing.T) {
	s := newTestSession(t, "ab\ncd", DefaultOptions())
	s.SetCursor(1, false)
	s.MoveEnd(false)
	assert.Equal(t, 2, s.Cursor(), "stops before newline")
	s.MoveHome(true)
	assert.Equal(t, 0, s.Cursor())
	assert.Equal(t, 2, s.Anchor())

	s.SetCursor(4, false)
	s.MoveEnd(false)
	assert.Equal(t, 5, s.Cursor())
	s.MoveHome(false)
	assert.Equal(t, 3, s.Cursor())
}

func TestHomeEndOnWrappedLine(t *testing.T) {
	// "ab " / "cd": visual lines, no newline.
	s := newTestSession(t, "ab cd", Options{TextWidth: 20.8})
	s.SetCursor(4, false)
	s.MoveHome(false)
	assert.Equal(t, 3, s.Cursor())
	s.MoveEnd(false)
	assert.Equal(t, 5, s.Cursor())
}

func TestMoveVerticalKeepsColumn(t *testing.T) {
	s := newTestSession(t, "abcd\nef\nabcd", DefaultOptions())
	s.SetCursor(3, false)

	s.MoveDown(false)
	assert.Equal(t, 7, s.Cursor(), "clamped to end of short line")
	s.MoveDown(false)
	assert.Equal(t, 11, s.Cursor(), "column restored")
	s.MoveDown(false)
	assert.Equal(t, 12, s.Cursor(), "last line moves to end")

	s.SetCursor(3, false)
	s.MoveUp(false)
	assert.Equal(t, 0, s.Cursor(), "first line moves to start")
}

func TestClick(t *testing.T) {
	s := newTestSession(t, "abcd\nef", DefaultOptions())
	s.Click(5, 0, false)
	assert.Equal(t, 1, s.Cursor())
	s.Click(100, -16, true)
	assert.Equal(t, 7, s.Cursor())
	assert.Equal(t, 1, s.Anchor())
	assert.Equal(t, "bcd\nef", s.SelectedText())
}

func TestCursorGeometry(t *testing.T) {
	s := newTestSession(t, "abcd\nef", DefaultOptions())
	x, y := s.CursorPixelPosition()
	assert.Equal(t, 16.0, x)
	assert.Equal(t, -16.0, y)
	assert.Equal(t, Rect{MinX: 16, MinY: -20, MaxX: 16, MaxY: -4}, s.CursorRect())
}

func TestComputeSelectionBoxes(t *testing.T) {
	s := newTestSession(t, "abcdefghij", Options{TextWidth: 40, Wrap: WrapChar})
	s.SetCursor(7, false)
	s.SetCursor(2, true)

	boxes := s.ComputeSelectionBoxes()
	require.Len(t, boxes, 2)
	assert.Equal(t, 24.0, boxes[0].Width())
	assert.Equal(t, 16.0, boxes[1].Width())

	s.SetCursor(2, false)
	assert.Empty(t, s.ComputeSelectionBoxes())
}

func TestSessionFollowsStagedLayoutChanges(t *testing.T) {
	s := newTestSession(t, "hello world", DefaultOptions())
	require.NoError(t, s.Layout().SetText("hi", false))
	assert.Empty(t, s.SelectedText())
	assert.Equal(t, 2, s.Cursor(), "caret clamped to the new text")
	assert.Equal(t, "hi", s.Text())
}

func TestInsertKeepsEarlierLines(t *testing.T) {
	// "ab " / "cdefghi" at 4em.
	s := newTestSession(t, "ab cdefghi", Options{TextWidth: 64})
	l := s.Layout()
	require.Equal(t, []string{"ab ", "cdefghi"}, lineTexts(l))
	firstLine := l.Lines()[0]
	firstChars := l.Characters()[:3]

	s.SetCursor(3, false)
	require.NoError(t, s.Insert("x"))

	assert.Equal(t, []string{"ab ", "xcdefghi"}, lineTexts(l))
	assert.Equal(t, firstLine, l.Lines()[0])
	assert.Equal(t, firstChars, l.Characters()[:3])
}

func TestEditMovesWordToPreviousLine(t *testing.T) {
	// Shortening "cdefgh" lets it fit after "ab ".
	s := newTestSession(t, "ab cdefgh", Options{TextWidth: 48})
	require.Equal(t, []string{"ab ", "cdefgh"}, lineTexts(s.Layout()))

	s.DeleteRange(5, 9)
	assert.Equal(t, []string{"ab cd"}, lineTexts(s.Layout()))
}

func TestEditAfterCollapsedSpace(t *testing.T) {
	// Lines "ab", " cd", " ef": the spaces are collapsed at the wraps.
	s := newTestSession(t, "ab cd ef", Options{TextWidth: 16})
	require.Equal(t, []string{"ab", " cd", " ef"}, lineTexts(s.Layout()))

	require.NoError(t, s.InsertAt(8, "g"))
	assertMatchesFullLayout(t, s)
}

// assertMatchesFullLayout checks that the session's incrementally updated
// tables equal a fresh layout of the same text.
func assertMatchesFullLayout(t *testing.T, s *EditSession) {
	t.Helper()
	l := s.Layout()
	full := newTestLayout(t, l.Text(), l.Options())
	require.Equal(t, full.Characters(), l.Characters(), "characters of %q", l.Text())
	require.Equal(t, full.Lines(), l.Lines(), "lines of %q", l.Text())
}

func TestIncrementalMatchesFullLayout(t *testing.T) {
	modes := []Options{
		{TextWidth: 80},
		{TextWidth: 37},
		{TextWidth: 16},
		{TextWidth: 53, Wrap: WrapChar},
		{Wrap: WrapSingleLine},
		{TextWidth: 64, LineSpacing: 1.25, Alignment: AlignCenter},
	}
	const pieces = "abcdefghAVWMTo  \n\t-"
	for _, opts := range modes {
		rng := rand.New(rand.NewSource(int64(opts.TextWidth) + 7))
		s := newTestSession(t, randomText(rng, 25), opts)
		for step := 0; step < 200; step++ {
			n := s.Len()
			switch rng.Intn(3) {
			case 0, 1:
				k := 1 + rng.Intn(4)
				ins := make([]byte, k)
				for i := range ins {
					ins[i] = pieces[rng.Intn(len(pieces))]
				}
				require.NoError(t, s.InsertAt(rng.Intn(n+1), string(ins)))
			default:
				if n == 0 {
					continue
				}
				b := rng.Intn(n)
				s.DeleteRange(b, b+1+rng.Intn(min(4, n-b)))
			}
			assertMatchesFullLayout(t, s)
		}
	}
}

func TestSetText(t *testing.T) {
	s := newTestSession(t, "old", DefaultOptions())
	s.SetCursor(1, false)
	require.NoError(t, s.SetText("brand new"))
	assert.Equal(t, "brand new", s.Text())
	assert.Equal(t, 9, s.Cursor())
	assert.Equal(t, 9, s.Anchor())
}
