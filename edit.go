package textedit

import (
	"fmt"
	"unicode/utf8"
)

// EditSession adds a caret, a selection and editing operations to a
// TextLayout. Edits re-lay out only the lines from the edit onward.
//
// The selection is the range between the anchor and the cursor; it is
// active when they differ. Moves with extend set move only the cursor,
// other moves collapse the selection.
//
// EditSession is not safe for concurrent use.
type EditSession struct {
	layout *TextLayout

	cursor int
	anchor int

	// desiredX keeps the caret column across vertical moves; negative
	// when unset.
	desiredX float64

	history   *history
	observers observers

	// replaced is the layout's replace count the history refers to.
	replaced uint64
}

// NewEditSession starts an editing session on l with the caret at the end.
func NewEditSession(l *TextLayout) *EditSession {
	l.Recompute()
	n := l.Len()
	return &EditSession{
		layout:   l,
		cursor:   n,
		anchor:   n,
		desiredX: -1,
		history:  newHistory(defaultHistoryDepth),
		replaced: l.replaced,
	}
}

// Layout returns the edited layout.
func (s *EditSession) Layout() *TextLayout { return s.layout }

// Text returns the current text.
func (s *EditSession) Text() string { return s.layout.Text() }

// Len returns the number of characters.
func (s *EditSession) Len() int { return s.layout.Len() }

// Cursor returns the caret index.
func (s *EditSession) Cursor() int { return s.cursor }

// Anchor returns the selection anchor index.
func (s *EditSession) Anchor() int { return s.anchor }

// HasSelection reports whether a non-empty range is selected.
func (s *EditSession) HasSelection() bool { return s.cursor != s.anchor }

// Selection returns the selected range [begin, end).
func (s *EditSession) Selection() (begin, end int) {
	return min(s.cursor, s.anchor), max(s.cursor, s.anchor)
}

// SelectedText returns the text of the selection.
func (s *EditSession) SelectedText() string {
	s.sync()
	b, e := s.Selection()
	return Encode(s.layout.codepoints(b, e))
}

// SetText replaces the whole text and moves the caret to the end.
func (s *EditSession) SetText(text string) error {
	s.sync()
	runes, err := Decode(text)
	if err != nil {
		slogger().Warn("textedit: text rejected", "err", err)
		return err
	}
	c := s.begin(0, s.Len())
	s.layout.replaceAll(runes)
	n := s.layout.Len()
	s.cursor, s.anchor = n, n
	s.desiredX = -1
	s.commit(c, runes)
	s.notify(Change{Kind: ChangeText, Begin: 0, End: n})
	return nil
}

// InsertAt inserts text at index (clamped). Carets at or after index move
// with the inserted text.
func (s *EditSession) InsertAt(index int, text string) error {
	s.sync()
	runes, err := Decode(text)
	if err != nil {
		slogger().Warn("textedit: insert rejected", "err", err)
		return err
	}
	if len(runes) == 0 {
		return nil
	}
	index = clamp(index, 0, s.Len())
	c := s.begin(index, index)
	s.insert(index, runes)
	s.commit(c, runes)
	return nil
}

// Insert replaces the selection, if any, with text and leaves the caret
// after it.
func (s *EditSession) Insert(text string) error {
	s.sync()
	runes, err := Decode(text)
	if err != nil {
		slogger().Warn("textedit: insert rejected", "err", err)
		return err
	}
	if len(runes) == 0 && !s.HasSelection() {
		return nil
	}
	s.replaceSelection(runes)
	return nil
}

// InsertRune inserts a single codepoint at the caret, replacing the
// selection. Surrogates and other non-scalar values are rejected with
// ErrInvalidRune.
func (s *EditSession) InsertRune(r rune) error {
	s.sync()
	if !utf8.ValidRune(r) {
		err := fmt.Errorf("%w: %#x", ErrInvalidRune, r)
		slogger().Warn("textedit: insert rejected", "err", err)
		return err
	}
	if r == '\r' {
		r = Newline
	}
	s.replaceSelection([]rune{r})
	return nil
}

// replaceSelection records the selection being replaced by runes as one step.
func (s *EditSession) replaceSelection(runes []rune) {
	b, e := s.Selection()
	c := s.begin(b, e)
	s.deleteSelection()
	if len(runes) > 0 {
		s.insert(s.cursor, runes)
	}
	s.commit(c, runes)
}

// DeleteRange deletes characters [begin, end). Out-of-range indices are
// clamped. Carets inside the range move to begin; carets after it shift left.
func (s *EditSession) DeleteRange(begin, end int) {
	s.sync()
	begin = clamp(begin, 0, s.Len())
	end = clamp(end, begin, s.Len())
	if begin == end {
		return
	}
	c := s.begin(begin, end)
	s.delete(begin, end)
	s.commit(c, nil)
}

// DeleteCharBefore deletes the selection or the character before the caret.
func (s *EditSession) DeleteCharBefore() {
	s.sync()
	if s.HasSelection() {
		s.DeleteSelection()
		return
	}
	if s.cursor > 0 {
		s.DeleteRange(s.cursor-1, s.cursor)
	}
}

// DeleteCharAfter deletes the selection or the character after the caret.
func (s *EditSession) DeleteCharAfter() {
	s.sync()
	if s.HasSelection() {
		s.DeleteSelection()
		return
	}
	s.DeleteRange(s.cursor, s.cursor+1)
}

// DeleteWordBefore deletes the selection or back to the previous word start.
func (s *EditSession) DeleteWordBefore() {
	s.sync()
	if s.HasSelection() {
		s.DeleteSelection()
		return
	}
	s.DeleteRange(s.wordLeft(s.cursor), s.cursor)
}

// DeleteWordAfter deletes the selection or forward to the next word end.
func (s *EditSession) DeleteWordAfter() {
	s.sync()
	if s.HasSelection() {
		s.DeleteSelection()
		return
	}
	s.DeleteRange(s.cursor, s.wordRight(s.cursor))
}

// DeleteSelection deletes the selected range.
func (s *EditSession) DeleteSelection() {
	s.sync()
	if !s.HasSelection() {
		return
	}
	s.replaceSelection(nil)
}

func (s *EditSession) deleteSelection() {
	if s.HasSelection() {
		b, e := s.Selection()
		s.delete(b, e)
	}
}

// insert splices runes at index and shifts carets at or after it.
func (s *EditSession) insert(index int, runes []rune) {
	s.layout.splice(index, index, runes)
	n := len(runes)
	if s.cursor >= index {
		s.cursor += n
	}
	if s.anchor >= index {
		s.anchor += n
	}
	s.desiredX = -1
	s.notify(Change{Kind: ChangeText, Begin: index, End: index + n})
}

// delete removes [begin, end) and clamps the carets.
func (s *EditSession) delete(begin, end int) {
	s.layout.splice(begin, end, nil)
	s.cursor = shiftForDelete(s.cursor, begin, end)
	s.anchor = shiftForDelete(s.anchor, begin, end)
	s.desiredX = -1
	s.notify(Change{Kind: ChangeText, Begin: begin, End: begin})
}

func shiftForDelete(p, begin, end int) int {
	switch {
	case p >= end:
		return p - (end - begin)
	case p > begin:
		return begin
	default:
		return p
	}
}

// sync applies staged layout changes. Text replaced through the layout
// directly drops the undo history and clamps the carets.
func (s *EditSession) sync() {
	s.layout.Recompute()
	if s.replaced != s.layout.replaced {
		s.replaced = s.layout.replaced
		s.history.clear()
	}
	n := s.layout.Len()
	s.cursor = clamp(s.cursor, 0, n)
	s.anchor = clamp(s.anchor, 0, n)
}

// PixelToCursorIndex returns the caret index under the pixel (x, y).
func (s *EditSession) PixelToCursorIndex(x, y float64) int {
	s.sync()
	return s.layout.PixelToCursorIndex(x, y)
}

// Click moves the caret to the pixel (x, y).
func (s *EditSession) Click(x, y float64, extend bool) {
	s.SetCursor(s.PixelToCursorIndex(x, y), extend)
}

// CursorPixelPosition returns the caret position on its baseline in pixels.
func (s *EditSession) CursorPixelPosition() (x, y float64) {
	s.sync()
	return s.layout.CaretPosition(s.cursor)
}

// CursorRect returns the caret rectangle in pixels.
func (s *EditSession) CursorRect() Rect {
	s.sync()
	return s.layout.CaretRect(s.cursor)
}

// ComputeSelectionBoxes returns one rectangle per selected line segment.
func (s *EditSession) ComputeSelectionBoxes() []Rect {
	s.sync()
	b, e := s.Selection()
	return s.layout.SelectionBoxes(b, e)
}
