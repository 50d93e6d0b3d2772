package textedit

import (
	"github.com/emirpasic/gods/lists/doublylinkedlist"
	"github.com/emirpasic/gods/stacks/arraystack"
)

// defaultHistoryDepth is the number of undo steps kept per session.
const defaultHistoryDepth = 100

// carets is the cursor and anchor pair saved around an edit.
type carets struct {
	cursor, anchor int
}

// change is one undoable edit: removed was replaced by inserted at index.
// Only the touched runes are stored, so undo and redo re-lay out the
// suffix like any other edit.
type change struct {
	index    int
	removed  []rune
	inserted []rune
	before   carets
	after    carets
}

// history keeps bounded undo steps and the redo stack.
// The oldest undo step is dropped once depth is exceeded.
type history struct {
	undo  *doublylinkedlist.List
	redo  *arraystack.Stack
	depth int
}

func newHistory(depth int) *history {
	return &history{
		undo:  doublylinkedlist.New(),
		redo:  arraystack.New(),
		depth: depth,
	}
}

// record pushes a finished edit. Any redo steps are discarded.
func (h *history) record(c change) {
	h.undo.Add(c)
	if h.undo.Size() > h.depth {
		h.undo.Remove(0)
	}
	h.redo.Clear()
}

func (h *history) clear() {
	h.undo.Clear()
	h.redo.Clear()
}

// back pops the last undo step onto the redo stack.
func (h *history) back() (change, bool) {
	last := h.undo.Size() - 1
	v, ok := h.undo.Get(last)
	if !ok {
		return change{}, false
	}
	h.undo.Remove(last)
	h.redo.Push(v)
	return v.(change), true
}

// forward pops the last redo step back onto the undo list.
func (h *history) forward() (change, bool) {
	v, ok := h.redo.Pop()
	if !ok {
		return change{}, false
	}
	h.undo.Add(v)
	return v.(change), true
}

func (s *EditSession) carets() carets {
	return carets{cursor: s.cursor, anchor: s.anchor}
}

// begin starts recording the replacement of [b, e).
func (s *EditSession) begin(b, e int) change {
	return change{
		index:   b,
		removed: s.layout.codepoints(b, e),
		before:  s.carets(),
	}
}

// commit completes c with the inserted runes and the carets after the edit.
func (s *EditSession) commit(c change, inserted []rune) {
	c.inserted = inserted
	c.after = s.carets()
	s.history.record(c)
}

// replay replaces the runes at index and moves the carets to to.
func (s *EditSession) replay(index int, old, runes []rune, to carets) {
	s.layout.splice(index, index+len(old), runes)
	n := s.layout.Len()
	s.cursor = clamp(to.cursor, 0, n)
	s.anchor = clamp(to.anchor, 0, n)
	s.desiredX = -1
	s.notify(Change{Kind: ChangeText, Begin: index, End: index + len(runes)})
}

// Undo reverts the last edit. It reports false when there is nothing to undo.
func (s *EditSession) Undo() bool {
	s.sync()
	c, ok := s.history.back()
	if ok {
		s.replay(c.index, c.inserted, c.removed, c.before)
	}
	return ok
}

// Redo reapplies the last undone edit. It reports false when there is
// nothing to redo.
func (s *EditSession) Redo() bool {
	s.sync()
	c, ok := s.history.forward()
	if ok {
		s.replay(c.index, c.removed, c.inserted, c.after)
	}
	return ok
}

// CanUndo reports whether Undo would change anything.
func (s *EditSession) CanUndo() bool { return !s.history.undo.Empty() }

// CanRedo reports whether Redo would change anything.
func (s *EditSession) CanRedo() bool { return !s.history.redo.Empty() }
