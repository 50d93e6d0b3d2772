package textedit

// wordLeft returns the start of the word before i. The scan skips
// non-alphanumeric characters, then the alphanumeric run, and never crosses
// a newline; at a line start it steps over the newline itself.
func (s *EditSession) wordLeft(i int) int {
	chars := s.layout.chars
	j := i
	for j > 0 && !isNewline(chars[j-1].Codepoint) && !isAlphanumeric(chars[j-1].Codepoint) {
		j--
	}
	for j > 0 && isAlphanumeric(chars[j-1].Codepoint) {
		j--
	}
	if j == i && i > 0 && isNewline(chars[i-1].Codepoint) {
		return i - 1
	}
	return j
}

// wordRight returns the end of the word after i, mirroring wordLeft.
func (s *EditSession) wordRight(i int) int {
	chars := s.layout.chars
	n := len(chars)
	j := i
	for j < n && !isNewline(chars[j].Codepoint) && !isAlphanumeric(chars[j].Codepoint) {
		j++
	}
	for j < n && isAlphanumeric(chars[j].Codepoint) {
		j++
	}
	if j == i && i < n && isNewline(chars[i].Codepoint) {
		return i + 1
	}
	return j
}

// SetCursor moves the caret to index (clamped). With extend the anchor
// stays, otherwise the selection collapses.
func (s *EditSession) SetCursor(index int, extend bool) {
	s.sync()
	s.desiredX = -1
	s.moveTo(clamp(index, 0, s.Len()), extend)
}

// SelectAll selects the whole text.
func (s *EditSession) SelectAll() {
	s.sync()
	s.anchor = 0
	s.moveTo(s.Len(), true)
}

// MoveLeft moves the caret one character left. Without extend, an active
// selection collapses to its start instead.
func (s *EditSession) MoveLeft(extend bool) {
	s.sync()
	s.desiredX = -1
	if s.HasSelection() && !extend {
		b, _ := s.Selection()
		s.moveTo(b, false)
		return
	}
	s.moveTo(max(s.cursor-1, 0), extend)
}

// MoveRight moves the caret one character right. Without extend, an active
// selection collapses to its end instead.
func (s *EditSession) MoveRight(extend bool) {
	s.sync()
	s.desiredX = -1
	if s.HasSelection() && !extend {
		_, e := s.Selection()
		s.moveTo(e, false)
		return
	}
	s.moveTo(min(s.cursor+1, s.Len()), extend)
}

// MoveWordLeft moves the caret to the beginning of the word on its left.
func (s *EditSession) MoveWordLeft(extend bool) {
	s.sync()
	s.desiredX = -1
	s.moveTo(s.wordLeft(s.cursor), extend)
}

// MoveWordRight moves the caret to the end of the word on its right.
func (s *EditSession) MoveWordRight(extend bool) {
	s.sync()
	s.desiredX = -1
	s.moveTo(s.wordRight(s.cursor), extend)
}

// MoveHome moves the caret to the start of its visual line.
func (s *EditSession) MoveHome(extend bool) {
	s.sync()
	s.desiredX = -1
	l := s.layout.lines[s.layout.LineOf(s.cursor)]
	s.moveTo(l.Begin, extend)
}

// MoveEnd moves the caret to the end of its visual line, before a
// trailing newline.
func (s *EditSession) MoveEnd(extend bool) {
	s.sync()
	s.desiredX = -1
	l := s.layout.lines[s.layout.LineOf(s.cursor)]
	end := l.End
	if end > l.Begin && isNewline(s.layout.chars[end-1].Codepoint) {
		end--
	}
	s.moveTo(end, extend)
}

// MoveUp moves the caret to the previous line, keeping its column.
// On the first line it moves to the start of the text.
func (s *EditSession) MoveUp(extend bool) {
	s.moveVertical(-1, extend)
}

// MoveDown moves the caret to the next line, keeping its column.
// On the last line it moves to the end of the text.
func (s *EditSession) MoveDown(extend bool) {
	s.moveVertical(1, extend)
}

func (s *EditSession) moveVertical(dir int, extend bool) {
	s.sync()
	t := s.layout
	k := t.LineOf(s.cursor) + dir
	switch {
	case k < 0:
		s.moveTo(0, extend)
		return
	case k >= len(t.lines):
		s.moveTo(t.Len(), extend)
		return
	}

	x, _ := t.CaretPosition(s.cursor)
	if s.desiredX >= 0 {
		x = s.desiredX
	}
	y := t.lines[k].BaselineY * t.opts.FontSize
	s.moveTo(t.PixelToCursorIndex(x, y), extend)
	s.desiredX = x
}

// moveTo sets the caret and notifies observers when it moved.
func (s *EditSession) moveTo(index int, extend bool) {
	anchor := s.anchor
	if !extend {
		anchor = index
	}
	if index == s.cursor && anchor == s.anchor {
		return
	}
	s.cursor, s.anchor = index, anchor
	s.notify(Change{Kind: ChangeCursor, Begin: index, End: index})
}
