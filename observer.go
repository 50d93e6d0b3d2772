package textedit

import "slices"

// ChangeKind classifies a session change.
type ChangeKind int

const (
	// ChangeText means characters were inserted or deleted.
	ChangeText ChangeKind = iota
	// ChangeCursor means only the caret or selection moved.
	ChangeCursor
)

// String returns the string representation of the change kind.
func (k ChangeKind) String() string {
	switch k {
	case ChangeText:
		return "Text"
	case ChangeCursor:
		return "Cursor"
	default:
		return unknownStr
	}
}

// Change describes one session update. For text changes [Begin, End) is
// the inserted range in the new text (empty for deletions).
type Change struct {
	Kind       ChangeKind
	Begin, End int
	Cursor     int
	Anchor     int
}

// observer is one subscription.
type observer struct {
	id int
	fn func(Change)
}

// observers holds the subscriptions of one session, in subscription order.
type observers struct {
	nextID int
	list   []observer
}

// Subscribe registers fn to be called after every change of the session.
// The returned function removes the subscription; calling it twice is safe.
func (s *EditSession) Subscribe(fn func(Change)) (unsubscribe func()) {
	id := s.observers.nextID
	s.observers.nextID++
	s.observers.list = append(s.observers.list, observer{id: id, fn: fn})
	return func() {
		for i, o := range s.observers.list {
			if o.id == id {
				s.observers.list = append(s.observers.list[:i], s.observers.list[i+1:]...)
				return
			}
		}
	}
}

func (s *EditSession) notify(c Change) {
	c.Cursor, c.Anchor = s.cursor, s.anchor
	for _, o := range slices.Clone(s.observers.list) {
		o.fn(c)
	}
}
