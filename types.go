package textedit

import (
	"fmt"
	"strings"
)

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// WrapMode selects the line breaking policy of a layout pass.
type WrapMode uint8

const (
	// WrapWord breaks at word boundaries and falls back to character
	// breaks for words wider than an empty line (default).
	WrapWord WrapMode = iota

	// WrapChar breaks between any two characters.
	WrapChar

	// WrapSingleLine never wraps. Only explicit newlines start a line;
	// TextWidth is used for the truncation index only.
	WrapSingleLine
)

// String returns the string representation of the wrap mode.
func (m WrapMode) String() string {
	switch m {
	case WrapWord:
		return "Word"
	case WrapChar:
		return "Char"
	case WrapSingleLine:
		return "SingleLine"
	default:
		return unknownStr
	}
}

// ParseWrapMode parses "word", "char" or "single" (case-insensitive).
func ParseWrapMode(s string) (WrapMode, error) {
	switch strings.ToLower(s) {
	case "word":
		return WrapWord, nil
	case "char":
		return WrapChar, nil
	case "single", "singleline":
		return WrapSingleLine, nil
	default:
		return 0, fmt.Errorf("textedit: unknown wrap mode %q", s)
	}
}

// Alignment specifies horizontal line alignment.
type Alignment int

const (
	// AlignLeft aligns lines to the left edge (default).
	AlignLeft Alignment = iota
	// AlignCenter centers lines.
	AlignCenter
	// AlignRight aligns lines to the right edge.
	AlignRight
)

// String returns the string representation of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		return unknownStr
	}
}

// ParseAlignment parses "left", "center" or "right" (case-insensitive).
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(s) {
	case "left":
		return AlignLeft, nil
	case "center", "centre":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	default:
		return 0, fmt.Errorf("textedit: unknown alignment %q", s)
	}
}

// Character is one measured glyph slot in logical text order.
//
// Left and Right are in em units relative to the line origin, before
// alignment. Whitespace occupies its advance; whitespace collapsed at a
// wrap point has Left == Right. A newline is a zero-width slot at the pen
// position and belongs to the line it ends.
type Character struct {
	Codepoint   rune
	Left, Right float64
}

// Line is one visual row covering Characters[Begin:End].
//
// BaselineY is 0 for the first line and decreases by one line advance per
// line (em units, y-up). Lines are contiguous: Lines[k].End == Lines[k+1].Begin.
// Only the last line can be empty.
type Line struct {
	BaselineY  float64
	Begin, End int
}

// Len returns the number of characters in the line.
func (l Line) Len() int { return l.End - l.Begin }

// Contains reports whether character index i lies in the line.
func (l Line) Contains(i int) bool { return l.Begin <= i && i < l.End }

// Rect is an axis-aligned rectangle in pixels, y-up.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the height of the rectangle.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.MinX >= r.MaxX || r.MinY >= r.MaxY }

// Bounds is the measured extent of a layout in pixels at the current font size.
// Top is positive (above the first baseline), Bottom is negative.
type Bounds struct {
	Left, Right float64
	Top, Bottom float64
}

// Width returns Right - Left.
func (b Bounds) Width() float64 { return b.Right - b.Left }

// Height returns Top - Bottom.
func (b Bounds) Height() float64 { return b.Top - b.Bottom }
