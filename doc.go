// Package textedit lays out and edits text for GPU rendering.
//
// # Overview
//
// A [TextLayout] turns a string, a glyph source and layout options into a
// table of measured characters grouped into lines. An [EditSession] wraps a
// layout with a caret, a selection and editing operations; each edit
// re-lays out only the lines from the edit onward.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/textedit"
//	    "github.com/gogpu/textedit/font"
//	)
//
//	f, _ := font.New(goregular.TTF)
//	opts := textedit.DefaultOptions()
//	opts.TextWidth = 320
//
//	l, _ := textedit.NewTextLayout(f, opts)
//	_ = l.SetText("hello world", true)
//
//	s := textedit.NewEditSession(l)
//	s.MoveWordLeft(false)
//	_ = s.Insert("big ")
//
//	m := l.Model() // m.Mesh holds 4 vertices and 6 indices per character
//
// # Wrap Modes
//
//   - [WrapWord]: whole words move to the next line; a word wider than an
//     empty line is broken between characters
//   - [WrapChar]: lines break between any two characters
//   - [WrapSingleLine]: only newlines break lines
//
// # Units and Coordinates
//
// The character and line tables are in em units, independent of the font
// size. Pixel results (model, bounds, caret, selection, hit-testing) are
// scaled by [Options].FontSize, so changing the size of unconstrained text
// never re-runs the wrap pass.
//
// Coordinates are y-up. The first baseline is at y = 0 and each following
// line sits one line advance lower.
package textedit

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
