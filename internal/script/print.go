package script

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/gogpu/textedit"
)

func cmdPrint(in *Interp, name string, args []*Arg) error {
	if len(args) != 0 {
		return &ArgError{Command: name, Reason: "takes no arguments"}
	}
	s := in.session
	l := s.Layout()
	fmt.Fprintf(in.out, "text %s\n", strconv.Quote(s.Text()))
	fmt.Fprintf(in.out, "cursor %d anchor %d", s.Cursor(), s.Anchor())
	if s.HasSelection() {
		fmt.Fprintf(in.out, " selected %s", strconv.Quote(s.SelectedText()))
	}
	fmt.Fprintln(in.out)

	data := pterm.TableData{{"Line", "Begin", "End", "Baseline", "Offset", "Text"}}
	chars := l.Characters()
	for k, ln := range l.Lines() {
		runes := make([]rune, 0, ln.Len())
		for _, c := range chars[ln.Begin:ln.End] {
			runes = append(runes, c.Codepoint)
		}
		data = append(data, []string{
			itoa(k), itoa(ln.Begin), itoa(ln.End),
			ftoa(ln.BaselineY * l.Options().FontSize),
			ftoa(l.LineOffset(k)),
			strconv.Quote(textedit.Encode(runes)),
		})
	}
	return in.render(data)
}

func cmdChars(in *Interp, name string, args []*Arg) error {
	if len(args) != 0 {
		return &ArgError{Command: name, Reason: "takes no arguments"}
	}
	l := in.session.Layout()
	fs := l.Options().FontSize
	data := pterm.TableData{{"Index", "Rune", "Left", "Right", "Line"}}
	for i, c := range l.Characters() {
		data = append(data, []string{
			itoa(i), strconv.QuoteRune(c.Codepoint),
			ftoa(c.Left * fs), ftoa(c.Right * fs),
			itoa(l.LineOf(i)),
		})
	}
	return in.render(data)
}

func cmdBoxes(in *Interp, name string, args []*Arg) error {
	if len(args) != 0 {
		return &ArgError{Command: name, Reason: "takes no arguments"}
	}
	boxes := in.session.ComputeSelectionBoxes()
	if len(boxes) == 0 {
		fmt.Fprintln(in.out, "no selection")
		return nil
	}
	data := pterm.TableData{{"Box", "MinX", "MinY", "MaxX", "MaxY"}}
	for i, r := range boxes {
		data = append(data, []string{itoa(i), ftoa(r.MinX), ftoa(r.MinY), ftoa(r.MaxX), ftoa(r.MaxY)})
	}
	return in.render(data)
}

func cmdCaret(in *Interp, name string, args []*Arg) error {
	if len(args) != 0 {
		return &ArgError{Command: name, Reason: "takes no arguments"}
	}
	x, y := in.session.CursorPixelPosition()
	fmt.Fprintf(in.out, "caret %d at (%s, %s)\n", in.session.Cursor(), ftoa(x), ftoa(y))
	return nil
}

func cmdHit(in *Interp, name string, args []*Arg) error {
	if len(args) != 2 {
		return &ArgError{Command: name, Reason: "want x y"}
	}
	x, err := numArg(name, args[0])
	if err != nil {
		return err
	}
	y, err := numArg(name, args[1])
	if err != nil {
		return err
	}
	fmt.Fprintf(in.out, "hit (%s, %s) -> %d\n", ftoa(x), ftoa(y), in.session.PixelToCursorIndex(x, y))
	return nil
}
