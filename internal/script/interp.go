package script

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/pterm/pterm"

	"github.com/gogpu/textedit"
	"github.com/gogpu/textedit/font"
)

// ErrUnknownCommand is returned for a command name the interpreter does not know.
var ErrUnknownCommand = errors.New("script: unknown command")

// ArgError reports a malformed argument list.
type ArgError struct {
	Command string
	Reason  string
}

func (e *ArgError) Error() string {
	return fmt.Sprintf("script: %s: %s", e.Command, e.Reason)
}

// handler runs one command. args excludes the command name.
type handler func(in *Interp, name string, args []*Arg) error

var commands = map[string]handler{
	"text":      cmdText,
	"insert":    cmdInsert,
	"delete":    cmdDelete,
	"backspace": simple(func(s *textedit.EditSession) { s.DeleteCharBefore() }),
	"del":       simple(func(s *textedit.EditSession) { s.DeleteCharAfter() }),
	"backword":  simple(func(s *textedit.EditSession) { s.DeleteWordBefore() }),
	"delword":   simple(func(s *textedit.EditSession) { s.DeleteWordAfter() }),
	"selectall": simple(func(s *textedit.EditSession) { s.SelectAll() }),
	"move":      cmdMove,
	"cursor":    cmdCursor,
	"click":     cmdClick,
	"undo":      cmdUndo,
	"redo":      cmdRedo,
	"width":     cmdWidth,
	"size":      cmdSize,
	"spacing":   cmdSpacing,
	"align":     cmdAlign,
	"wrap":      cmdWrap,
	"print":     cmdPrint,
	"chars":     cmdChars,
	"boxes":     cmdBoxes,
	"caret":     cmdCaret,
	"hit":       cmdHit,
	"dump":      cmdDump,
}

// Commands returns the known command names.
func Commands() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	return names
}

// Interp runs commands against an edit session and writes their output.
type Interp struct {
	session *textedit.EditSession
	out     io.Writer
}

// New returns an interpreter for s writing to out.
func New(s *textedit.EditSession, out io.Writer) *Interp {
	return &Interp{session: s, out: out}
}

// Session returns the session the interpreter edits.
func (in *Interp) Session() *textedit.EditSession { return in.session }

// Eval parses and runs src.
func (in *Interp) Eval(src string) error {
	sc, err := ParseString(src)
	if err != nil {
		return err
	}
	return in.Run(sc)
}

// Run executes the commands of sc in order and stops at the first error.
func (in *Interp) Run(sc *Script) error {
	for _, cmd := range sc.Commands {
		if err := in.Exec(cmd); err != nil {
			return fmt.Errorf("%s: %w", cmd.Pos, err)
		}
	}
	return nil
}

// Exec runs a single command.
func (in *Interp) Exec(cmd *Command) error {
	h, ok := commands[strings.ToLower(cmd.Name)]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownCommand, cmd.Name)
	}
	textedit.Logger().Debug("script: exec", "cmd", cmd.String())
	return h(in, cmd.Name, cmd.Args)
}

func simple(fn func(*textedit.EditSession)) handler {
	return func(in *Interp, name string, args []*Arg) error {
		if len(args) != 0 {
			return &ArgError{Command: name, Reason: "takes no arguments"}
		}
		fn(in.session)
		return nil
	}
}

func cmdText(in *Interp, name string, args []*Arg) error {
	if len(args) != 1 {
		return &ArgError{Command: name, Reason: "want a string"}
	}
	s, err := stringArg(name, args[0])
	if err != nil {
		return err
	}
	return in.session.SetText(s)
}

func cmdInsert(in *Interp, name string, args []*Arg) error {
	switch len(args) {
	case 1:
		s, err := stringArg(name, args[0])
		if err != nil {
			return err
		}
		return in.session.Insert(s)
	case 2:
		at, err := intArg(name, args[0])
		if err != nil {
			return err
		}
		s, err := stringArg(name, args[1])
		if err != nil {
			return err
		}
		return in.session.InsertAt(at, s)
	default:
		return &ArgError{Command: name, Reason: "want [index] string"}
	}
}

func cmdDelete(in *Interp, name string, args []*Arg) error {
	if len(args) != 2 {
		return &ArgError{Command: name, Reason: "want begin end"}
	}
	b, err := intArg(name, args[0])
	if err != nil {
		return err
	}
	e, err := intArg(name, args[1])
	if err != nil {
		return err
	}
	in.session.DeleteRange(b, e)
	return nil
}

func cmdMove(in *Interp, name string, args []*Arg) error {
	args, extend, err := selectFlag(name, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return &ArgError{Command: name, Reason: "want a direction"}
	}
	dir, err := wordArg(name, args[0])
	if err != nil {
		return err
	}
	s := in.session
	switch strings.ToLower(dir) {
	case "left":
		s.MoveLeft(extend)
	case "right":
		s.MoveRight(extend)
	case "wordleft":
		s.MoveWordLeft(extend)
	case "wordright":
		s.MoveWordRight(extend)
	case "home":
		s.MoveHome(extend)
	case "end":
		s.MoveEnd(extend)
	case "up":
		s.MoveUp(extend)
	case "down":
		s.MoveDown(extend)
	default:
		return &ArgError{Command: name, Reason: fmt.Sprintf("unknown direction %q", dir)}
	}
	return nil
}

func cmdCursor(in *Interp, name string, args []*Arg) error {
	args, extend, err := selectFlag(name, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return &ArgError{Command: name, Reason: "want an index"}
	}
	i, err := intArg(name, args[0])
	if err != nil {
		return err
	}
	in.session.SetCursor(i, extend)
	return nil
}

func cmdClick(in *Interp, name string, args []*Arg) error {
	args, extend, err := selectFlag(name, args)
	if err != nil {
		return err
	}
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
	in.session.Click(x, y, extend)
	return nil
}

func cmdUndo(in *Interp, name string, args []*Arg) error {
	if len(args) != 0 {
		return &ArgError{Command: name, Reason: "takes no arguments"}
	}
	if !in.session.Undo() {
		fmt.Fprintln(in.out, "nothing to undo")
	}
	return nil
}

func cmdRedo(in *Interp, name string, args []*Arg) error {
	if len(args) != 0 {
		return &ArgError{Command: name, Reason: "takes no arguments"}
	}
	if !in.session.Redo() {
		fmt.Fprintln(in.out, "nothing to redo")
	}
	return nil
}

// layoutSetter adapts a pixel-valued TextLayout setter to a command.
func layoutSetter(set func(l *textedit.TextLayout, v float64)) handler {
	return func(in *Interp, name string, args []*Arg) error {
		if len(args) != 1 {
			return &ArgError{Command: name, Reason: "want a number"}
		}
		v, err := numArg(name, args[0])
		if err != nil {
			return err
		}
		if v < 0 {
			return &ArgError{Command: name, Reason: "must not be negative"}
		}
		set(in.session.Layout(), v)
		return nil
	}
}

var (
	cmdWidth   = layoutSetter(func(l *textedit.TextLayout, v float64) { l.SetTextWidth(v, true) })
	cmdSize    = layoutSetter(func(l *textedit.TextLayout, v float64) { l.SetFontSize(v, true) })
	cmdSpacing = layoutSetter(func(l *textedit.TextLayout, v float64) { l.SetLineSpacing(v, true) })
)

func cmdAlign(in *Interp, name string, args []*Arg) error {
	if len(args) != 1 {
		return &ArgError{Command: name, Reason: "want left, center or right"}
	}
	w, err := wordArg(name, args[0])
	if err != nil {
		return err
	}
	a, err := textedit.ParseAlignment(w)
	if err != nil {
		return err
	}
	in.session.Layout().SetAlignment(a, true)
	return nil
}

func cmdWrap(in *Interp, name string, args []*Arg) error {
	if len(args) != 1 {
		return &ArgError{Command: name, Reason: "want word, char or single"}
	}
	w, err := wordArg(name, args[0])
	if err != nil {
		return err
	}
	m, err := textedit.ParseWrapMode(w)
	if err != nil {
		return err
	}
	in.session.Layout().SetWrapMode(m, true)
	return nil
}

func cmdDump(in *Interp, name string, args []*Arg) error {
	if len(args) != 0 {
		return &ArgError{Command: name, Reason: "takes no arguments"}
	}
	cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}
	l := in.session.Layout()
	cfg.Fdump(in.out, l.Options(), l.Lines())
	if f, ok := l.Font().(*font.Font); ok {
		cfg.Fdump(in.out, f.CacheStats())
	}
	return nil
}

// selectFlag strips a trailing "select" word from args.
func selectFlag(name string, args []*Arg) ([]*Arg, bool, error) {
	if n := len(args); n > 0 {
		if w := args[n-1].Word; w != nil {
			if strings.EqualFold(*w, "select") {
				return args[:n-1], true, nil
			}
			if len(args) > 1 {
				return nil, false, &ArgError{Command: name, Reason: fmt.Sprintf("unexpected %q", *w)}
			}
		}
	}
	return args, false, nil
}

func numArg(name string, a *Arg) (float64, error) {
	if a.Number == nil {
		return 0, &ArgError{Command: name, Reason: fmt.Sprintf("%s is not a number", a)}
	}
	return *a.Number, nil
}

func intArg(name string, a *Arg) (int, error) {
	v, err := numArg(name, a)
	if err != nil {
		return 0, err
	}
	if v != float64(int(v)) {
		return 0, &ArgError{Command: name, Reason: fmt.Sprintf("%s is not an integer", a)}
	}
	return int(v), nil
}

func stringArg(name string, a *Arg) (string, error) {
	if a.Str == nil {
		return "", &ArgError{Command: name, Reason: fmt.Sprintf("%s is not a quoted string", a)}
	}
	return string(*a.Str), nil
}

func wordArg(name string, a *Arg) (string, error) {
	if a.Word == nil {
		return "", &ArgError{Command: name, Reason: fmt.Sprintf("%s is not a word", a)}
	}
	return *a.Word, nil
}

// render writes a pterm table with a header row.
func (in *Interp) render(data pterm.TableData) error {
	s, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(in.out, s)
	return err
}

func itoa(i int) string { return strconv.Itoa(i) }

func ftoa(f float64) string { return strconv.FormatFloat(f, 'f', 2, 64) }
