package script

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	scriptLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `#[^\n]*`},
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Separator", Pattern: `[\n;]+`},
		{Name: "Number", Pattern: `-?(?:\d+\.\d*|\.\d+|\d+)`},
		{Name: "String", Pattern: `"(?:\\.|[^"\\])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
	})

	scriptParser = participle.MustBuild[Script](
		participle.Lexer(scriptLexer),
		participle.Elide("Whitespace", "Comment"),
	)
)

// Script is the root node of a parsed edit script.
type Script struct {
	Commands []*Command `parser:"Separator* ( @@ Separator* )*"`
}

// Command is one named command with its arguments.
type Command struct {
	Pos  lexer.Position `parser:""`
	Name string         `parser:"@Ident"`
	Args []*Arg         `parser:"@@*"`
}

func (c *Command) String() string {
	s := c.Name
	for _, a := range c.Args {
		s += " " + a.String()
	}
	return s
}

// Arg is a single command argument.
type Arg struct {
	Number *float64       `parser:"  @Number"`
	Str    *StringLiteral `parser:"| @String"`
	Word   *string        `parser:"| @Ident"`
}

func (a *Arg) String() string {
	switch {
	case a.Number != nil:
		return strconv.FormatFloat(*a.Number, 'g', -1, 64)
	case a.Str != nil:
		return strconv.Quote(string(*a.Str))
	case a.Word != nil:
		return *a.Word
	default:
		return "<nil>"
	}
}

// StringLiteral unquotes Go-style strings on capture.
type StringLiteral string

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return errors.New("script: string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return fmt.Errorf("script: bad string %s: %w", values[0], err)
	}
	*s = StringLiteral(val)
	return nil
}

// Parse parses a script from r. name is used in error positions.
func Parse(name string, r io.Reader) (*Script, error) {
	return scriptParser.Parse(name, r)
}

// ParseString parses a script from a string.
func ParseString(src string) (*Script, error) {
	return scriptParser.ParseString("", src)
}
