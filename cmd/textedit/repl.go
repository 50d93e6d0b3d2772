package main

import (
	"errors"
	"io"
	"slices"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/gogpu/textedit/internal/script"
)

// completer offers the script commands at the start of a line.
func completer() *readline.PrefixCompleter {
	names := script.Commands()
	slices.Sort(names)
	items := make([]readline.PrefixCompleterInterface, 0, len(names)+1)
	for _, n := range names {
		items = append(items, readline.PcItem(n))
	}
	items = append(items, readline.PcItem("quit"))
	return readline.NewPrefixCompleter(items...)
}

// repl reads commands from the terminal until EOF or "quit".
func (a *app) repl() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "textedit > ",
		AutoComplete:    completer(),
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	pterm.Info.Println("Type commands, e.g. text \"hello\" or print. Quit with <ctrl>D")
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if line == "" {
				break
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if quit := a.evalLine(line); quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
	return nil
}

// evalLine runs one prompt line. It reports true when the user asked to quit.
func (a *app) evalLine(line string) bool {
	line = strings.TrimSpace(line)
	switch line {
	case "":
		return false
	case "quit", "exit":
		return true
	}
	if err := a.interp.Eval(line); err != nil {
		pterm.Error.Println(err)
		return false
	}
	if err := a.render(); err != nil {
		pterm.Error.Println(err)
	}
	return false
}
