// Package repl implements the interactive Read-Eval-Print Loop for the
// wick interpreter. It is ambient tooling around the core language: the
// REPL itself carries no language semantics, only convenience around
// feeding lines into the lexer/parser/eval pipeline.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/wicklang/wick/environment"
	"github.com/wicklang/wick/eval"
	"github.com/wicklang/wick/lexer"
	"github.com/wicklang/wick/object"
	"github.com/wicklang/wick/parser"
)

// Color definitions for REPL output: blue for separators, yellow for
// results, red for errors, green for the banner, cyan for instructions.
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

const banner = `
 __      __|__ ____| |  /
 \ \  /\ / /  |      ' /
  \ \/  \/ /  |      . \
   \__/\__/  _|  ____|  \
`

const separator = "----------------------------------------"

// Repl is a configured interactive session. Prompt is shown at every
// line; Version is reported in the startup banner.
type Repl struct {
	Prompt  string
	Version string
}

// New creates a Repl with the given prompt and version string.
func New(prompt, version string) *Repl {
	return &Repl{Prompt: prompt, Version: version}
}

// printBanner writes the startup banner and usage hints to writer.
func (r *Repl) printBanner(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", separator)
	greenColor.Fprintf(writer, "%s\n", banner)
	blueColor.Fprintf(writer, "%s\n", separator)
	yellowColor.Fprintf(writer, "wick %s\n", r.Version)
	blueColor.Fprintf(writer, "%s\n", separator)
	cyanColor.Fprintln(writer, "Type an expression and press enter.")
	cyanColor.Fprintln(writer, "Type '.exit' or press Ctrl-D to quit.")
	blueColor.Fprintf(writer, "%s\n", separator)
}

// Start runs the interactive loop until the user exits, evaluating
// each line against a single Environment shared across the whole
// session so that let-bindings persist between lines.
func (r *Repl) Start(writer io.Writer) error {
	r.printBanner(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	env := environment.New()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Goodbye.\n"))
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Goodbye.\n"))
			return nil
		}

		rl.SaveHistory(line)
		r.evalLine(writer, line, env)
	}
}

// evalLine parses and evaluates one line of input, recovering from any
// panic so a single bad line never kills the session.
func (r *Repl) evalLine(writer io.Writer, line string, env *environment.Environment) {
	defer func() {
		if rec := recover(); rec != nil {
			redColor.Fprintf(writer, "runtime panic: %v\n", rec)
		}
	}()

	p := parser.New(lexer.New(line))
	program := p.ParseProgram()

	result := eval.Eval(program, env)
	if result == nil {
		return
	}

	if errVal, ok := result.(*object.Error); ok {
		redColor.Fprintf(writer, "%s\n", errVal.Inspect())
		return
	}
	yellowColor.Fprintf(writer, "%s\n", result.Inspect())
}
