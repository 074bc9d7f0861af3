// Command wick is the entry point for the wick interpreter. It has two
// modes of operation:
//
//	wick                 start an interactive REPL
//	wick <path>          run a wick source file
//
// Neither mode is part of the core language; both are ambient driver
// code around the lexer/parser/eval pipeline.
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/wicklang/wick/environment"
	"github.com/wicklang/wick/eval"
	"github.com/wicklang/wick/lexer"
	"github.com/wicklang/wick/object"
	"github.com/wicklang/wick/parser"
	"github.com/wicklang/wick/repl"
)

const version = "v0.1.0"
const prompt = "wick >> "

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

func main() {
	if len(os.Args) > 1 {
		switch arg := os.Args[1]; arg {
		case "--help", "-h":
			showHelp()
			return
		case "--version", "-v":
			showVersion()
			return
		default:
			runFile(arg)
			return
		}
	}

	r := repl.New(prompt, version)
	if err := r.Start(os.Stdout); err != nil {
		redColor.Fprintf(os.Stderr, "could not start REPL: %v\n", err)
		os.Exit(1)
	}
}

func showHelp() {
	cyanColor.Println("wick - a small interpreted scripting language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	cyanColor.Println("  wick                start an interactive REPL")
	cyanColor.Println("  wick <path>         run a wick source file")
	cyanColor.Println("  wick --help         show this help message")
	cyanColor.Println("  wick --version      show version information")
}

func showVersion() {
	cyanColor.Printf("wick %s\n", version)
}

// runFile reads, parses, and evaluates a source file in a single pass,
// with panic recovery so a runtime panic reports as an error rather
// than a crash. A parse error or an evaluation error each exit with
// status 1.
func runFile(path string) {
	defer func() {
		if rec := recover(); rec != nil {
			redColor.Fprintf(os.Stderr, "runtime panic: %v\n", rec)
			os.Exit(1)
		}
	}()

	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "could not read %s: %v\n", path, err)
		os.Exit(1)
	}

	p := parser.New(lexer.New(string(source)))
	program := p.ParseProgram()

	env := environment.New()
	result := eval.Eval(program, env)

	if errVal, ok := result.(*object.Error); ok {
		redColor.Fprintf(os.Stderr, "%s\n", errVal.Inspect())
		os.Exit(1)
	}
}
