// ==============================================================================================
// FILE: repl/repl.go
// ==============================================================================================
// PACKAGE: repl
// PURPOSE: The Read-Eval-Print Loop. Connects an input stream to the
//          lexer -> parser -> interpreter pipeline and keeps one global
//          environment alive across the whole session so variables and
//          functions persist between lines.
// ==============================================================================================

package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"ember/interpreter"
	"ember/lexer"
	"ember/parser"
)

const prompt = ">> "

var (
	promptColor = color.New(color.FgCyan)
	errorColor  = color.New(color.FgRed, color.Bold)
	byeColor    = color.New(color.FgYellow)
	bannerColor = color.New(color.FgBlue)
)

// exitWords are recognized case-insensitively to end the session.
var exitWords = map[string]bool{"exit": true, "quit": true, "q": true}

// Start launches the REPL, reading lines via readline (history, line
// editing) and writing results and diagnostics to out. It returns when the
// user exits or the input stream closes (e.g. Ctrl+D).
func Start(out io.Writer) error {
	printBanner(out)

	rl, err := readline.NewEx(&readline.Config{
		Prompt: promptColor.Sprint(prompt),
		Stdout: out,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	interp := interpreter.New(out)

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF (Ctrl+D) or readline.ErrInterrupt (Ctrl+C)
			byeColor.Fprintln(out, "Goodbye!")
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if exitWords[strings.ToLower(line)] {
			byeColor.Fprintln(out, "Goodbye!")
			return nil
		}
		if strings.ToLower(line) == "help" {
			printHelp(out)
			continue
		}

		rl.SaveHistory(line)
		runLine(out, interp, line)
	}
}

func runLine(out io.Writer, interp *interpreter.Interpreter, line string) {
	tokens, err := lexer.New(line).ScanTokens()
	if err != nil {
		errorColor.Fprintf(out, "Lex error:\n%s\n", err)
		return
	}

	statements, err := parser.New(tokens).Parse()
	if err != nil {
		errorColor.Fprintf(out, "Parse error:\n%s\n", err)
		return
	}

	if err := interp.Run(statements); err != nil {
		errorColor.Fprintf(out, "Runtime error: %s\n", err)
	}
}

func printBanner(out io.Writer) {
	line := strings.Repeat("-", 48)
	bannerColor.Fprintln(out, line)
	fmt.Fprintln(out, "ember — type an expression or statement and press enter")
	fmt.Fprintln(out, "type 'exit', 'quit', or 'q' to leave, 'help' for commands")
	bannerColor.Fprintln(out, line)
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, "  exit | quit | q   leave the REPL")
	fmt.Fprintln(out, "  help              show this message")
	fmt.Fprintln(out, "  <anything else>   lexed, parsed, and run against the session environment")
}
