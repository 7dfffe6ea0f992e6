// ==============================================================================================
// FILE: cmd/lang/main.go
// ==============================================================================================
// PACKAGE: main
// PURPOSE: Command-line entry point. Zero arguments starts the REPL; one
//          argument runs the named script file; anything else is a usage
//          error.
// ==============================================================================================

package main

import (
	"fmt"
	"os"

	"ember/interpreter"
	"ember/lexer"
	"ember/parser"
	"ember/repl"
	"ember/rlog"
)

func main() {
	switch len(os.Args) {
	case 1:
		if err := repl.Start(os.Stdout); err != nil {
			rlog.New(os.Stderr).Fatal("repl: %s", err)
		}
	case 2:
		runFile(os.Args[1])
	default:
		fmt.Fprintln(os.Stderr, "Usage: lang [script]")
		os.Exit(64)
	}
}

func runFile(path string) {
	log := rlog.New(os.Stderr)

	source, err := os.ReadFile(path)
	if err != nil {
		log.Fatal("reading %s: %s", path, err)
	}

	tokens, err := lexer.New(string(source)).ScanTokens()
	if err != nil {
		log.Error("%s", err)
		os.Exit(65)
	}

	statements, err := parser.New(tokens).Parse()
	if err != nil {
		log.Error("%s", err)
		os.Exit(65)
	}

	interp := interpreter.New(os.Stdout)
	if err := interp.Run(statements); err != nil {
		log.Error("%s", err)
		os.Exit(70)
	}
}
