// ==============================================================================================
// FILE: wasm/wasm_main.go
// BUILD: GOOS=js GOARCH=wasm go build -o main.wasm wasm/wasm_main.go
// ==============================================================================================
package main

import (
	"fmt"
	"strings"
	"syscall/js"

	"ember/interpreter"
	"ember/lexer"
	"ember/parser"
)

func main() {
	c := make(chan struct{}, 0)

	js.Global().Set("runEmber", js.FuncOf(runCode))

	fmt.Println("ember WASM engine loaded.")
	<-c
}

// runCode is the bridge between JavaScript and the interpreter pipeline. It
// runs one full program per call; there is no session state carried between
// calls, unlike the REPL.
func runCode(this js.Value, p []js.Value) any {
	code := p[0].String()

	var output strings.Builder

	tokens, err := lexer.New(code).ScanTokens()
	if err != nil {
		return map[string]any{"error": []any{"lex error: " + err.Error()}}
	}

	statements, err := parser.New(tokens).Parse()
	if err != nil {
		return map[string]any{"error": []any{"parse error: " + err.Error()}}
	}

	interp := interpreter.New(&output)
	if err := interp.Run(statements); err != nil {
		return map[string]any{"error": []any{"runtime error: " + err.Error()}}
	}

	return map[string]any{
		"logs": output.String(),
	}
}
