// ==============================================================================================
// FILE: rlog/rlog.go
// ==============================================================================================
// PACKAGE: rlog
// PURPOSE: A small leveled logger. The CLI (cmd/lang) uses it for its error
//          and fatal diagnostics; the REPL prints its own banner and errors
//          without it. The core pipeline (lexer/parser/interpreter)
//          never imports this package — it returns plain errors and leaves
//          formatting to whoever is driving it.
// ==============================================================================================

package rlog

import (
	"io"
	"os"

	"github.com/fatih/color"
)

// Logger writes leveled, colored lines to an output stream.
type Logger struct {
	out io.Writer

	info    *color.Color
	errorc  *color.Color
	message *color.Color
}

// New returns a Logger writing to out (os.Stdout if out is nil).
func New(out io.Writer) *Logger {
	if out == nil {
		out = os.Stdout
	}
	return &Logger{
		out:     out,
		info:    color.New(color.FgCyan, color.Bold),
		errorc:  color.New(color.FgRed, color.Bold),
		message: color.New(color.FgGreen, color.Bold),
	}
}

// Info reports a neutral, informational line (prefix "[#]").
func (l *Logger) Info(format string, args ...any) {
	l.info.Fprintf(l.out, "[#] "+format+"\n", args...)
}

// Error reports a failure (prefix "[*]").
func (l *Logger) Error(format string, args ...any) {
	l.errorc.Fprintf(l.out, "[*] "+format+"\n", args...)
}

// Message reports a success or confirmation (prefix "[+]").
func (l *Logger) Message(format string, args ...any) {
	l.message.Fprintf(l.out, "[+] "+format+"\n", args...)
}

// Fatal reports an error and terminates the process with a nonzero status.
func (l *Logger) Fatal(format string, args ...any) {
	l.Error(format, args...)
	os.Exit(1)
}
