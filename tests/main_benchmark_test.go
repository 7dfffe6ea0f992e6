// ==============================================================================================
// FILE: main_benchmark_test.go
// ==============================================================================================
// PURPOSE: System-wide benchmarks. Measures the performance of the entire
//          pipeline (lexing + parsing + interpretation) under sustained load.
// ==============================================================================================

package main

import (
	"io"
	"strings"
	"testing"

	"ember/interpreter"
	"ember/lexer"
	"ember/parser"
)

func runBench(b *testing.B, source string) {
	b.Helper()

	tokens, err := lexer.New(source).ScanTokens()
	if err != nil {
		b.Fatalf("lex error: %s", err)
	}
	statements, err := parser.New(tokens).Parse()
	if err != nil {
		b.Fatalf("parse error: %s", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := interpreter.New(io.Discard).Run(statements); err != nil {
			b.Fatalf("runtime error: %s", err)
		}
	}
}

// BenchmarkSystem_HeavyLoop measures interpretation speed of iterative logic.
func BenchmarkSystem_HeavyLoop(b *testing.B) {
	runBench(b, `
		var sum = 0;
		for (var i = 0; i < 1000; i = i + 1) {
			sum = sum + i;
		}
	`)
}

// BenchmarkSystem_DeepRecursion measures call-frame overhead.
func BenchmarkSystem_DeepRecursion(b *testing.B) {
	runBench(b, `
		fn dive(n) {
			if (n == 0) { return 0; }
			return dive(n - 1);
		}
		dive(200);
	`)
}

// BenchmarkSystem_StringConcatenation measures allocation overhead of
// repeated string concatenation.
func BenchmarkSystem_StringConcatenation(b *testing.B) {
	var src strings.Builder
	src.WriteString(`var str = "";`)
	for i := 0; i < 100; i++ {
		src.WriteString(`str = str + "a";`)
	}
	runBench(b, src.String())
}
