// ==============================================================================================
// FILE: interpreter/interpreter_integration_test.go
// ==============================================================================================
// PURPOSE: Runs longer, multi-feature programs end to end from source text.
// ==============================================================================================

package interpreter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegration_FibonacciIterative(t *testing.T) {
	out, err := runCapture(t, `
		fn fib(n) {
			var a = 0;
			var b = 1;
			for (var i = 0; i < n; i = i + 1) {
				var next = a + b;
				a = b;
				b = next;
			}
			return a;
		}
		print fib(20);
	`)
	require.NoError(t, err)
	assert.Equal(t, "6765\n", out)
}

func TestIntegration_HigherOrderFunctionsAsArguments(t *testing.T) {
	out, err := runCapture(t, `
		fn applyTwice(f, x) {
			return f(f(x));
		}
		var increment = fn(x) { return x + 1; };
		print applyTwice(increment, 10);
	`)
	require.NoError(t, err)
	assert.Equal(t, "12\n", out)
}

func TestIntegration_ShadowingAcrossNestedBlocksAndFunctions(t *testing.T) {
	out, err := runCapture(t, `
		var x = "global";
		fn show() { print x; }
		fn scoped() {
			var x = "local";
			show();
			print x;
		}
		scoped();
	`)
	require.NoError(t, err)
	assert.Equal(t, "global\nlocal\n", out)
}
