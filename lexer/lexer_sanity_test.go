// ==============================================================================================
// FILE: lexer/lexer_sanity_test.go
// ==============================================================================================
// PURPOSE: Guards invariants that the rest of the pipeline depends on.
// ==============================================================================================

package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ember/token"
)

func TestSanity_AlwaysTerminatesWithEOF(t *testing.T) {
	tokens := scan(t, "var x = 1;")
	require.NotEmpty(t, tokens)
	assert.Equal(t, token.EOF, tokens[len(tokens)-1].Type)
}

func TestSanity_EmptySourceYieldsOnlyEOF(t *testing.T) {
	tokens := scan(t, "")
	require.Len(t, tokens, 1)
	assert.Equal(t, token.EOF, tokens[0].Type)
}
