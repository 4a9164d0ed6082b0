package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_IndentsBraces(t *testing.T) {
	out, err := Source("function f() -> none {print(\"x\");}")
	require.NoError(t, err)
	assert.Contains(t, out, "{\n    print(\"x\");\n}")
}

func TestSource_NoSpaceBeforeCallParen(t *testing.T) {
	out, err := Source(`print("x");`)
	require.NoError(t, err)
	assert.Contains(t, out, `print("x")`)
	assert.NotContains(t, out, `print ("x")`)
}

func TestSource_SpaceAfterIfBeforeParen(t *testing.T) {
	out, err := Source(`if (true) { print("x"); }`)
	require.NoError(t, err)
	assert.Contains(t, out, "if (true)")
}

func TestSource_ArrowHasNoInternalSpace(t *testing.T) {
	out, err := Source(`function f() -> none { return none; }`)
	require.NoError(t, err)
	assert.Contains(t, out, "-> none")
	assert.NotContains(t, out, "- > none")
}

func TestSource_CollapsesMultipleBlankLines(t *testing.T) {
	out, err := Source("int64 a = 1;\n\n\n\nint64 b = 2;")
	require.NoError(t, err)
	assert.NotContains(t, out, "\n\n\n")
}

func TestSource_PreservesComments(t *testing.T) {
	out, err := Source("int64 a = 1; // note\nint64 b = 2;")
	require.NoError(t, err)
	assert.Contains(t, out, "// note")
}

func TestSource_PropagatesLexError(t *testing.T) {
	_, err := Source(`"unterminated`)
	require.Error(t, err)
}
