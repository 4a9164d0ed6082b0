package codegen

import (
	"strings"
	"testing"

	"github.com/roxlang/roxc/internal/compiler/lexer"
	"github.com/roxlang/roxc/internal/compiler/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compile(t *testing.T, src string) (string, error) {
	t.Helper()
	toks, err := lexer.Tokens(src)
	require.NoError(t, err)
	prog, err := parser.ParseProgram(toks)
	require.NoError(t, err)
	return Generate(prog)
}

func mustCompile(t *testing.T, src string) string {
	t.Helper()
	out, err := compile(t, src)
	require.NoError(t, err)
	return out
}

func TestGenerate_EmitsPreambleOnce(t *testing.T) {
	out := mustCompile(t, `function main() -> none { print("hi"); return none; }`)
	assert.Equal(t, 1, strings.Count(out, "struct None"))
	assert.Contains(t, out, "int main()")
}

func TestGenerate_HelloScenario(t *testing.T) {
	out := mustCompile(t, `function main() -> none { print("hello"); return none; }`)
	assert.Contains(t, out, `print(rox_str("hello"))`)
	assert.Contains(t, out, "std::cout << std::boolalpha;")
	assert.Contains(t, out, "return 0;")
}

func TestGenerate_UserIdentifiersArePrefixed(t *testing.T) {
	out := mustCompile(t, `
function main() -> none {
  int64 count = 3;
  print(count);
  return none;
}
`)
	assert.Contains(t, out, "int64_t roxv26_count")
	assert.Contains(t, out, "roxv26_count = ((int64_t)3)")
}

func TestGenerate_DivisionUsesCheckedHelper(t *testing.T) {
	out := mustCompile(t, `
function calc(int64 a, int64 b) -> rox_result[int64] {
  return ok(a / b);
}
`)
	assert.Contains(t, out, "rox_div(")
	assert.NotContains(t, out, "roxv26_a / roxv26_b")
}

func TestGenerate_CheckedIndexScenario(t *testing.T) {
	out := mustCompile(t, `
function main() -> none {
  list[int64] xs = [1, 2, 3];
  rox_result[int64] r = xs.at(0);
  if (isOk(r)) {
    print(getValue(r));
  }
  return none;
}
`)
	assert.Contains(t, out, "rox_at(")
	assert.Contains(t, out, "if (isOk(")
	assert.Contains(t, out, "getValue(")
}

func TestGenerate_UnsafeGetValueRejected(t *testing.T) {
	_, err := compile(t, `
function main() -> none {
  list[int64] xs = [1, 2, 3];
  rox_result[int64] r = xs.at(0);
  print(getValue(r));
  return none;
}
`)
	require.Error(t, err)
	var genErr *Error
	require.ErrorAs(t, err, &genErr)
	assert.Contains(t, genErr.Message, "is unsafe")
}

func TestGenerate_GetValueAfterGuardAllowed(t *testing.T) {
	out, err := compile(t, `
function main() -> none {
  list[int64] xs = [1, 2, 3];
  rox_result[int64] r = xs.at(0);
  if (isOk(r)) {
    print(getValue(r));
  } else {
    print("nope");
  }
  return none;
}
`)
	require.NoError(t, err)
	assert.Contains(t, out, "getValue(")
}

func TestGenerate_RefinementDoesNotLeakToElse(t *testing.T) {
	_, err := compile(t, `
function main() -> none {
  list[int64] xs = [1, 2, 3];
  rox_result[int64] r = xs.at(0);
  if (isOk(r)) {
    print(getValue(r));
  } else {
    print(getValue(r));
  }
  return none;
}
`)
	require.Error(t, err)
}

func TestGenerate_ZeroStepRangeRejected(t *testing.T) {
	_, err := compile(t, `
function main() -> none {
  for i in range(0, 5, 0) {
    print(i);
  }
  return none;
}
`)
	require.Error(t, err)
	var genErr *Error
	require.ErrorAs(t, err, &genErr)
	assert.Contains(t, genErr.Message, "step cannot be a literal 0")
}

func TestGenerate_ForLoopLoweredToRangeFor(t *testing.T) {
	out := mustCompile(t, `
function main() -> none {
  for i in range(0, 5, 1) {
    print(i);
  }
  return none;
}
`)
	assert.Contains(t, out, "for (auto roxv26_i : RoxRange(")
}

func TestGenerate_NonNoneReturnInMainUsesCommaOperator(t *testing.T) {
	out := mustCompile(t, `
function main() -> none {
  return print("x");
}
`)
	assert.Contains(t, out, `return (print(rox_str("x")), 0);`)
}

func TestGenerate_AppendTypeMismatchRejected(t *testing.T) {
	_, err := compile(t, `
function main() -> none {
  list[int64] xs = [1, 2, 3];
  xs.append("oops");
  return none;
}
`)
	require.Error(t, err)
	var genErr *Error
	require.ErrorAs(t, err, &genErr)
	assert.Contains(t, genErr.Message, "type mismatch")
}

func TestGenerate_DictionarySetTypeMismatchRejected(t *testing.T) {
	_, err := compile(t, `
function main() -> none {
  dictionary[string, int64] scores;
  scores.set("alice", "not a number");
  return none;
}
`)
	require.Error(t, err)
	var genErr *Error
	require.ErrorAs(t, err, &genErr)
	assert.Contains(t, genErr.Message, "type mismatch")
}

func TestGenerate_KeywordsAndBuiltinsNeverPrefixed(t *testing.T) {
	out := mustCompile(t, `
function main() -> none {
  print("x");
  return none;
}
`)
	assert.NotContains(t, out, "roxv26_print")
	assert.NotContains(t, out, "roxv26_main")
}

func TestGenerate_IsIdempotent(t *testing.T) {
	src := `function main() -> none { print("x"); return none; }`
	toks, err := lexer.Tokens(src)
	require.NoError(t, err)
	prog, err := parser.ParseProgram(toks)
	require.NoError(t, err)

	first, err := Generate(prog)
	require.NoError(t, err)
	second, err := Generate(prog)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
